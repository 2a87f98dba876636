package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/carmarket/internal/client/api"
	"github.com/iudanet/carmarket/internal/client/cli"
	"github.com/iudanet/carmarket/internal/client/iocli"
	"github.com/iudanet/carmarket/internal/client/market"
	"github.com/iudanet/carmarket/internal/client/session"
	"github.com/iudanet/carmarket/internal/client/storage/sqlite"
	"github.com/iudanet/carmarket/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "carmarket.db", "Path to local database")
	sessionPath := flag.String("session", "carmarket-session.db", "Path to session database")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// Создаем контекст
	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Открываем SQLite storage (авторитетные, shadow и conflict таблицы)
	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Открываем session storage (текущий логин)
	sessionStore, err := session.New(ctx, *sessionPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open session database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := sessionStore.Close(); err != nil {
			logger.Error("failed to close session database", "error", err)
		}
	}()

	// Создаем API клиент и сервисы
	apiClient := api.NewClient(*serverURL)
	marketService := market.NewService(store, store, store, store, logger)
	syncService := sync.NewService(apiClient, store, logger)

	c := cli.New(iocli.NewStdio(), marketService, syncService, sessionStore)

	// Выполняем команду
	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("CarMarket Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
