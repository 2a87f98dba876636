// Package cli содержит обработчики терминальных команд клиента:
// register/login/logout, операции с машинами и синхронизация.
package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/carmarket/internal/client/iocli"
	"github.com/iudanet/carmarket/internal/client/market"
	"github.com/iudanet/carmarket/internal/client/session"
	"github.com/iudanet/carmarket/internal/client/sync"
)

//go:generate moq -out session_mock.go . SessionStore

// SessionStore keeps the current login between invocations.
type SessionStore interface {
	Save(ctx context.Context, sess *session.Session) error
	Get(ctx context.Context) (*session.Session, error)
	Clear(ctx context.Context) error
}

type Cli struct {
	io            iocli.IO
	marketService market.Service
	syncService   sync.Service
	sessionStore  SessionStore
}

func New(io iocli.IO, marketService market.Service, syncService sync.Service, sessionStore SessionStore) *Cli {
	return &Cli{
		io:            io,
		marketService: marketService,
		syncService:   syncService,
		sessionStore:  sessionStore,
	}
}

func PrintUsage() {
	fmt.Println("CarMarket Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  carmarket [OPTIONS] COMMAND [ARGS]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH        Path to local database (default: carmarket.db)")
	fmt.Println("  --session PATH   Path to session database (default: carmarket-session.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register (r)               Register new local user")
	fmt.Println("  login                      Log in as an existing user")
	fmt.Println("  logout                     Log out")
	fmt.Println("  status                     Show session, sync anchor and pending changes")
	fmt.Println("  change-password (cp)       Change the current user's password")
	fmt.Println("  add-car (ac) MODEL VALUE   Add a car for the current user")
	fmt.Println("  cars (gc)                  List the current user's cars")
	fmt.Println("  edit-car (uc) ID           Edit a car's model and value")
	fmt.Println("  delete-car (dc) ID         Delete a car")
	fmt.Println("  delete-user (du)           Delete the current user and all their cars")
	fmt.Println("  sync (s)                   Synchronize local data with the server")
	fmt.Println("  last-sync (ls)             Show the last synchronization time")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  carmarket register")
	fmt.Println("  carmarket login")
	fmt.Println("  carmarket add-car 'lada vesta' 1200000")
	fmt.Println("  carmarket cars")
	fmt.Println("  carmarket sync")
	fmt.Println("  carmarket --server https://example.com sync")
}
