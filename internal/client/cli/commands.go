package cli

import (
	"context"
	"fmt"
)

// Run dispatches a single command. Алиасы команд повторяют короткие
// формы оригинального клиента (s, ls, r, cp, ac, gc, uc, dc, du).
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register", "r":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "change-password", "cp":
		return c.runChangePassword(ctx)
	case "add-car", "ac":
		return c.runAddCar(ctx, args)
	case "cars", "gc":
		return c.runCars(ctx)
	case "edit-car", "uc":
		return c.runEditCar(ctx, args)
	case "delete-car", "dc":
		return c.runDeleteCar(ctx, args)
	case "delete-user", "du":
		return c.runDeleteUser(ctx)
	case "sync", "s":
		return c.runSync(ctx)
	case "last-sync", "ls":
		return c.runLastSync(ctx)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
