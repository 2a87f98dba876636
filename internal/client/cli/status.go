package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/carmarket/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println("")

	sess, err := c.sessionStore.Get(ctx)
	switch {
	case errors.Is(err, storage.ErrSessionNotFound):
		c.io.Println("Session: not logged in")
	case err != nil:
		return fmt.Errorf("failed to read session: %w", err)
	default:
		c.io.Printf("Session: %s (since %s)\n", sess.Username, sess.LoginAt.Format(time.RFC3339))
	}

	status, err := c.marketService.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	if status.Synced {
		c.io.Printf("Last sync: %s\n", formatAnchor(status.LastSync))
	} else {
		c.io.Println("Last sync: never synchronized")
	}

	if total := status.Conflicts.Total(); total > 0 {
		c.io.Printf("⚠️  Unresolved conflicts: %d (users: %d, cars: %d, ownership: %d)\n",
			total, status.Conflicts.Users, status.Conflicts.Cars, status.Conflicts.Ownership)
		c.io.Println("Synchronization is blocked until conflicts are resolved.")
	}

	pending, err := c.syncService.PendingChanges(ctx)
	if err != nil {
		// Не прерываем выполнение, статус всё равно полезен
		c.io.Printf("\nWarning: failed to count pending changes: %v\n", err)
		return nil
	}

	c.io.Println("")
	if pending.Empty() {
		c.io.Println("✓ All data synchronized with server")
	} else {
		c.io.Printf("Pending: %d new, %d modified, %d deleted\n",
			pending.News.Len(), pending.Modified.Len(), pending.Deleted.Len())
		c.io.Println("Run 'carmarket sync' to synchronize with the server.")
	}

	return nil
}
