package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/carmarket/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println("")
	c.io.Println("Starting synchronization with server...")

	result, err := c.syncService.Sync(ctx)
	if err != nil {
		if errors.Is(err, sync.ErrSyncBlocked) {
			c.io.Println("")
			c.io.Println("⚠️  Synchronization is blocked: unresolved conflicts remain")
			c.io.Println("from a previous run. Resolve them before syncing again.")
			return err
		}
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println("")
	c.io.Println("✓ Synchronization completed!")
	c.io.Println("")
	c.io.Printf("Pushed to server:   %d row(s)\n", result.Pushed)
	c.io.Printf("Pulled from server: %d row(s)\n", result.Pulled)
	c.io.Printf("Inserted locally:   %d row(s)\n", result.Inserted)
	c.io.Printf("Updated locally:    %d row(s)\n", result.Updated)
	c.io.Printf("Confirmed:          %d row(s)\n", result.Confirmed)
	c.io.Printf("Deleted locally:    %d row(s)\n", result.Deleted)
	if result.Conflicts > 0 {
		c.io.Println("")
		c.io.Printf("⚠️  Server reported %d conflict(s). They are recorded locally;\n", result.Conflicts)
		c.io.Println("the next synchronization is blocked until they are resolved.")
	}

	return nil
}

func (c *Cli) runLastSync(ctx context.Context) error {
	status, err := c.marketService.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	if !status.Synced {
		c.io.Println("Never synchronized.")
		return nil
	}

	c.io.Printf("Last synchronization: %s\n", formatAnchor(status.LastSync))
	return nil
}
