package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/carmarket/internal/client/storage"
)

func (c *Cli) runLogout(ctx context.Context) error {
	err := c.sessionStore.Clear(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("failed to clear session: %w", err)
	}

	c.io.Println("✓ Logged out.")
	return nil
}
