package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/carmarket/internal/client/storage"
)

func (c *Cli) runDeleteCar(ctx context.Context, args []string) error {
	if _, err := c.currentSession(ctx); err != nil {
		return err
	}

	if len(args) < 1 {
		return fmt.Errorf("usage: carmarket delete-car CAR_ID")
	}

	if err := c.marketService.DeleteCar(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("✓ Car deleted.")
	return nil
}

// runDeleteUser удаляет текущего пользователя каскадно вместе с его
// машинами и рёбрами владения. Требует явного подтверждения.
func (c *Cli) runDeleteUser(ctx context.Context) error {
	sess, err := c.currentSession(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("This will delete user %q and ALL their cars.\n", sess.Username)
	answer, err := c.io.ReadInput("Type the username to confirm: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if answer != sess.Username {
		c.io.Println("Aborted.")
		return nil
	}

	if err := c.marketService.DeleteUser(ctx, sess.Username); err != nil {
		return err
	}

	// Сессия удалённого пользователя больше не имеет смысла.
	if err := c.sessionStore.Clear(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	c.io.Printf("✓ User %s deleted.\n", sess.Username)
	return nil
}
