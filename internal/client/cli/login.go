package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/carmarket/internal/client/session"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println("")

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	// Проверяем только существование: паролей и токенов у клиента нет.
	user, err := c.marketService.Login(ctx, username)
	if err != nil {
		return err
	}

	sess := &session.Session{
		Username: user.Username,
		LoginAt:  time.Now(),
	}
	if err := c.sessionStore.Save(ctx, sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Println("")
	c.io.Printf("✓ Logged in as %s\n", user.Username)

	return nil
}
