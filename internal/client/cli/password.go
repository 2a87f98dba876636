package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runChangePassword(ctx context.Context) error {
	sess, err := c.currentSession(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Change Password ===")
	c.io.Println("")

	oldPassword, err := c.io.ReadPassword("Current password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	newPassword, err := c.io.ReadPassword("New password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm new password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if newPassword != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if err := c.marketService.ChangePassword(ctx, sess.Username, oldPassword, newPassword); err != nil {
		return err
	}

	c.io.Println("")
	c.io.Println("✓ Password changed.")
	return nil
}
