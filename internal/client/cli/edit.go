package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runEditCar(ctx context.Context, args []string) error {
	if _, err := c.currentSession(ctx); err != nil {
		return err
	}

	if len(args) < 1 {
		return fmt.Errorf("usage: carmarket edit-car CAR_ID")
	}
	id := args[0]

	model, err := c.io.ReadInput("New model: ")
	if err != nil {
		return fmt.Errorf("failed to read model: %w", err)
	}
	if model == "" {
		return fmt.Errorf("model must not be empty")
	}

	valueArg, err := c.io.ReadInput("New value: ")
	if err != nil {
		return fmt.Errorf("failed to read value: %w", err)
	}
	value, err := parseValue(valueArg)
	if err != nil {
		return err
	}

	if err := c.marketService.EditCar(ctx, id, model, value); err != nil {
		return err
	}

	c.io.Println("✓ Car updated.")
	return nil
}
