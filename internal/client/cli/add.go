package cli

import (
	"context"
	"fmt"
)

// runAddCar добавляет машину текущему пользователю. Модель и цена
// берутся из аргументов или запрашиваются интерактивно.
func (c *Cli) runAddCar(ctx context.Context, args []string) error {
	sess, err := c.currentSession(ctx)
	if err != nil {
		return err
	}

	var model, valueArg string
	if len(args) >= 2 {
		model, valueArg = args[0], args[1]
	} else {
		model, err = c.io.ReadInput("Model: ")
		if err != nil {
			return fmt.Errorf("failed to read model: %w", err)
		}
		valueArg, err = c.io.ReadInput("Value: ")
		if err != nil {
			return fmt.Errorf("failed to read value: %w", err)
		}
	}

	if model == "" {
		return fmt.Errorf("model must not be empty")
	}

	value, err := parseValue(valueArg)
	if err != nil {
		return err
	}

	id, err := c.marketService.AddCar(ctx, sess.Username, model, value)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Car added: %s\n", id)
	return nil
}
