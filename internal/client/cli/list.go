package cli

import (
	"context"
)

func (c *Cli) runCars(ctx context.Context) error {
	sess, err := c.currentSession(ctx)
	if err != nil {
		return err
	}

	cars, err := c.marketService.Cars(ctx, sess.Username)
	if err != nil {
		return err
	}

	c.io.Printf("=== Cars of %s ===\n", sess.Username)
	c.io.Println("")

	if len(cars) == 0 {
		c.io.Println("No cars found.")
		c.io.Println("Run 'carmarket add-car' to add one.")
		return nil
	}

	for _, car := range cars {
		c.io.Printf("%s  %-20s %d\n", car.UUID, car.Model, car.Value)
	}
	c.io.Println("")
	c.io.Printf("Total: %d car(s)\n", len(cars))

	return nil
}
