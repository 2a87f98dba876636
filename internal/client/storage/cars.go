package storage

import (
	"context"

	"github.com/iudanet/carmarket/internal/models"
)

//go:generate moq -out cars_mock.go . CarStore

// CarStore defines typed CRUD operations over the car record sets.
type CarStore interface {
	// AddCar generates a UUID for the car and inserts, as one batch, the
	// authoritative car row, its shadow row, the ownership edge to
	// username and the edge's shadow row. Returns the generated UUID.
	AddCar(ctx context.Context, username string, car *models.Car) (string, error)

	// GetCar returns the active authoritative row for the given UUID.
	// Returns ErrNotFound when absent, ErrDataCorruption when more than
	// one active row matches the key.
	GetCar(ctx context.Context, uuid string) (*models.Car, error)

	// UserCars returns the active cars owned by username.
	UserCars(ctx context.Context, username string) ([]models.Car, error)

	// UpdateCar overwrites model and value of an existing car. The shadow
	// row keeps the "new" class when the car has never been synchronized,
	// otherwise it becomes "modified".
	UpdateCar(ctx context.Context, car *models.Car) error

	// DeleteCar removes the car, tearing down its ownership edges first.
	// Never-synced rows are physically deleted, synced ones are
	// deactivated (tombstoned).
	DeleteCar(ctx context.Context, uuid string) error
}
