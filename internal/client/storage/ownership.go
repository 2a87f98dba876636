package storage

import (
	"context"

	"github.com/iudanet/carmarket/internal/models"
)

//go:generate moq -out ownership_mock.go . OwnershipStore

// OwnershipStore defines typed operations over the user-owns-car edges.
// Edges are created implicitly by CarStore.AddCar; here only reads and
// deletes are exposed.
type OwnershipStore interface {
	// OwnershipsOf returns the active edges of the given user.
	OwnershipsOf(ctx context.Context, username string) ([]models.Ownership, error)

	// DeleteOwnership removes a single edge, applying the same
	// soft-or-hard delete policy as entity deletes.
	DeleteOwnership(ctx context.Context, username, carID string) error
}
