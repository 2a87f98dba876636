package storage

import (
	"context"

	"github.com/iudanet/carmarket/internal/models"
)

//go:generate moq -out users_mock.go . UserStore

// UserStore defines typed CRUD operations over the user record sets.
type UserStore interface {
	// CreateUser inserts a new user into the authoritative table and its
	// shadow row (provenance: new). Returns ErrAlreadyExists when an
	// active row with the same username is present.
	CreateUser(ctx context.Context, username, password string) error

	// GetUser returns the active authoritative row for username.
	// Returns ErrNotFound when absent, ErrDataCorruption when more than
	// one active row matches the key.
	GetUser(ctx context.Context, username string) (*models.User, error)

	// UpdateUserPassword overwrites the payload of an existing user.
	// The shadow row keeps the "new" class when the user has never been
	// synchronized, otherwise it becomes "modified".
	UpdateUserPassword(ctx context.Context, username, password string) error

	// DeleteUser removes the user and cascades to owned cars and
	// ownership edges first. Never-synced rows are physically deleted,
	// synced ones are deactivated (tombstoned).
	DeleteUser(ctx context.Context, username string) error
}
