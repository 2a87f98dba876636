package storage

import (
	"context"

	"github.com/iudanet/carmarket/internal/models"
)

//go:generate moq -out syncstate_mock.go . SyncStore

// SyncStore exposes the persisted synchronization state: the single
// sync anchor and the conflict tables.
type SyncStore interface {
	// LastSync returns the most recently committed sync anchor
	// (epoch millis, server clock). Returns ErrNeverSynced when no
	// synchronization has completed yet.
	LastSync(ctx context.Context) (int64, error)

	// SetLastSync persists ts as the new sync anchor.
	SetLastSync(ctx context.Context, ts int64) error

	// ActiveConflicts counts active rows in the three conflict tables.
	// Any non-zero count blocks synchronization.
	ActiveConflicts(ctx context.Context) (models.ConflictCounts, error)

	// RecordUserConflict marks a username as conflicted.
	RecordUserConflict(ctx context.Context, username string) error

	// RecordCarConflict marks a car UUID as conflicted.
	RecordCarConflict(ctx context.Context, uuid string) error

	// RecordOwnershipConflict marks an ownership edge as conflicted.
	RecordOwnershipConflict(ctx context.Context, username, carID string) error
}
