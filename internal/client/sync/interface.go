package sync

import (
	"context"

	"github.com/iudanet/carmarket/internal/models"
	"github.com/iudanet/carmarket/pkg/api"
)

//go:generate moq -out transport_mock.go . Transport

// Transport — сетевая сторона синхронизации.
type Transport interface {
	// ServerTime возвращает текущее время сервера (epoch millis).
	// Это время становится sync-якорем после успешного reconcile.
	ServerTime(ctx context.Context) (int64, error)

	// Synchronize отправляет change-set и возвращает полное
	// авторитетное состояние сервера после мержа.
	Synchronize(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error)
}

//go:generate moq -out store_mock.go . Store

// Store — локальная сторона синхронизации: shadow-хранилище,
// conflict-таблицы и sync-якорь.
type Store interface {
	// ActiveConflicts counts active rows in the conflict tables.
	ActiveConflicts(ctx context.Context) (models.ConflictCounts, error)

	// SetLastSync commits the fetched anchor.
	SetLastSync(ctx context.Context, ts int64) error

	// Tracked* return all shadow rows joined with their authoritative
	// payload, including tombstones.
	TrackedUsers(ctx context.Context) ([]models.TrackedUser, error)
	TrackedCars(ctx context.Context) ([]models.TrackedCar, error)
	TrackedOwnership(ctx context.Context) ([]models.TrackedOwnership, error)

	// SaveServer* upsert the authoritative row with server state and
	// mark the shadow row as server-origin (merged=true отличает
	// перезаписанную при мерже строку от просто подтверждённой).
	SaveServerUser(ctx context.Context, u models.User, anchor int64, merged bool) error
	SaveServerCar(ctx context.Context, c models.Car, anchor int64, merged bool) error
	SaveServerOwnership(ctx context.Context, o models.Ownership, anchor int64, merged bool) error

	// Confirm* reset the shadow row to the clean class.
	ConfirmUser(ctx context.Context, username string) error
	ConfirmCar(ctx context.Context, uuid string) error
	ConfirmOwnership(ctx context.Context, username, carID string) error

	// Purge* physically remove all rows for a key. Only the engine may
	// hard-delete rows the server has already seen.
	PurgeUser(ctx context.Context, username string) error
	PurgeCar(ctx context.Context, uuid string) error
	PurgeOwnership(ctx context.Context, username, carID string) error

	// Record* mark a key as conflicted; active conflict rows block the
	// next synchronization until resolved.
	RecordUserConflict(ctx context.Context, username string) error
	RecordCarConflict(ctx context.Context, uuid string) error
	RecordOwnershipConflict(ctx context.Context, username, carID string) error
}
