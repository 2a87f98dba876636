package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iudanet/carmarket/internal/client/storage"
	"github.com/iudanet/carmarket/internal/models"
)

// LastSync returns the most recently committed sync anchor.
// Якорь — единственный персистентный курсор; до первой успешной
// синхронизации строки в SyncProperties нет вовсе.
func (s *Storage) LastSync(ctx context.Context) (int64, error) {
	var ts int64
	err := s.db.QueryRowContext(ctx, `SELECT lastSync FROM SyncProperties LIMIT 1`).Scan(&ts)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrNeverSynced
		}
		return 0, storage.NewStorageError("select last sync", err)
	}
	return ts, nil
}

// SetLastSync persists ts as the new sync anchor.
func (s *Storage) SetLastSync(ctx context.Context, ts int64) error {
	return s.withTx(ctx, "set last sync", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `UPDATE SyncProperties SET lastSync = ?`, ts)
		if err != nil {
			return storage.NewStorageError("update last sync", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return storage.NewStorageError("update last sync", err)
		}
		if rows == 0 {
			if _, err := tx.ExecContext(ctx, `INSERT INTO SyncProperties (lastSync) VALUES (?)`, ts); err != nil {
				return storage.NewStorageError("insert last sync", err)
			}
		}

		return nil
	})
}

// ActiveConflicts counts active rows in the three conflict tables.
func (s *Storage) ActiveConflicts(ctx context.Context) (models.ConflictCounts, error) {
	var counts models.ConflictCounts
	var err error

	if counts.Users, err = countActive(ctx, s.db, prefixConflict, tableUsers); err != nil {
		return models.ConflictCounts{}, err
	}
	if counts.Cars, err = countActive(ctx, s.db, prefixConflict, tableCars); err != nil {
		return models.ConflictCounts{}, err
	}
	if counts.Ownership, err = countActive(ctx, s.db, prefixConflict, tableOwnership); err != nil {
		return models.ConflictCounts{}, err
	}

	return counts, nil
}

// RecordUserConflict marks a username as conflicted.
func (s *Storage) RecordUserConflict(ctx context.Context, username string) error {
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO ConflictUsers (username, isActive) VALUES (?, 1)
		ON CONFLICT(username) DO UPDATE SET isActive = 1
	`, username); err != nil {
		return storage.NewStorageError("record user conflict", err)
	}
	return nil
}

// RecordCarConflict marks a car UUID as conflicted.
func (s *Storage) RecordCarConflict(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO ConflictCars (uuid, isActive) VALUES (?, 1)
		ON CONFLICT(uuid) DO UPDATE SET isActive = 1
	`, id); err != nil {
		return storage.NewStorageError("record car conflict", err)
	}
	return nil
}

// RecordOwnershipConflict marks an ownership edge as conflicted.
func (s *Storage) RecordOwnershipConflict(ctx context.Context, username, carID string) error {
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO ConflictUserOwnCar (user, carId, isActive) VALUES (?, ?, 1)
		ON CONFLICT(user, carId) DO UPDATE SET isActive = 1
	`, username, carID); err != nil {
		return storage.NewStorageError("record ownership conflict", err)
	}
	return nil
}
