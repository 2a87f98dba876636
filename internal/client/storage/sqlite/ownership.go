package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/iudanet/carmarket/internal/client/storage"
	"github.com/iudanet/carmarket/internal/models"
)

// OwnershipsOf returns the active edges of the given user.
func (s *Storage) OwnershipsOf(ctx context.Context, username string) ([]models.Ownership, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user, carId, isActive, modifiedAt
		FROM UserOwnCar
		WHERE user = ? AND isActive = 1
		ORDER BY carId
	`, username)
	if err != nil {
		return nil, storage.NewStorageError("select ownerships", err)
	}
	defer rows.Close()

	var edges []models.Ownership
	for rows.Next() {
		var o models.Ownership
		var active int
		if err := rows.Scan(&o.Username, &o.CarID, &active, &o.ModifiedAt); err != nil {
			return nil, storage.NewStorageError("scan ownership", err)
		}
		o.Active = intToBool(active)
		edges = append(edges, o)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.NewStorageError("select ownerships", err)
	}

	return edges, nil
}

// DeleteOwnership removes a single edge applying the soft-or-hard
// delete policy.
func (s *Storage) DeleteOwnership(ctx context.Context, username, carID string) error {
	now := time.Now().UnixMilli()

	return s.withTx(ctx, "delete ownership", func(tx *sql.Tx) error {
		return deleteEdgeTx(ctx, tx, now, username, carID)
	})
}

// deleteEdgeTx applies the soft-or-hard delete policy to one edge inside
// an open transaction.
func deleteEdgeTx(ctx context.Context, tx *sql.Tx, now int64, username, carID string) error {
	flags, err := shadowFlags(ctx, tx, tableOwnership, username, carID)
	if err != nil {
		return err
	}
	if !flags.Active {
		return storage.ErrNotFound
	}

	if flags.Class() == models.ClassNew {
		if err := deleteRow(ctx, tx, prefixAuthoritative, tableOwnership, username, carID); err != nil {
			return err
		}
		return deleteRow(ctx, tx, prefixLocal, tableOwnership, username, carID)
	}

	if err := deactivateAuthoritative(ctx, tx, tableOwnership, now, username, carID); err != nil {
		return err
	}
	return setShadowFlags(ctx, tx, tableOwnership, models.FlagsTombstone, username, carID)
}

// activeEdgeCars returns the car IDs of the user's active edges.
func activeEdgeCars(ctx context.Context, e execer, username string) ([]string, error) {
	return edgeColumn(ctx, e,
		`SELECT carId FROM LocalUserOwnCar WHERE user = ? AND isActive = 1 ORDER BY carId`, username)
}

// allEdgeCars returns the car IDs of the user's edges, tombstones included.
func allEdgeCars(ctx context.Context, e execer, username string) ([]string, error) {
	return edgeColumn(ctx, e,
		`SELECT carId FROM LocalUserOwnCar WHERE user = ? ORDER BY carId`, username)
}

// activeEdgeOwners returns the usernames of active edges pointing at a car.
func activeEdgeOwners(ctx context.Context, e execer, carID string) ([]string, error) {
	return edgeColumn(ctx, e,
		`SELECT user FROM LocalUserOwnCar WHERE carId = ? AND isActive = 1 ORDER BY user`, carID)
}

func edgeColumn(ctx context.Context, e execer, query string, arg any) ([]string, error) {
	rows, err := e.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, storage.NewStorageError("select edges", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, storage.NewStorageError("scan edge", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.NewStorageError("select edges", err)
	}

	return values, nil
}

// TrackedOwnership returns every locally known edge joined with its
// shadow flags, including tombstones.
func (s *Storage) TrackedOwnership(ctx context.Context) ([]models.TrackedOwnership, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT o.user, o.carId, o.isActive, o.modifiedAt,
		       l.isFromServer, l.isModified, l.isActive
		FROM LocalUserOwnCar l
		JOIN UserOwnCar o ON o.user = l.user AND o.carId = l.carId
		ORDER BY o.user, o.carId
	`)
	if err != nil {
		return nil, storage.NewStorageError("select tracked ownerships", err)
	}
	defer rows.Close()

	var tracked []models.TrackedOwnership
	for rows.Next() {
		var t models.TrackedOwnership
		var active, fromServer, modified, shadowActive int
		if err := rows.Scan(&t.Username, &t.CarID, &active, &t.ModifiedAt,
			&fromServer, &modified, &shadowActive); err != nil {
			return nil, storage.NewStorageError("scan tracked ownership", err)
		}
		t.Active = intToBool(active)
		t.Flags = models.ShadowFlags{
			FromServer: intToBool(fromServer),
			Modified:   intToBool(modified),
			Active:     intToBool(shadowActive),
		}
		tracked = append(tracked, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.NewStorageError("select tracked ownerships", err)
	}

	return tracked, nil
}

// SaveServerOwnership overwrites the edge with server state and stamps
// the shadow row as from-server.
func (s *Storage) SaveServerOwnership(ctx context.Context, o models.Ownership, anchor int64, merged bool) error {
	return s.withTx(ctx, "save server ownership", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO UserOwnCar (user, carId, isActive, modifiedAt)
			VALUES (?, ?, 1, ?)
			ON CONFLICT(user, carId) DO UPDATE SET
				isActive = 1,
				modifiedAt = excluded.modifiedAt
		`, o.Username, o.CarID, anchor); err != nil {
			return storage.NewStorageError("upsert server ownership", err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO LocalUserOwnCar (user, carId, isFromServer, isModified, isActive)
			VALUES (?, ?, 1, ?, 1)
			ON CONFLICT(user, carId) DO UPDATE SET
				isFromServer = 1,
				isModified = excluded.isModified,
				isActive = 1
		`, o.Username, o.CarID, boolToInt(merged)); err != nil {
			return storage.NewStorageError("upsert server ownership shadow", err)
		}

		return nil
	})
}

// ConfirmOwnership resets the edge's shadow row to the clean class.
func (s *Storage) ConfirmOwnership(ctx context.Context, username, carID string) error {
	return setShadowFlags(ctx, s.db, tableOwnership, models.FlagsServerClean, username, carID)
}

// PurgeOwnership physically removes one edge. Только для движка
// синхронизации.
func (s *Storage) PurgeOwnership(ctx context.Context, username, carID string) error {
	return s.withTx(ctx, "purge ownership", func(tx *sql.Tx) error {
		if err := deleteRow(ctx, tx, prefixAuthoritative, tableOwnership, username, carID); err != nil {
			return err
		}
		return deleteRow(ctx, tx, prefixLocal, tableOwnership, username, carID)
	})
}
