package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/carmarket/internal/client/storage"
	"github.com/iudanet/carmarket/internal/models"
)

// AddCar generates a client-side UUID for the car and inserts, as one
// all-or-nothing batch, the car, its shadow row, the ownership edge and
// the edge's shadow row. Returns the generated UUID.
func (s *Storage) AddCar(ctx context.Context, username string, car *models.Car) (string, error) {
	id := uuid.New().String()
	now := time.Now().UnixMilli()

	err := s.withTx(ctx, "add car", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO Cars (uuid, model, value, isActive, modifiedAt) VALUES (?, ?, ?, 1, ?)`,
			id, car.Model, car.Value, now,
		); err != nil {
			return storage.NewStorageError("insert car", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO LocalCars (uuid, isFromServer, isModified, isActive) VALUES (?, 0, 0, 1)`,
			id,
		); err != nil {
			return storage.NewStorageError("insert car shadow", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO UserOwnCar (user, carId, isActive, modifiedAt) VALUES (?, ?, 1, ?)`,
			username, id, now,
		); err != nil {
			return storage.NewStorageError("insert ownership", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO LocalUserOwnCar (user, carId, isFromServer, isModified, isActive) VALUES (?, ?, 0, 0, 1)`,
			username, id,
		); err != nil {
			return storage.NewStorageError("insert ownership shadow", err)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// GetCar returns the active authoritative row for the given UUID.
// Инвариант "не больше одной активной строки на ключ" проверяется
// после веерного чтения.
func (s *Storage) GetCar(ctx context.Context, id string) (*models.Car, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT uuid, model, value, isActive, modifiedAt FROM Cars WHERE uuid = ? AND isActive = 1`,
		id,
	)
	if err != nil {
		return nil, storage.NewStorageError("select car", err)
	}
	defer rows.Close()

	var found []models.Car
	for rows.Next() {
		var c models.Car
		var active int
		if err := rows.Scan(&c.UUID, &c.Model, &c.Value, &active, &c.ModifiedAt); err != nil {
			return nil, storage.NewStorageError("scan car", err)
		}
		c.Active = intToBool(active)
		found = append(found, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.NewStorageError("select car", err)
	}

	switch len(found) {
	case 0:
		return nil, storage.ErrNotFound
	case 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("%w: %d active rows for car %q", storage.ErrDataCorruption, len(found), id)
	}
}

// UserCars returns the active cars owned by username.
func (s *Storage) UserCars(ctx context.Context, username string) ([]models.Car, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.uuid, c.model, c.value, c.isActive, c.modifiedAt
		FROM Cars c
		JOIN UserOwnCar o ON o.carId = c.uuid
		WHERE o.user = ? AND o.isActive = 1 AND c.isActive = 1
		ORDER BY c.uuid
	`, username)
	if err != nil {
		return nil, storage.NewStorageError("select user cars", err)
	}
	defer rows.Close()

	var cars []models.Car
	for rows.Next() {
		var c models.Car
		var active int
		if err := rows.Scan(&c.UUID, &c.Model, &c.Value, &active, &c.ModifiedAt); err != nil {
			return nil, storage.NewStorageError("scan user car", err)
		}
		c.Active = intToBool(active)
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.NewStorageError("select user cars", err)
	}

	return cars, nil
}

// UpdateCar overwrites model and value of an existing car.
// Read-before-write: отсутствующая строка — ErrNotFound, не upsert.
func (s *Storage) UpdateCar(ctx context.Context, car *models.Car) error {
	now := time.Now().UnixMilli()

	return s.withTx(ctx, "update car", func(tx *sql.Tx) error {
		flags, err := shadowFlags(ctx, tx, tableCars, car.UUID)
		if err != nil {
			return err
		}
		if !flags.Active {
			return storage.ErrNotFound
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE Cars SET model = ?, value = ?, modifiedAt = ? WHERE uuid = ?`,
			car.Model, car.Value, now, car.UUID,
		); err != nil {
			return storage.NewStorageError("update car", err)
		}

		next := models.FlagsLocalModified
		if flags.Class() == models.ClassNew {
			next = models.FlagsLocalNew
		}
		return setShadowFlags(ctx, tx, tableCars, next, car.UUID)
	})
}

// DeleteCar removes the car. Its ownership edges are torn down first,
// then the car row itself (Scenario: edge before resource).
func (s *Storage) DeleteCar(ctx context.Context, id string) error {
	now := time.Now().UnixMilli()

	return s.withTx(ctx, "delete car", func(tx *sql.Tx) error {
		return deleteCarTx(ctx, tx, now, id)
	})
}

// deleteCarTx applies the cascade-aware delete policy to one car inside
// an open transaction.
func deleteCarTx(ctx context.Context, tx *sql.Tx, now int64, id string) error {
	flags, err := shadowFlags(ctx, tx, tableCars, id)
	if err != nil {
		return err
	}
	if !flags.Active {
		return storage.ErrNotFound
	}

	owners, err := activeEdgeOwners(ctx, tx, id)
	if err != nil {
		return err
	}
	for _, owner := range owners {
		if err := deleteEdgeTx(ctx, tx, now, owner, id); err != nil {
			return err
		}
	}

	if flags.Class() == models.ClassNew {
		if err := deleteRow(ctx, tx, prefixAuthoritative, tableCars, id); err != nil {
			return err
		}
		return deleteRow(ctx, tx, prefixLocal, tableCars, id)
	}

	if err := deactivateAuthoritative(ctx, tx, tableCars, now, id); err != nil {
		return err
	}
	return setShadowFlags(ctx, tx, tableCars, models.FlagsTombstone, id)
}

// purgeCarTx physically removes the car and all its edge rows.
func purgeCarTx(ctx context.Context, tx *sql.Tx, id string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM LocalUserOwnCar WHERE carId = ?`, id); err != nil {
		return storage.NewStorageError("purge car edges shadow", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM UserOwnCar WHERE carId = ?`, id); err != nil {
		return storage.NewStorageError("purge car edges", err)
	}
	if err := deleteRow(ctx, tx, prefixAuthoritative, tableCars, id); err != nil {
		return err
	}
	return deleteRow(ctx, tx, prefixLocal, tableCars, id)
}

// TrackedCars returns every locally known car row joined with its
// shadow flags, including tombstones.
func (s *Storage) TrackedCars(ctx context.Context) ([]models.TrackedCar, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.uuid, c.model, c.value, c.isActive, c.modifiedAt,
		       l.isFromServer, l.isModified, l.isActive
		FROM LocalCars l
		JOIN Cars c ON c.uuid = l.uuid
		ORDER BY c.uuid
	`)
	if err != nil {
		return nil, storage.NewStorageError("select tracked cars", err)
	}
	defer rows.Close()

	var tracked []models.TrackedCar
	for rows.Next() {
		var t models.TrackedCar
		var active, fromServer, modified, shadowActive int
		if err := rows.Scan(&t.UUID, &t.Model, &t.Value, &active, &t.ModifiedAt,
			&fromServer, &modified, &shadowActive); err != nil {
			return nil, storage.NewStorageError("scan tracked car", err)
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
		return nil, storage.NewStorageError("select tracked cars", err)
	}

	return tracked, nil
}

// SaveServerCar overwrites the authoritative row with server state and
// stamps the shadow row as from-server.
func (s *Storage) SaveServerCar(ctx context.Context, c models.Car, anchor int64, merged bool) error {
	return s.withTx(ctx, "save server car", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO Cars (uuid, model, value, isActive, modifiedAt)
			VALUES (?, ?, ?, 1, ?)
			ON CONFLICT(uuid) DO UPDATE SET
				model = excluded.model,
				value = excluded.value,
				isActive = 1,
				modifiedAt = excluded.modifiedAt
		`, c.UUID, c.Model, c.Value, anchor); err != nil {
			return storage.NewStorageError("upsert server car", err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO LocalCars (uuid, isFromServer, isModified, isActive)
			VALUES (?, 1, ?, 1)
			ON CONFLICT(uuid) DO UPDATE SET
				isFromServer = 1,
				isModified = excluded.isModified,
				isActive = 1
		`, c.UUID, boolToInt(merged)); err != nil {
			return storage.NewStorageError("upsert server car shadow", err)
		}

		return nil
	})
}

// ConfirmCar resets the shadow row to the clean class.
func (s *Storage) ConfirmCar(ctx context.Context, id string) error {
	return setShadowFlags(ctx, s.db, tableCars, models.FlagsServerClean, id)
}

// PurgeCar physically removes the car and its edges. Только для движка
// синхронизации: ключ исчез из авторитетного списка сервера.
func (s *Storage) PurgeCar(ctx context.Context, id string) error {
	return s.withTx(ctx, "purge car", func(tx *sql.Tx) error {
		return purgeCarTx(ctx, tx, id)
	})
}
