package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/carmarket/internal/client/storage"
	"github.com/iudanet/carmarket/internal/models"
)

// CreateUser inserts a new user into the authoritative table and its
// shadow row with the "new" provenance class.
func (s *Storage) CreateUser(ctx context.Context, username, password string) error {
	now := time.Now().UnixMilli()

	return s.withTx(ctx, "create user", func(tx *sql.Tx) error {
		flags, err := shadowFlags(ctx, tx, tableUsers, username)
		switch {
		case err == nil && flags.Active:
			return storage.ErrAlreadyExists
		case err == nil:
			// Tombstone под тем же username: ключ когда-то синхронизировался,
			// поэтому воскрешаем строку как локально изменённую.
			if _, err := tx.ExecContext(ctx,
				`UPDATE Users SET password = ?, isActive = 1, modifiedAt = ? WHERE username = ?`,
				password, now, username,
			); err != nil {
				return storage.NewStorageError("resurrect user", err)
			}
			return setShadowFlags(ctx, tx, tableUsers, models.FlagsLocalModified, username)
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO Users (username, password, isActive, modifiedAt) VALUES (?, ?, 1, ?)`,
			username, password, now,
		); err != nil {
			return storage.NewStorageError("insert user", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO LocalUsers (username, isFromServer, isModified, isActive) VALUES (?, 0, 0, 1)`,
			username,
		); err != nil {
			return storage.NewStorageError("insert user shadow", err)
		}

		return nil
	})
}

// GetUser returns the active authoritative row for username.
//
// Читает веером и пересчитывает строки: дубликат первичного ключа
// невозможен по схеме, но проверяется как инвариант (DataCorruption).
func (s *Storage) GetUser(ctx context.Context, username string) (*models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT username, password, isActive, modifiedAt FROM Users WHERE username = ? AND isActive = 1`,
		username,
	)
	if err != nil {
		return nil, storage.NewStorageError("select user", err)
	}
	defer rows.Close()

	var found []models.User
	for rows.Next() {
		var u models.User
		var active int
		if err := rows.Scan(&u.Username, &u.Password, &active, &u.ModifiedAt); err != nil {
			return nil, storage.NewStorageError("scan user", err)
		}
		u.Active = intToBool(active)
		found = append(found, u)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.NewStorageError("select user", err)
	}

	switch len(found) {
	case 0:
		return nil, storage.ErrNotFound
	case 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("%w: %d active rows for user %q", storage.ErrDataCorruption, len(found), username)
	}
}

// UpdateUserPassword overwrites the payload of an existing user.
// Любая локальная запись снимает isFromServer; isModified поднимается
// только если строка уже синхронизировалась (класс "new" сохраняется).
func (s *Storage) UpdateUserPassword(ctx context.Context, username, password string) error {
	now := time.Now().UnixMilli()

	return s.withTx(ctx, "update user", func(tx *sql.Tx) error {
		flags, err := shadowFlags(ctx, tx, tableUsers, username)
		if err != nil {
			return err
		}
		if !flags.Active {
			return storage.ErrNotFound
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE Users SET password = ?, modifiedAt = ? WHERE username = ?`,
			password, now, username,
		); err != nil {
			return storage.NewStorageError("update user", err)
		}

		next := models.FlagsLocalModified
		if flags.Class() == models.ClassNew {
			next = models.FlagsLocalNew
		}
		return setShadowFlags(ctx, tx, tableUsers, next, username)
	})
}

// DeleteUser removes the user, cascading over owned cars and ownership
// edges first. Порядок важен: рёбра и машины разбираются до владельца.
func (s *Storage) DeleteUser(ctx context.Context, username string) error {
	now := time.Now().UnixMilli()

	return s.withTx(ctx, "delete user", func(tx *sql.Tx) error {
		flags, err := shadowFlags(ctx, tx, tableUsers, username)
		if err != nil {
			return err
		}
		if !flags.Active {
			return storage.ErrNotFound
		}

		carIDs, err := activeEdgeCars(ctx, tx, username)
		if err != nil {
			return err
		}
		for _, carID := range carIDs {
			if err := deleteCarTx(ctx, tx, now, carID); err != nil {
				// Машина могла уже быть удалена другим ребром каскада.
				if errors.Is(err, storage.ErrNotFound) {
					continue
				}
				return err
			}
		}

		// Рёбра, у которых машина уже отсутствовала, всё ещё могут висеть.
		leftovers, err := activeEdgeCars(ctx, tx, username)
		if err != nil {
			return err
		}
		for _, carID := range leftovers {
			if err := deleteEdgeTx(ctx, tx, now, username, carID); err != nil {
				return err
			}
		}

		return deleteUserRowTx(ctx, tx, now, username, flags)
	})
}

// deleteUserRowTx applies the soft-or-hard delete policy to the user row.
func deleteUserRowTx(ctx context.Context, tx *sql.Tx, now int64, username string, flags models.ShadowFlags) error {
	if flags.Class() == models.ClassNew {
		// Сервер этой строки не видел: физическое удаление.
		if err := deleteRow(ctx, tx, prefixAuthoritative, tableUsers, username); err != nil {
			return err
		}
		return deleteRow(ctx, tx, prefixLocal, tableUsers, username)
	}

	if err := deactivateAuthoritative(ctx, tx, tableUsers, now, username); err != nil {
		return err
	}
	return setShadowFlags(ctx, tx, tableUsers, models.FlagsTombstone, username)
}

// TrackedUsers returns every locally known user row joined with its
// shadow flags, including tombstones.
func (s *Storage) TrackedUsers(ctx context.Context) ([]models.TrackedUser, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u.username, u.password, u.isActive, u.modifiedAt,
		       l.isFromServer, l.isModified, l.isActive
		FROM LocalUsers l
		JOIN Users u ON u.username = l.username
		ORDER BY u.username
	`)
	if err != nil {
		return nil, storage.NewStorageError("select tracked users", err)
	}
	defer rows.Close()

	var tracked []models.TrackedUser
	for rows.Next() {
		var t models.TrackedUser
		var active, fromServer, modified, shadowActive int
		if err := rows.Scan(&t.Username, &t.Password, &active, &t.ModifiedAt,
			&fromServer, &modified, &shadowActive); err != nil {
			return nil, storage.NewStorageError("scan tracked user", err)
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
		return nil, storage.NewStorageError("select tracked users", err)
	}

	return tracked, nil
}

// SaveServerUser overwrites the authoritative row with server state and
// stamps the shadow row as from-server. merged помечает строку как
// перезаписанную при reconcile (modified-by-merge).
func (s *Storage) SaveServerUser(ctx context.Context, u models.User, anchor int64, merged bool) error {
	return s.withTx(ctx, "save server user", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO Users (username, password, isActive, modifiedAt)
			VALUES (?, ?, 1, ?)
			ON CONFLICT(username) DO UPDATE SET
				password = excluded.password,
				isActive = 1,
				modifiedAt = excluded.modifiedAt
		`, u.Username, u.Password, anchor); err != nil {
			return storage.NewStorageError("upsert server user", err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO LocalUsers (username, isFromServer, isModified, isActive)
			VALUES (?, 1, ?, 1)
			ON CONFLICT(username) DO UPDATE SET
				isFromServer = 1,
				isModified = excluded.isModified,
				isActive = 1
		`, u.Username, boolToInt(merged)); err != nil {
			return storage.NewStorageError("upsert server user shadow", err)
		}

		return nil
	})
}

// ConfirmUser resets the shadow row to the clean class, clearing any
// stale modified flag.
func (s *Storage) ConfirmUser(ctx context.Context, username string) error {
	return setShadowFlags(ctx, s.db, tableUsers, models.FlagsServerClean, username)
}

// PurgeUser physically removes the user and everything reachable from it.
// Используется только движком синхронизации: отсутствие ключа в ответе
// сервера означает, что удаление уже доставлено.
func (s *Storage) PurgeUser(ctx context.Context, username string) error {
	return s.withTx(ctx, "purge user", func(tx *sql.Tx) error {
		carIDs, err := allEdgeCars(ctx, tx, username)
		if err != nil {
			return err
		}
		for _, carID := range carIDs {
			if err := purgeCarTx(ctx, tx, carID); err != nil {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM LocalUserOwnCar WHERE user = ?`, username); err != nil {
			return storage.NewStorageError("purge user edges shadow", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM UserOwnCar WHERE user = ?`, username); err != nil {
			return storage.NewStorageError("purge user edges", err)
		}

		if err := deleteRow(ctx, tx, prefixAuthoritative, tableUsers, username); err != nil {
			return err
		}
		return deleteRow(ctx, tx, prefixLocal, tableUsers, username)
	})
}
