package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iudanet/carmarket/internal/client/storage"
	"github.com/iudanet/carmarket/internal/models"
)

// tablePrefix выбирает, к какому из трёх наборов записей сущности
// обращается запрос: авторитетному, shadow или conflict.
type tablePrefix string

const (
	prefixAuthoritative tablePrefix = ""         // последняя слитая истина
	prefixLocal         tablePrefix = "Local"    // флаги происхождения по строкам
	prefixConflict      tablePrefix = "Conflict" // ключи с коллизиями, блокируют sync
)

// shadowTable описывает одну сущность: имя авторитетной таблицы и колонки
// первичного ключа. Имена shadow- и conflict-таблиц получаются префиксом.
type shadowTable struct {
	name string
	key  []string
}

var (
	tableUsers     = shadowTable{name: "Users", key: []string{"username"}}
	tableCars      = shadowTable{name: "Cars", key: []string{"uuid"}}
	tableOwnership = shadowTable{name: "UserOwnCar", key: []string{"user", "carId"}}
)

// qualified returns the physical table name for the given record set.
func (t shadowTable) qualified(p tablePrefix) string {
	return string(p) + t.name
}

// whereKey builds the primary-key predicate, e.g. "user = ? AND carId = ?".
func (t shadowTable) whereKey() string {
	parts := make([]string, len(t.key))
	for i, col := range t.key {
		parts[i] = col + " = ?"
	}
	return strings.Join(parts, " AND ")
}

// execer is satisfied by both *sql.DB and *sql.Tx, so the generic
// operations below run equally inside and outside a transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// withTx выполняет fn в одной транзакции: пакет записей виден последующим
// чтениям целиком или не виден вовсе. Контракт не даёт ACID при падении
// процесса, только целостность пакета внутри этого процесса.
func (s *Storage) withTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storage.NewStorageError(op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storage.NewStorageError(op, err)
	}
	return nil
}

// deleteRow physically removes the key from one record set.
func deleteRow(ctx context.Context, e execer, p tablePrefix, t shadowTable, key ...any) error {
	query := "DELETE FROM " + t.qualified(p) + " WHERE " + t.whereKey()
	if _, err := e.ExecContext(ctx, query, key...); err != nil {
		return storage.NewStorageError("delete "+t.qualified(p), err)
	}
	return nil
}

// deactivateAuthoritative — soft delete авторитетной строки: isActive=0
// плюс новый modifiedAt вместо физического удаления.
func deactivateAuthoritative(ctx context.Context, e execer, t shadowTable, now int64, key ...any) error {
	query := "UPDATE " + t.name + " SET isActive = 0, modifiedAt = ? WHERE " + t.whereKey()
	args := append([]any{now}, key...)
	if _, err := e.ExecContext(ctx, query, args...); err != nil {
		return storage.NewStorageError("deactivate "+t.name, err)
	}
	return nil
}

// setShadowFlags overwrites the provenance flags of one shadow row.
// Returns storage.ErrNotFound when the key has no shadow row: каскад
// мог снять строку, и молчаливый no-op скрыл бы это расхождение.
func setShadowFlags(ctx context.Context, e execer, t shadowTable, f models.ShadowFlags, key ...any) error {
	query := "UPDATE " + t.qualified(prefixLocal) +
		" SET isFromServer = ?, isModified = ?, isActive = ? WHERE " + t.whereKey()
	args := append([]any{boolToInt(f.FromServer), boolToInt(f.Modified), boolToInt(f.Active)}, key...)
	res, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		return storage.NewStorageError("flag "+t.qualified(prefixLocal), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storage.NewStorageError("flag "+t.qualified(prefixLocal), err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// shadowFlags reads the provenance flags of one shadow row.
// Returns storage.ErrNotFound when the key is unknown locally.
func shadowFlags(ctx context.Context, e execer, t shadowTable, key ...any) (models.ShadowFlags, error) {
	query := "SELECT isFromServer, isModified, isActive FROM " + t.qualified(prefixLocal) +
		" WHERE " + t.whereKey()

	var fromServer, modified, active int
	err := e.QueryRowContext(ctx, query, key...).Scan(&fromServer, &modified, &active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ShadowFlags{}, storage.ErrNotFound
		}
		return models.ShadowFlags{}, storage.NewStorageError("read flags "+t.qualified(prefixLocal), err)
	}

	return models.ShadowFlags{
		FromServer: intToBool(fromServer),
		Modified:   intToBool(modified),
		Active:     intToBool(active),
	}, nil
}

// countActive counts active rows in one record set.
func countActive(ctx context.Context, e execer, p tablePrefix, t shadowTable) (int, error) {
	query := "SELECT COUNT(*) FROM " + t.qualified(p) + " WHERE isActive = 1"
	var n int
	if err := e.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, storage.NewStorageError("count "+t.qualified(p), err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(n int) bool {
	return n != 0
}
