package storage

import (
	"errors"
	"fmt"
)

// Common storage errors
var (
	// ErrNotFound indicates that the referenced key has no active
	// authoritative row.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists indicates a unique key collision on create.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrDataCorruption indicates an invariant violation, e.g. more than
	// one active row per primary key. Not recoverable by the caller.
	ErrDataCorruption = errors.New("data corruption: invariant violated")

	// ErrNeverSynced indicates that no sync anchor has been committed yet.
	ErrNeverSynced = errors.New("never synchronized")

	// ErrSessionNotFound indicates that no login session is stored.
	ErrSessionNotFound = errors.New("session not found")
)

// StorageError оборачивает ошибку локального I/O вместе с намерением
// неудавшегося запроса. Хранилище не ретраит: политика повторов —
// забота вызывающего.
type StorageError struct {
	Op  string // интент запроса, например "insert car"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err with the intent of the failing statement.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}
