package store

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned when a title is empty after trimming.
	ErrValidation = errors.New("title cannot be empty")

	// ErrNotFound is returned when an operation references an unknown task id.
	ErrNotFound = errors.New("task not found")
)

// PersistenceError reports a failed read or write of the persisted
// collection. It is never fatal: the in-memory collection stays
// authoritative for the rest of the session.
type PersistenceError struct {
	Op  string // "load", "save" or "preserve"
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistence reports whether err carries a *PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
