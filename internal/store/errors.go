package store

import (
	"errors"
	"fmt"
)

// ErrValidation indicates a malformed dataset import payload: unparseable
// JSON or missing required top-level fields. Detected before any mutation.
type ErrValidation struct {
	Msg string
	Err error
}

func (e *ErrValidation) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid dataset payload: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("invalid dataset payload: %s", e.Msg)
}

func (e *ErrValidation) Unwrap() error { return e.Err }

// ErrFormat indicates a backup that cannot be restored: unparseable JSON
// or a schema version other than the one this build writes.
type ErrFormat struct {
	Msg string
	Err error
}

func (e *ErrFormat) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid backup: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("invalid backup: %s", e.Msg)
}

func (e *ErrFormat) Unwrap() error { return e.Err }

// ErrNotFound indicates an operation referencing a dataset or card id
// that does not exist.
type ErrNotFound struct {
	Kind string // "dataset" or "card"
	Key  string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// ErrPersistence indicates the underlying atomic operation group failed
// to commit. The store is left as it was before the group started.
type ErrPersistence struct {
	Op  string
	Err error
}

func (e *ErrPersistence) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *ErrPersistence) Unwrap() error { return e.Err }

// IsNotFound reports whether err is an ErrNotFound.
func IsNotFound(err error) bool {
	var nf *ErrNotFound
	return errors.As(err, &nf)
}
