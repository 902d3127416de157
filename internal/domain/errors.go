package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by repositories, services and controllers.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrStorage      = errors.New("storage error")
)

// StorageError reports that a backing store was unreachable, aborted the operation,
// or rejected it (e.g. a constraint violation). Callers may retry.
type StorageError struct {
	Op  string
	Err error
}

// NewStorageError wraps err as a StorageError for the given operation. A nil err yields nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrStorage) true for any StorageError.
func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// ValidationError returns an error wrapping ErrInvalidInput with a human readable message.
func ValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
