package store

import (
	"errors"
	"fmt"
)

// StoreError represents a failure of a single store operation.
//
// Every operation is its own transaction, so an error never leaves the
// collection partially mutated. Errors are recovered at the operation
// boundary; none are fatal to the process.
type StoreError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// ID identifies the affected record, when one is known.
	ID int64

	// Err is the underlying storage error, if any.
	Err error
}

// ErrorCode categorizes store errors.
type ErrorCode string

const (
	// ErrCodeConflict indicates an insert with an id that already exists.
	ErrCodeConflict ErrorCode = "CONFLICT"

	// ErrCodeNotFound indicates a lookup for an id that does not exist.
	// Deletes of missing ids are NOT errors (idempotent delete).
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeTxFailed indicates the transaction could not commit
	// (store closed, quota exceeded, disk error).
	ErrCodeTxFailed ErrorCode = "TX_FAILED"
)

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s: %s (id=%d)", e.Code, e.Message, e.ID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying storage error.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsConflict returns true if the error is a duplicate-id insert.
// Uses errors.As to handle wrapped errors.
func IsConflict(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == ErrCodeConflict
}

// IsNotFound returns true if the error is a missing-record lookup.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == ErrCodeNotFound
}

func newConflictError(id int64, err error) *StoreError {
	return &StoreError{
		Code:    ErrCodeConflict,
		Message: "record with this id already exists",
		ID:      id,
		Err:     err,
	}
}

func newNotFoundError(id int64) *StoreError {
	return &StoreError{
		Code:    ErrCodeNotFound,
		Message: "record not found",
		ID:      id,
	}
}

func newTxError(op string, id int64, err error) *StoreError {
	return &StoreError{
		Code:    ErrCodeTxFailed,
		Message: op,
		ID:      id,
		Err:     err,
	}
}
