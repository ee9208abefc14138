// Package errors provides custom error types for product-related operations.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound is returned by stores when no row matches the lookup.
	ErrProductNotFound = errors.New("product not found")
	// ErrValidation marks client-correctable batch validation failures.
	ErrValidation = errors.New("validation failed")
	// ErrStorage marks connectivity or constraint failures from a store.
	ErrStorage = errors.New("storage failure")
)

// NotFoundError reports that no visible (or, for hard delete, no existing) product has the given ID.
type NotFoundError struct {
	ID int64
}

func NewNotFound(id int64) *NotFoundError {
	return &NotFoundError{ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product with id #%d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}

// ValidationError reports a mismatch between requested and existing product IDs,
// or a store failure that happened while checking them.
type ValidationError struct {
	Message    string
	MissingIDs []int64
	Err        error
}

func NewValidation(message string, missing []int64) *ValidationError {
	return &ValidationError{Message: message, MissingIDs: missing}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// StorageError wraps a failure returned by the underlying database.
// It is never retried by the service; transports decide whether it is transient.
type StorageError struct {
	Op  string
	Err error
}

func NewStorage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
