package models

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	ErrValidation  = errors.New("ledger: validation failed")
	ErrNotFound    = errors.New("ledger: not found")
	ErrPersistence = errors.New("ledger: persistence failed")
)

// ValidationError reports malformed or incomplete input. Nothing is mutated
// when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("ledger: validation failed for %s: %s", e.Field, e.Message)
}

func (e ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports an id absent from the catalog or the entry store.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("ledger: %s %q not found", e.Kind, e.ID)
}

func (e NotFoundError) Is(target error) bool { return target == ErrNotFound }

// PersistenceError reports that a snapshot could not be written or read.
// The in-memory mutation that triggered a failed save stays applied.
type PersistenceError struct {
	Key string
	Err error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("ledger: persist %s: %v", e.Key, e.Err)
}

func (e PersistenceError) Unwrap() error { return e.Err }

func (e PersistenceError) Is(target error) bool { return target == ErrPersistence }

// IsValidation returns true if err is a validation failure.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound returns true if err refers to an unknown id.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsPersistence returns true if err came from the persistence gateway.
func IsPersistence(err error) bool { return errors.Is(err, ErrPersistence) }
