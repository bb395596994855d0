// Package domain contains domain entities, seed definitions, and
// domain-specific errors. It depends only on the standard library.
package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy for the storage layer and its callers.

var (
	// ErrNotFound is returned when a lookup by id yields no row. It is a
	// normal branch for callers, not an operational failure.
	ErrNotFound = errors.New("resource not found")

	// ErrConstraint is returned when an invariant is rejected: a unique
	// name collision, a check-constraint failure, a foreign-key reference
	// to a nonexistent id, or the equivalent caller-side validation.
	ErrConstraint = errors.New("constraint violation")

	// ErrStorage is returned for transient storage failures such as pool
	// exhaustion or a lost connection to the database.
	ErrStorage = errors.New("storage unavailable")
)

// DomainError wraps a base error with additional context.
type DomainError struct {
	// Base is the underlying error type (e.g., ErrNotFound)
	Base error

	// Message provides human-readable context
	Message string

	// Field indicates which field caused the error (for validation errors)
	Field string

	// Cause is the underlying driver error, if any
	Cause error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Base.Error(), e.Message, e.Field)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
	}
	return e.Base.Error()
}

// Unwrap supports errors.Is/As against both the base and the cause.
func (e *DomainError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Base, e.Cause}
	}
	return []error{e.Base}
}

// NewNotFoundError creates a not found error naming the missing resource.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Base:    ErrNotFound,
		Message: resource,
	}
}

// NewConstraintError creates a constraint violation with context.
func NewConstraintError(message string) *DomainError {
	return &DomainError{
		Base:    ErrConstraint,
		Message: message,
	}
}

// NewValidationError creates a constraint violation tied to a specific field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Base:    ErrConstraint,
		Message: message,
		Field:   field,
	}
}

// NewStorageError wraps a driver or pool failure as a transient storage error.
func NewStorageError(cause error) *DomainError {
	return &DomainError{
		Base:    ErrStorage,
		Message: cause.Error(),
		Cause:   cause,
	}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConstraint checks if an error is a constraint violation.
func IsConstraint(err error) bool {
	return errors.Is(err, ErrConstraint)
}

// IsValidationError checks if an error is a field-level constraint violation.
func IsValidationError(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Field != "" && errors.Is(err, ErrConstraint)
}

// IsStorage checks if an error is a transient storage failure.
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}
