package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is malformed or invalid.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrUnauthorized is returned when a request has no authenticated caller.
	ErrUnauthorized = errors.New("authorization required")
)

// ValidationError carries the field that failed validation along with a
// human-readable reason. It wraps a sentinel error so callers can still
// discriminate with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// Unwrap returns the wrapped sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError wrapping the given sentinel.
func NewValidationError(field, reason string, err error) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Err: err}
}
