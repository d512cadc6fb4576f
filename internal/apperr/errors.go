// Package apperr defines the error taxonomy shared across service layers.
package apperr

import (
	"errors"
	"strings"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("authentication required")
)

// ValidationError carries one or more user-facing validation messages.
// Raised at the persistence-adjacent layer it maps to 422; handlers raise
// their own 400-level responses for missing input before services run.
type ValidationError struct {
	Messages []string
}

// NewValidation builds a ValidationError from the given messages.
func NewValidation(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// ConflictError reports a uniqueness violation. Field is "username" or
// "email" when the violated constraint could be attributed, empty otherwise.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	switch e.Field {
	case "username":
		return "Username already exists"
	case "email":
		return "Email already exists"
	default:
		return "Registration failed"
	}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var cerr *ConflictError
	return errors.As(err, &cerr)
}
