// Package shared holds the error kinds and paging rules every aggregate uses.
package shared

import (
	"errors"
	"fmt"
)

// Error kinds. Concrete errors wrap one of these so the HTTP layer can map them to status codes.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("invalid input")
)

// NotFound reports a missing entity by kind and id.
func NotFound(kind, id string) error {
	return fmt.Errorf("%s with ID %s %w", kind, id, ErrNotFound)
}

// Forbidden reports an operation the caller may not perform.
func Forbidden(reason string) error {
	return fmt.Errorf("%w: %s", ErrForbidden, reason)
}

// Invalid wraps a validation failure.
func Invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
