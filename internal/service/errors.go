package service

import "errors"

var (
	// ErrNotFound maps to HTTP 404 in the handler layer.
	ErrNotFound = errors.New("resource not found")

	// ErrProductNotFound aborts an order transaction: if any line references
	// an unknown product, no row of the order may be written.
	ErrProductNotFound = errors.New("product not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUser      = errors.New("username or email already taken")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// ValidationError carries per-field messages so the handler can return a
// 400 that names the offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	for f, msg := range e.Fields {
		return f + ": " + msg
	}
	return "validation failed"
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
