// Package apperr defines the error taxonomy shared by all services.
// Callers classify failures with errors.Is against the sentinels below.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: a referenced group, author, post or comment does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden: the actor lacks rights for the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput: a required field is missing or empty.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidOperation: the operation is rejected by a domain rule, e.g. self-follow.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrUnavailable: the underlying store is unreachable. The core never retries;
	// the calling layer may.
	ErrUnavailable = errors.New("unavailable")
)

// NotFound wraps ErrNotFound with context.
func NotFound(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, ErrNotFound)...)
}

// Forbidden wraps ErrForbidden with context.
func Forbidden(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, ErrForbidden)...)
}

// InvalidInput wraps ErrInvalidInput with context.
func InvalidInput(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, ErrInvalidInput)...)
}

// InvalidOperation wraps ErrInvalidOperation with context.
func InvalidOperation(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, ErrInvalidOperation)...)
}

// Unavailable wraps ErrUnavailable with context.
func Unavailable(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, ErrUnavailable)...)
}
