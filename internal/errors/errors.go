// Package errors defines the sentinel errors shared by every ledger module.
// Use cases wrap them with context and the HTTP layer maps them to status codes,
// so storage drivers never leak into handlers.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a client, category or entry does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write violates a uniqueness rule.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput is returned when a request is well formed but breaks a business rule.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPayloadTooLarge is returned when an uploaded document exceeds the configured limits.
	ErrPayloadTooLarge = errors.New("payload too large")
)

// New returns an error carrying message.
func New(message string) error {
	return errors.New(message)
}

// Wrap prefixes err with message. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether target appears anywhere in err's chain.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
