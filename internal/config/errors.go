package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrTypeMismatch indicates the value type doesn't match the expected type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrValidationFailed indicates a value was out of range and was reset.
	ErrValidationFailed = errors.New("validation failed")
)

// TypeError represents a type mismatch error.
type TypeError struct {
	// Path is the setting path.
	Path string
	// Expected is the expected type.
	Expected string
	// Actual is the actual type found.
	Actual string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("type mismatch for %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// ValidationError reports a value that was replaced during validation.
type ValidationError struct {
	// Path is the setting path.
	Path string
	// Value is the rejected value.
	Value any
	// Message describes why it was rejected.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Path, e.Value, e.Message)
}

// Unwrap returns ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
