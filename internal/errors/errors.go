// Package errors provides sentinel errors and error types for the fresh-maven-project CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates missing or malformed user input (usage error).
	ErrValidation = errors.New("validation error")

	// ErrIO indicates a directory or file could not be created or written.
	ErrIO = errors.New("i/o error")

	// ErrTemplate indicates a template could not be found or merged.
	ErrTemplate = errors.New("template error")

	// ErrUnresolved indicates folder properties did not reach a fixed point.
	ErrUnresolved = errors.New("unresolved properties")

	// ErrConsistency indicates the property repository holds an unusable value.
	ErrConsistency = errors.New("property repository inconsistency")

	// ErrNotFound indicates a catalog entry (action, kind or stack) was not found.
	ErrNotFound = errors.New("not found")

	// ErrQuit indicates the user asked to leave an interactive session.
	ErrQuit = errors.New("quit requested")
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or property the error refers to (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Message)
	if e.Location != "" {
		b.WriteString(" (")
		b.WriteString(e.Location)
		b.WriteString(")")
	}
	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a usage error with details.
func NewValidationError(message, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewIOError creates an i/o error for the given path.
func NewIOError(message, location string, cause error) error {
	return &DetailError{
		Type:     "i/o failed",
		Message:  message,
		Location: location,
		Cause:    fmt.Errorf("%w: %w", ErrIO, cause),
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// ExitError wraps an error with a process exit code.
type ExitError struct {
	// Err is the underlying error. May be nil for clean early exits.
	Err error

	// Code is the process exit code.
	Code int

	// Printed reports whether the command layer already showed the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}
