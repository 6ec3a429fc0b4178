// Package errors provides sentinel errors and structured error details for the plugin maker.
package errors

import (
	"fmt"
	"strings"
)

// DetailError captures structured error information for display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the filesystem path involved (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewArgumentCountError reports a wrong number of positional arguments.
func NewArgumentCountError(got int) error {
	return &DetailError{
		Type:    "invalid arguments",
		Message: fmt.Sprintf("Please provide exactly two command line arguments: plugin_name and path (got %d)", got),
		Cause:   ErrArgumentCount,
	}
}

// NewInvalidNameError reports a plugin name with characters outside the allowed set.
func NewInvalidNameError(name string) error {
	return &DetailError{
		Type:    "invalid plugin name",
		Message: fmt.Sprintf("Plugin name %q can only contain letters, numbers, hyphens (-) and underscores (_)", name),
		Cause:   ErrInvalidName,
	}
}

// NewPathNotFoundError reports a destination path that does not exist.
func NewPathNotFoundError(path string) error {
	return &DetailError{
		Type:     "path not found",
		Message:  fmt.Sprintf("The provided path '%s' does not exist", path),
		Location: path,
		Hint:     "Create the destination directory first or pass an existing one.",
		Cause:    ErrPathNotFound,
	}
}

// NewNameCollisionError reports that the plugin folder already exists.
func NewNameCollisionError(name, path string) error {
	return &DetailError{
		Type:     "name collision",
		Message:  fmt.Sprintf("A folder named '%s' already exists in '%s'", name, path),
		Location: path,
		Hint:     "Choose a different plugin name or remove the existing folder.",
		Cause:    ErrNameCollision,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// WrapIO wraps a filesystem error so that it matches both ErrIO and the original cause.
func WrapIO(err error, message string) error {
	return fmt.Errorf("%s: %w: %w", message, ErrIO, err)
}
