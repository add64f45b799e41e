// Package apperr defines the error kinds shared across the engine.
// All of them are recoverable at the call site: the caller surfaces the
// message and may retry.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a malformed or missing required field.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks an operation that referenced an unknown task id.
	ErrNotFound = errors.New("task not found")
	// ErrConflict marks a single-flight violation on a pending draft.
	ErrConflict = errors.New("submission already in flight")
)

func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFound(id string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

func Conflict(draftID string) error {
	return fmt.Errorf("%w: draft %s", ErrConflict, draftID)
}
