package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested task does not exist
	ErrNotFound = errors.New("task not found")

	// ErrTaskTerminal is returned when an operation needs a task that is
	// still in flight, such as cancelling a completed task
	ErrTaskTerminal = errors.New("task already finished")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
