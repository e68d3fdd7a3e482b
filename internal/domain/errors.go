package domain

import (
	"errors"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a plan request fails validation.
	// It is wrapped by ValidationError, which carries per-field details.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCandidate is returned when a generated plan does not
	// conform to the PlanResponse schema.
	ErrInvalidCandidate = errors.New("invalid plan candidate")
)

// FieldError describes a single violated constraint.
type FieldError struct {
	// Field is the JSON name of the offending field.
	Field string `json:"field"`

	// Constraint is the rule that failed (e.g. "min", "lte", "type").
	Constraint string `json:"constraint"`

	// Message is a human-readable description safe to return to clients.
	Message string `json:"message"`
}

// ValidationError collects every field-level failure found while validating
// a value. It unwraps to ErrValidation.
type ValidationError struct {
	Fields []FieldError
}

// NewFieldValidationError creates a ValidationError for a single field.
func NewFieldValidationError(field, constraint, message string) *ValidationError {
	return &ValidationError{
		Fields: []FieldError{{Field: field, Constraint: constraint, Message: message}},
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}

	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrValidation so callers can use errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
