package service

import (
	"fmt"
)

// PlanServiceError wraps errors from the plan service with context.
type PlanServiceError struct {
	// Operation is the operation that failed (e.g., "create_service")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for PlanServiceError.
func (e *PlanServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("plan service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("plan service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PlanServiceError) Unwrap() error {
	return e.Err
}
