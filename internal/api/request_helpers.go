package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/gps23/ai-task-planner/internal/api/shared"
	"github.com/gps23/ai-task-planner/internal/domain"
)

// decodePlanRequest reads a PlanRequestBody from r and converts it into a
// validated domain.PlanRequest. JSON syntax and type errors are reported as
// *domain.ValidationError so they share the 400 response shape of
// constraint violations. Oversized bodies keep their *http.MaxBytesError.
func decodePlanRequest(w http.ResponseWriter, r *http.Request) (domain.PlanRequest, error) {
	var body PlanRequestBody
	if err := shared.DecodeJSON(w, r, &body); err != nil {
		return domain.PlanRequest{}, decodeErrorToValidation(err)
	}

	return domain.NewPlanRequest(body.Goal, body.Days, body.Level)
}

func decodeErrorToValidation(err error) error {
	var (
		maxBytesErr *http.MaxBytesError
		typeErr     *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &maxBytesErr):
		return err

	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return wrapDecodeError(err, "body", "type", "request body must be a JSON object")
		}
		return wrapDecodeError(err, typeErr.Field, "type",
			fmt.Sprintf("%s must be %s", typeErr.Field, jsonKindName(typeErr.Type)))

	case errors.Is(err, shared.ErrEmptyBody):
		return wrapDecodeError(err, "body", "required", "request body is required")

	default:
		return wrapDecodeError(err, "body", "json", "request body must be valid JSON")
	}
}

// decodeError keeps the raw decoder error for logging while presenting a
// ValidationError to callers.
type decodeError struct {
	*domain.ValidationError
	cause error
}

func (e *decodeError) Error() string {
	return e.ValidationError.Error() + ": " + e.cause.Error()
}

func (e *decodeError) Unwrap() []error {
	return []error{e.ValidationError, e.cause}
}

func wrapDecodeError(cause error, field, constraint, message string) error {
	return &decodeError{
		ValidationError: domain.NewFieldValidationError(field, constraint, message),
		cause:           cause,
	}
}

func jsonKindName(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}

	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}
