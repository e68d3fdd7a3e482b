package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gps23/ai-task-planner/internal/api/shared"
	"github.com/gps23/ai-task-planner/internal/domain"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var (
		maxBytesErr *http.MaxBytesError
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, shared.ErrEmptyBody),
		errors.Is(err, shared.ErrTrailingData),
		errors.As(err, &syntaxErr),
		errors.As(err, &typeErr):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return "Request body too large"
	case errors.Is(err, domain.ErrValidation):
		return "Invalid plan request"
	case MapErrorToStatusCode(err) == http.StatusBadRequest:
		return "Invalid request format"
	default:
		return "An unexpected error occurred"
	}
}

// respondWithMappedError writes the error response matching err, attaching
// field details for validation errors.
func respondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	var opts []shared.ResponseOption

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		opts = append(opts, shared.WithDetails(validationErr.Fields))
	}

	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err, opts...)
}
