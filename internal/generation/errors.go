package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is the single failure signal returned by a
	// Generator. Transport errors, timeouts, blocked content and unparseable
	// output all wrap it.
	ErrGenerationFailed = errors.New("plan generation failed")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
