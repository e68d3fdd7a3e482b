package generation

import (
	"context"
	"encoding/json"
)

// Generator wraps exactly one call to an external text generator.
type Generator interface {
	// Generate sends prompt and returns the generator's answer as a single
	// JSON object. Any failure wraps ErrGenerationFailed. Implementations
	// must not retry.
	Generate(ctx context.Context, prompt string) (json.RawMessage, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (json.RawMessage, error)

// Generate calls f(ctx, prompt).
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (json.RawMessage, error) {
	return f(ctx, prompt)
}
