// Package gemini provides an implementation of the generation.Generator
// interface backed by Google's Gemini API.
//
// This package is an infrastructure adapter: it connects the planner to the
// external Gemini service without exposing google.golang.org/genai types to
// the rest of the application.
//
// Key responsibilities:
//
// 1. Request shaping:
//   - Sends the rendered prompt as a single user turn
//   - Asks for application/json output at the configured temperature
//   - Bounds each call with a timeout and optional client-side pacing
//
// 2. Response processing:
//   - Rejects blocked, empty or truncated responses
//   - Extracts exactly one JSON object from the candidate text
//
// 3. Error normalization:
//   - Every failure wraps generation.ErrGenerationFailed
//   - No retries happen here; the retry policy belongs to the caller
package gemini
