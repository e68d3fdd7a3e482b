package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractObject returns the JSON object contained in model output text. A
// surrounding markdown code fence is tolerated; anything else that is not a
// single JSON object is reported as ErrGenerationFailed.
func ExtractObject(text string) (json.RawMessage, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, fmt.Errorf("%w: empty output", ErrGenerationFailed)
	}

	if strings.HasPrefix(s, "```") {
		s = stripFence(s)
	}

	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") || !json.Valid([]byte(s)) {
		return nil, fmt.Errorf("%w: output is not a JSON object", ErrGenerationFailed)
	}

	return json.RawMessage(s), nil
}

// stripFence removes a leading ``` line (with optional language tag) and a
// trailing ``` marker.
func stripFence(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
