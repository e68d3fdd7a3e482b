package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// CandidateResult is the outcome of checking a generator result against the
// PlanResponse schema. Exactly one of Plan (when Err is nil) or Err is
// meaningful.
type CandidateResult struct {
	Plan PlanResponse
	Err  error
}

// OK reports whether the candidate was accepted.
func (r CandidateResult) OK() bool {
	return r.Err == nil
}

func rejectCandidate(format string, args ...any) CandidateResult {
	return CandidateResult{Err: fmt.Errorf("%w: "+format, append([]any{ErrInvalidCandidate}, args...)...)}
}

// ValidateCandidate checks raw generator output and, when it is acceptable,
// builds a PlanResponse from it. Malformed content is rejected rather than
// filled with defaults. TotalDays is always taken from req; any total_days
// in the candidate is ignored, as are unknown keys.
func ValidateCandidate(raw json.RawMessage, req PlanRequest) CandidateResult {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return rejectCandidate("not a JSON object")
	}

	plan := PlanResponse{TotalDays: req.Days}

	texts := []struct {
		key string
		dst *string
	}{
		{"intent_confirmation", &plan.IntentConfirmation},
		{"goal_summary", &plan.GoalSummary},
		{"why_this_works", &plan.WhyThisWorks},
	}
	for _, t := range texts {
		v, err := decodeText(fields, t.key)
		if err != nil {
			return CandidateResult{Err: err}
		}
		*t.dst = v
	}

	lists := []struct {
		key string
		dst *[]string
	}{
		{"daily_tasks", &plan.DailyTasks},
		{"tips", &plan.Tips},
	}
	for _, l := range lists {
		v, err := decodeTextList(fields, l.key)
		if err != nil {
			return CandidateResult{Err: err}
		}
		*l.dst = v
	}

	if err := plan.Validate(); err != nil {
		return rejectCandidate("%v", err)
	}

	return CandidateResult{Plan: plan}
}

func lookup(fields map[string]json.RawMessage, key string) (json.RawMessage, error) {
	raw, ok := fields[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing key %q", ErrInvalidCandidate, key)
	}
	if isNull(raw) {
		return nil, fmt.Errorf("%w: key %q is null", ErrInvalidCandidate, key)
	}
	return raw, nil
}

func decodeText(fields map[string]json.RawMessage, key string) (string, error) {
	raw, err := lookup(fields, key)
	if err != nil {
		return "", err
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%w: key %q must be a string", ErrInvalidCandidate, key)
	}
	return strings.TrimSpace(s), nil
}

func decodeTextList(fields map[string]json.RawMessage, key string) ([]string, error) {
	raw, err := lookup(fields, key)
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: key %q must be an array of strings", ErrInvalidCandidate, key)
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		var s string
		if isNull(item) || json.Unmarshal(item, &s) != nil {
			return nil, fmt.Errorf("%w: %s[%d] must be a string", ErrInvalidCandidate, key, i)
		}
		out = append(out, strings.TrimSpace(s))
	}
	return out, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
