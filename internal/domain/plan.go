package domain

import (
	"strings"
)

// DefaultLevel is used when a request does not name a skill level.
const DefaultLevel = "Beginner"

// PlanRequest is a validated request for a multi-day plan. Build it with
// NewPlanRequest so the level default and constraints are applied.
// Goal length is counted as sent; only a goal with no visible characters is
// rejected for being blank. Overall size is bounded by the HTTP body limit.
type PlanRequest struct {
	Goal  string `json:"goal" validate:"required,min=3,notblank"`
	Days  int    `json:"days" validate:"gte=1,lte=365"`
	Level string `json:"level" validate:"required"`
}

// NewPlanRequest substitutes DefaultLevel for a blank level and validates
// the result. The returned error is a *ValidationError listing every
// violated constraint.
func NewPlanRequest(goal string, days int, level string) (PlanRequest, error) {
	req := PlanRequest{
		Goal:  goal,
		Days:  days,
		Level: level,
	}
	if strings.TrimSpace(req.Level) == "" {
		req.Level = DefaultLevel
	}

	if err := req.Validate(); err != nil {
		return PlanRequest{}, err
	}
	return req, nil
}

// Validate checks the request against its field constraints.
func (r PlanRequest) Validate() error {
	return validateStruct(r)
}

// PlanResponse is the plan returned to callers. Every field is required;
// TotalDays always mirrors the request rather than generator output.
type PlanResponse struct {
	IntentConfirmation string   `json:"intent_confirmation" validate:"notblank"`
	GoalSummary        string   `json:"goal_summary" validate:"notblank"`
	TotalDays          int      `json:"total_days" validate:"gte=1,lte=365"`
	DailyTasks         []string `json:"daily_tasks" validate:"min=1,dive,notblank"`
	Tips               []string `json:"tips" validate:"min=1,dive,notblank"`
	WhyThisWorks       string   `json:"why_this_works" validate:"notblank"`
}

// Validate reports whether every field of the response is present and
// well-formed.
func (p PlanResponse) Validate() error {
	return validateStruct(p)
}

// PlanSource records where a plan's content came from.
type PlanSource string

// Possible plan sources.
const (
	PlanSourceGenerated PlanSource = "generated"
	PlanSourceFallback  PlanSource = "fallback"
)
