package api

// PlanRequestBody defines the payload for the POST /plan endpoint.
// Field constraints are enforced by domain.NewPlanRequest; a missing level
// defaults to domain.DefaultLevel.
type PlanRequestBody struct {
	Goal  string `json:"goal"`
	Days  int    `json:"days"`
	Level string `json:"level"`
}

// PlanSourceHeader is the response header that reports whether a plan came
// from the model ("generated") or the fallback ("fallback").
const PlanSourceHeader = "X-Plan-Source"
