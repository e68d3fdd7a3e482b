package api

import (
	"net/http"

	"github.com/gps23/ai-task-planner/internal/api/shared"
	"github.com/gps23/ai-task-planner/internal/service"
)

// PlanHandler handles plan-related HTTP requests
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// CreatePlan handles POST /plan requests.
// Any valid request is answered with 200 and a complete plan, whether it was
// generated or produced by the fallback; X-Plan-Source tells which.
func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	req, err := decodePlanRequest(w, r)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	result, err := h.planService.CreatePlan(r.Context(), req)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	w.Header().Set(PlanSourceHeader, string(result.Source))
	shared.RespondWithJSON(w, r, http.StatusOK, result.Plan)
}
