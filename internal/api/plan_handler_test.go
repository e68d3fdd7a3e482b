package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gps23/ai-task-planner/internal/api/shared"
	"github.com/gps23/ai-task-planner/internal/domain"
	"github.com/gps23/ai-task-planner/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockPlanService is a mock implementation of service.PlanService for testing
type MockPlanService struct {
	CreatePlanFn func(ctx context.Context, req domain.PlanRequest) (service.PlanResult, error)
	calls        []domain.PlanRequest
}

// CreatePlan implements service.PlanService
func (m *MockPlanService) CreatePlan(ctx context.Context, req domain.PlanRequest) (service.PlanResult, error) {
	m.calls = append(m.calls, req)
	if m.CreatePlanFn != nil {
		return m.CreatePlanFn(ctx, req)
	}
	return service.PlanResult{}, nil
}

func samplePlan(days int) domain.PlanResponse {
	return domain.PlanResponse{
		IntentConfirmation: "You want to prepare for the GRE.",
		GoalSummary:        "GRE preparation",
		TotalDays:          days,
		DailyTasks:         []string{"Diagnostic test", "Vocabulary drill"},
		Tips:               []string{"Review mistakes"},
		WhyThisWorks:       "Practice plus review.",
	}
}

func echoPlanService(source domain.PlanSource) *MockPlanService {
	return &MockPlanService{
		CreatePlanFn: func(_ context.Context, req domain.PlanRequest) (service.PlanResult, error) {
			return service.PlanResult{Plan: samplePlan(req.Days), Source: source, Attempts: 1}, nil
		},
	}
}

func postPlan(t *testing.T, h *PlanHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(shared.WithTraceID(req.Context(), "test-trace"))
	w := httptest.NewRecorder()
	h.CreatePlan(w, req)
	return w
}

var (
	longGoal  = strings.Repeat("a", 1001)
	longLevel = strings.Repeat("l", 65)
)

// TestPlanHandler_CreatePlan tests the CreatePlan handler functionality.
func TestPlanHandler_CreatePlan(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		source         domain.PlanSource
		expectedStatus int
		expectedReq    domain.PlanRequest
	}{
		{
			name:           "generated_plan",
			body:           `{"goal": "GRE exam", "days": 10, "level": "Intermediate"}`,
			source:         domain.PlanSourceGenerated,
			expectedStatus: http.StatusOK,
			expectedReq:    domain.PlanRequest{Goal: "GRE exam", Days: 10, Level: "Intermediate"},
		},
		{
			name:           "fallback_plan_is_still_200",
			body:           `{"goal": "learn Go", "days": 3}`,
			source:         domain.PlanSourceFallback,
			expectedStatus: http.StatusOK,
			expectedReq:    domain.PlanRequest{Goal: "learn Go", Days: 3, Level: domain.DefaultLevel},
		},
		{
			name:           "goal_kept_as_sent_and_extra_fields_ignored",
			body:           `{"goal": "  write a novel  ", "days": 365, "level": "", "mood": "brave"}`,
			source:         domain.PlanSourceGenerated,
			expectedStatus: http.StatusOK,
			expectedReq:    domain.PlanRequest{Goal: "  write a novel  ", Days: 365, Level: domain.DefaultLevel},
		},
		{
			name:           "three_characters_including_leading_space",
			body:           `{"goal": " ab", "days": 1}`,
			source:         domain.PlanSourceGenerated,
			expectedStatus: http.StatusOK,
			expectedReq:    domain.PlanRequest{Goal: " ab", Days: 1, Level: domain.DefaultLevel},
		},
		{
			name:           "long_goal_and_level",
			body:           `{"goal": "` + longGoal + `", "days": 10, "level": "` + longLevel + `"}`,
			source:         domain.PlanSourceFallback,
			expectedStatus: http.StatusOK,
			expectedReq:    domain.PlanRequest{Goal: longGoal, Days: 10, Level: longLevel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := echoPlanService(tt.source)
			h := NewPlanHandler(mockService)

			w := postPlan(t, h, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, string(tt.source), w.Header().Get(PlanSourceHeader))
			require.Len(t, mockService.calls, 1)
			assert.Equal(t, tt.expectedReq, mockService.calls[0])

			var resp domain.PlanResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedReq.Days, resp.TotalDays)
			assert.NoError(t, resp.Validate())

			var raw map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
			assert.ElementsMatch(t,
				[]string{"intent_confirmation", "goal_summary", "total_days", "daily_tasks", "tips", "why_this_works"},
				keys(raw))
		})
	}
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestPlanHandler_CreatePlan_BadRequests(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectedField string
		expectedRule  string
	}{
		{"days_zero", `{"goal": "GRE exam", "days": 0}`, "days", "gte"},
		{"days_over_limit", `{"goal": "GRE exam", "days": 366}`, "days", "lte"},
		{"days_missing", `{"goal": "GRE exam"}`, "days", "gte"},
		{"goal_too_short", `{"goal": "ab", "days": 5}`, "goal", "min"},
		{"goal_missing", `{"days": 5}`, "goal", "required"},
		{"goal_blank", `{"goal": "    ", "days": 5}`, "goal", "notblank"},
		{"days_wrong_type", `{"goal": "GRE exam", "days": "ten"}`, "days", "type"},
		{"days_fractional", `{"goal": "GRE exam", "days": 2.5}`, "days", "type"},
		{"goal_wrong_type", `{"goal": 42, "days": 5}`, "goal", "type"},
		{"malformed_json", `{"goal": "GRE exam", "days": `, "body", "json"},
		{"empty_body", ``, "body", "required"},
		{"array_body", `[1, 2]`, "body", "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := echoPlanService(domain.PlanSourceGenerated)
			h := NewPlanHandler(mockService)

			w := postPlan(t, h, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, mockService.calls, "service must not be called for invalid input")
			assert.Empty(t, w.Header().Get(PlanSourceHeader))

			var errResp shared.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
			assert.NotEmpty(t, errResp.Error)
			assert.Equal(t, "test-trace", errResp.TraceID)
			require.NotEmpty(t, errResp.Details)
			assert.Equal(t, tt.expectedField, errResp.Details[0].Field)
			assert.Equal(t, tt.expectedRule, errResp.Details[0].Constraint)
			assert.NotEmpty(t, errResp.Details[0].Message)
		})
	}
}

func TestPlanHandler_CreatePlan_BodyTooLarge(t *testing.T) {
	mockService := echoPlanService(domain.PlanSourceGenerated)
	h := NewPlanHandler(mockService)

	var buf bytes.Buffer
	buf.WriteString(`{"goal": "`)
	buf.WriteString(strings.Repeat("a", shared.MaxBodyBytes))
	buf.WriteString(`", "days": 3}`)

	w := postPlan(t, h, buf.String())

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Empty(t, mockService.calls)
}

func TestPlanHandler_CreatePlan_ServiceError(t *testing.T) {
	mockService := &MockPlanService{
		CreatePlanFn: func(context.Context, domain.PlanRequest) (service.PlanResult, error) {
			return service.PlanResult{}, errors.New("unexpected failure with secret=hunter2")
		},
	}
	h := NewPlanHandler(mockService)

	w := postPlan(t, h, `{"goal": "GRE exam", "days": 10}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "hunter2")
	assert.Contains(t, w.Body.String(), "An unexpected error occurred")
}
