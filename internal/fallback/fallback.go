// Package fallback produces deterministic plans without calling any external
// service. It is the planner's last line of defence when the language model
// cannot deliver a usable plan.
package fallback

import (
	"fmt"

	"github.com/gps23/ai-task-planner/internal/domain"
)

var dailyTasks = []string{
	"Revise basic concepts",
	"Practice focused exercises",
	"Solve progressively harder problems",
	"Attempt a timed mock session",
	"Analyze mistakes and note weak areas",
}

var tips = []string{
	"Be consistent",
	"Focus on weak areas",
	"Revise daily",
	"Track progress weekly",
}

// Plan builds a complete plan from the request fields alone. It never fails
// and returns equal output for equal input.
func Plan(req domain.PlanRequest) domain.PlanResponse {
	level := req.Level
	if level == "" {
		level = domain.DefaultLevel
	}

	return domain.PlanResponse{
		IntentConfirmation: fmt.Sprintf(
			"You want to work towards %q over %d %s at a %s level.",
			req.Goal, req.Days, dayWord(req.Days), level),
		GoalSummary: fmt.Sprintf("%d-day %s plan for %s", req.Days, level, req.Goal),
		TotalDays:   req.Days,
		DailyTasks:  append([]string(nil), dailyTasks...),
		Tips:        append([]string(nil), tips...),
		WhyThisWorks: fmt.Sprintf(
			"Short daily sessions that cycle through review, practice and self-assessment "+
				"build steady progress on %s, and %d %s is enough to repeat that cycle "+
				"while adjusting for a %s starting point.",
			req.Goal, req.Days, dayWord(req.Days), level),
	}
}

func dayWord(days int) string {
	if days == 1 {
		return "day"
	}
	return "days"
}
