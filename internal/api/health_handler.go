package api

import (
	"log/slog"
	"net/http"

	"github.com/gps23/ai-task-planner/internal/platform/logger"
)

// Health handles GET /health. It has no dependencies and no side effects.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Error("Failed to write health check response", "error", err)
	}
}
