package main

import (
	"fmt"
	"log/slog"

	"github.com/gps23/ai-task-planner/internal/config"
	"github.com/gps23/ai-task-planner/internal/platform/logger"
)

// setupAppLogger configures the application logger based on config settings
// and installs it as the slog default.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	slog.SetDefault(l)

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"max_attempts", cfg.Planner.MaxAttempts,
		"backoff_ms", cfg.Planner.BackoffMilliseconds)
	l.Debug("LLM configuration", "api_key_present", cfg.LLM.GeminiAPIKey != "")

	return l, nil
}
