package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gps23/ai-task-planner/internal/config"
	"github.com/gps23/ai-task-planner/internal/generation"
	"github.com/gps23/ai-task-planner/internal/platform/gemini"
	"github.com/gps23/ai-task-planner/internal/prompt"
	"github.com/gps23/ai-task-planner/internal/service"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator   generation.Generator
	planService service.PlanService
}

// newApplication creates a new application instance backed by the Gemini
// generator described by cfg.LLM.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	generator, err := gemini.NewGenerator(
		ctx,
		logger.With("component", "llm_generator"),
		cfg.LLM,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}

	return newApplicationWithGenerator(cfg, logger, generator)
}

// newApplicationWithGenerator wires the plan service around an arbitrary
// generator.
func newApplicationWithGenerator(
	cfg *config.Config,
	logger *slog.Logger,
	generator generation.Generator,
	opts ...service.Option,
) (*application, error) {
	prompts, err := prompt.FromFile(cfg.LLM.PromptTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}

	planService, err := service.NewPlanService(
		generator,
		prompts,
		service.RetryPolicyFromConfig(cfg.Planner),
		logger.With("component", "plan_service"),
		opts...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize plan service: %w", err)
	}
	logger.Info("plan service initialized",
		"max_attempts", cfg.Planner.MaxAttempts,
		"backoff_ms", cfg.Planner.BackoffMilliseconds)

	return &application{
		config:      cfg,
		logger:      logger,
		generator:   generator,
		planService: planService,
	}, nil
}
