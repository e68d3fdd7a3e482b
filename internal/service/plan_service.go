package service

import (
	"context"
	"log/slog"

	"github.com/gps23/ai-task-planner/internal/domain"
	"github.com/gps23/ai-task-planner/internal/fallback"
	"github.com/gps23/ai-task-planner/internal/generation"
	"github.com/gps23/ai-task-planner/internal/platform/logger"
	"github.com/gps23/ai-task-planner/internal/redact"
)

// PromptBuilder renders a request into a generator prompt.
type PromptBuilder interface {
	Build(req domain.PlanRequest) (string, error)
}

// FallbackFunc produces a plan without external calls. It must be total.
type FallbackFunc func(req domain.PlanRequest) domain.PlanResponse

// AttemptOutcome classifies a single generator attempt.
type AttemptOutcome int

// Possible attempt outcomes.
const (
	// OutcomeSucceeded means the generator returned a schema-valid plan.
	OutcomeSucceeded AttemptOutcome = iota
	// OutcomeGenerationFailed means the generator call itself failed.
	OutcomeGenerationFailed
	// OutcomeValidationFailed means the generator answered but the answer
	// did not match the plan schema.
	OutcomeValidationFailed
)

// String returns the outcome's log name.
func (o AttemptOutcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeGenerationFailed:
		return "generation_failed"
	case OutcomeValidationFailed:
		return "validation_failed"
	default:
		return "unknown"
	}
}

// attemptResult is the tagged result of one attempt. plan is set only for
// OutcomeSucceeded; err only for the failure outcomes.
type attemptResult struct {
	outcome AttemptOutcome
	plan    domain.PlanResponse
	err     error
}

// PlanResult is what PlanService returns for a valid request.
type PlanResult struct {
	// Plan is complete and schema-valid; TotalDays equals the request's Days.
	Plan domain.PlanResponse
	// Source tells whether Plan came from the generator or the fallback.
	Source domain.PlanSource
	// Attempts is the number of generator calls made.
	Attempts int
}

// PlanService turns plan requests into plans.
type PlanService interface {
	// CreatePlan returns a plan for req. The only error it returns is a
	// request validation error (wrapping domain.ErrValidation), reported
	// before any generator call. Generation failures are absorbed: once all
	// attempts are spent the fallback plan is returned with a nil error.
	CreatePlan(ctx context.Context, req domain.PlanRequest) (PlanResult, error)
}

// Option customizes a PlanService.
type Option func(*planServiceImpl)

// WithSleeper replaces the wall-clock sleeper used for backoff.
func WithSleeper(s Sleeper) Option {
	return func(svc *planServiceImpl) {
		if s != nil {
			svc.sleeper = s
		}
	}
}

// WithFallback replaces the default fallback plan generator.
func WithFallback(f FallbackFunc) Option {
	return func(svc *planServiceImpl) {
		if f != nil {
			svc.fallback = f
		}
	}
}

// planServiceImpl implements the PlanService interface
type planServiceImpl struct {
	generator generation.Generator
	prompts   PromptBuilder
	fallback  FallbackFunc
	policy    RetryPolicy
	sleeper   Sleeper
	logger    *slog.Logger
}

// NewPlanService creates a new PlanService.
// It returns an error if any of the required dependencies are nil.
func NewPlanService(
	generator generation.Generator,
	prompts PromptBuilder,
	policy RetryPolicy,
	logger *slog.Logger,
	opts ...Option,
) (PlanService, error) {
	if generator == nil {
		return nil, &PlanServiceError{Operation: "create_service", Message: "generator cannot be nil"}
	}
	if prompts == nil {
		return nil, &PlanServiceError{Operation: "create_service", Message: "prompt builder cannot be nil"}
	}
	if logger == nil {
		return nil, &PlanServiceError{Operation: "create_service", Message: "logger cannot be nil"}
	}

	normalized, fixed := policy.normalize()
	if len(fixed) > 0 {
		logger.Warn("invalid retry policy values replaced with defaults",
			"fields", fixed,
			"max_attempts", normalized.MaxAttempts,
			"backoff", normalized.Backoff.String())
	}

	svc := &planServiceImpl{
		generator: generator,
		prompts:   prompts,
		fallback:  fallback.Plan,
		policy:    normalized,
		sleeper:   RealSleeper{},
		logger:    logger,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// CreatePlan implements PlanService.
func (s *planServiceImpl) CreatePlan(ctx context.Context, req domain.PlanRequest) (PlanResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Validate(); err != nil {
		return PlanResult{}, err
	}

	// The prompt is attempt-invariant: every retry resends it unchanged.
	prompt, err := s.prompts.Build(req)
	if err != nil {
		log.ErrorContext(ctx, "failed to build prompt, using fallback plan",
			"error", redact.Error(err))
		return s.fallbackResult(ctx, log, req, 0, "prompt_error"), nil
	}

	maxAttempts := s.policy.MaxAttempts
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result := s.attempt(ctx, prompt, req)
		if result.outcome == OutcomeSucceeded {
			log.InfoContext(ctx, "plan generated",
				"attempt", attempt,
				"max_attempts", maxAttempts,
				"total_days", result.plan.TotalDays)
			return PlanResult{
				Plan:     result.plan,
				Source:   domain.PlanSourceGenerated,
				Attempts: attempt,
			}, nil
		}

		log.WarnContext(ctx, "plan generation attempt failed",
			"attempt", attempt,
			"max_attempts", maxAttempts,
			"outcome", result.outcome.String(),
			"error", redact.Error(result.err))

		if attempt == maxAttempts {
			break
		}

		if err := s.sleeper.Sleep(ctx, s.policy.Backoff); err != nil {
			log.WarnContext(ctx, "backoff interrupted, using fallback plan",
				"attempt", attempt,
				"error", err)
			return s.fallbackResult(ctx, log, req, attempt, "interrupted"), nil
		}
	}

	return s.fallbackResult(ctx, log, req, maxAttempts, "attempts_exhausted"), nil
}

// attempt performs one generator call and classifies its result.
func (s *planServiceImpl) attempt(ctx context.Context, prompt string, req domain.PlanRequest) attemptResult {
	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return attemptResult{outcome: OutcomeGenerationFailed, err: err}
	}

	candidate := domain.ValidateCandidate(raw, req)
	if !candidate.OK() {
		return attemptResult{outcome: OutcomeValidationFailed, err: candidate.Err}
	}

	return attemptResult{outcome: OutcomeSucceeded, plan: candidate.Plan}
}

func (s *planServiceImpl) fallbackResult(
	ctx context.Context,
	log *slog.Logger,
	req domain.PlanRequest,
	attempts int,
	reason string,
) PlanResult {
	plan := s.fallback(req)
	plan.TotalDays = req.Days

	log.InfoContext(ctx, "using fallback plan",
		"reason", reason,
		"attempts", attempts,
		"total_days", plan.TotalDays)

	return PlanResult{
		Plan:     plan,
		Source:   domain.PlanSourceFallback,
		Attempts: attempts,
	}
}
