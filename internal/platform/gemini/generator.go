package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gps23/ai-task-planner/internal/config"
	"github.com/gps23/ai-task-planner/internal/generation"
	"github.com/gps23/ai-task-planner/internal/platform/logger"
	"github.com/gps23/ai-task-planner/internal/redact"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models used by Generator.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Generator implements generation.Generator with the Gemini API.
type Generator struct {
	// logger is used when the request context carries no logger
	logger *slog.Logger

	// models performs the actual API call
	models contentGenerator

	// model is the name of the Gemini model to use
	model string

	timeout     time.Duration
	temperature float32

	// limiter paces outbound calls; nil means unlimited
	limiter *rate.Limiter
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Generator from the LLM configuration.
//
// Parameters:
//   - ctx: Context for client initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name, and call settings
//
// Returns:
//   - A ready Generator or an error wrapping generation.ErrInvalidConfig
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if err := validateConfig(logger, cfg); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %s",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	logger.InfoContext(ctx, "Gemini generator initialized",
		"model", cfg.ModelName,
		"request_timeout", cfg.RequestTimeout().String(),
		"requests_per_minute", cfg.RequestsPerMinute)

	return newGenerator(logger, cfg, client.Models), nil
}

func validateConfig(logger *slog.Logger, cfg config.LLMConfig) error {
	if logger == nil {
		return errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", generation.ErrInvalidConfig)
	}
	if cfg.RequestsPerMinute < 0 {
		return fmt.Errorf("%w: requests per minute cannot be negative", generation.ErrInvalidConfig)
	}
	return nil
}

func newGenerator(logger *slog.Logger, cfg config.LLMConfig, models contentGenerator) *Generator {
	g := &Generator{
		logger:      logger,
		models:      models,
		model:       cfg.ModelName,
		timeout:     cfg.RequestTimeout(),
		temperature: cfg.Temperature,
	}
	if cfg.RequestsPerMinute > 0 {
		g.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}
	return g
}

// Generate sends prompt to Gemini once and returns the JSON object in its
// answer. Every failure wraps generation.ErrGenerationFailed.
func (g *Generator) Generate(ctx context.Context, prompt string) (json.RawMessage, error) {
	log := logger.FromContextOrDefault(ctx, g.logger)

	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("%w: empty prompt", generation.ErrGenerationFailed)
	}

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			log.WarnContext(ctx, "Gemini call not paced in time", "error", redact.Error(err))
			return nil, fmt.Errorf("%w: rate limiter: %w", generation.ErrGenerationFailed, err)
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	temperature := g.temperature
	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      &temperature,
	}

	start := time.Now()
	log.DebugContext(ctx, "Making Gemini API call",
		"model", g.model,
		"prompt_length", len(prompt))

	resp, err := g.models.GenerateContent(callCtx, g.model, genai.Text(prompt), genConfig)
	elapsed := time.Since(start)
	if err != nil {
		log.WarnContext(ctx, "Gemini API call failed",
			"error", redact.Error(err),
			"duration_ms", elapsed.Milliseconds())
		return nil, fmt.Errorf("%w: gemini request: %w", generation.ErrGenerationFailed, err)
	}

	text, err := responseText(resp)
	if err != nil {
		log.WarnContext(ctx, "Gemini API returned no usable content",
			"error", err,
			"duration_ms", elapsed.Milliseconds())
		return nil, err
	}

	raw, err := generation.ExtractObject(text)
	if err != nil {
		log.WarnContext(ctx, "Gemini API returned malformed output",
			"error", err,
			"output_length", len(text),
			"duration_ms", elapsed.Milliseconds())
		return nil, err
	}

	log.DebugContext(ctx, "Gemini API call successful",
		"output_length", len(raw),
		"duration_ms", elapsed.Milliseconds())
	return raw, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrGenerationFailed)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked: %s",
			generation.ErrGenerationFailed, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrGenerationFailed)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrGenerationFailed)
	}
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrGenerationFailed)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}
