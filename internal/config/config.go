package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	LLM     LLMConfig     `mapstructure:"llm"`
	Planner PlannerConfig `mapstructure:"planner"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

// WorstCasePlanDuration is the longest a single plan request can spend
// generating: every attempt hitting the request timeout, with a backoff wait
// between consecutive attempts.
func (c Config) WorstCasePlanDuration() time.Duration {
	attempts := time.Duration(c.Planner.MaxAttempts)
	if attempts < 1 {
		return 0
	}
	return attempts*c.LLM.RequestTimeout() + (attempts-1)*c.Planner.Backoff()
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ReadTimeoutSeconds     int    `mapstructure:"read_timeout_seconds" validate:"gte=1"`
	WriteTimeoutSeconds    int    `mapstructure:"write_timeout_seconds" validate:"gte=1"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// ReadTimeout returns the HTTP server read timeout.
func (c ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the HTTP server write timeout. Validate requires it to
// exceed Config.WorstCasePlanDuration.
func (c ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns how long graceful shutdown may take.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name" validate:"required"`

	// PromptTemplatePath overrides the embedded prompt template when set.
	PromptTemplatePath string `mapstructure:"prompt_template_path"`

	// RequestTimeoutSeconds bounds a single generation call.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gte=1,lte=600"`

	Temperature float32 `mapstructure:"temperature" validate:"gte=0,lte=2"`

	// RequestsPerMinute paces outbound calls; 0 disables pacing.
	RequestsPerMinute int `mapstructure:"requests_per_minute" validate:"gte=0"`
}

// RequestTimeout returns the per-call generation timeout.
func (c LLMConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// PlannerConfig holds the retry policy for plan generation.
type PlannerConfig struct {
	MaxAttempts         int `mapstructure:"max_attempts" validate:"gte=1,lte=10"`
	BackoffMilliseconds int `mapstructure:"backoff_ms" validate:"gte=0,lte=60000"`
}

// Backoff returns the fixed wait between generation attempts.
func (c PlannerConfig) Backoff() time.Duration {
	return time.Duration(c.BackoffMilliseconds) * time.Millisecond
}

// CORSConfig controls cross-origin access to the API.
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins" validate:"required,min=1,dive,required"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}
