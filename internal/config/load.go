package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. PLANNER_SERVER_PORT.
const EnvPrefix = "PLANNER"

// Load configuration from environment variables and optionally a config.yaml
// in the working directory. Environment variables take precedence over values
// from the config file. Returns a populated Config struct or an error if
// loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// No default exists for the API key, so AutomaticEnv alone would not
	// surface it during Unmarshal. GEMINI_API_KEY is accepted as well.
	if err := v.BindEnv("llm.gemini_api_key", EnvPrefix+"_LLM_GEMINI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind environment variable: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct constraints.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	worstCase := cfg.WorstCasePlanDuration()
	if worstCase >= cfg.Server.WriteTimeout() {
		return fmt.Errorf(
			"config validation failed: server.write_timeout_seconds (%s) must exceed the worst-case plan duration (%s) "+
				"of planner.max_attempts=%d calls of llm.request_timeout_seconds=%d plus backoff between them",
			cfg.Server.WriteTimeout(), worstCase, cfg.Planner.MaxAttempts, cfg.LLM.RequestTimeoutSeconds)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.read_timeout_seconds", 15)
	v.SetDefault("server.write_timeout_seconds", 120)
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("llm.model_name", "gemini-2.0-flash")
	v.SetDefault("llm.prompt_template_path", "")
	v.SetDefault("llm.request_timeout_seconds", 30)
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.requests_per_minute", 0)

	v.SetDefault("planner.max_attempts", 2)
	v.SetDefault("planner.backoff_ms", 1000)

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allow_credentials", true)
}
