package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gps23/ai-task-planner/internal/config"
)

// Setup creates the application's structured JSON logger, writing to stdout
// at the level named in the server configuration. It returns an error for an
// unrecognized level. The caller decides whether to install the returned
// logger as the slog default.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	level, ok := ParseLevel(cfg.LogLevel)
	if !ok {
		return nil, fmt.Errorf("invalid log level %q: want one of debug, info, warn, error", cfg.LogLevel)
	}

	return New(os.Stdout, level), nil
}

// New creates a JSON logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a case-insensitive level name to a slog.Level. It returns
// slog.LevelInfo and false for unknown names.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
