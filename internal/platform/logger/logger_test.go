// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/gps23/ai-task-planner/internal/config"
	"github.com/gps23/ai-task-planner/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	l, err := logger.Setup(config.ServerConfig{LogLevel: "debug"})
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))
}

func TestSetup_InvalidLevel(t *testing.T) {
	for _, level := range []string{"verbose", ""} {
		l, err := logger.Setup(config.ServerConfig{LogLevel: level})
		require.Error(t, err, "level %q", level)
		assert.Nil(t, l)
		assert.Contains(t, err.Error(), "invalid log level")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" Warn ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"fatal", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tc := range tests {
		got, ok := logger.ParseLevel(tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
	}
}

func TestNew_WritesJSON(t *testing.T) {
	t.Parallel()

	buf := &logger.TestLogBuffer{}
	l := logger.New(buf, slog.LevelInfo)
	l.Debug("hidden")
	l.Info("plan generated", "attempts", 1)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "plan generated", entries[0]["msg"])
	assert.EqualValues(t, 1, entries[0]["attempts"])
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()

	defaultLogger := slog.Default()
	customLogger := slog.New(slog.NewTextHandler(nil, nil))

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_default",
			ctx:      nil,
			expected: defaultLogger,
		},
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//nolint:staticcheck // nil context is part of the contract under test
			result := logger.FromContextOrDefault(tt.ctx, defaultLogger)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	t.Run("valid_logger", func(t *testing.T) {
		customLogger := slog.New(slog.NewTextHandler(nil, nil))
		ctx := logger.WithLogger(context.Background(), customLogger)

		assert.Equal(t, customLogger, logger.FromContext(ctx))
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}

func TestTestLogBuffer_EntriesWithMessage(t *testing.T) {
	t.Parallel()

	l, buf := logger.GetTestLogger(t)
	l.Info("a")
	l.Warn("b")
	l.Info("a", "n", 2)

	entries, err := buf.EntriesWithMessage("a")
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	logger.AssertLogContains(t, buf, `"msg":"b"`)
	logger.AssertLogNotContains(t, buf, `"msg":"c"`)

	buf.Reset()
	assert.Empty(t, buf.String())
}
