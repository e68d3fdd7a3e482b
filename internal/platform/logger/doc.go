// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels, and carries request-scoped loggers in a context.Context
// so components receive their logger by injection rather than through a global.
package logger
