package raggo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with raggo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithTerms adds a term-count field to the logger.
func (l *Logger) WithTerms(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("terms", n),
	}
}

// WithLength adds a leading-axis length field to the logger.
func (l *Logger) WithLength(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("length", n),
	}
}

// LogIndex logs an index evaluation.
func (l *Logger) LogIndex(ctx context.Context, terms, length int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index failed",
			"terms", terms,
			"length", length,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "index completed",
			"terms", terms,
			"length", length,
		)
	}
}

// LogValidate logs a union validation.
func (l *Logger) LogValidate(ctx context.Context, length, contents int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "validation failed",
			"length", length,
			"contents", contents,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "validation completed",
			"length", length,
			"contents", contents,
		)
	}
}
