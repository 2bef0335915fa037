package wmgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with wmgo-specific helpers.
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

// LogGenerate logs a generation run.
func (l *Logger) LogGenerate(ctx context.Context, prompts, tokens int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "generate failed",
			"prompts", prompts,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "generate completed",
			"prompts", prompts,
			"tokens", tokens,
		)
	}
}

// LogDetect logs a detection run.
func (l *Logger) LogDetect(ctx context.Context, texts, flagged int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "detect failed",
			"texts", texts,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "detect completed",
			"texts", texts,
			"flagged", flagged,
		)
	}
}
