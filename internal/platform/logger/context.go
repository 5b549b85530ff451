package logger

import (
	"context"
	"log/slog"
)

// loggerKey is the context key under which a request-scoped logger is stored.
type loggerKey struct{}

// WithLogger returns a new context carrying the given logger.
// Panics if logger is nil; callers must always provide a real logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		// ALLOW-PANIC: programming error, a nil logger is never valid
		panic("logger cannot be nil")
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext retrieves the logger stored in the context.
// Falls back to slog.Default() when the context carries no logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// FromContextOrDefault retrieves the logger stored in the context, or the
// provided default when the context carries none. A nil default falls back
// to slog.Default().
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
