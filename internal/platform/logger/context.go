package logger

import (
	"context"
	"log/slog"
)

// contextKey is an unexported type to avoid collisions with context keys
// defined elsewhere.
type contextKey struct{}

// loggerKey is the context key under which a request-scoped logger is
// stored.
var loggerKey = contextKey{}

// WithLogger returns a new context carrying the given logger. Middleware
// uses this to attach a logger annotated with request metadata (trace ID)
// so downstream code logs with correlation fields.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger from the context, or the default logger
// if none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOrDefault(ctx, slog.Default())
}

// FromContextOrDefault retrieves the logger from the context, falling back
// to the provided default. A nil default falls back to slog.Default.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if def == nil {
		def = slog.Default()
	}
	if ctx == nil {
		return def
	}
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return def
}
