// Package logger provides context-aware structured logging on top of zap.
// A logger travels in the context so request- or fetch-scoped fields
// accumulate as work flows through the orchestrator.
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment selects the verbose, human-readable encoder.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment selects the JSON encoder at info level.
	ProductionEnvironment = "production"
)

var defaultLogger *zap.Logger //nolint: gochecknoglobals

// Setup initializes the package-level logger for the given environment.
func Setup(environment string) {
	if environment == ProductionEnvironment {
		defaultLogger, _ = zap.NewProduction()

		return
	}

	defaultLogger, _ = zap.NewDevelopment()
}

type key struct{}

// Get returns the logger stored in ctx, or the default logger. Before
// Setup has run it returns a no-op logger so callers never dereference nil.
func Get(ctx context.Context) *zap.Logger {
	if l, _ := ctx.Value(key{}).(*zap.Logger); l != nil {
		return l
	}
	if defaultLogger == nil {
		return zap.NewNop()
	}

	return defaultLogger
}

// WithLogger stores l in a derived context.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// WithFields derives a context whose logger carries the extra fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// Debug logs at debug level using the context logger.
func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

// Info logs at info level using the context logger.
func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

// Warn logs at warn level using the context logger.
func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

// Error logs at error level using the context logger.
func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs at fatal level using the context logger and exits.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
