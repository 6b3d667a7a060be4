// Package observability provides logging and tracing.
package observability

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger to provide specialized logging methods.
type Logger struct {
	*slog.Logger
}

// GlobalLogger is the default logger instance for the application.
var GlobalLogger *Logger

func init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	GlobalLogger = &Logger{Logger: slog.New(handler)}
}

// LoggingConfig defines which types of automated logging are enabled.
type LoggingConfig struct {
	EnableStoreLogging  bool
	EnableActionLogging bool
}

// Config holds the current logging configuration.
var Config = LoggingConfig{
	EnableStoreLogging:  true,
	EnableActionLogging: true,
}

// StoreLogger provides structured logging for store operations.
type StoreLogger struct {
	backend string
	logger  *Logger
}

// NewStoreLogger creates a new StoreLogger for the given backend.
func NewStoreLogger(backend string) *StoreLogger {
	return &StoreLogger{backend: backend, logger: GlobalLogger}
}

// LogRead logs a store read operation.
func (l *StoreLogger) LogRead(ctx context.Context, key string, size int) {
	if !Config.EnableStoreLogging {
		return
	}
	l.logger.InfoContext(ctx, "store read",
		slog.String("backend", l.backend),
		slog.String("key", key),
		slog.Int("bytes", size),
	)
}

// LogWrite logs a store write operation.
func (l *StoreLogger) LogWrite(ctx context.Context, key string, size int) {
	if !Config.EnableStoreLogging {
		return
	}
	l.logger.InfoContext(ctx, "store write",
		slog.String("backend", l.backend),
		slog.String("key", key),
		slog.Int("bytes", size),
	)
}

// LogError logs a store error.
func (l *StoreLogger) LogError(ctx context.Context, err error, operation, key string) {
	if !Config.EnableStoreLogging {
		return
	}
	l.logger.ErrorContext(ctx, "store error",
		slog.String("backend", l.backend),
		slog.String("operation", operation),
		slog.String("key", key),
		slog.String("error", err.Error()),
	)
}

// LogAction logs a user-initiated mutation at the action boundary.
func LogAction(ctx context.Context, action string, fields map[string]any) {
	if !Config.EnableActionLogging {
		return
	}
	attrs := []any{slog.String("action", action)}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	GlobalLogger.InfoContext(ctx, "action", attrs...)
}

// LogActionError logs a failed user-initiated mutation. Errors are
// terminal at the action boundary; nothing retries them.
func LogActionError(ctx context.Context, action string, err error) {
	if !Config.EnableActionLogging {
		return
	}
	GlobalLogger.ErrorContext(ctx, "action failed",
		slog.String("action", action),
		slog.String("error", err.Error()),
	)
}
