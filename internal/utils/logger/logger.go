package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/talx-hub/gopher-coins/internal/model"
)

func New(logLevel slog.Level) *slog.Logger {
	return slog.New(
		slog.NewTextHandler(
			os.Stdout,
			&slog.HandlerOptions{Level: logLevel},
		))
}

func WithContext(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, model.KeyContextLogger, log)
}

// FromContext returns the request logger, or the default one outside a
// request.
func FromContext(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(model.KeyContextLogger).(*slog.Logger); ok && log != nil {
		return log
	}
	return slog.Default()
}

// With derives the context logger with attrs, so later log lines of the
// same request carry them, e.g. the user or the order being processed.
func With(ctx context.Context, attrs ...slog.Attr) context.Context {
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return WithContext(ctx, FromContext(ctx).With(args...))
}
