package logger

import (
	"context"
	"log/slog"
)

type runIDKey struct{}

// WithRunID returns a context carrying a batch run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunID returns the batch run identifier stored in ctx, if any.
func RunID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// RunIDExtractor adds a run_id attribute when the context carries one.
func RunIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := RunID(ctx); ok {
		return slog.String("run_id", id), true
	}
	return slog.Attr{}, false
}
