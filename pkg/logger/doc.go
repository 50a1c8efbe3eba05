// Package logger provides structured logging built on log/slog with
// context extraction and optional Sentry reporting.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//		logger.WithExtractors(logger.RunIDExtractor),
//	)
//
//	ctx = logger.WithRunID(ctx, runID)
//	log.InfoContext(ctx, "batch started", slog.Int("recipients", 12))
//	// level=INFO msg="batch started" recipients=12 run_id=...
//
// # Context Extractors
//
// A ContextExtractor pulls one attribute out of a context on every log call:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Returning false skips the attribute for that record.
//
// # Sentry
//
// NewWithSentry sends error records to Sentry as events and warnings as
// logs. With an empty DSN it behaves exactly like New:
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//	}, logger.WithExtractors(logger.RunIDExtractor))
//
// Libraries in this module default to NewNope when no logger is supplied.
package logger
