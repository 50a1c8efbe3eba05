package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/certforge/pkg/logger"
)

func TestNew_JSONWithRunID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithExtractors(logger.RunIDExtractor, nil),
	)

	ctx := logger.WithRunID(context.Background(), "run-1")
	log.InfoContext(ctx, "batch started", slog.Int("recipients", 2))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "batch started", rec["msg"])
	require.Equal(t, "run-1", rec["run_id"])
	require.InDelta(t, 2, rec["recipients"], 0)
}

func TestNew_TextAndLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(slog.LevelWarn),
		logger.WithExtractors(logger.RunIDExtractor),
	)

	log.Info("hidden")
	require.Empty(t, buf.String())

	log.Warn("collision", slog.String("entry", "certificate_ann.png"))
	require.Contains(t, buf.String(), "msg=collision")
	require.Contains(t, buf.String(), "entry=certificate_ann.png")
	require.NotContains(t, buf.String(), "run_id")
}

func TestNewWithSentry_NoDSN(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithSentry(logger.SentryConfig{}, logger.WithOutput(&buf))
	log.Error("boom")
	require.Contains(t, buf.String(), "boom")
}

func TestFlushSentry_NotInitialised(t *testing.T) {
	t.Parallel()

	start := time.Now()
	require.False(t, logger.FlushSentry(time.Second))
	require.Less(t, time.Since(start), time.Second)
}

func TestRunID(t *testing.T) {
	t.Parallel()

	_, ok := logger.RunID(context.Background())
	require.False(t, ok)

	_, ok = logger.RunID(logger.WithRunID(context.Background(), ""))
	require.False(t, ok)

	id, ok := logger.RunID(logger.WithRunID(context.Background(), "abc"))
	require.True(t, ok)
	require.Equal(t, "abc", id)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	require.Equal(t, slog.LevelWarn, logger.ParseLevel("WARN"))
	require.Equal(t, slog.LevelError, logger.ParseLevel(" error "))
	require.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.False(t, log.Enabled(context.Background(), slog.LevelError))
}
