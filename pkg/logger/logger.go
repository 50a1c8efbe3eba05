package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Option configures a logger built by New or NewWithSentry.
type Option func(*options)

type options struct {
	out        io.Writer
	format     Format
	extractors []ContextExtractor
	level      slog.Level
}

func defaultOptions() *options {
	return &options{
		out:    os.Stdout,
		format: FormatJSON,
		level:  slog.LevelInfo,
	}
}

// WithOutput sets the destination writer. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithFormat sets the output encoding. Default: FormatJSON.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithLevel sets the minimum level. Default: slog.LevelInfo.
func WithLevel(l slog.Level) Option {
	return func(o *options) {
		o.level = l
	}
}

// WithExtractors adds context extractors applied to every record.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		o.extractors = append(o.extractors, extractors...)
	}
}

// New creates a logger writing to the configured output.
func New(opts ...Option) *slog.Logger {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return slog.New(NewLogHandlerDecorator(o.handler(), o.extractors...))
}

// handler builds the base handler for the options.
func (o *options) handler() slog.Handler {
	hopts := &slog.HandlerOptions{Level: o.level}
	if o.format == FormatText {
		return slog.NewTextHandler(o.out, hopts)
	}
	return slog.NewJSONHandler(o.out, hopts)
}

// ParseLevel converts a level name (debug, info, warn, error) to slog.Level.
// Unknown names yield slog.LevelInfo.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}

// NewNope returns a logger that discards everything.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
