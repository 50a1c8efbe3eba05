package batch

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/certforge/pkg/archive"
	"github.com/dmitrymomot/certforge/pkg/asset"
)

// Option configures a Generator.
type Option func(*Generator)

// WithLoader sets the image loader. Default: asset.NewRouter() with no base
// directory and no object storage.
func WithLoader(l asset.Loader) Option {
	return func(g *Generator) {
		if l != nil {
			g.loader = l
		}
	}
}

// WithLogger sets the logger. Default: a logger that discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithCollisionPolicy sets how entries with the same sanitized name are
// stored. Default: archive.Overwrite.
func WithCollisionPolicy(p archive.CollisionPolicy) Option {
	return func(g *Generator) {
		g.policy = p
	}
}

// WithCompression sets how archive entries are compressed. Default: archive.Deflate.
func WithCompression(c archive.Compression) Option {
	return func(g *Generator) {
		g.compression = c
	}
}

// WithClock sets the time source used for archive timestamps and naming.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithRunIDGenerator overrides how run ids are generated. Default: uuid.NewString.
func WithRunIDGenerator(fn func() string) Option {
	return func(g *Generator) {
		if fn != nil {
			g.newRunID = fn
		}
	}
}
