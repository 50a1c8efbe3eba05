package archive

import (
	"time"

	"github.com/klauspost/compress/flate"
)

// CollisionPolicy decides what happens when an entry name is added twice.
type CollisionPolicy int

const (
	// Overwrite replaces the earlier entry, keeping its position.
	Overwrite CollisionPolicy = iota

	// Disambiguate stores the later entry under a suffixed name: name_2.ext, name_3.ext, ...
	Disambiguate
)

// String implements fmt.Stringer.
func (p CollisionPolicy) String() string {
	switch p {
	case Disambiguate:
		return "disambiguate"
	default:
		return "overwrite"
	}
}

// Compression selects how entries are stored in the zip.
type Compression int

const (
	// Deflate compresses entries.
	Deflate Compression = iota

	// Store writes entries uncompressed. PNG frames are already compressed,
	// so this trades a slightly larger archive for faster finalization.
	Store
)

// Option configures a Builder.
type Option func(*Builder)

// WithCollisionPolicy sets the collision policy. Default: Overwrite.
func WithCollisionPolicy(p CollisionPolicy) Option {
	return func(b *Builder) {
		b.policy = p
	}
}

// WithCompression sets the entry compression method. Default: Deflate.
func WithCompression(c Compression) Option {
	return func(b *Builder) {
		b.compression = c
	}
}

// WithLevel sets the deflate level, from flate.HuffmanOnly to flate.BestCompression.
// Default: flate.DefaultCompression.
func WithLevel(level int) Option {
	return func(b *Builder) {
		if level >= flate.HuffmanOnly && level <= flate.BestCompression {
			b.level = level
		}
	}
}

// WithClock sets the time source for entry timestamps and the artifact name.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithNamePrefix sets the artifact name prefix. Default: "certificates_batch_".
func WithNamePrefix(prefix string) Option {
	return func(b *Builder) {
		b.prefix = prefix
	}
}
