package archive

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
)

// DefaultNamePrefix prefixes the timestamp in artifact names.
const DefaultNamePrefix = "certificates_batch_"

type entry struct {
	name string
	data []byte
}

// Builder collects archive entries in memory. It is not safe for concurrent use.
type Builder struct {
	index       map[string]int
	now         func() time.Time
	prefix      string
	entries     []entry
	policy      CollisionPolicy
	compression Compression
	level       int
	finalized   bool
}

// NewBuilder creates an empty Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		index:  make(map[string]int),
		now:    time.Now,
		prefix: DefaultNamePrefix,
		level:  flate.DefaultCompression,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add stores data under name and returns the name actually used.
// collided reports whether name was already taken; the collision policy
// decides whether the earlier entry was replaced or the new one renamed.
func (b *Builder) Add(name string, data []byte) (stored string, collided bool, err error) {
	if b.finalized {
		return "", false, ErrFinalized
	}
	if name == "" {
		return "", false, ErrEmptyName
	}

	i, exists := b.index[name]
	if !exists {
		b.insert(name, data)
		return name, false, nil
	}

	if b.policy == Disambiguate {
		name = b.freeName(name)
		b.insert(name, data)
		return name, true, nil
	}

	b.entries[i].data = data
	return name, true, nil
}

// Len returns the number of entries.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Names returns entry names in archive order.
func (b *Builder) Names() []string {
	names := make([]string, len(b.entries))
	for i, e := range b.entries {
		names[i] = e.name
	}
	return names
}

// Finalize writes all entries into a zip and returns the artifact.
// The builder cannot be used afterwards.
func (b *Builder) Finalize() (*Artifact, error) {
	if b.finalized {
		return nil, ErrFinalized
	}
	b.finalized = true

	now := b.now()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	level := b.level
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, level)
	})

	method := zip.Deflate
	if b.compression == Store {
		method = zip.Store
	}

	for _, e := range b.entries {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     e.name,
			Method:   method,
			Modified: now,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrWrite, e.name, err)
		}
		if _, err := w.Write(e.data); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrWrite, e.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	names := b.Names()
	b.entries = nil
	b.index = nil

	return &Artifact{
		Name:    fmt.Sprintf("%s%d.zip", b.prefix, now.UnixMilli()),
		Data:    buf.Bytes(),
		Entries: names,
	}, nil
}

func (b *Builder) insert(name string, data []byte) {
	b.index[name] = len(b.entries)
	b.entries = append(b.entries, entry{name: name, data: data})
}

// freeName returns the first unused name of the form base_N.ext, N >= 2.
func (b *Builder) freeName(name string) string {
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", base, n, ext)
		if _, taken := b.index[candidate]; !taken {
			return candidate
		}
	}
}
