package asset

import (
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/certforge/pkg/storage"
)

// DefaultMaxSize is the default payload size limit for a single asset.
const DefaultMaxSize = 32 << 20 // 32MB

// Option configures a Router.
type Option func(*Router)

// WithBaseDir sets the directory relative file paths are resolved against.
func WithBaseDir(dir string) Option {
	return func(r *Router) {
		r.baseDir = dir
	}
}

// WithFetcher enables s3:// sources backed by object storage.
func WithFetcher(f storage.Fetcher) Option {
	return func(r *Router) {
		if f != nil {
			r.fetcher = f
		}
	}
}

// WithMaxSize limits the payload size of a single asset in bytes.
func WithMaxSize(n int64) Option {
	return func(r *Router) {
		if n > 0 {
			r.maxSize = n
		}
	}
}

// Router is a Loader that dispatches sources by scheme.
type Router struct {
	fetcher storage.Fetcher
	baseDir string
	maxSize int64
}

// NewRouter creates a Router. Without WithFetcher, s3:// sources fail with ErrNoFetcher.
func NewRouter(opts ...Option) *Router {
	r := &Router{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load implements Loader.
func (r *Router) Load(ctx context.Context, src string) (image.Image, error) {
	data, err := r.read(ctx, src)
	if err != nil {
		return nil, err
	}
	return decodeImage(data)
}

// read returns the raw payload for src.
func (r *Router) read(ctx context.Context, src string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src = strings.TrimSpace(src)
	if src == "" {
		return nil, ErrEmptySource
	}

	if strings.HasPrefix(src, "data:") {
		data, err := parseDataURI(src)
		if err != nil {
			return nil, err
		}
		return r.checkSize(data)
	}

	scheme, _, hasScheme := strings.Cut(src, "://")
	if !hasScheme {
		return r.readFile(src)
	}

	u, err := url.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedSource, err)
	}

	switch strings.ToLower(scheme) {
	case "file":
		return r.readFile(u.Path)
	case "s3":
		if r.fetcher == nil {
			return nil, ErrNoFetcher
		}
		data, err := r.fetcher.Fetch(ctx, u.Host, strings.TrimPrefix(u.Path, "/"))
		if err != nil {
			return nil, err
		}
		return r.checkSize(data)
	default:
		return nil, fmt.Errorf("%w: scheme %q", ErrUnsupportedSource, scheme)
	}
}

// readFile reads a local file, resolving relative paths against the base dir.
func (r *Router) readFile(path string) ([]byte, error) {
	if !filepath.IsAbs(path) && r.baseDir != "" {
		path = filepath.Join(r.baseDir, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, r.maxSize+1))
	if err != nil {
		return nil, err
	}
	return r.checkSize(data)
}

func (r *Router) checkSize(data []byte) ([]byte, error) {
	if int64(len(data)) > r.maxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, r.maxSize)
	}
	return data, nil
}

// parseDataURI decodes the payload of a data URI of the form
// data:[<mediatype>][;base64],<data>.
func parseDataURI(src string) ([]byte, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(src, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("%w: missing comma", ErrInvalidDataURI)
	}

	if strings.HasSuffix(strings.ToLower(meta), ";base64") {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			data, err = base64.RawStdEncoding.DecodeString(payload)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
		}
		return data, nil
	}

	data, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}
	return []byte(data), nil
}
