package asset

import (
	"context"
	"fmt"
	"image"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// maxParallelLoads bounds the number of concurrent loads in LoadAll.
const maxParallelLoads = 8

// LoadAll loads every distinct source concurrently.
// The first failure cancels the remaining loads and is returned wrapped in
// ErrLoadFailed together with the offending source.
func LoadAll(ctx context.Context, l Loader, srcs []string) (map[string]image.Image, error) {
	images := make(map[string]image.Image, len(srcs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)

	seen := make(map[string]struct{}, len(srcs))
	for _, src := range srcs {
		if _, ok := seen[src]; ok {
			continue
		}
		seen[src] = struct{}{}

		g.Go(func() error {
			img, err := l.Load(gctx, src)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrLoadFailed, Describe(src), err)
			}

			mu.Lock()
			images[src] = img
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

// Describe returns a short printable form of a source for logs and errors.
// Data URIs are reduced to their media type.
func Describe(src string) string {
	const maxLen = 96

	if strings.HasPrefix(src, "data:") {
		meta, _, _ := strings.Cut(src, ",")
		src = meta + ",..."
	}
	if len(src) > maxLen {
		return src[:maxLen] + "..."
	}
	return src
}
