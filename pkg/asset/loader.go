package asset

import (
	"context"
	"image"
)

// Loader loads a decoded image for a source reference.
type Loader interface {
	Load(ctx context.Context, src string) (image.Image, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, src string) (image.Image, error)

// Load implements Loader.
func (f LoaderFunc) Load(ctx context.Context, src string) (image.Image, error) {
	return f(ctx, src)
}
