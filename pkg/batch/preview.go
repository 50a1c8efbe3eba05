package batch

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/certforge/pkg/layout"
	"github.com/dmitrymomot/certforge/pkg/recipient"
	"github.com/dmitrymomot/certforge/pkg/render"
)

// Preview renders a single certificate and returns it as PNG bytes.
func (g *Generator) Preview(ctx context.Context, l *layout.Layout, r recipient.Recipient) ([]byte, error) {
	scene, err := g.prepare(ctx, l)
	if err != nil {
		return nil, err
	}

	data, err := renderFrame(scene.NewSurface(), scene, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRender, r.Name, err)
	}
	return data, nil
}

// PreviewDataURI is like Preview but returns a data:image/png;base64 URI.
func (g *Generator) PreviewDataURI(ctx context.Context, l *layout.Layout, r recipient.Recipient) (string, error) {
	data, err := g.Preview(ctx, l, r)
	if err != nil {
		return "", err
	}
	return render.DataURI(data), nil
}
