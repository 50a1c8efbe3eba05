package render

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/dmitrymomot/certforge/pkg/layout"
	"github.com/dmitrymomot/certforge/pkg/placeholder"
)

// Render draws one frame of scene onto surface, substituting placeholders
// with values from r. The surface is fully cleared first, so no pixels of a
// previous frame survive.
func Render(surface *Surface, scene *Scene, r placeholder.Resolver) error {
	dst := surface.Image()
	if b := dst.Bounds(); b.Dx() != scene.width || b.Dy() != scene.height {
		return fmt.Errorf("%w: surface %dx%d, template %dx%d", ErrSurfaceSize, b.Dx(), b.Dy(), scene.width, scene.height)
	}

	surface.Clear()

	draw.Draw(dst, dst.Bounds(), scene.background, image.Point{}, draw.Over)

	for _, o := range scene.overlays {
		rect := o.img.Bounds().Add(o.at)
		draw.Draw(dst, rect, o.img, image.Point{}, draw.Over)
	}

	for _, t := range scene.texts {
		drawText(dst, t, placeholder.Substitute(t.el.Text, r))
	}

	return nil
}

// drawText draws a single line anchored at the top with the element's
// horizontal alignment.
func drawText(dst draw.Image, t textRun, text string) {
	if text == "" {
		return
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  t.src,
		Face: t.face,
	}

	x := toFixed(t.el.Position.X)
	switch t.el.Align {
	case layout.AlignCenter:
		x -= d.MeasureString(text) / 2
	case layout.AlignRight:
		x -= d.MeasureString(text)
	}

	d.Dot = fixed.Point26_6{
		X: x,
		Y: toFixed(t.el.Position.Y) + t.face.Metrics().Ascent,
	}
	d.DrawString(text)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
