package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"

	"github.com/dmitrymomot/certforge/pkg/layout"
)

// Scene is a layout with its assets decoded, scaled and ready to draw.
type Scene struct {
	background *image.NRGBA
	overlays   []overlay
	texts      []textRun
	width      int
	height     int
}

type overlay struct {
	img *image.NRGBA
	at  image.Point
}

type textRun struct {
	face font.Face
	src  *image.Uniform
	el   layout.TextElement
}

// Prepare builds a Scene from a layout and its loaded images.
// overlays is keyed by image element Src. The background is stretched to the
// template size and each overlay to its element size, ignoring aspect ratio.
func Prepare(l *layout.Layout, background image.Image, overlays map[string]image.Image) (*Scene, error) {
	if background == nil {
		return nil, fmt.Errorf("%w: background %q", ErrMissingAsset, l.Template.Src)
	}

	s := &Scene{
		width:      l.Template.Width,
		height:     l.Template.Height,
		background: imaging.Resize(background, l.Template.Width, l.Template.Height, imaging.Lanczos),
		overlays:   make([]overlay, 0, len(l.ImageElements)),
		texts:      make([]textRun, 0, len(l.TextElements)),
	}

	for _, el := range l.ImageElements {
		src, ok := overlays[el.Src]
		if !ok || src == nil {
			return nil, fmt.Errorf("%w: image element %q (%s)", ErrMissingAsset, el.ID, el.Src)
		}
		s.overlays = append(s.overlays, overlay{
			img: imaging.Resize(src, el.Width, el.Height, imaging.Lanczos),
			at:  image.Pt(int(math.Round(el.Position.X)), int(math.Round(el.Position.Y))),
		})
	}

	faces := make(map[FontSpec]font.Face)
	for _, el := range l.TextElements {
		c, err := ParseColor(el.Color)
		if err != nil {
			return nil, fmt.Errorf("text element %q: %w", el.ID, err)
		}

		spec := SpecFor(el)
		face, ok := faces[spec]
		if !ok {
			face, err = newFace(spec)
			if err != nil {
				return nil, fmt.Errorf("text element %q: %w", el.ID, err)
			}
			faces[spec] = face
		}

		s.texts = append(s.texts, textRun{
			el:   el,
			face: face,
			src:  image.NewUniform(color.Color(c)),
		})
	}

	return s, nil
}

// Size returns the canvas size of the scene.
func (s *Scene) Size() (width, height int) {
	return s.width, s.height
}

// NewSurface allocates a surface matching the scene size.
func (s *Scene) NewSurface() *Surface {
	return NewSurface(s.width, s.height)
}
