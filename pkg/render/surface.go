package render

import (
	"image"

	"golang.org/x/image/draw"
)

// Surface is the raster a frame is drawn on. It is reused across frames
// and cleared at the start of every Render call.
type Surface struct {
	img *image.NRGBA
}

// NewSurface allocates a transparent surface of the given size.
func NewSurface(width, height int) *Surface {
	return &Surface{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the underlying raster. It is overwritten by the next Render.
func (s *Surface) Image() *image.NRGBA {
	return s.img
}

// Clear resets every pixel to transparent.
func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}
