package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/certforge/pkg/layout"
	"github.com/dmitrymomot/certforge/pkg/placeholder"
	"github.com/dmitrymomot/certforge/pkg/render"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func near(a, b color.NRGBA) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= 2 && d(a.G, b.G) <= 2 && d(a.B, b.B) <= 2 && d(a.A, b.A) <= 2
}

// inkColumns returns the x range of pixels that differ from the background.
func inkColumns(img *image.NRGBA, bg color.NRGBA) (minX, maxX int, found bool) {
	b := img.Bounds()
	minX, maxX = b.Max.X, -1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !near(img.NRGBAAt(x, y), bg) {
				found = true
				minX = min(minX, x)
				maxX = max(maxX, x)
			}
		}
	}
	return minX, maxX, found
}

func textLayout(text string, align layout.Align, x float64) *layout.Layout {
	return &layout.Layout{
		Template: layout.Template{Src: "bg", Width: 200, Height: 40},
		TextElements: []layout.TextElement{
			{ID: "t", Text: text, Position: layout.Point{X: x, Y: 5}, FontSize: 20, Color: "#000", Align: align},
		},
	}
}

func TestPrepare_Errors(t *testing.T) {
	t.Parallel()

	l := &layout.Layout{
		Template: layout.Template{Src: "bg", Width: 10, Height: 10},
		ImageElements: []layout.ImageElement{
			{ID: "logo", Src: "logo", Width: 2, Height: 2},
		},
	}

	_, err := render.Prepare(l, nil, nil)
	require.ErrorIs(t, err, render.ErrMissingAsset)

	_, err = render.Prepare(l, solid(1, 1, red), map[string]image.Image{})
	require.ErrorIs(t, err, render.ErrMissingAsset)

	l.ImageElements = nil
	l.TextElements = []layout.TextElement{{ID: "t", Text: "x", FontSize: 10, Color: "not-a-color"}}
	_, err = render.Prepare(l, solid(1, 1, red), nil)
	require.ErrorIs(t, err, render.ErrInvalidColor)
}

func TestRender_BackgroundAndOverlays(t *testing.T) {
	t.Parallel()

	l := &layout.Layout{
		Template: layout.Template{Src: "bg", Width: 20, Height: 10},
		ImageElements: []layout.ImageElement{
			{ID: "a", Src: "blue", Position: layout.Point{X: 5, Y: 5}, Width: 4, Height: 4},
			{ID: "b", Src: "white", Position: layout.Point{X: 7, Y: 7}, Width: 4, Height: 4},
		},
	}
	images := map[string]image.Image{
		"blue":  solid(4, 4, blue),
		"white": solid(2, 2, white), // stretched to 4x4
	}

	scene, err := render.Prepare(l, solid(5, 5, red), images)
	require.NoError(t, err)

	surface := scene.NewSurface()
	require.NoError(t, render.Render(surface, scene, placeholder.Map{}))

	img := surface.Image()
	require.Equal(t, image.Rect(0, 0, 20, 10), img.Bounds())
	require.True(t, near(red, img.NRGBAAt(0, 0)))
	require.True(t, near(red, img.NRGBAAt(19, 9)))
	require.True(t, near(blue, img.NRGBAAt(5, 5)))
	require.True(t, near(blue, img.NRGBAAt(6, 6)))
	// later overlay covers the earlier one
	require.True(t, near(white, img.NRGBAAt(8, 8)))
	require.True(t, near(white, img.NRGBAAt(10, 9)))
	require.True(t, near(red, img.NRGBAAt(4, 4)))
}

func TestRender_Text(t *testing.T) {
	t.Parallel()

	t.Run("placeholders substituted and drawn", func(t *testing.T) {
		t.Parallel()
		scene, err := render.Prepare(textLayout("{{name}}", layout.AlignLeft, 10), solid(1, 1, white), nil)
		require.NoError(t, err)

		surface := scene.NewSurface()
		require.NoError(t, render.Render(surface, scene, placeholder.Map{"name": "Bo"}))

		minX, _, found := inkColumns(surface.Image(), white)
		require.True(t, found)
		require.GreaterOrEqual(t, minX, 10)
	})

	t.Run("empty substitution draws nothing", func(t *testing.T) {
		t.Parallel()
		scene, err := render.Prepare(textLayout("{{name}}", layout.AlignLeft, 10), solid(1, 1, white), nil)
		require.NoError(t, err)

		surface := scene.NewSurface()
		require.NoError(t, render.Render(surface, scene, placeholder.Map{"name": ""}))

		_, _, found := inkColumns(surface.Image(), white)
		require.False(t, found)
	})

	t.Run("right alignment ends at position", func(t *testing.T) {
		t.Parallel()
		scene, err := render.Prepare(textLayout("Certificate", layout.AlignRight, 150), solid(1, 1, white), nil)
		require.NoError(t, err)

		surface := scene.NewSurface()
		require.NoError(t, render.Render(surface, scene, nil))

		_, maxX, found := inkColumns(surface.Image(), white)
		require.True(t, found)
		require.LessOrEqual(t, maxX, 151)
	})

	t.Run("center alignment straddles position", func(t *testing.T) {
		t.Parallel()
		scene, err := render.Prepare(textLayout("Certificate", layout.AlignCenter, 100), solid(1, 1, white), nil)
		require.NoError(t, err)

		surface := scene.NewSurface()
		require.NoError(t, render.Render(surface, scene, nil))

		minX, maxX, found := inkColumns(surface.Image(), white)
		require.True(t, found)
		require.Less(t, minX, 100)
		require.Greater(t, maxX, 100)
	})

	t.Run("text anchored at top", func(t *testing.T) {
		t.Parallel()
		scene, err := render.Prepare(textLayout("Hello", layout.AlignLeft, 0), solid(1, 1, white), nil)
		require.NoError(t, err)

		surface := scene.NewSurface()
		require.NoError(t, render.Render(surface, scene, nil))

		img := surface.Image()
		for y := range 5 {
			for x := range img.Bounds().Dx() {
				require.True(t, near(white, img.NRGBAAt(x, y)), "ink above anchor at %d,%d", x, y)
			}
		}
	})
}

func TestRender_SurfaceReuseLeavesNoResidue(t *testing.T) {
	t.Parallel()

	l := textLayout("Certificate for {{name}}", layout.AlignLeft, 4)
	l.Template.Src = "bg"
	scene, err := render.Prepare(l, image.NewNRGBA(image.Rect(0, 0, 1, 1)), nil) // transparent background
	require.NoError(t, err)

	reused := scene.NewSurface()
	require.NoError(t, render.Render(reused, scene, placeholder.Map{"name": "Bartholomew Longname"}))
	require.NoError(t, render.Render(reused, scene, placeholder.Map{"name": "Bo"}))

	fresh := scene.NewSurface()
	require.NoError(t, render.Render(fresh, scene, placeholder.Map{"name": "Bo"}))

	require.Equal(t, fresh.Image().Pix, reused.Image().Pix)
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	l := textLayout("{{name}}", layout.AlignCenter, 100)
	l.TextElements[0].Weight = layout.WeightBold
	l.TextElements[0].Style = layout.StyleItalic

	encode := func() []byte {
		scene, err := render.Prepare(l, solid(3, 3, white), nil)
		require.NoError(t, err)
		surface := scene.NewSurface()
		require.NoError(t, render.Render(surface, scene, placeholder.Map{"name": "Ann"}))
		data, err := render.EncodeBytes(surface.Image())
		require.NoError(t, err)
		return data
	}

	require.Equal(t, encode(), encode())
}

func TestRender_SurfaceSizeMismatch(t *testing.T) {
	t.Parallel()

	scene, err := render.Prepare(textLayout("x", layout.AlignLeft, 0), solid(1, 1, white), nil)
	require.NoError(t, err)

	err = render.Render(render.NewSurface(10, 10), scene, nil)
	require.ErrorIs(t, err, render.ErrSurfaceSize)
}

func TestEncode(t *testing.T) {
	t.Parallel()

	data, err := render.EncodeBytes(solid(7, 3, red))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 7, 3), img.Bounds())

	require.Contains(t, render.DataURI(data), "data:image/png;base64,")
}

func TestFontSpec(t *testing.T) {
	t.Parallel()

	spec := render.SpecFor(layout.TextElement{FontSize: 24, FontFamily: "Arial"})
	require.Equal(t, "normal normal 24px Arial", spec.String())

	spec = render.SpecFor(layout.TextElement{FontSize: 12.5, Weight: layout.WeightBold, Style: layout.StyleItalic})
	require.Equal(t, "italic bold 12.5px sans-serif", spec.String())
}
