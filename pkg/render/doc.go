// Package render rasterises certificate frames.
//
// Rendering is split in two steps. Prepare does the work that does not
// depend on a recipient: it stretches the background and overlay bitmaps to
// their target sizes, parses colours and resolves fonts. Render then draws
// one recipient onto a Surface:
//
//	scene, err := render.Prepare(lay, images[lay.Template.Src], images)
//	if err != nil {
//		return err
//	}
//
//	surface := render.NewSurface(lay.Template.Width, lay.Template.Height)
//	for _, r := range recipients {
//		if err := render.Render(surface, scene, r); err != nil {
//			return err
//		}
//		if err := render.Encode(w, surface.Image()); err != nil {
//			return err
//		}
//	}
//
// # Draw order
//
// Each frame clears the surface, draws the background at the origin, then
// image elements in order, then text elements in order. Later elements
// cover earlier ones.
//
// # Text
//
// Fonts come from the Go font family bundled with golang.org/x/image.
// Families whose name mentions mono, courier or consol use Go Mono; all
// others use Go. Sizes are pixels. Text is anchored at the top: its first
// line grows downward from the element position. Alignment moves the
// anchor to the left edge, centre or right edge of the rendered string.
//
// A Scene holds font faces, which are not safe for concurrent use.
// Use one Scene per goroutine.
package render
