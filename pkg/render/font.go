package render

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/dmitrymomot/certforge/pkg/layout"
)

// FontSpec is the font shorthand of a text element.
type FontSpec struct {
	Family string
	Style  layout.Style
	Weight layout.Weight
	Size   float64
}

// SpecFor builds the FontSpec of a text element, defaulting empty values.
func SpecFor(el layout.TextElement) FontSpec {
	spec := FontSpec{
		Family: el.FontFamily,
		Style:  el.Style,
		Weight: el.Weight,
		Size:   el.FontSize,
	}
	if spec.Style == "" {
		spec.Style = layout.StyleNormal
	}
	if spec.Weight == "" {
		spec.Weight = layout.WeightNormal
	}
	return spec
}

// String returns the CSS font shorthand, e.g. "italic bold 24px Arial".
func (s FontSpec) String() string {
	family := s.Family
	if family == "" {
		family = "sans-serif"
	}
	return fmt.Sprintf("%s %s %gpx %s", s.Style, s.Weight, s.Size, family)
}

// mono reports whether the family asks for a monospaced face.
func (s FontSpec) mono() bool {
	f := strings.ToLower(s.Family)
	return strings.Contains(f, "mono") || strings.Contains(f, "courier") || strings.Contains(f, "consol")
}

type fontVariant struct {
	mono   bool
	bold   bool
	italic bool
}

var goFontData = map[fontVariant][]byte{
	{false, false, false}: goregular.TTF,
	{false, true, false}:  gobold.TTF,
	{false, false, true}:  goitalic.TTF,
	{false, true, true}:   gobolditalic.TTF,
	{true, false, false}:  gomono.TTF,
	{true, true, false}:   gomonobold.TTF,
	{true, false, true}:   gomonoitalic.TTF,
	{true, true, true}:    gomonobolditalic.TTF,
}

// goFonts parses the bundled fonts once. Parsed fonts are read-only and
// shared by every face.
var goFonts = sync.OnceValues(func() (map[fontVariant]*opentype.Font, error) {
	fonts := make(map[fontVariant]*opentype.Font, len(goFontData))
	for v, data := range goFontData {
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, err
		}
		fonts[v] = f
	}
	return fonts, nil
})

// newFace creates a font face for spec. Faces are not safe for concurrent use.
func newFace(spec FontSpec) (font.Face, error) {
	fonts, err := goFonts()
	if err != nil {
		return nil, fmt.Errorf("%w: parse bundled fonts: %v", ErrFont, err)
	}

	f := fonts[fontVariant{
		mono:   spec.mono(),
		bold:   spec.Weight == layout.WeightBold,
		italic: spec.Style == layout.StyleItalic,
	}]

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    spec.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFont, spec, err)
	}
	return face, nil
}
