package layout

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/certforge/pkg/placeholder"
)

// Point is a position on the canvas in pixels, origin at the top-left corner.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Template is the background image and the canvas size.
type Template struct {
	Src    string `json:"src" yaml:"src"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

// Weight is a font weight.
type Weight string

const (
	WeightNormal Weight = "normal"
	WeightBold   Weight = "bold"
)

// Style is a font style.
type Style string

const (
	StyleNormal Style = "normal"
	StyleItalic Style = "italic"
)

// Align is the horizontal alignment of text relative to its position.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// ImageKind categorises an image element. It does not affect rendering.
type ImageKind string

const (
	KindSignature ImageKind = "signature"
	KindLogo      ImageKind = "logo"
	KindCustom    ImageKind = "custom"
)

// TextElement is a line of text, optionally containing placeholder tokens.
type TextElement struct {
	ID         string  `json:"id" yaml:"id"`
	Text       string  `json:"text" yaml:"text"`
	FontFamily string  `json:"fontFamily" yaml:"fontFamily"`
	Color      string  `json:"color" yaml:"color"`
	Weight     Weight  `json:"weight,omitempty" yaml:"weight,omitempty"`
	Style      Style   `json:"style,omitempty" yaml:"style,omitempty"`
	Align      Align   `json:"align,omitempty" yaml:"align,omitempty"`
	Position   Point   `json:"position" yaml:"position"`
	FontSize   float64 `json:"fontSize" yaml:"fontSize"`
}

// ImageElement is a bitmap stretched to Width x Height at Position.
type ImageElement struct {
	ID       string    `json:"id" yaml:"id"`
	Src      string    `json:"src" yaml:"src"`
	Kind     ImageKind `json:"kind,omitempty" yaml:"kind,omitempty"`
	Position Point     `json:"position" yaml:"position"`
	Width    int       `json:"width" yaml:"width"`
	Height   int       `json:"height" yaml:"height"`
}

// Layout is the complete certificate design used for a batch run.
// It is treated as immutable while a batch is running.
type Layout struct {
	Template      Template       `json:"template" yaml:"template"`
	TextElements  []TextElement  `json:"textElements" yaml:"textElements"`
	ImageElements []ImageElement `json:"imageElements" yaml:"imageElements"`
}

// PlaceholderKeys returns the distinct placeholder keys used by all text elements.
func (l *Layout) PlaceholderKeys() []string {
	texts := make([]string, len(l.TextElements))
	for i, el := range l.TextElements {
		texts[i] = el.Text
	}
	return placeholder.Keys(texts...)
}

// Sources returns the distinct image sources of the layout,
// background first, then image elements in order.
func (l *Layout) Sources() []string {
	seen := make(map[string]struct{}, len(l.ImageElements)+1)
	srcs := make([]string, 0, len(l.ImageElements)+1)

	add := func(src string) {
		if _, ok := seen[src]; ok {
			return
		}
		seen[src] = struct{}{}
		srcs = append(srcs, src)
	}

	add(l.Template.Src)
	for _, el := range l.ImageElements {
		add(el.Src)
	}
	return srcs
}

// Validate checks the structural invariants of the layout.
// All problems are reported together, joined with ErrInvalidLayout.
func (l *Layout) Validate() error {
	var errs []error

	if l.Template.Src == "" {
		errs = append(errs, errors.New("template src is empty"))
	}
	if l.Template.Width <= 0 || l.Template.Height <= 0 {
		errs = append(errs, fmt.Errorf("template size %dx%d must be positive", l.Template.Width, l.Template.Height))
	}

	imageIDs := make(map[string]struct{}, len(l.ImageElements))
	for i, el := range l.ImageElements {
		if _, dup := imageIDs[el.ID]; dup {
			errs = append(errs, fmt.Errorf("image element %d: duplicate id %q", i, el.ID))
		}
		imageIDs[el.ID] = struct{}{}

		if el.Src == "" {
			errs = append(errs, fmt.Errorf("image element %q: src is empty", el.ID))
		}
		if el.Width <= 0 || el.Height <= 0 {
			errs = append(errs, fmt.Errorf("image element %q: size %dx%d must be positive", el.ID, el.Width, el.Height))
		}
		switch el.Kind {
		case "", KindSignature, KindLogo, KindCustom:
		default:
			errs = append(errs, fmt.Errorf("image element %q: unknown kind %q", el.ID, el.Kind))
		}
	}

	textIDs := make(map[string]struct{}, len(l.TextElements))
	for i, el := range l.TextElements {
		if _, dup := textIDs[el.ID]; dup {
			errs = append(errs, fmt.Errorf("text element %d: duplicate id %q", i, el.ID))
		}
		textIDs[el.ID] = struct{}{}

		if el.FontSize <= 0 {
			errs = append(errs, fmt.Errorf("text element %q: font size must be positive", el.ID))
		}
		switch el.Weight {
		case "", WeightNormal, WeightBold:
		default:
			errs = append(errs, fmt.Errorf("text element %q: unknown weight %q", el.ID, el.Weight))
		}
		switch el.Style {
		case "", StyleNormal, StyleItalic:
		default:
			errs = append(errs, fmt.Errorf("text element %q: unknown style %q", el.ID, el.Style))
		}
		switch el.Align {
		case "", AlignLeft, AlignCenter, AlignRight:
		default:
			errs = append(errs, fmt.Errorf("text element %q: unknown align %q", el.ID, el.Align))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalidLayout}, errs...)...)
}
