package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// namedColors holds the CSS colour keywords commonly used in layouts.
var namedColors = map[string]color.NRGBA{
	"black":       {0x00, 0x00, 0x00, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"red":         {0xff, 0x00, 0x00, 0xff},
	"green":       {0x00, 0x80, 0x00, 0xff},
	"lime":        {0x00, 0xff, 0x00, 0xff},
	"blue":        {0x00, 0x00, 0xff, 0xff},
	"navy":        {0x00, 0x00, 0x80, 0xff},
	"gray":        {0x80, 0x80, 0x80, 0xff},
	"grey":        {0x80, 0x80, 0x80, 0xff},
	"silver":      {0xc0, 0xc0, 0xc0, 0xff},
	"maroon":      {0x80, 0x00, 0x00, 0xff},
	"purple":      {0x80, 0x00, 0x80, 0xff},
	"teal":        {0x00, 0x80, 0x80, 0xff},
	"olive":       {0x80, 0x80, 0x00, 0xff},
	"yellow":      {0xff, 0xff, 0x00, 0xff},
	"orange":      {0xff, 0xa5, 0x00, 0xff},
	"gold":        {0xff, 0xd7, 0x00, 0xff},
	"darkblue":    {0x00, 0x00, 0x8b, 0xff},
	"darkgreen":   {0x00, 0x64, 0x00, 0xff},
	"darkred":     {0x8b, 0x00, 0x00, 0xff},
	"darkgray":    {0xa9, 0xa9, 0xa9, 0xff},
	"darkgrey":    {0xa9, 0xa9, 0xa9, 0xff},
	"transparent": {0x00, 0x00, 0x00, 0x00},
}

// ParseColor parses a CSS colour: #rgb, #rgba, #rrggbb, #rrggbbaa,
// rgb(r, g, b), rgba(r, g, b, a) or a basic colour keyword.
// An empty string is black.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return namedColors["black"], nil
	}

	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	var (
		c   color.NRGBA
		err error
	)
	switch {
	case strings.HasPrefix(s, "#"):
		c, err = parseHex(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		c, err = parseFunc(s[5:len(s)-1], true)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		c, err = parseFunc(s[4:len(s)-1], false)
	default:
		err = errors.New("unrecognised syntax")
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	return c, nil
}

// parseHex parses 3, 4, 6 or 8 hex digits.
func parseHex(h string) (color.NRGBA, error) {
	if len(h) == 3 || len(h) == 4 {
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, errors.New("expected 3, 4, 6 or 8 hex digits")
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// parseFunc parses the arguments of rgb() and rgba().
func parseFunc(args string, withAlpha bool) (color.NRGBA, error) {
	parts := strings.Split(args, ",")
	want := 3
	if withAlpha {
		want = 4
	}
	if len(parts) != want {
		return color.NRGBA{}, fmt.Errorf("expected %d components, got %d", want, len(parts))
	}

	var ch [3]uint8
	for i := range 3 {
		n, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return color.NRGBA{}, err
		}
		ch[i] = clampByte(n)
	}

	alpha := uint8(0xff)
	if withAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return color.NRGBA{}, err
		}
		alpha = clampByte(a * 255)
	}

	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}

func clampByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
