package layout

import "errors"

var (
	ErrInvalidLayout = errors.New("layout: invalid layout")
	ErrUnknownFormat = errors.New("layout: unknown format")
)
