package render

import "errors"

var (
	ErrMissingAsset = errors.New("render: missing image")
	ErrInvalidColor = errors.New("render: invalid color")
	ErrFont         = errors.New("render: font")
	ErrSurfaceSize  = errors.New("render: surface size does not match template")
	ErrEncode       = errors.New("render: encode failed")
)
