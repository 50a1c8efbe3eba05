package asset

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// decodeImage checks that data looks like an image and decodes it.
func decodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptySource
	}

	if mt := detectMIME(data); !acceptableMIME(mt) {
		return nil, fmt.Errorf("%w: detected %s", ErrNotImage, normalizeMIME(mt))
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}
