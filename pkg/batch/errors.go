package batch

import (
	"errors"

	"github.com/dmitrymomot/certforge/pkg/layout"
)

// Errors returned by Generate and Preview. None of them is transient, so
// nothing is retried.
var (
	// ErrInvalidLayout is returned when the layout fails structural validation.
	ErrInvalidLayout = layout.ErrInvalidLayout

	// ErrAssetLoad is returned when the background or an overlay image
	// cannot be loaded or decoded. No frame is drawn.
	ErrAssetLoad = errors.New("batch: asset load failed")

	// ErrRender is returned when drawing, encoding or storing a frame fails.
	ErrRender = errors.New("batch: render failed")

	// ErrArchive is returned when the archive cannot be finalized.
	ErrArchive = errors.New("batch: archive failed")

	// ErrCanceled is returned when the context is canceled between recipients.
	ErrCanceled = errors.New("batch: canceled")
)
