package archive

import "errors"

var (
	ErrEmptyName = errors.New("archive: empty entry name")
	ErrFinalized = errors.New("archive: builder already finalized")
	ErrWrite     = errors.New("archive: write failed")
)
