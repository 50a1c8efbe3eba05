package asset

import "errors"

var (
	// ErrLoadFailed wraps every failure returned by LoadAll.
	ErrLoadFailed = errors.New("asset: load failed")

	ErrEmptySource       = errors.New("asset: empty source")
	ErrUnsupportedSource = errors.New("asset: unsupported source")
	ErrNoFetcher         = errors.New("asset: object storage not configured")
	ErrInvalidDataURI    = errors.New("asset: invalid data URI")
	ErrTooLarge          = errors.New("asset: payload exceeds size limit")
	ErrNotImage          = errors.New("asset: payload is not an image")
	ErrDecode            = errors.New("asset: decode failed")
)
