package storage

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// Sentinel errors for storage operations.
var (
	ErrInvalidConfig  = errors.New("storage: invalid configuration")
	ErrMissingBucket  = errors.New("storage: bucket not specified")
	ErrNotFound       = errors.New("storage: object not found")
	ErrAccessDenied   = errors.New("storage: access denied")
	ErrFetchFailed    = errors.New("storage: fetch failed")
	ErrObjectTooLarge = errors.New("storage: object exceeds size limit")
)

// wrapS3Error maps S3 API errors onto the package sentinels.
// The original error is formatted with %v so callers match on sentinels only.
func wrapS3Error(err error, fallback error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchBucket":
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %v", ErrAccessDenied, err)
		}
	}

	var notFound *types.NoSuchKey
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	return fmt.Errorf("%w: %v", fallback, err)
}
