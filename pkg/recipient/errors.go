package recipient

import (
	"errors"
	"fmt"
)

// Sentinel errors for recipient loading.
var (
	// ErrMalformedInput is returned when the document does not have the
	// expected shape.
	ErrMalformedInput = errors.New("recipient: malformed input")

	// ErrMissingRequiredField is returned when a record has no non-empty name.
	ErrMissingRequiredField = errors.New("recipient: missing required field")

	// ErrUnknownFormat is returned for document formats other than JSON and YAML.
	ErrUnknownFormat = errors.New("recipient: unknown format")
)

// RecordError describes why a single record was rejected.
type RecordError struct {
	Err   error  // ErrMalformedInput or ErrMissingRequiredField
	Field string // offending field, empty when the record itself is invalid
	Index int    // 0-based position in the recipients sequence
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: record %d", e.Err, e.Index)
	}
	return fmt.Sprintf("%s: record %d: field %q", e.Err, e.Index, e.Field)
}

// Unwrap returns the underlying sentinel error.
func (e *RecordError) Unwrap() error {
	return e.Err
}
