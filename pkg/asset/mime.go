package asset

import (
	"net/http"
	"strings"
)

const mimeOctetStream = "application/octet-stream"

// detectMIME sniffs the MIME type of data from its magic bytes.
func detectMIME(data []byte) string {
	if len(data) == 0 {
		return mimeOctetStream
	}
	return http.DetectContentType(data)
}

// normalizeMIME extracts the base MIME type, removing parameters like charset.
func normalizeMIME(mimeType string) string {
	mimeType, _, _ = strings.Cut(mimeType, ";")
	return strings.TrimSpace(strings.ToLower(mimeType))
}

// acceptableMIME reports whether a sniffed type may hold a decodable image.
// Unrecognised binary payloads are passed to the decoders, which know
// formats the sniffer does not (TIFF).
func acceptableMIME(mimeType string) bool {
	mt := normalizeMIME(mimeType)
	return strings.HasPrefix(mt, "image/") || mt == mimeOctetStream
}
