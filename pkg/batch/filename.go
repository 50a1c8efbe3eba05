package batch

import (
	"regexp"
	"strings"
)

// Archive entry naming.
const (
	EntryPrefix = "certificate_"
	EntryExt    = ".png"
)

var unsafeRuns = regexp.MustCompile(`[^a-z0-9]+`)

// SanitizeName lower-cases name, collapses every run of characters outside
// [a-z0-9] into one underscore and trims underscores at both ends.
func SanitizeName(name string) string {
	s := unsafeRuns.ReplaceAllString(strings.ToLower(name), "_")
	return strings.Trim(s, "_")
}

// EntryName returns the archive entry name for a recipient name,
// e.g. "Ann Lee" becomes "certificate_ann_lee.png".
func EntryName(name string) string {
	return EntryPrefix + SanitizeName(name) + EntryExt
}
