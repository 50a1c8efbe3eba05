package recipient

import (
	"maps"
	"slices"

	"golang.org/x/text/cases"
)

// Standard placeholder keys resolved from Recipient fields.
const (
	KeyName  = "name"
	KeyTitle = "title"
	KeyDate  = "date"
)

// Recipient is one person a certificate is rendered for.
type Recipient struct {
	CustomFields map[string]string `json:"customFields" yaml:"customFields"`
	Name         string            `json:"name" yaml:"name"`
	Title        string            `json:"title,omitempty" yaml:"title,omitempty"`
	Date         string            `json:"date,omitempty" yaml:"date,omitempty"`
}

// Lookup resolves a placeholder key for the recipient.
//
// Standard keys (name, title, date) are matched case-insensitively and
// always resolve, possibly to an empty string. They take precedence over a
// custom field with the same name. Other keys are looked up in CustomFields,
// exact match first, then case-insensitively.
func (r Recipient) Lookup(key string) (string, bool) {
	switch fold(key) {
	case KeyName:
		return r.Name, true
	case KeyTitle:
		return r.Title, true
	case KeyDate:
		return r.Date, true
	}

	if v, ok := r.CustomFields[key]; ok {
		return v, true
	}

	folded := fold(key)
	for _, k := range slices.Sorted(maps.Keys(r.CustomFields)) {
		if fold(k) == folded {
			return r.CustomFields[k], true
		}
	}

	return "", false
}

// fold returns the Unicode case-folded form of s.
// A Caser is stateful, so a fresh one is used per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
