package placeholder

import (
	"regexp"
	"slices"
	"strings"
)

// tokenRegex matches a single {{key}} token and captures the key.
// Keys never contain braces, so extra braces around a token stay literal:
// "{{{name}}}" holds the key "name" wrapped in one pair of braces.
var tokenRegex = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// Resolver supplies the value for a placeholder key.
// The boolean result reports whether the key is known; unknown keys are
// left unreplaced by Substitute.
type Resolver interface {
	Lookup(key string) (string, bool)
}

// Map is a Resolver backed by a plain map with exact key matching.
type Map map[string]string

// Lookup implements Resolver.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Keys returns the distinct raw keys of every token found in texts,
// sorted lexically.
func Keys(texts ...string) []string {
	seen := make(map[string]struct{})
	for _, text := range texts {
		for _, m := range tokenRegex.FindAllStringSubmatch(text, -1) {
			seen[m[1]] = struct{}{}
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Has reports whether text contains at least one token.
func Has(text string) bool {
	return tokenRegex.MatchString(text)
}

// Substitute replaces every token in text with the value returned by r.
// Tokens that r does not resolve remain verbatim.
func Substitute(text string, r Resolver) string {
	if r == nil || !strings.Contains(text, "{{") {
		return text
	}

	return tokenRegex.ReplaceAllStringFunc(text, func(token string) string {
		key := token[2 : len(token)-2]
		if v, ok := r.Lookup(key); ok {
			return v
		}
		return token
	})
}
