package placeholder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/certforge/pkg/placeholder"
)

func TestKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		texts    []string
		expected []string
	}{
		{
			name:     "no texts",
			texts:    nil,
			expected: []string{},
		},
		{
			name:     "no tokens",
			texts:    []string{"Certificate of Completion"},
			expected: []string{},
		},
		{
			name:     "duplicates collapsed",
			texts:    []string{"{{name}}", "{{org}}", "{{org}}"},
			expected: []string{"name", "org"},
		},
		{
			name:     "several tokens in one text",
			texts:    []string{"{{name}} completed {{course}} on {{date}}"},
			expected: []string{"course", "date", "name"},
		},
		{
			name:     "raw keys are not trimmed",
			texts:    []string{"{{ name }}"},
			expected: []string{" name "},
		},
		{
			name:     "case variants are distinct keys",
			texts:    []string{"{{Name}} {{name}}"},
			expected: []string{"Name", "name"},
		},
		{
			name:     "empty braces are not a token",
			texts:    []string{"{{}} and {{ok}}"},
			expected: []string{"ok"},
		},
		{
			name:     "extra braces are literal",
			texts:    []string{"{{{name}}}", "{{{{org}}}}"},
			expected: []string{"name", "org"},
		},
		{
			name:     "unterminated token ignored",
			texts:    []string{"{{name"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, placeholder.Keys(tt.texts...))
		})
	}
}

func TestSubstitute(t *testing.T) {
	t.Parallel()

	values := placeholder.Map{
		"name":   "Ann",
		"course": "Go 101",
		"empty":  "",
		"nested": "{{name}}",
	}

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "no tokens returns text unchanged",
			text:     "Certificate of Completion",
			expected: "Certificate of Completion",
		},
		{
			name:     "single token",
			text:     "Certificate for {{name}}",
			expected: "Certificate for Ann",
		},
		{
			name:     "repeated token",
			text:     "{{name}}, well done {{name}}!",
			expected: "Ann, well done Ann!",
		},
		{
			name:     "distinct tokens",
			text:     "{{name}} completed {{course}}",
			expected: "Ann completed Go 101",
		},
		{
			name:     "unknown token left verbatim",
			text:     "{{name}} from {{foo}}",
			expected: "Ann from {{foo}}",
		},
		{
			name:     "known empty value replaces token",
			text:     "[{{empty}}]",
			expected: "[]",
		},
		{
			name:     "extra braces around a token are kept",
			text:     "{{{name}}}",
			expected: "{Ann}",
		},
		{
			name:     "brace inside key is not a token",
			text:     "{{na{me}}",
			expected: "{{na{me}}",
		},
		{
			name:     "substituted values are not expanded again",
			text:     "{{nested}}",
			expected: "{{name}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, placeholder.Substitute(tt.text, values))
		})
	}
}

func TestSubstitute_NilResolver(t *testing.T) {
	t.Parallel()

	require.Equal(t, "{{name}}", placeholder.Substitute("{{name}}", nil))
}

func TestHas(t *testing.T) {
	t.Parallel()

	require.True(t, placeholder.Has("Hello {{name}}"))
	require.False(t, placeholder.Has("Hello"))
	require.False(t, placeholder.Has("{{}}"))
}
