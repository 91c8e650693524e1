package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bandkit/sanitize"
)

func TestFilterTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		tags     []string
		attrs    []string
		expected string
	}{
		{
			name:     "allowed markup passes through unchanged",
			input:    "<p>Hello <b>world</b></p>",
			tags:     []string{"p", "b"},
			expected: "<p>Hello <b>world</b></p>",
		},
		{
			name:     "disallowed tag removed, text kept",
			input:    "<p>x</p><u>y</u>",
			tags:     []string{"p"},
			expected: "<p>x</p>y",
		},
		{
			name:     "disallowed iframe removed",
			input:    `<p>ok</p><iframe src="evil"></iframe>`,
			tags:     []string{"p"},
			expected: "<p>ok</p>",
		},
		{
			name:     "attributes filtered silently",
			input:    `<a href="/x" onclick="bad()" title="t">link</a>`,
			tags:     []string{"a"},
			attrs:    []string{"href"},
			expected: `<a href="/x">link</a>`,
		},
		{
			name:     "tag names matched case-insensitively",
			input:    "<P>x</P>",
			tags:     []string{"p"},
			expected: "<p>x</p>",
		},
		{
			name:     "self-closing tag kept",
			input:    "line1<br/>line2",
			tags:     []string{"br"},
			expected: "line1<br />line2",
		},
		{
			name:     "text outside tags is byte-identical",
			input:    "A &amp; B <em>kept</em> 1 < 2",
			tags:     []string{"em"},
			expected: "A &amp; B <em>kept</em> 1 < 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitize.FilterTags(tt.input, tt.tags, tt.attrs))
		})
	}
}

func TestFilterTagsReportsNormalization(t *testing.T) {
	opts := sanitize.Options{
		FieldType:         sanitize.FieldRichText,
		AllowedTags:       []string{"b"},
		AllowedAttributes: []string{"title"},
	}

	// Kept markup is re-serialized in canonical form; the change must show
	// up in the audit trail even though no tag was removed.
	res := sanitize.Sanitize(`<B title="a&b">x</B>`, opts)
	assert.Equal(t, `<b title="a&amp;b">x</b>`, res.Value)
	assert.True(t, res.Modified)
	assert.Contains(t, res.Issues, "Normalized markup")

	// Canonical input stays untouched and unreported.
	res = sanitize.Sanitize(`<b title="t">x</b>`, opts)
	assert.False(t, res.Modified)
	assert.Empty(t, res.Issues)

	// A removed tag is already reported; no extra normalization issue.
	res = sanitize.Sanitize(`<b>x</b><u>y</u>`, opts)
	assert.Equal(t, "<b>x</b>y", res.Value)
	assert.Contains(t, res.Issues, "Removed disallowed tag: u")
	assert.NotContains(t, res.Issues, "Normalized markup")
}
