package sanitize_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bandkit/sanitize"
)

func TestSanitizeSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		modified bool
	}{
		{
			name:     "already a slug",
			input:    "human-jukebox",
			expected: "human-jukebox",
		},
		{
			name:     "punctuation dropped",
			input:    "Southern University's Band!!!",
			expected: "southern-universitys-band",
			modified: true,
		},
		{
			name:     "whitespace runs become single hyphens",
			input:    "  Battle   of the\tBands ",
			expected: "battle-of-the-bands",
			modified: true,
		},
		{
			name:     "accents folded to ascii",
			input:    "Café Olé",
			expected: "cafe-ole",
			modified: true,
		},
		{
			name:     "hyphen runs collapsed and trimmed",
			input:    "--a--b--",
			expected: "a-b",
			modified: true,
		},
		{
			name:     "nothing usable yields empty slug",
			input:    "!!!",
			expected: "",
			modified: true,
		},
	}

	slugShape := regexp.MustCompile(`^[a-z0-9-]*$`)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := sanitize.Sanitize(tt.input, sanitize.Options{FieldType: sanitize.FieldSlug})
			assert.Equal(t, tt.expected, res.Value)
			assert.Equal(t, tt.modified, res.Modified)
			assert.Regexp(t, slugShape, res.Value)
		})
	}
}
