package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bandkit/sanitize"
)

func TestSanitizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		modified bool
		issue    string
	}{
		{
			name:     "clean address untouched",
			input:    "director@band.example.org",
			expected: "director@band.example.org",
		},
		{
			name:     "lower-cased and trimmed",
			input:    "  Director@Band.Example.ORG ",
			expected: "director@band.example.org",
			modified: true,
		},
		{
			name:     "plus addressing preserved",
			input:    "user+tag@mail.example.org",
			expected: "user+tag@mail.example.org",
		},
		{
			name:     "markup characters stripped",
			input:    "test@example.com<script>",
			expected: "test@example.comscript",
			modified: true,
			issue:    "Removed invalid characters from email",
		},
		{
			name:     "missing at-sign rejected",
			input:    "not-an-email",
			expected: "",
			modified: true,
			issue:    "Invalid email format",
		},
		{
			name:     "missing tld rejected",
			input:    "user@localhost",
			expected: "",
			modified: true,
			issue:    "Invalid email format",
		},
		{
			name:     "empty input rejected without modification",
			input:    "",
			expected: "",
			modified: false,
			issue:    "Invalid email format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := sanitize.Sanitize(tt.input, sanitize.Options{FieldType: sanitize.FieldEmail})
			assert.Equal(t, tt.expected, res.Value)
			assert.Equal(t, tt.modified, res.Modified)
			if tt.issue != "" {
				assert.Contains(t, res.Issues, tt.issue)
			}
		})
	}
}
