package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bandkit/sanitize"
)

func TestStripScriptBlocks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes block with content",
			input:    "<script>alert(1)</script>Hello",
			expected: "Hello",
		},
		{
			name:     "removes block with attributes",
			input:    `before<script type="text/javascript" defer>bad()</script>after`,
			expected: "beforeafter",
		},
		{
			name:     "case insensitive",
			input:    "<SCRIPT>x</SCRIPT>y",
			expected: "y",
		},
		{
			name:     "multiline body",
			input:    "<script>\nline1\nline2\n</script>rest",
			expected: "rest",
		},
		{
			name:     "multiple blocks",
			input:    "a<script>1</script>b<script>2</script>c",
			expected: "abc",
		},
		{
			name:     "no script tags",
			input:    "<p>content</p>",
			expected: "<p>content</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitize.StripScriptBlocks(tt.input))
		})
	}
}

func TestStripEventHandlers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "double quoted handler",
			input:    `<div onclick="alert('x')">c</div>`,
			expected: "<div>c</div>",
		},
		{
			name:     "single quoted handler",
			input:    `<img src="a.png" onerror='steal()'>`,
			expected: `<img src="a.png">`,
		},
		{
			name:     "multiple handlers",
			input:    `<div onclick="a()" onmouseover="b()">c</div>`,
			expected: "<div>c</div>",
		},
		{
			name:     "case insensitive",
			input:    `<div ONCLICK="a()">c</div>`,
			expected: "<div>c</div>",
		},
		{
			name:     "plain attributes survive",
			input:    `<a href="x" title="ok">c</a>`,
			expected: `<a href="x" title="ok">c</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitize.StripEventHandlers(tt.input))
		})
	}
}

func TestStripDangerousTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "balanced pair removed with content",
			input:    `<iframe src="evil">payload</iframe>keep`,
			expected: "keep",
		},
		{
			name:     "lone void tag removed",
			input:    `<meta charset="utf-8">rest`,
			expected: "rest",
		},
		{
			name:     "style block removed",
			input:    "<style>p{color:red}</style>text",
			expected: "text",
		},
		{
			name:     "form with content removed",
			input:    `<form action="/steal"><input></form>after`,
			expected: "after",
		},
		{
			name:     "case insensitive",
			input:    "<IFRAME>x</IFRAME>y",
			expected: "y",
		},
		{
			name:     "safe tags untouched",
			input:    "<p>hello <b>world</b></p>",
			expected: "<p>hello <b>world</b></p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitize.StripDangerousTags(tt.input))
		})
	}
}

func TestStripJavaScriptScheme(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "at string start",
			input:    "javascript:alert(1)",
			expected: "alert(1)",
		},
		{
			name:     "inside attribute",
			input:    `<a href="javascript:run()">x</a>`,
			expected: `<a href="run()">x</a>`,
		},
		{
			name:     "case insensitive",
			input:    "JaVaScRiPt:x",
			expected: "x",
		},
		{
			name:     "no occurrence",
			input:    "https://example.com",
			expected: "https://example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitize.StripJavaScriptScheme(tt.input))
		})
	}
}

func TestStripAllTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes every tag",
			input:    "<p>Hello <b>world</b></p>",
			expected: "Hello world",
		},
		{
			name:     "tag content is kept",
			input:    "<script>alert(1)</script>",
			expected: "alert(1)",
		},
		{
			name:     "unclosed angle bracket survives",
			input:    "1 < 2",
			expected: "1 < 2",
		},
		{
			name:     "no tags",
			input:    "plain",
			expected: "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitize.StripAllTags(tt.input))
		})
	}
}
