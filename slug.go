package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentFolder decomposes accented letters and drops the combining marks, so
// "café" slugs to "cafe" instead of losing the letter entirely.
var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldAccents(s string) string {
	out, _, err := transform.String(accentFolder, s)
	if err != nil {
		return s
	}
	return out
}

// sanitizeSlug produces a lower-case URL path segment matching ^[a-z0-9-]*$.
func sanitizeSlug(s string, _ *Options, p *pass) string {
	in := s
	s = strings.ToLower(strings.TrimSpace(s))
	s = foldAccents(s)
	s = whitespaceRegex.ReplaceAllString(s, "-")
	s = slugInvalidRegex.ReplaceAllString(s, "")
	s = hyphenRunRegex.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s != in {
		p.add("Normalized slug")
	}
	return s
}
