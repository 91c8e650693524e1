package sanitize

import "strings"

// StripControlChars removes control characters (0x00-0x08, 0x0B, 0x0C,
// 0x0E-0x1F, 0x7F), preserving tab, newline and carriage return.
func StripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 0x7F || (r < 0x20 && r != '\t' && r != '\n' && r != '\r') {
			return -1
		}
		return r
	}, s)
}

// StripSQLPatterns removes whole-word SQL keywords (SELECT, INSERT, UPDATE,
// DELETE, DROP, CREATE, ALTER, EXEC, EXECUTE), comment markers (--, #, /*,
// */), doubled single-quotes, and the literal characters ' ; | % *.
//
// This is a defense-in-depth heuristic, not a substitute for parameterized
// queries. It is deliberately over-aggressive: standalone quotes, semicolons
// and percent signs are deleted even from ordinary prose ("don't" becomes
// "dont", "50%" becomes "50").
func StripSQLPatterns(s string) string {
	return sqlPatternRegex.ReplaceAllString(s, "")
}

// NormalizeWhitespace collapses every run of whitespace to a single space and
// trims both ends.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// NormalizeParagraphs collapses runs of spaces and tabs to a single space and
// caps consecutive newlines at two, keeping paragraph breaks intact.
func NormalizeParagraphs(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = spaceTabRegex.ReplaceAllString(s, " ")
	return newlineRunRegex.ReplaceAllString(s, "\n\n")
}

func stripControlCharsPass(s string, p *pass) string {
	out := StripControlChars(s)
	if out != s {
		p.add("Removed control characters")
	}
	return out
}

func stripSQLPatternsPass(s string, p *pass) string {
	out := StripSQLPatterns(s)
	if out != s {
		p.add("Removed potential SQL injection patterns")
	}
	return out
}

func normalizeWhitespacePass(s string, p *pass) string {
	out := NormalizeWhitespace(s)
	if out != s {
		p.add("Normalized whitespace")
	}
	return out
}

func normalizeParagraphsPass(s string, p *pass) string {
	out := NormalizeParagraphs(s)
	if out != s {
		p.add("Normalized whitespace")
	}
	return out
}
