package sanitize

import "strings"

// sanitizeEmail lower-cases, strips everything outside the email alphabet,
// then rejects unless a permissive local@domain.tld shape remains.
func sanitizeEmail(s string, _ *Options, p *pass) string {
	s = strings.ToLower(strings.TrimSpace(s))

	cleaned := emailInvalidRegex.ReplaceAllString(s, "")
	if cleaned != s {
		p.add("Removed invalid characters from email")
	}

	if !emailShapeRegex.MatchString(cleaned) {
		p.reject("Invalid email format")
		return ""
	}
	return cleaned
}
