package sanitize

import "strings"

// EncodeEntities replaces the six HTML-significant characters with named
// entities. The ampersand is replaced first; otherwise the later replacements
// would be double-encoded.
//
// Encoding is not round-trip safe for input that already contains literal
// entity sequences: "&lt;" encodes to "&amp;lt;", which decodes back to
// "&lt;", not "<".
func EncodeEntities(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#x27;")
	s = strings.ReplaceAll(s, "/", "&#x2F;")
	return s
}

// DecodeEntities performs the exact inverse of EncodeEntities. The ampersand
// entity is decoded last so that "&amp;lt;" becomes "&lt;" rather than "<".
func DecodeEntities(s string) string {
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&#x27;", "'")
	s = strings.ReplaceAll(s, "&#x2F;", "/")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}

// encodeEntitiesPass applies EncodeEntities and records the change.
func encodeEntitiesPass(s string, p *pass) string {
	out := EncodeEntities(s)
	if out != s {
		p.add("Encoded HTML entities")
	}
	return out
}
