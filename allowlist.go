package sanitize

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// FilterTags keeps only the listed tags, and on kept tags only the listed
// attributes. Kept tags are re-serialized in canonical form: lowercased
// names, attribute values quoted and escaped. Text outside tags passes
// through byte-for-byte.
//
// The filter is a single forward scan over the token stream, not a full
// parser: it does not track nesting or reject unbalanced markup, and filters
// malformed input on a best-effort, per-token basis. Callers with an empty
// tag allowlist should use StripAllTags instead.
func FilterTags(s string, allowedTags, allowedAttributes []string) string {
	var p pass
	return filterTags(s, toSet(allowedTags), toSet(allowedAttributes), &p)
}

func filterTags(s string, tagSet, attrSet map[string]struct{}, p *pass) string {
	before := len(p.issues)
	out := filterTokens(s, tagSet, attrSet, p)
	// Kept tags are re-serialized in canonical form (lowercased names,
	// quoted and escaped attribute values, dropped disallowed attributes),
	// so the output can change without any tag having been removed. Every
	// change must surface in the audit trail.
	if out != s && len(p.issues) == before {
		p.add("Normalized markup")
	}
	return out
}

func filterTokens(s string, tagSet, attrSet map[string]struct{}, p *pass) string {
	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	b.Grow(len(s))

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				// Reading from a string cannot fail; keep whatever the
				// tokenizer buffered and stop.
				b.Write(z.Raw())
			}
			return b.String()

		case html.TextToken, html.CommentToken, html.DoctypeToken:
			// Raw bytes, so untouched input stays byte-identical.
			b.Write(z.Raw())

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tag := strings.ToLower(string(name))
			if _, ok := tagSet[tag]; !ok {
				p.add("Removed disallowed tag: " + tag)
				continue
			}
			b.WriteByte('<')
			b.WriteString(tag)
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				attr := strings.ToLower(string(key))
				if _, ok := attrSet[attr]; !ok {
					continue
				}
				b.WriteByte(' ')
				b.WriteString(attr)
				b.WriteString(`="`)
				b.WriteString(html.EscapeString(string(val)))
				b.WriteByte('"')
			}
			if tt == html.SelfClosingTagToken {
				b.WriteString(" />")
			} else {
				b.WriteByte('>')
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := strings.ToLower(string(name))
			if _, ok := tagSet[tag]; !ok {
				p.add("Removed disallowed tag: " + tag)
				continue
			}
			b.WriteString("</")
			b.WriteString(tag)
			b.WriteByte('>')
		}
	}
}
