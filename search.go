package sanitize

import (
	"regexp"
	"strings"
)

// sanitizeSearch cleans free-form query strings. Strict level additionally
// escapes regex metacharacters so the query can be fed to pattern-based
// search backends verbatim.
func sanitizeSearch(s string, o *Options, p *pass) string {
	s = strings.TrimSpace(s)
	s = stripAllTagsPass(s, p)
	s = stripSQLPatternsPass(s, p)
	if o.Level == LevelStrict {
		if quoted := regexp.QuoteMeta(s); quoted != s {
			p.add("Escaped regex metacharacters")
			s = quoted
		}
	}
	return s
}
