package sanitize

import "regexp"

// Pre-compiled regular expressions for the sanitization passes. Every pass is
// applied exactly once per call; none iterates to a fixpoint, so the work is
// bounded by input length even for pathological input.
var (
	// Structural stripping
	scriptBlockRegex  = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	eventHandlerRegex = regexp.MustCompile(`(?i)\s+on\w+\s*=\s*("[^"]*"|'[^']*')`)
	jsSchemeRegex     = regexp.MustCompile(`(?i)javascript:`)
	htmlTagRegex      = regexp.MustCompile(`<[^>]*>`)

	// SQL metacharacters and keywords, matched in a single pass: whole-word
	// keywords, comment markers, doubled quotes, then the literal characters.
	sqlPatternRegex = regexp.MustCompile(`(?i)\b(?:select|insert|update|delete|drop|create|alter|exec|execute)\b|/\*|\*/|--|''|[#';|%*]`)

	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)
	spaceTabRegex   = regexp.MustCompile(`[ \t]+`)
	newlineRunRegex = regexp.MustCompile(`\n{3,}`)

	// Email and filename character filters
	emailInvalidRegex   = regexp.MustCompile(`[^a-z0-9@._+-]`)
	emailShapeRegex     = regexp.MustCompile(`^[a-z0-9._+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
	filenameUnsafeRegex = regexp.MustCompile(`[^A-Za-z0-9._-]`)

	// Slug character filters
	slugInvalidRegex = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRunRegex   = regexp.MustCompile(`-{2,}`)
)

// dangerousTags is the fixed denylist of tags removed before any allowlist
// decision. meta, link and base are void elements and appear unpaired.
var dangerousTags = []string{
	"iframe", "object", "embed", "applet", "meta", "link", "style", "base", "form",
}

type dangerousTagRegex struct {
	pair *regexp.Regexp // balanced open/close pair including content
	open *regexp.Regexp // remaining lone open or self-closing tag
}

var dangerousTagRegexps = func() map[string]dangerousTagRegex {
	m := make(map[string]dangerousTagRegex, len(dangerousTags))
	for _, tag := range dangerousTags {
		m[tag] = dangerousTagRegex{
			pair: regexp.MustCompile(`(?is)<` + tag + `\b[^>]*>.*?</` + tag + `\s*>`),
			open: regexp.MustCompile(`(?i)<` + tag + `\b[^>]*/?>`),
		}
	}
	return m
}()
