package sanitize

import "strings"

// sanitizeFilename produces a single path-component, traversal-free name.
// The result contains only [A-Za-z0-9._-], keeps at most one dot (the
// extension separator), and falls back to "file" when nothing survives.
func sanitizeFilename(s string, _ *Options, p *pass) string {
	s = strings.TrimSpace(s)

	out := strings.NewReplacer("/", "", `\`, "").Replace(s)
	if out != s {
		p.add("Removed path separators")
		s = out
	}

	out = StripControlChars(strings.NewReplacer(
		"<", "", ">", "", ":", "", `"`, "", "|", "", "?", "", "*", "",
	).Replace(s))
	if out != s {
		p.add("Removed unsafe filename characters")
		s = out
	}

	out = strings.TrimLeft(s, ".")
	if out != s {
		p.add("Removed leading dots")
		s = out
	}

	out = filenameUnsafeRegex.ReplaceAllString(s, "_")
	if out != s {
		p.add("Replaced unsupported filename characters")
		s = out
	}

	// Keep only the final dot-segment as the extension; fold earlier dots
	// into the base name.
	if strings.Count(s, ".") > 1 {
		i := strings.LastIndex(s, ".")
		s = strings.ReplaceAll(s[:i], ".", "_") + s[i:]
		p.add("Collapsed extra dots in filename")
	}

	if s == "" || s == "." {
		s = "file"
		p.add("Replaced empty filename")
	}
	return s
}
