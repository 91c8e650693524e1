package sanitize

import (
	"net/url"
	"strings"
)

// urlEscaper percent-encodes the characters that would break out of an HTML
// attribute context if the URL is rendered unescaped.
var urlEscaper = strings.NewReplacer(
	"<", "%3C",
	">", "%3E",
	`"`, "%22",
	"'", "%27",
)

// sanitizeURL validates rather than rewrites: anything that fails a check is
// rejected outright with an empty value.
func sanitizeURL(s string, o *Options, p *pass) string {
	s = strings.TrimSpace(s)
	lowered := strings.ToLower(s)

	if strings.HasPrefix(lowered, "javascript:") {
		p.reject("Rejected javascript: protocol in URL")
		return ""
	}
	if o.Level == LevelStrict && strings.HasPrefix(lowered, "data:") {
		p.reject("Rejected data: URL")
		return ""
	}

	if len(o.AllowedProtocols) > 0 {
		if i := strings.Index(s, "://"); i > 0 {
			scheme := strings.ToLower(s[:i])
			if _, ok := toSet(o.AllowedProtocols)[scheme]; !ok {
				p.reject("Protocol not allowed: " + scheme)
				return ""
			}
		}
	}

	if len(o.AllowedDomains) > 0 {
		u, err := url.Parse(s)
		if err != nil || u.Hostname() == "" {
			p.reject("Invalid URL format")
			return ""
		}
		host := strings.ToLower(u.Hostname())
		if !domainAllowed(host, o.AllowedDomains) {
			p.reject("Domain not allowed: " + host)
			return ""
		}
	}

	if escaped := urlEscaper.Replace(s); escaped != s {
		p.add("Encoded unsafe URL characters")
		s = escaped
	}
	return s
}

// domainAllowed reports whether host equals a listed domain or is a
// dot-suffix of one, so "www.youtube.com" matches "youtube.com" but
// "evilyoutube.com" does not.
func domainAllowed(host string, domains []string) bool {
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
