package sanitize

// sanitizeRichText keeps a configured subset of markup. Without a tag
// allowlist it degrades to full tag stripping.
func sanitizeRichText(s string, o *Options, p *pass) string {
	s = stripScriptBlocks(s, p)
	s = stripEventHandlers(s, p)
	s = stripDangerousTagsPass(s, p)
	if len(o.AllowedTags) > 0 {
		return filterTags(s, toSet(o.AllowedTags), toSet(o.AllowedAttributes), p)
	}
	return stripAllTagsPass(s, p)
}

// sanitizeHTML is the most permissive strategy: it removes only the known
// attack surface and keeps everything else. Reserve it for trusted authors.
func sanitizeHTML(s string, o *Options, p *pass) string {
	s = stripScriptBlocks(s, p)
	s = stripEventHandlers(s, p)
	s = stripDangerousTagsPass(s, p)
	return stripJavaScriptScheme(s, p)
}
