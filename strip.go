package sanitize

// StripScriptBlocks removes balanced <script ...>...</script> blocks,
// including their content, case-insensitively.
func StripScriptBlocks(s string) string {
	return scriptBlockRegex.ReplaceAllString(s, "")
}

// StripEventHandlers removes inline on* event-handler attributes
// (onclick="...", onload='...', etc.) case-insensitively.
func StripEventHandlers(s string) string {
	return eventHandlerRegex.ReplaceAllString(s, "")
}

// StripJavaScriptScheme removes every occurrence of the literal "javascript:"
// scheme token, not only at the start of the string.
func StripJavaScriptScheme(s string) string {
	return jsSchemeRegex.ReplaceAllString(s, "")
}

// StripDangerousTags removes iframe, object, embed, applet, meta, link,
// style, base and form tags. Balanced pairs are removed together with their
// content; lone open tags are removed on their own.
func StripDangerousTags(s string) string {
	out, _ := stripDangerousTags(s)
	return out
}

// StripAllTags removes every substring matching <[^>]*> without inspecting
// tag identity.
func StripAllTags(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

func stripScriptBlocks(s string, p *pass) string {
	out := StripScriptBlocks(s)
	if out != s {
		p.add("Removed script tags")
	}
	return out
}

func stripEventHandlers(s string, p *pass) string {
	out := StripEventHandlers(s)
	if out != s {
		p.add("Removed event handlers")
	}
	return out
}

func stripJavaScriptScheme(s string, p *pass) string {
	out := StripJavaScriptScheme(s)
	if out != s {
		p.add("Removed javascript: protocol")
	}
	return out
}

// stripDangerousTags returns the cleaned string and the denylisted tag names
// that were removed, in denylist order.
func stripDangerousTags(s string) (string, []string) {
	var removed []string
	for _, tag := range dangerousTags {
		re := dangerousTagRegexps[tag]
		out := re.pair.ReplaceAllString(s, "")
		out = re.open.ReplaceAllString(out, "")
		if out != s {
			removed = append(removed, tag)
			s = out
		}
	}
	return s, removed
}

func stripDangerousTagsPass(s string, p *pass) string {
	out, removed := stripDangerousTags(s)
	for _, tag := range removed {
		p.add("Removed dangerous tag: " + tag)
	}
	return out
}

func stripAllTagsPass(s string, p *pass) string {
	out := StripAllTags(s)
	if out != s {
		p.add("Removed HTML tags")
	}
	return out
}
