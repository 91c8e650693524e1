package sanitize

// sanitizeText is the strategy for plain single-line text: names, titles,
// short labels. All markup is removed; script blocks go first so their
// payload does not survive the tag stripping.
func sanitizeText(s string, o *Options, p *pass) string {
	s = stripScriptBlocks(s, p)
	s = stripAllTagsPass(s, p)
	if o.Level == LevelStrict || !o.AllowHTMLEntities {
		s = encodeEntitiesPass(s, p)
	}
	s = stripControlCharsPass(s, p)
	s = stripSQLPatternsPass(s, p)
	return normalizeWhitespacePass(s, p)
}

// sanitizeDescription handles multi-line prose: markup is removed but
// paragraph breaks survive.
func sanitizeDescription(s string, o *Options, p *pass) string {
	s = stripScriptBlocks(s, p)
	s = stripEventHandlers(s, p)
	s = stripAllTagsPass(s, p)
	if !o.AllowHTMLEntities {
		s = encodeEntitiesPass(s, p)
	}
	s = stripSQLPatternsPass(s, p)
	return normalizeParagraphsPass(s, p)
}
