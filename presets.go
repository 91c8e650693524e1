package sanitize

// Named presets for the platform's common field shapes. Presets are pure
// data: select one instead of constructing Options inline. Callers must not
// mutate the exported values; use Preset to get a defensive copy.
var (
	// PresetName suits display names, band names, titles.
	PresetName = Options{FieldType: FieldText, Level: LevelStrict, MaxLength: 100}

	// PresetDescription suits multi-paragraph bios and event descriptions.
	PresetDescription = Options{FieldType: FieldDescription, Level: LevelModerate, MaxLength: 2000}

	// PresetRichText allows the basic formatting set produced by rich-text
	// editors; everything else is removed.
	PresetRichText = Options{
		FieldType: FieldRichText,
		Level:     LevelModerate,
		MaxLength: 10000,
		AllowedTags: []string{
			"p", "br", "b", "i", "strong", "em", "u",
			"ol", "ul", "li", "a", "blockquote",
		},
		AllowedAttributes: []string{"href", "title"},
	}

	// PresetYouTubeURL accepts only YouTube video links.
	PresetYouTubeURL = Options{
		FieldType:        FieldURL,
		AllowedProtocols: []string{"http", "https"},
		AllowedDomains:   []string{"youtube.com", "youtu.be"},
		MaxLength:        2048,
	}

	// PresetURL accepts any http(s) link.
	PresetURL = Options{
		FieldType:        FieldURL,
		AllowedProtocols: []string{"http", "https"},
		MaxLength:        2048,
	}

	// PresetSearch suits free-form search queries.
	PresetSearch = Options{FieldType: FieldSearch, Level: LevelModerate, MaxLength: 200}

	// PresetFilename suits uploaded file names.
	PresetFilename = Options{FieldType: FieldFilename, MaxLength: 255}

	// PresetSlug suits URL path segments derived from titles.
	PresetSlug = Options{FieldType: FieldSlug, MaxLength: 100}

	// PresetEmail suits account and contact email addresses.
	PresetEmail = Options{FieldType: FieldEmail, MaxLength: 254}
)

var presetsByName = map[string]Options{
	"name":        PresetName,
	"description": PresetDescription,
	"rich_text":   PresetRichText,
	"youtube_url": PresetYouTubeURL,
	"url":         PresetURL,
	"search":      PresetSearch,
	"filename":    PresetFilename,
	"slug":        PresetSlug,
	"email":       PresetEmail,
}

// Preset looks up a named preset and returns a copy with its own list
// backing, so callers may append without affecting the shared value.
func Preset(name string) (Options, bool) {
	o, ok := presetsByName[name]
	if !ok {
		return Options{}, false
	}
	o.AllowedTags = append([]string(nil), o.AllowedTags...)
	o.AllowedAttributes = append([]string(nil), o.AllowedAttributes...)
	o.AllowedProtocols = append([]string(nil), o.AllowedProtocols...)
	o.AllowedDomains = append([]string(nil), o.AllowedDomains...)
	return o, true
}

// PresetNames returns the known preset names, for error messages and docs.
func PresetNames() []string {
	names := make([]string, 0, len(presetsByName))
	for name := range presetsByName {
		names = append(names, name)
	}
	return names
}
