package sanitize

import "strings"

// Level controls how aggressively the text strategies encode entities and the
// URL strategy rejects schemes. Only some field types consult it.
type Level string

const (
	LevelStrict     Level = "strict"
	LevelModerate   Level = "moderate"
	LevelPermissive Level = "permissive"
)

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelStrict, LevelModerate, LevelPermissive:
		return true
	}
	return false
}

// FieldType selects which sanitization strategy the dispatcher invokes.
type FieldType string

const (
	FieldText        FieldType = "text"
	FieldDescription FieldType = "description"
	FieldRichText    FieldType = "rich_text"
	FieldURL         FieldType = "url"
	FieldEmail       FieldType = "email"
	FieldSearch      FieldType = "search"
	FieldFilename    FieldType = "filename"
	FieldSlug        FieldType = "slug"
	FieldHTML        FieldType = "html"
)

// Valid reports whether ft is one of the known field types.
func (ft FieldType) Valid() bool {
	switch ft {
	case FieldText, FieldDescription, FieldRichText, FieldURL, FieldEmail,
		FieldSearch, FieldFilename, FieldSlug, FieldHTML:
		return true
	}
	return false
}

// Options configures a single Sanitize call. The zero value resolves to the
// documented defaults: moderate level, text field type, trimming enabled,
// unlimited length. List fields replace the defaults wholesale when supplied;
// they are never merged.
//
// YAML tags allow option sets to be declared as data (see the record package).
type Options struct {
	// Level governs entity encoding for text fields and data: URL rejection.
	// Empty resolves to LevelModerate.
	Level Level `yaml:"level"`

	// FieldType picks the sanitization strategy. Empty resolves to FieldText.
	FieldType FieldType `yaml:"field_type"`

	// MaxLength truncates the final value to this many characters (runes).
	// Zero means unlimited. Applied after all other passes.
	MaxLength int `yaml:"max_length"`

	// Trim strips leading and trailing whitespace after transformation.
	// Nil resolves to true.
	Trim *bool `yaml:"trim"`

	// AllowHTMLEntities leaves HTML-significant characters unencoded in the
	// text and description strategies. Strict level encodes regardless.
	AllowHTMLEntities bool `yaml:"allow_html_entities"`

	// AllowedTags lists lower-case tag names kept by the rich-text and HTML
	// allowlist filter. Empty means every tag is stripped instead.
	AllowedTags []string `yaml:"allowed_tags"`

	// AllowedAttributes lists lower-case attribute names kept on allowed tags.
	AllowedAttributes []string `yaml:"allowed_attributes"`

	// AllowedProtocols lists URL schemes accepted by the URL strategy when the
	// input carries an explicit scheme:// prefix. Empty accepts any scheme
	// other than javascript: (and data: under strict level).
	AllowedProtocols []string `yaml:"allowed_protocols"`

	// AllowedDomains lists domains the URL strategy accepts; a hostname
	// matches when it equals a listed domain or is a dot-suffix of one.
	// Empty permits all domains.
	AllowedDomains []string `yaml:"allowed_domains"`

	// Custom is applied to the strategy output before trimming and truncation.
	Custom func(string) string `yaml:"-"`
}

// DefaultOptions returns the fully resolved default configuration.
func DefaultOptions() Options {
	t := true
	return Options{
		Level:     LevelModerate,
		FieldType: FieldText,
		Trim:      &t,
	}
}

// resolve fills every unset field from the defaults. Field-level override
// only: supplied list fields are taken as-is, never unioned with defaults.
func (o Options) resolve() Options {
	if o.Level == "" {
		o.Level = LevelModerate
	}
	if o.FieldType == "" {
		o.FieldType = FieldText
	}
	if o.Trim == nil {
		t := true
		o.Trim = &t
	}
	return o
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}
