package record

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseRules decodes a YAML document mapping field names to option sets:
//
//	name:
//	  field_type: text
//	  level: strict
//	  max_length: 100
//	video_url:
//	  field_type: url
//	  allowed_protocols: [http, https]
//	  allowed_domains: [youtube.com, youtu.be]
//
// Unknown field types or levels are rejected so typos fail at load time
// rather than silently sanitizing as plain text.
func ParseRules(data []byte) (Rules, error) {
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("record: parse rules: %w", err)
	}
	for field, opts := range rules {
		if opts.FieldType != "" && !opts.FieldType.Valid() {
			return nil, fmt.Errorf("record: field %q: unknown field type %q", field, opts.FieldType)
		}
		if opts.Level != "" && !opts.Level.Valid() {
			return nil, fmt.Errorf("record: field %q: unknown level %q", field, opts.Level)
		}
		if opts.MaxLength < 0 {
			return nil, fmt.Errorf("record: field %q: negative max_length", field)
		}
	}
	return rules, nil
}
