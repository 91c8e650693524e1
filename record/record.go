package record

import (
	"github.com/bandkit/sanitize"
)

// Rules maps field names to the options used for that field. Fields without
// an entry get the dispatcher defaults.
type Rules map[string]sanitize.Options

// Apply sanitizes every entry of values independently and returns the full
// per-field results, audit trail included.
func (r Rules) Apply(values map[string]any) map[string]sanitize.Result {
	return sanitize.SanitizeBatch(values, r)
}

// Clean walks a decoded payload and returns a copy with every string leaf
// sanitized. Map entries whose key appears in rules switch to that field's
// options; nested values inherit the options of the nearest named ancestor.
// Non-string scalars pass through untouched. The input is never mutated.
func (r Rules) Clean(value any) any {
	return r.clean(value, sanitize.Options{})
}

func (r Rules) clean(value any, opts sanitize.Options) any {
	switch v := value.(type) {
	case string:
		return sanitize.Sanitize(v, opts).Value
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			fieldOpts := opts
			if o, ok := r[key]; ok {
				fieldOpts = o
			}
			out[key] = r.clean(val, fieldOpts)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = r.clean(val, opts)
		}
		return out
	default:
		return v
	}
}
