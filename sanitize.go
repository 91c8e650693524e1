package sanitize

import (
	"fmt"
	"reflect"
	"strings"
)

// Sanitize converts untrusted input into content safe to persist, render and
// query, without relying on downstream template auto-escaping.
//
// The step order is fixed: stringify, resolve options, run the field-type
// strategy, apply the custom hook, trim, truncate. Modified is computed once
// at the end as a string comparison against the stringified input. Sanitize
// never panics and never returns an error; rejection is an empty Value with
// an explaining issue.
func Sanitize(value any, opts Options) Result {
	if value == nil {
		return Result{Value: ""}
	}
	original := stringify(value)
	o := opts.resolve()

	var p pass
	out := original
	switch o.FieldType {
	case FieldDescription:
		out = sanitizeDescription(out, &o, &p)
	case FieldRichText:
		out = sanitizeRichText(out, &o, &p)
	case FieldHTML:
		out = sanitizeHTML(out, &o, &p)
	case FieldURL:
		out = sanitizeURL(out, &o, &p)
	case FieldEmail:
		out = sanitizeEmail(out, &o, &p)
	case FieldSearch:
		out = sanitizeSearch(out, &o, &p)
	case FieldFilename:
		out = sanitizeFilename(out, &o, &p)
	case FieldSlug:
		out = sanitizeSlug(out, &o, &p)
	default:
		out = sanitizeText(out, &o, &p)
	}

	if o.Custom != nil {
		out = o.Custom(out)
	}
	if *o.Trim {
		out = strings.TrimSpace(out)
	}
	if o.MaxLength > 0 {
		if runes := []rune(out); len(runes) > o.MaxLength {
			out = string(runes[:o.MaxLength])
			p.add(fmt.Sprintf("Truncated to %d characters", o.MaxLength))
		}
	}

	res := Result{Value: out, Modified: out != original}
	if res.Modified || p.rejected {
		res.Issues = p.issues
	}
	if res.Modified {
		res.Original = original
	}
	return res
}

// SanitizeBatch applies Sanitize to every entry of values independently; a
// rejection for one key never affects another. Keys missing from optsByKey
// get the dispatcher defaults.
func SanitizeBatch(values map[string]any, optsByKey map[string]Options) map[string]Result {
	results := make(map[string]Result, len(values))
	for key, value := range values {
		results[key] = Sanitize(value, optsByKey[key])
	}
	return results
}

// stringify coerces non-string input to its string form. The coercion itself
// is not reported as an issue.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		// An interface holding a typed-nil pointer is not nil itself, but
		// calling String on it would dereference the nil receiver.
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return ""
		}
		return v.String()
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
