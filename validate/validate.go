package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bandkit/sanitize"
)

// FieldError is a single per-field validation failure.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors collects validation failures across fields.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(fe))
	for _, err := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any failure was recorded for field.
func (fe FieldErrors) Has(field string) bool {
	for _, err := range fe {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field.
func (fe FieldErrors) Get(field string) []string {
	var messages []string
	for _, err := range fe {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct field names with failures, in first-seen order.
func (fe FieldErrors) Fields() []string {
	seen := make(map[string]bool)
	var fields []string
	for _, err := range fe {
		if !seen[err.Field] {
			seen[err.Field] = true
			fields = append(fields, err.Field)
		}
	}
	return fields
}

// Rule is a single validation check with its failure description.
type Rule struct {
	Check func() bool
	Error FieldError
}

// Apply runs every rule and collects all failures; it never short-circuits.
// Returns nil when everything passes.
func Apply(rules ...Rule) error {
	var failed FieldErrors
	for _, rule := range rules {
		if !rule.Check() {
			failed = append(failed, rule.Error)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return failed
}

// Clean builds a rule that passes only when value is already clean for the
// given options: the engine must report no modification. The failure message
// is built from the engine's audit trail.
func Clean(field string, value any, opts sanitize.Options) Rule {
	res := sanitize.Sanitize(value, opts)
	message := "contains disallowed content"
	if len(res.Issues) > 0 {
		message = strings.Join(res.Issues, "; ")
	}
	return Rule{
		Check: func() bool { return !res.Modified },
		Error: FieldError{Field: field, Message: message},
	}
}

// CleanPreset is Clean with a named engine preset. An unknown preset name
// yields a rule that always fails, naming the bad preset.
func CleanPreset(field string, value any, preset string) Rule {
	opts, ok := sanitize.Preset(preset)
	if !ok {
		return Rule{
			Check: func() bool { return false },
			Error: FieldError{Field: field, Message: fmt.Sprintf("unknown sanitization preset %q", preset)},
		}
	}
	return Clean(field, value, opts)
}

// ExtractFieldErrors unwraps a FieldErrors value from err, or nil.
func ExtractFieldErrors(err error) FieldErrors {
	if err == nil {
		return nil
	}
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}
	return nil
}
