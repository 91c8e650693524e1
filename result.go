package sanitize

// Result is the outcome of a single Sanitize call.
//
// Rejection is not an error: when the input is fundamentally unacceptable for
// the field type (bad URL scheme, disallowed domain, invalid email shape) the
// Value is empty and Issues explains why. Sanitize never panics and never
// returns an error for any input.
type Result struct {
	// Value is the final sanitized string, always present.
	Value string `json:"value"`

	// Modified reports whether Value differs from the stringified input.
	// Computed once as a final string comparison, so a pass that changes and
	// then reverts the string does not count.
	Modified bool `json:"modified"`

	// Issues lists, in execution order, each transformation that changed the
	// input or each rejection reason. Populated only when Modified is true or
	// a rejection occurred.
	Issues []string `json:"issues,omitempty"`

	// Original is the pre-transformation string, present only when Modified.
	Original string `json:"original,omitempty"`
}

// pass accumulates the audit trail for one Sanitize call.
type pass struct {
	issues   []string
	rejected bool
}

func (p *pass) add(msg string) {
	p.issues = append(p.issues, msg)
}

func (p *pass) reject(msg string) {
	p.rejected = true
	p.issues = append(p.issues, msg)
}
