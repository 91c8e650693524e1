// Package htmlpolicy provides bluemonday-backed hooks pluggable into
// sanitize.Options.Custom, for callers that want a second, parser-based pass
// over rich text after the engine's own filtering.
package htmlpolicy

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	initOnce     sync.Once
	strictPolicy *bluemonday.Policy
	ugcPolicy    *bluemonday.Policy
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
		ugcPolicy = bluemonday.UGCPolicy()
	})
}

// Strict returns a hook that strips all HTML, leaving plain text.
func Strict() func(string) string {
	initPolicies()
	return strictPolicy.Sanitize
}

// UGC returns a hook that allows the common formatting produced by rich-text
// editors while blocking scripts, event handlers and javascript: URLs.
func UGC() func(string) string {
	initPolicies()
	return ugcPolicy.Sanitize
}

// FromPolicy adapts a custom bluemonday policy. A nil policy yields the
// identity hook.
func FromPolicy(p *bluemonday.Policy) func(string) string {
	if p == nil {
		return func(s string) string { return s }
	}
	return p.Sanitize
}
