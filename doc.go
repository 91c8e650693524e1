// Package sanitize is the server-side trust boundary for user-generated
// content: band and video metadata, search queries, uploaded filenames, user
// bios. It converts untrusted strings into content that is safe to persist,
// render and query without relying on downstream template auto-escaping.
//
// The engine is a field-type-aware dispatcher over composable transformation
// passes: HTML stripping, allowlist-based tag/attribute filtering, protocol
// and domain validation for URLs, entity encoding, pattern removal, and
// length/whitespace normalization. Passes run in a fixed, documented order
// per field type, and every transformation that changes the input is reported
// in the result's audit trail:
//
//	res := sanitize.Sanitize("<script>alert(1)</script>Hello", sanitize.Options{
//	    FieldType: sanitize.FieldText,
//	    Level:     sanitize.LevelStrict,
//	})
//	// res.Value == "Hello", res.Modified == true
//	// res.Issues == []string{"Removed script tags"}
//
// Named presets cover the platform's common field shapes:
//
//	res := sanitize.Sanitize(link, sanitize.PresetYouTubeURL)
//
// # Error handling
//
// Sanitize never panics and never returns an error. Input the engine cannot
// accept for the field type (a javascript: URL, a disallowed domain, a
// malformed email) is rejected: the value comes back empty with an issue
// naming the reason. Callers wanting "input must already be clean" semantics
// check Result.Modified; the validate subpackage packages that pattern.
//
// # Concurrency
//
// The package is stateless: no I/O, no shared mutable state, no locks. Every
// call is independent and safe for concurrent use.
//
// # Limitations
//
// The engine approximates a safe HTML subset with allowlist filtering over a
// token scan; it is not a full DOM parser and does not claim protection
// against every mutation-XSS vector achievable through parser-quirk abuse.
// The SQL pattern stripper is a deliberately blunt defense-in-depth layer,
// never a substitute for parameterized queries.
package sanitize
