// Package record applies the sanitize engine to whole records before they
// reach validation logic.
//
// Three declarative mechanisms are provided. Rules is an explicit, statically
// constructed map from field name to options, built once per record type:
//
//	var bandRules = record.Rules{
//	    "name":  sanitize.PresetName,
//	    "bio":   sanitize.PresetDescription,
//	    "video": sanitize.PresetYouTubeURL,
//	}
//	results := bandRules.Apply(payload)
//
// Clean walks an arbitrary decoded payload (maps, slices, scalars) and
// sanitizes string leaves, choosing options by the nearest field name.
// Struct uses `sanitize:"<preset>"` tags on struct fields and recurses
// through nested structs, slices, maps and pointers.
//
// Rules can also be declared as YAML and loaded with ParseRules, so record
// types can ship their sanitization policy as data.
package record
