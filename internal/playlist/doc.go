// Package playlist implements the mood classification engine: normalization
// of loose song records, mood classification against a profile, grouping,
// merging, aggregate statistics, substring search, random selection, and
// history summarization.
//
// # Totality
//
// Every function in this package is a pure transformation over its inputs and
// is total over its documented domain: coercion failures fall back to empty
// strings or zero, degenerate inputs produce well-defined defaults, and
// nothing panics or returns an error. File I/O and its failure modes belong
// to the library package and the CLI.
//
// # Randomness
//
// The only non-determinism is [Picker], which draws from an injected
// *rand.Rand. Callers that need reproducible picks construct one from a fixed
// seed; NewPicker(nil) falls back to a time-seeded source.
package playlist
