// Package models defines the domain types for the moodmix playlist engine.
//
// The package contains three categories of types:
//
// 1. Song records:
//   - [RawSong] : Loose inbound record with arbitrary field types
//   - [Song] : Canonical record produced by normalization, with coerced fields
//
// 2. Configuration:
//   - [Profile] : User thresholds and preferences governing classification
//
// 3. Aggregates:
//   - [PlaylistMap] : Mood-keyed song groups with meaningful insertion order
//   - [Stats] : Counts and ratios computed over a playlist map
//   - [HistorySummary] : Per-mood tallies over previously classified songs
//
// All types are plain values with no behavior beyond small accessors; the
// transformations between them live in the playlist package.
package models
