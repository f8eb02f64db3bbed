// Package placement decides where a sorted file lands in the destination
// tree and performs the copy.
//
// For a sanitized artist/album/title triple the resolver probes
// title.ext, title_1.ext, title_2.ext, ... in order. The first empty slot
// receives a copy of the source (outcome New); the first byte-identical
// existing file short-circuits the probe with no write (outcome Duplicate).
// The probe is an unbounded linear scan, O(n) over prior distinct files
// sharing a title. Suffix assignment is strict insertion order; existing
// numbered files are never reordered or consolidated.
package placement
