// Package tags extracts the artist/album/title triple from audio containers.
//
// Each supported container format has its own Reader implementation selected
// through a Registry keyed on file extension: ID3 frames for MP3 and Vorbis
// comment fields for FLAC. Extraction is all-or-nothing: a missing, blank,
// or ambiguous field fails the whole triple, tagged with ErrMissingTag, while
// container parse problems are tagged with ErrUnreadable. Adding a format
// means adding one Reader and registering its extension.
package tags
