package tags

import (
	"path/filepath"
	"strings"
)

// Reader extracts the required tag triple from one file of a known format.
type Reader interface {
	Extract(path string) (TagSet, error)
}

// Class is the walker-facing classification of a file extension.
type Class int

const (
	// ClassRecognized extensions have a Reader and are extracted.
	ClassRecognized Class = iota
	// ClassUnsupported extensions are known audio formats without a Reader
	// yet; they are reported, never extracted.
	ClassUnsupported
	// ClassIgnored extensions are silently skipped.
	ClassIgnored
)

// Registry maps lowercased file extensions to format Readers.
type Registry struct {
	readers     map[string]Reader
	unsupported map[string]struct{}
}

// knownUnsupported lists audio extensions we recognize as audio but have no
// Reader for. They land in the unsupported-format report instead of being
// silently skipped.
var knownUnsupported = []string{
	".ogg", ".m4a", ".aac", ".wav", ".wma", ".opus", ".aiff", ".ape", ".wv",
}

// NewRegistry returns a registry with the built-in format readers.
func NewRegistry() *Registry {
	r := &Registry{
		readers:     make(map[string]Reader),
		unsupported: make(map[string]struct{}, len(knownUnsupported)),
	}
	r.Register(".mp3", ID3Reader{})
	r.Register(".flac", FLACReader{})
	for _, ext := range knownUnsupported {
		r.unsupported[ext] = struct{}{}
	}
	return r
}

// Register binds a reader to an extension, overriding any previous binding.
// The extension is normalized to a lowercased ".ext" form.
func (r *Registry) Register(ext string, reader Reader) {
	ext = normalizeExt(ext)
	r.readers[ext] = reader
	delete(r.unsupported, ext)
}

// Classify reports how the walker should treat a path's extension.
func (r *Registry) Classify(path string) Class {
	ext := normalizeExt(filepath.Ext(path))
	if _, ok := r.readers[ext]; ok {
		return ClassRecognized
	}
	if _, ok := r.unsupported[ext]; ok {
		return ClassUnsupported
	}
	return ClassIgnored
}

// Lookup returns the reader handling the path's extension.
func (r *Registry) Lookup(path string) (Reader, bool) {
	reader, ok := r.readers[normalizeExt(filepath.Ext(path))]
	return reader, ok
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
