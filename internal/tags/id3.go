package tags

import (
	"strings"

	"github.com/bogem/id3v2/v2"
)

// ID3Reader extracts tags from frame-based containers (MP3 with ID3v2).
// The artist, album, and title roles map to the TPE1, TALB, and TIT2 frames.
type ID3Reader struct{}

func (ID3Reader) Extract(path string) (TagSet, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return TagSet{}, unreadable(err)
	}
	defer tag.Close()

	set := TagSet{
		Artist: strings.TrimSpace(tag.Artist()),
		Album:  strings.TrimSpace(tag.Album()),
		Title:  strings.TrimSpace(tag.Title()),
	}
	switch {
	case set.Artist == "":
		return TagSet{}, missingField("artist (TPE1)")
	case set.Album == "":
		return TagSet{}, missingField("album (TALB)")
	case set.Title == "":
		return TagSet{}, missingField("title (TIT2)")
	}
	return set, nil
}
