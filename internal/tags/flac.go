package tags

import (
	"strings"

	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"
)

// FLACReader extracts tags from block-based containers (FLAC with Vorbis
// comments). A logical field is usable only when it resolves to exactly one
// value across every Vorbis comment block; zero or multiple values fail the
// extraction.
type FLACReader struct{}

func (FLACReader) Extract(path string) (TagSet, error) {
	file, err := flac.ParseFile(path)
	if err != nil {
		return TagSet{}, unreadable(err)
	}

	values := map[string][]string{}
	for _, block := range file.Meta {
		if block.Type != flac.VorbisComment {
			continue
		}
		comment, err := flacvorbis.ParseFromMetaDataBlock(*block)
		if err != nil {
			return TagSet{}, unreadable(err)
		}
		for _, field := range []string{flacvorbis.FIELD_ARTIST, flacvorbis.FIELD_ALBUM, flacvorbis.FIELD_TITLE} {
			found, err := comment.Get(field)
			if err != nil {
				return TagSet{}, unreadable(err)
			}
			values[field] = append(values[field], found...)
		}
	}

	artist, err := single(values, flacvorbis.FIELD_ARTIST, "artist")
	if err != nil {
		return TagSet{}, err
	}
	album, err := single(values, flacvorbis.FIELD_ALBUM, "album")
	if err != nil {
		return TagSet{}, err
	}
	title, err := single(values, flacvorbis.FIELD_TITLE, "title")
	if err != nil {
		return TagSet{}, err
	}
	return TagSet{Artist: artist, Album: album, Title: title}, nil
}

// single enforces the exactly-one-value rule for a Vorbis comment field.
func single(values map[string][]string, field, role string) (string, error) {
	found := values[field]
	switch len(found) {
	case 0:
		return "", missingField(role + " (" + field + ")")
	case 1:
		value := strings.TrimSpace(found[0])
		if value == "" {
			return "", missingField(role + " (" + field + ")")
		}
		return value, nil
	default:
		return "", ambiguousField(role+" ("+field+")", len(found))
	}
}
