// Package testsupport provides fixtures shared by tagsort tests: writers for
// real tagged MP3/FLAC files and pre-wired test configurations.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"
)

// WriteMP3 creates an MP3-extension file at path carrying the given ID3 text
// frames over the supplied payload bytes. Frames with empty values are
// omitted, which is how a "missing tag" fixture is produced. The payload
// makes files byte-distinct; it must not begin with an ID3 header.
func WriteMP3(t testing.TB, path string, frames map[string]string, payload []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if len(payload) == 0 {
		payload = []byte("mpeg-payload")
	}
	// id3v2.Open reads a full 10-byte header before deciding the file has no
	// tag; pad short payloads so parsing sees "no tag" instead of failing.
	for len(payload) < 10 {
		payload = append(payload, 0)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write payload %s: %v", path, err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("open tag %s: %v", path, err)
	}
	defer tag.Close()

	for id, value := range frames {
		if value == "" {
			continue
		}
		tag.AddTextFrame(id, id3v2.EncodingUTF8, value)
	}
	if err := tag.Save(); err != nil {
		t.Fatalf("save tag %s: %v", path, err)
	}
}

// MP3Frames builds the frame map for a fully tagged MP3. Pass an empty
// string to drop a field.
func MP3Frames(artist, album, title string) map[string]string {
	return map[string]string{
		"TPE1": artist,
		"TALB": album,
		"TIT2": title,
	}
}

// WriteFLAC creates a FLAC file at path whose Vorbis comment block contains
// the given field/value pairs in order. Repeating a field name yields a
// multi-valued field. The payload stands in for audio frames.
func WriteFLAC(t testing.TB, path string, fields [][2]string, payload []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if len(payload) == 0 {
		payload = []byte("flac-frames")
	}
	// flac.ParseFile requires the frame section to open with the FLAC frame
	// sync code, so prefix the stand-in payload with one.
	payload = append([]byte{0xFF, 0xF8}, payload...)

	comment := flacvorbis.New()
	for _, kv := range fields {
		if kv[1] == "" {
			continue
		}
		if err := comment.Add(kv[0], kv[1]); err != nil {
			t.Fatalf("add vorbis comment %s: %v", kv[0], err)
		}
	}
	commentBlock := comment.Marshal()

	file := &flac.File{
		Meta: []*flac.MetaDataBlock{
			{Type: flac.StreamInfo, Data: make([]byte, 34)},
			&commentBlock,
		},
		Frames: payload,
	}
	if err := file.Save(path); err != nil {
		t.Fatalf("save flac %s: %v", path, err)
	}
}

// FLACFields builds the ordinary single-valued ARTIST/ALBUM/TITLE field list.
// Pass an empty string to drop a field.
func FLACFields(artist, album, title string) [][2]string {
	return [][2]string{
		{flacvorbis.FIELD_ARTIST, artist},
		{flacvorbis.FIELD_ALBUM, album},
		{flacvorbis.FIELD_TITLE, title},
	}
}

// WriteCorruptMP3 writes a file with a damaged ID3 header (invalid synchsafe
// size), which the frame parser rejects.
func WriteCorruptMP3(t testing.TB, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte{'I', 'D', '3', 4, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF}, 0o644); err != nil {
		t.Fatalf("write corrupt mp3 %s: %v", path, err)
	}
}

// WriteCorruptFLAC writes a file with a FLAC marker but truncated metadata.
func WriteCorruptFLAC(t testing.TB, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("fLaC\x00"), 0o644); err != nil {
		t.Fatalf("write corrupt flac %s: %v", path, err)
	}
}
