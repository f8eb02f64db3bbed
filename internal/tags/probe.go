package tags

import (
	"fmt"
	"os"
	"sort"

	"github.com/dhowden/tag"
)

// Field is one tag read during a probe, in display order.
type Field struct {
	Name  string
	Value string
}

// ProbeResult is a format-agnostic dump of every tag found in one file.
type ProbeResult struct {
	Format   string
	FileType string
	Fields   []Field
}

// Probe reads all tags from path using a format-agnostic parser. It is a
// diagnostic aid: when extraction rejects a file, the probe shows what the
// container actually carries. Probe does not enforce the required-triple
// invariant.
func Probe(path string) (*ProbeResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	meta, err := tag.ReadFrom(file)
	if err != nil {
		return nil, unreadable(err)
	}

	result := &ProbeResult{
		Format:   string(meta.Format()),
		FileType: string(meta.FileType()),
	}

	add := func(name, value string) {
		if value != "" {
			result.Fields = append(result.Fields, Field{Name: name, Value: value})
		}
	}
	add("artist", meta.Artist())
	add("album", meta.Album())
	add("title", meta.Title())
	add("album_artist", meta.AlbumArtist())
	add("composer", meta.Composer())
	add("genre", meta.Genre())
	if year := meta.Year(); year != 0 {
		add("year", fmt.Sprintf("%d", year))
	}
	if num, total := meta.Track(); num != 0 {
		add("track", formatIndex(num, total))
	}
	if num, total := meta.Disc(); num != 0 {
		add("disc", formatIndex(num, total))
	}

	// Raw frames not covered above, in stable order.
	seen := make(map[string]struct{}, len(result.Fields))
	for _, f := range result.Fields {
		seen[f.Name] = struct{}{}
	}
	raw := meta.Raw()
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		if value, ok := raw[key].(string); ok && value != "" {
			add(key, value)
		}
	}

	return result, nil
}

func formatIndex(num, total int) string {
	if total > 0 {
		return fmt.Sprintf("%d/%d", num, total)
	}
	return fmt.Sprintf("%d", num)
}
