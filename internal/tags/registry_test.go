package tags

import "testing"

func TestRegistryClassify(t *testing.T) {
	registry := NewRegistry()

	cases := map[string]Class{
		"/music/a.mp3":     ClassRecognized,
		"/music/b.FLAC":    ClassRecognized,
		"/music/c.Mp3":     ClassRecognized,
		"/music/d.ogg":     ClassUnsupported,
		"/music/e.wav":     ClassUnsupported,
		"/music/f.m4a":     ClassUnsupported,
		"/music/cover.jpg": ClassIgnored,
		"/music/notes.txt": ClassIgnored,
		"/music/noext":     ClassIgnored,
	}
	for path, want := range cases {
		if got := registry.Classify(path); got != want {
			t.Errorf("Classify(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestRegistryLookup(t *testing.T) {
	registry := NewRegistry()

	if _, ok := registry.Lookup("/x/song.mp3"); !ok {
		t.Fatal("mp3 should have a reader")
	}
	if _, ok := registry.Lookup("/x/song.flac"); !ok {
		t.Fatal("flac should have a reader")
	}
	if _, ok := registry.Lookup("/x/song.ogg"); ok {
		t.Fatal("ogg must not have a reader")
	}
}

type fakeReader struct{}

func (fakeReader) Extract(string) (TagSet, error) { return TagSet{}, nil }

func TestRegistryRegisterPromotesUnsupported(t *testing.T) {
	registry := NewRegistry()
	registry.Register("ogg", fakeReader{})

	if got := registry.Classify("/x/song.ogg"); got != ClassRecognized {
		t.Fatalf("registered extension should be recognized, got %v", got)
	}
}
