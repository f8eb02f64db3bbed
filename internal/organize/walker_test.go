package organize_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tagsort/internal/organize"
	"tagsort/internal/testsupport"
)

func runWalk(t *testing.T, src, dest string) *organize.Report {
	t.Helper()
	report, err := organize.Run(context.Background(), organize.Options{
		Source:      src,
		Destination: dest,
	})
	if err != nil {
		t.Fatal(err)
	}
	return report
}

func TestRunSortsAndDeduplicates(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()

	// Two byte-identical files plus one distinct file, all carrying the same
	// triple: expect Z.mp3 and Z_1.mp3 and zero failures.
	frames := testsupport.MP3Frames("X", "Y", "Z")
	first := filepath.Join(src, "a", "one.mp3")
	testsupport.WriteMP3(t, first, frames, []byte("payload-one"))
	bytes, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(src, "b"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "b", "two.mp3"), bytes, 0o644); err != nil {
		t.Fatal(err)
	}
	testsupport.WriteMP3(t, filepath.Join(src, "c", "three.mp3"), frames, []byte("payload-three"))

	report := runWalk(t, src, dest)

	if report.Copied != 2 {
		t.Fatalf("copied = %d, want 2", report.Copied)
	}
	if report.Duplicates != 1 {
		t.Fatalf("duplicates = %d, want 1", report.Duplicates)
	}
	if len(report.Failures) != 0 {
		t.Fatalf("failures = %+v, want none", report.Failures)
	}
	for _, name := range []string{"Z.mp3", "Z_1.mp3"} {
		if _, err := os.Stat(filepath.Join(dest, "X", "Y", name)); err != nil {
			t.Errorf("missing destination entry %s: %v", name, err)
		}
	}
}

func TestRunRecordsMissingTagFailure(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()

	path := filepath.Join(src, "untitled.mp3")
	testsupport.WriteMP3(t, path, testsupport.MP3Frames("", "Album", "Title"), nil)

	report := runWalk(t, src, dest)

	if report.Copied != 0 || report.Duplicates != 0 {
		t.Fatalf("expected zero destination writes, got copied=%d duplicates=%d", report.Copied, report.Duplicates)
	}
	if len(report.Failures) != 1 {
		t.Fatalf("failures = %+v, want exactly one", report.Failures)
	}
	failure := report.Failures[0]
	if failure.Path != path {
		t.Fatalf("failure path = %q, want %q", failure.Path, path)
	}
	if failure.Reason != organize.ReasonMissingTag {
		t.Fatalf("failure reason = %q, want %q", failure.Reason, organize.ReasonMissingTag)
	}

	entries, err := os.ReadDir(dest)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("destination should stay empty, found %d entries", len(entries))
	}
}

func TestRunRecordsUnreadableFailure(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	testsupport.WriteCorruptMP3(t, filepath.Join(src, "broken.mp3"))

	report := runWalk(t, src, dest)

	if len(report.Failures) != 1 || report.Failures[0].Reason != organize.ReasonUnreadable {
		t.Fatalf("failures = %+v, want one unreadable", report.Failures)
	}
}

func TestRunClassifiesUnsupportedWithoutExtracting(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()

	// Garbage bytes under a known-but-unsupported extension: must never be
	// parsed, only reported.
	path := filepath.Join(src, "song.ogg")
	if err := os.WriteFile(path, []byte("not audio at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	report := runWalk(t, src, dest)

	if len(report.Unsupported) != 1 || report.Unsupported[0] != path {
		t.Fatalf("unsupported = %+v, want [%s]", report.Unsupported, path)
	}
	if len(report.Failures) != 0 {
		t.Fatalf("unsupported files are not failures: %+v", report.Failures)
	}
}

func TestRunIgnoresUnknownExtensions(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()

	for _, name := range []string{"cover.jpg", "notes.txt", "README"} {
		if err := os.WriteFile(filepath.Join(src, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	report := runWalk(t, src, dest)

	if report.Scanned != 0 {
		t.Fatalf("scanned = %d, want 0", report.Scanned)
	}
	if len(report.Failures) != 0 || len(report.Unsupported) != 0 {
		t.Fatalf("ignored files must not be reported: %+v %+v", report.Failures, report.Unsupported)
	}
}

func TestRunHandlesMixedFormats(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()

	testsupport.WriteMP3(t, filepath.Join(src, "a.mp3"), testsupport.MP3Frames("Artist", "Album", "Track"), []byte("mp3-bytes"))
	testsupport.WriteFLAC(t, filepath.Join(src, "b.flac"), testsupport.FLACFields("Artist", "Album", "Track"), []byte("flac-bytes"))

	report := runWalk(t, src, dest)

	if report.Copied != 2 {
		t.Fatalf("copied = %d, want 2 (%+v)", report.Copied, report.Failures)
	}
	// Same triple, different extensions: separate chains, no suffixes.
	for _, name := range []string{"Track.mp3", "Track.flac"} {
		if _, err := os.Stat(filepath.Join(dest, "Artist", "Album", name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestRunSanitizesReservedCharacters(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()

	testsupport.WriteMP3(t, filepath.Join(src, "acdc.mp3"), testsupport.MP3Frames("AC/DC", "Back in Black", "Hells Bells"), nil)

	report := runWalk(t, src, dest)

	if report.Copied != 1 {
		t.Fatalf("copied = %d, want 1 (%+v)", report.Copied, report.Failures)
	}
	if _, err := os.Stat(filepath.Join(dest, "AC_DC", "Back in Black", "Hells Bells.mp3")); err != nil {
		t.Fatalf("sanitized path missing: %v", err)
	}
}

func TestRunReportsSourceWalkError(t *testing.T) {
	dest := t.TempDir()
	_, err := organize.Run(context.Background(), organize.Options{
		Source:      filepath.Join(t.TempDir(), "missing"),
		Destination: dest,
	})
	if err == nil {
		t.Fatal("expected error for missing source root")
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	src := t.TempDir()
	testsupport.WriteMP3(t, filepath.Join(src, "a.mp3"), testsupport.MP3Frames("A", "B", "C"), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := organize.Run(ctx, organize.Options{Source: src, Destination: t.TempDir()}); err == nil {
		t.Fatal("expected context error")
	}
}
