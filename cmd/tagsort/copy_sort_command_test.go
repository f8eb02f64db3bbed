package main

import (
	"os"
	"path/filepath"
	"testing"

	"tagsort/internal/testsupport"
)

func TestCopySortCopiesAndDeduplicates(t *testing.T) {
	env := setupCLITestEnv(t)

	source := filepath.Join(env.baseDir, "incoming")
	dest := filepath.Join(env.baseDir, "library")
	for _, dir := range []string{source, dest} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	first := filepath.Join(source, "track.mp3")
	testsupport.WriteMP3(t, first, testsupport.MP3Frames("Muse", "Absolution", "Hysteria"), []byte("audio-a"))

	data, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(source, "copy-of-track.mp3"), data, 0o644); err != nil {
		t.Fatalf("write duplicate fixture: %v", err)
	}

	out, _, err := runCLI(t, []string{"copy_sort", source, dest}, env.configPath)
	if err != nil {
		t.Fatalf("copy_sort: %v", err)
	}
	requireContains(t, out, "Copied")

	sorted := filepath.Join(dest, "Muse", "Absolution", "Hysteria.mp3")
	if _, err := os.Stat(sorted); err != nil {
		t.Fatalf("expected sorted file at %s: %v", sorted, err)
	}
	if _, err := os.Stat(filepath.Join(dest, "Muse", "Absolution", "Hysteria_1.mp3")); err == nil {
		t.Fatal("duplicate content should not produce a suffixed copy")
	}
}

func TestCopySortReportsTagFailures(t *testing.T) {
	env := setupCLITestEnv(t)

	source := filepath.Join(env.baseDir, "incoming")
	dest := filepath.Join(env.baseDir, "library")
	for _, dir := range []string{source, dest} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	testsupport.WriteMP3(t, filepath.Join(source, "untitled.mp3"), map[string]string{
		"TPE1": "Orphaned Artist",
	}, []byte("audio"))

	out, _, err := runCLI(t, []string{"copy_sort", source, dest}, env.configPath)
	if err != nil {
		t.Fatalf("copy_sort: %v", err)
	}
	requireContains(t, out, "failed due to missing or unreadable tags")
	requireContains(t, out, "untitled.mp3")

	entries, err := os.ReadDir(env.cfg.Paths.ReportDir)
	if err != nil {
		t.Fatalf("read report dir: %v", err)
	}
	var found bool
	for _, entry := range entries {
		if !entry.IsDir() && len(entry.Name()) > len("failures_") && entry.Name()[:len("failures_")] == "failures_" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a failures report in %s", env.cfg.Paths.ReportDir)
	}
}

func TestCopySortRejectsMissingDirectories(t *testing.T) {
	env := setupCLITestEnv(t)

	dest := filepath.Join(env.baseDir, "library")
	if err := os.MkdirAll(dest, 0o755); err != nil {
		t.Fatalf("mkdir dest: %v", err)
	}

	_, _, err := runCLI(t, []string{"copy_sort", filepath.Join(env.baseDir, "nope"), dest}, env.configPath)
	if err == nil {
		t.Fatal("expected missing source to fail")
	}
	requireContains(t, err.Error(), "source folder is not a valid directory")
}

func TestCopySortRequiresTwoArguments(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"copy_sort", env.baseDir}, env.configPath); err == nil {
		t.Fatal("expected single-argument invocation to fail")
	}
}
