package fileutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")

	content := []byte("hello world")
	if err := os.WriteFile(src, content, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("content mismatch: got %q, want %q", got, content)
	}
}

func TestCopyFilePreserve(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mp3")
	dst := filepath.Join(dir, "dst.mp3")

	content := []byte("fake audio payload")
	if err := os.WriteFile(src, content, 0o640); err != nil {
		t.Fatal(err)
	}
	mtime := time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(src, mtime, mtime); err != nil {
		t.Fatal(err)
	}

	if err := CopyFilePreserve(src, dst); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("content mismatch: got %q", got)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o640 {
		t.Fatalf("permissions not preserved: got %o", info.Mode().Perm())
	}
	if !info.ModTime().Equal(mtime) {
		t.Fatalf("mtime not preserved: got %v, want %v", info.ModTime(), mtime)
	}
}

func TestCopyFilePreserve_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFilePreserve(filepath.Join(dir, "nope"), filepath.Join(dir, "dst"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestSameContents(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")
	c := filepath.Join(dir, "c.bin")
	d := filepath.Join(dir, "d.bin")

	payload := bytes.Repeat([]byte{0xAB, 0xCD}, 100*1024)
	if err := os.WriteFile(a, payload, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, payload, 0o644); err != nil {
		t.Fatal(err)
	}
	altered := append([]byte(nil), payload...)
	altered[len(altered)-1] ^= 0xFF
	if err := os.WriteFile(c, altered, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(d, payload[:10], 0o644); err != nil {
		t.Fatal(err)
	}

	same, err := SameContents(a, b)
	if err != nil || !same {
		t.Fatalf("identical files reported different (same=%v, err=%v)", same, err)
	}
	same, err = SameContents(a, c)
	if err != nil || same {
		t.Fatalf("differing files reported same (same=%v, err=%v)", same, err)
	}
	same, err = SameContents(a, d)
	if err != nil || same {
		t.Fatalf("shorter file reported same (same=%v, err=%v)", same, err)
	}
}

func TestSameContents_MissingFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	if err := os.WriteFile(a, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := SameContents(a, filepath.Join(dir, "gone")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
