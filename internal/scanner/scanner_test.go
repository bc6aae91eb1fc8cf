package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t testing.TB, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
	return path
}

func TestScanYieldsOnlyNoteFiles(t *testing.T) {
	dir := t.TempDir()

	want := map[string]bool{
		writeFile(t, dir, "root.md"):                       true,
		writeFile(t, dir, filepath.Join("sub", "note.md")): true,
		writeFile(t, dir, "legacy.markdown"):               true,
		writeFile(t, dir, "UPPER.MD"):                      true,
	}
	writeFile(t, dir, "readme.txt")
	writeFile(t, dir, ".hidden.md")
	writeFile(t, dir, filepath.Join(".obsidian", "workspace.md"))
	writeFile(t, dir, filepath.Join("node_modules", "pkg", "doc.md"))
	writeFile(t, dir, filepath.Join("sub", ".trash", "deleted.md"))

	s, err := New(dir, []string{".obsidian", ".trash", "node_modules"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	got := make(map[string]bool)
	err = s.Scan(func(path string) error {
		got[path] = true
		return nil
	})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d notes, got %v", len(want), got)
	}
	for path := range want {
		if !got[path] {
			t.Fatalf("expected %s to be scanned, got %v", path, got)
		}
	}
}

func TestCountMatchesScan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.md")
	writeFile(t, dir, "two.md")
	writeFile(t, dir, "skip.txt")

	s, err := New(dir, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	count, err := s.Count()
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 notes, got %d", count)
	}
}

func TestNewRejectsInvalidRoots(t *testing.T) {
	dir := t.TempDir()

	if _, err := New(filepath.Join(dir, "missing"), nil); err == nil {
		t.Fatalf("expected error for missing root")
	}

	file := writeFile(t, dir, "note.md")
	_, err := New(file, nil)
	if !errors.Is(err, ErrInvalidRoot) {
		t.Fatalf("expected ErrInvalidRoot for file root, got %v", err)
	}
}

func TestScanStopsOnVisitError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.md")
	writeFile(t, dir, "two.md")

	s, err := New(dir, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	wantErr := errors.New("stop")
	var visited int
	err = s.Scan(func(string) error {
		visited++
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected visit error to propagate, got %v", err)
	}
	if visited != 1 {
		t.Fatalf("expected scan to stop after first visit, got %d", visited)
	}
}
