package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestWalker_Walk(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.txt":          "casas",
		"docs/b.md":      "meninas",
		"docs/c.go":      "package x",
		"skip/d.txt":     "livros",
		"deep/x/y/e.txt": "cantando",
	})

	w, err := NewWalker([]string{"**/*.txt", "**/*.md"}, []string{"skip/**"}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	files, err := w.Walk(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a.txt", "deep/x/y/e.txt", "docs/b.md"}
	if len(files) != len(want) {
		t.Fatalf("expected %d files, got %d: %+v", len(want), len(files), files)
	}
	for i, f := range files {
		if f.RelPath != want[i] {
			t.Errorf("file %d: expected %s, got %s", i, want[i], f.RelPath)
		}
		if !filepath.IsAbs(f.Path) {
			t.Errorf("expected absolute path, got %s", f.Path)
		}
	}
}

func TestWalker_DefaultIncludesAndMaxSize(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"small.txt": "bons",
		"big.txt":   "felizmente felizmente felizmente",
	})

	w, err := NewWalker(nil, nil, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	files, err := w.Walk(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 || files[0].RelPath != "small.txt" {
		t.Errorf("expected only small.txt, got %+v", files)
	}
}

func TestNewWalker_InvalidPattern(t *testing.T) {
	if _, err := NewWalker([]string{"[unclosed"}, nil, 0); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("coração"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path)
	if err != nil || got != "coração" {
		t.Errorf("expected coração, got %q (%v)", got, err)
	}
}
