package scan

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/umwelt-studio/treepath/internal/pathcmp"
)

func TestScanner(t *testing.T) {
	tmpDir := t.TempDir()

	createFile := func(path string, content string) {
		fullPath := filepath.Join(tmpDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			t.Fatalf("Failed to create directories for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to create file %s: %v", path, err)
		}
	}

	createFile("b.txt", "bb")
	createFile("dir1/file2.txt", "Content 2")
	createFile(".git/HEAD", "ref")
	createFile("node_modules/pkg/index.js", "x")

	t.Run("collects files with sizes and times", func(t *testing.T) {
		stamp := time.Unix(1700000000, 0)
		if err := os.Chtimes(filepath.Join(tmpDir, "b.txt"), stamp, stamp); err != nil {
			t.Fatalf("Failed to set times: %v", err)
		}

		s, err := New(tmpDir, "")
		if err != nil {
			t.Fatalf("Failed to create scanner: %v", err)
		}
		entries, err := s.Collect()
		if err != nil {
			t.Fatalf("Collect failed: %v", err)
		}

		var paths []string
		for _, e := range entries {
			paths = append(paths, e.Path)
		}
		want := []string{"b.txt", "dir1/file2.txt"}
		if !reflect.DeepEqual(paths, want) {
			t.Fatalf("Expected %v, got %v", want, paths)
		}
		if entries[0].Size != 2 {
			t.Errorf("Expected size 2, got %d", entries[0].Size)
		}
		if entries[0].ModTime != stamp.Unix() {
			t.Errorf("Expected mod time %d, got %d", stamp.Unix(), entries[0].ModTime)
		}
		if sizes := Sizes(entries); sizes["dir1/file2.txt"] != 9 {
			t.Errorf("Expected size 9, got %d", sizes["dir1/file2.txt"])
		}
	})

	t.Run("gitignore support", func(t *testing.T) {
		createFile(".gitignore", "*.log\n/tmp/\n")
		createFile("test.log", "ignored")
		createFile("tmp/ignore.txt", "ignored")
		defer os.Remove(filepath.Join(tmpDir, ".gitignore"))

		s, err := New(tmpDir, "")
		if err != nil {
			t.Fatalf("Failed to create scanner: %v", err)
		}
		if s.IgnoreFile() != filepath.Join(tmpDir, ".gitignore") {
			t.Errorf("Expected .gitignore to be picked up, got %q", s.IgnoreFile())
		}
		entries, err := s.Collect()
		if err != nil {
			t.Fatalf("Collect failed: %v", err)
		}
		for _, e := range entries {
			if e.Path == "test.log" || e.Path == "tmp/ignore.txt" {
				t.Errorf("Expected %s to be ignored", e.Path)
			}
		}
		found := false
		for _, e := range entries {
			found = found || e.Path == ".gitignore"
		}
		if !found {
			t.Error("Expected .gitignore itself to be listed")
		}
	})

	t.Run("custom ignore file replaces defaults", func(t *testing.T) {
		ignorePath := filepath.Join(t.TempDir(), "custom-ignore")
		if err := os.WriteFile(ignorePath, []byte("dir1/\n"), 0o644); err != nil {
			t.Fatalf("Failed to write ignore file: %v", err)
		}

		s, err := New(tmpDir, ignorePath)
		if err != nil {
			t.Fatalf("Failed to create scanner: %v", err)
		}
		entries, err := s.Collect()
		if err != nil {
			t.Fatalf("Collect failed: %v", err)
		}
		seen := map[string]bool{}
		for _, e := range entries {
			seen[e.Path] = true
		}
		if seen["dir1/file2.txt"] {
			t.Error("Expected dir1 to be ignored")
		}
		if !seen[".git/HEAD"] {
			t.Error("Expected built-in ignores to be replaced by the custom file")
		}
	})

	t.Run("missing ignore file", func(t *testing.T) {
		if _, err := New(tmpDir, filepath.Join(tmpDir, "nope")); err == nil {
			t.Error("Expected an error for a missing ignore file")
		}
	})

	t.Run("missing root", func(t *testing.T) {
		s, err := New(filepath.Join(tmpDir, "missing"), "")
		if err != nil {
			t.Fatalf("Failed to create scanner: %v", err)
		}
		if _, err := s.Collect(); err == nil {
			t.Error("Expected an error for a missing root")
		}
	})
}

func TestFilter(t *testing.T) {
	ignorePath := filepath.Join(t.TempDir(), ".gitignore")
	if err := os.WriteFile(ignorePath, []byte("*.log\nbuild/\n"), 0o644); err != nil {
		t.Fatalf("Failed to write ignore file: %v", err)
	}

	s, err := New(t.TempDir(), ignorePath)
	if err != nil {
		t.Fatalf("Failed to create scanner: %v", err)
	}

	input := []pathcmp.Timed{
		{Path: "src/main.go", ModTime: 1},
		{Path: "debug.log"},
		{Path: "build/out/bin"},
		{Path: `win\build\x.exe`},
		{Path: ".git/config"},
		{Path: "docs/build.md"},
	}
	got := s.Filter(input)
	want := []pathcmp.Timed{
		{Path: "src/main.go", ModTime: 1},
		{Path: "docs/build.md"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if s.Ignored("") {
		t.Error("Expected the empty path to be kept")
	}
}
