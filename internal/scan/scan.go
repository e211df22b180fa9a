// Package scan collects file paths from a directory tree, together with their
// sizes and modification times, while respecting gitignore-style patterns.
// It also applies the same patterns to path lists that did not come from
// disk.
package scan

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/umwelt-studio/treepath/internal/pathcmp"
)

// extraIgnores lists entries that are almost never wanted in a tree listing.
const extraIgnores = `
# === Version control and tool state
.git
.hg
.svn
.treepath
.treepathignore

# === Dependency and cache directories
node_modules
__pycache__
.DS_Store
`

// Entry is one collected file.
type Entry struct {
	// Path is slash-separated and relative to the scan root.
	Path string
	// ModTime is the modification time in Unix seconds.
	ModTime int64
	// Size is the file size in bytes.
	Size int64
}

// Scanner walks a directory and filters its files.
type Scanner struct {
	rootDir    string
	ignoreFile string
	matcher    gitignore.Matcher
}

// New creates a Scanner for rootDir. When ignoreFile is empty, .treepathignore
// and then .gitignore in rootDir are used if present, together with the
// built-in ignore list. An explicit ignore file other than those two replaces
// the built-in list.
func New(rootDir, ignoreFile string) (*Scanner, error) {
	rootDir = filepath.Clean(rootDir)

	s := &Scanner{
		rootDir:    rootDir,
		ignoreFile: ignoreFile,
	}

	var patterns []gitignore.Pattern

	addExtraIgnores := ignoreFile == "" ||
		filepath.Base(ignoreFile) == ".gitignore" ||
		filepath.Base(ignoreFile) == ".treepathignore"
	if addExtraIgnores {
		patterns = append(patterns, parsePatterns(extraIgnores)...)
	}

	if ignoreFile == "" {
		for _, name := range []string{".treepathignore", ".gitignore"} {
			candidate := filepath.Join(rootDir, name)
			if _, err := os.Stat(candidate); err == nil {
				s.ignoreFile = candidate
				break
			}
		}
	}

	if s.ignoreFile != "" {
		data, err := os.ReadFile(s.ignoreFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read ignore file: %w", err)
		}
		patterns = append(patterns, parsePatterns(string(data))...)
	}

	s.matcher = gitignore.NewMatcher(patterns)
	return s, nil
}

// IgnoreFile returns the ignore file in use, or "" if none.
func (s *Scanner) IgnoreFile() string {
	return s.ignoreFile
}

// Collect walks the root directory and returns every file that is not
// ignored, in walk order (lexical within each directory). Ignored directories
// are not descended into and symbolic links are not followed.
func (s *Scanner) Collect() ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(s.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == s.rootDir {
			return nil
		}

		relPath, err := filepath.Rel(s.rootDir, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}
		relPath = filepath.ToSlash(relPath)

		if s.matcher.Match(strings.Split(relPath, "/"), d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", relPath, err)
		}

		entries = append(entries, Entry{
			Path:    relPath,
			ModTime: info.ModTime().Unix(),
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", s.rootDir, err)
	}

	return entries, nil
}

// Ignored reports whether a slash- or backslash-separated path, or any of
// its parent directories, matches the ignore patterns.
func (s *Scanner) Ignored(path string) bool {
	parts := strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' })
	if len(parts) == 0 {
		return false
	}
	for i := 1; i < len(parts); i++ {
		if s.matcher.Match(parts[:i], true) {
			return true
		}
	}
	return s.matcher.Match(parts, false)
}

// Filter returns the entries whose paths are not ignored.
func (s *Scanner) Filter(entries []pathcmp.Timed) []pathcmp.Timed {
	var kept []pathcmp.Timed
	for _, e := range entries {
		if !s.Ignored(e.Path) {
			kept = append(kept, e)
		}
	}
	return kept
}

// Timed converts entries for sorting.
func Timed(entries []Entry) []pathcmp.Timed {
	out := make([]pathcmp.Timed, len(entries))
	for i, e := range entries {
		out[i] = pathcmp.Timed{Path: e.Path, ModTime: e.ModTime}
	}
	return out
}

// Sizes maps each entry path to its size.
func Sizes(entries []Entry) map[string]int64 {
	out := make(map[string]int64, len(entries))
	for _, e := range entries {
		out[e.Path] = e.Size
	}
	return out
}

func parsePatterns(data string) []gitignore.Pattern {
	var patterns []gitignore.Pattern
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return patterns
}
