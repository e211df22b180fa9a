package pathcmp

import (
	"fmt"
	"slices"
	"strings"
)

// Name identifies one of the sort orders.
type Name string

const (
	// NameFirstFolders sorts by name with folders before files.
	NameFirstFolders Name = "firstFolders"
	// NameFirstFiles sorts by name with files before folders.
	NameFirstFiles Name = "firstFiles"
	// NameFileType groups by extension, then sorts by name. Folders first.
	NameFileType Name = "fileType"
	// NameMixed sorts by name with files interwoven with folders.
	NameMixed Name = "mixed"
	// NameModified sorts by modification time, newest first. Folders first.
	NameModified Name = "modified"
)

// Names lists every sort order.
var Names = []Name{
	NameFirstFolders,
	NameFirstFiles,
	NameFileType,
	NameMixed,
	NameModified,
}

// IsName reports whether s names a sort order.
func IsName(s string) bool {
	return slices.Contains(Names, Name(s))
}

// ParseName validates s as a sort order name.
func ParseName(s string) (Name, error) {
	if !IsName(s) {
		return "", fmt.Errorf("unknown sort order %q (valid: %s)", s, strings.Join(NameStrings(), ", "))
	}
	return Name(s), nil
}

// NameStrings returns Names as plain strings.
func NameStrings() []string {
	out := make([]string, len(Names))
	for i, n := range Names {
		out[i] = string(n)
	}
	return out
}

// Timed is a path paired with its modification time.
type Timed struct {
	Path    string
	ModTime int64
}

// CompareTimed orders timed paths with Modified.
func CompareTimed(a, b Timed) int {
	return Modified(a.Path, b.Path, a.ModTime, b.ModTime)
}

// SortTimed returns a sorted copy of entries using the named order. Orders
// other than NameModified ignore the times.
func SortTimed(name Name, entries []Timed) []Timed {
	out := slices.Clone(entries)
	if name == NameModified {
		slices.SortStableFunc(out, CompareTimed)
		return out
	}
	fn := Lookup(name)
	slices.SortStableFunc(out, func(a, b Timed) int {
		return fn(a.Path, b.Path)
	})
	return out
}

// Lookup returns the comparator for name. NameModified compares without
// times, which leaves only the folder rule and names; an unknown name falls
// back to FirstFolders.
func Lookup(name Name) Func {
	switch name {
	case NameFirstFiles:
		return FirstFiles
	case NameFileType:
		return FileType
	case NameMixed:
		return Mixed
	case NameModified:
		return func(a, b string) int { return Modified(a, b, 0, 0) }
	}
	return FirstFolders
}

// SortFirstFolders returns a sorted copy of paths. Folders come before files.
func SortFirstFolders(paths []string) []string {
	return sorted(paths, FirstFolders)
}

// SortFirstFiles returns a sorted copy of paths. Files come before folders.
func SortFirstFiles(paths []string) []string {
	return sorted(paths, FirstFiles)
}

// SortFileType returns a copy of paths grouped by extension and sorted by
// name. Folders come before files.
func SortFileType(paths []string) []string {
	return sorted(paths, FileType)
}

// SortMixed returns a copy of paths sorted by name.
func SortMixed(paths []string) []string {
	return sorted(paths, Mixed)
}

// SortModified returns a copy of entries, newest first. Folders come before
// files.
func SortModified(entries []Timed) []Timed {
	return SortTimed(NameModified, entries)
}

func sorted(paths []string, fn Func) []string {
	out := slices.Clone(paths)
	slices.SortStableFunc(out, fn)
	return out
}
