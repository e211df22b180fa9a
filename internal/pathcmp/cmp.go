// Package pathcmp orders slash-delimited paths. Every comparator walks both
// paths one segment at a time, so entries are grouped by their parent
// directories, and differs only in how two segments are compared and in
// what happens when one path ends inside a directory the other one enters.
package pathcmp

import (
	"cmp"
	"strings"

	"github.com/umwelt-studio/treepath/internal/pathtree"
)

// Func is a three-way path comparator usable with slices.SortFunc.
type Func func(a, b string) int

// Mixed orders names by the CLDR root collation. Files are interleaved with
// folders.
func Mixed(a, b string) int {
	if a == b {
		return 0
	}
	return rootCollator.compare(a, b)
}

// FirstFolders orders paths by name, segment by segment. A path that goes
// deeper than an otherwise equal path sorts first.
func FirstFolders(a, b string) int {
	if a == b {
		return 0
	}
	return lockstep(a, b, Mixed, foldersFirst)
}

// FirstFiles orders paths by name, segment by segment. A path that ends
// where an otherwise equal path goes deeper sorts first.
func FirstFiles(a, b string) int {
	if a == b {
		return 0
	}
	return lockstep(a, b, Mixed, filesFirst)
}

// FileType groups segments by extension, then orders them by name. A path
// that goes deeper than an otherwise equal path sorts first.
func FileType(a, b string) int {
	if a == b {
		return 0
	}
	return lockstep(a, b, cmpExtThenStem, foldersFirst)
}

// Modified orders paths by modification time, newest first, falling back to
// names when the times are equal. A path that goes deeper than an otherwise
// equal path sorts first whatever the times are. Use 0 for unknown times.
func Modified(a, b string, timeA, timeB int64) int {
	byTime := cmp.Compare(timeB, timeA)
	for {
		nextA, restA, lastA := pathtree.Shift(a)
		nextB, restB, lastB := pathtree.Shift(b)
		a, b = restA, restB

		byName := Mixed(nextA, nextB)
		if byName == 0 && lastA != lastB {
			return foldersFirst(lastA, lastB)
		}
		if byTime != 0 {
			return byTime
		}
		if byName != 0 {
			return byName
		}
		if lastA && lastB {
			return 0
		}
	}
}

// lockstep shifts one segment off both paths at a time. The first segment
// pair that differs decides. When the segments match and exactly one path
// has ended, exhausted decides.
func lockstep(a, b string, segment Func, exhausted func(lastA, lastB bool) int) int {
	for {
		nextA, restA, lastA := pathtree.Shift(a)
		nextB, restB, lastB := pathtree.Shift(b)
		a, b = restA, restB

		if c := segment(nextA, nextB); c != 0 {
			return c
		}
		if lastA && lastB {
			return 0
		}
		if lastA || lastB {
			return exhausted(lastA, lastB)
		}
	}
}

func foldersFirst(lastA, _ bool) int {
	if lastA {
		return 1
	}
	return -1
}

func filesFirst(lastA, _ bool) int {
	if lastA {
		return -1
	}
	return 1
}

func cmpExtThenStem(a, b string) int {
	stemA, extA := splitExt(a)
	stemB, extB := splitExt(b)
	if c := Mixed(extA, extB); c != 0 {
		return c
	}
	return Mixed(stemA, stemB)
}

// splitExt splits name into stem and extension. The extension starts at the
// last dot; dots at the start of the name never start one, so ".bashrc" has
// no extension.
func splitExt(name string) (stem, ext string) {
	trimmed := strings.TrimLeft(name, ".")
	i := strings.LastIndexByte(trimmed, '.')
	if i < 0 {
		return name, ""
	}
	i += len(name) - len(trimmed)
	return name[:i], name[i:]
}
