package pathtree

import (
	"iter"
	"slices"
)

// Build folds paths into a new directory tree. Siblings keep the order in
// which their names first appear.
//
// Conflicting prefixes are resolved by the later path: a path that descends
// through a name previously recorded as a file turns that file into a
// directory, and a path that ends on a name previously holding a directory
// replaces the directory with a file.
func Build(paths []string) *Dir {
	return BuildSeq(slices.Values(paths))
}

// BuildSeq is Build over an arbitrary sequence of paths.
func BuildSeq(paths iter.Seq[string]) *Dir {
	root := NewDir()
	for p := range paths {
		root.add(p)
	}
	return root
}

// add descends from d along p, creating directories as needed, and marks the
// final segment as a file.
func (d *Dir) add(p string) {
	current := d
	for {
		next, rest, isLast := Shift(p)
		if isLast {
			current.Set(next, Leaf)
			return
		}

		child, ok := current.children[next].(*Dir)
		if !ok || child == nil {
			child = NewDir()
			current.Set(next, child)
		}
		current, p = child, rest
	}
}
