package pathtree

import "iter"

// Position is the place of an entry among its siblings.
type Position int

const (
	// Middle is any entry that is neither first nor last.
	Middle Position = iota
	First
	Last
)

func (p Position) String() string {
	switch p {
	case First:
		return "first"
	case Last:
		return "last"
	default:
		return "middle"
	}
}

// positionOf returns the position of index i among n siblings. Last wins over
// First, so a lone entry is Last.
func positionOf(i, n int) Position {
	switch i {
	case n - 1:
		return Last
	case 0:
		return First
	}
	return Middle
}

// Info describes one entry visited by Walk.
type Info struct {
	// Indent holds the position of every ancestor and of the entry itself,
	// outermost first. Its length is the entry depth.
	Indent []Position
	// Path is the slash-joined path from the root to the entry.
	Path string
	// Base is the entry's own name.
	Base string
	// Record is the subtree rooted at the entry; Leaf for a file.
	Record Record
	// Parent is the enclosing entry, nil for top-level entries.
	Parent *Info
}

// IsLeaf reports whether the entry is a file.
func (i *Info) IsLeaf() bool {
	return IsLeaf(i.Record)
}

// Depth returns the number of levels from the root, starting at 1.
func (i *Info) Depth() int {
	return len(i.Indent)
}

// Walk returns a lazy depth-first, pre-order sequence over r. Entries of a
// directory are visited in insertion order and a child's subtree is finished
// before its next sibling starts.
//
// A Path at the root is treated as a directory holding that single path, and
// a Paths value as its Build output. Below the root the same expansion is
// applied to every Path other than Leaf and to every Paths value, so
// shorthands may appear at any depth. Leaf and nil records are not expanded.
//
// Every call starts a fresh walk; the sequence may be abandoned at any point.
func Walk(r Record) iter.Seq[*Info] {
	return func(yield func(*Info) bool) {
		var root *Dir
		switch rec := r.(type) {
		case Path:
			root = NewDir(Entry{Name: string(rec), Record: Leaf})
		default:
			root = expand(r)
		}
		walk(root, nil, yield)
	}
}

func walk(d *Dir, parent *Info, yield func(*Info) bool) bool {
	entries := d.Entries()
	for i, e := range entries {
		info := &Info{
			Base:   e.Name,
			Record: e.Record,
			Parent: parent,
		}
		if parent == nil {
			info.Path = e.Name
			info.Indent = []Position{positionOf(i, len(entries))}
		} else {
			info.Path = parent.Path + "/" + e.Name
			info.Indent = make([]Position, len(parent.Indent), len(parent.Indent)+1)
			copy(info.Indent, parent.Indent)
			info.Indent = append(info.Indent, positionOf(i, len(entries)))
		}

		if !yield(info) {
			return false
		}

		if child := expand(e.Record); child != nil {
			if !walk(child, info, yield) {
				return false
			}
		}
	}
	return true
}

// expand returns the directory a record stands for, or nil when the record
// has no children. Shorthands produce a new Dir and never touch the input.
func expand(r Record) *Dir {
	switch rec := r.(type) {
	case Path:
		if rec == Leaf {
			return nil
		}
		return NewDir(Entry{Name: string(rec), Record: Leaf})
	case Paths:
		return Build(rec)
	case *Dir:
		return rec
	}
	return nil
}

// Files returns the distinct file paths of r in walk order.
func Files(r Record) []string {
	var files []string
	seen := make(map[string]bool)
	for info := range Walk(r) {
		if !info.IsLeaf() || seen[info.Path] {
			continue
		}
		seen[info.Path] = true
		files = append(files, info.Path)
	}
	return files
}
