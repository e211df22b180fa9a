// Package pathtree converts flat lists of slash-delimited paths into nested
// directory trees and walks those trees lazily, annotating every entry with
// the sibling positions needed to draw tree connectors.
package pathtree

// Record is a set of paths in one of three shapes: a single path (Path), a
// list of paths (Paths) or a directory (*Dir). Shorthand shapes are accepted
// at any depth of a tree and are expanded when walked.
//
// A nil Record stored in a Dir is an unrecognized shape. It is visited but
// never expanded, and it is not a file.
type Record interface {
	record()
}

// Path is a single path shorthand, equivalent to a directory holding that
// one path. The empty Path is the leaf sentinel.
type Path string

// Paths is a list shorthand, equivalent to Build over the list.
type Paths []string

// Leaf marks a terminal file inside a Dir.
const Leaf = Path("")

func (Path) record()  {}
func (Paths) record() {}
func (*Dir) record()  {}

// IsLeaf reports whether r is the leaf sentinel.
func IsLeaf(r Record) bool {
	p, ok := r.(Path)
	return ok && p == Leaf
}

// Entry is one named child of a Dir.
type Entry struct {
	Name   string
	Record Record
}

// Dir maps segment names to child records and remembers the order in which
// names were first added. The order drives traversal and is never sorted.
type Dir struct {
	names    []string
	children map[string]Record
}

// NewDir creates a directory holding the given entries in order. Repeated
// names keep their first position and their last record.
func NewDir(entries ...Entry) *Dir {
	d := &Dir{children: make(map[string]Record, len(entries))}
	for _, e := range entries {
		d.Set(e.Name, e.Record)
	}
	return d
}

// Set stores r under name. A new name is appended; an existing name keeps
// its position.
func (d *Dir) Set(name string, r Record) {
	if d.children == nil {
		d.children = make(map[string]Record)
	}
	if _, exists := d.children[name]; !exists {
		d.names = append(d.names, name)
	}
	d.children[name] = r
}

// Get returns the record stored under name.
func (d *Dir) Get(name string) (Record, bool) {
	if d == nil {
		return nil, false
	}
	r, ok := d.children[name]
	return r, ok
}

// Len returns the number of entries.
func (d *Dir) Len() int {
	if d == nil {
		return 0
	}
	return len(d.names)
}

// Names returns a copy of the entry names in insertion order.
func (d *Dir) Names() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.names...)
}

// Entries returns the entries in insertion order.
func (d *Dir) Entries() []Entry {
	if d == nil {
		return nil
	}
	entries := make([]Entry, len(d.names))
	for i, name := range d.names {
		entries[i] = Entry{Name: name, Record: d.children[name]}
	}
	return entries
}
