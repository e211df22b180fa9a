// Package filetree renders path trees as ASCII diagrams. Each entry produced
// by pathtree.Walk becomes one line; a Formatter decides what the line looks
// like, and the default one draws the familiar ├──, └── and │ connectors.
package filetree

import (
	"strings"

	"github.com/fatih/color"
	"github.com/umwelt-studio/treepath/internal/pathtree"
	"github.com/umwelt-studio/treepath/internal/util"
)

const (
	branch   = "├── "
	corner   = "└── "
	vertical = "│   "
	blank    = "    "
)

// Formatter turns one walked entry into one line of output.
type Formatter func(info *pathtree.Info) string

// FormatDefault draws the connectors for info followed by its base name.
func FormatDefault(info *pathtree.Info) string {
	return prefix(info) + info.Base
}

// prefix returns the connector columns for info: one column per ancestor,
// then the entry's own connector. An entry without positions gets none.
func prefix(info *pathtree.Info) string {
	if len(info.Indent) == 0 {
		return ""
	}

	var b strings.Builder
	last := len(info.Indent) - 1
	for _, pos := range info.Indent[:last] {
		if pos == pathtree.Last {
			b.WriteString(blank)
		} else {
			b.WriteString(vertical)
		}
	}
	if info.Indent[last] == pathtree.Last {
		b.WriteString(corner)
	} else {
		b.WriteString(branch)
	}
	return b.String()
}

// Format renders every entry of r with formatter, one per line, each line
// terminated by a newline. A nil formatter means FormatDefault.
func Format(r pathtree.Record, formatter Formatter) string {
	if formatter == nil {
		formatter = FormatDefault
	}

	var b strings.Builder
	for info := range pathtree.Walk(r) {
		b.WriteString(formatter(info))
		b.WriteString("\n")
	}
	return b.String()
}

// Style configures the formatter returned by Styled.
type Style struct {
	// Color paints directories and connectors.
	Color bool
	// DirSlash appends "/" to directory names.
	DirSlash bool
	// Sizes maps file paths to byte counts shown after the name.
	Sizes map[string]int64
}

// Styled returns a Formatter that draws the default connectors and
// decorates names according to s.
func Styled(s Style) Formatter {
	dirColor := color.New(color.FgBlue, color.Bold)
	lineColor := color.New(color.FgHiBlack)
	sizeColor := color.New(color.FgGreen)
	if s.Color {
		dirColor.EnableColor()
		lineColor.EnableColor()
		sizeColor.EnableColor()
	} else {
		dirColor.DisableColor()
		lineColor.DisableColor()
		sizeColor.DisableColor()
	}

	return func(info *pathtree.Info) string {
		name := info.Base
		if !info.IsLeaf() {
			if s.DirSlash {
				name += "/"
			}
			name = dirColor.Sprint(name)
		}

		line := lineColor.Sprint(prefix(info)) + name
		if size, ok := s.Sizes[info.Path]; ok && info.IsLeaf() {
			line += " " + sizeColor.Sprintf("(%s)", util.FormatSize(size))
		}
		return line
	}
}

// FileTree renders a path tree with an optional root line and summary.
type FileTree struct {
	root      pathtree.Record
	formatter Formatter
}

// New builds a FileTree from paths. Siblings appear in the order their names
// first occur in paths; sort paths beforehand for a sorted tree.
func New(paths []string) *FileTree {
	return FromRecord(pathtree.Build(paths))
}

// FromRecord wraps an existing record.
func FromRecord(r pathtree.Record) *FileTree {
	return &FileTree{
		root:      r,
		formatter: FormatDefault,
	}
}

// WithFormatter replaces the line formatter.
func (t *FileTree) WithFormatter(f Formatter) *FileTree {
	if f != nil {
		t.formatter = f
	}
	return t
}

// String renders the tree. A non-empty customRoot is printed as a "/name"
// line above the entries.
func (t *FileTree) String(customRoot string) string {
	body := Format(t.root, t.formatter)
	if customRoot == "" {
		return body
	}
	return "/" + customRoot + "\n" + body
}

// Count returns the number of directories and files in the tree. Entries
// that are not files count as directories.
func (t *FileTree) Count() (dirs, files int) {
	for info := range pathtree.Walk(t.root) {
		if info.IsLeaf() {
			files++
		} else {
			dirs++
		}
	}
	return dirs, files
}

// Summary returns a "N directories, M files" line.
func (t *FileTree) Summary() string {
	dirs, files := t.Count()
	return util.Plural(dirs, "directory", "directories") + ", " + util.Plural(files, "file", "files")
}

// Build provides a convenient way to create and render a file tree in one
// step.
func Build(paths []string, customRoot string) string {
	return New(paths).String(customRoot)
}
