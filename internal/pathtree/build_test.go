package pathtree

import (
	"reflect"
	"slices"
	"sort"
	"testing"
)

// dump flattens a tree into nested maps and name lists so tests can compare
// both content and order.
func dump(r Record) any {
	switch rec := r.(type) {
	case *Dir:
		var out []any
		for _, e := range rec.Entries() {
			out = append(out, e.Name, dump(e.Record))
		}
		return out
	case Path:
		return string(rec)
	case Paths:
		return []string(rec)
	}
	return nil
}

func TestBuild(t *testing.T) {
	t.Run("simple paths", func(t *testing.T) {
		got := Build([]string{"foo/bar", "baz/qux"})
		want := NewDir(
			Entry{"foo", NewDir(Entry{"bar", Leaf})},
			Entry{"baz", NewDir(Entry{"qux", Leaf})},
		)
		if !reflect.DeepEqual(dump(got), dump(want)) {
			t.Errorf("Expected %v, got %v", dump(want), dump(got))
		}
	})

	t.Run("nested paths", func(t *testing.T) {
		got := Build([]string{"foo/bar/baz", "qux/quux"})
		want := NewDir(
			Entry{"foo", NewDir(Entry{"bar", NewDir(Entry{"baz", Leaf})})},
			Entry{"qux", NewDir(Entry{"quux", Leaf})},
		)
		if !reflect.DeepEqual(dump(got), dump(want)) {
			t.Errorf("Expected %v, got %v", dump(want), dump(got))
		}
	})

	t.Run("first appearance order", func(t *testing.T) {
		got := Build([]string{"b/2", "a/1", "b/1", "c", "a/0"})
		if names := got.Names(); !slices.Equal(names, []string{"b", "a", "c"}) {
			t.Errorf("Expected top-level order [b a c], got %v", names)
		}
		b, _ := got.Get("b")
		if names := b.(*Dir).Names(); !slices.Equal(names, []string{"2", "1"}) {
			t.Errorf("Expected b order [2 1], got %v", names)
		}
	})

	t.Run("directory replaces earlier file", func(t *testing.T) {
		got := Build([]string{"foo", "foo/bar"})
		want := NewDir(Entry{"foo", NewDir(Entry{"bar", Leaf})})
		if !reflect.DeepEqual(dump(got), dump(want)) {
			t.Errorf("Expected %v, got %v", dump(want), dump(got))
		}
	})

	t.Run("file replaces earlier directory", func(t *testing.T) {
		got := Build([]string{"foo/bar", "baz", "foo"})
		want := NewDir(Entry{"foo", Leaf}, Entry{"baz", Leaf})
		if !reflect.DeepEqual(dump(got), dump(want)) {
			t.Errorf("Expected %v, got %v", dump(want), dump(got))
		}
	})

	t.Run("trailing slash keeps an empty file name", func(t *testing.T) {
		got := Build([]string{"foo/"})
		want := NewDir(Entry{"foo", NewDir(Entry{"", Leaf})})
		if !reflect.DeepEqual(dump(got), dump(want)) {
			t.Errorf("Expected %v, got %v", dump(want), dump(got))
		}
	})

	t.Run("windows separators", func(t *testing.T) {
		got := Build([]string{`dir\subdir\file2.txt`, "dir/file3.txt"})
		want := NewDir(Entry{"dir", NewDir(
			Entry{"subdir", NewDir(Entry{"file2.txt", Leaf})},
			Entry{"file3.txt", Leaf},
		)})
		if !reflect.DeepEqual(dump(got), dump(want)) {
			t.Errorf("Expected %v, got %v", dump(want), dump(got))
		}
	})

	t.Run("input is not modified", func(t *testing.T) {
		input := []string{"b/x", "a/y"}
		Build(input)
		if !slices.Equal(input, []string{"b/x", "a/y"}) {
			t.Errorf("Expected input to be unchanged, got %v", input)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := Build(nil); got.Len() != 0 {
			t.Errorf("Expected empty tree, got %d entries", got.Len())
		}
	})
}

func TestBuildRoundTrip(t *testing.T) {
	paths := []string{
		"src/components/Button.tsx",
		"src/utils/helpers.ts",
		"public/index.html",
		"README.md",
		"src/main.ts",
		"docs/guide/install/linux.md",
	}

	got := Files(Build(paths))
	want := slices.Clone(paths)
	sort.Strings(got)
	sort.Strings(want)
	if !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
