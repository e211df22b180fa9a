// Package treefile reads and writes path trees as YAML or JSON documents and
// reads flat path lists.
//
// In a tree document a mapping is a directory, an empty string or null marks
// a file, a non-empty string is a single-path shorthand and a sequence of
// strings is a list shorthand. Key order is preserved in both directions.
package treefile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/umwelt-studio/treepath/internal/pathtree"
)

// Format selects the encoding written by Encode.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// ParseFormat validates s as an output format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case YAML, JSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown tree format %q (valid: yaml, json)", s)
}

// Decode parses a YAML or JSON tree document. An empty document is an empty
// directory. Scalars other than strings and null decode to the unrecognized
// (nil) record.
func Decode(data []byte) (pathtree.Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return pathtree.NewDir(), nil
	}

	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("failed to parse tree: %w", err)
	}
	if doc == nil {
		return pathtree.NewDir(), nil
	}
	return toRecord(doc)
}

// Read decodes a tree document from r.
func Read(r io.Reader) (pathtree.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree: %w", err)
	}
	return Decode(data)
}

func toRecord(v any) (pathtree.Record, error) {
	switch val := v.(type) {
	case nil:
		return pathtree.Leaf, nil
	case string:
		return pathtree.Path(val), nil
	case yaml.MapSlice:
		dir := pathtree.NewDir()
		for _, item := range val {
			child, err := toRecord(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%v: %w", item.Key, err)
			}
			dir.Set(keyString(item.Key), child)
		}
		return dir, nil
	case []any:
		paths := make(pathtree.Paths, 0, len(val))
		for i, item := range val {
			switch item.(type) {
			case yaml.MapSlice, []any:
				return nil, fmt.Errorf("list item %d must be a path, got %T", i, item)
			case nil:
				return nil, fmt.Errorf("list item %d must be a path, got null", i)
			}
			paths = append(paths, fmt.Sprint(item))
		}
		return paths, nil
	}
	return nil, nil
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	if k == nil {
		return ""
	}
	return fmt.Sprint(k)
}

// Encode writes r to w in the given format.
func Encode(w io.Writer, r pathtree.Record, format Format) error {
	var opts []yaml.EncodeOption
	if format == JSON {
		opts = append(opts, yaml.JSON())
	}

	data, err := yaml.MarshalWithOptions(fromRecord(r), opts...)
	if err != nil {
		return fmt.Errorf("failed to encode tree: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write tree: %w", err)
	}
	return nil
}

func fromRecord(r pathtree.Record) any {
	switch rec := r.(type) {
	case *pathtree.Dir:
		out := yaml.MapSlice{}
		for _, e := range rec.Entries() {
			out = append(out, yaml.MapItem{Key: e.Name, Value: fromRecord(e.Record)})
		}
		return out
	case pathtree.Path:
		return string(rec)
	case pathtree.Paths:
		return []string(rec)
	}
	return nil
}
