package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/umwelt-studio/treepath/internal/pathcmp"
	"github.com/umwelt-studio/treepath/internal/pathtree"
	"github.com/umwelt-studio/treepath/internal/scan"
	"github.com/umwelt-studio/treepath/internal/treefile"
)

// input is what a command read: either a ready-made tree or a list of paths.
type input struct {
	record  pathtree.Record
	entries []pathcmp.Timed
	sizes   map[string]int64
}

// tree returns the input as a tree. Path lists are built in their current
// order.
func (in *input) tree() pathtree.Record {
	if in.record != nil {
		return in.record
	}
	return pathtree.Build(treefile.Paths(in.entries))
}

// openArg opens the file named by the first argument, or stdin when there
// is none or it is "-".
func openArg(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("failed to open input: %w", err)
	}
	return f, args[0], nil
}

// readTreeFile decodes the tree named by name ("-" for stdin).
func readTreeFile(cmd *cobra.Command, name string) (pathtree.Record, error) {
	r, _, err := openArg(cmd, []string{name})
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return treefile.Read(r)
}

// loadInput reads the input selected by the options: a tree file, a
// directory scan or a path list. Path lists are filtered by the ignore file
// and sorted by the chosen order.
func loadInput(cmd *cobra.Command, opts *Options, args []string) (*input, error) {
	log := opts.logger

	if opts.TreeFile != "" {
		record, err := readTreeFile(cmd, opts.TreeFile)
		if err != nil {
			return nil, err
		}
		log.Debug("read tree file", "file", opts.TreeFile)
		return &input{record: record}, nil
	}

	in := &input{}
	if opts.Dir != "" {
		s, err := scan.New(opts.Dir, opts.IgnoreFile)
		if err != nil {
			return nil, fmt.Errorf("unable to create scanner: %w", err)
		}
		found, err := s.Collect()
		if err != nil {
			return nil, fmt.Errorf("unable to scan directory: %w", err)
		}
		log.Debug("scanned directory", "dir", opts.Dir, "ignore", s.IgnoreFile(), "files", len(found))
		in.entries = scan.Timed(found)
		in.sizes = scan.Sizes(found)
	} else {
		r, name, err := openArg(cmd, args)
		if err != nil {
			return nil, err
		}
		defer r.Close()

		entries, err := treefile.ReadPaths(r)
		if err != nil {
			return nil, err
		}
		log.Debug("read paths", "source", name, "paths", len(entries))

		if opts.IgnoreFile != "" {
			s, err := scan.New(".", opts.IgnoreFile)
			if err != nil {
				return nil, fmt.Errorf("unable to load ignore file: %w", err)
			}
			entries = s.Filter(entries)
			log.Debug("filtered paths", "ignore", opts.IgnoreFile, "kept", len(entries))
		}
		in.entries = entries
	}

	if name, ok := opts.sortName(); ok {
		in.entries = pathcmp.SortTimed(name, in.entries)
		log.Debug("sorted paths", "order", name)
	}

	return in, nil
}
