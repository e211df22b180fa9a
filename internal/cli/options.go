package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/umwelt-studio/treepath/internal/config"
	"github.com/umwelt-studio/treepath/internal/pathcmp"
)

// Options holds the command-line options shared across commands
type Options struct {
	// ProjectDir is where the project config file is read from and written to.
	ProjectDir string

	// Sort is the sort order applied to path lists before building the tree.
	// The zero value keeps the input order.
	Sort sortValue

	// Color controls ANSI colours in tree output.
	Color colorValue

	// Root, when set, is printed as a "/name" line above the tree.
	Root string

	// IgnoreFile holds gitignore-style patterns used to drop paths.
	// For --dir scans, .treepathignore or .gitignore in the scanned
	// directory are used when it is empty.
	IgnoreFile string

	// Dir, when set, is scanned for files instead of reading a path list.
	Dir string

	// TreeFile, when set, is a YAML or JSON tree read instead of a path list.
	TreeFile string

	// Summary appends a "N directories, M files" line.
	Summary bool

	// Sizes shows file sizes after names when they are known (--dir scans).
	Sizes bool

	// DirSlash appends "/" to directory names.
	DirSlash bool

	// Verbose enables debug logging on stderr.
	Verbose bool

	logger *slog.Logger
}

// applyConfig fills options whose flags were not given on the command line
// from the config files. Flags always win.
func (o *Options) applyConfig(cmd *cobra.Command) error {
	cfg, err := config.New(o.ProjectDir)
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	flags := cmd.Flags()
	if f := flags.Lookup("sort"); f != nil && !f.Changed {
		if value, ok := cfg.Lookup("tree.sort"); ok {
			if err := o.Sort.Set(value); err != nil {
				return fmt.Errorf("invalid tree.sort in config: %w", err)
			}
		}
	}
	if f := flags.Lookup("color"); f != nil && !f.Changed {
		if value, ok := cfg.Lookup("display.color"); ok {
			if err := o.Color.Set(value); err != nil {
				return fmt.Errorf("invalid display.color in config: %w", err)
			}
		}
	}
	if f := flags.Lookup("summary"); f != nil && !f.Changed {
		if value, ok := cfg.Lookup("tree.summary"); ok {
			summary, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid tree.summary in config: %w", err)
			}
			o.Summary = summary
		}
	}
	if f := flags.Lookup("ignore"); f != nil && !f.Changed {
		if value, ok := cfg.Lookup("tree.ignore"); ok {
			o.IgnoreFile = value
		}
	}

	return nil
}

// sortName returns the chosen sort order and whether sorting is enabled.
func (o *Options) sortName() (pathcmp.Name, bool) {
	if o.Sort == "" || o.Sort == sortNone {
		return "", false
	}
	return pathcmp.Name(o.Sort), true
}
