package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/umwelt-studio/treepath/internal/filetree"
)

// addTreeFlags registers the rendering flags on cmd.
func addTreeFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Root, "root", "r", "", "Print a root line with this name")
	cmd.Flags().BoolVar(&opts.Summary, "summary", false, "Append a directory and file count")
	cmd.Flags().BoolVar(&opts.Sizes, "sizes", false, "Show file sizes (with --dir)")
	cmd.Flags().BoolVar(&opts.DirSlash, "dir-slash", false, "Append / to directory names")
}

// newTreeCmd creates the tree command
func newTreeCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Print paths as a directory tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, opts, args)
		},
	}

	addTreeFlags(cmd, opts)
	return cmd
}

func runTree(cmd *cobra.Command, opts *Options, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("expected at most one input file, got %d", len(args))
	}

	in, err := loadInput(cmd, opts, args)
	if err != nil {
		return err
	}

	style := filetree.Style{
		Color:    opts.Color.enabled(cmd.OutOrStdout()),
		DirSlash: opts.DirSlash,
	}
	if opts.Sizes {
		if in.sizes == nil {
			opts.logger.Warn("file sizes are only known for --dir scans")
		}
		style.Sizes = in.sizes
	}

	tree := filetree.FromRecord(in.tree()).WithFormatter(filetree.Styled(style))

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprint(out, tree.String(opts.Root)); err != nil {
		return fmt.Errorf("failed to write tree: %w", err)
	}
	if opts.Summary {
		if _, err := fmt.Fprintf(out, "\n%s\n", tree.Summary()); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}
