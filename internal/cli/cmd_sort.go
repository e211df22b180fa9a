package cli

import (
	"github.com/spf13/cobra"
	"github.com/umwelt-studio/treepath/internal/pathcmp"
	"github.com/umwelt-studio/treepath/internal/pathtree"
	"github.com/umwelt-studio/treepath/internal/treefile"
)

// newSortCmd creates the sort command
func newSortCmd(opts *Options) *cobra.Command {
	var withTimes bool

	cmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "Print paths in sorted order",
		Long: "Print paths in the order chosen by --sort. Lines may end with a tab and a Unix " +
			"timestamp, which the modified order uses (newest first).",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInput(cmd, opts, args)
			if err != nil {
				return err
			}

			entries := in.entries
			if in.record != nil {
				for _, p := range pathtree.Files(in.record) {
					entries = append(entries, pathcmp.Timed{Path: p})
				}
				if name, ok := opts.sortName(); ok {
					entries = pathcmp.SortTimed(name, entries)
				}
			}
			return treefile.WritePaths(cmd.OutOrStdout(), entries, withTimes)
		},
	}

	cmd.Flags().BoolVar(&withTimes, "times", false, "Keep timestamps in the output")
	return cmd
}
