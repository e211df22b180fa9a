package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/umwelt-studio/treepath/internal/pathtree"
)

// newFilesCmd creates the files command
func newFilesCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files [tree-file]",
		Short: "Flatten a YAML or JSON tree into file paths",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) > 0 {
				name = args[0]
			}

			record, err := readTreeFile(cmd, name)
			if err != nil {
				return err
			}

			files := pathtree.Files(record)
			opts.logger.Debug("flattened tree", "files", len(files))
			for _, f := range files {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), f); err != nil {
					return fmt.Errorf("failed to write paths: %w", err)
				}
			}
			return nil
		},
	}

	return cmd
}
