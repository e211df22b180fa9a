package cli

import (
	"github.com/spf13/cobra"
	"github.com/umwelt-studio/treepath/internal/treefile"
)

// newExportCmd creates the export command
func newExportCmd(opts *Options) *cobra.Command {
	format := string(treefile.YAML)

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Build a tree from paths and write it as YAML or JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := treefile.ParseFormat(format)
			if err != nil {
				return err
			}

			in, err := loadInput(cmd, opts, args)
			if err != nil {
				return err
			}
			return treefile.Encode(cmd.OutOrStdout(), in.tree(), f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", format, "Output format: yaml, json")
	_ = cmd.RegisterFlagCompletionFunc("format", fixedCompletion([]string{string(treefile.YAML), string(treefile.JSON)}))
	return cmd
}
