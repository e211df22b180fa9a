// Package cli provides the command-line interface for treepath.
package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/umwelt-studio/treepath/internal/pathcmp"
)

var (
	// Default version for development/non-release builds
	// GoReleaser overrides this for release builds with the git tag.
	version = "dev"
)

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	return newRootCmd(&Options{ProjectDir: "."})
}

func newRootCmd(opts *Options) *cobra.Command {
	if opts.Sort == "" {
		opts.Sort = sortValue(pathcmp.NameFirstFolders)
	}
	if opts.Color == "" {
		opts.Color = colorAuto
	}

	rootCmd := &cobra.Command{
		Use:          "treepath [file]",
		Short:        "Render path lists as directory trees",
		Long:         "treepath reads slash-separated paths (one per line, from a file or stdin) and prints them as a directory tree.",
		Version:      version,
		SilenceUsage: true,
		// NB: ArbitraryArgs is required to avoid interpreting the first argument
		// as a subcommand, so `treepath paths.txt` works.
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			return opts.applyConfig(cmd)
		},
		// When no subcommand is supplied, execute the tree command
		RunE: newTreeCmd(opts).RunE,
	}

	flags := rootCmd.PersistentFlags()
	flags.VarP(&opts.Sort, "sort", "s", "Sort order: "+strings.Join(sortChoices(), ", "))
	flags.Var(&opts.Color, "color", "Colorize output: "+strings.Join(colorChoices, ", "))
	flags.StringVar(&opts.IgnoreFile, "ignore", "", "Ignore file with gitignore patterns")
	flags.StringVarP(&opts.Dir, "dir", "d", "", "Scan a directory instead of reading a path list")
	flags.StringVarP(&opts.TreeFile, "tree-file", "t", "", "Read a YAML or JSON tree instead of a path list")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log diagnostics to stderr")

	_ = rootCmd.RegisterFlagCompletionFunc("sort", fixedCompletion(sortChoices()))
	_ = rootCmd.RegisterFlagCompletionFunc("color", fixedCompletion(colorChoices))

	addTreeFlags(rootCmd, opts)

	rootCmd.AddCommand(
		newTreeCmd(opts),
		newSortCmd(opts),
		newFilesCmd(opts),
		newExportCmd(opts),
		newConfigCmd(opts),
	)

	return rootCmd
}

func fixedCompletion(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
