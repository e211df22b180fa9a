package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/umwelt-studio/treepath/internal/config"
	"github.com/umwelt-studio/treepath/internal/pathcmp"
)

// ConfigOption represents a configuration option
type ConfigOption struct {
	Key         string
	Description string
	Default     string
	ValidValues []string // For enumerated values like true/false
	Validator   func(string) error
}

// Registry of all available configuration options
var configOptions = []ConfigOption{
	{
		Key:         "tree.sort",
		Description: "Sort order applied to paths before building the tree",
		Default:     string(pathcmp.NameFirstFolders),
		ValidValues: sortChoices(),
		Validator:   validateSortOption,
	},
	{
		Key:         "tree.summary",
		Description: "Append a directory and file count after the tree",
		Default:     "false",
		ValidValues: []string{"true", "false"},
		Validator:   validateBoolOption,
	},
	{
		Key:         "tree.ignore",
		Description: "Ignore file with gitignore patterns applied to paths",
		Default:     "",
	},
	{
		Key:         "display.color",
		Description: "Colorize tree output (stored globally)",
		Default:     colorAuto,
		ValidValues: colorChoices,
		Validator:   validateColorOption,
	},
}

// MARK: Sub-commands

// newConfigCmd creates the config command and its subcommands
func newConfigCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage treepath configuration",
		// Config commands manage the files applyConfig reads, so a broken
		// value there must not stop them from running.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	cmd.AddCommand(
		newConfigListCmd(opts),
		newConfigGetCmd(opts),
		newConfigSetCmd(opts),
		newConfigUnsetCmd(opts),
	)

	return cmd
}

func newConfigListCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigList(cmd.OutOrStdout(), opts)
		},
	}

	return cmd
}

func runConfigList(w io.Writer, opts *Options) error {
	cfg, err := config.New(opts.ProjectDir)
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	fmt.Fprintln(w, "Available configuration options:")
	fmt.Fprintln(w)

	for _, option := range configOptions {
		fmt.Fprintf(w, "  %s\n", option.Key)
		fmt.Fprintf(w, "    Description: %s\n", option.Description)
		fmt.Fprintf(w, "    Default: %s\n", option.Default)

		if value, ok := cfg.Lookup(option.Key); ok {
			fmt.Fprintf(w, "    Current: %s\n", value)
		} else {
			fmt.Fprintf(w, "    Current: %s (default)\n", option.Default)
		}
		fmt.Fprintln(w)
	}

	return nil
}

func newConfigSetCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd.OutOrStdout(), opts, args[0], args[1])
		},
		ValidArgsFunction: func(
			cmd *cobra.Command,
			args []string,
			toComplete string,
		) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return configOptionsKeys(), cobra.ShellCompDirectiveNoFileComp
			}
			// For values, provide common completions based on the key
			if len(args) == 1 {
				option := findConfigOption(args[0])
				if option != nil && len(option.ValidValues) > 0 {
					return option.ValidValues, cobra.ShellCompDirectiveNoFileComp
				}
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	return cmd
}

func runConfigSet(w io.Writer, opts *Options, key, value string) error {
	option := findConfigOption(key)
	if option == nil {
		return fmt.Errorf("unknown configuration option: %s\n\nRun 'treepath config list' to see available options", key)
	}

	if option.Validator != nil {
		if err := option.Validator(value); err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
	}

	cfg, err := config.New(opts.ProjectDir)
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	if err := cfg.Set(key, value); err != nil {
		return fmt.Errorf("unable to set config: %w", err)
	}

	opts.logger.Debug("config updated", "key", key, "global", cfg.IsGlobalKey(key))
	fmt.Fprintf(w, "Set %s = %s\n", key, value)
	return nil
}

func newConfigGetCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(cmd.OutOrStdout(), opts, args[0])
		},
		ValidArgsFunction: func(
			cmd *cobra.Command,
			args []string,
			toComplete string,
		) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return configOptionsKeys(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	return cmd
}

func runConfigGet(w io.Writer, opts *Options, key string) error {
	option := findConfigOption(key)
	if option == nil {
		return fmt.Errorf("unknown configuration option: %s\n\nRun 'treepath config list' to see available options", key)
	}

	cfg, err := config.New(opts.ProjectDir)
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	value, ok := cfg.Lookup(key)
	if !ok {
		fmt.Fprintf(w, "%s = %s (default)\n", key, option.Default)
		return nil
	}

	fmt.Fprintf(w, "%s = %s\n", key, value)
	return nil
}

func newConfigUnsetCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Unset a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigUnset(cmd.OutOrStdout(), opts, args[0])
		},
		ValidArgsFunction: func(
			cmd *cobra.Command,
			args []string,
			toComplete string,
		) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return configOptionsKeys(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	return cmd
}

func runConfigUnset(w io.Writer, opts *Options, key string) error {
	cfg, err := config.New(opts.ProjectDir)
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	if err := cfg.Delete(key); err != nil {
		return fmt.Errorf("unable to unset config: %w", err)
	}

	fmt.Fprintf(w, "Unset %s\n", key)
	return nil
}

// MARK: Helpers

// findConfigOption finds a config option by key
func findConfigOption(key string) *ConfigOption {
	for i := range configOptions {
		if configOptions[i].Key == key {
			return &configOptions[i]
		}
	}
	return nil
}

func configOptionsKeys() []string {
	var keys []string
	for _, option := range configOptions {
		keys = append(keys, option.Key)
	}
	return keys
}

// MARK: Validators

// validateBoolOption validates that a value is either "true" or "false"
func validateBoolOption(value string) error {
	if value != "true" && value != "false" {
		return fmt.Errorf("value must be either 'true' or 'false', got: %s", value)
	}
	return nil
}

func validateSortOption(value string) error {
	var s sortValue
	return s.Set(value)
}

func validateColorOption(value string) error {
	var c colorValue
	return c.Set(value)
}
