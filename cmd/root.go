package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zsh-tools/zkeys/internal/binding"
	"github.com/zsh-tools/zkeys/internal/format"
	"github.com/zsh-tools/zkeys/internal/source"
)

var (
	inStringFlag bool
	widgetFlag   bool
	prefixFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "zkeys [file]",
	Short: "Display zsh key bindings in human-readable formats",
	Long: `zkeys reads the output of zsh's "bindkey -L" and prints the
bindings sorted or grouped in more readable layouts.

With no file argument it asks zsh directly, starting an interactive
login shell so your own configuration is reflected. Pass a file to
read a saved listing instead, or "-" to read from standard input.

Examples:
  zkeys                 # sorted by widget
  zkeys -i              # sorted by in-string
  zkeys -w              # grouped by widget
  zkeys -p              # grouped by prefix
  bindkey -L | zkeys -  # read a listing from stdin`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runRoot,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&inStringFlag, "in-string", "i", false,
		"sort by in-string instead of widget")
	rootCmd.Flags().BoolVarP(&widgetFlag, "widget", "w", false,
		"group by widget")
	rootCmd.Flags().BoolVarP(&prefixFlag, "prefix", "p", false,
		"group by prefix")
	rootCmd.MarkFlagsMutuallyExclusive("in-string", "widget", "prefix")
}

func runRoot(cmd *cobra.Command, args []string) error {
	// Flag and argument errors are already behind us; from here on a
	// failure should not dump usage text.
	cmd.SilenceUsage = true

	lines, err := source.Lines(fileArg(args))
	if err != nil {
		return err
	}

	rows := format.Arrange(selectedMode(), binding.Parse(lines))
	out, err := format.Render(rows)
	if err != nil {
		return err
	}

	for _, line := range out {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

func fileArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return ""
}

func selectedMode() format.Mode {
	switch {
	case inStringFlag:
		return format.SortByInString
	case widgetFlag:
		return format.GroupByWidget
	case prefixFlag:
		return format.GroupByPrefix
	default:
		return format.SortByWidget
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
