package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zsh-tools/zkeys/internal/binding"
	"github.com/zsh-tools/zkeys/internal/format"
	"github.com/zsh-tools/zkeys/internal/source"
	"github.com/zsh-tools/zkeys/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [file]",
	Short: "Browse key bindings in an interactive table",
	Long: `Start a full-screen table of your key bindings. The arrangement can
be switched on the fly and the listing filtered as you type.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		lines, err := source.Lines(fileArg(args))
		if err != nil {
			return err
		}
		bindings := binding.Parse(lines)
		if len(bindings) == 0 {
			return format.ErrNoBindings
		}

		m := tui.NewModel(bindings)
		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
