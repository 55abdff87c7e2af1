package cmd

import (
	"glance/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive gallery browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		model := tui.New(cfg, client, sess)
		program := tea.NewProgram(model,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		)
		_, err := program.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
