package cmd

import (
	"fmt"

	"github.com/JPM1118/frogframes/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Page through the frames interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runView()
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView() error {
	l, err := frameLoader()
	if err != nil {
		return err
	}
	program := tea.NewProgram(tui.NewViewer(l), tea.WithAltScreen())

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("viewer: %w", err)
	}

	if m, ok := finalModel.(tui.Viewer); ok && m.Err() != nil {
		return fmt.Errorf("load frames from %s: %w", cfg.Source.Base, m.Err())
	}
	return nil
}
