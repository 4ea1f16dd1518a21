package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/professor/internal/backend"
	"github.com/saulo-duarte/professor/internal/config"
	"github.com/saulo-duarte/professor/internal/shell"
	"github.com/saulo-duarte/professor/internal/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Ask the professor from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Log lines would tear the alt screen.
			config.Logger().SetOutput(io.Discard)

			sh := shell.New(backend.NewClient(settings.BackendURL))
			_, err := tea.NewProgram(tui.New(cmd.Context(), sh), tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}
