package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/layout/errors"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Browse the record catalog interactively",
	Args:  cobra.NoArgs,
	RunE:  runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.PhaseReport, errors.KindIO).
			Detail("explore needs a terminal; use show for plain output").
			Build()
	}

	p := tea.NewProgram(newExploreModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(errors.PhaseReport, errors.KindIO, err, "run explorer")
	}
	return nil
}
