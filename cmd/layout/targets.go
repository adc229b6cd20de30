package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wippyai/layout"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the built-in alignment targets",
	Args:  cobra.NoArgs,
	RunE:  runTargets,
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}

func runTargets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-8s %s\n", "name", "max align")
	for _, t := range layout.Targets() {
		fmt.Fprintf(out, "%-8s %d\n", t.Name, t.MaxAlign)
	}
	return nil
}
