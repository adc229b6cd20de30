package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/layout"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect record sizes, alignment, and padding",
	Long: `layout computes sizes, field offsets, and padding for the built-in
record catalog under selectable alignment rules. Use "show" for a single
record, "targets" to list the alignment rules, or "explore" to browse.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		log, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		layout.SetLogger(log)
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log layout decisions while calculating")
}
