package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "epigrid-run",
		Short: "Headless driver for the epigrid contagion simulation",
		Long: `epigrid-run advances the grid contagion model without a window.

It writes per-day state counts to CSV, renders a time-series chart,
exports per-day frames, and can assemble the frames into a movie.`,
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newSweepCmd(),
		newParamsCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the epigrid-run version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
