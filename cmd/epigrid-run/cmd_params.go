package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"epigrid/internal/core"
	"epigrid/internal/sims/epidemic"
)

func newParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "List the model tunables and their defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			pop, err := epidemic.NewWithConfig(epidemic.DefaultConfig())
			if err != nil {
				return err
			}
			var provider core.ParameterSnapshotProvider = pop
			snap := provider.ParameterSnapshot()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			for _, group := range snap.Groups {
				fmt.Fprintf(w, "%s\n", group.Name)
				for _, p := range group.Params {
					fmt.Fprintf(w, "  %s\t%s\t%s\n", p.Key, p.Value, p.Label)
				}
			}
			return w.Flush()
		},
	}
}
