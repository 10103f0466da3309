package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pcbinspect/internal/config"
	"pcbinspect/internal/inspector"
)

// resultsCommand prints the inspection history known to the backend.
func resultsCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Lists every PCB and its verdict as reported by the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			pcbs, err := getBackend(ctx, cfg).AllResults(ctx)
			if err != nil {
				return fmt.Errorf("could not list results: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "PCB\tACCURACY\tVERDICT\tRESULTS")
			for _, pcb := range pcbs {
				_, _ = fmt.Fprintf(w, "%d\t%.2f\t%s\t%d\n", pcb.ID, pcb.SumAccuracy, pcb.Verdict(), len(pcb.ResultIDs))
			}
			_ = w.Flush()

			stats := inspector.Summarize(pcbs)
			_, _ = fmt.Fprintf(os.Stdout, "\n%d PCBs, %d passed, average accuracy %.2f\n", //nolint: forbidigo
				stats.Total, stats.Passed, stats.AverageAccuracy)

			return nil
		},
	}

	return cmd
}
