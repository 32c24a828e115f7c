package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aoclive/aoc"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List solved days",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Day\tTitle\tParts\tSamples\tInput\n")
	fmt.Fprintf(w, "---\t-----\t-----\t-------\t-----\n")
	for _, d := range aoc.Days() {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n", d.Number, d.Title, len(d.Parts), len(d.Samples),
			aoc.InputPath(cfg.Inputs, d.Number))
	}
	return nil
}
