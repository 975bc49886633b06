package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cedar/internal/layout"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List supported layout targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TRIPLE\tPTR SIZE\tPTR ALIGN")
		for _, t := range layout.Known() {
			fmt.Fprintf(w, "%s\t%d\t%d\n", t.Triple, t.PtrSize, t.PtrAlign)
		}
		return w.Flush()
	},
}
