package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/leakgrep/leakgrep/internal/rules"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the built-in detection rules",
		Run: func(cmd *cobra.Command, _ []string) {
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTYPE\tSEVERITY\tENTROPY-GATED")
			for _, r := range rules.Catalog {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%v\n", r.ID, r.Type, r.Severity, r.RequireEntropy)
			}
			_ = tw.Flush()
		},
	}
	rootCmd.AddCommand(cmd)
}
