package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the leakgrep version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Println("leakgrep", version)
		},
	})
}
