package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagRedact  bool
	flagNoColor bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the leakgrep CLI.
var rootCmd = &cobra.Command{
	Use:           "leakgrep",
	Short:         "Find hardcoded secrets in a directory tree",
	Long:          "leakgrep scans a filesystem tree for hardcoded secrets using pattern rules plus entropy and context scoring, and reports ranked, masked findings.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. Exit codes: 0 no findings, 1 findings, 2 errors.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagRedact, "redact", false, "replace previews and context with a redaction marker")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
}
