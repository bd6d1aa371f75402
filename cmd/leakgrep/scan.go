package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leakgrep/leakgrep/internal/config"
	"github.com/leakgrep/leakgrep/internal/engine"
	"github.com/leakgrep/leakgrep/internal/report"
	"github.com/leakgrep/leakgrep/internal/types"
)

var (
	flagPath        string
	flagMaxBytes    int64
	flagMaxFindings int
	flagSeverity    string
	flagEntropy     float64
	flagIgnoreFile  string
	flagSuppress    []string
	flagProgress    bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan files for secrets",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to scan")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this (default 1MB)")
	cmd.Flags().IntVar(&flagMaxFindings, "max-findings", 0, "stop after this many findings (0=unlimited)")
	cmd.Flags().StringVar(&flagSeverity, "severity", "", "minimum severity to report: low|med|high (default low)")
	cmd.Flags().Float64Var(&flagEntropy, "entropy", 0, "entropy threshold for entropy-gated rules (default 3.5)")
	cmd.Flags().StringVar(&flagIgnoreFile, "ignore-file", "", "path to a gitignore-style ignore file")
	cmd.Flags().StringArrayVar(&flagSuppress, "suppress", nil, "suppression regex (repeatable); matched against secrets, lines, and paths")
	cmd.Flags().BoolVar(&flagProgress, "progress", false, "show progress on stderr while scanning")
}

func runScan(cmd *cobra.Command, _ []string) error {
	abs, err := filepath.Abs(flagPath)
	if err != nil {
		return err
	}
	var fcfg config.FileConfig
	if c, err := config.LoadLocal(abs); err == nil {
		fcfg = c
	}

	sevStr := pickString(flagSeverity, fcfg.Severity)
	if sevStr == "" {
		sevStr = string(types.SevLow)
	}
	sev, err := types.ParseSeverity(sevStr)
	if err != nil {
		return err
	}
	maxBytes := pickInt64(flagMaxBytes, fcfg.MaxBytes)
	if maxBytes == 0 {
		maxBytes = 1 << 20
	}
	entropy := pickFloat(flagEntropy, fcfg.Entropy)
	if entropy == 0 {
		entropy = 3.5
	}

	cfg := engine.Config{
		Root:             abs,
		MaxBytes:         maxBytes,
		MaxFindings:      pickInt(flagMaxFindings, fcfg.MaxFindings),
		MinSeverity:      sev,
		EntropyThreshold: entropy,
		IgnoreFile:       pickString(flagIgnoreFile, fcfg.IgnoreFile),
		Suppress:         append(flagSuppress, fcfg.Suppress...),
		Progress:         pickBool(flagProgress, fcfg.Progress),
	}

	useJSON := pickBool(flagJSON, fcfg.JSON)
	if !useJSON {
		fmt.Fprintf(os.Stderr, "Scanning %s...\n", abs)
	}

	res, err := engine.ScanWithStats(cfg)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}

	if useJSON {
		if err := report.WriteJSON(os.Stdout, res.Findings, res.Stats, res.Duration, abs, version, pickBool(flagRedact, fcfg.Redact)); err != nil {
			return err
		}
	} else {
		report.PrintTable(os.Stdout, res.Findings, report.PrintOptions{
			NoColor:      pickBool(flagNoColor, fcfg.NoColor),
			Duration:     res.Duration,
			FilesScanned: res.Stats.FilesScanned,
		})
	}

	if len(res.Findings) > 0 {
		os.Exit(1)
	}
	return nil
}
