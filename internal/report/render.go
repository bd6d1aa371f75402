package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/leakgrep/leakgrep/internal/types"
)

// PrintOptions carries presentation knobs and the scan summary.
type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
}

var (
	sevHigh = color.New(color.FgRed, color.Bold)
	sevMed  = color.New(color.FgYellow)
	sevLow  = color.New(color.FgCyan)
)

// PrintTable renders findings as a console table sorted by path and line,
// followed by a summary footer. Ordering here is presentation-only; the
// engine makes no ordering promise across files.
func PrintTable(w io.Writer, findings []types.Finding, opts PrintOptions) {
	sort.Slice(findings, func(i, j int) bool {
		if findings[i].File == findings[j].File {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].File < findings[j].File
	})

	if len(findings) == 0 {
		fmt.Fprintln(w, "No secrets found ✅")
	} else {
		table := tablewriter.NewTable(w)
		table.Header("SEVERITY", "RULE", "LOCATION", "CONF", "PREVIEW")
		for _, f := range findings {
			table.Append(
				severityLabel(f.Severity, opts.NoColor),
				f.RuleID,
				fmt.Sprintf("%s:%d:%d", f.File, f.Line, f.Column),
				fmt.Sprintf("%d", f.Confidence),
				f.Preview,
			)
		}
		_ = table.Render()
	}

	high, med, low := 0, 0, 0
	for _, f := range findings {
		switch f.Severity {
		case types.SevHigh:
			high++
		case types.SevMed:
			med++
		default:
			low++
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Findings: %d (high: %d, med: %d, low: %d)\n", len(findings), high, med, low)
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
	if opts.FilesScanned > 0 {
		fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
	}
}

func severityLabel(s types.Severity, noColor bool) string {
	if noColor {
		return string(s)
	}
	switch s {
	case types.SevHigh:
		return sevHigh.Sprint("high")
	case types.SevMed:
		return sevMed.Sprint("med")
	default:
		return sevLow.Sprint("low")
	}
}
