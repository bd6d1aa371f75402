package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/leakgrep/leakgrep/internal/types"
)

// RedactedMarker replaces preview and context fields when redaction is on.
const RedactedMarker = "[REDACTED]"

// Summary is the machine-readable scan summary.
type Summary struct {
	FilesScanned int   `json:"filesScanned"`
	Findings     int   `json:"findings"`
	DurationMs   int64 `json:"durationMs"`
}

// Report is the JSON document shape; field names are a compatibility
// surface for downstream tooling.
type Report struct {
	Tool        string          `json:"tool"`
	Version     string          `json:"version"`
	ScannedPath string          `json:"scannedPath"`
	Summary     Summary         `json:"summary"`
	Findings    []types.Finding `json:"findings"`
}

// WriteJSON emits the scan result as an indented JSON document. With redact
// set, every finding's preview and context become the redaction marker.
func WriteJSON(w io.Writer, findings []types.Finding, stats types.ScanStats, duration time.Duration, scannedPath, version string, redact bool) error {
	out := make([]types.Finding, len(findings))
	copy(out, findings)
	if redact {
		for i := range out {
			out[i].Preview = RedactedMarker
			out[i].Context = RedactedMarker
		}
	}
	rep := Report{
		Tool:        "leakgrep",
		Version:     version,
		ScannedPath: scannedPath,
		Summary: Summary{
			FilesScanned: stats.FilesScanned,
			Findings:     stats.Findings,
			DurationMs:   duration.Milliseconds(),
		},
		Findings: out,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
