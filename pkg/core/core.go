package core

import (
	"encoding/json"
	"io"

	"github.com/leakgrep/leakgrep/internal/engine"
	"github.com/leakgrep/leakgrep/internal/rules"
	"github.com/leakgrep/leakgrep/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type (
	Config  = engine.Config
	Finding = types.Finding
	Result  = engine.Result
)

// Scan is the stable entrypoint for other programs.
func Scan(cfg Config) ([]Finding, error) {
	return engine.Scan(cfg)
}

// ScanWithStats runs a scan and returns findings with timing and counters.
func ScanWithStats(cfg Config) (Result, error) {
	return engine.ScanWithStats(cfg)
}

// RuleIDs returns the identifiers of the built-in rule catalog, in
// evaluation order.
func RuleIDs() []string {
	ids := make([]string, 0, len(rules.Catalog))
	for _, r := range rules.Catalog {
		ids = append(ids, r.ID)
	}
	return ids
}

// MarshalFindings writes findings to w as indented JSON.
func MarshalFindings(w io.Writer, findings []Finding) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}

// UnmarshalFindings reads a findings array previously written by
// MarshalFindings (or by the scan command's JSON output).
func UnmarshalFindings(r io.Reader) ([]Finding, error) {
	var fs []Finding
	if err := json.NewDecoder(r).Decode(&fs); err != nil {
		return nil, err
	}
	return fs, nil
}
