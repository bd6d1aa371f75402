package types

import "fmt"

// Severity is a coarse-grained risk level for a finding.
type Severity string

const (
	SevLow  Severity = "low"
	SevMed  Severity = "med"
	SevHigh Severity = "high"
)

// Rank places severities in the total order low < med < high.
func (s Severity) Rank() int {
	switch s {
	case SevHigh:
		return 2
	case SevMed:
		return 1
	default:
		return 0
	}
}

// ParseSeverity validates a user-supplied severity string.
func ParseSeverity(s string) (Severity, error) {
	switch Severity(s) {
	case SevLow, SevMed, SevHigh:
		return Severity(s), nil
	}
	return "", fmt.Errorf("invalid severity %q (want low|med|high)", s)
}

// Finding describes one detected, scored, masked secret occurrence. The raw
// secret value is never stored; only its hash and a masked preview survive.
type Finding struct {
	RuleID     string   `json:"ruleId"`
	Type       string   `json:"type"`
	Severity   Severity `json:"severity"`
	File       string   `json:"file"`
	Line       int      `json:"line"`
	Column     int      `json:"column"`
	Preview    string   `json:"preview"`
	Hash       string   `json:"hash"`
	Context    string   `json:"context"`
	Confidence int      `json:"confidence"`
}

// ScanStats carries per-scan counters. Both counters increase monotonically
// for the duration of one scan and reset per invocation.
type ScanStats struct {
	FilesScanned int `json:"filesScanned"`
	Findings     int `json:"findings"`
}
