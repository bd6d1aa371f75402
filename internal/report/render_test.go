package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/leakgrep/leakgrep/internal/types"
)

func sample() []types.Finding {
	return []types.Finding{{
		RuleID:     "STRIPE_LIVE",
		Type:       "stripe_secret",
		Severity:   types.SevHigh,
		File:       "src/payments.ts",
		Line:       3,
		Column:     14,
		Preview:    "****DEFG",
		Hash:       "a1b2c3d4e5f60718",
		Context:    "const key = '****DEFG';",
		Confidence: 100,
	}}
}

func TestPrintTableWithFindings(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, sample(), PrintOptions{NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "SEVERITY") {
		t.Fatalf("expected table header; got: %q", out)
	}
	if !strings.Contains(out, "STRIPE_LIVE") {
		t.Fatalf("expected rule column; got: %q", out)
	}
	if !strings.Contains(out, "src/payments.ts:3:14") {
		t.Fatalf("expected location column; got: %q", out)
	}
	if !strings.Contains(out, "Findings: 1 (high: 1, med: 0, low: 0)") {
		t.Fatalf("expected summary footer; got: %q", out)
	}
}

func TestPrintTableNoFindings(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, nil, PrintOptions{Duration: 1200 * time.Millisecond, FilesScanned: 10})
	out := buf.String()
	if !strings.Contains(out, "No secrets found") {
		t.Fatalf("expected friendly no-findings message; got: %q", out)
	}
	if !strings.Contains(out, "Files scanned: 10") {
		t.Fatalf("expected footer with files scanned; got: %q", out)
	}
}
