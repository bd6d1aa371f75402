package detect

import (
	"testing"

	"github.com/leakgrep/leakgrep/internal/types"
)

func TestScoreExactValues(t *testing.T) {
	cases := []struct {
		name    string
		sev     types.Severity
		entropy float64
		line    string
		path    string
		boost   int
		want    int
	}{
		{"high base", types.SevHigh, 0, "x = 1", "src/app.go", 0, 90},
		{"med base", types.SevMed, 0, "x = 1", "src/app.go", 0, 70},
		{"low base", types.SevLow, 0, "x = 1", "src/app.go", 0, 40},
		{"entropy bonus floors", types.SevLow, 1.2, "x = 1", "src/app.go", 0, 42},
		{"entropy bonus caps at 10", types.SevLow, 9.9, "x = 1", "src/app.go", 0, 50},
		{"positive context", types.SevMed, 0, "api key = 1", "src/app.go", 0, 80},
		{"negative context", types.SevMed, 0, "example value", "src/app.go", 0, 50},
		{"both contexts are additive", types.SevMed, 0, "example secret", "src/app.go", 0, 60},
		{"path penalty", types.SevMed, 0, "x = 1", "tests/fixtures/a.go", 0, 50},
		{"boost", types.SevMed, 0, "x = 1", "src/app.go", 5, 75},
		{"clamped high", types.SevHigh, 5.0, "apikey = 1", "src/app.go", 0, 100},
		{"clamped low", types.SevLow, 0, "mock example", "test/a.go", -100, 0},
	}
	for _, tc := range cases {
		if got := Score(tc.sev, tc.entropy, tc.line, tc.path, tc.boost); got != tc.want {
			t.Errorf("%s: Score = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestScoreAlwaysInRange(t *testing.T) {
	sevs := []types.Severity{types.SevLow, types.SevMed, types.SevHigh}
	for _, sev := range sevs {
		for _, entropy := range []float64{0, 2.5, 8} {
			for _, boost := range []int{-200, -10, 0, 10, 200} {
				got := Score(sev, entropy, "bearer example token mock", "tests/mock.go", boost)
				if got < 0 || got > 100 {
					t.Fatalf("Score(%v, %v, boost=%d) = %d, out of [0,100]", sev, entropy, boost, got)
				}
			}
		}
	}
}
