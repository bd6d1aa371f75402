package detect

import (
	"math"
	"testing"
)

func TestShannonEntropyRepeatedChar(t *testing.T) {
	if got := ShannonEntropy("aaaaaaaa"); got != 0 {
		t.Fatalf("entropy of repeated char = %v, want 0", got)
	}
}

func TestShannonEntropyUniform(t *testing.T) {
	// n distinct equally frequent characters over length n -> log2(n).
	cases := map[string]float64{
		"ab":       1,
		"abcd":     2,
		"abcdefgh": 3,
	}
	for s, want := range cases {
		if got := ShannonEntropy(s); math.Abs(got-want) > 1e-9 {
			t.Fatalf("ShannonEntropy(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestShannonEntropyEmpty(t *testing.T) {
	if got := ShannonEntropy(""); got != 0 {
		t.Fatalf("entropy of empty string = %v, want 0", got)
	}
}
