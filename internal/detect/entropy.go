package detect

import "math"

// ShannonEntropy returns the Shannon entropy of s over its character
// distribution, in bits. A repeated single character yields 0; n distinct
// equally frequent characters over length n yield log2(n).
func ShannonEntropy(s string) float64 {
	if s == "" {
		return 0
	}
	freqs := make(map[rune]int)
	total := 0
	for _, r := range s {
		freqs[r]++
		total++
	}
	var h float64
	n := float64(total)
	for _, c := range freqs {
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return h
}
