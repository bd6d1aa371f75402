package detect

import (
	"regexp"
	"strings"

	"github.com/leakgrep/leakgrep/internal/types"
)

// Static keyword tables consulted by the scorer. Read-only.
var (
	positiveKeywords = []string{
		"secret", "token", "api key", "apikey", "bearer",
		"authorization", "private", "credential",
	}
	negativeKeywords = []string{
		"example", "dummy", "testkey", "test key", "fixture", "mock",
	}
	rePathPenalty = regexp.MustCompile(`(?i)test|fixture|mock`)
)

// Score converts severity, entropy, surrounding text, and file path signals
// into a confidence score in [0,100]. The formula is a contract relied on by
// downstream filtering: base 90/70/40 by severity, entropy bonus
// min(10, floor(entropy*2)), +10 for a positive context keyword, -20 for a
// negative one (both may apply), -20 path penalty, plus the rule boost,
// clamped to [0,100].
func Score(sev types.Severity, entropy float64, contextLine, filePath string, boost int) int {
	base := 40
	switch sev {
	case types.SevHigh:
		base = 90
	case types.SevMed:
		base = 70
	}

	entropyBonus := int(entropy * 2)
	if entropyBonus > 10 {
		entropyBonus = 10
	}

	ctx := strings.ToLower(contextLine)
	contextScore := 0
	for _, kw := range positiveKeywords {
		if strings.Contains(ctx, kw) {
			contextScore += 10
			break
		}
	}
	for _, kw := range negativeKeywords {
		if strings.Contains(ctx, kw) {
			contextScore -= 20
			break
		}
	}

	pathPenalty := 0
	if rePathPenalty.MatchString(filePath) {
		pathPenalty = -20
	}

	score := base + entropyBonus + contextScore + pathPenalty + boost
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
