package detect

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/leakgrep/leakgrep/internal/rules"
	"github.com/leakgrep/leakgrep/internal/types"
)

// Options controls per-scan matching behavior. Both fields are resolved once
// per scan, never per file.
type Options struct {
	// EntropyThreshold gates rules that require entropy.
	EntropyThreshold float64

	// Suppress drops any match whose secret or whole line matches one of
	// these patterns.
	Suppress []*regexp.Regexp
}

// Confidence boost applied when a JWT sits next to supabase/service-role
// context, which usually means a service key with full database access.
const jwtContextBoost = 10

// Detect applies the rule catalog to text and returns masked, scored
// findings. Line numbers and columns are 1-based; columns are offsets into
// the line with its terminator already stripped.
func Detect(text, filePath string, opts Options) []types.Finding {
	var out []types.Finding
	normPath := filepath.ToSlash(filePath)

	for li, line := range splitLines(text) {
		lower := strings.ToLower(line)
		for _, rule := range rules.Catalog {
			for _, m := range rule.Pattern.FindAllStringSubmatchIndex(line, -1) {
				secret, secStart := extractSecret(line, m, rule.SecretGroup)
				if secret == "" {
					continue
				}
				if suppressed(opts.Suppress, secret, line) {
					continue
				}

				entropy := ShannonEntropy(secret)
				if rule.RequireEntropy && entropy < opts.EntropyThreshold {
					continue
				}

				sev := rule.Severity
				boost := rule.Boost
				if rule.JWT && (strings.Contains(lower, "supabase") || strings.Contains(lower, "service_role")) {
					sev = types.SevHigh
					boost += jwtContextBoost
				}

				masked := Mask(secret)
				out = append(out, types.Finding{
					RuleID:     rule.ID,
					Type:       rule.Type,
					Severity:   sev,
					File:       normPath,
					Line:       li + 1,
					Column:     secStart + 1,
					Preview:    masked,
					Hash:       HashSecret(secret),
					Context:    strings.ReplaceAll(line, secret, masked),
					Confidence: Score(sev, entropy, line, normPath, boost),
				})
			}
		}
	}
	return out
}

// splitLines splits on \r?\n without dropping empty lines.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// extractSecret pulls the secret substring out of a submatch index slice,
// preferring the rule's designated capture group when present and non-empty.
func extractSecret(line string, m []int, group int) (string, int) {
	if group > 0 && 2*group+1 < len(m) && m[2*group] >= 0 && m[2*group+1] > m[2*group] {
		return line[m[2*group]:m[2*group+1]], m[2*group]
	}
	return line[m[0]:m[1]], m[0]
}

func suppressed(patterns []*regexp.Regexp, secret, line string) bool {
	for _, re := range patterns {
		if re.MatchString(secret) || re.MatchString(line) {
			return true
		}
	}
	return false
}

// CompileSuppressions validates and compiles user-supplied suppression
// expressions. Invalid syntax is a configuration error and fails the scan
// before it starts.
func CompileSuppressions(exprs []string) ([]*regexp.Regexp, error) {
	var out []*regexp.Regexp
	for _, e := range exprs {
		re, err := regexp.Compile(e)
		if err != nil {
			return nil, err
		}
		out = append(out, re)
	}
	return out, nil
}
