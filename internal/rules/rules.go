package rules

import (
	"regexp"

	"github.com/leakgrep/leakgrep/internal/types"
)

// Rule is one named pattern plus metadata describing a secret family. Rules
// are defined once at process start and never mutated.
type Rule struct {
	ID       string
	Type     string
	Severity types.Severity
	Pattern  *regexp.Regexp

	// SecretGroup is the capture group holding the actual secret substring;
	// 0 means the whole match.
	SecretGroup int

	// RequireEntropy gates the rule on the entropy of the extracted secret.
	RequireEntropy bool

	// JWT marks the rule for JWT-specific context elevation.
	JWT bool

	// Boost is added to the confidence score for every match of this rule.
	Boost int
}

// Catalog is the fixed, ordered rule set applied to every line. Order only
// affects output ordering within a line; every rule is evaluated
// independently.
var Catalog = []Rule{
	{
		ID: "AWS_ACCESS_KEY", Type: "aws_access_key", Severity: types.SevHigh,
		Pattern: regexp.MustCompile(`\b((?:A3T[A-Z0-9]|AKIA|ASIA|ABIA|ACCA)[A-Z2-7]{16})\b`),
	},
	{
		ID: "AWS_SECRET_KEY", Type: "aws_secret_key", Severity: types.SevHigh,
		Pattern:     regexp.MustCompile(`(?i)aws.{0,20}(?:secret|key).{0,5}[=:]\s*["']?([A-Za-z0-9/+=]{40})["']?`),
		SecretGroup: 1, RequireEntropy: true,
	},
	{
		ID: "GITHUB_PAT", Type: "github_token", Severity: types.SevHigh,
		Pattern: regexp.MustCompile(`\b(gh[pousr]_[A-Za-z0-9]{36,})\b`),
	},
	{
		ID: "GITHUB_FINE_PAT", Type: "github_token", Severity: types.SevHigh,
		Pattern: regexp.MustCompile(`\b(github_pat_[A-Za-z0-9_]{82})\b`),
	},
	{
		ID: "GITLAB_PAT", Type: "gitlab_token", Severity: types.SevHigh,
		Pattern: regexp.MustCompile(`\b(glpat-[A-Za-z0-9_\-]{20,})\b`),
	},
	{
		ID: "SLACK_TOKEN", Type: "slack_token", Severity: types.SevHigh,
		Pattern: regexp.MustCompile(`\b(xox[baprs]-[0-9A-Za-z\-]{10,})\b`),
	},
	{
		ID: "SLACK_WEBHOOK", Type: "slack_webhook", Severity: types.SevHigh,
		Pattern: regexp.MustCompile(`https://hooks\.slack\.com/services/T[A-Z0-9]{8,}/B[A-Z0-9]{8,}/[A-Za-z0-9]{20,}`),
	},
	{
		ID: "STRIPE_LIVE", Type: "stripe_secret", Severity: types.SevHigh,
		Pattern: regexp.MustCompile(`\b(sk_live_[A-Za-z0-9]{10,})\b`),
		Boost:   5,
	},
	{
		ID: "STRIPE_WEBHOOK", Type: "stripe_webhook_secret", Severity: types.SevHigh,
		Pattern: regexp.MustCompile(`\b(whsec_[A-Za-z0-9]{16,})\b`),
	},
	{
		ID: "GOOGLE_API_KEY", Type: "google_api_key", Severity: types.SevHigh,
		Pattern: regexp.MustCompile(`\b(AIza[0-9A-Za-z\-_]{35})\b`),
	},
	{
		ID: "SENDGRID_KEY", Type: "sendgrid_api_key", Severity: types.SevHigh,
		Pattern: regexp.MustCompile(`\b(SG\.[A-Za-z0-9_\-]{16,32}\.[A-Za-z0-9_\-]{16,64})\b`),
	},
	{
		ID: "TWILIO_API_KEY", Type: "twilio_api_key", Severity: types.SevMed,
		Pattern: regexp.MustCompile(`\b(SK[0-9a-fA-F]{32})\b`), RequireEntropy: true,
	},
	{
		ID: "NPM_TOKEN", Type: "npm_token", Severity: types.SevHigh,
		Pattern: regexp.MustCompile(`\b(npm_[A-Za-z0-9]{36})\b`),
	},
	{
		ID: "OPENAI_KEY", Type: "openai_api_key", Severity: types.SevHigh,
		Pattern: regexp.MustCompile(`\b(sk-(?:proj-)?[A-Za-z0-9_\-]{20,}T3BlbkFJ[A-Za-z0-9_\-]{20,})\b`),
	},
	{
		ID: "ANTHROPIC_KEY", Type: "anthropic_api_key", Severity: types.SevHigh,
		Pattern: regexp.MustCompile(`\b(sk-ant-[A-Za-z0-9\-_]{24,})\b`),
	},
	{
		ID: "HUGGINGFACE_TOKEN", Type: "huggingface_token", Severity: types.SevMed,
		Pattern: regexp.MustCompile(`\b(hf_[A-Za-z0-9]{30,})\b`), RequireEntropy: true,
	},
	{
		ID: "MAILGUN_KEY", Type: "mailgun_api_key", Severity: types.SevMed,
		Pattern: regexp.MustCompile(`\b(key-[0-9a-f]{32})\b`), RequireEntropy: true,
	},
	{
		ID: "HEROKU_KEY", Type: "heroku_api_key", Severity: types.SevMed,
		Pattern:     regexp.MustCompile(`(?i)heroku[a-z0-9_ .\-]*[=:]\s*["']?([0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12})`),
		SecretGroup: 1,
	},
	{
		ID: "PRIVATE_KEY", Type: "private_key", Severity: types.SevHigh,
		Pattern: regexp.MustCompile(`-----BEGIN[ A-Z0-9_-]{0,40}PRIVATE KEY(?: BLOCK)?-----`),
		Boost:   10,
	},
	{
		ID: "JWT", Type: "jwt", Severity: types.SevMed,
		Pattern: regexp.MustCompile(`\beyJ[A-Za-z0-9_\-]{10,}\.[A-Za-z0-9._\-]{10,}\.[A-Za-z0-9._\-]{5,}`),
		JWT:     true,
	},
	{
		ID: "DB_URI_CREDS", Type: "db_uri_creds", Severity: types.SevHigh,
		Pattern:     regexp.MustCompile(`(?i)\b(?:postgres(?:ql)?|mysql|mongodb(?:\+srv)?|rediss?|amqps?)://[^\s:@/'"]+:([^\s@'"]+)@[^\s'"]+`),
		SecretGroup: 1,
	},
	{
		ID: "BEARER_TOKEN", Type: "bearer_token", Severity: types.SevMed,
		Pattern:     regexp.MustCompile(`(?i)\bbearer\s+([A-Za-z0-9\-._~+/]{20,}=*)`),
		SecretGroup: 1, RequireEntropy: true,
	},
	{
		ID: "GENERIC_API_KEY", Type: "generic_api_key", Severity: types.SevMed,
		Pattern:     regexp.MustCompile(`(?i)(?:api[_\-]?key|apikey)["']?\s*[:=]\s*["']([A-Za-z0-9_\-]{16,64})["']`),
		SecretGroup: 1, RequireEntropy: true,
	},
	{
		ID: "GENERIC_SECRET", Type: "generic_secret", Severity: types.SevMed,
		Pattern:     regexp.MustCompile(`(?i)(?:secret|token|password|passwd|credential)["']?\s*[:=]\s*["']([^"'\s]{4,64})["']`),
		SecretGroup: 1, RequireEntropy: true,
	},
}

// ByID returns the catalog rule with the given identifier.
func ByID(id string) (Rule, bool) {
	for _, r := range Catalog {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}
