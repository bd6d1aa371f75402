package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape. Pointer fields
// distinguish "unset" from zero values so CLI flags can take precedence.
type FileConfig struct {
	MaxBytes    *int64   `yaml:"max_bytes"`
	MaxFindings *int     `yaml:"max_findings"`
	Severity    *string  `yaml:"severity"`
	Entropy     *float64 `yaml:"entropy"`
	IgnoreFile  *string  `yaml:"ignore_file"`
	Suppress    []string `yaml:"suppress"`
	Progress    *bool    `yaml:"progress"`
	JSON        *bool    `yaml:"json"`
	Redact      *bool    `yaml:"redact"`
	NoColor     *bool    `yaml:"no_color"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .leakgrep.yml/.yaml and leakgrep.yml/.yaml.
func LoadLocal(repoRoot string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".leakgrep.yml", ".leakgrep.yaml", "leakgrep.yml", "leakgrep.yaml"} {
		p := filepath.Join(repoRoot, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}
