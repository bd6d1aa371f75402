package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "cfg.yml")
	body := `
max_bytes: 2048
max_findings: 5
severity: high
entropy: 4.2
suppress:
  - "sk_test_"
redact: true
`
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))

	cfg, err := LoadFile(p)
	require.NoError(t, err)
	require.NotNil(t, cfg.MaxBytes)
	require.EqualValues(t, 2048, *cfg.MaxBytes)
	require.NotNil(t, cfg.MaxFindings)
	require.Equal(t, 5, *cfg.MaxFindings)
	require.Equal(t, "high", *cfg.Severity)
	require.InDelta(t, 4.2, *cfg.Entropy, 1e-9)
	require.Equal(t, []string{"sk_test_"}, cfg.Suppress)
	require.True(t, *cfg.Redact)
	require.Nil(t, cfg.Progress, "unset fields stay nil")
}

func TestLoadLocal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".leakgrep.yml"), []byte("severity: med\n"), 0644))

	cfg, err := LoadLocal(dir)
	require.NoError(t, err)
	require.Equal(t, "med", *cfg.Severity)

	_, err = LoadLocal(t.TempDir())
	require.Error(t, err)
}

func TestLoadFileInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(p, []byte("severity: [unclosed"), 0644))
	_, err := LoadFile(p)
	require.Error(t, err)
}
