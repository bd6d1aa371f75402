package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIgnoreMatch(t *testing.T) {
	dir := t.TempDir()
	ig := filepath.Join(dir, ".leakgrepignore")
	content := "node_modules/\n*.pem\n# comment\n\nsecret.env\nsecrets/*.env\n"
	if err := os.WriteFile(ig, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(ig)
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]bool{
		"node_modules/pkg/index.js": true,
		"certs/key.pem":             true,
		"secret.env":                true,
		"secrets/prod.env":          true,
		"src/app.ts":                false,
		"src/app.go":                false,
	}
	for p, want := range cases {
		if got := m.Match(p); got != want {
			t.Fatalf("Match(%q)=%v want %v", p, got, want)
		}
	}
}

func TestIgnoreMissingFile(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing ignore file should not error: %v", err)
	}
	if m != nil {
		t.Fatal("missing ignore file should yield a nil matcher")
	}
	if m.Match("anything") {
		t.Fatal("nil matcher must match nothing")
	}
}

func TestIgnoreEmptyPath(t *testing.T) {
	m, err := Load("")
	if err != nil || m != nil {
		t.Fatalf("empty path should yield nil matcher, got %v, %v", m, err)
	}
}

func TestIgnoreInvalidPattern(t *testing.T) {
	dir := t.TempDir()
	ig := filepath.Join(dir, "bad")
	if err := os.WriteFile(ig, []byte("foo[\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(ig); err == nil {
		t.Fatal("invalid glob should be a configuration error")
	}
}
