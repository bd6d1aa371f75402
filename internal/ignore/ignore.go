// Package ignore implements gitignore-style suppression of scan paths.
package ignore

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Matcher holds a compiled pattern set. It is immutable once built and safe
// for concurrent readers.
type Matcher struct {
	patterns []pattern
}

type pattern struct {
	glob    string
	dirOnly bool
}

// Load builds a Matcher from an ignore file. A missing file or empty path
// yields a nil matcher, which matches nothing (permissive default). Invalid
// glob syntax is a configuration error.
func Load(ignorePath string) (*Matcher, error) {
	if ignorePath == "" {
		return nil, nil
	}
	f, err := os.Open(ignorePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var m Matcher
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p := pattern{glob: strings.TrimSuffix(line, "/"), dirOnly: strings.HasSuffix(line, "/")}
		if !doublestar.ValidatePattern(p.glob) {
			return nil, fmt.Errorf("invalid ignore pattern %q", line)
		}
		m.patterns = append(m.patterns, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Match reports whether the forward-slash relative path is suppressed.
// A nil matcher matches nothing.
func (m *Matcher) Match(rel string) bool {
	if m == nil {
		return false
	}
	rel = strings.ReplaceAll(rel, "\\", "/")
	for _, p := range m.patterns {
		if p.match(rel) {
			return true
		}
	}
	return false
}

func (p pattern) match(rel string) bool {
	if p.dirOnly {
		// "node_modules/" suppresses everything under any node_modules dir.
		if ok, _ := doublestar.Match(p.glob+"/**", rel); ok {
			return true
		}
		ok, _ := doublestar.Match("**/"+p.glob+"/**", rel)
		return ok
	}
	if ok, _ := doublestar.Match(p.glob, rel); ok {
		return true
	}
	// Patterns without a slash also match by basename at any depth.
	if !strings.Contains(p.glob, "/") {
		if ok, _ := doublestar.Match(p.glob, path.Base(rel)); ok {
			return true
		}
	}
	return false
}
