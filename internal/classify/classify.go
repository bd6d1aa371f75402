// Package classify decides whether a file is worth handing to the line
// matcher: known text extension, within the size cap, and not binary.
package classify

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// sniffLen bounds the read used for binary detection.
const sniffLen = 8000

var textExtensions = map[string]bool{
	".bash": true, ".c": true, ".cfg": true, ".clj": true, ".conf": true,
	".cpp": true, ".cs": true, ".css": true, ".dart": true, ".env": true,
	".ex": true, ".exs": true, ".go": true, ".gradle": true, ".graphql": true,
	".groovy": true, ".h": true, ".hpp": true, ".html": true, ".ini": true,
	".java": true, ".js": true, ".json": true, ".jsx": true, ".kt": true,
	".kts": true, ".lua": true, ".m": true, ".md": true, ".mjs": true,
	".php": true, ".pl": true, ".properties": true, ".ps1": true, ".py": true,
	".rb": true, ".rs": true, ".scala": true, ".scss": true, ".sh": true,
	".sql": true, ".swift": true, ".tf": true, ".tfvars": true, ".toml": true,
	".ts": true, ".tsx": true, ".txt": true, ".vue": true, ".xml": true,
	".yaml": true, ".yml": true, ".zsh": true,
}

// Dotfiles scanned by basename rather than extension.
var textBasenames = map[string]bool{
	".env": true, ".npmrc": true, ".netrc": true, ".pgpass": true,
	"Dockerfile": true, "Makefile": true,
}

// HasTextName reports whether the file's extension or basename is on the
// allow-list. Dotenv variants such as .env.production count.
func HasTextName(path string) bool {
	base := filepath.Base(path)
	if textBasenames[base] || strings.HasPrefix(base, ".env.") {
		return true
	}
	return textExtensions[strings.ToLower(filepath.Ext(base))]
}

// IsScannable is a pure predicate over file metadata plus a bounded read: it
// rejects unknown names, files over maxSize, and files whose first sniffLen
// bytes contain a NUL byte.
func IsScannable(path string, size, maxSize int64) bool {
	if !HasTextName(path) {
		return false
	}
	if maxSize > 0 && size > maxSize {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	// ReadFull so a short first read cannot shrink the sniff window.
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false
	}
	return !looksBinary(buf[:n])
}

func looksBinary(b []byte) bool {
	for _, c := range b {
		if c == 0 {
			return true
		}
	}
	return false
}
