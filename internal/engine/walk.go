package engine

import (
	"io/fs"
	"path/filepath"

	"github.com/leakgrep/leakgrep/internal/classify"
)

// Heavy, generated, or derived directories never worth descending into.
var excludedDirs = map[string]bool{
	".git": true, ".hg": true, ".svn": true,
	"node_modules": true, "vendor": true, "bower_components": true,
	"dist": true, "build": true, "out": true, "target": true,
	".idea": true, ".vscode": true, "DerivedData": true,
	"__pycache__": true, ".venv": true, "venv": true,
	".next": true, ".nuxt": true, ".terraform": true,
	"coverage": true, "Pods": true,
}

type candidate struct {
	path string
	size int64
}

// enumerate collects candidate files under root: known text names, excluded
// directories pruned, symlinks never followed, dotfiles included. Walk
// errors on individual entries are skipped, never fatal.
func enumerate(root string) []candidate {
	var out []candidate
	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != root && excludedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		if !classify.HasTextName(p) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		out = append(out, candidate{path: p, size: info.Size()})
		return nil
	})
	return out
}
