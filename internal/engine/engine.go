package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/leakgrep/leakgrep/internal/classify"
	"github.com/leakgrep/leakgrep/internal/detect"
	"github.com/leakgrep/leakgrep/internal/ignore"
	"github.com/leakgrep/leakgrep/internal/types"
)

// At most this many file scans are in flight at once, independent of file
// count. Caps open file descriptors and peak memory while still overlapping
// I/O with matching.
const maxConcurrentScans = 16

// Config controls one scan invocation. Thresholds are resolved once here,
// never recomputed per file.
type Config struct {
	Root             string
	MaxBytes         int64
	MaxFindings      int
	MinSeverity      types.Severity
	EntropyThreshold float64
	IgnoreFile       string
	Suppress         []string
	Progress         bool
}

// Result contains findings and basic scan statistics.
type Result struct {
	Findings []types.Finding
	Stats    types.ScanStats
	Duration time.Duration
}

// Scan runs a scan and returns only findings (without stats).
func Scan(cfg Config) ([]types.Finding, error) {
	res, err := ScanWithStats(cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// ScanWithStats walks cfg.Root and scans candidate files under a bounded
// worker pool. Configuration errors fail before any file is opened;
// per-file I/O errors contribute zero findings and never abort the scan.
func ScanWithStats(cfg Config) (Result, error) {
	var res Result

	if cfg.MinSeverity == "" {
		cfg.MinSeverity = types.SevLow
	}
	if _, err := types.ParseSeverity(string(cfg.MinSeverity)); err != nil {
		return res, err
	}
	suppress, err := detect.CompileSuppressions(cfg.Suppress)
	if err != nil {
		return res, fmt.Errorf("invalid suppression pattern: %w", err)
	}
	ign, err := ignore.Load(cfg.IgnoreFile)
	if err != nil {
		return res, fmt.Errorf("ignore file: %w", err)
	}
	opts := detect.Options{EntropyThreshold: cfg.EntropyThreshold, Suppress: suppress}

	started := time.Now()
	candidates := enumerate(cfg.Root)
	prog := newProgress(len(candidates), cfg.Progress)
	defer prog.stop()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		stop atomic.Bool
		sem  = make(chan struct{}, maxConcurrentScans)
	)
	for _, c := range candidates {
		// Cooperative stop: in-flight scans finish, no new ones start.
		if stop.Load() {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(c candidate) {
			defer wg.Done()
			defer func() { <-sem }()

			found := scanFile(cfg, c, ign, suppress, opts)

			mu.Lock()
			res.Findings = append(res.Findings, found...)
			res.Stats.FilesScanned++
			if cfg.MaxFindings > 0 && len(res.Findings) >= cfg.MaxFindings {
				stop.Store(true)
			}
			mu.Unlock()
			prog.step()
		}(c)
	}
	wg.Wait()

	if cfg.MaxFindings > 0 && len(res.Findings) > cfg.MaxFindings {
		res.Findings = res.Findings[:cfg.MaxFindings]
	}
	res.Stats.Findings = len(res.Findings)
	res.Duration = time.Since(started)
	return res, nil
}

// scanFile applies the per-file gates and runs the line matcher. Any
// failure short of a finding is treated as "no findings for this file".
func scanFile(cfg Config, c candidate, ign *ignore.Matcher, suppress []*regexp.Regexp, opts detect.Options) []types.Finding {
	rel, err := filepath.Rel(cfg.Root, c.path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}
	rel = filepath.ToSlash(rel)

	if ign.Match(rel) {
		return nil
	}
	for _, re := range suppress {
		if re.MatchString(rel) {
			return nil
		}
	}
	if !classify.IsScannable(c.path, c.size, cfg.MaxBytes) {
		return nil
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil
	}

	var kept []types.Finding
	for _, f := range detect.Detect(string(data), rel, opts) {
		if f.Severity.Rank() >= cfg.MinSeverity.Rank() {
			kept = append(kept, f)
		}
	}
	return kept
}
