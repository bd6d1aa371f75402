// Package core is the stable embedding API for leakgrep. It re-exports the
// scan configuration, findings, and entrypoints so other programs can run
// scans without importing internal packages.
package core
