// Package engine drives the scan: it enumerates candidate files under a
// root, runs the line matcher over them with bounded concurrency, and
// aggregates findings and stats.
package engine
