// Package config loads optional YAML configuration that supplies defaults
// below CLI flags.
package config
