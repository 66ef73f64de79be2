// Package config defines the configuration surface for the finding pipeline.
package config

import "fmt"

// Config holds the resolved configuration for one invocation.
type Config struct {
	// SourceRoots are base directories used to convert absolute paths found
	// in tool output into stable, relative paths.
	SourceRoots []string `yaml:"source_roots"`

	// Report is the path of the report file to write. Empty disables the
	// file report.
	Report string `yaml:"report"`

	// PrintSignatureNames prefixes each rendered finding with the analysis
	// profile that produced it.
	PrintSignatureNames bool `yaml:"print_signature_names"`

	// CacheMarker separates the build-cache prefix from the original
	// signature name in cache-built signature file names.
	CacheMarker string `yaml:"cache_marker"`

	// Color controls colorized output: "auto", "always", or "never".
	Color string `yaml:"color"`

	// LogLevel sets the logger verbosity: "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Color:    "auto",
		LogLevel: "info",
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode: %q (want auto, always, or never)", c.Color)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}
	return nil
}
