// Package configloader provides configuration loading and resolution.
package configloader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/snifftrap/pkg/config"
)

// projectConfigName is the config file discovered in the working directory.
const projectConfigName = ".snifftrap.yml"

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory searched for the project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped and the file must exist.
	ExplicitPath string
}

// Load resolves the final configuration. Precedence (highest to lowest):
//  1. Explicit config file (opts.ExplicitPath)
//  2. Project config (.snifftrap.yml in the working directory)
//  3. Defaults
//
// CLI flags are applied by the caller on top of the result.
func Load(opts LoadOptions) (config.Config, error) {
	cfg := config.Default()

	path := opts.ExplicitPath
	if path == "" {
		dir := opts.WorkingDir
		if dir == "" {
			var err error
			if dir, err = os.Getwd(); err != nil {
				return cfg, fmt.Errorf("get working directory: %w", err)
			}
		}
		path = filepath.Join(dir, projectConfigName)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
	}

	if err := loadFile(path, &cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// loadFile decodes a YAML config file over cfg. Unknown keys are rejected so
// typos surface instead of being silently ignored.
func loadFile(path string, cfg *config.Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
