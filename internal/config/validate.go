package config

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

var validOnExisting = map[string]bool{
	OnExistingPrompt:    true,
	OnExistingOverwrite: true,
	OnExistingSkip:      true,
}

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	if cfg.OnExisting == "" {
		cfg.OnExisting = OnExistingPrompt
	}
	if !validOnExisting[cfg.OnExisting] {
		return fmt.Errorf("config: unknown on-existing policy %q (must be prompt, overwrite, or skip)", cfg.OnExisting)
	}

	for _, pattern := range cfg.Ignore {
		if pattern == "" {
			return fmt.Errorf("config: 'ignore' entries must be non-empty")
		}
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("config: invalid ignore pattern %q", pattern)
		}
	}

	if cfg.DebounceMS < 0 {
		return fmt.Errorf("config: debounce-ms must be >= 0")
	}
	if cfg.DebounceMS == 0 {
		cfg.DebounceMS = 500
	}

	return nil
}
