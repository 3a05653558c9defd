package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Existing-file policies for the write sink.
const (
	OnExistingPrompt    = "prompt"
	OnExistingOverwrite = "overwrite"
	OnExistingSkip      = "skip"
)

type Config struct {
	OutputDir  string   `yaml:"output-dir"`
	OnExisting string   `yaml:"on-existing"`
	Ignore     []string `yaml:"ignore"`
	DebounceMS int      `yaml:"debounce-ms"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		OutputDir:  ".",
		OnExisting: OnExistingPrompt,
		DebounceMS: 500,
	}
}

// Load reads a YAML config file and returns a validated Config. A missing
// file is not an error: the tool works flag-only, so defaults are returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
