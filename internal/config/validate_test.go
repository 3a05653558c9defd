package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate_Defaults(t *testing.T) {
	cfg := &Config{}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.OutputDir != "." {
		t.Fatalf("expected default output-dir, got %q", cfg.OutputDir)
	}
	if cfg.OnExisting != OnExistingPrompt {
		t.Fatalf("expected default on-existing prompt, got %q", cfg.OnExisting)
	}
	if cfg.DebounceMS != 500 {
		t.Fatalf("expected default debounce 500, got %d", cfg.DebounceMS)
	}
}

func TestValidate_UnknownOnExisting(t *testing.T) {
	cfg := &Config{OnExisting: "ask-twice"}
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "on-existing") {
		t.Fatalf("expected on-existing error, got %v", err)
	}
}

func TestValidate_EmptyIgnorePattern(t *testing.T) {
	cfg := &Config{Ignore: []string{""}}
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "non-empty") {
		t.Fatalf("expected non-empty error, got %v", err)
	}
}

func TestValidate_BadIgnorePattern(t *testing.T) {
	cfg := &Config{Ignore: []string{"src/[unbalanced"}}
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "invalid ignore pattern") {
		t.Fatalf("expected pattern error, got %v", err)
	}
}

func TestValidate_NegativeDebounce(t *testing.T) {
	cfg := &Config{DebounceMS: -1}
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "debounce-ms") {
		t.Fatalf("expected debounce error, got %v", err)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ".carve.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OnExisting != OnExistingPrompt {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_ReadsAndValidates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".carve.yaml")
	content := "output-dir: generated\non-existing: skip\nignore:\n  - '**/*.min.js'\ndebounce-ms: 250\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "generated" {
		t.Fatalf("unexpected output-dir %q", cfg.OutputDir)
	}
	if cfg.OnExisting != OnExistingSkip {
		t.Fatalf("unexpected on-existing %q", cfg.OnExisting)
	}
	if len(cfg.Ignore) != 1 || cfg.Ignore[0] != "**/*.min.js" {
		t.Fatalf("unexpected ignore %v", cfg.Ignore)
	}
	if cfg.DebounceMS != 250 {
		t.Fatalf("unexpected debounce %d", cfg.DebounceMS)
	}
}

func TestLoad_RejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".carve.yaml")
	if err := os.WriteFile(path, []byte("on-existing: nope\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}
