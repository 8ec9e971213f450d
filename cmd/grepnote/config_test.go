package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadConfigFromFile failed: %v", err)
	}

	defaults := NewDefaultConfig()
	if *config != *defaults {
		t.Errorf("Expected defaults %+v, got %+v", defaults, config)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[core]
highlight = "todo"
check_exists = true

[colors]
path = "cyan"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	config, err := LoadConfigFromFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFromFile failed: %v", err)
	}

	if config.Core.Highlight != "todo" {
		t.Errorf("Expected highlight 'todo', got %q", config.Core.Highlight)
	}
	if !config.Core.CheckExists {
		t.Errorf("Expected check_exists to be set")
	}
	if config.Core.MaxWidth != -1 {
		t.Errorf("Expected default max_width -1, got %d", config.Core.MaxWidth)
	}
	if config.Colors.Path != "cyan" {
		t.Errorf("Expected path color 'cyan', got %q", config.Colors.Path)
	}
	if config.Colors.Row != "blue" {
		t.Errorf("Expected default row color 'blue', got %q", config.Colors.Row)
	}
}

func TestLoadConfigInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("core = ["), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := LoadConfigFromFile(path); err == nil {
		t.Errorf("Expected error for malformed config")
	}
}
