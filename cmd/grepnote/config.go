package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Core   CoreConfig  `toml:"core"`
	Colors ColorConfig `toml:"colors"`
}

type CoreConfig struct {
	Prefix      string `toml:"prefix"`
	Highlight   string `toml:"highlight"`
	CheckExists bool   `toml:"check_exists"`
	StripANSI   bool   `toml:"strip_ansi"`
	MaxWidth    int    `toml:"max_width"`
}

type ColorConfig struct {
	Path      string `toml:"path"`
	Row       string `toml:"row"`
	Column    string `toml:"column"`
	Highlight string `toml:"highlight"`
}

// NewDefaultConfig mirrors the reference palette: yellow path, blue row,
// green column, red highlight.
func NewDefaultConfig() *Config {
	return &Config{
		Core: CoreConfig{
			Prefix:      "",
			Highlight:   "",
			CheckExists: false,
			StripANSI:   false,
			MaxWidth:    -1,
		},
		Colors: ColorConfig{
			Path:      "yellow",
			Row:       "blue",
			Column:    "green",
			Highlight: "red",
		},
	}
}

func LoadConfigFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil // no config file, return defaults
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to decode TOML config: %w", err)
	}

	return config, nil
}
