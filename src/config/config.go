package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/sofmeright/badgekit/src/badge"
)

const (
	defaultConfigFile = ".badgekit.yml"
	defaultTOMLFile   = ".badgekit.toml"
)

// Config is the top-level badgekit configuration.
type Config struct {
	BaseURL *string                       `yaml:"base_url" toml:"base_url"` // nil = shields.io
	Style   *badge.Style                  `yaml:"style" toml:"style"`       // default style for items
	Theme   badge.ThemeKey                `yaml:"theme" toml:"theme"`       // default base theme for items
	Themes  map[string]*badge.ThemePreset `yaml:"themes" toml:"themes"`     // preset overrides; null removes (YAML only)
	Badges  []BadgeItem                   `yaml:"badges" toml:"badges"`
}

// Load reads configuration from a YAML or TOML file, chosen by extension.
// If path is empty, it tries .badgekit.yml and then .badgekit.toml.
// Returns defaults if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = findDefault()
		if path == "" {
			return defaults(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}

	cfg := defaults()
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Overrides returns the configuration-level badge overrides.
func (c *Config) Overrides() badge.Overrides {
	o := badge.Overrides{BaseURL: c.BaseURL}
	if len(c.Themes) > 0 {
		o.ThemePresets = make(map[badge.ThemeKey]*badge.ThemePreset, len(c.Themes))
		for name, preset := range c.Themes {
			o.ThemePresets[badge.ThemeKey(name)] = preset
		}
	}
	return o
}

func findDefault() string {
	for _, candidate := range []string{defaultConfigFile, defaultTOMLFile} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func defaults() *Config {
	return &Config{}
}
