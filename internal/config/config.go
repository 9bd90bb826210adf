package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ResultStyle defines how matching result text is colored
type ResultStyle struct {
	// Name is the display name of this style
	Name string `yaml:"name"`

	// Color is the catppuccin color name (e.g., "red", "yellow", "green", "mauve")
	Color string `yaml:"color"`

	// Bold makes the text bold
	Bold bool `yaml:"bold"`

	// Patterns is a list of result text patterns this style applies to (supports wildcards)
	Patterns []string `yaml:"patterns"`
}

// Config holds the application configuration
type Config struct {
	// Theme is the color theme to use (mocha, macchiato, frappe, latte)
	Theme string `yaml:"theme"`

	// Fixtures is the path to a fixture file; empty uses the built-in fixtures
	Fixtures string `yaml:"fixtures"`

	// WatchFixtures reloads the fixture file when it changes
	WatchFixtures bool `yaml:"watch_fixtures"`

	// Verbose starts the session in verbose mode
	Verbose bool `yaml:"verbose"`

	// Prompt is shown before the command input
	Prompt string `yaml:"prompt"`

	// Placeholder is shown in the empty command input
	Placeholder string `yaml:"placeholder"`

	// ResultStyles color history output (checked in order, first match wins)
	ResultStyles []ResultStyle `yaml:"result_styles"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Theme:         "mocha",
		WatchFixtures: true,
		Prompt:        "> ",
		Placeholder:   "Enter command here!",
		ResultStyles: []ResultStyle{
			{
				Name:     "error",
				Color:    "red",
				Bold:     true,
				Patterns: []string{"error-*"},
			},
			{
				Name:     "mode",
				Color:    "mauve",
				Patterns: []string{"Mode: *"},
			},
			{
				Name:     "success",
				Color:    "green",
				Patterns: []string{"2*"},
			},
			{
				Name:     "client-error",
				Color:    "peach",
				Patterns: []string{"4*"},
			},
			{
				Name:     "unmatched",
				Color:    "text",
				Patterns: []string{"*"},
			},
		},
	}
}

// Load reads the config from a YAML file, falling back to defaults
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) //nolint:gosec // config path from known locations
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil // Use defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDefaultPath attempts to load config from standard locations
func LoadFromDefaultPath() (*Config, error) {
	// Check in order: current dir, ~/.config/csvrepl/, XDG_CONFIG_HOME
	paths := []string{
		"config.yaml",
		filepath.Join(os.Getenv("HOME"), ".config", "csvrepl", "config.yaml"),
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "csvrepl", "config.yaml"))
	}

	for _, path := range paths {
		cleanPath := filepath.Clean(path)
		if _, err := os.Stat(cleanPath); err == nil { //nolint:gosec // config path from known locations
			return Load(cleanPath)
		}
	}

	return DefaultConfig(), nil
}

// StyleFor returns the first result style matching text, or nil
func (c *Config) StyleFor(text string) *ResultStyle {
	for i := range c.ResultStyles {
		style := &c.ResultStyles[i]
		if style.Matches(text) {
			return style
		}
	}
	return nil
}

// Matches returns true if the text matches this style
func (s *ResultStyle) Matches(text string) bool {
	for _, p := range s.Patterns {
		if matchPattern(p, text) {
			return true
		}
	}
	return false
}

// matchPattern checks if a pattern matches (supports * wildcards)
func matchPattern(pattern, value string) bool {
	// Exact match
	if pattern == value {
		return true
	}

	// Wildcard match - supports single * anywhere in pattern
	// e.g., "error-*" matches "error-csv-not-loaded"
	if strings.Contains(pattern, "*") {
		parts := strings.SplitN(pattern, "*", 2)
		if len(parts) == 2 {
			prefix := parts[0]
			suffix := parts[1]
			return len(value) >= len(prefix)+len(suffix) &&
				strings.HasPrefix(value, prefix) && strings.HasSuffix(value, suffix)
		}
	}

	return false
}
