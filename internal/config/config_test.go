package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != "mocha" {
		t.Errorf("expected default theme mocha, got %q", cfg.Theme)
	}
	if !cfg.WatchFixtures {
		t.Error("DefaultConfig should watch fixtures")
	}
	if cfg.Verbose {
		t.Error("DefaultConfig should start in simple mode")
	}
	if cfg.Fixtures != "" {
		t.Errorf("DefaultConfig should use built-in fixtures, got %q", cfg.Fixtures)
	}

	// Last style should catch everything
	if len(cfg.ResultStyles) == 0 {
		t.Fatal("DefaultConfig should have result styles")
	}
	last := cfg.ResultStyles[len(cfg.ResultStyles)-1]
	if !last.Matches("anything at all") {
		t.Error("last default style should match everything")
	}
}

func TestStyleFor(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		text     string
		expected string
	}{
		{"error-csv-not-loaded", "error"},
		{"error-invalid-command: Please enter your command then press submit", "error"},
		{"Mode: verbose", "mode"},
		{"Mode: simple", "mode"},
		{"200", "success"},
		{"404", "client-error"},
		{"something else", "unmatched"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			style := cfg.StyleFor(tt.text)
			if style == nil {
				t.Fatalf("StyleFor(%q) = nil", tt.text)
			}
			if style.Name != tt.expected {
				t.Errorf("StyleFor(%q) = %q, want %q", tt.text, style.Name, tt.expected)
			}
		})
	}
}

func TestStyleForNoMatch(t *testing.T) {
	cfg := &Config{
		ResultStyles: []ResultStyle{{Name: "only", Patterns: []string{"exact"}}},
	}
	if got := cfg.StyleFor("other"); got != nil {
		t.Errorf("expected nil style, got %q", got.Name)
	}
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern  string
		value    string
		expected bool
	}{
		{"exact", "exact", true},
		{"exact", "exactly", false},
		{"error-*", "error-csv-not-loaded", true},
		{"error-*", "Mode: simple", false},
		{"*", "", true},
		{"*.csv", "stars.csv", true},
		{"a*a", "a", false},
		{"a*a", "aa", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"_"+tt.value, func(t *testing.T) {
			result := matchPattern(tt.pattern, tt.value)
			if result != tt.expected {
				t.Errorf("matchPattern(%q, %q) = %v, want %v", tt.pattern, tt.value, result, tt.expected)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create a temp config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `theme: latte
fixtures: /tmp/fixtures.yaml
watch_fixtures: false
verbose: true
result_styles:
  - name: custom
    color: blue
    patterns:
      - "*"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Theme != "latte" {
		t.Errorf("Expected theme 'latte', got %q", cfg.Theme)
	}
	if cfg.Fixtures != "/tmp/fixtures.yaml" {
		t.Errorf("Expected fixtures path to be loaded, got %q", cfg.Fixtures)
	}
	if cfg.WatchFixtures {
		t.Error("Expected watch_fixtures to be false")
	}
	if !cfg.Verbose {
		t.Error("Expected verbose to be true")
	}
	if len(cfg.ResultStyles) != 1 || cfg.ResultStyles[0].Name != "custom" {
		t.Errorf("Expected single custom result style, got %+v", cfg.ResultStyles)
	}

	// Unset keys keep their defaults
	if cfg.Prompt != "> " {
		t.Errorf("Expected default prompt, got %q", cfg.Prompt)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("Load() should not error for missing file, got: %v", err)
	}

	// Should return defaults
	if len(cfg.ResultStyles) == 0 {
		t.Error("Should return default config with result styles")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("theme: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Load() should error for invalid YAML")
	}
}

func TestLoadFromDefaultPathXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	dir := filepath.Join(xdg, "csvrepl")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("theme: frappe\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDefaultPath()
	if err != nil {
		t.Fatalf("LoadFromDefaultPath() error = %v", err)
	}
	if cfg.Theme != "frappe" {
		t.Errorf("Expected theme from XDG config, got %q", cfg.Theme)
	}
}
