package tui

import (
	"strings"
	"testing"

	"csvrepl/internal/config"
	"csvrepl/internal/repl"
)

func TestRenderEntrySimple(t *testing.T) {
	r := NewRenderer(config.DefaultConfig())

	tests := []struct {
		name     string
		entry    repl.HistoryEntry
		expected string
	}{
		{
			name:     "status",
			entry:    repl.HistoryEntry{Command: "load_file stars.csv", Result: repl.Result{Status: "200"}},
			expected: "200",
		},
		{
			name:     "error",
			entry:    repl.HistoryEntry{Command: "view", Result: repl.Result{Error: repl.ErrCSVNotLoaded}},
			expected: "error-csv-not-loaded",
		},
		{
			name:     "mode",
			entry:    repl.HistoryEntry{Command: "mode", Result: repl.Result{Message: "Mode: verbose"}},
			expected: "Mode: verbose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Entry(tt.entry, false)
			if !strings.Contains(got, tt.expected) {
				t.Errorf("Entry() = %q, want it to contain %q", got, tt.expected)
			}
			if strings.Contains(got, tt.entry.Command) && tt.entry.Command != tt.expected {
				t.Errorf("simple mode should not show the command, got %q", got)
			}
		})
	}
}

func TestRenderEntryVerbose(t *testing.T) {
	r := NewRenderer(config.DefaultConfig())
	entry := repl.HistoryEntry{Command: "load_file stars.csv", Result: repl.Result{Status: "200"}}

	got := r.Entry(entry, true)
	if !strings.Contains(got, "Command: load_file stars.csv") {
		t.Errorf("expected command line, got %q", got)
	}
	if !strings.Contains(got, "Output: 200") {
		t.Errorf("expected output line, got %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	r := NewRenderer(config.DefaultConfig())
	res := repl.Result{
		Status:  "200",
		Table:   [][]string{{"StarID", "ProperName"}, {"0", "Sol"}, {"1"}},
		Tabular: true,
	}

	got := r.Output(res)
	for _, cell := range []string{"StarID", "ProperName", "Sol"} {
		if !strings.Contains(got, cell) {
			t.Errorf("expected table to contain %q, got:\n%s", cell, got)
		}
	}
	if strings.Contains(got, "200") {
		t.Errorf("tabular output should not show the status, got:\n%s", got)
	}
}

func TestRenderEmptyTable(t *testing.T) {
	r := NewRenderer(config.DefaultConfig())
	got := r.Output(repl.Result{Status: "200", Table: [][]string{}, Tabular: true})
	if !strings.Contains(got, "(no rows)") {
		t.Errorf("expected empty table marker, got %q", got)
	}
}

func TestRenderHistoryOrder(t *testing.T) {
	r := NewRenderer(config.DefaultConfig())
	entries := []repl.HistoryEntry{
		{Command: "mode", Result: repl.Result{Message: "Mode: verbose"}},
		{Command: "mode", Result: repl.Result{Message: "Mode: simple"}},
	}

	got := r.History(entries, false)
	first := strings.Index(got, "Mode: verbose")
	second := strings.Index(got, "Mode: simple")
	if first < 0 || second < 0 || first > second {
		t.Errorf("expected entries in submission order, got %q", got)
	}
}

func TestNewThemeFallback(t *testing.T) {
	if got := NewTheme("latte").Name(); got != "latte" {
		t.Errorf("expected latte theme, got %q", got)
	}
	if got := NewTheme("nonexistent").Name(); got != "mocha" {
		t.Errorf("expected fallback to mocha, got %q", got)
	}
}

func TestThemeColor(t *testing.T) {
	theme := NewTheme("mocha")
	if theme.Color("red") == theme.Color("green") {
		t.Error("expected distinct colors for red and green")
	}
	if theme.Color("no-such-color") != theme.Color("text") {
		t.Error("unknown color names should fall back to text")
	}
}
