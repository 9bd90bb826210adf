package tui

import (
	"strings"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the lipgloss styles derived from a catppuccin flavor
type Theme struct {
	flavor catppuccin.Flavor

	Title      lipgloss.Style
	Status     lipgloss.Style
	Legend     lipgloss.Style
	Prompt     lipgloss.Style
	Button     lipgloss.Style
	InputBox   lipgloss.Style
	HistoryBox lipgloss.Style
	Command    lipgloss.Style
	Label      lipgloss.Style
	Muted      lipgloss.Style
	Error      lipgloss.Style
	Help       lipgloss.Style
	TableCell  lipgloss.Style
	TableEdge  lipgloss.Style
}

// NewTheme builds a theme for the named flavor, defaulting to mocha
func NewTheme(name string) Theme {
	flavor := catppuccin.Variant(name)
	if flavor == nil {
		flavor = catppuccin.Mocha
	}

	t := Theme{flavor: flavor}
	c := t.Color

	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(c("mauve"))

	t.Status = lipgloss.NewStyle().
		Foreground(c("subtext0"))

	t.Legend = lipgloss.NewStyle().
		Foreground(c("subtext1")).
		Bold(true)

	t.Prompt = lipgloss.NewStyle().
		Foreground(c("mauve"))

	t.Button = lipgloss.NewStyle().
		Bold(true).
		Background(c("mauve")).
		Foreground(c("base")).
		Padding(0, 2)

	t.InputBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c("mauve")).
		Padding(0, 1)

	t.HistoryBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c("surface2")).
		Padding(0, 1)

	t.Command = lipgloss.NewStyle().
		Foreground(c("blue")).
		Bold(true)

	t.Label = lipgloss.NewStyle().
		Foreground(c("overlay1"))

	t.Muted = lipgloss.NewStyle().
		Foreground(c("overlay0")).
		Italic(true)

	t.Error = lipgloss.NewStyle().
		Foreground(c("red")).
		Bold(true)

	t.Help = lipgloss.NewStyle().
		Foreground(c("overlay1"))

	t.TableCell = lipgloss.NewStyle().
		Foreground(c("text")).
		Padding(0, 1)

	t.TableEdge = lipgloss.NewStyle().
		Foreground(c("surface2"))

	return t
}

// Name returns the flavor name
func (t Theme) Name() string {
	return t.flavor.Name()
}

// Color resolves a catppuccin color name (e.g. "red", "overlay1") in this flavor.
// Unknown names fall back to the text color.
func (t Theme) Color(name string) lipgloss.Color {
	f := t.flavor
	var col catppuccin.Color

	switch strings.ToLower(name) {
	case "rosewater":
		col = f.Rosewater()
	case "flamingo":
		col = f.Flamingo()
	case "pink":
		col = f.Pink()
	case "mauve":
		col = f.Mauve()
	case "red":
		col = f.Red()
	case "maroon":
		col = f.Maroon()
	case "peach":
		col = f.Peach()
	case "yellow":
		col = f.Yellow()
	case "green":
		col = f.Green()
	case "teal":
		col = f.Teal()
	case "sky":
		col = f.Sky()
	case "sapphire":
		col = f.Sapphire()
	case "blue":
		col = f.Blue()
	case "lavender":
		col = f.Lavender()
	case "subtext1":
		col = f.Subtext1()
	case "subtext0":
		col = f.Subtext0()
	case "overlay2":
		col = f.Overlay2()
	case "overlay1":
		col = f.Overlay1()
	case "overlay0":
		col = f.Overlay0()
	case "surface2":
		col = f.Surface2()
	case "surface1":
		col = f.Surface1()
	case "surface0":
		col = f.Surface0()
	case "base":
		col = f.Base()
	case "mantle":
		col = f.Mantle()
	case "crust":
		col = f.Crust()
	default:
		col = f.Text()
	}

	return lipgloss.Color(col.Hex)
}
