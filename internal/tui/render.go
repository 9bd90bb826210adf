package tui

import (
	"strings"

	"csvrepl/internal/config"
	"csvrepl/internal/repl"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Renderer turns history entries into styled text
type Renderer struct {
	theme  Theme
	styles *config.Config
}

// NewRenderer creates a renderer using the theme and result styles from cfg
func NewRenderer(cfg *config.Config) Renderer {
	return Renderer{
		theme:  NewTheme(cfg.Theme),
		styles: cfg,
	}
}

// Theme returns the renderer's theme
func (r Renderer) Theme() Theme {
	return r.theme
}

// Entry renders one history entry.
// Verbose mode labels the command and the output; simple mode shows only the output.
func (r Renderer) Entry(e repl.HistoryEntry, verbose bool) string {
	output := r.Output(e.Result)
	if !verbose {
		return output
	}

	var b strings.Builder
	b.WriteString(r.theme.Label.Render("Command: "))
	b.WriteString(r.theme.Command.Render(e.Command))
	b.WriteString("\n")
	b.WriteString(r.theme.Label.Render("Output: "))
	if strings.Contains(output, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(output)
	return b.String()
}

// History renders all entries in submission order, separated by blank lines
func (r Renderer) History(entries []repl.HistoryEntry, verbose bool) string {
	if len(entries) == 0 {
		return r.theme.Muted.Render("No commands yet. Try: load_file stars.csv")
	}

	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = r.Entry(e, verbose)
	}
	return strings.Join(parts, "\n\n")
}

// Output renders a result as either a table or a line of text
func (r Renderer) Output(res repl.Result) string {
	if res.Tabular && !res.Failed() {
		return r.Table(res.Table)
	}

	text := res.Text()
	return r.textStyle(text).Render(text)
}

// Table renders rows of cells with a rounded border
func (r Renderer) Table(rows [][]string) string {
	if len(rows) == 0 {
		return r.theme.Muted.Render("(no rows)")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.theme.TableEdge).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return r.theme.TableCell
		}).
		Rows(rows...)

	return t.Render()
}

// textStyle picks the configured result style for text
func (r Renderer) textStyle(text string) lipgloss.Style {
	style := r.styles.StyleFor(text)
	if style == nil {
		return lipgloss.NewStyle().Foreground(r.theme.Color("text"))
	}

	s := lipgloss.NewStyle().Foreground(r.theme.Color(style.Color))
	if style.Bold {
		s = s.Bold(true)
	}
	return s
}
