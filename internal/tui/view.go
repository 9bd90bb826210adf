package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// inputLabel names the command box, like an accessibility label
const inputLabel = "Command input"

// View renders the UI based on the model state
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	// Header with title and session summary
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// History pane
	b.WriteString(m.renderer.theme.HistoryBox.Render(m.historyView.View()))
	b.WriteString("\n")

	// Command box
	b.WriteString(m.renderInput())
	b.WriteString("\n")

	// Fixture status
	b.WriteString(m.renderStatus())
	b.WriteString("\n")

	// Help footer
	b.WriteString(m.renderHelp())

	return b.String()
}

// renderHeader renders the top header bar
func (m Model) renderHeader() string {
	theme := m.renderer.theme
	title := theme.Title.Render("CSV REPL")

	file := "no file loaded"
	if m.state.FileLoaded() {
		file = m.state.LoadedFilename
	}
	mode := "simple"
	if m.state.Verbose {
		mode = "verbose"
	}

	status := theme.Status.Render(fmt.Sprintf(
		"%s | mode: %s | %d commands",
		file,
		mode,
		m.state.SubmissionCount,
	))

	// Calculate spacing
	spacing := m.width - lipgloss.Width(title) - lipgloss.Width(status) - 4
	if spacing < 1 {
		spacing = 1
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		strings.Repeat(" ", spacing),
		status,
	)
}

// renderInput renders the legend, the command box, and the submit button
func (m Model) renderInput() string {
	theme := m.renderer.theme

	legend := theme.Legend.Render("Enter a command:") + " " + theme.Muted.Render(inputLabel)
	box := theme.InputBox.Render(m.input.View())
	button := theme.Button.Render("Submit")

	row := lipgloss.JoinHorizontal(lipgloss.Center, box, " ", button)
	return lipgloss.JoinVertical(lipgloss.Left, legend, row)
}

// renderStatus renders the last fixture reload result
func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return m.renderer.theme.Error.Render(m.status)
	}
	return m.renderer.theme.Status.Render(m.status)
}

// renderHelp renders the help footer
func (m Model) renderHelp() string {
	help := []string{
		"enter:submit",
		"↑/↓:recall",
		"pgup/pgdn:scroll",
		"esc:quit",
	}

	return m.renderer.theme.Help.Render(strings.Join(help, " | "))
}
