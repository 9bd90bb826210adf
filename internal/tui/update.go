package tui

import (
	"fmt"

	"csvrepl/internal/mock"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.updateSizes(), nil

	case tea.KeyMsg:
		// Match on key type so typed or pasted text like "up" is never a binding
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit(), nil
		case tea.KeyUp:
			return m.recallPrevious(), nil
		case tea.KeyDown:
			return m.recallNext(), nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.historyView, cmd = m.historyView.Update(msg)
			return m, cmd
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.historyView, cmd = m.historyView.Update(msg)
		return m, cmd

	case fixturesReloadedMsg:
		ds := (*mock.Dataset)(msg)
		m.dataset = ds
		loadView, search := ds.Size()
		m.status = fmt.Sprintf("Fixtures reloaded (%d files, %d searches)", loadView, search)
		m.statusErr = false
		m.logger.Info("fixtures reloaded", "load_view", loadView, "search", search)
		return m, m.watchFixturesCmd()

	case fixturesErrorMsg:
		m.status = fmt.Sprintf("Fixture reload failed: %v", msg.error)
		m.statusErr = true
		m.logger.Warn("fixture reload failed", "error", msg.error)
		return m, m.watchFixturesCmd()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
