package tui

import (
	"log/slog"

	"csvrepl/internal/config"
	"csvrepl/internal/logging"
	"csvrepl/internal/mock"
	"csvrepl/internal/repl"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ModelOptions configures a new Model
type ModelOptions struct {
	Config    *config.Config // nil uses config.DefaultConfig()
	Dataset   *mock.Dataset  // nil uses mock.Default()
	Watcher   *mock.Watcher  // optional fixture hot reload
	Logger    *slog.Logger   // nil uses logging.Logger()
	SessionID string         // tags log records
}

// Model represents the application state
type Model struct {
	// Session state, owned here and threaded through repl.Interpret
	state   repl.SessionState
	history []repl.HistoryEntry
	dataset repl.Dataset

	// Previously submitted commands for up/down recall
	recall    []string
	recallIdx int

	// UI components
	input       textinput.Model
	historyView viewport.Model
	renderer    Renderer

	watcher *mock.Watcher
	logger  *slog.Logger

	// Last fixture reload result, shown under the input
	status    string
	statusErr bool

	// UI dimensions
	width  int
	height int
}

// NewModel creates a new Model with initialized state
func NewModel(opts ModelOptions) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	var ds repl.Dataset = mock.Default()
	if opts.Dataset != nil {
		ds = opts.Dataset
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Logger()
	}
	if opts.SessionID != "" {
		logger = logger.With("session_id", opts.SessionID)
	}

	renderer := NewRenderer(cfg)

	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	ti.PromptStyle = renderer.Theme().Prompt
	ti.Placeholder = cfg.Placeholder
	ti.Focus()

	m := Model{
		state:       repl.SessionState{Verbose: cfg.Verbose},
		dataset:     ds,
		input:       ti,
		historyView: viewport.New(0, 0),
		renderer:    renderer,
		watcher:     opts.Watcher,
		logger:      logger,
	}

	return m.refreshHistory()
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.watchFixturesCmd(),
	)
}

// Message types
type (
	fixturesReloadedMsg *mock.Dataset   // Fixture file changed and parsed
	fixturesErrorMsg    struct{ error } // Fixture file changed but failed to load
)

// watchFixturesCmd waits for the next fixture reload
func (m Model) watchFixturesCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case ds := <-m.watcher.Events:
			return fixturesReloadedMsg(ds)
		case err := <-m.watcher.Errors:
			return fixturesErrorMsg{err}
		}
	}
}

// submit interprets the current input and appends the result to history
func (m Model) submit() Model {
	raw := m.input.Value()

	var entry repl.HistoryEntry
	m.state, entry = repl.Interpret(raw, m.state, m.dataset)
	m.history = append(m.history, entry)

	m.logger.Debug("command submitted",
		"submission", m.state.SubmissionCount,
		"command", raw,
		"error_kind", string(entry.Result.Error),
		"loaded_file", m.state.LoadedFilename,
		"verbose", m.state.Verbose,
	)

	if raw != "" {
		m.recall = append(m.recall, raw)
	}
	m.recallIdx = len(m.recall)

	m.input.Reset()
	m = m.refreshHistory()
	m.historyView.GotoBottom()
	return m
}

// recallPrevious puts the previous submitted command into the input
func (m Model) recallPrevious() Model {
	if m.recallIdx == 0 {
		return m
	}
	m.recallIdx--
	m.input.SetValue(m.recall[m.recallIdx])
	m.input.CursorEnd()
	return m
}

// recallNext moves forward through submitted commands, ending on an empty input
func (m Model) recallNext() Model {
	if m.recallIdx >= len(m.recall) {
		return m
	}
	m.recallIdx++
	if m.recallIdx == len(m.recall) {
		m.input.Reset()
		return m
	}
	m.input.SetValue(m.recall[m.recallIdx])
	m.input.CursorEnd()
	return m
}

// refreshHistory re-renders history into the viewport
func (m Model) refreshHistory() Model {
	m.historyView.SetContent(m.renderer.History(m.history, m.state.Verbose))
	return m
}

// updateSizes updates component dimensions based on terminal size
func (m Model) updateSizes() Model {
	// Reserve space for header (2), history border (2), legend (1), input box (3), status (1), help (1)
	historyHeight := m.height - 10
	if historyHeight < 3 {
		historyHeight = 3
	}
	innerWidth := m.width - 4
	if innerWidth < 20 {
		innerWidth = 20
	}

	m.historyView.Width = innerWidth
	m.historyView.Height = historyHeight
	// Input box border and padding (4), spacer (1), submit button (10)
	inputWidth := innerWidth - lipgloss.Width(m.input.Prompt) - 15
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.input.Width = inputWidth

	m = m.refreshHistory()
	m.historyView.GotoBottom()
	return m
}

// State returns the current session state
func (m Model) State() repl.SessionState {
	return m.state
}

// History returns the submitted entries in order
func (m Model) History() []repl.HistoryEntry {
	out := make([]repl.HistoryEntry, len(m.history))
	copy(out, m.history)
	return out
}
