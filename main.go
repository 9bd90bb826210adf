package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"csvrepl/internal/config"
	"csvrepl/internal/logging"
	"csvrepl/internal/mock"
	"csvrepl/internal/repl"
	"csvrepl/internal/tui"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// CLI defines the command-line interface using Kong
var CLI struct {
	Config   string `name:"config" short:"c" help:"Config file (default: search standard locations)" type:"path"`
	Fixtures string `name:"fixtures" short:"f" help:"Fixture file (YAML or JSON); overrides the config" type:"path"`
	Verbose  bool   `name:"verbose" short:"v" help:"Start in verbose mode"`
	LogFile  string `name:"log-file" help:"Write diagnostics to this file" type:"path"`
	LogLevel string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`

	TUI          TUICmd      `cmd:"" default:"1" help:"Run the interactive REPL"`
	Run          RunCmd      `cmd:"" help:"Run commands from a file (or stdin) and print the history"`
	DumpFixtures FixturesCmd `cmd:"" name:"dump-fixtures" help:"Print the active fixtures as YAML"`
}

// app carries what every subcommand needs
type app struct {
	cfg       *config.Config
	dataset   *mock.Dataset
	logger    *slog.Logger
	sessionID string
}

// TUICmd runs the interactive REPL
type TUICmd struct {
	NoWatch bool `name:"no-watch" help:"Don't reload the fixture file when it changes"`
}

func (c *TUICmd) Run(a *app) error {
	var watcher *mock.Watcher
	if a.cfg.Fixtures != "" && a.cfg.WatchFixtures && !c.NoWatch {
		w, err := mock.NewWatcher(a.cfg.Fixtures)
		if err != nil {
			a.logger.Warn("fixture watch disabled", "path", a.cfg.Fixtures, "error", err)
		} else {
			watcher = w
			watcher.Start()
			defer func() { _ = watcher.Stop() }()
		}
	}

	m := tui.NewModel(tui.ModelOptions{
		Config:    a.cfg,
		Dataset:   a.dataset,
		Watcher:   watcher,
		Logger:    a.logger,
		SessionID: a.sessionID,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// RunCmd interprets one command per input line and prints each entry
type RunCmd struct {
	File string `arg:"" optional:"" default:"-" help:"Command file, or - for stdin"`
}

func (c *RunCmd) Run(a *app) error {
	in := io.Reader(os.Stdin)
	if c.File != "-" {
		f, err := os.Open(c.File) //nolint:gosec // path supplied by the user
		if err != nil {
			return fmt.Errorf("open command file: %w", err)
		}
		defer f.Close()
		in = f
	}

	return runScript(in, os.Stdout, a)
}

// runScript feeds each line of r to a fresh interpreter and writes the rendered entries to w
func runScript(r io.Reader, w io.Writer, a *app) error {
	logger := a.logger.With("session_id", a.sessionID)
	interp := repl.NewInterpreter(a.dataset)
	interp.SetVerbose(a.cfg.Verbose)
	renderer := tui.NewRenderer(a.cfg)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		entry := interp.Submit(scanner.Text())
		state := interp.State()
		logger.Debug("command submitted",
			"submission", state.SubmissionCount,
			"command", entry.Command,
			"error_kind", string(entry.Result.Error),
		)

		if _, err := fmt.Fprintln(w, renderer.Entry(entry, state.Verbose)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

// FixturesCmd prints the active fixtures, a starting point for a custom fixture file
type FixturesCmd struct{}

func (c *FixturesCmd) Run(a *app) error {
	data, err := mock.Marshal(a.dataset)
	if err != nil {
		return fmt.Errorf("encode fixtures: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

// setup loads config, fixtures, and logging shared by every subcommand
func setup() (*app, func(), error) {
	cleanup := func() {}

	level, err := logging.ParseLevel(CLI.LogLevel)
	if err != nil {
		return nil, cleanup, err
	}
	if CLI.LogFile != "" {
		f, err := logging.OpenFile(CLI.LogFile, level, logging.FormatText)
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = func() { _ = f.Close() }
	}

	var cfg *config.Config
	if CLI.Config != "" {
		cfg, err = config.Load(CLI.Config)
	} else {
		cfg, err = config.LoadFromDefaultPath()
	}
	if err != nil {
		return nil, cleanup, fmt.Errorf("load config: %w", err)
	}

	if CLI.Fixtures != "" {
		cfg.Fixtures = CLI.Fixtures
	}
	if CLI.Verbose {
		cfg.Verbose = true
	}

	dataset := mock.Default()
	if cfg.Fixtures != "" {
		dataset, err = mock.LoadFile(cfg.Fixtures)
		if err != nil {
			return nil, cleanup, err
		}
	}

	sessionID := uuid.NewString()
	logger := logging.Logger()
	logger.Info("session started", "session_id", sessionID, "fixtures", cfg.Fixtures, "theme", cfg.Theme)

	return &app{
		cfg:       cfg,
		dataset:   dataset,
		logger:    logger,
		sessionID: sessionID,
	}, cleanup, nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("csvrepl"),
		kong.Description("A REPL for mocked CSV load, view, and search commands."),
		kong.UsageOnError(),
	)

	a, cleanup, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = ctx.Run(a)
	cleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
