// Package repl interprets REPL command lines against mocked CSV fixtures.
package repl

import (
	"strings"

	"csvrepl/internal/mock"
)

// Command names recognised by the interpreter
const (
	CmdMode     = "mode"
	CmdLoadFile = "load_file"
	CmdSearch   = "search"
	CmdView     = "view"
)

const (
	msgEnterCommand = "Please enter your command then press submit"
	msgLoadUsage    = "Usage: load_file <filename>"
	msgModeVerbose  = "Mode: verbose"
	msgModeSimple   = "Mode: simple"
)

// Interpret runs one raw command line against state and ds.
// It always returns exactly one history entry; failures are reported in the
// entry's Result, never as a Go error. state is not modified in place.
func Interpret(raw string, state SessionState, ds Dataset) (SessionState, HistoryEntry) {
	state.SubmissionCount++

	words := tokenize(raw)
	next, result := dispatch(words, state, ds)

	return next, HistoryEntry{Command: raw, Result: result}
}

// tokenize splits a command line on whitespace, with no quoting or escaping
func tokenize(raw string) []string {
	return strings.Fields(raw)
}

// dispatch selects the command handler from the first word
func dispatch(words []string, state SessionState, ds Dataset) (SessionState, Result) {
	if len(words) == 0 {
		return state, failure(ErrInvalidCommand, msgEnterCommand)
	}

	switch words[0] {
	case CmdMode:
		return toggleMode(state)
	case CmdLoadFile:
		return loadFile(words, state, ds)
	case CmdSearch:
		return state, search(words, state, ds)
	case CmdView:
		return state, view(state, ds)
	default:
		return state, failure(ErrInvalidCommand, msgEnterCommand)
	}
}

func toggleMode(state SessionState) (SessionState, Result) {
	state.Verbose = !state.Verbose
	if state.Verbose {
		return state, Result{Message: msgModeVerbose}
	}
	return state, Result{Message: msgModeSimple}
}

func loadFile(words []string, state SessionState, ds Dataset) (SessionState, Result) {
	if len(words) != 2 {
		return state, failure(ErrInvalidCommand, msgLoadUsage)
	}

	filename := words[1]
	resp, ok := ds.LoadView(filename)
	if !ok {
		return state, failure(ErrRequestNotInMock, "")
	}

	state.LoadedFilename = filename
	return state, Result{
		Status: resp.StatusText(),
		Table:  resp.Table,
	}
}

func search(words []string, state SessionState, ds Dataset) Result {
	resp, ok := lookupSearch(words, ds)
	if !ok {
		return failure(ErrRequestNotInMock, "")
	}
	if !state.FileLoaded() {
		return failure(ErrCSVNotLoaded, "")
	}

	return Result{
		Status:  resp.StatusText(),
		Table:   resp.Table,
		Tabular: true,
	}
}

// lookupSearch resolves "search <term>" directly and "search <col> <term>"
// by the combined key. A two-word search never reads past the term.
func lookupSearch(words []string, ds Dataset) (mock.Response, bool) {
	switch {
	case len(words) == 2:
		return ds.Search(words[1])
	case len(words) >= 3:
		return ds.Search(words[1] + " " + words[2])
	default:
		return mock.Response{}, false
	}
}

func view(state SessionState, ds Dataset) Result {
	if !state.FileLoaded() {
		return failure(ErrCSVNotLoaded, "")
	}

	resp, ok := ds.LoadView(state.LoadedFilename)
	if !ok {
		return failure(ErrCSVNotLoaded, "")
	}

	return Result{
		Status:  resp.StatusText(),
		Table:   resp.Table,
		Tabular: true,
	}
}

func failure(kind ErrorKind, message string) Result {
	return Result{
		Error:   kind,
		Message: message,
		Table:   [][]string{},
	}
}
