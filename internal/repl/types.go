package repl

import "csvrepl/internal/mock"

// ErrorKind classifies a failed command. The zero value means success.
type ErrorKind string

const (
	ErrNone             ErrorKind = ""
	ErrInvalidCommand   ErrorKind = "invalid-command"     // Unknown command or empty input
	ErrRequestNotInMock ErrorKind = "request-not-in-mock" // Key has no fixture
	ErrCSVNotLoaded     ErrorKind = "csv-not-loaded"      // search/view before load_file
)

// Dataset is the read-only fixture source the interpreter looks requests up in
type Dataset interface {
	LoadView(filename string) (mock.Response, bool)
	Search(key string) (mock.Response, bool)
}

// SessionState is the state threaded between submissions.
// The zero value is the state at session start.
type SessionState struct {
	LoadedFilename  string // Empty until a load_file succeeds
	Verbose         bool   // Toggled by mode
	SubmissionCount int    // Diagnostics only
}

// FileLoaded reports whether a load_file has succeeded this session
func (s SessionState) FileLoaded() bool {
	return s.LoadedFilename != ""
}

// Result is the outcome of a single command
type Result struct {
	Error   ErrorKind  // ErrNone on success
	Message string     // Status or diagnostic text
	Status  string     // Fixture status code, when a fixture was hit
	Table   [][]string // Fixture table; empty for errors
	Tabular bool       // Display Table instead of the text
}

// Failed reports whether the command produced an error
func (r Result) Failed() bool {
	return r.Error != ErrNone
}

// Text returns the single-line form of the result, e.g. "error-csv-not-loaded"
func (r Result) Text() string {
	if r.Failed() {
		text := "error-" + string(r.Error)
		if r.Message != "" {
			text += ": " + r.Message
		}
		return text
	}
	if r.Message != "" {
		return r.Message
	}
	return r.Status
}

// HistoryEntry pairs a submitted command with its result
type HistoryEntry struct {
	Command string
	Result  Result
}
