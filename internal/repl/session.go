package repl

// Interpreter keeps a session's state and history between submissions.
// It is not safe for concurrent use; the UI loop calls it one submit at a time.
type Interpreter struct {
	state   SessionState
	dataset Dataset
	history History
}

// NewInterpreter creates an interpreter over ds with a fresh session
func NewInterpreter(ds Dataset) *Interpreter {
	return &Interpreter{dataset: ds}
}

// Submit interprets one command line and records the result in history
func (in *Interpreter) Submit(raw string) HistoryEntry {
	var entry HistoryEntry
	in.state, entry = Interpret(raw, in.state, in.dataset)
	in.history.Append(entry)
	return entry
}

// State returns the current session state
func (in *Interpreter) State() SessionState {
	return in.state
}

// SetVerbose sets the starting verbosity
func (in *Interpreter) SetVerbose(v bool) {
	in.state.Verbose = v
}

// History returns the session history
func (in *Interpreter) History() *History {
	return &in.history
}

// SetDataset swaps the fixtures used by later submissions.
// Session state and past entries are left alone.
func (in *Interpreter) SetDataset(ds Dataset) {
	in.dataset = ds
}
