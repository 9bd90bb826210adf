package repl

// History is the append-only list of submitted commands and their results
type History struct {
	entries []HistoryEntry
}

// Append adds an entry after all existing entries
func (h *History) Append(e HistoryEntry) {
	h.entries = append(h.entries, e)
}

// Entries returns the entries in submission order.
// The returned slice is a copy; past entries can't be changed through it.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.entries)
}

// Last returns the most recent entry
func (h *History) Last() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	return h.entries[len(h.entries)-1], true
}
