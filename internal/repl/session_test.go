package repl

import (
	"testing"

	"csvrepl/internal/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpreterSubmitRecordsHistory(t *testing.T) {
	in := NewInterpreter(testDataset())

	in.Submit("load_file a.csv")
	in.Submit("view")
	in.Submit("frobnicate")

	h := in.History()
	require.Equal(t, 3, h.Len())

	entries := h.Entries()
	assert.Equal(t, "load_file a.csv", entries[0].Command)
	assert.Equal(t, "view", entries[1].Command)
	assert.Equal(t, ErrInvalidCommand, entries[2].Result.Error)

	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, "frobnicate", last.Command)

	assert.Equal(t, "a.csv", in.State().LoadedFilename)
	assert.Equal(t, 3, in.State().SubmissionCount)
}

func TestHistoryEntriesIsACopy(t *testing.T) {
	var h History
	h.Append(HistoryEntry{Command: "mode"})

	entries := h.Entries()
	entries[0].Command = "changed"

	assert.Equal(t, "mode", h.Entries()[0].Command)
}

func TestHistoryLastEmpty(t *testing.T) {
	var h History
	_, ok := h.Last()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Len())
}

func TestInterpreterSetDatasetKeepsState(t *testing.T) {
	in := NewInterpreter(testDataset())
	in.SetVerbose(true)
	in.Submit("load_file a.csv")

	in.SetDataset(mock.NewDataset(
		map[string]mock.Response{"a.csv": {Status: 200, Table: [][]string{{"new"}}}},
		nil,
	))
	entry := in.Submit("view")

	assert.Equal(t, [][]string{{"new"}}, entry.Result.Table)
	assert.True(t, in.State().Verbose)
	assert.Equal(t, "200", in.History().Entries()[0].Result.Text())
}
