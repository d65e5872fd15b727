package flow

import (
	"bufio"
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalAppend(t *testing.T) {
	j := NewJournal()

	j.Infof("step %d started", 1)
	j.Successf("done")
	j.Warnf("pending")
	j.Errorf("boom")

	entries := j.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, LevelInfo, entries[0].Level)
	assert.Equal(t, "step 1 started", entries[0].Message)
	assert.Equal(t, LevelSuccess, entries[1].Level)
	assert.Equal(t, LevelWarning, entries[2].Level)
	assert.Equal(t, LevelError, entries[3].Level)

	for _, e := range entries {
		assert.NotEmpty(t, e.ID)
		assert.False(t, e.Time.IsZero())
	}
}

func TestJournalEntryIDsAreOrdered(t *testing.T) {
	j := NewJournal()
	a := j.Infof("first")
	b := j.Infof("second")

	// ULIDs from a monotonic source sort in append order.
	assert.Less(t, a.ID, b.ID)
}

func TestJournalClear(t *testing.T) {
	j := NewJournal()
	j.Infof("one")
	j.Infof("two")

	j.Clear()

	entries := j.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "log cleared", entries[0].Message)
}

func TestJournalSince(t *testing.T) {
	j := NewJournal()
	j.Infof("one")
	mark := j.Len()
	j.Infof("two")
	j.Infof("three")

	recent := j.Since(mark)
	require.Len(t, recent, 2)
	assert.Equal(t, "two", recent[0].Message)
	assert.Equal(t, "three", recent[1].Message)

	assert.Nil(t, j.Since(j.Len()))
	assert.Len(t, j.Since(-1), 3)
}

func TestJournalExport(t *testing.T) {
	j := NewJournal()
	j.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	j.Infof("hello")
	j.Errorf("world")

	fs := afero.NewMemMapFs()
	require.NoError(t, j.Export(fs, "var/journal.ndjson"))

	f, err := fs.Open("var/journal.ndjson")
	require.NoError(t, err)
	defer f.Close()

	var lines []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e Entry
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		lines = append(lines, e)
	}
	require.NoError(t, sc.Err())

	require.Len(t, lines, 2)
	assert.Equal(t, "hello", lines[0].Message)
	assert.Equal(t, LevelError, lines[1].Level)
}
