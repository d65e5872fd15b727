package flow

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/afero"
)

// Level classifies a journal entry.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Entry is one timestamped line of the session activity log.
type Entry struct {
	ID      string    `json:"id"`
	Time    time.Time `json:"time"`
	Level   Level     `json:"level"`
	Message string    `json:"message"`
}

// Journal is the append-only activity log for one flow session. Entries
// are only ever appended or cleared, never edited.
type Journal struct {
	mu      sync.Mutex
	entries []Entry
	entropy io.Reader
	now     func() time.Time
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

func (j *Journal) append(level Level, format string, args ...any) Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	now := j.now()
	e := Entry{
		ID:      ulid.MustNew(ulid.Timestamp(now), j.entropy).String(),
		Time:    now,
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	}
	j.entries = append(j.entries, e)
	return e
}

// Infof appends an informational entry.
func (j *Journal) Infof(format string, args ...any) Entry {
	return j.append(LevelInfo, format, args...)
}

// Successf appends a success entry.
func (j *Journal) Successf(format string, args ...any) Entry {
	return j.append(LevelSuccess, format, args...)
}

// Warnf appends a warning entry.
func (j *Journal) Warnf(format string, args ...any) Entry {
	return j.append(LevelWarning, format, args...)
}

// Errorf appends an error entry.
func (j *Journal) Errorf(format string, args ...any) Entry {
	return j.append(LevelError, format, args...)
}

// Clear discards all entries and records that the log was cleared.
func (j *Journal) Clear() {
	j.mu.Lock()
	j.entries = nil
	j.mu.Unlock()
	j.Infof("log cleared")
}

// Entries returns a copy of all entries in append order.
func (j *Journal) Entries() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of entries.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

// Since returns the entries appended after the first n. It is used by
// the UI to print only what is new after each action.
func (j *Journal) Since(n int) []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	if n < 0 {
		n = 0
	}
	if n >= len(j.entries) {
		return nil
	}
	out := make([]Entry, len(j.entries)-n)
	copy(out, j.entries[n:])
	return out
}

// Export writes the journal as NDJSON, one entry per line.
func (j *Journal) Export(fs afero.Fs, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create journal directory: %w", err)
		}
	}
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create journal file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, e := range j.Entries() {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("encode journal entry: %w", err)
		}
	}
	return nil
}
