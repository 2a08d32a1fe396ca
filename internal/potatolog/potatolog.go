// Package potatolog provides a small in-memory sink for zerolog's JSON output,
// so that log entries can be shown in the terminal view or inspected in tests.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// LogEntry is a single decoded log entry.
type LogEntry = map[string]any

// GlobalMemoryLog is the memory log shared by the terminal view.
var GlobalMemoryLog = NewMemoryLog(256)

// MemoryLog is an in-memory log writer and reader which keeps the most recent
// entries up to its capacity.
type MemoryLog struct {
	mtx      sync.Mutex
	log      []LogEntry
	capacity int
}

// NewMemoryLog returns a pointer to a new empty MemoryLog keeping at most
// capacity entries. A capacity of zero or less keeps all entries.
func NewMemoryLog(capacity int) *MemoryLog {
	return &MemoryLog{
		log:      []LogEntry{},
		capacity: capacity,
	}
}

// Write decodes a JSON log entry and appends it to the log.
func (w *MemoryLog) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	if w.capacity > 0 && len(w.log) > w.capacity {
		w.log = w.log[len(w.log)-w.capacity:]
	}
	return len(p), nil
}

// Get returns a copy of the log.
func (w *MemoryLog) Get() []LogEntry {
	return w.Tail(0)
}

// Tail returns a copy of the last n entries, or of all entries if n is zero or
// less.
func (w *MemoryLog) Tail(n int) []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	start := 0
	if n > 0 && len(w.log) > n {
		start = len(w.log) - n
	}
	result := make([]LogEntry, len(w.log)-start)
	copy(result, w.log[start:])
	return result
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
	Tail(n int) []LogEntry
}
