// Package history keeps an in-memory log of notifications that were shown,
// newest first, for display in the demo.
package history

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/oklog/ulid/v2"
)

// DefaultLimit is the number of entries kept when no limit is given.
const DefaultLimit = 20

// Entry is one shown notification.
type Entry struct {
	ID      ulid.ULID
	Message string
	ShownAt time.Time
}

// Describe renders the entry as "message (3 seconds ago)" relative to now.
func (e Entry) Describe(now time.Time) string {
	return fmt.Sprintf("%s (%s)", e.Message, humanize.RelTime(e.ShownAt, now, "ago", "from now"))
}

// Log is a bounded, newest-first notification log.
type Log struct {
	mu      sync.Mutex
	entries []Entry
	limit   int
	now     func() time.Time
	entropy *ulid.MonotonicEntropy
}

// New creates a log holding at most limit entries (DefaultLimit if <= 0).
func New(limit int) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Log{
		limit:   limit,
		now:     time.Now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Add records message as shown now and returns its entry.
func (l *Log) Add(message string) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e := Entry{
		ID:      ulid.MustNew(ulid.Timestamp(now), l.entropy),
		Message: message,
		ShownAt: now,
	}
	l.entries = append([]Entry{e}, l.entries...)
	if len(l.entries) > l.limit {
		clear(l.entries[l.limit:])
		l.entries = l.entries[:l.limit]
	}
	return e
}

// Recent returns up to n entries, newest first. n <= 0 returns all.
func (l *Log) Recent(n int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 || n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]Entry, n)
	copy(out, l.entries)
	return out
}

// Len returns the number of entries held.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Summary renders the newest n entries one per line.
func (l *Log) Summary(n int) string {
	entries := l.Recent(n)
	if len(entries) == 0 {
		return "No notifications yet."
	}
	now := l.now()
	var s string
	for i, e := range entries {
		if i > 0 {
			s += "\n"
		}
		s += e.Describe(now)
	}
	return s
}
