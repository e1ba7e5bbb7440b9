// Package transcript models the chat widget's conversation state: an
// append-only log of entries plus the lifecycle of pending "thinking"
// placeholders, independent of any rendering layer.
package transcript

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Entry is one visible transcript line. A bot entry starts out Thinking and
// is resolved exactly once; user entries are final from the start.
type Entry struct {
	ID       string
	Sender   Sender
	Text     string
	Thinking bool
}

// Transcript is the append-only log. Entries are never reordered or deleted;
// the only in-place mutation is the one-shot resolution of a pending entry.
type Transcript struct {
	mu      sync.Mutex
	entries []Entry
	pending map[string]int // placeholder ID -> index into entries
	seq     uint64
	now     func() time.Time
}

func New() *Transcript {
	return &Transcript{
		pending: make(map[string]int),
		now:     time.Now,
	}
}

// Submit trims the input and, if anything remains, appends a user entry and
// a pending placeholder. It returns the placeholder ID. Whitespace-only
// input is silently ignored and ok is false.
func (t *Transcript) Submit(input string) (id string, ok bool) {
	text := strings.TrimSpace(input)
	if text == "" {
		return "", false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	id = fmt.Sprintf("bot-thinking-%d-%d", t.now().UnixMilli(), t.seq)

	t.entries = append(t.entries, Entry{Sender: SenderUser, Text: text})
	t.entries = append(t.entries, Entry{ID: id, Sender: SenderBot, Thinking: true})
	t.pending[id] = len(t.entries) - 1

	return id, true
}

// Resolve clears the placeholder's thinking state and sets its final text,
// formatted for display. A placeholder resolves at most once; unknown or
// already-resolved IDs return false.
func (t *Transcript) Resolve(id, text string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx, exists := t.pending[id]
	if !exists {
		return false
	}
	delete(t.pending, id)

	t.entries[idx].Thinking = false
	t.entries[idx].Text = Format(text)
	return true
}

// PendingCount reports how many placeholders are still awaiting a response.
func (t *Transcript) PendingCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}

// Entries returns a snapshot of the transcript in order.
func (t *Transcript) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
