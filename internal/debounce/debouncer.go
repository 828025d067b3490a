// Package debounce coalesces bursts of input into one delayed commit.
//
// A Debouncer never runs callbacks itself. Schedule hands back a tea.Cmd that
// delivers a CommitMsg after the quiet period, and the owning model asks
// Accept whether that message is still the current one. A superseded or
// post-teardown commit is silently dropped, so only the Bubble Tea update
// loop ever touches state.
package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is the quiet period used when none is configured
const DefaultDelay = 300 * time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// CommitMsg is delivered when a quiet period elapses
type CommitMsg struct {
	id    int
	seq   uint64
	Value string
}

// Debouncer tracks the single outstanding commit of one owner
type Debouncer struct {
	id      int
	delay   time.Duration
	seq     uint64
	pending *CommitMsg
	closed  bool
}

// New creates a debouncer. Non-positive delays use DefaultDelay.
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{
		id:    nextID(),
		delay: delay,
	}
}

// Delay returns the quiet period
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Schedule supersedes any outstanding commit and arms a new one carrying
// value. It returns nil once the debouncer has been cancelled.
func (d *Debouncer) Schedule(value string) tea.Cmd {
	if d.closed {
		return nil
	}

	d.seq++
	msg := CommitMsg{id: d.id, seq: d.seq, Value: value}
	d.pending = &msg

	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return msg
	})
}

// Owns reports whether msg was produced by this debouncer
func (d *Debouncer) Owns(msg CommitMsg) bool {
	return msg.id == d.id
}

// Accept consumes msg if it is the outstanding commit and returns its value
func (d *Debouncer) Accept(msg CommitMsg) (string, bool) {
	if d.closed || d.pending == nil {
		return "", false
	}
	if msg.id != d.id || msg.seq != d.pending.seq {
		return "", false
	}
	d.pending = nil
	return msg.Value, true
}

// Pending returns the outstanding commit, if any
func (d *Debouncer) Pending() (CommitMsg, bool) {
	if d.pending == nil {
		return CommitMsg{}, false
	}
	return *d.pending, true
}

// CancelAll drops the outstanding commit and refuses all future ones
func (d *Debouncer) CancelAll() {
	d.closed = true
	d.pending = nil
}

// Cancelled reports whether CancelAll was called
func (d *Debouncer) Cancelled() bool {
	return d.closed
}
