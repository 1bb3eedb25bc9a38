package sched

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Scheduler driven by explicit Advance calls instead of the
// wall clock. It exists for deterministic tests of timeout behavior.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

// NewManual creates a manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc implements Scheduler.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTimer{
		m:        m,
		deadline: m.now + d,
		fn:       fn,
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward and runs every due callback in
// deadline order. Callbacks run on the caller's goroutine, outside the
// scheduler's lock, so they may schedule or stop timers.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	var due []*manualTimer
	var rest []*manualTimer
	for _, t := range m.timers {
		if !t.stopped && t.deadline <= m.now {
			// Marked stopped so a later Stop reports it already ran.
			t.stopped = true
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	m.timers = rest
	m.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].deadline < due[j].deadline })
	for _, t := range due {
		t.fn()
	}
}

// Pending returns the number of scheduled, unstopped callbacks.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

type manualTimer struct {
	m        *Manual
	deadline time.Duration
	fn       func()
	stopped  bool
}

// Stop implements Timer.
func (t *manualTimer) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}
