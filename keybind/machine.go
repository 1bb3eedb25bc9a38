package keybind

import (
	"sync"
	"time"

	"github.com/dshills/inputkit/key"
	"github.com/dshills/inputkit/sched"
)

// Match is one pattern completion produced by a key event.
type Match struct {
	// Label is the canonical pattern label, e.g. "Control+a b c".
	Label string
}

// tracker holds match progress for one pattern.
type tracker struct {
	pattern key.Pattern

	// keys is the flattened member list; one incoming event satisfies
	// exactly one entry.
	keys []string

	// progress counts satisfied leading entries of keys.
	progress int

	// timer resets progress when the gap between events exceeds the
	// sequence timeout. Non-nil only while progress > 0 on a multi-key
	// pattern.
	timer sched.Timer

	// gen is bumped on every advance and reset. A timeout captures the
	// gen it was scheduled under and is a no-op if the tracker has
	// moved on since.
	gen uint64
}

// Machine evaluates key events against a set of pattern trackers. One
// logical owner calls Process; the only other entry point is the
// sequence timeout, which is serialized with Process by the machine's
// mutex.
type Machine struct {
	mu       sync.Mutex
	sched    sched.Scheduler
	timeout  time.Duration
	trackers []*tracker
	closed   bool
}

// NewMachine creates a machine for the given patterns. A timeout of
// zero lets sequence steps be separated by unbounded time.
func NewMachine(patterns []key.Pattern, timeout time.Duration, scheduler sched.Scheduler) *Machine {
	if scheduler == nil {
		scheduler = sched.New()
	}
	return &Machine{
		sched:    scheduler,
		timeout:  timeout,
		trackers: newTrackers(patterns),
	}
}

func newTrackers(patterns []key.Pattern) []*tracker {
	trackers := make([]*tracker, 0, len(patterns))
	for _, p := range patterns {
		t := &tracker{pattern: p}
		if p.Matchable() {
			t.keys = p.Keys()
		}
		trackers = append(trackers, t)
	}
	return trackers
}

// Process evaluates one raw key against every tracker in specification
// order and returns the patterns it completed. Multiple trackers may
// fire from the same event.
func (m *Machine) Process(rawKey string) []Match {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	var matches []Match
	for _, t := range m.trackers {
		if m.step(t, rawKey) {
			matches = append(matches, Match{Label: t.pattern.Label})
		}
	}
	return matches
}

// step advances, resets, or fires a single tracker. Caller holds the
// lock. Returns true when the pattern completed.
func (m *Machine) step(t *tracker, rawKey string) bool {
	if len(t.keys) == 0 {
		// Degenerate pattern, never matches.
		return false
	}

	expected := t.keys[t.progress]
	if expected != rawKey && expected != key.Wildcard {
		m.reset(t)
		return false
	}

	t.progress++
	t.gen++
	m.stopTimer(t)

	if t.progress == len(t.keys) {
		// Fire-then-reset in the same turn; a completed pattern must
		// not stay armed for the next event.
		t.progress = 0
		return true
	}

	if m.timeout > 0 {
		gen := t.gen
		t.timer = m.sched.AfterFunc(m.timeout, func() {
			m.expire(t, gen)
		})
	}
	return false
}

// expire is the timeout callback. It resets the tracker only if the
// tracker has not advanced or reset since the timeout was scheduled.
func (m *Machine) expire(t *tracker, gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed || t.gen != gen {
		return
	}
	t.progress = 0
	t.gen++
	t.timer = nil
}

// reset clears a tracker's progress and cancels its pending timeout.
// Caller holds the lock.
func (m *Machine) reset(t *tracker) {
	t.progress = 0
	t.gen++
	m.stopTimer(t)
}

// stopTimer clears the previous timeout handle before a new one can be
// installed, so a stale handle can never fire against newer progress.
// Caller holds the lock.
func (m *Machine) stopTimer(t *tracker) {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// Rebuild replaces every tracker wholesale from a new pattern list,
// discarding all progress and pending timeouts.
func (m *Machine) Rebuild(patterns []key.Pattern) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	for _, t := range m.trackers {
		m.reset(t)
	}
	m.trackers = newTrackers(patterns)
}

// Labels returns the canonical label of every pattern in specification
// order, including degenerate ones.
func (m *Machine) Labels() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	labels := make([]string, len(m.trackers))
	for i, t := range m.trackers {
		labels[i] = t.pattern.Label
	}
	return labels
}

// Close cancels every pending timeout and makes further Process calls
// no-ops. Close is idempotent.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true
	for _, t := range m.trackers {
		m.stopTimer(t)
	}
}
