package keybind

import (
	"testing"
	"time"

	"github.com/dshills/inputkit/key"
	"github.com/dshills/inputkit/sched"
)

// recordScheduler captures scheduled callbacks so tests can run them at
// will, including ones that were already stopped, to simulate a timer
// callback already in flight when it was cancelled.
type recordScheduler struct {
	timers []*recordTimer
}

type recordTimer struct {
	fn      func()
	stopped bool
}

func (s *recordScheduler) AfterFunc(_ time.Duration, fn func()) sched.Timer {
	t := &recordTimer{fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (t *recordTimer) Stop() bool {
	was := t.stopped
	t.stopped = true
	return !was
}

func newTestMachine(timeout time.Duration, specs ...string) (*Machine, *recordScheduler) {
	rs := &recordScheduler{}
	return NewMachine(key.ParsePatterns(specs...), timeout, rs), rs
}

func labels(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Label
	}
	return out
}

func TestSingleKeyFire(t *testing.T) {
	m, _ := newTestMachine(time.Second, "a")

	matches := m.Process("a")
	if len(matches) != 1 || matches[0].Label != "a" {
		t.Fatalf("Process(%q) = %v, want one match with label %q", "a", labels(matches), "a")
	}
	if got := m.Process("b"); len(got) != 0 {
		t.Errorf("Process(%q) = %v, want no matches", "b", labels(got))
	}
	// Fire-then-reset: the same key fires again.
	if got := m.Process("a"); len(got) != 1 {
		t.Errorf("second Process(%q) = %v, want one match", "a", labels(got))
	}
}

func TestChordFire(t *testing.T) {
	m, _ := newTestMachine(time.Second, "A+B")

	if got := m.Process("a"); len(got) != 0 {
		t.Fatalf("first chord member fired early: %v", labels(got))
	}
	matches := m.Process("b")
	if len(matches) != 1 || matches[0].Label != "a+b" {
		t.Fatalf("chord completion = %v, want label %q", labels(matches), "a+b")
	}
}

func TestSequenceFire(t *testing.T) {
	m, _ := newTestMachine(500*time.Millisecond, "a b c")

	m.Process("a")
	m.Process("b")
	matches := m.Process("c")
	if len(matches) != 1 || matches[0].Label != "a b c" {
		t.Fatalf("sequence completion = %v, want label %q", labels(matches), "a b c")
	}
}

func TestSequenceTimeoutResets(t *testing.T) {
	ms := sched.NewManual()
	m := NewMachine(key.ParsePatterns("a b c"), 500*time.Millisecond, ms)

	m.Process("a")
	ms.Advance(100 * time.Millisecond)
	m.Process("b")
	ms.Advance(600 * time.Millisecond) // timeout fires, tracker resets

	if got := m.Process("c"); len(got) != 0 {
		t.Fatalf("fired after timeout reset: %v", labels(got))
	}

	// A fresh full delivery within the window fires once.
	m.Process("a")
	ms.Advance(100 * time.Millisecond)
	m.Process("b")
	ms.Advance(100 * time.Millisecond)
	if got := m.Process("c"); len(got) != 1 {
		t.Fatalf("fresh delivery = %v, want one match", labels(got))
	}
}

func TestWrongOrderResets(t *testing.T) {
	m, _ := newTestMachine(time.Second, "a b c")

	m.Process("a")
	if got := m.Process("c"); len(got) != 0 {
		t.Fatalf("skipping a step fired: %v", labels(got))
	}

	m.Process("a")
	m.Process("b")
	if got := m.Process("c"); len(got) != 1 {
		t.Fatalf("full delivery after reset = %v, want one match", labels(got))
	}
}

func TestWildcard(t *testing.T) {
	m, _ := newTestMachine(time.Second, "Any+Any")

	m.Process("x")
	matches := m.Process("y")
	if len(matches) != 1 || matches[0].Label != "Any+Any" {
		t.Fatalf("wildcard chord = %v, want label %q", labels(matches), "Any+Any")
	}

	// Single wildcard fires on anything.
	m2, _ := newTestMachine(time.Second, "Any")
	if got := m2.Process("Enter"); len(got) != 1 {
		t.Errorf("wildcard single = %v, want one match", labels(got))
	}
}

func TestMultiplePatternsIndependent(t *testing.T) {
	m, _ := newTestMachine(time.Second, "a", "b c")

	matches := m.Process("a")
	if len(matches) != 1 || matches[0].Label != "a" {
		t.Fatalf("first pattern = %v, want label %q", labels(matches), "a")
	}

	m.Process("b")
	matches = m.Process("c")
	if len(matches) != 1 || matches[0].Label != "b c" {
		t.Fatalf("second pattern = %v, want label %q", labels(matches), "b c")
	}
}

func TestMultipleFiresFromOneEvent(t *testing.T) {
	m, _ := newTestMachine(time.Second, "a", "Any")

	matches := m.Process("a")
	if got := labels(matches); len(got) != 2 || got[0] != "a" || got[1] != "Any" {
		t.Fatalf("one event = %v, want both patterns in specification order", got)
	}
}

func TestDegeneratePatternNeverDestabilizes(t *testing.T) {
	m, _ := newTestMachine(time.Second, "a+", "a", "")

	matches := m.Process("a")
	if len(matches) != 1 || matches[0].Label != "a" {
		t.Fatalf("sibling of degenerate patterns = %v, want just %q", labels(matches), "a")
	}
}

func TestStaleTimeoutIsNoOp(t *testing.T) {
	m, rs := newTestMachine(time.Second, "a b")

	m.Process("a")
	if len(rs.timers) != 1 {
		t.Fatalf("scheduled %d timers, want 1", len(rs.timers))
	}
	stale := rs.timers[0]

	matches := m.Process("b")
	if len(matches) != 1 {
		t.Fatalf("completion = %v, want one match", labels(matches))
	}

	// The timeout callback was already in flight when the tracker
	// advanced past it; running it now must not reset newer progress.
	stale.fn()
	m.Process("a")
	if got := m.Process("b"); len(got) != 1 {
		t.Errorf("delivery after stale timeout = %v, want one match", labels(got))
	}
}

func TestStaleTimeoutDoesNotResetNewerProgress(t *testing.T) {
	m, rs := newTestMachine(time.Second, "a b c")

	m.Process("a")
	stale := rs.timers[0]
	m.Process("b") // replaces the timeout

	stale.fn() // in-flight stale callback
	if got := m.Process("c"); len(got) != 1 {
		t.Errorf("stale timeout reset newer progress: %v", labels(got))
	}
}

func TestNoTimeoutWhenZero(t *testing.T) {
	m, rs := newTestMachine(0, "a b")

	m.Process("a")
	if len(rs.timers) != 0 {
		t.Fatalf("scheduled %d timers with zero timeout, want none", len(rs.timers))
	}
	if got := m.Process("b"); len(got) != 1 {
		t.Errorf("unbounded sequence = %v, want one match", labels(got))
	}
}

func TestSingleKeyNeverSchedules(t *testing.T) {
	m, rs := newTestMachine(time.Second, "a")
	m.Process("a")
	if len(rs.timers) != 0 {
		t.Errorf("single-key pattern scheduled %d timers, want none", len(rs.timers))
	}
}

func TestRebuildDiscardsProgress(t *testing.T) {
	m, _ := newTestMachine(time.Second, "a b")

	m.Process("a")
	m.Rebuild(key.ParsePatterns("a b"))
	if got := m.Process("b"); len(got) != 0 {
		t.Fatalf("progress survived Rebuild: %v", labels(got))
	}
	m.Process("a")
	if got := m.Process("b"); len(got) != 1 {
		t.Errorf("delivery after Rebuild = %v, want one match", labels(got))
	}
}

func TestCloseCancelsTimers(t *testing.T) {
	ms := sched.NewManual()
	m := NewMachine(key.ParsePatterns("a b"), time.Second, ms)

	m.Process("a")
	if ms.Pending() != 1 {
		t.Fatalf("pending timers = %d, want 1", ms.Pending())
	}
	m.Close()
	if ms.Pending() != 0 {
		t.Errorf("pending timers after Close = %d, want 0", ms.Pending())
	}
	if got := m.Process("a"); got != nil {
		t.Errorf("Process after Close = %v, want nil", labels(got))
	}
}
