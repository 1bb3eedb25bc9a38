package gesture

import (
	"sync"
	"time"

	"github.com/dshills/inputkit/sched"
)

// WheelEvent is one scroll wheel tick.
type WheelEvent struct {
	// DeltaX is the horizontal scroll amount.
	DeltaX float64

	// DeltaY is the vertical scroll amount.
	DeltaY float64

	// Time is when the tick occurred.
	Time time.Time
}

// WheelConfig configures wheel burst detection.
type WheelConfig struct {
	// EndAfter is the quiet period that ends a scroll burst.
	EndAfter time.Duration
}

// DefaultWheelConfig returns wheel defaults.
func DefaultWheelConfig() WheelConfig {
	return WheelConfig{EndAfter: 150 * time.Millisecond}
}

// Wheel groups scroll ticks into bursts. A burst starts on the first
// tick after quiet and ends when no tick arrives within the configured
// quiet period; the end is detected by a scheduled timeout, so OnEnd
// runs on the scheduler's goroutine.
type Wheel struct {
	// OnStart is invoked on the first tick of a burst.
	OnStart func()

	// OnScroll is invoked per tick with the tick deltas and the burst
	// totals so far.
	OnScroll func(dx, dy, totalX, totalY float64)

	// OnEnd is invoked when the burst goes quiet, with the burst
	// totals.
	OnEnd func(totalX, totalY float64)

	cfg       WheelConfig
	scheduler sched.Scheduler

	mu     sync.Mutex
	active bool
	totalX float64
	totalY float64
	timer  sched.Timer
	gen    uint64
}

// NewWheel creates a wheel recognizer. A nil scheduler uses the
// standard clock.
func NewWheel(cfg WheelConfig, scheduler sched.Scheduler) *Wheel {
	if scheduler == nil {
		scheduler = sched.New()
	}
	return &Wheel{cfg: cfg, scheduler: scheduler}
}

// Kind returns KindWheel. Wheel consumes WheelEvents rather than
// pointer Events and is not mounted in a pointer Hook.
func (w *Wheel) Kind() Kind { return KindWheel }

// HandleWheel feeds one scroll tick to the recognizer.
func (w *Wheel) HandleWheel(ev WheelEvent) {
	w.mu.Lock()

	started := !w.active
	w.active = true
	w.totalX += ev.DeltaX
	w.totalY += ev.DeltaY
	totalX, totalY := w.totalX, w.totalY

	w.gen++
	if w.timer != nil {
		w.timer.Stop()
	}
	gen := w.gen
	w.timer = w.scheduler.AfterFunc(w.cfg.EndAfter, func() {
		w.expire(gen)
	})

	onStart := w.OnStart
	onScroll := w.OnScroll
	w.mu.Unlock()

	if started && onStart != nil {
		onStart()
	}
	if onScroll != nil {
		onScroll(ev.DeltaX, ev.DeltaY, totalX, totalY)
	}
}

// expire is the quiet-period callback ending the burst.
func (w *Wheel) expire(gen uint64) {
	w.mu.Lock()
	if !w.active || w.gen != gen {
		w.mu.Unlock()
		return
	}
	totalX, totalY := w.totalX, w.totalY
	w.clearLocked()
	fn := w.OnEnd
	w.mu.Unlock()

	if fn != nil {
		fn(totalX, totalY)
	}
}

// clearLocked resets burst state. Caller holds the lock.
func (w *Wheel) clearLocked() {
	w.active = false
	w.totalX = 0
	w.totalY = 0
	w.timer = nil
}

// Active reports whether a burst is in progress.
func (w *Wheel) Active() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.active
}

// Reset ends any burst without invoking OnEnd and cancels the pending
// quiet-period timer.
func (w *Wheel) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.gen++
	if w.timer != nil {
		w.timer.Stop()
	}
	w.clearLocked()
}
