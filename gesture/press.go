package gesture

import (
	"sync"
	"time"

	"github.com/dshills/inputkit/sched"
)

// PressConfig configures long-press detection.
type PressConfig struct {
	// HoldTime is how long the pointer must stay down before the press
	// fires.
	HoldTime time.Duration

	// MaxDistance is the movement slop allowed during the hold.
	MaxDistance float64
}

// DefaultPressConfig returns long-press defaults.
func DefaultPressConfig() PressConfig {
	return PressConfig{
		HoldTime:    500 * time.Millisecond,
		MaxDistance: 8,
	}
}

// Press recognizes long presses. The press fires from a scheduled
// timeout while the pointer is still down, so callbacks run on the
// scheduler's goroutine; the mutex serializes them with Handle.
type Press struct {
	// OnPress is invoked once when the hold threshold elapses.
	OnPress func(pos Position)

	// OnRelease is invoked when a fired press ends, with the total
	// hold duration.
	OnRelease func(pos Position, held time.Duration)

	cfg       PressConfig
	scheduler sched.Scheduler

	mu       sync.Mutex
	active   bool
	fired    bool
	downPos  Position
	downTime time.Time
	timer    sched.Timer
	gen      uint64
}

// NewPress creates a long-press recognizer. A nil scheduler uses the
// standard clock.
func NewPress(cfg PressConfig, scheduler sched.Scheduler) *Press {
	if scheduler == nil {
		scheduler = sched.New()
	}
	return &Press{cfg: cfg, scheduler: scheduler}
}

// Kind returns KindPress.
func (p *Press) Kind() Kind { return KindPress }

// Handle feeds one pointer event to the recognizer.
func (p *Press) Handle(ev Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch ev.Phase {
	case PhaseDown:
		p.cancelLocked()
		p.active = true
		p.fired = false
		p.downPos = ev.Pos
		p.downTime = ev.when()
		gen := p.gen
		p.timer = p.scheduler.AfterFunc(p.cfg.HoldTime, func() {
			p.expire(gen)
		})
	case PhaseMove:
		if p.active && !p.fired && ev.Pos.DistanceTo(p.downPos) > p.cfg.MaxDistance {
			p.cancelLocked()
		}
	case PhaseUp:
		fired := p.fired
		downTime := p.downTime
		p.cancelLocked()
		if fired && p.OnRelease != nil {
			p.OnRelease(ev.Pos, ev.when().Sub(downTime))
		}
	}
}

// expire is the hold timeout callback.
func (p *Press) expire(gen uint64) {
	p.mu.Lock()
	if !p.active || p.gen != gen {
		p.mu.Unlock()
		return
	}
	p.fired = true
	p.timer = nil
	pos := p.downPos
	fn := p.OnPress
	p.mu.Unlock()

	if fn != nil {
		fn(pos)
	}
}

// cancelLocked stops the pending timer and deactivates the hold.
// Caller holds the lock.
func (p *Press) cancelLocked() {
	p.gen++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.active = false
	p.fired = false
}

// Reset clears all press state and cancels any pending hold timer.
func (p *Press) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelLocked()
	p.downPos = Position{}
	p.downTime = time.Time{}
}
