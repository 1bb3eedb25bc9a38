package gesture

import "time"

// TapConfig configures tap detection.
type TapConfig struct {
	// MaxDuration is the longest press that still counts as a tap.
	MaxDuration time.Duration

	// MaxDistance is the movement slop allowed between down and up.
	MaxDistance float64

	// RepeatTime is the maximum gap between taps of a repeat-tap run
	// (double tap, triple tap).
	RepeatTime time.Duration

	// RepeatDistance is how far apart taps of a repeat-tap run may be.
	RepeatDistance float64
}

// DefaultTapConfig returns tap detection defaults.
func DefaultTapConfig() TapConfig {
	return TapConfig{
		MaxDuration:    250 * time.Millisecond,
		MaxDistance:    8,
		RepeatTime:     400 * time.Millisecond,
		RepeatDistance: 16,
	}
}

// Tap recognizes taps and repeat taps (double, triple). The tap count
// wraps back to 1 after 3, so a quadruple tap reads as a fresh single
// tap.
type Tap struct {
	// OnTap is invoked on each completed tap with its position and the
	// repeat count (1, 2, or 3).
	OnTap func(pos Position, count int)

	cfg TapConfig

	// In-progress press state
	active   bool
	downPos  Position
	downTime time.Time

	// Last completed tap, for repeat detection
	lastPos   Position
	lastTime  time.Time
	lastCount int
}

// NewTap creates a tap recognizer.
func NewTap(cfg TapConfig) *Tap {
	return &Tap{cfg: cfg}
}

// Kind returns KindTap.
func (t *Tap) Kind() Kind { return KindTap }

// Handle feeds one pointer event to the recognizer.
func (t *Tap) Handle(ev Event) {
	switch ev.Phase {
	case PhaseDown:
		t.active = true
		t.downPos = ev.Pos
		t.downTime = ev.when()
	case PhaseMove:
		if t.active && ev.Pos.DistanceTo(t.downPos) > t.cfg.MaxDistance {
			t.active = false
		}
	case PhaseUp:
		if !t.active {
			return
		}
		t.active = false
		now := ev.when()
		if now.Sub(t.downTime) > t.cfg.MaxDuration {
			return
		}
		if ev.Pos.DistanceTo(t.downPos) > t.cfg.MaxDistance {
			return
		}
		t.record(ev.Pos, now)
		if t.OnTap != nil {
			t.OnTap(ev.Pos, t.lastCount)
		}
	}
}

// record updates the repeat-tap run.
func (t *Tap) record(pos Position, now time.Time) {
	if t.isPartOfRun(pos, now) {
		t.lastCount++
		if t.lastCount > 3 {
			t.lastCount = 1
		}
	} else {
		t.lastCount = 1
	}
	t.lastPos = pos
	t.lastTime = now
}

// isPartOfRun checks if a tap continues the current repeat-tap run.
func (t *Tap) isPartOfRun(pos Position, now time.Time) bool {
	if t.lastCount == 0 || t.lastTime.IsZero() {
		return false
	}
	// Clock skew reads as a new run.
	elapsed := now.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.cfg.RepeatTime {
		return false
	}
	return pos.DistanceTo(t.lastPos) <= t.cfg.RepeatDistance
}

// Reset clears all tap state, including the repeat-tap run.
func (t *Tap) Reset() {
	t.active = false
	t.downPos = Position{}
	t.downTime = time.Time{}
	t.lastPos = Position{}
	t.lastTime = time.Time{}
	t.lastCount = 0
}
