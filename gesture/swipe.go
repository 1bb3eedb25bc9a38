package gesture

import (
	"math"
	"time"
)

// Direction is a cardinal swipe direction.
type Direction uint8

const (
	// DirNone indicates no direction.
	DirNone Direction = iota
	// DirUp indicates an upward swipe (decreasing Y).
	DirUp
	// DirDown indicates a downward swipe.
	DirDown
	// DirLeft indicates a leftward swipe.
	DirLeft
	// DirRight indicates a rightward swipe.
	DirRight
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// SwipeConfig configures swipe detection.
type SwipeConfig struct {
	// MinDistance is the minimum travel between down and up.
	MinDistance float64

	// MaxDuration is the longest interaction that still counts as a
	// swipe.
	MaxDuration time.Duration

	// MinVelocity is the minimum average speed in units per second.
	MinVelocity float64
}

// DefaultSwipeConfig returns swipe defaults.
func DefaultSwipeConfig() SwipeConfig {
	return SwipeConfig{
		MinDistance: 30,
		MaxDuration: 600 * time.Millisecond,
		MinVelocity: 100,
	}
}

// Swipe recognizes quick directional flicks, evaluated on release.
type Swipe struct {
	// OnSwipe is invoked when a release qualifies, with the dominant
	// direction and the average velocity in units per second.
	OnSwipe func(dir Direction, velocity float64)

	cfg SwipeConfig

	pressed  bool
	downPos  Position
	downTime time.Time
}

// NewSwipe creates a swipe recognizer.
func NewSwipe(cfg SwipeConfig) *Swipe {
	return &Swipe{cfg: cfg}
}

// Kind returns KindSwipe.
func (s *Swipe) Kind() Kind { return KindSwipe }

// Handle feeds one pointer event to the recognizer.
func (s *Swipe) Handle(ev Event) {
	switch ev.Phase {
	case PhaseDown:
		s.pressed = true
		s.downPos = ev.Pos
		s.downTime = ev.when()
	case PhaseUp:
		if !s.pressed {
			return
		}
		s.pressed = false

		dist := ev.Pos.DistanceTo(s.downPos)
		if dist < s.cfg.MinDistance {
			return
		}
		elapsed := ev.when().Sub(s.downTime)
		if elapsed <= 0 || elapsed > s.cfg.MaxDuration {
			return
		}
		velocity := dist / elapsed.Seconds()
		if velocity < s.cfg.MinVelocity {
			return
		}
		if s.OnSwipe != nil {
			s.OnSwipe(direction(ev.Pos.Sub(s.downPos)), velocity)
		}
	}
}

// direction returns the dominant axis direction of a displacement.
func direction(delta Position) Direction {
	if math.Abs(delta.X) >= math.Abs(delta.Y) {
		if delta.X >= 0 {
			return DirRight
		}
		return DirLeft
	}
	if delta.Y >= 0 {
		return DirDown
	}
	return DirUp
}

// Reset clears all swipe state.
func (s *Swipe) Reset() {
	s.pressed = false
	s.downPos = Position{}
	s.downTime = time.Time{}
}
