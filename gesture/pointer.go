package gesture

import (
	"math"
	"time"
)

// Phase identifies the stage of a pointer interaction.
type Phase uint8

const (
	// PhaseDown is the initial pointer contact.
	PhaseDown Phase = iota
	// PhaseMove is pointer movement while down.
	PhaseMove
	// PhaseUp is the pointer release.
	PhaseUp
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	default:
		return "unknown"
	}
}

// Position is a pointer location in host coordinates.
type Position struct {
	X float64
	Y float64
}

// DistanceTo returns the Euclidean distance to another position.
func (p Position) DistanceTo(o Position) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return math.Hypot(dx, dy)
}

// Sub returns the componentwise difference p - o.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Event is one pointer event.
type Event struct {
	// Phase is the interaction stage.
	Phase Phase

	// Pos is the primary pointer position.
	Pos Position

	// Second is the second contact point, set only for two-pointer
	// interactions (pinch).
	Second *Position

	// Time is when the event occurred. Recognizers fall back to
	// time.Now when zero.
	Time time.Time
}

// when returns the event time, defaulting a zero timestamp to now.
func (e Event) when() time.Time {
	if e.Time.IsZero() {
		return time.Now()
	}
	return e.Time
}
