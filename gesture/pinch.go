package gesture

import "math"

// minPinchSpan guards the scale ratio against a degenerate zero-width
// starting span.
const minPinchSpan = 1e-6

// PinchConfig configures pinch detection.
type PinchConfig struct {
	// MinScaleDelta is how far from 1.0 the scale must move before the
	// pinch activates.
	MinScaleDelta float64
}

// DefaultPinchConfig returns pinch defaults.
func DefaultPinchConfig() PinchConfig {
	return PinchConfig{MinScaleDelta: 0.02}
}

// Pinch recognizes two-pointer pinch and rotate gestures. Events must
// carry the second contact point in Event.Second; events without it are
// ignored while a pinch is possible.
type Pinch struct {
	// OnPinch is invoked per move once active, with the cumulative
	// scale (current span / starting span) and the rotation from the
	// starting angle in radians.
	OnPinch func(scale, rotation float64)

	// OnEnd is invoked on release of an active pinch with the final
	// scale.
	OnEnd func(scale float64)

	cfg PinchConfig

	tracking   bool
	active     bool
	startSpan  float64
	startAngle float64
	scale      float64
}

// NewPinch creates a pinch recognizer.
func NewPinch(cfg PinchConfig) *Pinch {
	return &Pinch{cfg: cfg, scale: 1}
}

// Kind returns KindPinch.
func (p *Pinch) Kind() Kind { return KindPinch }

// Handle feeds one pointer event to the recognizer.
func (p *Pinch) Handle(ev Event) {
	switch ev.Phase {
	case PhaseDown:
		if ev.Second == nil {
			p.Reset()
			return
		}
		span := ev.Pos.DistanceTo(*ev.Second)
		if span < minPinchSpan {
			p.Reset()
			return
		}
		p.tracking = true
		p.active = false
		p.startSpan = span
		p.startAngle = angle(ev.Pos, *ev.Second)
		p.scale = 1
	case PhaseMove:
		if !p.tracking || ev.Second == nil {
			return
		}
		p.scale = ev.Pos.DistanceTo(*ev.Second) / p.startSpan
		if !p.active {
			if math.Abs(p.scale-1) < p.cfg.MinScaleDelta {
				return
			}
			p.active = true
		}
		if p.OnPinch != nil {
			p.OnPinch(p.scale, angle(ev.Pos, *ev.Second)-p.startAngle)
		}
	case PhaseUp:
		wasActive := p.active
		scale := p.scale
		p.tracking = false
		p.active = false
		if wasActive && p.OnEnd != nil {
			p.OnEnd(scale)
		}
	}
}

// angle returns the angle of the segment from a to b in radians.
func angle(a, b Position) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// Scale returns the current cumulative scale.
func (p *Pinch) Scale() float64 { return p.scale }

// Active reports whether a pinch is in progress.
func (p *Pinch) Active() bool { return p.active }

// Reset clears all pinch state.
func (p *Pinch) Reset() {
	p.tracking = false
	p.active = false
	p.startSpan = 0
	p.startAngle = 0
	p.scale = 1
}
