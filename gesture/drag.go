package gesture

// DragConfig configures drag detection.
type DragConfig struct {
	// StartDistance is how far the pointer must move before the drag
	// activates. Movement below it reads as tap slop, not a drag.
	StartDistance float64
}

// DefaultDragConfig returns drag defaults.
func DefaultDragConfig() DragConfig {
	return DragConfig{StartDistance: 4}
}

// Drag recognizes pointer drags. It activates once movement exceeds the
// start distance and then reports every position until release.
type Drag struct {
	// OnStart is invoked when the drag activates, with the original
	// down position.
	OnStart func(start Position)

	// OnMove is invoked per move while active, with the current
	// position and the delta from the down position.
	OnMove func(pos Position, delta Position)

	// OnEnd is invoked on release of an active drag.
	OnEnd func(pos Position, delta Position)

	cfg DragConfig

	pressed bool
	active  bool
	start   Position
	current Position
}

// NewDrag creates a drag recognizer.
func NewDrag(cfg DragConfig) *Drag {
	return &Drag{cfg: cfg}
}

// Kind returns KindDrag.
func (d *Drag) Kind() Kind { return KindDrag }

// Handle feeds one pointer event to the recognizer.
func (d *Drag) Handle(ev Event) {
	switch ev.Phase {
	case PhaseDown:
		d.pressed = true
		d.active = false
		d.start = ev.Pos
		d.current = ev.Pos
	case PhaseMove:
		if !d.pressed {
			return
		}
		d.current = ev.Pos
		if !d.active {
			if ev.Pos.DistanceTo(d.start) < d.cfg.StartDistance {
				return
			}
			d.active = true
			if d.OnStart != nil {
				d.OnStart(d.start)
			}
		}
		if d.OnMove != nil {
			d.OnMove(ev.Pos, ev.Pos.Sub(d.start))
		}
	case PhaseUp:
		wasActive := d.active
		pos := ev.Pos
		delta := pos.Sub(d.start)
		d.pressed = false
		d.active = false
		if wasActive && d.OnEnd != nil {
			d.OnEnd(pos, delta)
		}
	}
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool { return d.active }

// Delta returns the offset from the down position to the current one.
func (d *Drag) Delta() Position { return d.current.Sub(d.start) }

// Reset clears all drag state.
func (d *Drag) Reset() {
	d.pressed = false
	d.active = false
	d.start = Position{}
	d.current = Position{}
}
