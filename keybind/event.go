package keybind

// Phase selects which half of a key press a binding listens to.
type Phase uint8

const (
	// PhaseKeyUp delivers events when a key is released.
	PhaseKeyUp Phase = iota
	// PhaseKeyDown delivers events when a key is pressed.
	PhaseKeyDown
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseKeyUp:
		return "keyup"
	case PhaseKeyDown:
		return "keydown"
	default:
		return "unknown"
	}
}

// Event is one raw key event delivered by a Source. The engine compares
// Key verbatim against pattern members, so sources must deliver the
// canonical vocabulary ("a", "Enter", "ArrowUp", " ").
type Event interface {
	// Key is the host's identifier for the pressed key.
	Key() string

	// Repeat reports whether the event is a held-key auto-repeat.
	Repeat() bool

	// StopPropagation stops delivery of this event to later
	// subscribers. Sources without propagation semantics make this a
	// no-op.
	StopPropagation()

	// PreventDefault suppresses the host's default action for this
	// event. Sources without default actions make this a no-op.
	PreventDefault()
}

// Source is a subscribable stream of key events. Subscribe returns a
// cancel function that removes the subscription; cancelling twice is
// harmless. Capture subscribers receive each event before non-capture
// subscribers.
type Source interface {
	Subscribe(phase Phase, capture bool, fn func(Event)) (cancel func())
}

// BasicEvent is a plain Event carrier for sources with no propagation or
// default-action semantics.
type BasicEvent struct {
	// Name is the key identifier.
	Name string

	// IsRepeat marks the event as a held-key auto-repeat.
	IsRepeat bool
}

// Key returns the key identifier.
func (e BasicEvent) Key() string { return e.Name }

// Repeat reports whether the event is an auto-repeat.
func (e BasicEvent) Repeat() bool { return e.IsRepeat }

// StopPropagation is a no-op.
func (e BasicEvent) StopPropagation() {}

// PreventDefault is a no-op.
func (e BasicEvent) PreventDefault() {}
