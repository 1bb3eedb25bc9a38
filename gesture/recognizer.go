package gesture

import "errors"

// ErrKindChange is returned when a mounted hook is handed a recognizer
// of a different gesture kind. The kind of a mount point is fixed at
// creation; changing it is a programmer error that must surface
// immediately rather than silently misbehave.
var ErrKindChange = errors.New("gesture: recognizer kind cannot change after mount")

// Kind identifies a gesture recognizer type.
type Kind uint8

const (
	// KindTap recognizes taps and repeat taps.
	KindTap Kind = iota
	// KindPress recognizes long presses.
	KindPress
	// KindDrag recognizes drags.
	KindDrag
	// KindSwipe recognizes swipes.
	KindSwipe
	// KindPinch recognizes two-pointer pinches.
	KindPinch
	// KindWheel recognizes wheel scroll bursts.
	KindWheel
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindTap:
		return "tap"
	case KindPress:
		return "press"
	case KindDrag:
		return "drag"
	case KindSwipe:
		return "swipe"
	case KindPinch:
		return "pinch"
	case KindWheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// Recognizer is implemented by every pointer gesture recognizer.
type Recognizer interface {
	// Kind identifies the gesture this recognizer detects.
	Kind() Kind

	// Handle feeds one pointer event to the recognizer.
	Handle(ev Event)

	// Reset clears all in-progress state.
	Reset()
}

// Hook owns one recognizer for the lifetime of a mount point and
// forwards pointer events to it.
type Hook struct {
	kind Kind
	rec  Recognizer
}

// NewHook mounts a recognizer. The hook's gesture kind is fixed from
// the recognizer it mounts with.
func NewHook(rec Recognizer) *Hook {
	return &Hook{kind: rec.Kind(), rec: rec}
}

// Kind returns the hook's fixed gesture kind.
func (h *Hook) Kind() Kind { return h.kind }

// Swap replaces the mounted recognizer, for example when thresholds
// change. The replacement must be of the hook's kind.
func (h *Hook) Swap(rec Recognizer) error {
	if rec.Kind() != h.kind {
		return ErrKindChange
	}
	h.rec.Reset()
	h.rec = rec
	return nil
}

// Handle forwards one pointer event to the mounted recognizer.
func (h *Hook) Handle(ev Event) {
	h.rec.Handle(ev)
}
