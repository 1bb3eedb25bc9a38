package keybind

import "time"

// Options configures a binding. Registry.Bind applies DefaultOptions;
// BindWith takes the struct verbatim, so a zero SequenceTimeout there
// means sequence steps may be separated by unbounded time.
type Options struct {
	// Phase is the key event phase the binding listens on.
	// Default: PhaseKeyUp.
	Phase Phase

	// AllowRepeat lets held-key auto-repeat events reach the engine.
	// When false, repeat events are ignored entirely: no tracker
	// advances, resets, or fires. Default: false.
	AllowRepeat bool

	// Capture subscribes at the source's capture level, receiving
	// events before non-capture subscribers. Default: false.
	Capture bool

	// FireOnce invokes the callback at most once and then tears the
	// binding down. Default: false.
	FireOnce bool

	// StopPropagation stops delivery of a matching event to later
	// subscribers, before the callback runs. Default: false.
	StopPropagation bool

	// SequenceTimeout bounds the gap between consecutive events of a
	// multi-key pattern. Zero removes the bound. Default: 1s.
	SequenceTimeout time.Duration
}

// DefaultOptions returns the option defaults.
func DefaultOptions() Options {
	return Options{
		Phase:           PhaseKeyUp,
		SequenceTimeout: 1000 * time.Millisecond,
	}
}
