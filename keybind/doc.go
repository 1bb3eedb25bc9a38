// Package keybind implements the key pattern recognition engine: it
// matches single keys, chords, and timed key sequences against a stream
// of raw key events and invokes callbacks when a pattern completes.
//
// # Model
//
// A Registry subscribes to a Source (a stream of raw key events) and
// owns any number of Bindings. Each Binding holds one Machine, which
// tracks match progress for every pattern in the binding's
// specification independently. Delivering "g" then "g" within the
// sequence timeout completes the pattern "g g"; delivering "Control"
// then "s" completes the chord "Control+s".
//
//	src := ...                      // a keybind.Source
//	reg := keybind.NewRegistry(src)
//	b, _ := reg.Bind([]string{"g g"}, func(ev keybind.Event, label string) bool {
//	    goToTop()
//	    return true // suppress the host's default action
//	})
//	defer b.Close()
//
// # Chords
//
// Chord simultaneity is approximated member by member: each incoming
// key event satisfies exactly one chord member, in the member order
// written in the pattern. The sequence timeout bounds the gap between
// consecutive events of a multi-key pattern; a timeout of zero removes
// the bound.
//
// # Concurrency
//
// Processing is synchronous per event: each event is fully evaluated
// before the next. The only asynchrony is the sequence timeout, which
// resets exactly the tracker it was scheduled for and is discarded if
// that tracker advanced or reset in the meantime. Closing a Binding
// cancels its pending timeouts and unsubscribes synchronously.
package keybind
