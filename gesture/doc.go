// Package gesture provides pointer gesture recognizers: tap and
// double-tap, long press, drag, swipe, pinch, and wheel scrolling.
//
// Each recognizer is a threshold evaluator over a two-phase pointer
// interaction (down/move/up). Recognizers hold no shared state and are
// driven by feeding them Events (or WheelEvents) carrying explicit
// timestamps, so they are deterministic under test.
//
//	tap := gesture.NewTap(gesture.DefaultTapConfig())
//	tap.OnTap = func(pos gesture.Position, count int) { ... }
//	tap.Handle(gesture.Event{Phase: gesture.PhaseDown, Pos: p, Time: t0})
//	tap.Handle(gesture.Event{Phase: gesture.PhaseUp, Pos: p, Time: t1})
//
// Press and Wheel are the only recognizers with temporal behavior that
// is not derivable from event timestamps alone (a hold that ends
// without any event, a scroll burst that goes quiet); they take a
// sched.Scheduler for that and accept nil for the standard clock.
package gesture
