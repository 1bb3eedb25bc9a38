// Package sched abstracts deferred callback invocation with cancellation.
// The engine schedules every timeout through a Scheduler so tests can
// substitute a manual implementation and drive time explicitly.
package sched

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop cancels the callback. It reports whether the callback was
	// prevented from running; false means it already ran or was already
	// stopped.
	Stop() bool
}

// Scheduler defers callbacks.
type Scheduler interface {
	// AfterFunc invokes fn on its own goroutine after d elapses.
	AfterFunc(d time.Duration, fn func()) Timer
}

// New returns the standard Scheduler backed by time.AfterFunc.
func New() Scheduler {
	return stdScheduler{}
}

type stdScheduler struct{}

func (stdScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
