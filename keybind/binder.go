package keybind

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/inputkit/key"
	"github.com/dshills/inputkit/sched"
)

// Binder errors.
var (
	ErrNilCallback = errors.New("keybind: nil callback")
	ErrNoPatterns  = errors.New("keybind: empty pattern specification")
	ErrClosed      = errors.New("keybind: registry is closed")
)

// Callback receives the originating event and the canonical label of
// the pattern that matched. Returning true requests suppression of the
// host's default action for the event.
type Callback func(ev Event, label string) bool

// Registry owns bindings over a single event source.
type Registry struct {
	mu        sync.Mutex
	src       Source
	scheduler sched.Scheduler
	bindings  map[string]*Binding
	closed    bool
}

// NewRegistry creates a registry over the given source using the
// standard scheduler.
func NewRegistry(src Source) *Registry {
	return &Registry{
		src:       src,
		scheduler: sched.New(),
		bindings:  make(map[string]*Binding),
	}
}

// SetScheduler replaces the scheduler used for sequence timeouts on
// bindings created after the call. Intended for tests that drive time
// manually.
func (r *Registry) SetScheduler(s sched.Scheduler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s != nil {
		r.scheduler = s
	}
}

// Bind registers a callback against a pattern specification using
// DefaultOptions. Any constituent pattern completing satisfies the
// registration.
func (r *Registry) Bind(patterns []string, fn Callback) (*Binding, error) {
	return r.BindWith(patterns, fn, DefaultOptions())
}

// BindOne registers a callback against a single pattern using
// DefaultOptions.
func (r *Registry) BindOne(pattern string, fn Callback) (*Binding, error) {
	return r.BindWith([]string{pattern}, fn, DefaultOptions())
}

// BindWith registers a callback with explicit options. Malformed
// pattern strings do not error; they become degenerate patterns that
// never match, leaving sibling patterns in the same specification
// intact.
func (r *Registry) BindWith(patterns []string, fn Callback, opts Options) (*Binding, error) {
	if fn == nil {
		return nil, ErrNilCallback
	}
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrClosed
	}
	scheduler := r.scheduler
	r.mu.Unlock()

	b := &Binding{
		id:      uuid.New().String(),
		reg:     r,
		opts:    opts,
		fn:      fn,
		machine: NewMachine(key.ParsePatterns(patterns...), opts.SequenceTimeout, scheduler),
	}
	b.cancel = r.src.Subscribe(opts.Phase, opts.Capture, b.handle)

	r.mu.Lock()
	if r.closed {
		// Lost the race with Close; undo the subscription.
		r.mu.Unlock()
		b.Close()
		return nil, ErrClosed
	}
	r.bindings[b.id] = b
	r.mu.Unlock()

	return b, nil
}

// remove drops a binding from the registry's index.
func (r *Registry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bindings, id)
}

// Len returns the number of live bindings.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bindings)
}

// Close tears down every binding and rejects further Bind calls.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	live := make([]*Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		live = append(live, b)
	}
	r.mu.Unlock()

	for _, b := range live {
		b.Close()
	}
}

// Binding is one registration: a pattern specification, a callback, and
// the per-pattern match state behind them. A Binding is returned by the
// Registry Bind methods and disposed with Close.
type Binding struct {
	id      string
	reg     *Registry
	opts    Options
	fn      Callback
	machine *Machine

	mu     sync.Mutex
	cancel func()
	fired  bool
	closed bool
}

// ID returns the binding's registration identity.
func (b *Binding) ID() string { return b.id }

// Labels returns the canonical labels of the binding's patterns.
func (b *Binding) Labels() []string { return b.machine.Labels() }

// handle is the per-event entry point called by the source.
func (b *Binding) handle(ev Event) {
	b.mu.Lock()
	if b.closed || (b.opts.FireOnce && b.fired) {
		b.mu.Unlock()
		return
	}
	if ev.Repeat() && !b.opts.AllowRepeat {
		b.mu.Unlock()
		return
	}
	b.mu.Unlock()

	for _, m := range b.machine.Process(ev.Key()) {
		b.dispatch(ev, m.Label)
		if b.opts.FireOnce {
			// The binding is torn down; later matches from the same
			// event are dropped along with all future events.
			return
		}
	}
}

// dispatch applies the match side effects around one callback
// invocation: propagation stops before the callback, default-action
// suppression follows it.
func (b *Binding) dispatch(ev Event, label string) {
	if b.opts.StopPropagation {
		ev.StopPropagation()
	}
	suppress := b.fn(ev, label)
	if suppress {
		ev.PreventDefault()
	}
	if b.opts.FireOnce {
		b.mu.Lock()
		b.fired = true
		b.mu.Unlock()
		b.Close()
	}
}

// Rebind replaces the binding's pattern specification wholesale,
// discarding all match progress and pending timeouts.
func (b *Binding) Rebind(patterns []string) error {
	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return ErrClosed
	}
	if len(patterns) == 0 {
		return ErrNoPatterns
	}
	b.machine.Rebuild(key.ParsePatterns(patterns...))
	return nil
}

// Close unsubscribes from the source and cancels every pending timeout
// synchronously. Close is idempotent and safe to call from inside the
// binding's own callback.
func (b *Binding) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	cancel := b.cancel
	b.cancel = nil
	b.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	b.machine.Close()
	b.reg.remove(b.id)
}
