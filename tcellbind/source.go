package tcellbind

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/dshills/inputkit/keybind"
)

// Event is a key event delivered by the tcell adapter. StopPropagation
// halts delivery to later subscribers of the same Feed call; terminals
// have no default action, so PreventDefault only records the request.
type Event struct {
	name      string
	repeat    bool
	stopped   bool
	prevented bool
}

// Key returns the canonical key identifier.
func (e *Event) Key() string { return e.name }

// Repeat reports whether the adapter flagged the keystroke as an
// auto-repeat.
func (e *Event) Repeat() bool { return e.repeat }

// StopPropagation halts delivery to later subscribers.
func (e *Event) StopPropagation() { e.stopped = true }

// PreventDefault records the suppression request.
func (e *Event) PreventDefault() { e.prevented = true }

// Prevented reports whether a callback requested default-action
// suppression.
func (e *Event) Prevented() bool { return e.prevented }

// subscription is one registered handler.
type subscription struct {
	id      string
	seq     int
	capture bool
	fn      func(keybind.Event)
}

// Source implements keybind.Source over tcell key events. Feed it from
// the application's tcell event loop.
type Source struct {
	mu           sync.Mutex
	subs         map[string]*subscription
	nextSeq      int
	repeatWindow time.Duration
	lastKey      string
	lastKeyAt    time.Time
}

// NewSource creates a tcell-backed source.
func NewSource() *Source {
	return &Source{subs: make(map[string]*subscription)}
}

// SetRepeatWindow enables repeat detection: a keystroke is flagged as
// auto-repeat when the same key arrives again within d. Zero (the
// default) disables detection, since terminals cannot distinguish a
// held key from rapid typing.
func (s *Source) SetRepeatWindow(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repeatWindow = d
}

// Subscribe implements keybind.Source. The phase is accepted for
// interface compatibility but ignored: a terminal keystroke stands in
// for both the press and the release.
func (s *Source) Subscribe(_ keybind.Phase, capture bool, fn func(keybind.Event)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &subscription{
		id:      uuid.New().String(),
		seq:     s.nextSeq,
		capture: capture,
		fn:      fn,
	}
	s.nextSeq++
	s.subs[sub.id] = sub

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, sub.id)
	}
}

// Feed translates and delivers one tcell event. It reports whether the
// event was a key event the adapter could translate.
func (s *Source) Feed(ev tcell.Event) bool {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	names := KeyNames(kev)
	if len(names) == 0 {
		return false
	}
	for _, name := range names {
		s.deliver(name, kev.When())
	}
	return true
}

// deliver dispatches one key name to all subscribers, capture
// subscribers first, respecting StopPropagation.
func (s *Source) deliver(name string, when time.Time) {
	s.mu.Lock()
	repeat := false
	if s.repeatWindow > 0 && name == s.lastKey && !s.lastKeyAt.IsZero() &&
		when.Sub(s.lastKeyAt) >= 0 && when.Sub(s.lastKeyAt) <= s.repeatWindow {
		repeat = true
	}
	s.lastKey = name
	s.lastKeyAt = when

	ordered := make([]*subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		ordered = append(ordered, sub)
	}
	s.mu.Unlock()

	// Capture level first, then registration order within each level.
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].capture != ordered[j].capture {
			return ordered[i].capture
		}
		return ordered[i].seq < ordered[j].seq
	})

	ev := &Event{name: name, repeat: repeat}
	for _, sub := range ordered {
		if ev.stopped {
			break
		}
		sub.fn(ev)
	}
}

// KeyNames translates one tcell key event into canonical key names.
// Synthesized modifier events precede the key itself, so Ctrl+S yields
// ["Control", "s"]. An untranslatable event yields nil.
func KeyNames(ev *tcell.EventKey) []string {
	var names []string
	mods := ev.Modifiers()
	if mods&tcell.ModCtrl != 0 {
		names = append(names, "Control")
	}
	if mods&tcell.ModAlt != 0 {
		names = append(names, "Alt")
	}
	if mods&tcell.ModMeta != 0 {
		names = append(names, "Meta")
	}

	name := keyName(ev)
	if name == "" {
		return nil
	}
	return append(names, name)
}

// keyName maps the keystroke itself, ignoring modifiers.
func keyName(ev *tcell.EventKey) string {
	k := ev.Key()
	switch k {
	case tcell.KeyRune:
		return string(ev.Rune())
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyEscape:
		return "Escape"
	case tcell.KeyTab:
		return "Tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "Backspace"
	case tcell.KeyDelete:
		return "Delete"
	case tcell.KeyInsert:
		return "Insert"
	case tcell.KeyHome:
		return "Home"
	case tcell.KeyEnd:
		return "End"
	case tcell.KeyPgUp:
		return "PageUp"
	case tcell.KeyPgDn:
		return "PageDown"
	case tcell.KeyUp:
		return "ArrowUp"
	case tcell.KeyDown:
		return "ArrowDown"
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return "F" + strconv.Itoa(1+int(k-tcell.KeyF1))
	}

	// Control characters arrive as dedicated key codes; recover the
	// letter. Backspace, Tab, and Enter collide with KeyCtrlH/I/M and
	// were handled above.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return string(rune('a' + int(k-tcell.KeyCtrlA)))
	}
	return ""
}
