// Package teabind adapts Bubble Tea key messages into the keybind
// engine's key vocabulary, so a bubbletea program can feed its Update
// loop's tea.KeyMsg values straight into a keybind.Registry.
//
// Like a terminal, bubbletea reports completed keystrokes: every
// message is delivered to key-up and key-down subscribers alike, and
// modifiers are synthesized as their own events before the modified
// key ("ctrl+s" becomes "Control" then "s").
package teabind

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/dshills/inputkit/key"
	"github.com/dshills/inputkit/keybind"
)

// subscription is one registered handler.
type subscription struct {
	id      string
	seq     int
	capture bool
	fn      func(keybind.Event)
}

// Source implements keybind.Source over tea.KeyMsg values.
type Source struct {
	mu      sync.Mutex
	subs    map[string]*subscription
	nextSeq int
}

// NewSource creates a bubbletea-backed source.
func NewSource() *Source {
	return &Source{subs: make(map[string]*subscription)}
}

// Subscribe implements keybind.Source. The phase is accepted for
// interface compatibility but ignored: a keystroke stands in for both
// the press and the release.
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

// Feed translates and delivers one key message from the program's
// Update loop. It reports whether the message was translatable.
func (s *Source) Feed(msg tea.KeyMsg) bool {
	names := KeyNames(msg)
	if len(names) == 0 {
		return false
	}
	for _, name := range names {
		s.deliver(name)
	}
	return true
}

// deliver dispatches one key name to all subscribers, capture
// subscribers first, respecting StopPropagation.
func (s *Source) deliver(name string) {
	s.mu.Lock()
	ordered := make([]*subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		ordered = append(ordered, sub)
	}
	s.mu.Unlock()

	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].capture != ordered[j].capture {
			return ordered[i].capture
		}
		return ordered[i].seq < ordered[j].seq
	})

	ev := &event{name: name}
	for _, sub := range ordered {
		if ev.stopped {
			break
		}
		sub.fn(ev)
	}
}

// event implements keybind.Event; bubbletea has no repeat flag and no
// default action.
type event struct {
	name    string
	stopped bool
}

func (e *event) Key() string      { return e.name }
func (e *event) Repeat() bool     { return false }
func (e *event) StopPropagation() { e.stopped = true }
func (e *event) PreventDefault()  {}

// KeyNames translates one key message into canonical key names.
// Modifier prefixes become their own events: "ctrl+s" yields
// ["Control", "s"]. An untranslatable message yields nil.
func KeyNames(msg tea.KeyMsg) []string {
	s := msg.String()
	switch s {
	case "":
		return nil
	case " ", "space":
		return []string{" "}
	case "+":
		return []string{"+"}
	}

	parts := strings.Split(s, "+")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if utf8.RuneCountInString(p) == 1 {
			// Plain runes pass through verbatim so case survives.
			names = append(names, p)
			continue
		}
		names = append(names, key.Normalize(p))
	}
	if len(names) == 0 {
		return nil
	}
	return names
}
