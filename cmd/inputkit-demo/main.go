// Command inputkit-demo is an interactive showcase for the inputkit
// recognizers. It wires a tcell terminal into the keybind engine and
// the pointer gesture recognizers and echoes everything they detect.
//
// Bindings: "g g" and "Control+s" as sample patterns, "q q" or Escape
// to quit. Mouse clicks, drags, and wheel scrolling are recognized when
// the terminal reports mouse events.
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inputkit/gesture"
	"github.com/dshills/inputkit/keybind"
	"github.com/dshills/inputkit/tcellbind"
)

func main() {
	os.Exit(run())
}

func run() int {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize screen: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()

	d := newDemo(screen)
	defer d.close()
	d.loop()
	return 0
}

// demo owns the event loop, the recognizers, and the message log.
type demo struct {
	screen tcell.Screen
	src    *tcellbind.Source
	reg    *keybind.Registry

	tap   *gesture.Tap
	drag  *gesture.Drag
	wheel *gesture.Wheel

	// mu guards messages; the wheel quiet-period callback logs from
	// the scheduler's goroutine.
	mu       sync.Mutex
	messages []string

	dragging bool
	quit     bool
}

func newDemo(screen tcell.Screen) *demo {
	d := &demo{screen: screen}

	d.src = tcellbind.NewSource()
	d.reg = keybind.NewRegistry(d.src)

	d.bindKeys()
	d.buildGestures()
	d.log("ready: try 'g g', Ctrl+S, 'q q' or Escape to quit")
	return d
}

func (d *demo) bindKeys() {
	show := func(_ keybind.Event, label string) bool {
		d.log("key pattern: %q", label)
		return false
	}
	_, _ = d.reg.Bind([]string{"g g", "ctrl+s"}, show)
	_, _ = d.reg.BindOne("Any", func(ev keybind.Event, _ string) bool {
		d.log("key: %q", ev.Key())
		return false
	})
	quit := func(_ keybind.Event, _ string) bool {
		d.quit = true
		return false
	}
	_, _ = d.reg.Bind([]string{"q q", "Escape"}, quit)
}

func (d *demo) buildGestures() {
	d.tap = gesture.NewTap(gesture.DefaultTapConfig())
	d.tap.OnTap = func(pos gesture.Position, count int) {
		d.log("tap x%d at (%.0f, %.0f)", count, pos.X, pos.Y)
	}

	d.drag = gesture.NewDrag(gesture.DefaultDragConfig())
	d.drag.OnEnd = func(pos gesture.Position, delta gesture.Position) {
		d.log("drag ended at (%.0f, %.0f), delta (%.0f, %.0f)", pos.X, pos.Y, delta.X, delta.Y)
	}

	d.wheel = gesture.NewWheel(gesture.DefaultWheelConfig(), nil)
	d.wheel.OnEnd = func(totalX, totalY float64) {
		d.log("scroll burst: total (%.0f, %.0f)", totalX, totalY)
	}
}

func (d *demo) loop() {
	for !d.quit {
		d.draw()
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			d.screen.Sync()
		case *tcell.EventKey:
			d.src.Feed(ev)
		case *tcell.EventMouse:
			d.handleMouse(ev)
		}
	}
}

// handleMouse fans a tcell mouse event out to the pointer recognizers.
func (d *demo) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := gesture.Position{X: float64(x), Y: float64(y)}
	now := time.Now()

	buttons := ev.Buttons()
	if buttons&tcell.WheelUp != 0 {
		d.wheel.HandleWheel(gesture.WheelEvent{DeltaY: -1, Time: now})
		return
	}
	if buttons&tcell.WheelDown != 0 {
		d.wheel.HandleWheel(gesture.WheelEvent{DeltaY: 1, Time: now})
		return
	}

	pressed := buttons&tcell.Button1 != 0
	var pev gesture.Event
	switch {
	case pressed && !d.dragging:
		d.dragging = true
		pev = gesture.Event{Phase: gesture.PhaseDown, Pos: pos, Time: now}
	case pressed:
		pev = gesture.Event{Phase: gesture.PhaseMove, Pos: pos, Time: now}
	case d.dragging:
		d.dragging = false
		pev = gesture.Event{Phase: gesture.PhaseUp, Pos: pos, Time: now}
	default:
		return
	}
	d.tap.Handle(pev)
	d.drag.Handle(pev)
}

func (d *demo) log(format string, args ...any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = append(d.messages, fmt.Sprintf(format, args...))
	const keep = 64
	if len(d.messages) > keep {
		d.messages = d.messages[len(d.messages)-keep:]
	}
}

func (d *demo) snapshot() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.messages))
	copy(out, d.messages)
	return out
}

func (d *demo) draw() {
	d.screen.Clear()
	_, h := d.screen.Size()

	style := tcell.StyleDefault
	drawText(d.screen, 0, 0, style.Bold(true), "inputkit demo — keys and mouse are echoed below")

	messages := d.snapshot()
	start := 0
	visible := h - 2
	if visible > 0 && len(messages) > visible {
		start = len(messages) - visible
	}
	for i, msg := range messages[start:] {
		drawText(d.screen, 0, 2+i, style, msg)
	}
	d.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func (d *demo) close() {
	d.reg.Close()
	d.wheel.Reset()
}
