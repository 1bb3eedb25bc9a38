// Package tcellbind adapts tcell terminal key events into the keybind
// engine's key vocabulary.
//
// Terminals report completed keystrokes only: there is no separate
// key-up, no native auto-repeat flag, and modifiers arrive folded into
// the keystroke rather than as their own events. The adapter papers
// over all three:
//
//   - every keystroke is delivered to key-up and key-down subscribers
//     alike;
//   - Control/Alt/Meta modifiers are synthesized as their own events
//     immediately before the modified key, so chord patterns such as
//     "Control+s" match;
//   - an optional repeat window marks a keystroke as auto-repeat when
//     the same key arrives again within the window.
package tcellbind
