// Package key provides key label normalization and key pattern parsing
// for the inputkit recognition engine.
//
// # Vocabulary
//
// A key is an opaque string identifier as delivered by the host
// environment: "a", "Enter", "ArrowUp", " " (space). Normalize folds the
// many spellings users write in patterns ("ESC", "ctrl", "spacebar") into
// that single canonical vocabulary:
//
//	key.Normalize("CTRL")    // "Control"
//	key.Normalize("esc")     // "Escape"
//	key.Normalize("A")       // "a"
//	key.Normalize("numpad1") // "Numpad1"
//
// # Patterns
//
// A pattern string describes a chord, a sequence, or a mix of both.
// Chord members are joined with "+", sequence steps are separated by
// whitespace:
//
//	"a"          single key
//	"ctrl+s"     chord of Control and s
//	"g g"        two-step sequence
//	"ctrl+a b c" chord step followed by two single-key steps
//
// ParsePattern normalizes the string and splits it into ordered chord
// steps. Parsing is pure and never fails: malformed input (empty string,
// trailing "+") produces a degenerate pattern that can never match a real
// key, so one bad pattern cannot destabilize its siblings.
//
// The wildcard key "Any" matches every incoming key at the position where
// it appears.
package key
