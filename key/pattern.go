package key

import "strings"

// Chord is one step of a pattern: the keys that must be satisfied before
// the pattern advances past this step. Member order is the order the
// engine consumes keys in; it is preserved from the pattern string.
type Chord []string

// Clone returns a copy of the chord.
func (c Chord) Clone() Chord {
	out := make(Chord, len(c))
	copy(out, c)
	return out
}

// Pattern is a parsed key pattern: an ordered list of chord steps plus
// the canonical label reported to callbacks when the pattern completes.
// A plain single key is a one-step pattern whose sole chord has one
// member.
type Pattern struct {
	// Label is the fully normalized display form, e.g. "Control+a b c".
	Label string

	// Steps are the chord steps in match order.
	Steps []Chord
}

// Keys returns the pattern's chord members flattened into the order the
// engine consumes them: members of the first step, then the second, and
// so on.
func (p Pattern) Keys() []string {
	var keys []string
	for _, step := range p.Steps {
		keys = append(keys, step...)
	}
	return keys
}

// Matchable reports whether the pattern can ever complete. Degenerate
// patterns (empty input, or empty members left by a dangling "+") parse
// successfully but can never match a real key.
func (p Pattern) Matchable() bool {
	if len(p.Steps) == 0 {
		return false
	}
	for _, step := range p.Steps {
		for _, m := range step {
			if m == "" {
				return false
			}
		}
	}
	return true
}

// ParsePattern parses one pattern string. Parsing is pure: it never
// schedules timers, never touches an event source, and never fails —
// malformed input yields a pattern for which Matchable reports false.
func ParsePattern(spec string) Pattern {
	label := NormalizeSequence(spec)
	var steps []Chord
	for _, step := range strings.Fields(label) {
		steps = append(steps, Chord(strings.Split(step, "+")))
	}
	return Pattern{Label: label, Steps: steps}
}

// ParsePatterns parses a pattern specification: one pattern per string,
// in registration order.
func ParsePatterns(specs ...string) []Pattern {
	patterns := make([]Pattern, 0, len(specs))
	for _, s := range specs {
		patterns = append(patterns, ParsePattern(s))
	}
	return patterns
}
