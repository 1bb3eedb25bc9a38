package key

import (
	"strings"
	"unicode"
)

// Wildcard matches any incoming key at the pattern position where it
// appears.
const Wildcard = "Any"

// aliases maps upper-cased spellings to canonical key values. The
// right-hand sides are the literal identifiers the host environment
// delivers in key events, not values derived from a casing rule, so
// lookups must use this table verbatim.
var aliases = map[string]string{
	"ENTER":       "Enter",
	"RETURN":      "Enter",
	"ESC":         "Escape",
	"ESCAPE":      "Escape",
	"SPACE":       " ",
	"SPACEBAR":    " ",
	"CTRL":        "Control",
	"CONTROL":     "Control",
	"ALT":         "Alt",
	"OPTION":      "Alt",
	"SHIFT":       "Shift",
	"META":        "Meta",
	"CMD":         "Meta",
	"COMMAND":     "Meta",
	"WIN":         "Meta",
	"TAB":         "Tab",
	"BS":          "Backspace",
	"BACKSPACE":   "Backspace",
	"DEL":         "Delete",
	"DELETE":      "Delete",
	"INS":         "Insert",
	"INSERT":      "Insert",
	"UP":          "ArrowUp",
	"ARROWUP":     "ArrowUp",
	"DOWN":        "ArrowDown",
	"ARROWDOWN":   "ArrowDown",
	"LEFT":        "ArrowLeft",
	"ARROWLEFT":   "ArrowLeft",
	"RIGHT":       "ArrowRight",
	"ARROWRIGHT":  "ArrowRight",
	"HOME":        "Home",
	"END":         "End",
	"PGUP":        "PageUp",
	"PAGEUP":      "PageUp",
	"PGDN":        "PageDown",
	"PGDOWN":      "PageDown",
	"PAGEDOWN":    "PageDown",
	"CAPSLOCK":    "CapsLock",
	"NUMLOCK":     "NumLock",
	"SCROLLLOCK":  "ScrollLock",
	"PRINTSCREEN": "PrintScreen",
	"PAUSE":       "Pause",
	"CONTEXTMENU": "ContextMenu",
	"ANY":         Wildcard,
}

// Normalize canonicalizes a raw key label.
//
// Empty input is returned unchanged. Surrounding whitespace is trimmed,
// then the upper-cased form is looked up in the alias table; a hit
// returns the canonical value verbatim. Otherwise single characters are
// lower-cased ("A" -> "a") and longer labels are title-cased ("numpad1"
// -> "Numpad1", "f1" -> "F1").
func Normalize(raw string) string {
	if raw == "" {
		return raw
	}
	s := strings.TrimSpace(raw)
	if canon, ok := aliases[strings.ToUpper(s)]; ok {
		return canon
	}
	runes := []rune(s)
	switch len(runes) {
	case 0:
		return s
	case 1:
		return strings.ToLower(s)
	default:
		return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
	}
}

// NormalizeSequence canonicalizes a whole pattern string: sequence steps
// separated by whitespace, chord members within a step joined by "+".
// Each member is normalized with Normalize; member order within a chord
// is preserved.
//
// Runs of internal whitespace collapse to a single space, so the result
// is the canonical display form rather than a character-for-character
// round trip of irregular input spacing.
func NormalizeSequence(raw string) string {
	steps := strings.Fields(raw)
	for i, step := range steps {
		members := strings.Split(step, "+")
		for j, m := range members {
			members[j] = Normalize(m)
		}
		steps[i] = strings.Join(members, "+")
	}
	return strings.Join(steps, " ")
}
