package key

import "testing"

func TestNormalizeAliases(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"ENTER", "Enter"},
		{"enter", "Enter"},
		{"Enter", "Enter"},
		{"return", "Enter"},
		{"ESC", "Escape"},
		{"escape", "Escape"},
		{"Escape", "Escape"},
		{"space", " "},
		{"SPACEBAR", " "},
		{"ctrl", "Control"},
		{"CONTROL", "Control"},
		{"alt", "Alt"},
		{"option", "Alt"},
		{"shift", "Shift"},
		{"cmd", "Meta"},
		{"meta", "Meta"},
		{"del", "Delete"},
		{"DELETE", "Delete"},
		{"up", "ArrowUp"},
		{"ARROWUP", "ArrowUp"},
		{"arrowdown", "ArrowDown"},
		{"pgup", "PageUp"},
		{"pgdown", "PageDown"},
		{"any", "Any"},
		{"ANY", "Any"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.raw); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeCasing(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"a", "a"},
		{"A", "a"},
		{"1", "1"},
		{"@", "@"},
		{"f1", "F1"},
		{"F1", "F1"},
		{"f12", "F12"},
		{"numpad1", "Numpad1"},
		{"NUMPAD1", "Numpad1"},
		{"  b  ", "b"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.raw); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeEmptyUnchanged(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("Normalize(%q) = %q, want empty", "", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"a", "A", "ENTER", "enter", "Enter", "esc", "ctrl", "numpad1", "f1", "any", "@"}
	for _, raw := range inputs {
		once := Normalize(raw)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
	// Every alias canonical value must normalize to itself.
	for _, canon := range aliases {
		if canon == " " {
			// The space key trims to empty; patterns spell it "space".
			continue
		}
		if got := Normalize(canon); got != canon {
			t.Errorf("Normalize(%q) = %q, want unchanged", canon, got)
		}
	}
}

func TestNormalizeAliasCoverage(t *testing.T) {
	// All-caps, all-lower, and canonical-case spellings agree.
	for upper, canon := range aliases {
		if canon == " " {
			continue
		}
		for _, raw := range []string{upper, toLower(upper), canon} {
			if got := Normalize(raw); got != canon {
				t.Errorf("Normalize(%q) = %q, want %q", raw, got, canon)
			}
		}
	}
}

// toLower avoids importing strings just for the test table.
func toLower(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'A' && r <= 'Z' {
			out[i] = r + ('a' - 'A')
		}
	}
	return string(out)
}

func TestNormalizeSequence(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"a+shift+control", "a+Shift+Control"},
		{"ctrl+a b c", "Control+a b c"},
		{"g g", "g g"},
		{"  a   b  ", "a b"},
		{"A+B", "a+b"},
		{"ESC", "Escape"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeSequence(tt.raw); got != tt.want {
			t.Errorf("NormalizeSequence(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeSequencePreservesChordOrder(t *testing.T) {
	got := NormalizeSequence("a+shift+control")
	if got != "a+Shift+Control" {
		t.Errorf("chord member order changed: got %q", got)
	}
}
