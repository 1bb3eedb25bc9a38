package key

import (
	"reflect"
	"testing"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		spec      string
		wantLabel string
		wantSteps []Chord
	}{
		{"a", "a", []Chord{{"a"}}},
		{"A", "a", []Chord{{"a"}}},
		{"ctrl+s", "Control+s", []Chord{{"Control", "s"}}},
		{"g g", "g g", []Chord{{"g"}, {"g"}}},
		{"ctrl+a b c", "Control+a b c", []Chord{{"Control", "a"}, {"b"}, {"c"}}},
		{"any", "Any", []Chord{{"Any"}}},
		{"Any+Any", "Any+Any", []Chord{{"Any", "Any"}}},
	}

	for _, tt := range tests {
		p := ParsePattern(tt.spec)
		if p.Label != tt.wantLabel {
			t.Errorf("ParsePattern(%q) label = %q, want %q", tt.spec, p.Label, tt.wantLabel)
		}
		if !reflect.DeepEqual(p.Steps, tt.wantSteps) {
			t.Errorf("ParsePattern(%q) steps = %v, want %v", tt.spec, p.Steps, tt.wantSteps)
		}
		if !p.Matchable() {
			t.Errorf("ParsePattern(%q) not matchable", tt.spec)
		}
	}
}

func TestParsePatternDegenerate(t *testing.T) {
	for _, spec := range []string{"", "   ", "a+", "+", "+a", "a++b"} {
		p := ParsePattern(spec)
		if p.Matchable() {
			t.Errorf("ParsePattern(%q) matchable, want degenerate", spec)
		}
	}
}

func TestPatternKeys(t *testing.T) {
	p := ParsePattern("ctrl+a b c")
	want := []string{"Control", "a", "b", "c"}
	if !reflect.DeepEqual(p.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", p.Keys(), want)
	}
}

func TestParsePatterns(t *testing.T) {
	ps := ParsePatterns("a", "b c")
	if len(ps) != 2 {
		t.Fatalf("ParsePatterns returned %d patterns, want 2", len(ps))
	}
	if ps[0].Label != "a" || ps[1].Label != "b c" {
		t.Errorf("labels = %q, %q; want %q, %q", ps[0].Label, ps[1].Label, "a", "b c")
	}
}

func TestChordClone(t *testing.T) {
	c := Chord{"Control", "a"}
	clone := c.Clone()
	clone[0] = "x"
	if c[0] != "Control" {
		t.Error("Clone shares backing array with original")
	}
}
