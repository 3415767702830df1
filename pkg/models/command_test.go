package models

import "testing"

func TestCommandValid(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		isValid bool
	}{
		{"complete", Command{Label: "Header", Insert: "h();", Description: "adds a header", Group: "Headers"}, true},
		{"minimal", Command{Label: "L", Insert: "l();"}, true},
		{"missing label", Command{Insert: "x();"}, false},
		{"missing insert", Command{Label: "X"}, false},
		{"empty", Command{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.Valid(); got != tt.isValid {
				t.Errorf("Valid() = %v, want %v", got, tt.isValid)
			}
		})
	}
}

func TestFilterValid(t *testing.T) {
	in := []Command{
		{Label: "A", Insert: "a"},
		{Label: "", Insert: "b"},
		{Label: "C", Insert: "c"},
		{Label: "D", Insert: ""},
	}

	out := FilterValid(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 valid commands, got %d", len(out))
	}
	if out[0].Label != "A" || out[1].Label != "C" {
		t.Errorf("expected input order preserved, got %q, %q", out[0].Label, out[1].Label)
	}
}

func TestFilterValidEmpty(t *testing.T) {
	if out := FilterValid(nil); out != nil {
		t.Errorf("expected nil for empty input, got %v", out)
	}
}
