package element

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
	}{
		{"water", Water},
		{"WATER", Water},
		{"  fire ", Fire},
		{"wall", Wall},
		{"1", Powder},
		{"7", Wall},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			k, err := ParseKind(tc.input)
			if err != nil {
				t.Fatalf("ParseKind(%q) error: %v", tc.input, err)
			}
			if k != tc.expected {
				t.Errorf("ParseKind(%q) = %v, expected %v", tc.input, k, tc.expected)
			}
		})
	}
}

func TestParseKindSuggests(t *testing.T) {
	_, err := ParseKind("watr")
	var unknown *UnknownKindError
	if !errors.As(err, &unknown) {
		t.Fatalf("ParseKind(watr) = %v, expected UnknownKindError", err)
	}
	if unknown.Suggestion != "water" {
		t.Errorf("Suggestion = %q, expected water", unknown.Suggestion)
	}

	_, err = ParseKind("plutonium")
	if !errors.As(err, &unknown) {
		t.Fatalf("ParseKind(plutonium) = %v, expected UnknownKindError", err)
	}
	if unknown.Suggestion != "" {
		t.Errorf("Suggestion = %q, expected none", unknown.Suggestion)
	}
}

func TestParseKindRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
}

func TestParseMotionClassAliases(t *testing.T) {
	tests := map[string]MotionClass{
		"frozen": Frozen,
		"solid":  Fall,
		"liquid": Fill,
		"gas":    Diffuse,
		"Fill":   Fill,
	}
	for in, want := range tests {
		got, err := ParseMotionClass(in)
		if err != nil || got != want {
			t.Errorf("ParseMotionClass(%q) = %v, %v; expected %v", in, got, err, want)
		}
	}
	if _, err := ParseMotionClass("plasma"); err == nil {
		t.Error("ParseMotionClass(plasma) should fail")
	}
}
