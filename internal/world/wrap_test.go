package world

import "testing"

func TestFold(t *testing.T) {
	w := NewWrapPolicy(800, 600, 256)

	tests := []struct {
		name     string
		in, want Vec2
	}{
		{"inside", Vec2{X: 10, Y: -20}, Vec2{X: 10, Y: -20}},
		{"one full width", Vec2{X: 1056}, Vec2{X: 0}},
		{"past right edge", Vec2{X: 1100}, Vec2{X: 44}},
		{"exactly half", Vec2{X: 528}, Vec2{X: -528}},
		{"negative", Vec2{X: -600}, Vec2{X: 456}},
		{"past top", Vec2{Y: 500}, Vec2{Y: -356}},
		{"far away", Vec2{X: 1056*3 + 1, Y: -856 * 2}, Vec2{X: 1, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := w.Fold(tc.in)
			if got != tc.want {
				t.Errorf("Fold(%v) = %v, expected %v", tc.in, got, tc.want)
			}
			if again := w.Fold(got); again != got {
				t.Errorf("Fold is not idempotent: %v -> %v", got, again)
			}
			if !w.Contains(got) {
				t.Errorf("Fold(%v) = %v is outside the window", tc.in, got)
			}
		})
	}
}

func TestFoldZeroSize(t *testing.T) {
	w := WrapPolicy{}
	p := Vec2{X: 5, Y: -5}
	if got := w.Fold(p); got != p {
		t.Errorf("Fold() with zero size = %v, expected unchanged", got)
	}
}
