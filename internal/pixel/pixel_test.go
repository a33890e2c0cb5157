package pixel

import (
	"math"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"whole", 7, 7},
		{"below half", 1.49, 1},
		{"half", 2.5, 3},
		{"negative half", -2.5, -2},
		{"negative", -2.7, -3},
		{"just below half", 2.495, 2},
		{"just below half 1/64 step", 2.4922, 2},
		{"negative past half", -2.505, -3},
		{"negative just inside half", -2.495, -2},
		{"huge", 1e9 + 0.5, 1e9 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.in); got != tt.want {
				t.Errorf("Round(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTrunc(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{2.99, 2},
		{-2.99, -2},
		{0.5, 0},
		{180, 180},
	}
	for _, tt := range tests {
		if got := Trunc(tt.in); got != tt.want {
			t.Errorf("Trunc(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoundMatchesFloorHalf(t *testing.T) {
	for i := -4000; i <= 4000; i++ {
		v := float64(i) * 0.00137
		if got, want := Round(v), math.Floor(v+0.5); got != want {
			t.Errorf("Round(%v) = %v, want %v", v, got, want)
		}
	}
}

func TestToFixed(t *testing.T) {
	if got := ToFixed(1.5); got != fixed.Int26_6(96) {
		t.Errorf("ToFixed(1.5) = %v, want 96", got)
	}
	if got := ToFixed(1.99); got != fixed.Int26_6(127) {
		t.Errorf("ToFixed(1.99) = %v, want 127", got)
	}
	if got := ToFixed(1e12); got != fixed.Int26_6(math.MaxInt32) {
		t.Errorf("ToFixed(1e12) = %v, want saturation", got)
	}
	if got := ToFixed(-1e12); got != fixed.Int26_6(math.MinInt32) {
		t.Errorf("ToFixed(-1e12) = %v, want saturation", got)
	}
}
