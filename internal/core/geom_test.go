package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len() = %f, expected 5", got)
	}
	if got := a.LenSqr(); got != 25 {
		t.Errorf("LenSqr() = %f, expected 25", got)
	}
	if got := a.Dist(V(0, 0)); got != 5 {
		t.Errorf("Dist() = %f, expected 5", got)
	}
}

func TestVecNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"axis", V(10, 0), V(1, 0)},
		{"pythagorean", V(3, 4), V(0.6, 0.8)},
		{"zero stays zero", V(0, 0), V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if math.Abs(got.X-tc.want.X) > eps || math.Abs(got.Y-tc.want.Y) > eps {
				t.Errorf("Normalize(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestVecLerp(t *testing.T) {
	got := V(0, 0).Lerp(V(10, -10), 0.25)
	if got != V(2.5, -2.5) {
		t.Errorf("Lerp() = %v, expected (2.5, -2.5)", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0, 10, 5.5},
		{-5.5, 0, 10, 0},
		{15.5, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestSmoothFactorIsFrameRateIndependent(t *testing.T) {
	// One 0.1s step must land where ten 0.01s steps land.
	one := Lerp(0, 1, SmoothFactor(8, 0.1))

	many := 0.0
	for i := 0; i < 10; i++ {
		many = Lerp(many, 1, SmoothFactor(8, 0.01))
	}

	if math.Abs(one-many) > 1e-9 {
		t.Errorf("single step %f != sliced steps %f", one, many)
	}
	if SmoothFactor(8, 0) != 0 {
		t.Error("SmoothFactor with dt=0 should be 0")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestColorHexAndFade(t *testing.T) {
	c := RGB(230, 80, 90)
	if got := c.Hex(); got != "#e6505a" {
		t.Errorf("Hex() = %q, expected #e6505a", got)
	}
	if got := c.Fade(0); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("Fade(0) = %v, expected black", got)
	}
	if got := c.Fade(2); got != c {
		t.Errorf("Fade(2) = %v, expected clamp to original %v", got, c)
	}
	if !ColorDefault.IsDefault() || c.IsDefault() {
		t.Error("IsDefault() misreports")
	}
}
