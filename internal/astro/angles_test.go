package astro

import (
	"math"
	"testing"
)

func TestNormalize360(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{360, 0},
		{361, 1},
		{-1, 359},
		{-360, 0},
		{720.5, 0.5},
		{-725, 355},
		{359.9999, 359.9999},
	}

	for _, tt := range tests {
		if got := Normalize360(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Normalize360(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalize360_Idempotent(t *testing.T) {
	for l := -1000.0; l <= 1000; l += 13.7 {
		n := Normalize360(l)
		if n < 0 || n >= 360 {
			t.Fatalf("Normalize360(%v) = %v outside [0,360)", l, n)
		}
		if math.Abs(Normalize360(n)-n) > 1e-12 {
			t.Errorf("Normalize360 not idempotent at %v", l)
		}
		if math.Abs(Normalize360(l+360)-n) > 1e-9 {
			t.Errorf("Normalize360(%v+360) != Normalize360(%v)", l, l)
		}
	}
}

func TestSignedSeparation_WrapAware(t *testing.T) {
	tests := []struct {
		a, b float64
		want float64
	}{
		{10, 350, 20},    // across the seam
		{350, 10, -20},   // across the seam, other direction
		{0, 180, 180},    // antipodal maps to +180, never -180
		{180, 0, 180},
		{90, 45, 45},
		{45, 90, -45},
		{1, 359, 2},
		{359, 1, -2},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if got := SignedSeparation(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SignedSeparation(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSeparation(t *testing.T) {
	if got := Separation(350, 10); math.Abs(got-20) > 1e-9 {
		t.Errorf("Separation(350, 10) = %v, want 20", got)
	}
	if got := Separation(10, 350); math.Abs(got-20) > 1e-9 {
		t.Errorf("Separation(10, 350) = %v, want 20", got)
	}

	// Range check across many pairs.
	for a := 0.0; a < 360; a += 17 {
		for b := 0.0; b < 360; b += 23 {
			s := Separation(a, b)
			if s < 0 || s > 180 {
				t.Fatalf("Separation(%v, %v) = %v outside [0,180]", a, b, s)
			}
		}
	}
}
