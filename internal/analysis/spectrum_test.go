package analysis

import (
	"math"
	"testing"
)

func sampledHalfSine(n int) []float64 {
	u := make([]float64, n)
	for j := range u {
		u[j] = math.Sin(math.Pi * float64(j) / float64(n-1))
	}
	return u
}

func alternating(n int) []float64 {
	u := make([]float64, n)
	for j := range u {
		if j%2 == 0 {
			u[j] = 1
		} else {
			u[j] = -1
		}
	}
	return u
}

func TestSpectrum_GridscaleModeLandsAtNyquist(t *testing.T) {
	ps := Spectrum(alternating(64))
	if len(ps) != 33 {
		t.Fatalf("spectrum length = %d, want 33", len(ps))
	}

	nyquist := ps[len(ps)-1]
	for k, amp := range ps[:len(ps)-1] {
		if amp >= nyquist {
			t.Errorf("bin %d amplitude %v >= nyquist amplitude %v", k, amp, nyquist)
		}
	}
}

func TestSpectrum_SmoothProfileIsLowFrequency(t *testing.T) {
	ps := Spectrum(sampledHalfSine(64))

	peak := 0
	for k := range ps {
		if ps[k] > ps[peak] {
			peak = k
		}
	}
	if peak > 2 {
		t.Errorf("peak bin = %d, want within the lowest modes", peak)
	}
}

func TestSpectrum_Empty(t *testing.T) {
	if ps := Spectrum(nil); ps != nil {
		t.Errorf("Spectrum(nil) = %v, want nil", ps)
	}
}

func TestHighModeFraction(t *testing.T) {
	tests := []struct {
		name    string
		profile []float64
		min     float64
		max     float64
	}{
		{"smooth half sine", sampledHalfSine(64), 0, 0.1},
		{"gridscale oscillation", alternating(64), 0.9, 1.0},
		{"flat", make([]float64, 64), 0, 0},
		{"too short", []float64{1, -1}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HighModeFraction(tt.profile)
			if got < tt.min || got > tt.max {
				t.Errorf("HighModeFraction = %v, want in [%v, %v]", got, tt.min, tt.max)
			}
		})
	}
}

func TestHighModeFraction_PaddedLength(t *testing.T) {
	// 100 points is not a power of two; padding must not push a smooth
	// profile into the high band.
	if got := HighModeFraction(sampledHalfSine(100)); got > 0.15 {
		t.Errorf("HighModeFraction = %v, want small for a smooth profile", got)
	}
}
