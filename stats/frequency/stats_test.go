package frequency

import (
	"math"
	"testing"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}
	return math.Abs(a-b) <= tol
}

func TestCalculateBasic(t *testing.T) {
	// 5 bins at 8 kHz: bin width = 8000 / (2*4) = 1000 Hz.
	mag := []float64{0, 1, 4, 1, 0}
	s := Calculate(mag, 8000)

	if s.BinCount != 5 {
		t.Errorf("BinCount: got %d, want 5", s.BinCount)
	}
	if s.Max != 4 || s.MaxBin != 2 {
		t.Errorf("Max/MaxBin: got %g/%d, want 4/2", s.Max, s.MaxBin)
	}
	if !almostEqual(s.MaxFreq, 2000, tolerance) {
		t.Errorf("MaxFreq: got %g, want 2000", s.MaxFreq)
	}
	if !almostEqual(s.Sum, 6, tolerance) {
		t.Errorf("Sum: got %g, want 6", s.Sum)
	}
	if !almostEqual(s.Energy, 18, tolerance) {
		t.Errorf("Energy: got %g, want 18", s.Energy)
	}
	if !almostEqual(s.Average, 1.2, tolerance) {
		t.Errorf("Average: got %g, want 1.2", s.Average)
	}
}

func TestCalculateExcludesDCFromMax(t *testing.T) {
	// Huge DC bin must not win the peak search.
	mag := []float64{100, 1, 3, 1}
	s := Calculate(mag, 6000)

	if s.MaxBin != 2 {
		t.Errorf("MaxBin: got %d, want 2", s.MaxBin)
	}
	if !almostEqual(s.DC, 100, tolerance) {
		t.Errorf("DC: got %g, want 100", s.DC)
	}
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil, 8000)
	if s.BinCount != 0 {
		t.Errorf("BinCount: got %d, want 0", s.BinCount)
	}
	if !math.IsInf(s.DC_dB, -1) {
		t.Errorf("DC_dB: got %g, want -Inf", s.DC_dB)
	}
}

func TestCalculateSingleBin(t *testing.T) {
	s := Calculate([]float64{2}, 8000)
	if s.BinCount != 1 {
		t.Errorf("BinCount: got %d, want 1", s.BinCount)
	}
	if s.DC != 2 || s.Max != 2 || s.MaxBin != 0 {
		t.Errorf("unexpected single-bin stats: %+v", s)
	}
}

func TestCentroidSymmetricSpectrum(t *testing.T) {
	mag := []float64{0, 1, 2, 1, 0}
	got := Centroid(mag, 8000)
	if !almostEqual(got, 2000, tolerance) {
		t.Errorf("Centroid: got %g, want 2000", got)
	}
}

func TestFlatnessUniform(t *testing.T) {
	// Uniform non-DC bins have flatness 1.
	if got := Flatness([]float64{0, 1, 1, 1, 1}); !almostEqual(got, 1, tolerance) {
		t.Errorf("Flatness: got %g, want 1", got)
	}
}

func TestFlatnessWithZeroBin(t *testing.T) {
	if got := Flatness([]float64{0, 1, 0, 1}); got != 0 {
		t.Errorf("Flatness: got %g, want 0", got)
	}
}

func TestRolloff(t *testing.T) {
	mag := []float64{0, 1, 2, 1, 0}
	got := Rolloff(mag, 8000, 0.85)
	if !almostEqual(got, 3000, tolerance) {
		t.Errorf("Rolloff: got %g, want 3000", got)
	}
}

func TestCalculateFromComplex(t *testing.T) {
	spec := []complex128{complex(0, 0), complex(3, 4), complex(0, 1)}
	s := CalculateFromComplex(spec, 4000)
	if !almostEqual(s.Max, 5, tolerance) || s.MaxBin != 1 {
		t.Errorf("Max/MaxBin: got %g/%d, want 5/1", s.Max, s.MaxBin)
	}
}
