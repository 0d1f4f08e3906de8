package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-superpose/dsp/core"
)

// SHM describes a single simple-harmonic-motion term
//
//	y(t) = A * sin(omega*t + phase)
//
// where A is recovered from LevelDB via the amplitude decibel convention
// A = 10^(LevelDB/20), referenced to 1.0. The descriptor is a plain value
// and is never mutated by any method.
type SHM struct {
	LevelDB float64 // level in decibels re 1.0
	Omega   float64 // angular frequency in rad/s
	Phase   float64 // phase offset in radians
}

// Amplitude returns the linear amplitude recovered from LevelDB.
func (s SHM) Amplitude() float64 {
	return core.DBToLinear(s.LevelDB)
}

// FreqHz returns the cyclic frequency Omega/(2*pi) in Hz.
func (s SHM) FreqHz() float64 {
	return core.OmegaToHz(s.Omega)
}

// Sample evaluates the term at time t.
func (s SHM) Sample(t float64) float64 {
	return s.Amplitude() * math.Sin(s.Omega*t+s.Phase)
}

// Render evaluates the term over the given time vector and returns a new
// slice of the same length. The time vector must be non-empty and contain
// only finite values.
func (s SHM) Render(times []float64) ([]float64, error) {
	if err := validateTimes(times); err != nil {
		return nil, err
	}

	out := make([]float64, len(times))
	amp := s.Amplitude()
	for i, t := range times {
		out[i] = amp * math.Sin(s.Omega*t+s.Phase)
	}
	return out, nil
}

// AddTo accumulates the term into dst over the given time vector.
// dst and times must have the same length.
func (s SHM) AddTo(dst, times []float64) error {
	if err := validateTimes(times); err != nil {
		return err
	}
	if len(dst) != len(times) {
		return fmt.Errorf("shm: dst/times length mismatch: %d != %d", len(dst), len(times))
	}

	amp := s.Amplitude()
	for i, t := range times {
		dst[i] += amp * math.Sin(s.Omega*t+s.Phase)
	}
	return nil
}

// Linspace returns n evenly spaced samples over [start, stop], endpoint
// included. n must be > 0; for n == 1 the result is [start].
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("linspace sample count must be > 0: %d", n)
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out, nil
	}

	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out, nil
}

func validateTimes(times []float64) error {
	if len(times) == 0 {
		return fmt.Errorf("shm: time vector must not be empty")
	}
	for i, t := range times {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return fmt.Errorf("shm: non-finite time value at index %d: %v", i, t)
		}
	}
	return nil
}
