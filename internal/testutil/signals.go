package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// TwoTone generates the sum of two deterministic sine waves.
func TwoTone(freq1Hz, amp1, freq2Hz, amp2, sampleRate float64, length int) []float64 {
	out := make([]float64, length)
	step1 := 2 * math.Pi * freq1Hz / sampleRate
	step2 := 2 * math.Pi * freq2Hz / sampleRate
	for i := range out {
		out[i] = amp1*math.Sin(step1*float64(i)) + amp2*math.Sin(step2*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// TimeVector generates length uniformly spaced sample times starting at 0
// with the given sample rate.
func TimeVector(sampleRate float64, length int) []float64 {
	out := make([]float64, length)
	dt := 1 / sampleRate
	for i := range out {
		out[i] = float64(i) * dt
	}
	return out
}
