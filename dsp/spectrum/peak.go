package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-superpose/dsp/window"
)

// Config holds dominant-frequency analysis parameters.
//
// SampleRate must be supplied by the caller; there is no implicit default,
// since the frequency axis is undefined without it.
type Config struct {
	SampleRate float64
	// FFTSize is the transform size. Zero selects the next power of two
	// greater than or equal to the signal length.
	FFTSize int
	// Window selects the analysis window. The zero value selects Hann.
	Window window.Type
	// Interpolate enables parabolic sub-bin refinement of the peak position.
	Interpolate bool
}

// Peak describes the dominant spectral component of a signal.
type Peak struct {
	// Bin is the index of the strongest non-DC bin in the one-sided spectrum.
	Bin int
	// FreqHz is the peak frequency in cyclic hertz. With Interpolate enabled
	// this may fall between bin centers.
	FreqHz float64
	// Omega is the same frequency in angular units, 2*pi*FreqHz.
	Omega float64
	// Magnitude is the raw |X[k]| value at the peak bin.
	Magnitude float64
	// Amplitude is the window-compensated sinusoid amplitude estimate,
	// 2*|X[k]| / sum(window coefficients).
	Amplitude float64
	// BinWidthHz is the spacing of the frequency axis, SampleRate/FFTSize.
	BinWidthHz float64
}

// DominantFrequency finds the strongest non-DC spectral component of a
// real-valued signal.
//
// The signal mean is removed, the result is windowed and transformed, and
// the one-sided magnitude spectrum is searched over bins 1..Nyquist. Mean
// removal keeps DC leakage under the analysis window from masking the true
// peak; the DC bin itself is never reported as dominant.
func DominantFrequency(signal []float64, cfg Config) (Peak, error) {
	if len(signal) < 2 {
		return Peak{}, fmt.Errorf("spectrum: dominant frequency requires at least 2 samples: %d", len(signal))
	}

	if cfg.SampleRate <= 0 || math.IsNaN(cfg.SampleRate) || math.IsInf(cfg.SampleRate, 0) {
		return Peak{}, fmt.Errorf("spectrum: sample rate must be > 0: %v", cfg.SampleRate)
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(signal))
	}
	if fftSize < len(signal) {
		return Peak{}, fmt.Errorf("spectrum: FFT size %d smaller than signal length %d", fftSize, len(signal))
	}

	winType := cfg.Window
	if winType == 0 {
		winType = window.TypeHann
	}

	coeffs := window.Generate(winType, len(signal))

	coherentSum := 0.0
	for _, c := range coeffs {
		coherentSum += c
	}

	mean := 0.0
	for _, v := range signal {
		mean += v
	}
	mean /= float64(len(signal))

	inData := make([]complex128, fftSize)
	for i, v := range signal {
		inData[i] = complex((v-mean)*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Peak{}, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return Peak{}, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	binCount := fftSize/2 + 1
	mags := Magnitude(out[:binCount])

	// Argmax over bins 1..Nyquist. Bin 0 carries the DC offset and is
	// excluded from the peak search.
	peakBin := 1
	for i := 2; i < binCount; i++ {
		if mags[i] > mags[peakBin] {
			peakBin = i
		}
	}

	binHz := cfg.SampleRate / float64(fftSize)
	pos := float64(peakBin)

	if cfg.Interpolate && peakBin > 1 && peakBin < binCount-1 {
		pos += parabolicOffset(mags[peakBin-1], mags[peakBin], mags[peakBin+1])
	}

	freq := pos * binHz

	amplitude := 0.0
	if coherentSum != 0 {
		amplitude = 2 * mags[peakBin] / coherentSum
	}

	return Peak{
		Bin:        peakBin,
		FreqHz:     freq,
		Omega:      2 * math.Pi * freq,
		Magnitude:  mags[peakBin],
		Amplitude:  amplitude,
		BinWidthHz: binHz,
	}, nil
}

// parabolicOffset returns the sub-bin offset in [-0.5, 0.5] of the vertex of
// a parabola fitted through three adjacent magnitude values.
func parabolicOffset(left, center, right float64) float64 {
	denom := left - 2*center + right
	if denom == 0 {
		return 0
	}

	d := 0.5 * (left - right) / denom
	if d < -0.5 {
		return -0.5
	}
	if d > 0.5 {
		return 0.5
	}
	return d
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
