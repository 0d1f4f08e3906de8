package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-superpose/dsp/window"
)

// MagnitudeSpectrum returns the one-sided magnitude spectrum of a real
// signal, bins 0 (DC) through Nyquist.
//
// The signal is windowed per cfg and zero-padded to the FFT size. Unlike
// [DominantFrequency], the signal mean is kept, so bin 0 reflects the DC
// content. cfg.SampleRate is not used here; it only scales the frequency
// axis, which the caller applies when interpreting bins.
func MagnitudeSpectrum(signal []float64, cfg Config) ([]float64, error) {
	if len(signal) < 2 {
		return nil, fmt.Errorf("spectrum: magnitude spectrum requires at least 2 samples: %d", len(signal))
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(signal))
	}
	if fftSize < len(signal) {
		return nil, fmt.Errorf("spectrum: FFT size %d smaller than signal length %d", fftSize, len(signal))
	}

	winType := cfg.Window
	if winType == 0 {
		winType = window.TypeHann
	}

	coeffs := window.Generate(winType, len(signal))

	inData := make([]complex128, fftSize)
	for i, v := range signal {
		inData[i] = complex(v*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	return Magnitude(out[:fftSize/2+1]), nil
}

// BinWidth returns the frequency spacing in Hz of a one-sided spectrum with
// the given bin count, binCount = fftSize/2 + 1.
func BinWidth(sampleRate float64, binCount int) float64 {
	if binCount < 2 {
		return 0
	}
	return sampleRate / float64(2*(binCount-1))
}

// BinFrequency returns the center frequency in Hz of bin i in a one-sided
// spectrum with the given bin count.
func BinFrequency(i int, sampleRate float64, binCount int) float64 {
	return float64(i) * BinWidth(sampleRate, binCount)
}
