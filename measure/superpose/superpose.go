package superpose

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-superpose/dsp/core"
	"github.com/cwbudde/algo-superpose/dsp/signal"
	"github.com/cwbudde/algo-superpose/dsp/spectrum"
	frequencystats "github.com/cwbudde/algo-superpose/stats/frequency"
	timestats "github.com/cwbudde/algo-superpose/stats/time"
)

// Relative tolerance for the uniform-spacing check in SampleRateOf.
const spacingTolerance = 1e-6

// Superposer holds two immutable SHM descriptors and the analysis
// configuration. All methods are pure; a Superposer is safe for concurrent
// use from multiple goroutines.
type Superposer struct {
	first  signal.SHM
	second signal.SHM
	cfg    Config
}

// Summary holds the level and dominant-frequency summary of a waveform.
type Summary struct {
	// PeakDB is the peak absolute amplitude in decibels re 1.0, the inverse
	// of the construction relation. -Inf for an all-zero waveform.
	PeakDB float64
	// RMSDB is the root-mean-square level in decibels re 1.0.
	RMSDB float64
	// DominantFreqHz is the strongest non-DC spectral component in cyclic
	// hertz.
	DominantFreqHz float64
	// DominantOmega is the same frequency in angular units: 2*pi*DominantFreqHz.
	DominantOmega float64
	// DominantBin is the index of the dominant bin in the one-sided spectrum.
	DominantBin int
	// BinWidthHz is the frequency resolution of the analysis.
	BinWidthHz float64
}

// New creates a Superposer from two decibel levels and two angular
// frequencies in rad/s. Phase offsets default to 0 and are supplied via
// [WithPhases]. All inputs are accepted as given; a negative angular
// frequency simply flips the sign of that sinusoid.
func New(db1, db2, omega1, omega2 float64, opts ...Option) *Superposer {
	cfg := ApplyOptions(opts...)

	return &Superposer{
		first:  signal.SHM{LevelDB: db1, Omega: omega1, Phase: cfg.Phase1},
		second: signal.SHM{LevelDB: db2, Omega: omega2, Phase: cfg.Phase2},
		cfg:    cfg,
	}
}

// First returns the first SHM descriptor.
func (s *Superposer) First() signal.SHM {
	return s.first
}

// Second returns the second SHM descriptor.
func (s *Superposer) Second() signal.SHM {
	return s.second
}

// Config returns the analysis configuration.
func (s *Superposer) Config() Config {
	return s.cfg
}

// Waveform renders the superposed waveform over the given time vector and
// returns a new slice of exactly the same length.
//
// The time vector must be non-empty and contain only finite values;
// otherwise an error is returned and no partial result is produced.
func (s *Superposer) Waveform(times []float64) ([]float64, error) {
	out, err := s.first.Render(times)
	if err != nil {
		return nil, fmt.Errorf("superpose: %w", err)
	}

	if err := s.second.AddTo(out, times); err != nil {
		return nil, fmt.Errorf("superpose: %w", err)
	}

	return out, nil
}

// WaveformTo renders the superposed waveform into dst, which must have the
// same length as times. This is the allocation-free path for repeated
// rendering.
func (s *Superposer) WaveformTo(dst, times []float64) error {
	if len(dst) != len(times) {
		return fmt.Errorf("superpose: dst/times length mismatch: %d != %d", len(dst), len(times))
	}

	core.Zero(dst)

	if err := s.first.AddTo(dst, times); err != nil {
		return fmt.Errorf("superpose: %w", err)
	}

	if err := s.second.AddTo(dst, times); err != nil {
		return fmt.Errorf("superpose: %w", err)
	}

	return nil
}

// Summarize computes the level and dominant-frequency summary of a waveform
// sampled at the given rate in Hz.
//
// The waveform may be one produced by [Superposer.Waveform] or any other
// same-shaped sequence. It must contain at least 2 samples, and sampleRate
// must be positive; the rate is never inferred from hidden state.
func (s *Superposer) Summarize(waveform []float64, sampleRate float64) (Summary, error) {
	if len(waveform) < 2 {
		return Summary{}, fmt.Errorf("superpose: summary requires at least 2 samples: %d", len(waveform))
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return Summary{}, fmt.Errorf("superpose: sample rate must be > 0: %v (pass the capture rate or use SummarizeTimeDomain)", sampleRate)
	}

	peak, err := spectrum.DominantFrequency(waveform, spectrum.Config{
		SampleRate:  sampleRate,
		FFTSize:     s.cfg.FFTSize,
		Window:      s.cfg.Window,
		Interpolate: s.cfg.Interpolate,
	})
	if err != nil {
		return Summary{}, fmt.Errorf("superpose: %w", err)
	}

	st := timestats.Calculate(waveform)

	return Summary{
		PeakDB:         st.Peak_dB,
		RMSDB:          st.RMS_dB,
		DominantFreqHz: peak.FreqHz,
		DominantOmega:  peak.Omega,
		DominantBin:    peak.Bin,
		BinWidthHz:     peak.BinWidthHz,
	}, nil
}

// SummarizeTimeDomain computes the summary of a waveform whose sample rate
// is derived from a uniformly spaced time vector. waveform and times must
// have the same length.
func (s *Superposer) SummarizeTimeDomain(waveform, times []float64) (Summary, error) {
	if len(waveform) != len(times) {
		return Summary{}, fmt.Errorf("superpose: waveform/times length mismatch: %d != %d", len(waveform), len(times))
	}

	sampleRate, err := SampleRateOf(times)
	if err != nil {
		return Summary{}, err
	}

	return s.Summarize(waveform, sampleRate)
}

// TimeStats computes time-domain statistics of a waveform. The result is
// valid for any input; an empty waveform yields -Inf dB fields.
func (s *Superposer) TimeStats(waveform []float64) timestats.Stats {
	return timestats.Calculate(waveform)
}

// SpectrumStats computes one-sided magnitude-spectrum statistics of a
// waveform sampled at the given rate in Hz, using the configured analysis
// window.
func (s *Superposer) SpectrumStats(waveform []float64, sampleRate float64) (frequencystats.Stats, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return frequencystats.Stats{}, fmt.Errorf("superpose: sample rate must be > 0: %v", sampleRate)
	}

	mags, err := spectrum.MagnitudeSpectrum(waveform, spectrum.Config{
		SampleRate: sampleRate,
		FFTSize:    s.cfg.FFTSize,
		Window:     s.cfg.Window,
	})
	if err != nil {
		return frequencystats.Stats{}, fmt.Errorf("superpose: %w", err)
	}

	return frequencystats.Calculate(mags, sampleRate), nil
}

// SampleRateOf derives the sample rate in Hz from a uniformly spaced time
// vector. It returns an error if the vector has fewer than 2 samples, the
// spacing is not strictly positive, or the spacing varies beyond a small
// relative tolerance.
func SampleRateOf(times []float64) (float64, error) {
	if len(times) < 2 {
		return 0, fmt.Errorf("superpose: sample rate inference requires at least 2 time samples: %d", len(times))
	}

	dt := times[1] - times[0]
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return 0, fmt.Errorf("superpose: time vector spacing must be > 0: %v", dt)
	}

	for i := 2; i < len(times); i++ {
		step := times[i] - times[i-1]
		if !core.NearlyEqual(step, dt, spacingTolerance) {
			return 0, fmt.Errorf("superpose: time vector not uniformly spaced at index %d: step %v != %v", i, step, dt)
		}
	}

	return 1 / dt, nil
}
