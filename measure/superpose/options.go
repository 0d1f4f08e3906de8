package superpose

import "github.com/cwbudde/algo-superpose/dsp/window"

// Config defines configuration for a Superposer.
type Config struct {
	// Phase1 and Phase2 are the phase offsets in radians. Both default to 0.
	Phase1 float64
	Phase2 float64
	// Window selects the analysis window for spectral summaries.
	// The zero value selects Hann.
	Window window.Type
	// FFTSize overrides the transform size for spectral summaries.
	// Zero selects the next power of two >= the waveform length.
	FFTSize int
	// Interpolate enables parabolic sub-bin refinement of the dominant
	// frequency estimate.
	Interpolate bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults: zero phase offsets, Hann
// analysis window, automatic FFT size, no sub-bin interpolation.
func DefaultConfig() Config {
	return Config{
		Window: window.TypeHann,
	}
}

// WithPhases sets both phase offsets in radians.
func WithPhases(phi1, phi2 float64) Option {
	return func(cfg *Config) {
		cfg.Phase1 = phi1
		cfg.Phase2 = phi2
	}
}

// WithWindow sets the analysis window for spectral summaries.
func WithWindow(t window.Type) Option {
	return func(cfg *Config) {
		cfg.Window = t
	}
}

// WithFFTSize sets the transform size for spectral summaries.
func WithFFTSize(size int) Option {
	return func(cfg *Config) {
		if size > 0 {
			cfg.FFTSize = size
		}
	}
}

// WithInterpolation enables parabolic sub-bin refinement of the dominant
// frequency estimate.
func WithInterpolation() Option {
	return func(cfg *Config) {
		cfg.Interpolate = true
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
