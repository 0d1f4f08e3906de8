// Package superpose computes the superposition of two simple-harmonic-motion
// signals and summarizes the result.
//
// A Superposer is built from two decibel levels and two angular frequencies,
// with optional phase offsets. It renders the pointwise sum
//
//	A1*sin(w1*t + phi1) + A2*sin(w2*t + phi2)
//
// over a caller-supplied time vector, where each linear amplitude is
// recovered as A = 10^(db/20) re 1.0. The summary reports the waveform
// level in decibels (peak and RMS, inverse of the construction relation)
// and the dominant frequency from an FFT magnitude spectrum with the DC
// component excluded.
//
// The sample rate for spectral analysis is always explicit: pass it as a
// scalar to Summarize, or hand the original uniform time vector to
// SummarizeTimeDomain and let it derive the rate from the spacing. Dominant
// frequency is reported in both cyclic (Hz) and angular (rad/s) units; the
// conversion factor is 2*pi.
//
// # Usage
//
//	s := superpose.New(60, 80, 100, 200)
//	times, _ := signal.Linspace(0, 10, 1000)
//	wave, _ := s.Waveform(times)
//	sum, _ := s.SummarizeTimeDomain(wave, times)
//	fmt.Printf("%.1f dB at %.2f Hz\n", sum.PeakDB, sum.DominantFreqHz)
//
// Superposer instances are immutable after construction; all methods are
// pure functions of their inputs and safe for concurrent use.
package superpose
