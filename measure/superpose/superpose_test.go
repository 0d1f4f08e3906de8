package superpose

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-superpose/dsp/core"
	"github.com/cwbudde/algo-superpose/dsp/signal"
	"github.com/cwbudde/algo-superpose/internal/testutil"
)

func TestWaveformLengthMatchesTimeDomain(t *testing.T) {
	s := New(60, 80, 100, 200)

	times, err := signal.Linspace(0, 10, 1000)
	if err != nil {
		t.Fatalf("Linspace() error = %v", err)
	}

	wave, err := s.Waveform(times)
	if err != nil {
		t.Fatalf("Waveform() error = %v", err)
	}
	if len(wave) != 1000 {
		t.Fatalf("len = %d, want 1000", len(wave))
	}
}

func TestWaveformDeterministic(t *testing.T) {
	times, err := signal.Linspace(0, 10, 1000)
	if err != nil {
		t.Fatalf("Linspace() error = %v", err)
	}

	a, err := New(60, 80, 100, 200).Waveform(times)
	if err != nil {
		t.Fatalf("Waveform() error = %v", err)
	}
	b, err := New(60, 80, 100, 200).Waveform(times)
	if err != nil {
		t.Fatalf("Waveform() error = %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic output at index %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestWaveformMutedSecondTerm(t *testing.T) {
	// -400 dB is an amplitude of 1e-20; the second term vanishes against
	// the first within double precision.
	s := New(60, -400, 100, 200)

	times, err := signal.Linspace(0, 10, 1000)
	if err != nil {
		t.Fatalf("Linspace() error = %v", err)
	}

	wave, err := s.Waveform(times)
	if err != nil {
		t.Fatalf("Waveform() error = %v", err)
	}

	single, err := signal.SHM{LevelDB: 60, Omega: 100}.Render(times)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, wave, single, 1e-9)
}

func TestWaveformDestructiveInterference(t *testing.T) {
	// Equal amplitudes, equal frequencies, pi phase offset: exact cancellation.
	s := New(0, 0, 100, 100, WithPhases(0, math.Pi))

	times, err := signal.Linspace(0, 10, 1000)
	if err != nil {
		t.Fatalf("Linspace() error = %v", err)
	}

	wave, err := s.Waveform(times)
	if err != nil {
		t.Fatalf("Waveform() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, wave, make([]float64, len(wave)), 1e-9)
}

func TestWaveformPhaseShiftInvariance(t *testing.T) {
	// Shifting both phases by the same constant must not change the level
	// statistics of the waveform, only its alignment to t=0.
	const shift = 0.7

	times := testutil.TimeVector(1000, 8000)

	sp := New(40, 46, 2*math.Pi*50, 2*math.Pi*120)
	base, err := sp.Waveform(times)
	if err != nil {
		t.Fatalf("Waveform() error = %v", err)
	}
	shifted, err := New(40, 46, 2*math.Pi*50, 2*math.Pi*120, WithPhases(shift, shift)).Waveform(times)
	if err != nil {
		t.Fatalf("Waveform() error = %v", err)
	}

	baseStats := sp.TimeStats(base)
	shiftedStats := sp.TimeStats(shifted)

	if !core.NearlyEqual(baseStats.RMS, shiftedStats.RMS, 1e-2) {
		t.Fatalf("RMS changed under common phase shift: %v != %v", baseStats.RMS, shiftedStats.RMS)
	}
	if !core.NearlyEqual(baseStats.Peak, shiftedStats.Peak, 0.1) {
		t.Fatalf("Peak changed under common phase shift: %v != %v", baseStats.Peak, shiftedStats.Peak)
	}
}

func TestWaveformEmptyTimeDomain(t *testing.T) {
	s := New(60, 80, 100, 200)
	if _, err := s.Waveform(nil); err == nil {
		t.Fatal("expected error for empty time domain")
	}
}

func TestWaveformNonFiniteTime(t *testing.T) {
	s := New(60, 80, 100, 200)
	if _, err := s.Waveform([]float64{0, math.NaN(), 2}); err == nil {
		t.Fatal("expected error for non-finite time value")
	}
}

func TestWaveformTo(t *testing.T) {
	s := New(60, 80, 100, 200)

	times, err := signal.Linspace(0, 1, 256)
	if err != nil {
		t.Fatalf("Linspace() error = %v", err)
	}

	want, err := s.Waveform(times)
	if err != nil {
		t.Fatalf("Waveform() error = %v", err)
	}

	dst := make([]float64, len(times))
	// Pre-fill to verify the buffer is cleared first.
	for i := range dst {
		dst[i] = 1e9
	}
	if err := s.WaveformTo(dst, times); err != nil {
		t.Fatalf("WaveformTo() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, dst, want, 1e-12)

	if err := s.WaveformTo(dst[:10], times); err == nil {
		t.Fatal("expected error for mismatched dst length")
	}
}

func TestSummarizeSingleTone(t *testing.T) {
	// 250 Hz at 1 kHz lands on exact sample points 0, 1, 0, -1, so the
	// sampled peak equals the true amplitude.
	s := New(60, -400, 2*math.Pi*250, 1)

	times := testutil.TimeVector(1000, 4096)
	wave, err := s.Waveform(times)
	if err != nil {
		t.Fatalf("Waveform() error = %v", err)
	}

	sum, err := s.Summarize(wave, 1000)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if !core.NearlyEqual(sum.PeakDB, 60, 1e-6) {
		t.Fatalf("PeakDB = %v, want 60", sum.PeakDB)
	}
	// RMS of a sine is peak - 3.01 dB.
	if !core.NearlyEqual(sum.RMSDB, 60-20*math.Log10(math.Sqrt2), 1e-3) {
		t.Fatalf("RMSDB = %v, want ~57", sum.RMSDB)
	}
	if math.Abs(sum.DominantFreqHz-250) > sum.BinWidthHz {
		t.Fatalf("DominantFreqHz = %v, want 250 +/- %v", sum.DominantFreqHz, sum.BinWidthHz)
	}
	if !core.NearlyEqual(sum.DominantOmega, 2*math.Pi*sum.DominantFreqHz, 1e-9) {
		t.Fatalf("DominantOmega = %v, want 2*pi*%v", sum.DominantOmega, sum.DominantFreqHz)
	}
}

func TestSummarizeStrongerToneDominates(t *testing.T) {
	// db2=80 beats db1=60 by a factor of 10 in amplitude, so the dominant
	// frequency must be omega2/(2*pi).
	s := New(60, 80, 100, 200)

	times, err := signal.Linspace(0, 10, 1000)
	if err != nil {
		t.Fatalf("Linspace() error = %v", err)
	}

	wave, err := s.Waveform(times)
	if err != nil {
		t.Fatalf("Waveform() error = %v", err)
	}

	sum, err := s.SummarizeTimeDomain(wave, times)
	if err != nil {
		t.Fatalf("SummarizeTimeDomain() error = %v", err)
	}

	wantHz := core.OmegaToHz(200)
	if math.Abs(sum.DominantFreqHz-wantHz) > sum.BinWidthHz {
		t.Fatalf("DominantFreqHz = %v, want %v +/- %v", sum.DominantFreqHz, wantHz, sum.BinWidthHz)
	}
}

func TestSummarizeErrors(t *testing.T) {
	s := New(60, 80, 100, 200)

	if _, err := s.Summarize([]float64{1}, 1000); err == nil {
		t.Fatal("expected error for undersized waveform")
	}
	if _, err := s.Summarize([]float64{1, 2, 3}, 0); err == nil {
		t.Fatal("expected error for missing sample rate")
	}
	if _, err := s.Summarize([]float64{1, 2, 3}, math.Inf(1)); err == nil {
		t.Fatal("expected error for infinite sample rate")
	}
}

func TestSummarizeTimeDomainErrors(t *testing.T) {
	s := New(60, 80, 100, 200)

	if _, err := s.SummarizeTimeDomain([]float64{1, 2}, []float64{0}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
	if _, err := s.SummarizeTimeDomain([]float64{1, 2, 3}, []float64{0, 1, 5}); err == nil {
		t.Fatal("expected error for non-uniform time vector")
	}
}

func TestSampleRateOf(t *testing.T) {
	times := testutil.TimeVector(1000, 64)
	sr, err := SampleRateOf(times)
	if err != nil {
		t.Fatalf("SampleRateOf() error = %v", err)
	}
	if !core.NearlyEqual(sr, 1000, 1e-9) {
		t.Fatalf("sample rate = %v, want 1000", sr)
	}
}

func TestSampleRateOfLinspace(t *testing.T) {
	times, err := signal.Linspace(0, 10, 1000)
	if err != nil {
		t.Fatalf("Linspace() error = %v", err)
	}

	sr, err := SampleRateOf(times)
	if err != nil {
		t.Fatalf("SampleRateOf() error = %v", err)
	}
	// 999 intervals over 10 seconds.
	if !core.NearlyEqual(sr, 99.9, 1e-6) {
		t.Fatalf("sample rate = %v, want 99.9", sr)
	}
}

func TestSampleRateOfErrors(t *testing.T) {
	if _, err := SampleRateOf([]float64{0}); err == nil {
		t.Fatal("expected error for single time sample")
	}
	if _, err := SampleRateOf([]float64{0, 0, 0}); err == nil {
		t.Fatal("expected error for zero spacing")
	}
	if _, err := SampleRateOf([]float64{2, 1, 0}); err == nil {
		t.Fatal("expected error for negative spacing")
	}
}

func TestSpectrumStats(t *testing.T) {
	s := New(60, 80, 100, 200)

	times, err := signal.Linspace(0, 10, 1000)
	if err != nil {
		t.Fatalf("Linspace() error = %v", err)
	}
	wave, err := s.Waveform(times)
	if err != nil {
		t.Fatalf("Waveform() error = %v", err)
	}

	sr, err := SampleRateOf(times)
	if err != nil {
		t.Fatalf("SampleRateOf() error = %v", err)
	}

	st, err := s.SpectrumStats(wave, sr)
	if err != nil {
		t.Fatalf("SpectrumStats() error = %v", err)
	}

	wantHz := core.OmegaToHz(200)
	binHz := sr / float64(2*(st.BinCount-1))
	if math.Abs(st.MaxFreq-wantHz) > binHz {
		t.Fatalf("MaxFreq = %v, want %v +/- %v", st.MaxFreq, wantHz, binHz)
	}

	if _, err := s.SpectrumStats(wave, 0); err == nil {
		t.Fatal("expected error for missing sample rate")
	}
}

func TestConfigOptions(t *testing.T) {
	s := New(1, 2, 3, 4, WithPhases(0.1, 0.2), WithFFTSize(2048), WithInterpolation())

	cfg := s.Config()
	if cfg.Phase1 != 0.1 || cfg.Phase2 != 0.2 {
		t.Fatalf("phases = %v/%v, want 0.1/0.2", cfg.Phase1, cfg.Phase2)
	}
	if cfg.FFTSize != 2048 {
		t.Fatalf("FFTSize = %d, want 2048", cfg.FFTSize)
	}
	if !cfg.Interpolate {
		t.Fatal("Interpolate not set")
	}

	if s.First().Phase != 0.1 || s.Second().Phase != 0.2 {
		t.Fatalf("descriptor phases = %v/%v, want 0.1/0.2", s.First().Phase, s.Second().Phase)
	}
}
