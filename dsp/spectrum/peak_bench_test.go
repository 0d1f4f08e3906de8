package spectrum

import (
	"math"
	"testing"
)

func BenchmarkDominantFrequency(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"256", 256},
		{"1K", 1024},
		{"4K", 4096},
		{"16K", 16384},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			signal := make([]float64, testCase.size)
			for i := range signal {
				signal[i] = math.Sin(2 * math.Pi * 440 * float64(i) / 48000)
			}

			cfg := Config{SampleRate: 48000}

			b.ReportAllocs()
			b.SetBytes(int64(testCase.size * 8))
			b.ResetTimer()

			for range b.N {
				if _, err := DominantFrequency(signal, cfg); err != nil {
					b.Fatalf("DominantFrequency failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkMagnitudeSpectrum(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"256", 256},
		{"1K", 1024},
		{"4K", 4096},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			signal := make([]float64, testCase.size)
			for i := range signal {
				signal[i] = math.Sin(2 * math.Pi * 440 * float64(i) / 48000)
			}

			cfg := Config{SampleRate: 48000}

			b.ReportAllocs()
			b.SetBytes(int64(testCase.size * 8))
			b.ResetTimer()

			for range b.N {
				if _, err := MagnitudeSpectrum(signal, cfg); err != nil {
					b.Fatalf("MagnitudeSpectrum failed: %v", err)
				}
			}
		})
	}
}
