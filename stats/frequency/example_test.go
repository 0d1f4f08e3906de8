package frequency_test

import (
	"fmt"

	frequencystats "github.com/cwbudde/algo-superpose/stats/frequency"
)

func ExampleCalculate() {
	mag := []float64{0, 1, 2, 1, 0}
	s := frequencystats.Calculate(mag, 8000)
	fmt.Printf("centroid=%.0f rolloff=%.0f maxFreq=%.0f\n", s.Centroid, s.Rolloff, s.MaxFreq)

	// Output:
	// centroid=2000 rolloff=3000 maxFreq=2000
}

func ExampleFlatness() {
	flat := frequencystats.Flatness([]float64{0, 1, 1, 1, 1})
	fmt.Printf("flatness=%.1f\n", flat)

	// Output:
	// flatness=1.0
}
