package time_test

import (
	"fmt"

	timestats "github.com/cwbudde/algo-superpose/stats/time"
)

func ExampleCalculate() {
	s := timestats.Calculate([]float64{1, -1, 1, -1})
	fmt.Printf("rms=%.1f zc=%d\n", s.RMS, s.ZeroCrossings)

	// Output:
	// rms=1.0 zc=3
}
