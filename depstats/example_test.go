package depstats_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/depstats"
)

func ExampleCalculate() {
	s := depstats.Calculate([]float64{1, 2, 3, 4})
	fmt.Printf("min=%.1f max=%.1f mean=%.1f\n", s.Min, s.Max, s.Mean)
	// Output:
	// min=1.0 max=4.0 mean=2.5
}
