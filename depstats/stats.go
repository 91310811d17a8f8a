// Package depstats computes summary statistics over a record's sample matrix:
// the dependent-variable minimum, maximum and mean kept in record headers.
package depstats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-spectral/record"
)

// Stats holds summary statistics over a set of sample values.
type Stats struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
	Sum   float64
	Range float64 // Max - Min
}

// emptyStats returns the statistics of an empty value set: zero count, NaN
// extrema and mean.
func emptyStats() Stats {
	return Stats{
		Min:   math.NaN(),
		Max:   math.NaN(),
		Mean:  math.NaN(),
		Range: math.NaN(),
	}
}

// Calculate computes summary statistics over values. An empty slice yields NaN
// extrema and mean.
func Calculate(values []float64) Stats {
	if len(values) == 0 {
		return emptyStats()
	}

	min := floats.Min(values)
	max := floats.Max(values)

	return Stats{
		Count: len(values),
		Min:   min,
		Max:   max,
		Mean:  stat.Mean(values, nil),
		Sum:   floats.Sum(values),
		Range: max - min,
	}
}

// CalculateMatrix computes summary statistics over every element of a record
// matrix. A nil or dataless matrix yields NaN extrema and mean.
func CalculateMatrix(m *record.Matrix) Stats {
	if m.Rows() == 0 || m.Columns() == 0 {
		return emptyStats()
	}

	return Calculate(m.Elements())
}
