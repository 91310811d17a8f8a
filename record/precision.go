package record

import (
	"github.com/x448/float16"
)

// Precision tags the storage width of a record's sample matrix.
//
// All arithmetic in this module is performed in float64; Precision only
// constrains which values a matrix can hold. Narrower precisions are modeled by
// quantizing every stored value through the corresponding IEEE format, so a
// matrix tagged Single or Half contains exactly the values a []float32 or
// []float16 buffer would.
type Precision int

const (
	// Double stores IEEE binary64 values (no quantization).
	Double Precision = iota
	// Single stores IEEE binary32 values.
	Single
	// Half stores IEEE binary16 values.
	Half
)

// Quantize rounds v to the nearest value representable in the precision.
// NaN and infinities pass through unchanged for Double and Single; Half maps
// values outside its range to infinity per IEEE rounding.
func (p Precision) Quantize(v float64) float64 {
	switch p {
	case Single:
		return float64(float32(v))
	case Half:
		return float64(float16.Fromfloat32(float32(v)).Float32())
	default:
		return v
	}
}

// String returns a short name for the precision.
func (p Precision) String() string {
	switch p {
	case Double:
		return "float64"
	case Single:
		return "float32"
	case Half:
		return "float16"
	default:
		return "invalid"
	}
}

func (p Precision) valid() bool {
	return p == Double || p == Single || p == Half
}
