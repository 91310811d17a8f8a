package spectral

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/record"
)

func benchBatch(b *testing.B, rows, nrecs int) []*record.Record {
	b.Helper()

	recs := make([]*record.Record, nrecs)
	for k := range recs {
		re := make([]float64, rows)
		im := make([]float64, rows)
		for i := range re {
			re[i] = math.Sin(float64(i + k))
			im[i] = math.Cos(float64(i - k))
		}

		m, err := record.MatrixFromColumns([][]float64{re, im}, record.Double)
		if err != nil {
			b.Fatalf("MatrixFromColumns failed: %v", err)
		}
		recs[k] = record.New(record.RealImag, m)
	}

	return recs
}

func BenchmarkToAmplPhase1024(b *testing.B) {
	recs := benchBatch(b, 1024, 8)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		// Reset representations so every iteration performs the decomposition.
		for _, r := range recs {
			r.Header.Representation = record.RealImag
		}
		if _, err := ToAmplPhase(recs, WithSkipValidation(true)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkToAmplPhasePassThrough(b *testing.B) {
	recs := benchBatch(b, 1024, 8)
	if _, err := ToAmplPhase(recs); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := ToAmplPhase(recs, WithSkipValidation(true)); err != nil {
			b.Fatal(err)
		}
	}
}
