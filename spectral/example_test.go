package spectral_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/record"
	"github.com/cwbudde/algo-spectral/spectral"
)

func ExampleToAmplPhase() {
	data, _ := record.MatrixFromColumns([][]float64{{3}, {4}}, record.Double)
	r := record.New(record.RealImag, data)

	recs, _ := spectral.ToAmplPhase([]*record.Record{r})

	fmt.Printf("%.3f %.3f\n", recs[0].Data.At(0, 0), recs[0].Data.At(0, 1))
	fmt.Println(recs[0].Header.Representation)
	// Output:
	// 5.000 0.927
	// Spectral File-Ampl/Phase
}

func ExampleToRealImag() {
	data, _ := record.MatrixFromColumns([][]float64{{2}, {0}}, record.Double)
	r := record.New(record.AmplPhase, data)

	recs, _ := spectral.ToRealImag([]*record.Record{r})

	fmt.Printf("%.1f %.1f\n", recs[0].Data.At(0, 0), recs[0].Data.At(0, 1))
	// Output:
	// 2.0 0.0
}
