package record_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/record"
)

func ExampleParseRepresentation() {
	rep, _ := record.ParseRepresentation("Spectral File-Real/Imag")
	fmt.Println(rep.IsSpectral())
	fmt.Println(rep)
	// Output:
	// true
	// Spectral File-Real/Imag
}

func ExampleMatrixFromColumns() {
	m, _ := record.MatrixFromColumns([][]float64{{3}, {4}}, record.Single)
	r := record.New(record.RealImag, m)
	fmt.Println(r.Data.Rows(), r.Data.Columns(), r.Data.Precision())
	// Output:
	// 1 2 float32
}
