package record

import "fmt"

// Matrix is a column-major numeric matrix of samples by columns.
//
// Every stored value is representable in the matrix precision: constructors and
// setters quantize on store. Spectral records keep one complex channel per
// adjacent column pair.
type Matrix struct {
	cols [][]float64
	rows int
	prec Precision
}

// NewMatrix allocates a zero-filled rows-by-cols matrix with the given
// precision.
func NewMatrix(rows, cols int, prec Precision) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("record: matrix dimensions must be >= 0: %dx%d", rows, cols)
	}
	if !prec.valid() {
		return nil, fmt.Errorf("record: %w: %d", ErrUnknownPrecision, int(prec))
	}

	m := &Matrix{
		cols: make([][]float64, cols),
		rows: rows,
		prec: prec,
	}
	for j := range m.cols {
		m.cols[j] = make([]float64, rows)
	}

	return m, nil
}

// MatrixFromColumns builds a matrix from column slices, quantizing every value
// to the given precision. The input slices are copied.
func MatrixFromColumns(cols [][]float64, prec Precision) (*Matrix, error) {
	if !prec.valid() {
		return nil, fmt.Errorf("record: %w: %d", ErrUnknownPrecision, int(prec))
	}

	rows := 0
	if len(cols) > 0 {
		rows = len(cols[0])
	}

	m := &Matrix{
		cols: make([][]float64, len(cols)),
		rows: rows,
		prec: prec,
	}

	for j, col := range cols {
		if len(col) != rows {
			return nil, fmt.Errorf("record: %w: column %d has %d rows, want %d",
				ErrColumnMismatch, j, len(col), rows)
		}

		dst := make([]float64, rows)
		for i, v := range col {
			dst[i] = prec.Quantize(v)
		}
		m.cols[j] = dst
	}

	return m, nil
}

// Rows returns the sample count per column.
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}
	return m.rows
}

// Columns returns the column count.
func (m *Matrix) Columns() int {
	if m == nil {
		return 0
	}
	return len(m.cols)
}

// Precision returns the storage precision tag.
func (m *Matrix) Precision() Precision {
	if m == nil {
		return Double
	}
	return m.prec
}

// At returns the value at row i of column j.
func (m *Matrix) At(i, j int) float64 {
	return m.cols[j][i]
}

// Set stores v at row i of column j, quantized to the matrix precision.
func (m *Matrix) Set(i, j int, v float64) {
	m.cols[j][i] = m.prec.Quantize(v)
}

// Col returns the backing slice of column j. Callers must treat it as
// read-only; use Set or SetCol to keep the precision invariant.
func (m *Matrix) Col(j int) []float64 {
	return m.cols[j]
}

// SetCol replaces column j with vals, quantized to the matrix precision.
// vals must have exactly Rows elements.
func (m *Matrix) SetCol(j int, vals []float64) {
	if len(vals) != m.rows {
		panic(fmt.Sprintf("record: SetCol length %d, want %d", len(vals), m.rows))
	}
	dst := m.cols[j]
	for i, v := range vals {
		dst[i] = m.prec.Quantize(v)
	}
}

// Elements returns all matrix values flattened column by column.
// The result is a fresh slice of Rows*Columns values.
func (m *Matrix) Elements() []float64 {
	if m.Rows() == 0 || m.Columns() == 0 {
		return nil
	}

	out := make([]float64, 0, m.rows*len(m.cols))
	for _, col := range m.cols {
		out = append(out, col...)
	}

	return out
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}

	c := &Matrix{
		cols: make([][]float64, len(m.cols)),
		rows: m.rows,
		prec: m.prec,
	}
	for j, col := range m.cols {
		dst := make([]float64, len(col))
		copy(dst, col)
		c.cols[j] = dst
	}

	return c
}
