// Package record defines the spectral waveform record data model: a
// precision-tagged sample matrix, a closed representation enum, and a header
// carrying summary statistics over the data.
//
// Records are plain in-memory values. The package performs no I/O; parsing and
// serialization live outside this module.
package record

import "math"

// Header holds per-record metadata.
//
// DepMin, DepMax and DepMen are the minimum, maximum and mean over all matrix
// elements; they are NaN until computed and stay NaN for dataless records.
// Delta is the sample spacing between rows (Hz for spectral records), zero when
// unknown.
type Header struct {
	Representation Representation
	DepMin         float64
	DepMax         float64
	DepMen         float64
	Delta          float64
}

// Record is one waveform record: a header plus an optional sample matrix.
// A nil or zero-row matrix makes the record dataless; it then carries only
// metadata.
type Record struct {
	Header Header
	Data   *Matrix
}

// New creates a record with the given representation and data. Statistics
// start as NaN; use ApplyUpdates or the spectral converters to fill them.
func New(rep Representation, data *Matrix) *Record {
	return &Record{
		Header: Header{
			Representation: rep,
			DepMin:         math.NaN(),
			DepMax:         math.NaN(),
			DepMen:         math.NaN(),
		},
		Data: data,
	}
}

// Dataless reports whether the record carries no sample data.
func (r *Record) Dataless() bool {
	return r.Data.Rows() == 0 || r.Data.Columns() == 0
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}

	return &Record{
		Header: r.Header,
		Data:   r.Data.Clone(),
	}
}
