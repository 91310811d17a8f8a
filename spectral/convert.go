package spectral

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectral/depstats"
	"github.com/cwbudde/algo-spectral/record"
)

// scratchBuf holds pooled scratch memory for per-channel decomposition.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (a, b []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// ToAmplPhase converts every real/imaginary record in the batch to
// amplitude/phase in place and returns the batch.
//
// The whole batch is checked before any record is mutated: every record must
// carry a spectral representation, and (unless disabled via
// [WithSkipValidation]) must pass [record.Validate]. A failed check rejects
// the entire batch unmodified.
//
// Per record, each column pair (re, im) becomes (amplitude, phase) with phase
// in (-pi, pi], quantized back to the record's storage precision. Records
// already in amplitude/phase keep their data bit for bit, so the operation is
// idempotent. Dataless records are not transformed and keep NaN statistics.
// Every record, including dataless ones, ends tagged [record.AmplPhase] with
// freshly computed DepMin/DepMax/DepMen.
func ToAmplPhase(recs []*record.Record, opts ...ConvertOption) ([]*record.Record, error) {
	cfg := applyConvertOptions(opts)

	if err := guardBatch(recs, cfg); err != nil {
		return nil, err
	}

	updates := make([]record.Update, len(recs))

	for i, r := range recs {
		if !r.Dataless() && r.Header.Representation == record.RealImag {
			decomposeToPolar(r.Data)
		}

		updates[i] = statsUpdate(record.AmplPhase, r.Data)
	}

	if err := record.ApplyUpdates(recs, updates, record.WithSkipValidation(true)); err != nil {
		return nil, err
	}

	return recs, nil
}

// ToRealImag converts every amplitude/phase record in the batch to
// real/imaginary in place and returns the batch. It mirrors [ToAmplPhase]:
// batch-wide guard before mutation, untouched data for records already in
// real/imaginary form, NaN statistics for dataless records, and a uniform
// [record.RealImag] tag afterwards.
func ToRealImag(recs []*record.Record, opts ...ConvertOption) ([]*record.Record, error) {
	cfg := applyConvertOptions(opts)

	if err := guardBatch(recs, cfg); err != nil {
		return nil, err
	}

	updates := make([]record.Update, len(recs))

	for i, r := range recs {
		if !r.Dataless() && r.Header.Representation == record.AmplPhase {
			recomposeFromPolar(r.Data)
		}

		updates[i] = statsUpdate(record.RealImag, r.Data)
	}

	if err := record.ApplyUpdates(recs, updates, record.WithSkipValidation(true)); err != nil {
		return nil, err
	}

	return recs, nil
}

// guardBatch runs the batch-wide preconditions: every record non-nil and
// spectral, and structurally valid unless validation is skipped. Nothing is
// mutated here.
func guardBatch(recs []*record.Record, cfg ConvertConfig) error {
	for i, r := range recs {
		if r == nil {
			return fmt.Errorf("spectral: record %d: %w", i, record.ErrNilRecord)
		}
		if !r.Header.Representation.IsSpectral() {
			return fmt.Errorf("spectral: record %d: %w: %s",
				i, record.ErrNonSpectral, r.Header.Representation)
		}
	}

	if cfg.SkipValidation {
		return nil
	}

	for i, r := range recs {
		if err := record.Validate(r); err != nil {
			return fmt.Errorf("spectral: record %d: %w", i, err)
		}
	}

	return nil
}

// decomposeToPolar rewrites each (re, im) column pair as (amplitude, phase).
// Amplitudes are computed with the SIMD-optimized vector path; phases use the
// two-argument arctangent so the range is (-pi, pi].
func decomposeToPolar(m *record.Matrix) {
	rows := m.Rows()
	amp, phase, buf := getScratch(rows)
	defer putScratch(buf)

	for j := 0; j+1 < m.Columns(); j += 2 {
		re := m.Col(j)
		im := m.Col(j + 1)

		vecmath.Magnitude(amp, re, im)
		for i := range phase {
			phase[i] = math.Atan2(im[i], re[i])
		}

		m.SetCol(j, amp)
		m.SetCol(j+1, phase)
	}
}

// recomposeFromPolar rewrites each (amplitude, phase) column pair as (re, im).
func recomposeFromPolar(m *record.Matrix) {
	rows := m.Rows()
	re, im, buf := getScratch(rows)
	defer putScratch(buf)

	for j := 0; j+1 < m.Columns(); j += 2 {
		amp := m.Col(j)
		phase := m.Col(j + 1)

		for i := 0; i < rows; i++ {
			sin, cos := math.Sincos(phase[i])
			re[i] = amp[i] * cos
			im[i] = amp[i] * sin
		}

		m.SetCol(j, re)
		m.SetCol(j+1, im)
	}
}

func statsUpdate(rep record.Representation, m *record.Matrix) record.Update {
	s := depstats.CalculateMatrix(m)
	return record.Update{
		Representation: rep,
		DepMin:         s.Min,
		DepMax:         s.Max,
		DepMen:         s.Mean,
	}
}
