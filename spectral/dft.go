package spectral

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-spectral/depstats"
	"github.com/cwbudde/algo-spectral/record"
)

// FromSignal transforms a time-domain signal into a real/imaginary spectral
// record. The signal is zero-padded to the transform size (by default the next
// power of two), and the full two-sided spectrum is stored as one (re, im)
// column pair. When a sample rate is configured, the header bin spacing is set
// to sampleRate/fftSize.
func FromSignal(signal []float64, opts ...BuildOption) (*record.Record, error) {
	cfg := applyBuildOptions(opts)

	if len(signal) == 0 {
		return nil, fmt.Errorf("spectral: FromSignal requires a non-empty signal")
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOfTwo(len(signal))
	}
	if fftSize < len(signal) {
		return nil, fmt.Errorf("spectral: fft size %d smaller than signal length %d",
			fftSize, len(signal))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectral: fft plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectral: forward fft: %w", err)
	}

	re := make([]float64, fftSize)
	im := make([]float64, fftSize)
	for i, c := range out {
		re[i] = real(c)
		im[i] = imag(c)
	}

	data, err := record.MatrixFromColumns([][]float64{re, im}, cfg.Precision)
	if err != nil {
		return nil, err
	}

	r := record.New(record.RealImag, data)
	if cfg.SampleRate > 0 {
		r.Header.Delta = cfg.SampleRate / float64(fftSize)
	}

	s := depstats.CalculateMatrix(data)
	r.Header.DepMin = s.Min
	r.Header.DepMax = s.Max
	r.Header.DepMen = s.Mean

	return r, nil
}

// ToSignal inverts a single-channel spectral record back to a time-domain
// signal via the inverse transform. Both spectral representations are
// accepted; amplitude/phase data is recombined on the fly without mutating the
// record. The row count must be a valid transform size.
func ToSignal(r *record.Record) ([]float64, error) {
	if err := record.Validate(r); err != nil {
		return nil, fmt.Errorf("spectral: %w", err)
	}
	if !r.Header.Representation.IsSpectral() {
		return nil, fmt.Errorf("spectral: %w: %s", record.ErrNonSpectral, r.Header.Representation)
	}
	if r.Dataless() {
		return nil, fmt.Errorf("spectral: ToSignal requires a record with data")
	}
	if r.Data.Columns() != 2 {
		return nil, fmt.Errorf("spectral: ToSignal requires a single channel, got %d columns",
			r.Data.Columns())
	}

	rows := r.Data.Rows()
	in := make([]complex128, rows)

	switch r.Header.Representation {
	case record.RealImag:
		re := r.Data.Col(0)
		im := r.Data.Col(1)
		for i := range in {
			in[i] = complex(re[i], im[i])
		}
	case record.AmplPhase:
		amp := r.Data.Col(0)
		phase := r.Data.Col(1)
		for i := range in {
			in[i] = polar(amp[i], phase[i])
		}
	}

	plan, err := algofft.NewPlan64(rows)
	if err != nil {
		return nil, fmt.Errorf("spectral: fft plan: %w", err)
	}

	out := make([]complex128, rows)
	if err := plan.Inverse(out, in); err != nil {
		return nil, fmt.Errorf("spectral: inverse fft: %w", err)
	}

	signal := make([]float64, rows)
	for i, c := range out {
		signal[i] = real(c)
	}

	return signal, nil
}

func polar(amp, phase float64) complex128 {
	sin, cos := math.Sincos(phase)
	return complex(amp*cos, amp*sin)
}

func nextPowerOfTwo(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
