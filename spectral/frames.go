package spectral

import (
	"fmt"

	"github.com/r9y9/gossp/stft"

	"github.com/cwbudde/algo-spectral/depstats"
	"github.com/cwbudde/algo-spectral/record"
)

// FromFrames runs a short-time Fourier transform over the signal and returns
// one real/imaginary spectral record per analysis frame. Frame length and hop
// follow the build options; frames are Hann-windowed by the STFT backend.
//
// The resulting batch is the natural input to [ToAmplPhase].
func FromFrames(signal []float64, opts ...BuildOption) ([]*record.Record, error) {
	cfg := applyBuildOptions(opts)

	if len(signal) < cfg.FrameLen {
		return nil, fmt.Errorf("spectral: signal length %d shorter than frame length %d",
			len(signal), cfg.FrameLen)
	}
	if cfg.FrameShift > cfg.FrameLen {
		return nil, fmt.Errorf("spectral: frame shift %d larger than frame length %d",
			cfg.FrameShift, cfg.FrameLen)
	}

	s := stft.New(cfg.FrameShift, cfg.FrameLen)
	spectrogram := s.STFT(signal)

	recs := make([]*record.Record, 0, len(spectrogram))

	for f, bins := range spectrogram {
		re := make([]float64, len(bins))
		im := make([]float64, len(bins))
		for i, c := range bins {
			re[i] = real(c)
			im[i] = imag(c)
		}

		data, err := record.MatrixFromColumns([][]float64{re, im}, cfg.Precision)
		if err != nil {
			return nil, fmt.Errorf("spectral: frame %d: %w", f, err)
		}

		r := record.New(record.RealImag, data)
		if cfg.SampleRate > 0 {
			r.Header.Delta = cfg.SampleRate / float64(cfg.FrameLen)
		}

		st := depstats.CalculateMatrix(data)
		r.Header.DepMin = st.Min
		r.Header.DepMax = st.Max
		r.Header.DepMen = st.Mean

		recs = append(recs, r)
	}

	return recs, nil
}
