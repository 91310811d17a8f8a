package spectral

import (
	"fmt"

	"github.com/go-audio/audio"

	"github.com/cwbudde/algo-spectral/record"
)

// FromAudioBuffer builds a real/imaginary spectral record from an in-memory
// go-audio buffer. The buffer must be mono; its sample rate, when present,
// overrides any configured one. File decoding is out of scope here — callers
// bring already-decoded buffers.
func FromAudioBuffer(buf audio.Buffer, opts ...BuildOption) (*record.Record, error) {
	if buf == nil {
		return nil, fmt.Errorf("spectral: nil audio buffer")
	}

	f := buf.AsFloatBuffer()
	if f == nil || len(f.Data) == 0 {
		return nil, fmt.Errorf("spectral: empty audio buffer")
	}

	if f.Format != nil {
		if f.Format.NumChannels != 1 {
			return nil, fmt.Errorf("spectral: audio buffer must be mono, got %d channels",
				f.Format.NumChannels)
		}
		if f.Format.SampleRate > 0 {
			opts = append(opts, WithSampleRate(float64(f.Format.SampleRate)))
		}
	}

	return FromSignal(f.Data, opts...)
}
