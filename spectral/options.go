package spectral

import "github.com/cwbudde/algo-spectral/record"

// ConvertConfig controls batch conversion.
type ConvertConfig struct {
	// SkipValidation bypasses the structural record check. The batch-wide
	// spectral-representation guard always runs.
	SkipValidation bool
}

// ConvertOption mutates a ConvertConfig.
type ConvertOption func(*ConvertConfig)

// WithSkipValidation disables the structural record check before conversion.
func WithSkipValidation(skip bool) ConvertOption {
	return func(cfg *ConvertConfig) {
		cfg.SkipValidation = skip
	}
}

func applyConvertOptions(opts []ConvertOption) ConvertConfig {
	var cfg ConvertConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// BuildConfig controls spectral record construction from time-domain signals.
type BuildConfig struct {
	Precision  record.Precision
	SampleRate float64
	FFTSize    int // FromSignal: transform size, 0 = next power of two
	FrameLen   int // FromFrames: analysis frame length
	FrameShift int // FromFrames: hop between frames
}

// BuildOption mutates a BuildConfig.
type BuildOption func(*BuildConfig)

// DefaultBuildConfig returns the construction defaults.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		Precision:  record.Double,
		FrameLen:   1024,
		FrameShift: 512,
	}
}

// WithPrecision sets the storage precision of constructed records.
func WithPrecision(prec record.Precision) BuildOption {
	return func(cfg *BuildConfig) {
		cfg.Precision = prec
	}
}

// WithSampleRate sets the source sample rate in Hz, used to fill the header
// bin spacing.
func WithSampleRate(sampleRate float64) BuildOption {
	return func(cfg *BuildConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFFTSize sets the transform size for FromSignal. It must be a power of
// two no smaller than the signal length.
func WithFFTSize(size int) BuildOption {
	return func(cfg *BuildConfig) {
		if size > 0 {
			cfg.FFTSize = size
		}
	}
}

// WithFrameLen sets the analysis frame length for FromFrames.
func WithFrameLen(frameLen int) BuildOption {
	return func(cfg *BuildConfig) {
		if frameLen > 0 {
			cfg.FrameLen = frameLen
		}
	}
}

// WithFrameShift sets the hop between analysis frames for FromFrames.
func WithFrameShift(frameShift int) BuildOption {
	return func(cfg *BuildConfig) {
		if frameShift > 0 {
			cfg.FrameShift = frameShift
		}
	}
}

func applyBuildOptions(opts []BuildOption) BuildConfig {
	cfg := DefaultBuildConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
