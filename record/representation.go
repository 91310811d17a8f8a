package record

import "fmt"

// Representation identifies how a record's sample matrix is to be interpreted.
//
// Spectral records store one complex channel per column pair: for [RealImag]
// the pair holds real and imaginary parts, for [AmplPhase] it holds amplitude
// and phase (radians). [TimeSeries] and [Unknown] records are valid in the data
// model but are rejected by the spectral converters.
type Representation int

const (
	// Unknown is the zero value; records tagged Unknown fail the spectral guard.
	Unknown Representation = iota
	// TimeSeries marks time-domain sample data.
	TimeSeries
	// RealImag marks a spectrum stored as real/imaginary column pairs.
	RealImag
	// AmplPhase marks a spectrum stored as amplitude/phase column pairs.
	AmplPhase
)

const (
	nameTimeSeries = "Time Series File"
	nameRealImag   = "Spectral File-Real/Imag"
	nameAmplPhase  = "Spectral File-Ampl/Phase"
	nameUnknown    = "Unknown File Type"
)

// IsSpectral reports whether the representation is one of the two spectral
// encodings.
func (r Representation) IsSpectral() bool {
	return r == RealImag || r == AmplPhase
}

// String returns the human-readable tag for the representation.
func (r Representation) String() string {
	switch r {
	case TimeSeries:
		return nameTimeSeries
	case RealImag:
		return nameRealImag
	case AmplPhase:
		return nameAmplPhase
	default:
		return nameUnknown
	}
}

// ParseRepresentation maps a human-readable tag back to its [Representation].
func ParseRepresentation(s string) (Representation, error) {
	switch s {
	case nameTimeSeries:
		return TimeSeries, nil
	case nameRealImag:
		return RealImag, nil
	case nameAmplPhase:
		return AmplPhase, nil
	default:
		return Unknown, fmt.Errorf("record: %w: %q", ErrUnknownRepresentation, s)
	}
}
