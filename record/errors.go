package record

import "errors"

var (
	// ErrNilRecord is returned when a batch operation encounters a nil record.
	ErrNilRecord = errors.New("nil record")
	// ErrNonSpectral is returned when a record's representation is neither
	// real/imaginary nor amplitude/phase.
	ErrNonSpectral = errors.New("record is not spectral")
	// ErrColumnMismatch is returned when matrix columns differ in length.
	ErrColumnMismatch = errors.New("columns must have equal length")
	// ErrOddColumns is returned when a spectral record's column count is not
	// even; spectral data is stored as column pairs.
	ErrOddColumns = errors.New("spectral data requires paired columns")
	// ErrUnknownPrecision is returned for a precision tag outside the known set.
	ErrUnknownPrecision = errors.New("unknown precision")
	// ErrUnknownRepresentation is returned by ParseRepresentation for an
	// unrecognized tag.
	ErrUnknownRepresentation = errors.New("unknown representation")
	// ErrUpdateMismatch is returned by ApplyUpdates when the update count does
	// not match the record count.
	ErrUpdateMismatch = errors.New("update count must match record count")
)
