// Package spectral converts batches of spectral waveform records between
// real/imaginary and amplitude/phase column encodings, and builds spectral
// records from time-domain signals.
//
// Conversion is all-or-nothing per batch: every record is checked to be
// spectral (and structurally valid) before any record is mutated. Records
// already in the target representation pass through with their data untouched,
// so conversion is idempotent. Summary statistics are always recomputed from
// the final data, and each record keeps its storage precision.
package spectral
