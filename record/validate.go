package record

import "fmt"

// Validate checks that a record is structurally well formed: a known precision
// tag, consistent column lengths, and an even column count when the
// representation is spectral. Dataless records always pass.
func Validate(r *Record) error {
	if r == nil {
		return fmt.Errorf("record: %w", ErrNilRecord)
	}
	if r.Data == nil {
		return nil
	}

	if !r.Data.prec.valid() {
		return fmt.Errorf("record: %w: %d", ErrUnknownPrecision, int(r.Data.prec))
	}

	for j, col := range r.Data.cols {
		if len(col) != r.Data.rows {
			return fmt.Errorf("record: %w: column %d has %d rows, want %d",
				ErrColumnMismatch, j, len(col), r.Data.rows)
		}
	}

	if r.Header.Representation.IsSpectral() && !r.Dataless() && r.Data.Columns()%2 != 0 {
		return fmt.Errorf("record: %w: %d columns", ErrOddColumns, r.Data.Columns())
	}

	return nil
}
