package record

import "fmt"

// Update is one record's worth of header changes applied by [ApplyUpdates].
type Update struct {
	Representation Representation
	DepMin         float64
	DepMax         float64
	DepMen         float64
}

// UpdateConfig controls batch header updates.
type UpdateConfig struct {
	// SkipValidation bypasses the structural check of each record before any
	// header is written. Callers that have already validated the batch set this
	// to avoid redundant work.
	SkipValidation bool
}

// UpdateOption mutates an UpdateConfig.
type UpdateOption func(*UpdateConfig)

// WithSkipValidation controls whether ApplyUpdates validates each record
// before writing.
func WithSkipValidation(skip bool) UpdateOption {
	return func(cfg *UpdateConfig) {
		cfg.SkipValidation = skip
	}
}

// ApplyUpdates writes representation and statistics onto each record's header.
//
// updates must have exactly one entry per record. Unless validation is skipped,
// every record is validated before the first header is touched, so a failure
// leaves the batch unmodified.
func ApplyUpdates(recs []*Record, updates []Update, opts ...UpdateOption) error {
	var cfg UpdateConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(updates) != len(recs) {
		return fmt.Errorf("record: %w: %d updates for %d records",
			ErrUpdateMismatch, len(updates), len(recs))
	}

	if !cfg.SkipValidation {
		for i, r := range recs {
			if err := Validate(r); err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
		}
	}

	for i, r := range recs {
		u := updates[i]
		r.Header.Representation = u.Representation
		r.Header.DepMin = u.DepMin
		r.Header.DepMax = u.DepMax
		r.Header.DepMen = u.DepMen
	}

	return nil
}
