package record

import (
	"errors"
	"testing"
)

func TestValidateNil(t *testing.T) {
	if err := Validate(nil); !errors.Is(err, ErrNilRecord) {
		t.Fatalf("expected ErrNilRecord, got %v", err)
	}
}

func TestValidateDataless(t *testing.T) {
	if err := Validate(New(RealImag, nil)); err != nil {
		t.Fatalf("dataless record should validate: %v", err)
	}

	empty, err := NewMatrix(0, 0, Double)
	if err != nil {
		t.Fatalf("NewMatrix failed: %v", err)
	}

	if err := Validate(New(AmplPhase, empty)); err != nil {
		t.Fatalf("empty-matrix record should validate: %v", err)
	}
}

func TestValidateOddColumns(t *testing.T) {
	m, err := NewMatrix(4, 3, Double)
	if err != nil {
		t.Fatalf("NewMatrix failed: %v", err)
	}

	err = Validate(New(RealImag, m))
	if !errors.Is(err, ErrOddColumns) {
		t.Fatalf("expected ErrOddColumns, got %v", err)
	}

	// Non-spectral records may carry any column count.
	if err := Validate(New(TimeSeries, m)); err != nil {
		t.Fatalf("time series record should validate: %v", err)
	}
}

func TestValidateWellFormed(t *testing.T) {
	m, err := NewMatrix(8, 2, Half)
	if err != nil {
		t.Fatalf("NewMatrix failed: %v", err)
	}

	if err := Validate(New(AmplPhase, m)); err != nil {
		t.Fatalf("well-formed record should validate: %v", err)
	}
}
