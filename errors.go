package sdmgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/sdmgo/engine"
)

// ErrInvalidBatchEntry is returned when a batch contains an invalid
// entry; the index of the offending entry is part of the message and
// the underlying validation error can be accessed via errors.Unwrap.
var ErrInvalidBatchEntry = errors.New("invalid batch entry")

// ErrInvalidParameter indicates a non-positive construction parameter.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidParameter struct {
	Name  string
	Value int
	cause error
}

func (e *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("invalid parameter %s: %d", e.Name, e.Value)
}

func (e *ErrInvalidParameter) Unwrap() error { return e.cause }

// ErrDimensionMismatch indicates an address/memory vector length mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Vector   string
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("%s dimension mismatch: expected %d, got %d", e.Vector, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrNonBinaryValue indicates an address/memory vector element outside {0,1}.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrNonBinaryValue struct {
	Vector string
	Index  int
	Value  byte
	cause  error
}

func (e *ErrNonBinaryValue) Error() string {
	return fmt.Sprintf("non-binary value in %s vector at index %d: %d", e.Vector, e.Index, e.Value)
}

func (e *ErrNonBinaryValue) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ip *engine.ErrInvalidParameter
	if errors.As(err, &ip) {
		return &ErrInvalidParameter{Name: ip.Name, Value: ip.Value, cause: err}
	}
	var dm *engine.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Vector: dm.Vector, Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}
	var nbv *engine.ErrNonBinaryValue
	if errors.As(err, &nbv) {
		return &ErrNonBinaryValue{Vector: nbv.Vector, Index: nbv.Index, Value: nbv.Value, cause: err}
	}

	return err
}
