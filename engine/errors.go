package engine

import (
	"errors"
	"fmt"
)

// Vector identifies which input vector an error refers to.
const (
	VectorAddress = "address"
	VectorMemory  = "memory"
)

// ErrLocationOutOfRange is returned by Location for an invalid index.
var ErrLocationOutOfRange = errors.New("location index out of range")

// ErrInvalidParameter is a named error type for non-positive
// construction parameters.
type ErrInvalidParameter struct {
	Name  string
	Value int
}

func (e *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("invalid parameter %s: %d (must be positive)", e.Name, e.Value)
}

// ErrDimensionMismatch is a named error type for input vectors whose
// length does not match the configured dimension.
type ErrDimensionMismatch struct {
	Vector   string
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("%s dimension mismatch: expected %d, got %d", e.Vector, e.Expected, e.Actual)
}

// ErrNonBinaryValue is a named error type for input vectors containing
// values other than 0 or 1.
type ErrNonBinaryValue struct {
	Vector string
	Index  int
	Value  byte
}

func (e *ErrNonBinaryValue) Error() string {
	return fmt.Sprintf("non-binary value in %s vector at index %d: %d", e.Vector, e.Index, e.Value)
}
