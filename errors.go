package vecmath

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when a scalar divisor or a vector
	// length is exactly zero. DivideByScalar returns it directly;
	// Normalize and ProjectOnto surface it unchanged.
	ErrDivisionByZero = errors.New("division by zero")
)

// ErrInvalidDimension indicates a negative dimension passed to NullVector.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrDimensionMismatch indicates that the operands of a binary operation
// have different dimensions.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrKeyMismatch indicates that the operands of a binary operation disagree
// on their component index sets. With the current contiguous 0-based
// storage this cannot occur independently of a dimension mismatch; the
// distinct kind exists so a future keyed component set keeps the same
// error contract. Index is the first position at which the sets diverge.
type ErrKeyMismatch struct {
	Index int
}

func (e *ErrKeyMismatch) Error() string {
	return fmt.Sprintf("component key mismatch at index %d", e.Index)
}
