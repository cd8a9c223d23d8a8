package vecmath

import (
	"github.com/hupe1980/vecmath/internal/math64"
)

// Vector is an immutable ordered sequence of float64 components indexed
// 0..Dimension()-1. The zero value is the empty vector.
//
// Vectors are values: every operation allocates fresh storage for its
// result and never aliases or mutates an operand.
type Vector struct {
	components []float64
}

// New creates a Vector from the given components. The input is copied, so
// later changes to the caller's slice do not affect the vector. Any
// sequence is accepted, including none (the empty vector).
func New(components ...float64) Vector {
	c := make([]float64, len(components))
	copy(c, components)

	return Vector{components: c}
}

// NullVector creates the all-zero vector of the given dimension.
// Returns *ErrInvalidDimension if dimension is negative; dimension 0 yields
// the empty vector.
func NullVector(dimension int) (Vector, error) {
	if dimension < 0 {
		return Vector{}, &ErrInvalidDimension{Dimension: dimension}
	}

	return Vector{components: make([]float64, dimension)}, nil
}

// Components returns a copy of the component sequence. Mutating the
// returned slice does not affect the vector.
func (v Vector) Components() []float64 {
	c := make([]float64, len(v.components))
	copy(c, v.components)

	return c
}

// Dimension returns the number of components.
func (v Vector) Dimension() int {
	return len(v.components)
}

// Length returns the Euclidean norm of the vector. The empty vector has
// length 0.
func (v Vector) Length() float64 {
	return math64.Norm(v.components)
}

// Equal reports whether v and other have identical component sequences:
// same dimension and the same float64 value at every index. Standard
// float64 comparison applies, so a NaN component compares unequal even to
// itself.
func (v Vector) Equal(other Vector) bool {
	if len(v.components) != len(other.components) {
		return false
	}
	for i := range v.components {
		if v.components[i] != other.components[i] {
			return false
		}
	}

	return true
}

// Add returns the component-wise sum of v and other as a new vector.
// Returns *ErrDimensionMismatch if the operands have different dimensions.
func (v Vector) Add(other Vector) (Vector, error) {
	if err := v.checkSpace(other); err != nil {
		return Vector{}, err
	}

	return Vector{components: math64.Add(v.components, other.components)}, nil
}

// Subtract returns the component-wise difference v - other as a new
// vector. It negates the operand and adds, so its error semantics are
// identical to Add.
func (v Vector) Subtract(other Vector) (Vector, error) {
	return v.Add(other.MultiplyByScalar(-1))
}

// DotProduct returns the sum over i of v[i] * other[i].
// Returns *ErrDimensionMismatch if the operands have different dimensions.
func (v Vector) DotProduct(other Vector) (float64, error) {
	if err := v.checkSpace(other); err != nil {
		return 0, err
	}

	return math64.Dot(v.components, other.components), nil
}

// MultiplyByScalar returns a new vector with every component multiplied by
// scalar. It always succeeds.
func (v Vector) MultiplyByScalar(scalar float64) Vector {
	return Vector{components: math64.Scale(v.components, scalar)}
}

// DivideByScalar returns a new vector with every component divided by
// scalar. Returns ErrDivisionByZero if scalar is exactly zero.
func (v Vector) DivideByScalar(scalar float64) (Vector, error) {
	if scalar == 0 {
		return Vector{}, ErrDivisionByZero
	}

	return v.MultiplyByScalar(1 / scalar), nil
}

// Normalize returns the unit vector pointing in the direction of v.
// Returns ErrDivisionByZero if v has zero length (the zero vector has no
// direction).
func (v Vector) Normalize() (Vector, error) {
	return v.DivideByScalar(v.Length())
}

// ProjectOnto returns the vector projection of v onto other: the unit
// vector along other scaled by the dot product of v with it. Returns
// ErrDivisionByZero if other has zero length and *ErrDimensionMismatch if
// the operands have different dimensions, each surfaced unchanged from the
// underlying operation.
func (v Vector) ProjectOnto(other Vector) (Vector, error) {
	unit, err := other.Normalize()
	if err != nil {
		return Vector{}, err
	}

	scale, err := v.DotProduct(unit)
	if err != nil {
		return Vector{}, err
	}

	return unit.MultiplyByScalar(scale), nil
}

// checkSpace verifies that v and other live in the same vector space.
// Components are stored contiguously with 0-based indices, so equal
// dimensions imply equal index sets; *ErrKeyMismatch is reserved for a
// future keyed component set.
func (v Vector) checkSpace(other Vector) error {
	if len(v.components) != len(other.components) {
		return &ErrDimensionMismatch{
			Expected: len(v.components),
			Actual:   len(other.components),
		}
	}

	return nil
}
