// Package vecmath provides an immutable Euclidean vector value type for Go.
//
// A Vector is an ordered sequence of float64 components that never changes
// after construction. Every operation returns a new Vector and leaves its
// operands untouched, so values can be shared freely across goroutines
// without synchronization.
//
// # Quick Start
//
//	v := vecmath.New(1, 2, 3)
//	w := vecmath.New(4, 5, 6)
//
//	sum, _ := v.Add(w)          // [5 7 9]
//	dot, _ := v.DotProduct(w)   // 32
//	unit, _ := w.Normalize()    // unit vector along w
//	proj, _ := v.ProjectOnto(w) // component of v along w
//
// Binary operations require both operands to live in the same vector space
// (identical dimension); mismatches are reported as *ErrDimensionMismatch.
// Dividing by zero, normalizing the zero vector, and projecting onto the
// zero vector return ErrDivisionByZero.
//
// The metric subpackage adds scalar measures (cosine similarity, Euclidean
// distance, angle) on top of the value type.
package vecmath
