// Package math64 provides plain float64 vector kernels.
// This is an internal package - external users should use the vecmath and
// metric packages.
package math64

import "math"

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float64) float64 {
	var ret float64
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// SquaredL2 calculates the squared L2 distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float64) float64 {
	var distance float64
	for i := range a {
		distance += (a[i] - b[i]) * (a[i] - b[i])
	}

	return distance
}

// Norm calculates the L2 norm (Euclidean length) of a vector.
// Returns 0 for the empty vector.
func Norm(a []float64) float64 {
	return math.Sqrt(Dot(a, a))
}

// Scale returns a fresh copy of a with every element multiplied by scalar.
// The input is never modified.
func Scale(a []float64, scalar float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] * scalar
	}

	return out
}

// Add returns the element-wise sum of a and b in fresh storage.
// Assumes vectors are the same length (caller's responsibility).
func Add(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out
}
