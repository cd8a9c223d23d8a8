// Package metric provides scalar measures over float64 slices and Vectors.
package metric

import (
	"math"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/internal/math64"
)

// Magnitude calculates the magnitude (Euclidean length) of a float64 slice.
func Magnitude(v []float64) float64 {
	return math64.Norm(v)
}

// CosineSimilarity calculates the cosine similarity between two float64
// slices. Zero-magnitude operands yield a similarity of 0.
func CosineSimilarity(v1, v2 []float64) (float64, error) {
	if len(v1) != len(v2) {
		return 0, &vecmath.ErrDimensionMismatch{Expected: len(v1), Actual: len(v2)}
	}

	dotProduct := math64.Dot(v1, v2)
	magnitudeA := Magnitude(v1)
	magnitudeB := Magnitude(v2)

	// Avoid division by zero
	if magnitudeA == 0 || magnitudeB == 0 {
		return 0, nil
	}

	return dotProduct / (magnitudeA * magnitudeB), nil
}

// EuclideanDistance calculates the L2 distance between two float64 slices.
func EuclideanDistance(v1, v2 []float64) (float64, error) {
	if len(v1) != len(v2) {
		return 0, &vecmath.ErrDimensionMismatch{Expected: len(v1), Actual: len(v2)}
	}

	return math.Sqrt(math64.SquaredL2(v1, v2)), nil
}

// AngleBetween calculates the angle between two vectors in radians.
// Unlike CosineSimilarity, a zero-length operand is an error here: an
// angle needs a direction on both sides. Returns vecmath.ErrDivisionByZero
// for a zero-length operand and *vecmath.ErrDimensionMismatch when the
// operands have different dimensions.
func AngleBetween(a, b vecmath.Vector) (float64, error) {
	dot, err := a.DotProduct(b)
	if err != nil {
		return 0, err
	}

	la := a.Length()
	lb := b.Length()
	if la == 0 || lb == 0 {
		return 0, vecmath.ErrDivisionByZero
	}

	// Clamp against float drift before Acos.
	cos := dot / (la * lb)
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos), nil
}
