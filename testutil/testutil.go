package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/vecmath"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// UniformVector generates a random vector of the given dimension with
// components in range [-1, 1).
func (r *RNG) UniformVector(dimension int) vecmath.Vector {
	components := make([]float64, dimension)
	r.FillUniformRange(components, -1, 1)

	return vecmath.New(components...)
}

// UniformVectors generates num random vectors of the given dimension with
// components in range [-1, 1).
func (r *RNG) UniformVectors(num int, dimension int) []vecmath.Vector {
	vectors := make([]vecmath.Vector, num)
	for i := range vectors {
		vectors[i] = r.UniformVector(dimension)
	}

	return vectors
}
