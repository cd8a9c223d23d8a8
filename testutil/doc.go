// Package testutil provides testing utilities for vecmath.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random number generator and helpers
// for producing deterministic random vectors.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	v := rng.UniformVector(128)        // components uniform in [-1, 1)
//	vs := rng.UniformVectors(100, 128) // a batch of the same
package testutil
