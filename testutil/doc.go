// Package testutil provides testing utilities for sdmgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random binary vectors and for
// perturbing them with controlled bit noise.
//
// # Random Binary Vectors
//
//	rng := testutil.NewRNG(seed)
//	address := rng.BitVector(256)
//	noisy := rng.Perturb(address, 5) // flip 5 distinct bits
package testutil
