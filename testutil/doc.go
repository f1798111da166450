// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG and generators for random bit
// sequences that serve as input to property and oracle tests.
//
// # Random Bits
//
//	rng := testutil.NewRNG(seed)
//	bits := rng.RandomBits(1000)       // uniform
//	sparse := rng.SparseBits(1000, 0.01)
//	runs := rng.RunBits(1000, 64)      // alternating runs
//
// # Reference Rendering
//
//	s := testutil.BitString(bits) // "0110..."
package testutil
