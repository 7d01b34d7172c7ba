// Package testutil provides testing utilities for vcoll.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG and generators for randomized
// operation sequences.
//
//	rng := testutil.NewRNG(4711)
//	keys := rng.ZipfKeys(1000, 64, 1.2) // skewed keys, many repeats
//	ops := rng.Ops(500, 3)              // valid insert/remove/set steps
package testutil
