// Package testutil provides testing utilities for partition.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG with helpers for generating
// universes and query sets.
//
// # Universes and Query Sets
//
//	rng := testutil.NewRNG(seed)
//	universe := rng.Perm(1000)        // random permutation of 0..999
//	x := rng.Sample(1000, 50)         // 50 distinct items
//	y := rng.Items(1000, 50)          // 50 items, duplicates allowed
package testutil
