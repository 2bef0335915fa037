// Package prng provides the deterministic pseudorandom primitives shared by
// the sampler and the scorer.
//
// The generator is the PCG source from golang.org/x/exp/rand: for a fixed
// seed and draw count its output is bit-for-bit reproducible, independent of
// call history. That reproducibility is the contract the watermark depends
// on; do not swap in a generator without it.
package prng

import (
	"golang.org/x/exp/rand"
)

// Uniform returns n independent draws in [0, 1) from a fresh generator
// seeded with seed. Each call builds a private generator, so concurrent
// callers never share state.
func Uniform(seed uint64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}

// RotateLeft returns v cyclically shifted left by k positions, using
// explicit modular indexing so behavior does not depend on the container.
// k may be negative or exceed len(v).
func RotateLeft(v []float64, k int) []float64 {
	n := len(v)
	if n == 0 {
		return nil
	}
	k = ((k % n) + n) % n

	out := make([]float64, n)
	for i := range out {
		out[i] = v[(i+k)%n]
	}
	return out
}
