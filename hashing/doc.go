// Package hashing derives deterministic seeds from token context windows.
//
// It provides the two primitives shared by the generation and detection
// paths: a process-wide pseudorandom permutation table used as a
// hash-reduction device, and a Seeder that folds a window of preceding
// token ids into a single 64-bit seed using one of four strategies.
//
// Both sides of the watermark must be constructed from identical
// parameters; given that, a Seeder produces bit-identical seeds for
// identical windows, which is the property the whole scheme rests on.
package hashing
