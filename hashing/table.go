package hashing

import (
	"golang.org/x/exp/rand"
)

// TableSize is the length of the permutation table. Prime-adjacent so that
// the modular reduction in Hash spreads consecutive inputs.
const TableSize = 1000003

// tableSeed is fixed and unrelated to the watermark secret. The table is a
// shared hash-reduction device, not keyed material; every configuration
// must observe the same permutation.
const tableSeed uint64 = 0x9e3779b97f4a7c15

// Table is a fixed pseudorandom permutation of [0, TableSize).
// It is immutable after construction and safe for concurrent readers.
type Table struct {
	perm []uint64
}

// NewTable builds the permutation once with a Fisher-Yates shuffle driven
// by a deterministic PCG. Construct it a single time per process and share
// it between samplers and scorers.
func NewTable() *Table {
	rng := rand.New(rand.NewSource(tableSeed))

	perm := make([]uint64, TableSize)
	for i := range perm {
		perm[i] = uint64(i)
	}
	for i := TableSize - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	return &Table{perm: perm}
}

// Hash reduces x through the permutation: table[x mod TableSize].
func (t *Table) Hash(x uint64) uint64 {
	return t.perm[x%TableSize]
}

// HashEach applies Hash elementwise.
func (t *Table) HashEach(xs []uint64) []uint64 {
	out := make([]uint64, len(xs))
	for i, x := range xs {
		out[i] = t.Hash(x)
	}
	return out
}
