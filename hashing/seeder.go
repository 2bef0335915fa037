package hashing

import (
	"fmt"
	"math"
)

// Strategy selects how a context window is folded into a seed.
// The set is closed; there is no user-supplied strategy hook.
type Strategy string

const (
	// StrategyHash folds the window left to right with a multiplicative
	// hash. Order-sensitive.
	StrategyHash Strategy = "hash"
	// StrategyAdditive hashes the salted sum of the window. Order-insensitive.
	StrategyAdditive Strategy = "additive"
	// StrategySkip hashes only the first token of the window.
	StrategySkip Strategy = "skip"
	// StrategyMin takes the minimum over the salted hashes of the window.
	// Order-insensitive and robust to local edits.
	StrategyMin Strategy = "min"
)

// ParseStrategy validates s and returns it as a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyHash, StrategyAdditive, StrategySkip, StrategyMin:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown seeding strategy %q", s)
}

// Seeder maps a context window of token ids to a 64-bit seed.
// It is immutable and safe for concurrent use.
type Seeder struct {
	table    *Table
	strategy Strategy
	saltKey  uint64
	seed     uint64
}

// NewSeeder creates a Seeder over the shared table.
func NewSeeder(table *Table, strategy Strategy, saltKey, seed uint64) (*Seeder, error) {
	if table == nil {
		return nil, fmt.Errorf("table must not be nil")
	}
	if _, err := ParseStrategy(string(strategy)); err != nil {
		return nil, err
	}
	return &Seeder{table: table, strategy: strategy, saltKey: saltKey, seed: seed}, nil
}

// SeedFor derives the seed for one context window. Identical windows always
// yield identical seeds for identical Seeder parameters.
//
// The window must be non-empty; callers present full ngram windows and skip
// positions that cannot provide one.
//
// For StrategyHash the fold uses native unsigned 64-bit wraparound on the
// multiply-add, followed by reduction modulo 2^64-1 after each step. The one
// implementation serves both generation and detection, so the wraparound
// rule is consistent by construction.
func (s *Seeder) SeedFor(window []int) uint64 {
	switch s.strategy {
	case StrategyHash:
		seed := s.seed
		for _, t := range window {
			seed = (seed*s.saltKey + uint64(t)) % math.MaxUint64
		}
		return seed

	case StrategyAdditive:
		var sum uint64
		for _, t := range window {
			sum += uint64(t)
		}
		return s.table.Hash(s.saltKey * sum)

	case StrategySkip:
		return s.table.Hash(s.saltKey * uint64(window[0]))

	case StrategyMin:
		best := uint64(math.MaxUint64)
		for _, t := range window {
			if h := s.table.Hash(s.saltKey * uint64(t)); h < best {
				best = h
			}
		}
		return best
	}

	// Unreachable: NewSeeder rejects unknown strategies.
	return s.seed
}

// Strategy returns the configured strategy.
func (s *Seeder) Strategy() Strategy {
	return s.strategy
}
