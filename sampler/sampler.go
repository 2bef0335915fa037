package sampler

import (
	"fmt"
	"math"
	"sort"

	"github.com/hupe1980/wmgo/hashing"
	"github.com/hupe1980/wmgo/internal/prng"
)

// ErrLogitsLength indicates logits whose length does not match the
// configured vocabulary size.
type ErrLogitsLength struct {
	Expected int
	Actual   int
}

func (e *ErrLogitsLength) Error() string {
	return fmt.Sprintf("logits length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Sampler produces one watermarked token per decode step for one sequence.
// It is immutable and safe for concurrent use; every call seeds a private
// generator from the context window.
type Sampler struct {
	seeder    *hashing.Seeder
	vocabSize int
	payload   int
}

// New creates a Sampler. payload is the auxiliary message encoded by
// rotating the pseudorandom vector; 0 means no payload.
func New(seeder *hashing.Seeder, vocabSize, payload int) *Sampler {
	return &Sampler{seeder: seeder, vocabSize: vocabSize, payload: payload}
}

// Sample returns the next token id for the given next-token logits and
// context window.
//
// temperature <= 0 selects the argmax of the raw logits and applies no
// watermark. Otherwise the distribution is temperature-softmaxed, nucleus
// filtered at topP, and perturbed by subtracting the log of the seeded
// uniform draw for each candidate token.
func (s *Sampler) Sample(logits []float64, window []int, temperature, topP float64) (int, error) {
	if len(logits) != s.vocabSize {
		return 0, &ErrLogitsLength{Expected: s.vocabSize, Actual: len(logits)}
	}

	if temperature <= 0 {
		return argmax(logits), nil
	}

	probs := softmax(logits, temperature)

	// Descending order over the vocabulary; idx maps sorted rank to the
	// original token id.
	idx := make([]int, len(probs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return probs[idx[a]] > probs[idx[b]]
	})

	sorted := make([]float64, len(probs))
	for rank, token := range idx {
		sorted[rank] = probs[token]
	}

	// Nucleus mask: a token survives iff the cumulative mass before it is
	// still within topP. Renormalize the survivors.
	var exclusive, kept float64
	for rank, p := range sorted {
		if exclusive > topP {
			sorted[rank] = 0
		} else {
			kept += p
		}
		exclusive += p
	}
	for rank := range sorted {
		sorted[rank] /= kept
	}

	seed := s.seeder.SeedFor(window)
	rs := prng.Uniform(seed, s.vocabSize)
	rs = prng.RotateLeft(rs, s.payload)

	// argmax of log p - log r over the nucleus, reported in vocabulary ids.
	best := -1
	bestVal := math.Inf(-1)
	for rank, p := range sorted {
		if p == 0 {
			continue
		}
		v := math.Log(p) - math.Log(rs[idx[rank]])
		if v > bestVal {
			bestVal = v
			best = idx[rank]
		}
	}
	return best, nil
}

func softmax(logits []float64, temperature float64) []float64 {
	maxLogit := math.Inf(-1)
	for _, l := range logits {
		if l > maxLogit {
			maxLogit = l
		}
	}

	out := make([]float64, len(logits))
	var sum float64
	for i, l := range logits {
		out[i] = math.Exp((l - maxLogit) / temperature)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

func argmax(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}
