package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/wmgo/hashing"
)

const testVocab = 64

func newTestSampler(t *testing.T, payload int) *Sampler {
	t.Helper()
	seeder, err := hashing.NewSeeder(hashing.NewTable(), hashing.StrategyHash, 15485863, 42)
	require.NoError(t, err)
	return New(seeder, testVocab, payload)
}

func flatLogits(peak int, height float64) []float64 {
	logits := make([]float64, testVocab)
	logits[peak] = height
	return logits
}

func TestSample_GreedyIgnoresWatermark(t *testing.T) {
	s := newTestSampler(t, 0)

	logits := flatLogits(17, 5.0)
	tok, err := s.Sample(logits, []int{1, 2, 3, 4}, 0, 0.9)
	require.NoError(t, err)
	assert.Equal(t, 17, tok)
}

func TestSample_Deterministic(t *testing.T) {
	s := newTestSampler(t, 0)

	logits := make([]float64, testVocab)
	for i := range logits {
		logits[i] = float64(i%7) * 0.3
	}
	window := []int{9, 8, 7, 6}

	a, err := s.Sample(logits, window, 1.0, 0.95)
	require.NoError(t, err)
	b, err := s.Sample(logits, window, 1.0, 0.95)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSample_ContextSensitivity(t *testing.T) {
	s := newTestSampler(t, 0)

	logits := make([]float64, testVocab)
	choices := make(map[int]struct{})
	for c := 0; c < 32; c++ {
		tok, err := s.Sample(logits, []int{c, c + 1, c + 2, c + 3}, 1.0, 1.0)
		require.NoError(t, err)
		choices[tok] = struct{}{}
	}
	// A fresh seed per window makes the bias a function of the context,
	// not a static preference.
	assert.Greater(t, len(choices), 1)
}

func TestSample_NucleusRestriction(t *testing.T) {
	s := newTestSampler(t, 0)

	// One token carries almost all the mass; a tight nucleus must always
	// select it no matter what the pseudorandom draw prefers.
	logits := flatLogits(5, 50.0)
	for c := 0; c < 16; c++ {
		tok, err := s.Sample(logits, []int{c, c, c, c}, 1.0, 0.1)
		require.NoError(t, err)
		assert.Equal(t, 5, tok)
	}
}

func TestSample_LogitsLengthMismatch(t *testing.T) {
	s := newTestSampler(t, 0)

	_, err := s.Sample(make([]float64, testVocab+1), []int{1, 2, 3, 4}, 1.0, 0.9)
	var lerr *ErrLogitsLength
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, testVocab, lerr.Expected)
	assert.Equal(t, testVocab+1, lerr.Actual)
}

func TestSample_PayloadShiftsChoice(t *testing.T) {
	s0 := newTestSampler(t, 0)
	s1 := newTestSampler(t, 1)

	logits := make([]float64, testVocab)
	differs := false
	for c := 0; c < 32; c++ {
		window := []int{c, 2 * c, 3 * c, 4 * c}
		a, err := s0.Sample(logits, window, 1.0, 1.0)
		require.NoError(t, err)
		b, err := s1.Sample(logits, window, 1.0, 1.0)
		require.NoError(t, err)
		if a != b {
			differs = true
		}
	}
	assert.True(t, differs)
}
