package scorer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/wmgo/hashing"
	"github.com/hupe1980/wmgo/internal/prng"
)

// Method selects which positions of a text are scored.
type Method string

const (
	// MethodNone scores every position with a full context window.
	MethodNone Method = "none"
	// MethodV1 scores a position only if its context window has not been
	// seen earlier in the same text. Guards against one repeated phrase
	// dominating the statistic.
	MethodV1 Method = "v1"
	// MethodV2 scores a position only if the pair (context window, observed
	// token) has not been seen earlier. Looser dedup than v1.
	MethodV2 Method = "v2"
)

// ParseMethod validates s and returns it as a Method.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodNone, MethodV1, MethodV2:
		return Method(s), nil
	}
	return "", fmt.Errorf("unknown scoring method %q", s)
}

// zeroClamp replaces exact-zero uniform draws before the logarithm.
const zeroClamp = 1e-4

// Scorer computes per-position score vectors for observed token sequences.
// It is immutable and safe for concurrent use; each position seeds a
// private generator.
type Scorer struct {
	seeder    *hashing.Seeder
	vocabSize int
	ngram     int
}

// New creates a Scorer. The seeder and ngram must match the configuration
// the text was (purportedly) generated with.
func New(seeder *hashing.Seeder, vocabSize, ngram int) *Scorer {
	return &Scorer{seeder: seeder, vocabSize: vocabSize, ngram: ngram}
}

// Ngram returns the configured window length.
func (s *Scorer) Ngram() int {
	return s.ngram
}

// ScoreTokens returns one score vector per scored position of tokens.
// Each vector holds payloadMax+1 entries, one per candidate payload value.
// Texts too short for a single full window yield an empty result.
func (s *Scorer) ScoreTokens(tokens []int, method Method, payloadMax int) [][]float64 {
	var out [][]float64

	seen := make(map[string]struct{})
	for pos := s.ngram + 1; pos < len(tokens); pos++ {
		window := tokens[pos-s.ngram : pos]

		switch method {
		case MethodV1:
			key := windowKey(window, 0, false)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
		case MethodV2:
			key := windowKey(window, tokens[pos], true)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
		}

		out = append(out, s.scoreToken(window, tokens[pos], payloadMax))
	}
	return out
}

// scoreToken reproduces the sampler's draw for one window and rotates the
// negative log draws by the observed token, so that entry p holds the score
// contribution under payload candidate p.
func (s *Scorer) scoreToken(window []int, token, payloadMax int) []float64 {
	seed := s.seeder.SeedFor(window)
	rs := prng.Uniform(seed, s.vocabSize)

	scores := make([]float64, len(rs))
	for i, r := range rs {
		if r == 0 {
			r = zeroClamp
		}
		scores[i] = -math.Log(r)
	}
	scores = prng.RotateLeft(scores, token)

	if n := payloadMax + 1; n < len(scores) {
		scores = scores[:n]
	}
	return scores
}

func windowKey(window []int, token int, withToken bool) string {
	var b strings.Builder
	for _, t := range window {
		b.WriteString(strconv.Itoa(t))
		b.WriteByte(',')
	}
	if withToken {
		b.WriteString(strconv.Itoa(token))
	}
	return b.String()
}
