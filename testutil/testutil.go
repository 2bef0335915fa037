package testutil

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
)

// Reserved token ids in the toy vocabulary.
const (
	// PadID is the padding token of the word tokenizer.
	PadID = 0
	// EOSID is the end-of-sequence token of the word tokenizer.
	EOSID = 1
)

// ToyModel is a deterministic bigram language model: the next-token logits
// depend only on the last prefix token and the construction seed. It never
// assigns mass to the pad or end-of-sequence tokens, so generation always
// runs to the requested length.
type ToyModel struct {
	vocabSize int
	rows      [][]float64
}

// NewToyModel builds the logit table once from seed.
func NewToyModel(vocabSize int, seed uint64) *ToyModel {
	rng := rand.New(rand.NewSource(seed))

	rows := make([][]float64, vocabSize)
	for i := range rows {
		row := make([]float64, vocabSize)
		for j := range row {
			row[j] = rng.Float64() * 4
		}
		row[PadID] = -1e9
		row[EOSID] = -1e9
		rows[i] = row
	}
	return &ToyModel{vocabSize: vocabSize, rows: rows}
}

// VocabSize implements model.LanguageModel.
func (m *ToyModel) VocabSize() int {
	return m.vocabSize
}

// Forward implements model.LanguageModel.
func (m *ToyModel) Forward(_ context.Context, prefixes [][]int) ([][]float64, error) {
	out := make([][]float64, len(prefixes))
	for i, prefix := range prefixes {
		last := 0
		if len(prefix) > 0 {
			last = prefix[len(prefix)-1]
		}
		if last < 0 || last >= m.vocabSize {
			return nil, fmt.Errorf("token %d out of vocabulary", last)
		}
		row := make([]float64, m.vocabSize)
		copy(row, m.rows[last])
		out[i] = row
	}
	return out, nil
}

// WordTokenizer is a reversible word-level tokenizer over a synthetic
// vocabulary: token i renders as "w<i>". Unknown words are dropped.
type WordTokenizer struct {
	vocabSize int
	ids       map[string]int
}

// NewWordTokenizer builds a tokenizer with the given vocabulary size.
func NewWordTokenizer(vocabSize int) *WordTokenizer {
	ids := make(map[string]int, vocabSize)
	for i := 0; i < vocabSize; i++ {
		ids[word(i)] = i
	}
	return &WordTokenizer{vocabSize: vocabSize, ids: ids}
}

func word(id int) string {
	return fmt.Sprintf("w%d", id)
}

// Encode implements model.Tokenizer.
func (t *WordTokenizer) Encode(text string) []int {
	fields := strings.Fields(text)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		if id, ok := t.ids[f]; ok {
			out = append(out, id)
		}
	}
	return out
}

// Decode implements model.Tokenizer.
func (t *WordTokenizer) Decode(tokens []int) string {
	words := make([]string, 0, len(tokens))
	for _, tk := range tokens {
		if tk >= 0 && tk < t.vocabSize {
			words = append(words, word(tk))
		}
	}
	return strings.Join(words, " ")
}

// VocabSize implements model.Tokenizer.
func (t *WordTokenizer) VocabSize() int {
	return t.vocabSize
}

// PadID implements model.Tokenizer.
func (t *WordTokenizer) PadID() (int, bool) {
	return PadID, true
}

// EOSID implements model.Tokenizer.
func (t *WordTokenizer) EOSID() int {
	return EOSID
}

// Prompt renders token ids as a prompt string the WordTokenizer will encode
// back to exactly those ids.
func Prompt(tokens ...int) string {
	words := make([]string, len(tokens))
	for i, tk := range tokens {
		words[i] = word(tk)
	}
	return strings.Join(words, " ")
}
