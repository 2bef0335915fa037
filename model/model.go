package model

import (
	"context"
)

// LanguageModel is a single-step autoregressive model over an integer
// vocabulary.
type LanguageModel interface {
	// VocabSize returns the size V of the vocabulary; token ids are in [0, V).
	VocabSize() int

	// Forward returns, for every sequence in the batch, the logits for the
	// next token given the full token prefix. Implementations are free to
	// cache incremental state internally; the caller always presents the
	// complete prefix.
	Forward(ctx context.Context, prefixes [][]int) ([][]float64, error)
}

// Tokenizer maps text to token ids and back.
type Tokenizer interface {
	// Encode maps text to a sequence of token ids without adding special
	// tokens.
	Encode(text string) []int

	// Decode maps token ids back to text.
	Decode(tokens []int) string

	// VocabSize returns the size of the vocabulary.
	VocabSize() int

	// PadID returns the padding token id. ok is false when the tokenizer
	// has no padding token; the end-of-sequence id is used instead.
	PadID() (id int, ok bool)

	// EOSID returns the end-of-sequence token id.
	EOSID() int
}
