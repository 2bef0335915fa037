package wmgo

import (
	"errors"
	"fmt"
)

var (
	// ErrNilModel is returned by New when no language model is provided.
	ErrNilModel = errors.New("language model must not be nil")

	// ErrNilTokenizer is returned by New when no tokenizer is provided.
	ErrNilTokenizer = errors.New("tokenizer must not be nil")

	// ErrInvalidAlpha is returned by Detect when alpha is outside (0, 1).
	ErrInvalidAlpha = errors.New("alpha must be in (0, 1)")

	// ErrEmptyPrompt is returned by Generate when a prompt encodes to zero
	// tokens; the sampler needs at least one context token.
	ErrEmptyPrompt = errors.New("prompt encodes to zero tokens")
)

// ErrInvalidConfig indicates a missing or invalid configuration field.
// Configuration errors are the only hard failures in the package; they are
// surfaced at construction and never at generation or detection time.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidConfig struct {
	Field  string
	Reason string
	cause  error
}

func (e *ErrInvalidConfig) Error() string {
	return fmt.Sprintf("invalid config: %s %s", e.Field, e.Reason)
}

func (e *ErrInvalidConfig) Unwrap() error { return e.cause }

// ErrVocabMismatch indicates that the model and the tokenizer disagree on
// the vocabulary size. The two must describe the same vocabulary for the
// watermark to be reproducible.
type ErrVocabMismatch struct {
	Model     int
	Tokenizer int
}

func (e *ErrVocabMismatch) Error() string {
	return fmt.Sprintf("vocab size mismatch: model %d, tokenizer %d", e.Model, e.Tokenizer)
}

// ErrPromptTooLong indicates a prompt that does not fit into MaxSeqLen.
type ErrPromptTooLong struct {
	Length int
	Max    int
}

func (e *ErrPromptTooLong) Error() string {
	return fmt.Sprintf("prompt too long: %d tokens, max_seq_len %d", e.Length, e.Max)
}
