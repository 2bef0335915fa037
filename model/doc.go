// Package model defines the collaborator interfaces the watermarker
// depends on: an autoregressive language model producing next-token logits
// and a tokenizer mapping text to token ids and back.
//
// The watermarker treats both as opaque and correct. Implementations wrap
// whatever inference runtime is in use; the testutil package provides
// deterministic in-process implementations for tests.
package model
