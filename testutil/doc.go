// Package testutil provides testing utilities for wmgo.
//
// This package is intended for use in tests and benchmarks only. It
// provides a deterministic in-process language model and a word-level
// tokenizer, so end-to-end generation and detection can run without any
// inference runtime.
//
//	lm := testutil.NewToyModel(128, 7)
//	tok := testutil.NewWordTokenizer(128)
//
// The toy model's logits are a pure function of the last prefix token and
// its construction seed, which keeps generation reproducible across runs.
package testutil
