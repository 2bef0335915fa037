// Package wmgo embeds a statistically detectable watermark into text
// produced token-by-token by an autoregressive language model, and later
// detects it from text alone.
//
// During generation every decode step derives a seed from the preceding
// n-gram of token ids and perturbs the next-token distribution with a
// deterministic pseudorandom vector. Detection re-derives the same vectors
// from the observed tokens, sums how strongly each position agrees with the
// perturbation, and compares the total against a Gamma-quantile threshold
// calibrated to a chosen false-positive rate. Generation and detection
// share nothing at runtime beyond the configuration.
//
// # Quick start
//
//	cfg := wmgo.Config{
//	    SaltKey:   15485863,
//	    Ngram:     4,
//	    Seed:      42,
//	    Seeding:   hashing.StrategyHash,
//	    MaxSeqLen: 1024,
//	}
//	wm, err := wmgo.New(cfg, lm, tok)
//	if err != nil {
//	    panic(err)
//	}
//
//	texts, err := wm.Generate(ctx, []string{"Once upon a time"}, 128, 0.9, 0.95)
//
//	results, err := wm.Detect(ctx, texts, func(o *wmgo.DetectOptions) {
//	    o.Alpha = 0.01
//	})
//
// Model inference and tokenization are external collaborators expressed by
// the interfaces in the model subpackage; wmgo never loads a model itself.
//
// A small integer payload can be carried alongside the watermark: set
// Config.Payload during generation and recover it with DecodePayload.
package wmgo
