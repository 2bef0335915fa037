// Package sampler chooses watermarked next tokens during generation.
//
// At every decode step the sampler derives a seed from the preceding
// context window, draws a deterministic uniform vector over the vocabulary
// and perturbs the nucleus-filtered log-probabilities with it. The
// perturbation favors tokens whose pseudorandom draw is small without
// collapsing the distribution, which is what a detector can later measure
// from text alone.
//
// Greedy decoding (temperature 0) bypasses the watermark entirely; only
// stochastic sampling is perturbed.
package sampler
