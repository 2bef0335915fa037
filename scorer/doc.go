// Package scorer re-scores observed token sequences and decides whether
// they carry the watermark.
//
// For each position with a full context window the scorer reproduces the
// seeded uniform draw the sampler would have used and records how unlikely
// the observed token is under the null hypothesis of no watermark. The
// per-position contributions sum to a statistic that, under the null, is
// Gamma distributed; the detection threshold is the corresponding
// (1-alpha) quantile.
//
// Scoring never fails on short or empty input: a text without a single
// scorable position aggregates to zero and receives an infinite threshold,
// so it is deterministically reported as not watermarked.
package scorer
