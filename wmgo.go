package wmgo

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/wmgo/hashing"
	"github.com/hupe1980/wmgo/model"
	"github.com/hupe1980/wmgo/sampler"
	"github.com/hupe1980/wmgo/scorer"
)

// Detection is the per-text result of Detect.
type Detection struct {
	// Watermarked reports whether Score exceeds Threshold.
	Watermarked bool

	// Score is the aggregated statistic for the winning payload candidate.
	Score float64

	// Threshold is the Gamma-quantile decision bound that was applied.
	// +Inf for texts too short to ever be called watermarked.
	Threshold float64

	// Payload is the payload candidate with the highest score. Always 0
	// unless DetectOptions.PayloadMax was raised.
	Payload int

	// ScoredTokens is the number of positions that contributed to Score
	// after dedup.
	ScoredTokens int

	// TokenCount is the number of tokens the text was scored over.
	TokenCount int
}

// DetectOptions controls a Detect run.
type DetectOptions struct {
	// Alpha is the acceptable false-positive rate. Default 0.01.
	Alpha float64

	// ScoringMethod selects position dedup. Default scorer.MethodNone.
	ScoringMethod scorer.Method

	// NToksMax truncates each text to at most this many tokens before
	// scoring. 0 means no truncation.
	NToksMax int

	// PayloadMax is the largest payload candidate to score. Default 0
	// (no payload decoding).
	PayloadMax int
}

// Watermarker generates watermarked text and detects the watermark in
// finished text. It is immutable after construction and safe for
// concurrent use: all shared state (permutation table, seeder, config) is
// read-only, and every sampling or scoring call seeds a private generator.
type Watermarker struct {
	cfg     Config
	lm      model.LanguageModel
	tok     model.Tokenizer
	sampler *sampler.Sampler
	scorer  *scorer.Scorer

	padID int
	eosID int

	logger      *Logger
	metrics     MetricsCollector
	parallelism int
}

// New creates a Watermarker from a validated configuration and its two
// collaborators. Configuration problems are the only hard failures; they
// surface here and never later.
func New(cfg Config, lm model.LanguageModel, tok model.Tokenizer, optFns ...Option) (*Watermarker, error) {
	if lm == nil {
		return nil, ErrNilModel
	}
	if tok == nil {
		return nil, ErrNilTokenizer
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if lm.VocabSize() != tok.VocabSize() {
		return nil, &ErrVocabMismatch{Model: lm.VocabSize(), Tokenizer: tok.VocabSize()}
	}

	o := applyOptions(optFns)
	if o.detectParallelism < 1 {
		o.detectParallelism = runtime.NumCPU()
	}

	seeder, err := hashing.NewSeeder(hashing.NewTable(), cfg.Seeding, cfg.SaltKey, cfg.Seed)
	if err != nil {
		return nil, &ErrInvalidConfig{Field: "seeding", Reason: "rejected", cause: err}
	}

	padID, ok := tok.PadID()
	if !ok {
		padID = tok.EOSID()
	}

	return &Watermarker{
		cfg:         cfg,
		lm:          lm,
		tok:         tok,
		sampler:     sampler.New(seeder, tok.VocabSize(), cfg.Payload),
		scorer:      scorer.New(seeder, tok.VocabSize(), cfg.Ngram),
		padID:       padID,
		eosID:       tok.EOSID(),
		logger:      o.logger,
		metrics:     o.metricsCollector,
		parallelism: o.detectParallelism,
	}, nil
}

// Generate runs the watermarked decode loop for a batch of prompts and
// returns the decoded texts. Generation stops maxGenLen tokens past each
// prompt or at the end-of-sequence token, whichever comes first, and never
// exceeds MaxSeqLen in total.
//
// The output is a pure function of configuration, prompts and model; there
// is no hidden entropy source.
func (w *Watermarker) Generate(ctx context.Context, prompts []string, maxGenLen int, temperature, topP float64) ([]string, error) {
	start := time.Now()
	texts, tokens, err := w.generate(ctx, prompts, maxGenLen, temperature, topP)
	w.metrics.RecordGenerate(tokens, time.Since(start), err)
	w.logger.LogGenerate(ctx, len(prompts), tokens, err)
	return texts, err
}

func (w *Watermarker) generate(ctx context.Context, prompts []string, maxGenLen int, temperature, topP float64) ([]string, int, error) {
	if len(prompts) == 0 {
		return []string{}, 0, nil
	}

	promptTokens := make([][]int, len(prompts))
	minPrompt := int(^uint(0) >> 1)
	maxPrompt := 0
	for i, p := range prompts {
		t := w.tok.Encode(p)
		if len(t) == 0 {
			return nil, 0, ErrEmptyPrompt
		}
		if len(t) > w.cfg.MaxSeqLen {
			return nil, 0, &ErrPromptTooLong{Length: len(t), Max: w.cfg.MaxSeqLen}
		}
		promptTokens[i] = t
		if len(t) < minPrompt {
			minPrompt = len(t)
		}
		if len(t) > maxPrompt {
			maxPrompt = len(t)
		}
	}

	totalLen := maxGenLen + maxPrompt
	if totalLen > w.cfg.MaxSeqLen {
		totalLen = w.cfg.MaxSeqLen
	}

	// Batch matrix padded with padID; isPrompt marks positions that must
	// keep their prompt token.
	tokens := make([][]int, len(prompts))
	isPrompt := make([][]bool, len(prompts))
	for i, t := range promptTokens {
		row := make([]int, totalLen)
		mask := make([]bool, totalLen)
		for j := range row {
			row[j] = w.padID
		}
		copy(row, t)
		for j := 0; j < len(t) && j < totalLen; j++ {
			mask[j] = true
		}
		tokens[i] = row
		isPrompt[i] = mask
	}

	prefixes := make([][]int, len(prompts))
	for cur := minPrompt; cur < totalLen; cur++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		for i := range tokens {
			prefixes[i] = tokens[i][:cur]
		}
		logits, err := w.lm.Forward(ctx, prefixes)
		if err != nil {
			return nil, 0, err
		}

		for i := range tokens {
			if isPrompt[i][cur] {
				continue
			}
			windowStart := cur - w.cfg.Ngram
			if windowStart < 0 {
				windowStart = 0
			}
			next, err := w.sampler.Sample(logits[i], tokens[i][windowStart:cur], temperature, topP)
			if err != nil {
				return nil, 0, err
			}
			tokens[i][cur] = next
		}
	}

	texts := make([]string, len(prompts))
	generated := 0
	for i, row := range tokens {
		end := len(promptTokens[i]) + maxGenLen
		if end > len(row) {
			end = len(row)
		}
		out := row[:end]

		// Cut at the first end-of-sequence token, if any.
		for j, tk := range out {
			if tk == w.eosID {
				out = out[:j]
				break
			}
		}

		texts[i] = w.tok.Decode(out)
		if n := len(out) - len(promptTokens[i]); n > 0 {
			generated += n
		}
	}
	return texts, generated, nil
}

// Detect scores each text independently and reports whether it carries the
// watermark. Detection never fails on short or empty input: such texts get
// an infinite threshold and a negative result.
func (w *Watermarker) Detect(ctx context.Context, texts []string, optFns ...func(*DetectOptions)) ([]Detection, error) {
	start := time.Now()
	results, err := w.detect(ctx, texts, optFns)

	flagged := 0
	for _, r := range results {
		if r.Watermarked {
			flagged++
		}
	}
	w.metrics.RecordDetect(len(texts), flagged, time.Since(start), err)
	w.logger.LogDetect(ctx, len(texts), flagged, err)
	return results, err
}

func (w *Watermarker) detect(ctx context.Context, texts []string, optFns []func(*DetectOptions)) ([]Detection, error) {
	o := DetectOptions{
		Alpha:         0.01,
		ScoringMethod: scorer.MethodNone,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.Alpha <= 0 || o.Alpha >= 1 {
		return nil, ErrInvalidAlpha
	}
	if _, err := scorer.ParseMethod(string(o.ScoringMethod)); err != nil {
		return nil, err
	}
	if o.PayloadMax < 0 {
		o.PayloadMax = 0
	}

	results := make([]Detection, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.parallelism)
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			tokens := w.tok.Encode(text)
			if o.NToksMax > 0 && len(tokens) > o.NToksMax {
				tokens = tokens[:o.NToksMax]
			}

			lists := w.scorer.ScoreTokens(tokens, o.ScoringMethod, o.PayloadMax)
			agg := scorer.Aggregate(lists)
			threshold := scorer.Threshold(len(lists), w.cfg.Ngram, o.Alpha)

			det := Detection{
				Threshold:    threshold,
				ScoredTokens: len(lists),
				TokenCount:   len(tokens),
			}
			for p := 1; p < len(agg); p++ {
				if agg[p] > agg[det.Payload] {
					det.Payload = p
				}
			}
			if len(agg) > 0 {
				det.Score = agg[det.Payload]
			}
			det.Watermarked = scorer.Decide(det.Score, threshold)

			results[i] = det
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// DecodePayload detects the watermark while scoring every payload candidate
// in [0, payloadMax]; the winning candidate is reported in
// Detection.Payload. The candidate used at generation time scores highest
// with high probability once enough tokens are available.
func (w *Watermarker) DecodePayload(ctx context.Context, texts []string, payloadMax int, optFns ...func(*DetectOptions)) ([]Detection, error) {
	fns := make([]func(*DetectOptions), 0, len(optFns)+1)
	fns = append(fns, optFns...)
	fns = append(fns, func(o *DetectOptions) {
		o.PayloadMax = payloadMax
	})
	return w.Detect(ctx, texts, fns...)
}

// Config returns a copy of the configuration the Watermarker was built with.
func (w *Watermarker) Config() Config {
	return w.cfg
}
