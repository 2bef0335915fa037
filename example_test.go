package wmgo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/wmgo"
	"github.com/hupe1980/wmgo/hashing"
	"github.com/hupe1980/wmgo/scorer"
	"github.com/hupe1980/wmgo/testutil"
)

func Example() {
	cfg := wmgo.Config{
		SaltKey:   15485863,
		Ngram:     4,
		Seed:      42,
		Seeding:   hashing.StrategyHash,
		MaxSeqLen: 1024,
	}

	// The toy collaborators stand in for a real model and tokenizer.
	wm, err := wmgo.New(cfg, testutil.NewToyModel(128, 7), testutil.NewWordTokenizer(128))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	texts, err := wm.Generate(ctx, []string{testutil.Prompt(10, 11, 12, 13)}, 64, 0.9, 0.95)
	if err != nil {
		log.Fatal(err)
	}

	results, err := wm.Detect(ctx, texts, func(o *wmgo.DetectOptions) {
		o.Alpha = 0.01
		o.ScoringMethod = scorer.MethodV2
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(results[0].Watermarked)
	// Output: true
}
