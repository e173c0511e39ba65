package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/evalb/config"
	"github.com/npillmayer/evalb/corpus"
	"github.com/npillmayer/evalb/score"
)

// compare evaluates a test file against a gold file and writes a report.
// A line count mismatch is detected before any tree is parsed.
func compare(ctx context.Context, out io.Writer, params *config.Params, goldPath, testPath string) error {
	gold, err := os.Open(goldPath)
	if err != nil {
		return err
	}
	defer gold.Close()
	test, err := os.Open(testPath)
	if err != nil {
		return err
	}
	defer test.Close()
	pairs, err := corpus.ReadPairs(goldPath, gold, testPath, test)
	if err != nil {
		return err
	}
	tracer().Infof("comparing %d sentences with %d workers", len(pairs), params.Workers)
	results, summary, err := corpus.Evaluate(ctx, pairs, score.ExactMatch, params)
	if err != nil {
		return fmt.Errorf("evaluation of %s failed: %w", testPath, err)
	}
	r := &report{out: out, debug: params.Debug}
	r.header(goldPath, testPath)
	for _, result := range results {
		r.line(result)
	}
	r.summary(summary)
	return r.err
}
