package corpus

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/npillmayer/evalb/config"
	"github.com/npillmayer/evalb/ptree"
	"github.com/npillmayer/evalb/score"
	"golang.org/x/sync/errgroup"
)

// ErrTooManyErrors is returned by Evaluate if more lines than allowed could
// not be parsed.
var ErrTooManyErrors = errors.New("too many malformed lines")

// Evaluate parses and scores every line pair. Line pairs are evaluated by up
// to params.Workers goroutines; results are returned in line order, together
// with their summary. If more than params.MaxErrors line pairs contain a
// malformed tree, evaluation stops with ErrTooManyErrors.
func Evaluate(ctx context.Context, pairs []Pair, scorer score.Scorer, params *config.Params) (
	[]score.Result, *score.Summary, error) {
	//
	if params == nil {
		params = config.Default()
	}
	if err := params.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if scorer == nil {
		scorer = score.ExactMatch
	}
	results := make([]score.Result, len(pairs))
	var malformed int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(params.Workers)
	for i := range pairs {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = evaluatePair(pairs[i], scorer, params.Lenient)
			if results[i].Skipped() {
				tracer().Infof("skipping line %d: %v", pairs[i].Line, results[i].Err)
				if n := atomic.AddInt64(&malformed, 1); n > int64(params.MaxErrors) {
					return fmt.Errorf("%w: more than %d", ErrTooManyErrors, params.MaxErrors)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	summary := score.NewSummary()
	for _, r := range results {
		summary.Add(r)
	}
	tracer().Infof("evaluated %d line pairs, %d skipped", summary.Sentences, summary.Errors)
	return results, summary, nil
}

func evaluatePair(p Pair, scorer score.Scorer, lenient bool) score.Result {
	r := score.Result{Line: p.Line}
	if lenient {
		r.Gold, r.Test = ptree.ParseLenient(p.Gold), ptree.ParseLenient(p.Test)
	} else {
		var err error
		if r.Gold, err = ptree.Parse(p.Gold); err != nil {
			r.Err = fmt.Errorf("line %d: gold tree: %w", p.Line, err)
			return r
		}
		if r.Test, err = ptree.Parse(p.Test); err != nil {
			r.Err = fmt.Errorf("line %d: test tree: %w", p.Line, err)
			return r
		}
	}
	r.Metrics = scorer.Score(r.Gold, r.Test)
	return r
}
