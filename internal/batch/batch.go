// Package batch runs many headless sessions side by side, one per seed.
package batch

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"life-sandbox/internal/core"
	"life-sandbox/internal/session"
)

// ErrNoSeeds is returned when Options carries no seeds to run.
var ErrNoSeeds = errors.New("batch needs at least one seed")

// Options configures a batch of runs.
type Options struct {
	Kind        session.Kind
	Rows, Cols  int
	Generations int
	Seeds       []int64
	// Workers caps concurrent runs. Zero means one per CPU.
	Workers int
	// StopOnStagnation ends a run once its grid repeats a recent state.
	StopOnStagnation bool
}

// Result summarizes one finished run.
type Result struct {
	Seed        int64
	Generations int
	Population  int
	White       int
	Black       int
	Outcome     session.Outcome
	Stagnant    bool
}

// Run executes one session per seed. Results are returned in seed order.
// Each session is stepped on a single goroutine; only independent sessions
// run concurrently.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if len(opts.Seeds) == 0 {
		return nil, ErrNoSeeds
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(opts.Seeds))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, seed := range opts.Seeds {
		eg.Go(func() error {
			res, err := runOne(ctx, opts, seed)
			if err != nil {
				return errors.Wrapf(err, "seed %d", seed)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, opts Options, seed int64) (Result, error) {
	s, err := session.New(opts.Kind, opts.Rows, opts.Cols)
	if err != nil {
		return Result{}, err
	}
	s.Reset(seed)
	s.Start()

	res := Result{Seed: seed, Outcome: session.Idle}
	var history core.History
	for s.Generation() < opts.Generations {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		res.Outcome = s.Advance()
		if res.Outcome.Terminal() {
			break
		}
		if opts.StopOnStagnation {
			fp := s.Sim().Fingerprint()
			if history.Stagnant(fp) {
				res.Stagnant = true
				break
			}
			history.Record(fp)
		}
	}
	res.Generations = s.Generation()
	res.Population = s.Population()
	res.White, res.Black = s.Counts()
	if s.Kind() != session.Chess {
		res.White, res.Black = 0, 0
	}
	return res, nil
}
