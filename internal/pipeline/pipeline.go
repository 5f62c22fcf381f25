// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"hybsim-core/trial"
)

// Config controls the worker pool.
type Config struct {
	Threads int   // number of worker goroutines (>=1)
	Seed    int64 // worker i uses Seed+i
	Stop    int   // records to accept in total (>=1)
}

// Result is one accepted record and the worker that produced it.
type Result struct {
	Worker int
	trial.Record
}

// Stats describes a finished pipeline run.
type Stats struct {
	Accepted    int
	Steps       int64 // engine steps across all workers
	HorizonHits int   // workers stopped by the horizon guard
}

// ForEachRecord starts cfg.Threads workers and calls visit, from a single
// goroutine, for each record in arrival order until cfg.Stop records were
// accepted. Remaining workers are then cancelled and in-flight records are
// dropped.
//
// It returns the first visit or factory error, ctx.Err() if the parent
// context was cancelled, or trial.ErrHorizon when every worker hit the
// horizon before the stop count was reached.
func ForEachRecord(ctx context.Context, cfg Config, factory Factory, visit func(Result) error) (Stats, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.Stop < 1 {
		return Stats{}, errors.New("pipeline: stop must be >= 1")
	}

	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan Result, cfg.Threads*2)
	sums := make([]trial.Summary, cfg.Threads)
	errs := make([]error, cfg.Threads)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func(w int) {
			defer wg.Done()
			src := rand.New(rand.NewSource(cfg.Seed + int64(w)))
			r, err := factory(w, src)
			if err != nil {
				errs[w] = err
				cancel()
				return
			}
			sums[w], errs[w] = r.Run(wctx, func(rec trial.Record) error {
				select {
				case results <- Result{Worker: w, Record: rec}:
					return nil
				case <-wctx.Done():
					return wctx.Err()
				}
			})
		}(w)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector
	var (
		st   Stats
		cerr error
	)
	for res := range results {
		if cerr != nil || st.Accepted >= cfg.Stop {
			continue
		}
		if err := visit(res); err != nil {
			cerr = err
			cancel()
			continue
		}
		st.Accepted++
		if st.Accepted >= cfg.Stop {
			cancel()
		}
	}

	for w := range sums {
		st.Steps += sums[w].Steps
		switch err := errs[w]; {
		case err == nil, errors.Is(err, context.Canceled):
		case errors.Is(err, trial.ErrHorizon):
			st.HorizonHits++
		default:
			if cerr == nil {
				cerr = err
			}
		}
	}

	if cerr != nil {
		return st, cerr
	}
	if ctx.Err() != nil {
		return st, ctx.Err()
	}
	if st.Accepted < cfg.Stop && st.HorizonHits > 0 {
		return st, trial.ErrHorizon
	}
	return st, nil
}
