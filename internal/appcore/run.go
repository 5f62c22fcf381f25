// internal/appcore/run.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"

	"hybsim-core/trial"

	"hybsim/internal/clibase"
	"hybsim/internal/cmdutil"
	"hybsim/internal/pipeline"
	"hybsim/internal/writers"
)

// Run executes a built plan and returns the process exit code:
// 0 ok (also on a horizon stop, with a warning), 2 config, 3 I/O, 130 interrupted.
func Run(parent context.Context, stdout, stderr io.Writer, o Options, p Plan) int {
	outw := bufio.NewWriter(stdout)

	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	meta := writers.Meta{
		RunID:    uuid.New().String(),
		Mode:     o.Mode,
		Sequence: p.Strands.String(),
		Table:    p.Table.Name(),
		Seed:     seed,
	}
	cmdutil.Infof(stderr, o.Verbose, "run %s: mode=%s n=%d table=%s kform=%g seed=%d threads=%d",
		meta.RunID, meta.Mode, p.Strands.Len(), meta.Table, p.Calc.KForm(), seed, thr)

	inCh, writeErr := writers.StartRecordWriter(outw, o.Output, meta, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		accepted int
		plotVals []float64
	)
	st, perr := pipeline.ForEachRecord(ctx,
		pipeline.Config{Threads: thr, Seed: seed, Stop: o.Stop},
		p.Factory(),
		func(r pipeline.Result) error {
			accepted++
			r.Trial = accepted
			if o.Plot != "" {
				plotVals = append(plotVals, plotValue(o.Mode, r.Record))
			}
			select {
			case inCh <- writers.ToAPIRecord(meta, r.Worker, r.Record):
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		cmdutil.Errorf(stderr, "%v", werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		cmdutil.Errorf(stderr, "%v", e)
		return 3
	}

	switch {
	case perr == nil:
		if st.HorizonHits > 0 {
			cmdutil.Warnf(stderr, o.Quiet, "%d worker(s) passed the %g horizon; their unfinished trials were dropped",
				st.HorizonHits, p.Trial.Horizon)
		}
	case errors.Is(perr, trial.ErrHorizon):
		cmdutil.Warnf(stderr, o.Quiet, "%v after %d of %d trials (horizon %g); output is partial",
			perr, st.Accepted, o.Stop, p.Trial.Horizon)
	case errors.Is(perr, context.Canceled):
		return 130
	case clibase.IsConfigError(perr):
		cmdutil.Errorf(stderr, "%v", perr)
		return 2
	default:
		cmdutil.Errorf(stderr, "%v", perr)
		return 3
	}

	switch {
	case o.Plot == "":
	case len(plotVals) == 0:
		cmdutil.Warnf(stderr, o.Quiet, "no records; --plot %s skipped", o.Plot)
	default:
		if err := writePlot(o.Plot, o.Mode, plotVals); err != nil {
			cmdutil.Errorf(stderr, "%v", err)
			return 3
		}
		cmdutil.Infof(stderr, o.Verbose, "plot written to %s", o.Plot)
	}

	cmdutil.Infof(stderr, o.Verbose, "run %s: %d successes, %d steps", meta.RunID, st.Accepted, st.Steps)
	return 0
}

func plotValue(mode trial.Policy, r trial.Record) float64 {
	if mode == trial.Registry {
		return float64(r.Offset)
	}
	return r.Time
}

func writePlot(path string, mode trial.Policy, vals []float64) (err error) {
	title, xLabel := "Time to zip", "time"
	if mode == trial.Registry {
		title, xLabel = "Registry offset at dissociation", "offset"
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := writers.WriteHistogramPNG(f, title, xLabel, writers.Histogram(vals, mode == trial.Registry)); err != nil {
		return fmt.Errorf("plot %s: %w", path, err)
	}
	return nil
}
