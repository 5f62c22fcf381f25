// Package trial drives an ssa.Engine through repeated trials and decides
// which engine outcomes count as successes.
package trial

import (
	"context"
	"errors"
	"fmt"

	"hybsim-core/ssa"
)

// ErrHorizon is returned when the clock passes the configured horizon before
// the stop condition is met. It is a runaway guard, not a normal ending.
var ErrHorizon = errors.New("simulation horizon exceeded")

// Policy is the termination rule.
type Policy int

const (
	// Registry counts every return to zero bonds as a success.
	Registry Policy = iota
	// Zipping counts only a fully zipped duplex; returns to zero restart.
	Zipping
)

func (p Policy) String() string {
	switch p {
	case Registry:
		return "registry"
	case Zipping:
		return "zipping"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// DefaultHorizon is the clock limit used by each mode's original runs.
func (p Policy) DefaultHorizon() float64 {
	if p == Zipping {
		return 1e7
	}
	return 1e6
}

// Config controls one controller.
type Config struct {
	Policy Policy
	// Stop is the number of successes to collect; 0 runs until the context
	// is cancelled or the horizon is hit.
	Stop int
	// Horizon <= 0 selects Policy.DefaultHorizon.
	Horizon float64
	// KeepClock (zipping only) lets time accumulate across failed attempts
	// instead of restarting the clock at every return to zero.
	KeepClock bool
}

// Record is one success.
type Record struct {
	Trial    int     // 1-based success index within this controller
	Offset   int     // registry offset (always 0 in zipping mode)
	Time     float64 // clock at the success
	Steps    int64   // engine steps since the previous success
	Attempts int     // nucleations since the previous success
}

// Summary describes a finished run.
type Summary struct {
	Successes int
	Steps     int64
	Clock     float64 // time spent on the unfinished trial when Run returned
}

// Controller owns an engine and applies the termination policy.
type Controller struct {
	eng *ssa.Engine
	cfg Config
}

const ctxCheckEvery = 4096

// New returns a Controller. The horizon default is resolved here.
func New(eng *ssa.Engine, cfg Config) (*Controller, error) {
	if eng == nil {
		return nil, errors.New("trial: engine is required")
	}
	if cfg.Stop < 0 {
		return nil, fmt.Errorf("trial: stop must be >= 0, got %d", cfg.Stop)
	}
	if cfg.Horizon <= 0 {
		cfg.Horizon = cfg.Policy.DefaultHorizon()
	}
	return &Controller{eng: eng, cfg: cfg}, nil
}

// Config returns the resolved configuration.
func (c *Controller) Config() Config { return c.cfg }

// Run steps the engine, calling emit once per success, until Stop successes
// have been emitted, the horizon is passed (ErrHorizon), the context is
// cancelled (ctx.Err()), or emit fails (its error is returned).
//
// The horizon bounds the time since the previous success, failed zipping
// attempts included, even when the reported clock restarts per attempt.
func (c *Controller) Run(ctx context.Context, emit func(Record) error) (Summary, error) {
	var (
		sum      Summary
		steps    int64
		attempts int
		elapsed  float64
	)
	for {
		out := c.eng.Step()
		steps++
		sum.Steps++
		elapsed += out.Tau
		if out.Nucleated {
			attempts++
		}

		success := false
		switch c.cfg.Policy {
		case Registry:
			success = out.Dissociated
		case Zipping:
			success = out.Zipped
			if out.Dissociated && !c.cfg.KeepClock {
				c.eng.ResetClock()
			}
		}

		if success {
			sum.Successes++
			rec := Record{
				Trial:    sum.Successes,
				Offset:   out.Offset,
				Time:     c.eng.Clock(),
				Steps:    steps,
				Attempts: attempts,
			}
			c.eng.ResetClock()
			steps, attempts, elapsed = 0, 0, 0
			if err := emit(rec); err != nil {
				return sum, err
			}
			if c.cfg.Stop > 0 && sum.Successes >= c.cfg.Stop {
				return sum, nil
			}
		}

		if elapsed >= c.cfg.Horizon {
			sum.Clock = elapsed
			return sum, ErrHorizon
		}
		if sum.Steps%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				sum.Clock = elapsed
				return sum, err
			}
		}
	}
}
