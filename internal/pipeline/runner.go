// internal/pipeline/runner.go
package pipeline

import (
	"context"

	"hybsim-core/ssa"
	"hybsim-core/trial"
)

// Runner is the minimal capability the pipeline needs.
// *trial.Controller satisfies it, and so can fakes in tests.
type Runner interface {
	Run(ctx context.Context, emit func(trial.Record) error) (trial.Summary, error)
}

// Factory builds worker i's runner around its private generator.
type Factory func(worker int, src ssa.Source) (Runner, error)
