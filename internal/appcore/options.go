// internal/appcore/options.go
package appcore

import (
	"context"

	"hybsim-core/fasta"
	"hybsim-core/kinetics"
	"hybsim-core/seq"
	"hybsim-core/ssa"
	"hybsim-core/thermo"
	"hybsim-core/trial"

	"hybsim/internal/clibase"
	"hybsim/internal/pipeline"
)

// Options is the mode-independent run configuration both apps fill in.
type Options struct {
	Mode trial.Policy

	Seq     string
	SeqFile string // FASTA source used when Seq is empty
	SeqID   string
	Stop    int

	// Zipping nucleation range, 1-based inclusive. Ignored in registry mode.
	Num1, Num2 int

	Temp      string
	KForm     float64
	Horizon   float64
	KeepClock bool

	Seed    int64 // 0 = time based
	Threads int   // 0 = all CPUs

	Output string
	Plot   string

	Quiet   bool
	Verbose bool
}

// Plan is a validated configuration ready to run.
type Plan struct {
	Strands seq.Strands
	Table   *thermo.Table
	Calc    *kinetics.Calculator
	Engine  ssa.Config
	Trial   trial.Config
}

// Build loads and encodes the sequence, resolves the energy table, and checks
// every range against the sequence length. Errors are ConfigError.
func Build(ctx context.Context, o Options) (Plan, error) {
	var p Plan
	raw, srcFlag := o.Seq, "seq"
	if o.SeqFile != "" {
		rec, err := fasta.Find(ctx, o.SeqFile, o.SeqID)
		if err != nil {
			return p, &clibase.ConfigError{Flag: "seq-file", Err: err}
		}
		raw, srcFlag = rec.Seq, "seq-file"
	}
	st, err := seq.Encode(raw)
	if err != nil {
		return p, &clibase.ConfigError{Flag: srcFlag, Err: err}
	}
	tab, err := thermo.Lookup(o.Temp)
	if err != nil {
		return p, &clibase.ConfigError{Flag: "temp", Err: err}
	}
	if st.HasStem() && !tab.SupportsStem() {
		return p, clibase.Errorf(srcFlag, "lowercase stem-loop bases need --temp 55 (table %s has no stem-loop range)", tab.Name())
	}
	n := st.Len()

	switch o.Mode {
	case trial.Registry:
		if n < 2 {
			return p, clibase.Errorf(srcFlag, "registry mode needs at least 2 bases, got %d", n)
		}
		p.Engine = ssa.Config{Nucleation: ssa.Distinct{Lo: 1, Hi: n}}
	case trial.Zipping:
		if o.Num1 < 1 || o.Num1 > n {
			return p, clibase.Errorf("num1", "must be within [1, %d], got %d", n, o.Num1)
		}
		if o.Num2 < o.Num1 || o.Num2 > n {
			return p, clibase.Errorf("num2", "must be within [%d, %d], got %d", o.Num1, n, o.Num2)
		}
		p.Engine = ssa.Config{Nucleation: ssa.Aligned{Lo: o.Num1, Hi: o.Num2}, Target: n}
	default:
		return p, clibase.Errorf("", "unknown mode %v", o.Mode)
	}

	p.Strands = st
	p.Table = tab
	p.Calc = kinetics.New(st, tab, o.KForm)
	p.Trial = trial.Config{
		Policy:    o.Mode,
		Stop:      o.Stop,
		Horizon:   o.Horizon,
		KeepClock: o.KeepClock && o.Mode == trial.Zipping,
	}
	if p.Trial.Horizon <= 0 {
		p.Trial.Horizon = o.Mode.DefaultHorizon()
	}
	return p, nil
}

// Factory returns a pipeline factory building one engine and controller per
// worker. The calculator is read-only and shared.
func (p Plan) Factory() pipeline.Factory {
	return func(_ int, src ssa.Source) (pipeline.Runner, error) {
		eng, err := ssa.New(p.Calc, p.Engine, src)
		if err != nil {
			return nil, err
		}
		return trial.New(eng, p.Trial)
	}
}
