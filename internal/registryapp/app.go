// internal/registryapp/app.go
package registryapp

import (
	"context"
	"io"

	"hybsim-core/trial"

	"hybsim/internal/appcore"
	"hybsim/internal/registrycli"
)

const name = "hybsim-registry"

// RunContext parses argv and runs registry-mode trials.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := registrycli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := registrycli.ParseArgs(fs, argv)
	if code, done := appcore.ParseOutcome(err, fs, stdout, stderr, registrycli.PrintExamples); done {
		return code
	}
	if opts.Version {
		return appcore.PrintVersion(name, stdout, stderr)
	}

	o := appcore.Options{
		Mode:    trial.Registry,
		Seq:     opts.Seq,
		SeqFile: opts.SeqFile,
		SeqID:   opts.SeqID,
		Stop:    opts.Stop,
		Temp:    opts.Temp,
		KForm:   opts.KForm,
		Horizon: opts.Horizon,
		Seed:    opts.Seed,
		Threads: opts.Threads,
		Output:  opts.Output,
		Plot:    opts.Plot,
		Quiet:   opts.Quiet,
		Verbose: opts.Verbose,
	}
	plan, err := appcore.Build(parent, o)
	if err != nil {
		return appcore.ConfigFailure(err, fs, stderr)
	}
	return appcore.Run(parent, stdout, stderr, o, plan)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
