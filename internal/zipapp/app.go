// internal/zipapp/app.go
package zipapp

import (
	"context"
	"io"

	"hybsim-core/trial"

	"hybsim/internal/appcore"
	"hybsim/internal/zipcli"
)

const name = "hybsim-zip"

// RunContext parses argv and runs zipping-mode trials.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := zipcli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := zipcli.ParseArgs(fs, argv)
	if code, done := appcore.ParseOutcome(err, fs, stdout, stderr, zipcli.PrintExamples); done {
		return code
	}
	if opts.Version {
		return appcore.PrintVersion(name, stdout, stderr)
	}

	o := appcore.Options{
		Mode:      trial.Zipping,
		Seq:       opts.Seq,
		SeqFile:   opts.SeqFile,
		SeqID:     opts.SeqID,
		Stop:      opts.Stop,
		Num1:      opts.Num1,
		Num2:      opts.Num2,
		Temp:      opts.Temp,
		KForm:     opts.KForm,
		Horizon:   opts.Horizon,
		KeepClock: opts.KeepClock,
		Seed:      opts.Seed,
		Threads:   opts.Threads,
		Output:    opts.Output,
		Plot:      opts.Plot,
		Quiet:     opts.Quiet,
		Verbose:   opts.Verbose,
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
