// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"hybsim/internal/cliutil"
)

// Common holds CLI fields shared by hybsim-registry and hybsim-zip.
type Common struct {
	// Input
	Seq     string
	SeqFile string
	SeqID   string
	Stop    int

	// Model
	Temp    string
	KForm   float64
	Horizon float64

	// Sampling
	Seed    int64
	Threads int

	// Output
	Output string // text|json|jsonl
	Plot   string

	// Misc
	Quiet    bool
	Verbose  bool
	Version  bool
	Help     bool
	Examples bool
}

// Register wires shared flags onto fs. defTemp is the tool's default table.
func Register(fs *flag.FlagSet, c *Common, defTemp string) {
	// Input
	fs.StringVar(&c.Seq, "seq", "", "strand sequence (ACGT; lowercase = stem-loop)")
	fs.StringVar(&c.SeqFile, "seq-file", "", "read the sequence from a FASTA file ('-' = stdin, .gz ok)")
	fs.StringVar(&c.SeqID, "seq-id", "", "record to use from --seq-file (default: first)")
	fs.IntVar(&c.Stop, "stop", 0, "number of successful trials to collect")

	// Model
	fs.StringVar(&c.Temp, "temp", defTemp, "energy table: 37 | 55")
	fs.Float64Var(&c.KForm, "kform", 1e9, "formation rate constant")
	fs.Float64Var(&c.Horizon, "horizon", 0, "clock limit per trial (0=mode default)")

	// Sampling
	fs.Int64Var(&c.Seed, "seed", 0, "random seed (0=time based)")
	fs.IntVar(&c.Threads, "threads", 1, "independent trial workers (0=all CPUs)")
	fs.IntVar(&c.Threads, "t", 1, "alias of --threads")

	// Output
	fs.StringVar(&c.Output, "output", "text", "output: text | json | jsonl")
	fs.StringVar(&c.Output, "o", "text", "alias of --output")
	fs.StringVar(&c.Plot, "plot", "", "write a histogram PNG to this path")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress warnings")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Verbose, "verbose", false, "print a run summary on stderr")
	fs.BoolVar(&c.Version, "version", false, "print version and exit")
	fs.BoolVar(&c.Version, "v", false, "alias of --version")
	fs.BoolVar(&c.Help, "h", false, "show this help")
	fs.BoolVar(&c.Examples, "examples", false, "show quickstart examples and exit")
}

// Parse splits argv, parses flags, and rejects stray positionals. Errors from
// the flag package come back as ConfigError. flag.ErrHelp and
// ErrPrintedAndExitOK are passed through.
func Parse(fs *flag.FlagSet, c *Common, argv []string) error {
	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return &ConfigError{Err: err}
	}
	if c.Examples {
		return ErrPrintedAndExitOK
	}
	if c.Help {
		return flag.ErrHelp
	}
	if len(posArgs) > 0 {
		return &ConfigError{Err: fmt.Errorf("unexpected argument %q", posArgs[0])}
	}
	return nil
}

// Require fails on the first name in names that was not set on the command line.
func Require(fs *flag.FlagSet, names ...string) error {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for _, n := range names {
		if !set[n] {
			return Errorf(n, "required flag missing")
		}
	}
	return nil
}

// Validate applies shared CLI invariants used by all tools. It runs before
// any value is used.
func Validate(fs *flag.FlagSet, c *Common) error {
	if c.Version {
		return nil
	}
	switch {
	case c.Seq != "" && c.SeqFile != "":
		return Errorf("seq", "conflicts with --seq-file")
	case c.SeqFile != "":
	case c.SeqID != "":
		return Errorf("seq-id", "needs --seq-file")
	default:
		if err := Require(fs, "seq"); err != nil {
			return err
		}
		if strings.TrimSpace(c.Seq) == "" {
			return Errorf("seq", "empty sequence")
		}
	}
	if err := Require(fs, "stop"); err != nil {
		return err
	}
	if c.Stop < 1 {
		return Errorf("stop", "must be ≥ 1, got %d", c.Stop)
	}
	if c.KForm <= 0 {
		return Errorf("kform", "must be > 0")
	}
	if c.Horizon < 0 {
		return Errorf("horizon", "must be ≥ 0")
	}
	if c.Threads < 0 {
		return Errorf("threads", "must be ≥ 0")
	}
	switch c.Output {
	case "text", "json", "jsonl":
	default:
		return Errorf("output", "invalid format %q (text | json | jsonl)", c.Output)
	}
	if c.Quiet && c.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}
