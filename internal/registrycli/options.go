// internal/registrycli/options.go
package registrycli

import (
	"flag"
	"fmt"
	"io"

	"hybsim/internal/clibase"
)

// Options for hybsim-registry. Nucleation pairs two distinct positions drawn
// uniformly from the whole strand.
type Options struct {
	clibase.Common
}

// NewFlagSet returns a FlagSet with the registry usage installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, _ func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s --seq SEQUENCE --stop N [options]\n", name)
		_, _ = fmt.Fprintln(out, "\nOne line per trial: registry offset and dissociation time.")
	})
	return fs
}

// PrintExamples prints a short quickstart for hybsim-registry.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "hybsim-registry", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Registry shifts: nucleate anywhere, time until the duplex falls apart.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  hybsim-registry \\")
		_, _ = fmt.Fprintln(w, "    --seq ATCGATCGATCG \\")
		_, _ = fmt.Fprintln(w, "    --stop 1000 \\")
		_, _ = fmt.Fprintln(w, "    --seed 7 --threads 4 \\")
		_, _ = fmt.Fprintln(w, "    --plot offsets.png")
	})
}

// ParseArgs registers, parses, and validates the registry flags.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	clibase.Register(fs, &o.Common, "37")
	if err := clibase.Parse(fs, &o.Common, argv); err != nil {
		return o, err
	}
	if err := clibase.Validate(fs, &o.Common); err != nil {
		return o, err
	}
	return o, nil
}
