// internal/appcore/shell.go
package appcore

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"hybsim/internal/clibase"
	"hybsim/internal/cmdutil"
	"hybsim/internal/version"
	"hybsim/internal/writers"
)

// ParseOutcome maps a ParseArgs error to an exit code and prints what the
// user asked for (help, examples) or what went wrong. done is false only when
// parsing succeeded and the run should continue.
func ParseOutcome(err error, fs *flag.FlagSet, stdout, stderr io.Writer, examples func(io.Writer)) (code int, done bool) {
	if err == nil {
		return 0, false
	}
	switch {
	case errors.Is(err, flag.ErrHelp):
		return printTo(stdout, stderr, func(w io.Writer) { fs.SetOutput(w); fs.Usage() }, 0), true
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		return printTo(stdout, stderr, examples, 0), true
	default:
		cmdutil.Errorf(stderr, "%v", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2, true
	}
}

// ConfigFailure reports a configuration error found after parsing.
func ConfigFailure(err error, fs *flag.FlagSet, stderr io.Writer) int {
	cmdutil.Errorf(stderr, "%v", err)
	fs.SetOutput(stderr)
	fs.Usage()
	return 2
}

// PrintVersion writes "<name> version X".
func PrintVersion(name string, stdout, stderr io.Writer) int {
	return printTo(stdout, stderr, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "%s version %s\n", name, version.Version)
	}, 0)
}

func printTo(stdout, stderr io.Writer, body func(io.Writer), code int) int {
	outw := bufio.NewWriter(stdout)
	body(outw)
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		cmdutil.Errorf(stderr, "%v", e)
		return 3
	}
	return code
}
