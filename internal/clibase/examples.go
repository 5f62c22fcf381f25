// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK tells the app that Parse already handled the request
// (--examples) and the process should exit 0 without running.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples writes name's quickstart block: a title line, the body the
// tool supplies, and a closing hint.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil {
		return
	}
	fmt.Fprintf(out, "%s: quickstart\n\n", name)
	if body != nil {
		body(out)
	}
	fmt.Fprintln(out, "\nSee --help for every flag and its default.")
}
