// Package appshell is the signal-aware main wrapper shared by both binaries.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is an app entry point returning a process exit code.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run with os.Args and exits. SIGINT/SIGTERM cancel the context; a
// run that was cancelled but still reported success exits 130. No arguments
// at all prints the help.
func Main(run RunFunc) {
	os.Exit(exitCode(run, os.Args[1:], os.Stdout, os.Stderr))
}

func exitCode(run RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
