// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"hybsim/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage examples, zipping block, etc.).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – strand hybridization kinetics (Gillespie SSA)\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "      --seq string            Strand sequence, 5'→3' (A C G T; lowercase a c g t = stem-loop) [*]")
		fmt.Fprintln(out, "      --seq-file file         FASTA file instead of --seq ('-' = stdin, gzip ok)")
		fmt.Fprintln(out, "      --seq-id string         Record ID in --seq-file (default: first record)")
		fmt.Fprintln(out, "      --stop int              Successful trials to collect [*]")

		fmt.Fprintln(out, "\nModel:")
		fmt.Fprintf(out, "      --temp string           Nearest-neighbour table: 37 | 55 [%s]\n", def("temp"))
		fmt.Fprintf(out, "      --kform float           Formation rate constant [%s]\n", def("kform"))
		fmt.Fprintf(out, "      --horizon float         Clock limit per trial (0=mode default) [%s]\n", def("horizon"))

		fmt.Fprintln(out, "\nSampling:")
		fmt.Fprintf(out, "      --seed int              Random seed (0=time based) [%s]\n", def("seed"))
		fmt.Fprintf(out, "  -t, --threads int           Independent workers (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
		fmt.Fprintln(out, "      --plot file.png         Write a histogram of the results")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress warnings [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Print a run summary on stderr [%s]\n", def("verbose"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
		fmt.Fprintln(out, "\n[*] required; --seq-file may replace --seq")
	}
}
