// internal/writers/records.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"hybsim-core/trial"

	"hybsim/internal/jsonlutil"
	"hybsim/internal/jsonutil"
	"hybsim/pkg/api"
)

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// StartRecordWriter spins up a writer goroutine for records of one run.
// Text and JSONL stream. JSON buffers and writes one SummaryV1 at close.
func StartRecordWriter(out io.Writer, format string, meta Meta, bufSize int) (chan<- api.RecordV1, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	if format == FormatJSONL {
		return jsonlutil.Start[api.RecordV1](out, bufSize,
			func(enc *json.Encoder, r api.RecordV1) error { return enc.Encode(r) },
			IsBrokenPipe,
		)
	}

	in := make(chan api.RecordV1, bufSize)
	errCh := make(chan error, 1)
	go func() {
		var err error
		switch format {
		case FormatText:
			err = streamText(out, meta.Mode, in)
		case FormatJSON:
			sum := api.SummaryV1{
				RunID:    meta.RunID,
				Mode:     meta.Mode.String(),
				Sequence: meta.Sequence,
				Table:    meta.Table,
				Seed:     meta.Seed,
				Records:  []api.RecordV1{},
			}
			for r := range in {
				sum.Records = append(sum.Records, r)
			}
			sum.Successes = len(sum.Records)
			err = jsonutil.EncodePretty(out, sum)
		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Never leave the producer blocked on a dead writer.
		for range in {
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()
	return in, errCh
}

// streamText writes the classic one-line-per-trial format: "offset time" in
// registry mode, "time" in zipping mode.
func streamText(out io.Writer, mode trial.Policy, in <-chan api.RecordV1) error {
	for r := range in {
		var err error
		if mode == trial.Registry && r.Offset != nil {
			_, err = fmt.Fprintf(out, "%d %.12f\n", *r.Offset, r.Time)
		} else {
			_, err = fmt.Fprintf(out, "%.12f\n", r.Time)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
