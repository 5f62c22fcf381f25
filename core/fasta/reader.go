// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// Record is one FASTA entry. Seq keeps the input case, since lowercase marks
// stem-loop bases.
type Record struct {
	ID  string
	Seq string
}

// ErrNotFound is returned by Find when no record matches.
var ErrNotFound = errors.New("fasta: record not found")

// errStop ends a scan early without reporting an error.
var errStop = errors.New("stop")

// Scan reads r and calls emit for each record in file order. Return a non-nil
// error from emit to stop early; that error is returned.
func Scan(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 16 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id   string
		seq  []byte
		open bool
	)
	flush := func() error {
		if !open {
			return nil
		}
		return emit(Record{ID: id, Seq: string(seq)})
	}

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id, seq, open = parseHeaderID(line[1:]), seq[:0], true
			continue
		}
		if !open {
			// Bare sequence without a header.
			open = true
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// Find opens path ("-" = stdin, gzip detected) and returns the record named
// id, or the first record when id is empty.
func Find(ctx context.Context, path, id string) (Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return Record{}, err
	}
	defer rc.Close()

	var (
		got   Record
		found bool
	)
	err = Scan(ctx, rc, func(r Record) error {
		if id == "" || r.ID == id {
			got, found = r, true
			return errStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return Record{}, fmt.Errorf("%s: %w", path, err)
	}
	if !found {
		if id == "" {
			return Record{}, fmt.Errorf("%s: %w (file has no records)", path, ErrNotFound)
		}
		return Record{}, fmt.Errorf("%s: %w: %q", path, ErrNotFound, id)
	}
	return got, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
