// core/fasta/open.go
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"
)

var gzipMagic = []byte{0x1f, 0x8b}

// source is an opened input plus everything that must be closed with it.
type source struct {
	io.Reader
	closers []io.Closer
}

// Close closes gzip before the file and returns the first error.
func (s *source) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// openReader opens path, with "-" meaning stdin. Gzip input is detected from
// its magic bytes, so piped .gz data on stdin works too.
func openReader(path string) (io.ReadCloser, error) {
	src := &source{}
	var raw io.Reader = os.Stdin
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		raw = fh
		src.closers = append(src.closers, fh)
	}
	br := bufio.NewReader(raw)
	head, _ := br.Peek(len(gzipMagic))
	if !bytes.Equal(head, gzipMagic) {
		src.Reader = br
		return src, nil
	}
	gz, err := gzip.NewReader(br)
	if err != nil {
		_ = src.Close()
		return nil, err
	}
	src.Reader = gz
	src.closers = append([]io.Closer{gz}, src.closers...)
	return src, nil
}
