// internal/writers/brokenpipe.go
package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader of stdout went away, as
// with `hybsim-registry ... | head`. Such runs exit 0 without a message.
func IsBrokenPipe(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, syscall.EPIPE), errors.Is(err, io.ErrClosedPipe):
		return true
	}
	return false
}
