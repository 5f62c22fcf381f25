// Package jsonutil holds the JSON encoding shared by whole-run outputs.
package jsonutil

import (
	"encoding/json"
	"io"
)

// EncodePretty writes v to w as two-space indented JSON with a trailing
// newline. HTML escaping is off so sequences and ids print verbatim.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
