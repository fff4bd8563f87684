// Package format writes parsed programs in the output formats of the command line.
package format

import (
	"io"

	"github.com/pkg/errors"
	"github.com/tdewolff/tsparse/js"
)

// Encoder writes a program.
type Encoder interface {
	Encode(program *js.Program) error
}

// Formats lists the names accepted by NewEncoder.
var Formats = []string{"json", "sexpr", "pretty"}

// NewEncoder returns the encoder with the given format name.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "sexpr":
		return NewSExprEncoder(w), nil
	case "pretty":
		return NewPrettyEncoder(w), nil
	}
	return nil, errors.Errorf("unknown format: %s", name)
}
