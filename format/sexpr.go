package format

import (
	"io"

	"github.com/kr/pretty"
	"github.com/tdewolff/tsparse/js"
)

// SExprEncoder writes the compact S-expression rendering of the AST.
type SExprEncoder struct {
	w io.Writer
}

func NewSExprEncoder(w io.Writer) *SExprEncoder {
	return &SExprEncoder{w: w}
}

func (e *SExprEncoder) Encode(program *js.Program) error {
	_, err := io.WriteString(e.w, program.String()+"\n")
	return err
}

// PrettyEncoder writes the AST as Go syntax, field by field.
type PrettyEncoder struct {
	w io.Writer
}

func NewPrettyEncoder(w io.Writer) *PrettyEncoder {
	return &PrettyEncoder{w: w}
}

func (e *PrettyEncoder) Encode(program *js.Program) error {
	_, err := pretty.Fprintf(e.w, "%# v\n", program)
	return err
}
