package parse

import (
	"bytes"
	"testing"

	"github.com/tdewolff/parse/v2/buffer"
	"github.com/tdewolff/test"
	"github.com/tdewolff/tsparse/js"
)

func TestError(t *testing.T) {
	err := NewError("message", bytes.NewBufferString("buffer"), 3)

	line, column, context := err.Position()
	test.T(t, line, 1, "line")
	test.T(t, column, 4, "column")
	test.T(t, "\n"+context, "\n    1: buffer\n          ^", "context")

	test.T(t, err.Error(), "message on line 1 and column 4\n    1: buffer\n          ^", "error")
}

func TestErrorLexer(t *testing.T) {
	l := buffer.NewLexer(bytes.NewBufferString("buffer"))
	l.Move(3)
	err := NewErrorLexer("message", l)

	line, column, context := err.Position()
	test.T(t, line, 1, "line")
	test.T(t, column, 4, "column")
	test.T(t, "\n"+context, "\n    1: buffer\n          ^", "context")
}

func TestErrorDiagnostic(t *testing.T) {
	src := []byte("let a;\nlet a;")
	_, err := js.Parse(src, js.DefaultOptions())
	test.That(t, err != nil, "must fail")

	perr := NewErrorDiagnostic(src, err.(*js.Diagnostic))
	test.T(t, perr.Code, js.VarRedeclaration)
	test.T(t, perr.Offset, 11)
	test.T(t, perr.Line, 2, "line")
	test.T(t, perr.Column, 5, "column")
	test.String(t, perr.Error(), "Identifier 'a' has already been declared. on line 2 and column 5\n    2: let a;\n           ^")
}

func TestErrors(t *testing.T) {
	src := []byte("let x = ;\nlet y = ;")
	o := js.DefaultOptions()
	o.ContinueOnError = true
	program, err := js.Parse(src, o)
	errs := Errors(src, program, err)
	test.T(t, len(errs), 2)
	test.T(t, errs[1].(*Error).Line, 2)

	src = []byte("let a;\nlet a;")
	program, err = js.Parse(src, js.DefaultOptions())
	errs = Errors(src, program, err)
	test.T(t, len(errs), 1)
	test.T(t, errs[0].(*Error).Code, js.VarRedeclaration)

	program, err = js.Parse([]byte("a"), js.DefaultOptions())
	test.T(t, len(Errors([]byte("a"), program, err)), 0)
}
