package parse

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2/buffer"
	"github.com/tdewolff/tsparse/js"
)

// Error is a parsing error returned by the command line and language server. It contains a message and the line, column and source line at which the error occurred.
type Error struct {
	Code    js.ErrorCode
	Message string
	Offset  int
	Line    int
	Column  int
	Context string
}

// NewError creates a new error
func NewError(msg string, r io.Reader, offset int) *Error {
	line, column, context := Position(r, offset)
	return &Error{
		Message: msg,
		Offset:  offset,
		Line:    line,
		Column:  column,
		Context: context,
	}
}

// NewErrorLexer creates a new error from an active Lexer.
func NewErrorLexer(msg string, l *buffer.Lexer) *Error {
	r := buffer.NewReader(l.Bytes())
	offset := l.Offset()
	return NewError(msg, r, offset)
}

// NewErrorDiagnostic creates a new error from a parser diagnostic over src.
func NewErrorDiagnostic(src []byte, d *js.Diagnostic) *Error {
	err := NewError(d.Message, bytes.NewReader(src), d.Loc.Index)
	err.Code = d.Code
	return err
}

// Errors converts the diagnostics of a parse into errors.
// A fatal parse error that is not a diagnostic is returned unchanged.
func Errors(src []byte, program *js.Program, err error) []error {
	errs := []error{}
	if program != nil {
		for _, d := range program.Errors {
			errs = append(errs, NewErrorDiagnostic(src, d))
		}
	}
	if len(errs) == 0 && err != nil {
		if d, ok := err.(*js.Diagnostic); ok {
			errs = append(errs, NewErrorDiagnostic(src, d))
		} else {
			errs = append(errs, err)
		}
	}
	return errs
}

// Position returns the line, column, and context of the error.
// Context is the entire line at which the error occurred.
func (e *Error) Position() (int, int, string) {
	return e.Line, e.Column, e.Context
}

// Error returns the error string, containing the context and line + column number.
func (e *Error) Error() string {
	return fmt.Sprintf("%s on line %d and column %d\n%s", e.Message, e.Line, e.Column, e.Context)
}
