package lsp

import (
	"unicode/utf8"

	"github.com/tdewolff/tsparse/js"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const source = "tsparse"

// diagnostics converts parse diagnostics into protocol diagnostics. Columns are UTF-16 code units per the protocol.
func diagnostics(src []byte, program *js.Program, err error) []protocol.Diagnostic {
	ds := []*js.Diagnostic{}
	if program != nil {
		ds = append(ds, program.Errors...)
	}
	if d, ok := err.(*js.Diagnostic); ok && len(ds) == 0 {
		ds = append(ds, d)
	}

	severity := protocol.DiagnosticSeverityError
	diags := make([]protocol.Diagnostic, 0, len(ds))
	for _, d := range ds {
		pos := position(src, d.Loc)
		name := source
		diags = append(diags, protocol.Diagnostic{
			Range:    protocol.Range{Start: pos, End: pos},
			Severity: &severity,
			Code:     &protocol.IntegerOrString{Value: d.Code.String()},
			Source:   &name,
			Message:  d.Message,
		})
	}
	return diags
}

// position returns the protocol position of loc, counting the line's characters in UTF-16 code units.
func position(src []byte, loc js.Position) protocol.Position {
	start := loc.Index - loc.Column
	if start < 0 || len(src) < loc.Index {
		return protocol.Position{Line: protocol.UInteger(loc.Line - 1), Character: protocol.UInteger(loc.Column)}
	}

	n := 0
	for b := src[start:loc.Index]; 0 < len(b); {
		r, size := utf8.DecodeRune(b)
		if 0xFFFF < r {
			n += 2
		} else {
			n++
		}
		b = b[size:]
	}
	return protocol.Position{Line: protocol.UInteger(loc.Line - 1), Character: protocol.UInteger(n)}
}
