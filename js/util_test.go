package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestContent(t *testing.T) {
	src := "var a = (1 + 2) * f(x);"
	program := parseString(t, src, DefaultOptions())
	decl := program.Body[0].(*VariableDeclaration)
	test.String(t, string(Content([]byte(src), decl)), src)
	test.String(t, string(Content([]byte(src), decl.Declarations[0])), "a = (1 + 2) * f(x)")

	mul := decl.Declarations[0].Init.(*BinaryExpression)
	test.String(t, string(Content([]byte(src), mul.Right)), "f(x)")
	test.String(t, string(Content([]byte(src), mul.Left)), "1 + 2")
}

func TestContentInvariance(t *testing.T) {
	// comments and whitespace only move locations
	a := parseString(t, "let x=1;f(x)", DefaultOptions())
	b := parseString(t, "let /* c */ x = 1 ;\n\n f( x ) // d", DefaultOptions())
	test.String(t, a.String(), b.String())
}

func TestIsIdentifierName(t *testing.T) {
	var tests = []struct {
		name     string
		expected bool
	}{
		{"a", true},
		{"$_a1", true},
		{"class", true},
		{"ünicode", true},
		{"1a", false},
		{"a-b", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.T(t, IsIdentifierName(tt.name), tt.expected)
		})
	}
}

func TestReservedWords(t *testing.T) {
	test.That(t, IsReservedWord("class", false))
	test.That(t, !IsReservedWord("let", false))
	test.That(t, IsStrictReservedWord("let", false))
	test.That(t, IsReservedWord("await", true))
	test.That(t, IsStrictBindReservedWord("eval", false))
}

func TestDiagnostic(t *testing.T) {
	_, err := Parse([]byte("let a;\nlet a;"), DefaultOptions())
	test.That(t, err != nil)
	d := err.(*Diagnostic)
	test.T(t, d.Code, VarRedeclaration)
	test.String(t, d.Message, "Identifier 'a' has already been declared.")
	test.T(t, d.Loc, Position{11, 2, 4})
	test.String(t, d.Error(), "Identifier 'a' has already been declared. (2:4)")
	test.String(t, d.Code.String(), "VarRedeclaration")
	test.That(t, StrictOctalLiteral.IsStrictModeError())
	test.That(t, TSDuplicateModifier.IsTypeScriptError())
}
