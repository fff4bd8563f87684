package js

import (
	"testing"

	"github.com/tdewolff/test"
)

type walker struct {
	entered []string
	exited  int
	skip    NodeType
}

func (w *walker) Enter(n Node) IVisitor {
	if id, ok := n.(*Identifier); ok {
		w.entered = append(w.entered, id.Name)
	}
	if n.Type() == w.skip {
		return nil
	}
	return w
}

func (w *walker) Exit(n Node) {
	w.exited++
}

func TestWalk(t *testing.T) {
	var tests = []struct {
		js       string
		expected []string
	}{
		{"a + b * c", []string{"a", "b", "c"}},
		{"var x = f(y, z)", []string{"x", "f", "y", "z"}},
		{"if (a) { b } else c", []string{"a", "b", "c"}},
		{"class A extends B { m(p) { q } }", []string{"A", "B", "m", "p", "q"}},
		{"function f(a = b, ...c) { return d }", []string{"f", "a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			program := parseString(t, tt.js, DefaultOptions())
			w := &walker{skip: numNodeTypes}
			Walk(w, program)
			test.T(t, w.entered, tt.expected)
		})
	}
}

func TestWalkTS(t *testing.T) {
	program := parseString(t, "function f<T>(x: T): U { return y }", tsOptions())
	w := &walker{skip: numNodeTypes}
	Walk(w, program)
	test.T(t, w.entered, []string{"f", "x", "T", "U", "y"})
}

func TestWalkSkip(t *testing.T) {
	program := parseString(t, "a; function f() { b } c", DefaultOptions())
	w := &walker{skip: FunctionDeclarationNode}
	Walk(w, program)
	test.T(t, w.entered, []string{"a", "c"})
}

func TestWalkExit(t *testing.T) {
	program := parseString(t, "a + b", DefaultOptions())
	w := &walker{skip: numNodeTypes}
	Walk(w, program)
	// Program, ExpressionStatement, BinaryExpression and two identifiers
	test.T(t, w.exited, 5)
}

func TestChildren(t *testing.T) {
	program := parseString(t, "a; b", DefaultOptions())
	children := Children(program)
	test.T(t, len(children), 2)
	test.T(t, children[0].Type(), ExpressionStatementNode)
	test.T(t, len(Children(children[0].(*ExpressionStatement).Expression)), 0)
}
