package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func commentValues(comments []*Comment) []string {
	values := []string{}
	for _, c := range comments {
		values = append(values, c.Value)
	}
	return values
}

func TestLeadingComments(t *testing.T) {
	program := parseString(t, "/* a */ function f() {}", DefaultOptions())
	test.T(t, len(program.Comments), 1)
	fn, ok := program.Body[0].(*FunctionDeclaration)
	test.That(t, ok, "function declaration")
	test.T(t, commentValues(fn.Leading), []string{" a "})
	test.T(t, fn.Start.Index, 8)
}

func TestTrailingComments(t *testing.T) {
	program := parseString(t, "a; // b\nc;", DefaultOptions())
	test.T(t, commentValues(program.Body[0].Base().Trailing), []string{" b"})
	test.T(t, commentValues(program.Body[1].Base().Leading), []string{" b"})
}

func TestInnerComments(t *testing.T) {
	program := parseString(t, "function f() { /* empty */ }", DefaultOptions())
	fn := program.Body[0].(*FunctionDeclaration)
	test.T(t, commentValues(fn.Body.Inner), []string{" empty "})
}

func TestTrailingCommaComments(t *testing.T) {
	program := parseString(t, "x = [a, /* b */]", DefaultOptions())
	stmt := program.Body[0].(*ExpressionStatement)
	array := stmt.Expression.(*AssignmentExpression).Right.(*ArrayExpression)
	test.T(t, commentValues(array.Elements[0].Base().Trailing), []string{" b "})
}

func TestCommentsRestoredOnBacktrack(t *testing.T) {
	// the arrow attempt scans the comment, the comment must be recorded once
	program := parseString(t, "(a /* c */, b);", DefaultOptions())
	test.T(t, len(program.Comments), 1)
}

func TestHTMLComments(t *testing.T) {
	program := parseString(t, "<!-- a\nb\n--> c", DefaultOptions())
	test.T(t, len(program.Comments), 2)
	test.T(t, len(program.Body), 1)

	o := DefaultOptions()
	o.SourceType = ModuleSource
	_, err := Parse([]byte("<!-- a\nb"), o)
	test.That(t, err != nil, "HTML comments are not allowed in modules")
}
