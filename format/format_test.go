package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tdewolff/test"
	"github.com/tdewolff/tsparse/js"
)

func parse(t *testing.T, src string, o js.Options) *js.Program {
	t.Helper()
	program, err := js.Parse([]byte(src), o)
	test.Error(t, err)
	return program
}

func decode(t *testing.T, e *JSONEncoder, program *js.Program) map[string]interface{} {
	t.Helper()
	text, err := e.MarshalText(program)
	test.Error(t, err)
	v := map[string]interface{}{}
	test.Error(t, json.Unmarshal(text, &v))
	return v
}

func TestJSON(t *testing.T) {
	e := NewJSONEncoder(nil)
	e.Indent = ""
	e.Positions = false
	text, err := e.MarshalText(parse(t, "a + 1", js.DefaultOptions()))
	test.Error(t, err)
	test.That(t, strings.HasPrefix(string(text), `{"type":"Program","sourceType":"script","body":[{"type":"ExpressionStatement","expression":{"type":"BinaryExpression","operator":"+","left":{"type":"Identifier","name":"a","optional":false},"right":{"type":"NumericLiteral","value":1,"raw":"1"}}}]`), string(text))
}

func TestJSONFields(t *testing.T) {
	e := NewJSONEncoder(nil)
	o := js.DefaultOptions()
	o.SourceType = js.ModuleSource
	o.TypeScript = true
	v := decode(t, e, parse(t, "/* c */ export async function f<T>(x: T) {}", o))

	decl := v["body"].([]interface{})[0].(map[string]interface{})
	test.T(t, decl["type"], "ExportNamedDeclaration")
	fn := decl["declaration"].(map[string]interface{})
	test.T(t, fn["type"], "FunctionDeclaration")
	test.T(t, fn["async"], true)
	test.T(t, fn["id"].(map[string]interface{})["name"], "f")
	test.T(t, fn["typeParameters"].(map[string]interface{})["type"], "TSTypeParameterDeclaration")

	start := decl["start"].(map[string]interface{})
	test.T(t, start["index"], 8.0)
	test.T(t, start["line"], 1.0)
	leading := decl["leadingComments"].([]interface{})
	test.T(t, leading[0].(map[string]interface{})["type"], "CommentBlock")
	test.T(t, leading[0].(map[string]interface{})["value"], " c ")
}

func TestJSONNonFinite(t *testing.T) {
	e := NewJSONEncoder(nil)
	v := decode(t, e, parse(t, "1e999", js.DefaultOptions()))
	stmt := v["body"].([]interface{})[0].(map[string]interface{})
	test.T(t, stmt["expression"].(map[string]interface{})["value"], "+Inf")
}

func TestJSONErrors(t *testing.T) {
	o := js.DefaultOptions()
	o.ContinueOnError = true
	program, err := js.Parse([]byte("let x = ;"), o)
	test.Error(t, err)

	v := decode(t, NewJSONEncoder(nil), program)
	errs := v["errors"].([]interface{})
	test.T(t, len(errs), 1)
	test.T(t, errs[0].(map[string]interface{})["code"], "UnexpectedToken")
}

func TestLowerCamel(t *testing.T) {
	var tests = []struct {
		name     string
		expected string
	}{
		{"Body", "body"},
		{"ID", "id"},
		{"TypeParameters", "typeParameters"},
		{"JSXName", "jsxName"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.String(t, lowerCamel(tt.name), tt.expected)
		})
	}
}

func TestEncoders(t *testing.T) {
	program := parse(t, "a + b", js.DefaultOptions())
	for _, name := range Formats {
		t.Run(name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			e, err := NewEncoder(name, buf)
			test.Error(t, err)
			test.Error(t, e.Encode(program))
			test.That(t, 0 < buf.Len())
		})
	}

	buf := &bytes.Buffer{}
	e, _ := NewEncoder("sexpr", buf)
	test.Error(t, e.Encode(program))
	test.String(t, buf.String(), "(Stmt (+ a b))\n")

	_, err := NewEncoder("xml", buf)
	test.That(t, err != nil)
}
