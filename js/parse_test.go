package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func parseString(t *testing.T, src string, o Options) *Program {
	t.Helper()
	program, err := Parse([]byte(src), o)
	test.Error(t, err)
	test.T(t, len(program.Errors), 0, "errors")
	return program
}

func errorCodes(program *Program) []ErrorCode {
	codes := []ErrorCode{}
	for _, d := range program.Errors {
		codes = append(codes, d.Code)
	}
	return codes
}

////////////////////////////////////////////////////////////////

func TestParse(t *testing.T) {
	var tests = []struct {
		js       string
		expected string
	}{
		{";", "(Empty)"},
		{"a + b * c", "(Stmt (+ a (* b c)))"},
		{"(a + b) * c", "(Stmt (* (+ a b) c))"},
		{"a ** b ** c", "(Stmt (** a (** b c)))"},
		{"a = b = c", "(Stmt (= a (= b c)))"},
		{"a ? b : c", "(Stmt (? a b c))"},
		{"x ?? y", "(Stmt (?? x y))"},
		{"a.b[c]", "(Stmt (. (. a b) [c]))"},
		{"a?.b", "(Stmt (?. a b))"},
		{"f(1, 2)", "(Stmt (Call f [1 2]))"},
		{"new A()", "(Stmt (New A []))"},
		{"(a, b)", "(Stmt (Seq [a b]))"},
		{"(a, b) => a + b", "(Stmt (Arrow [a b] (+ a b)))"},
		{"async x => x", "(Stmt (Arrow async [x] x))"},
		{"var a = 1, b;", "(Decl var [(= a 1) b])"},
		{"let [a, ...b] = c", "(Decl let [(= (ArrayPat [a (Rest b)]) c)])"},
		{"if (a) b; else c", "(If a (Stmt b) (Stmt c))"},
		{"while (a) b", "(While a (Stmt b))"},
		{"do a; while (b)", "(DoWhile (Stmt a) b)"},
		{"function f(a) { return a }", "(Func f [a] (Block [(Return a)]))"},
		{"function* g() { yield* a }", "(Func * g [] (Block [(Stmt (Yield * a))]))"},
		{"x: while (a) break x", "(Label x (While a (Break x)))"},
		{"({a: 1, b})", "(Stmt (Object [(Prop a 1) (Prop b)]))"},
		{"[1, , 2]", "(Stmt (Array [1 _ 2]))"},
		{"`a${b}c`", "(Stmt `a${b}c`)"},
		{"/ab+c/gi", "(Stmt /ab+c/gi)"},
		{"'use strict'; a", "(Directive 'use strict') (Stmt a)"},
		{"try {} catch (e) {} finally {}", "(Try (Block []) (Catch e (Block [])) (Block []))"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			program := parseString(t, tt.js, DefaultOptions())
			test.String(t, program.String(), tt.expected)
		})
	}
}

func TestParseModule(t *testing.T) {
	var tests = []struct {
		js       string
		expected string
	}{
		{"import a from 'a'", "(Import [(DefaultSpec a)] 'a')"},
		{"import * as a from 'a'", "(Import [(NsSpec a)] 'a')"},
		{"import {a, b as c} from 'a'", "(Import [(Spec a) (Spec b as c)] 'a')"},
		{"export {a as b}; var a", "(Export [(Spec a as b)]) (Decl var [a])"},
		{"export * from 'a'", "(ExportAll 'a')"},
		{"export default 1", "(ExportDefault 1)"},
		{"export const a = 1", "(Export (Decl const [(= a 1)]))"},
		{"await a", "(Stmt (Await a))"},
	}
	o := DefaultOptions()
	o.SourceType = ModuleSource
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			program := parseString(t, tt.js, o)
			test.String(t, program.String(), tt.expected)
		})
	}
}

func TestParseErrors(t *testing.T) {
	var tests = []struct {
		js   string
		code ErrorCode
	}{
		{"let a; let a", VarRedeclaration},
		{"const a = 1; var a", VarRedeclaration},
		{"break", IllegalBreakContinue},
		{"a: a: ;", LabelRedeclaration},
		{"return", IllegalReturn},
		{"({a = 1})", InvalidCoverInitializedName},
		{"class A { #x; #x }", PrivateNameRedeclaration},
		{"class A { m() { this.#x } }", InvalidPrivateFieldResolution},
		{"class A { constructor() {} constructor() {} }", DuplicateConstructor},
		{"function f() { 'use strict'; 0123 }", StrictOctalLiteral},
		{"'use strict'; with (a) {}", StrictWith},
		{"a ?? b || c", MixingCoalesceWithLogical},
		{"new a?.b()", OptionalChainingNoNew},
		{"import a from 'a'", ImportOutsideModule},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			_, err := Parse([]byte(tt.js), DefaultOptions())
			test.That(t, err != nil, "must fail")
			d, ok := err.(*Diagnostic)
			test.That(t, ok, "must be a diagnostic")
			test.T(t, d.Code, tt.code)
		})
	}
}

func TestRecover(t *testing.T) {
	src := "let x = ;"
	_, err := Parse([]byte(src), DefaultOptions())
	test.That(t, err != nil, "must fail without ContinueOnError")

	o := DefaultOptions()
	o.ContinueOnError = true
	program, err := Parse([]byte(src), o)
	test.Error(t, err)
	test.T(t, len(program.Errors), 1, "errors")
	test.T(t, program.Errors[0].Loc.Index, 8)
	test.T(t, len(program.Body), 1)
	decl, ok := program.Body[0].(*VariableDeclaration)
	test.That(t, ok, "variable declaration")
	test.T(t, len(decl.Declarations), 1)
	_, ok = decl.Declarations[0].Init.(*Placeholder)
	test.That(t, ok, "placeholder init")
}

func TestRecoverMaxErrors(t *testing.T) {
	o := DefaultOptions()
	o.ContinueOnError = true
	o.MaxErrors = 2
	_, err := Parse([]byte("let a; let a; let a; let a;"), o)
	test.That(t, err != nil, "must stop after two errors")
}

func TestStrictOctal(t *testing.T) {
	parseString(t, "0123", DefaultOptions())

	o := DefaultOptions()
	o.ContinueOnError = true
	program, err := Parse([]byte("function f() { 'use strict'; return 0123 }"), o)
	test.Error(t, err)
	test.T(t, errorCodes(program), []ErrorCode{StrictOctalLiteral})
	test.T(t, program.Errors[0].Loc.Index, 36)
}

func TestStrictDirectiveRetroactive(t *testing.T) {
	o := DefaultOptions()
	o.ContinueOnError = true
	program, err := Parse([]byte(`function f() { '\01'; 'use strict' }`), o)
	test.Error(t, err)
	test.T(t, errorCodes(program), []ErrorCode{StrictNumericEscape})
	test.T(t, program.Errors[0].Loc.Index, 16)

	program, err = Parse([]byte(`function f() { '\01'; 'use strict'; 010 }`), o)
	test.Error(t, err)
	test.T(t, errorCodes(program), []ErrorCode{StrictNumericEscape, StrictOctalLiteral})

	// the body stays sloppy, so the deferred errors are dropped
	var tests = []string{
		`function f() { '\01' }`,
		`function f() { '\01'; x; 'use strict' }`,
		`function f() { '\01'; 'a' } function g() { 'use strict' }`,
		`'\01'; 010`,
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			parseString(t, src, DefaultOptions())
		})
	}
}

func TestNumericLiteral(t *testing.T) {
	var tests = []struct {
		js    string
		value float64
	}{
		{"0x1F", 31},
		{"31", 31},
		{"0b11111", 31},
		{"0o37", 31},
		{"037", 31},
		{"1_000", 1000},
		{"1e3", 1000},
		{".5", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			program := parseString(t, tt.js, DefaultOptions())
			stmt := program.Body[0].(*ExpressionStatement)
			n, ok := stmt.Expression.(*NumericLiteral)
			test.That(t, ok, "numeric literal")
			test.T(t, n.Value, tt.value)
			test.String(t, n.Raw, tt.js)
		})
	}
}

func TestProgramEnd(t *testing.T) {
	var tests = []string{
		"a",
		"var a = 1;\nfunction f() {}\n",
		"class A { static { this.x = 1 } }",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			program := parseString(t, src, DefaultOptions())
			test.T(t, program.End.Index, len(src))
			for _, stmt := range program.Body {
				test.That(t, stmt.Base().Start.Index <= stmt.Base().End.Index, "end must not precede start")
			}
		})
	}
}

func TestLocations(t *testing.T) {
	src := "a;\r\nb;\n\u2028c;"
	program := parseString(t, src, DefaultOptions())
	test.T(t, len(program.Body), 3)
	test.T(t, program.Body[0].Base().Start, Position{0, 1, 0})
	test.T(t, program.Body[1].Base().Start, Position{4, 2, 0})
	test.T(t, program.Body[2].Base().Start, Position{10, 4, 0})
}

func TestDependencies(t *testing.T) {
	program := parseString(t, "var a = b + c; b.d(); function e() { return f }", DefaultOptions())
	test.T(t, program.Dependencies, []string{"b", "c", "f"})
}

func TestFeatures(t *testing.T) {
	_, err := Parse([]byte("{ using x = y }"), DefaultOptions())
	test.That(t, err != nil, "explicit resource management must be enabled")
	test.T(t, err.(*Diagnostic).Code, MissingFeature)

	o := DefaultOptions()
	o.SourceType = ModuleSource
	_, err = Parse([]byte("import a from 'a' with { type: 'json' }"), o)
	test.That(t, err != nil, "import attributes must be enabled")
	test.T(t, err.(*Diagnostic).Code, MissingFeature)

	o.Features = map[Feature]bool{FeatureImportAttributes: true}
	program := parseString(t, "import a from 'a' with { type: 'json' }", o)
	test.String(t, program.String(), "(Import [(DefaultSpec a)] 'a' (with [(: type 'json')]))")
}
