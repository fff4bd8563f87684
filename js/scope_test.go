package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestScopeValid(t *testing.T) {
	var tests = []string{
		"var a; var a",
		"function f() {} function f() {}",
		"let a; { let a }",
		"try {} catch (e) { var e }",
		"for (let i;;) {} for (let i;;) {}",
		"function f(a) { var a }",
		"a: { break a }",
		"a: for (;;) { continue a }",
		"a: b: ;",
		"class A { #x; m() { return this.#x } }",
		"class A { m() { return this.#x } #x }",
		"class A { get #x() {} set #x(v) {} }",
		"(a = 1) => a",
		"({a} = b)",
		"function* g() { (a = yield) }",
		"function* g() { f(a = yield) }",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			parseString(t, src, DefaultOptions())
		})
	}
}

func TestScopeErrors(t *testing.T) {
	var tests = []struct {
		js   string
		code ErrorCode
	}{
		{"let a; var a", VarRedeclaration},
		{"function f() {} let f", VarRedeclaration},
		{"try {} catch (e) { let e }", VarRedeclaration},
		{"'use strict'; { function f() {} function f() {} }", VarRedeclaration},
		{"a: { continue a }", IllegalBreakContinue},
		{"{ break b }", IllegalBreakContinue},
		{"class A { get #x() {} get #x() {} }", PrivateNameRedeclaration},
		{"class A { static #x; #x }", PrivateNameRedeclaration},
		{"class A { static get #x() {} set #x(v) {} }", PrivateNameRedeclaration},
		{"({a = 1}) + 1", InvalidCoverInitializedName},
		{"function* g(a = yield) {}", YieldInParameter},
		{"function* g() { (a = yield) => 1 }", YieldInParameter},
		{"async function f(a = await b) {}", AwaitExpressionFormalParameter},
		{"'use strict'; eval = 1", StrictEvalArguments},
		{"'use strict'; function f(a, a) {}", ParamDupe},
		{"(a, a) => 1", ParamDupe},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			_, err := Parse([]byte(tt.js), DefaultOptions())
			test.That(t, err != nil, "must fail")
			test.T(t, err.(*Diagnostic).Code, tt.code)
		})
	}
}

func TestScopeRecoverable(t *testing.T) {
	o := DefaultOptions()
	o.ContinueOnError = true
	program, err := Parse([]byte("let a; let a; class A { m() { this.#y } }"), o)
	test.Error(t, err)
	test.T(t, errorCodes(program), []ErrorCode{VarRedeclaration, InvalidPrivateFieldResolution})
}

func TestUndefinedExports(t *testing.T) {
	o := DefaultOptions()
	o.SourceType = ModuleSource
	_, err := Parse([]byte("export { a }"), o)
	test.That(t, err != nil, "must fail")
	test.T(t, err.(*Diagnostic).Code, ModuleExportUndefined)

	o.AllowUndeclaredExports = true
	parseString(t, "export { a }", o)

	o.AllowUndeclaredExports = false
	parseString(t, "export { a }; var a", o)
	parseString(t, "export { a }; function a() {}", o)
}

func TestDuplicateExports(t *testing.T) {
	o := DefaultOptions()
	o.SourceType = ModuleSource
	_, err := Parse([]byte("export var a; export { a }"), o)
	test.That(t, err != nil, "must fail")
	test.T(t, err.(*Diagnostic).Code, DuplicateExport)

	_, err = Parse([]byte("export default 1; export default 2"), o)
	test.That(t, err != nil, "must fail")
	test.T(t, err.(*Diagnostic).Code, DuplicateDefaultExport)
}
