package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func tsOptions() Options {
	o := DefaultOptions()
	o.SourceType = ModuleSource
	o.TypeScript = true
	return o
}

func TestParseTS(t *testing.T) {
	var tests = []struct {
		ts       string
		expected string
	}{
		{"a<b>c", "(Stmt (> (< a b) c))"},
		{"f<T>(x)", "(Stmt (Call f <[T]> [x]))"},
		{"x!", "(Stmt (! x))"},
		{"x as any", "(Stmt (as x any))"},
		{"x satisfies string", "(Stmt (satisfies x string))"},
		{"let x: number = 1", "(Decl let [(= (Id x :number) 1)])"},
		{"let x: string[]", "(Decl let [(Id x :string[])])"},
		{"let x: A<B>", "(Decl let [(Id x :A<[B]>)])"},
		{"let x: A.B", "(Decl let [(Id x :A.B)])"},
		{"let x: keyof T", "(Decl let [(Id x :(keyof T))])"},
		{"let x: T[K]", "(Decl let [(Id x :T[K])])"},
		{"let x: [a: string, b?: number]", "(Decl let [(Id x :(Tuple [(Named a string) (Named b ? number)]))])"},
		{"let x: () => void", "(Decl let [(Id x :(FuncType [] :void))])"},
		{"let x: 'a' | 1", "(Decl let [(Id x :(| ['a' 1]))])"},
		{"type A = string | number", "(TypeAlias A (| [string number]))"},
		{"type A<T> = T extends string ? 1 : 2", "(TypeAlias A <[T]> (Cond T string 1 2))"},
		{"type A = typeof a", "(TypeAlias A (typeof a))"},
		{"type A = intrinsic", "(TypeAlias A intrinsic)"},
		{"interface I extends J { a: string }", "(Interface I (extends [J]) [(PropSig a :string)])"},
		{"interface I { readonly a?: string }", "(Interface I [(PropSig readonly a ? :string)])"},
		{"interface I { [k: string]: number }", "(Interface I [(IndexSig [(Id k :string)] :number)])"},
		{"enum E { A, B = 2 }", "(Enum E [A (= B 2)])"},
		{"const enum E {}", "(Enum const E [])"},
		{"declare const x: number;", "(Decl declare const [(Id x :number)])"},
		{"declare function f(): void;", "(DeclareFunc declare f [] :void)"},
		{"function f(): void;\nfunction f() {}", "(DeclareFunc f [] :void) (Func f [] (Block []))"},
		{"namespace A.B {}", "(Module namespace A (Module namespace B []))"},
		{"declare module 'm' {}", "(Module declare module 'm' [])"},
		{"declare global {}", "(Module declare global global [])"},
		{"import x = require('y')", "(ImportEquals x (require 'y'))"},
		{"import x = A.B", "(ImportEquals x A.B)"},
		{"import type { A } from 'a'", "(Import type [(Spec A)] 'a')"},
		{"import { type A, B } from 'a'", "(Import [(Spec type A) (Spec B)] 'a')"},
		{"export type { A } from 'a'", "(Export type [(Spec A)] 'a')"},
		{"export = x", "(ExportAssign x)"},
		{"export as namespace A", "(ExportAsNamespace A)"},
		{"export interface I {}", "(Export type (Interface I []))"},
		{"abstract class A { abstract m(): void }", "(Class abstract A [(Method abstract m [] :void)])"},
		{"class A<T> extends B<T> implements C {}", "(Class A <[T]> (extends B <[T]>) (implements [C]) [])"},
		{"class A { private x?: number; y!: string }", "(Class A [(Field private x ? :number) (Field y ! :string)])"},
		{"class A { constructor(private x: number) {} }", "(Class A [(Method constructor constructor [(ParamProp private (Id x :number))] (Block []))])"},
		{"<T,>(x: T) => x", "(Stmt (Arrow <[T]> [(Id x :T)] x))"},
		{"(x): number => x", "(Stmt (Arrow [x] :number x))"},
		{"function f(this: A, x?: B) {}", "(Func f [(Id this :A) (Id x ? :B)] (Block []))"},
		{"function f(x: unknown): x is string {}", "(Func f [(Id x :unknown)] :(is x :string) (Block []))"},
	}
	for _, tt := range tests {
		t.Run(tt.ts, func(t *testing.T) {
			program := parseString(t, tt.ts, tsOptions())
			test.String(t, program.String(), tt.expected)
		})
	}
}

func TestParseTSErrors(t *testing.T) {
	var tests = []struct {
		ts   string
		code ErrorCode
	}{
		{"class A { constructor<T>() {} }", TSConstructorHasTypeParameters},
		{"class A { constructor(): void {} }", TSConstructorHasReturnType},
		{"class A { abstract m(): void }", TSNonAbstractClassHasAbstractMethod},
		{"abstract class A { abstract m() {} }", TSAbstractMethodHasImplementation},
		{"class A { public public x }", TSDuplicateAccessibilityModifier},
		{"class A { static static x }", TSDuplicateModifier},
		{"class A { static public x }", TSInvalidModifiersOrder},
		{"class A { override m() {} }", TSOverrideNotInSubClass},
		{"declare class A { x = 1 }", TSDeclareClassFieldHasInitializer},
		{"import type A, { B } from 'a'", TSTypeImportCannotSpecifyDefaultAndNamed},
		{"import type { type A } from 'a'", TSTypeModifierIsUsedInTypeImports},
		{"class A { public static {} }", TSStaticBlockCannotHaveModifier},
		{"let x: readonly string", TSUnexpectedReadonly},
		{"class A { get x<T>() { return 1 } }", TSAccessorCannotHaveTypeParameters},
		{"class A { set x<T>(v: T) {} }", TSAccessorCannotHaveTypeParameters},
		{"class A { set x(v): void {} }", TSSetAccessorCannotHaveReturnType},
		{"class A { set x(v?) {} }", TSSetAccessorCannotHaveOptionalParameter},
		{"class A { set x(this: A, v?: number) {} }", TSSetAccessorCannotHaveOptionalParameter},
		{"class A { set x(...v) {} }", BadSetterRestParameter},
		{"({ get x<T>() { return 1 } })", TSAccessorCannotHaveTypeParameters},
		{"({ set x(v): void {} })", TSSetAccessorCannotHaveReturnType},
		{"({ set x(v?: number) {} })", TSSetAccessorCannotHaveOptionalParameter},
		{"interface I { set x(v): void }", TSSetAccessorCannotHaveReturnType},
	}
	for _, tt := range tests {
		t.Run(tt.ts, func(t *testing.T) {
			_, err := Parse([]byte(tt.ts), tsOptions())
			test.That(t, err != nil, "must fail")
			test.T(t, err.(*Diagnostic).Code, tt.code)
		})
	}
}

func TestTSAccessors(t *testing.T) {
	var tests = []string{
		"class A { get x(): number { return 1 } }",
		"class A { set x(v: number) {} }",
		"class A { get x(this: A) { return 1 } }",
		"class A { set x(this: A, v) {} }",
		"class A { static set x(v = 1) {} }",
		"({ get x(): number { return 1 }, set x(v: number) {} })",
		"declare class A { get x(): number; set x(v: number); }",
	}
	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			parseString(t, tt, tsOptions())
		})
	}
}

func TestTSKeywordTypes(t *testing.T) {
	var tests = []struct {
		ts       string
		expected NodeType
	}{
		{"let x: number", TSNumberKeywordNode},
		{"let x: never", TSNeverKeywordNode},
		{"let x: void", TSVoidKeywordNode},
		{"let x: intrinsic", TSTypeReferenceNode},
		{"let x: number.A", TSTypeReferenceNode},
	}
	for _, tt := range tests {
		t.Run(tt.ts, func(t *testing.T) {
			program := parseString(t, tt.ts, tsOptions())
			decl := program.Body[0].(*VariableDeclaration).Declarations[0]
			typ := decl.ID.(*Identifier).TypeAnnotation.TypeAnnotation
			test.T(t, typ.Type(), tt.expected)
		})
	}
}

func TestAmbiguousJSXLike(t *testing.T) {
	o := tsOptions()
	parseString(t, "<T>x", o)
	parseString(t, "<T>(x) => x", o)

	o.DisallowAmbiguousJSXLike = true
	_, err := Parse([]byte("<T>x"), o)
	test.That(t, err != nil, "type assertion must fail")
	test.T(t, err.(*Diagnostic).Code, TSReservedTypeAssertion)

	_, err = Parse([]byte("<T>(x) => x"), o)
	test.That(t, err != nil, "generic arrow must fail")
	test.T(t, err.(*Diagnostic).Code, TSReservedArrowTypeParam)

	parseString(t, "<T,>(x) => x", o)
}

func TestTSNamespaceExports(t *testing.T) {
	src := "namespace A { export const x = 1 }\nnamespace B { export const x = 2 }"
	program := parseString(t, src, tsOptions())
	test.T(t, len(program.Body), 2)
}
