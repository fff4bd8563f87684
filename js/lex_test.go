package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func lexTypes(src string) []TokenType {
	l := NewLexer([]byte(src), DefaultOptions())
	tts := []TokenType{}
	for {
		tok := l.Next()
		if tok.Type == ErrorToken {
			return tts
		}
		tts = append(tts, tok.Type)
	}
}

func TestTokens(t *testing.T) {
	var tokenTests = []struct {
		js       string
		expected []TokenType
	}{
		{" \t\v\f\u00A0\uFEFF", []TokenType{}},
		{"\n\r\r\n\u2028\u2029", []TokenType{}},
		{"a\u2028\u00E9t\u00E9\u3000#\u00FC", []TokenType{IdentifierToken, IdentifierToken, PrivateIdentifierToken}},
		{"5.2 .04 1. 2.e3 0x0F 5e99", []TokenType{NumericToken, NumericToken, NumericToken, NumericToken, NumericToken, NumericToken}},
		{"1n 0x1Fn", []TokenType{BigIntToken, BigIntToken}},
		{"'str' \"str\"", []TokenType{StringToken, StringToken}},
		{"a.b?.c", []TokenType{IdentifierToken, DotToken, IdentifierToken, OptChainToken, IdentifierToken}},
		{"a ? .5 : b", []TokenType{IdentifierToken, QuestionToken, NumericToken, ColonToken, IdentifierToken}},
		{"=> ... ?? ??= **=", []TokenType{ArrowToken, EllipsisToken, NullishToken, NullishEqToken, ExpEqToken}},
		{">>>= >>> >> >= >", []TokenType{GtGtGtEqToken, GtGtGtToken, GtGtToken, GtEqToken, GtToken}},
		{"if else function class", []TokenType{IfToken, ElseToken, FunctionToken, ClassToken}},
		{"async await let", []TokenType{IdentifierToken, IdentifierToken, IdentifierToken}},
		{"#x", []TokenType{PrivateIdentifierToken}},
		{"a / b", []TokenType{IdentifierToken, DivToken, IdentifierToken}},
		{"a = /b/g", []TokenType{IdentifierToken, EqToken, RegExpToken}},
		{"(a) / b", []TokenType{OpenParenToken, IdentifierToken, CloseParenToken, DivToken, IdentifierToken}},
		{"return /b/", []TokenType{ReturnToken, RegExpToken}},
		{"`a${b}c${d}e`", []TokenType{TemplateToken, IdentifierToken, TemplateToken, IdentifierToken, TemplateToken}},
		{"`a${{}}b`", []TokenType{TemplateToken, OpenBraceToken, CloseBraceToken, TemplateToken}},
		{"`${/x/}`", []TokenType{TemplateToken, RegExpToken, TemplateToken}},
		{"/* comment */ a // line", []TokenType{IdentifierToken}},
	}
	for _, tt := range tokenTests {
		t.Run(tt.js, func(t *testing.T) {
			test.T(t, lexTypes(tt.js), tt.expected)
		})
	}
}

func TestTokenValues(t *testing.T) {
	var tests = []struct {
		js    string
		value string
	}{
		{`'a\nb'`, "a\nb"},
		{`"\x41B\u{43}"`, "ABC"},
		{`'\101'`, "A"},
		{"'a\\\nb'", "ab"},
		{`abc`, "abc"},
		{"1_000n", "1000"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			l := NewLexer([]byte(tt.js), DefaultOptions())
			tok := l.Next()
			test.String(t, tok.Value, tt.value)
			test.Error(t, l.Err())
		})
	}
}

func TestTokenPositions(t *testing.T) {
	l := NewLexer([]byte("a\n  bc"), DefaultOptions())
	tok := l.Next()
	test.T(t, tok.Loc, Position{0, 1, 0})
	test.T(t, tok.EndLoc, Position{1, 1, 1})
	tok = l.Next()
	test.T(t, tok.Loc, Position{4, 2, 2})
	test.T(t, tok.EndLoc, Position{6, 2, 4})
}

func TestRegExpFlags(t *testing.T) {
	var tests = []struct {
		js   string
		code ErrorCode
	}{
		{"x = /a/gg", DuplicateRegExpFlags},
		{"x = /a/uv", IncompatibleRegExpUVFlags},
		{"x = /a/gq", MalformedRegExpFlags},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			l := NewLexer([]byte(tt.js), DefaultOptions())
			for l.Next().Type != ErrorToken {
			}
			test.T(t, len(l.Errors()), 1)
			test.T(t, l.Errors()[0].Code, tt.code)
		})
	}
}

func TestLexerErrors(t *testing.T) {
	var tests = []struct {
		js   string
		code ErrorCode
	}{
		{"/* a", UnterminatedComment},
		{"'abc", UnterminatedString},
		{"`abc", UnterminatedTemplate},
		{"x = /abc", UnterminatedRegExp},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			l := NewLexer([]byte(tt.js), DefaultOptions())
			for l.Next().Type != ErrorToken {
			}
			err := l.Err()
			test.That(t, err != nil, "must be fatal")
			test.T(t, err.(*Diagnostic).Code, tt.code)
		})
	}
}

func TestLexerComments(t *testing.T) {
	l := NewLexer([]byte("/* a */ x // b\n"), DefaultOptions())
	for l.Next().Type != ErrorToken {
	}
	comments := l.Comments()
	test.T(t, len(comments), 2)
	test.T(t, comments[0].Type, BlockComment)
	test.String(t, comments[0].Value, " a ")
	test.T(t, comments[1].Type, LineComment)
	test.String(t, comments[1].Value, " b")
}
