package js

import (
	"unicode"
)

// OpPrec is the operator precedence used by the binary expression parser.
type OpPrec int

// https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Operators/Operator_Precedence
// The nullish coalescing operator shares the precedence band of logical OR.
const (
	OpEnd OpPrec = iota
	OpOr
	OpAnd
	OpBitOr
	OpBitXor
	OpBitAnd
	OpEquals
	OpCompare
	OpShift
	OpAdd
	OpMul
	OpExp
)

// Keywords maps reserved words to their token type.
var Keywords = map[string]TokenType{
	"break":      BreakToken,
	"case":       CaseToken,
	"catch":      CatchToken,
	"class":      ClassToken,
	"const":      ConstToken,
	"continue":   ContinueToken,
	"debugger":   DebuggerToken,
	"default":    DefaultToken,
	"delete":     DeleteToken,
	"do":         DoToken,
	"else":       ElseToken,
	"export":     ExportToken,
	"extends":    ExtendsToken,
	"false":      FalseToken,
	"finally":    FinallyToken,
	"for":        ForToken,
	"function":   FunctionToken,
	"if":         IfToken,
	"import":     ImportToken,
	"in":         InToken,
	"instanceof": InstanceofToken,
	"new":        NewToken,
	"null":       NullToken,
	"return":     ReturnToken,
	"super":      SuperToken,
	"switch":     SwitchToken,
	"this":       ThisToken,
	"throw":      ThrowToken,
	"true":       TrueToken,
	"try":        TryToken,
	"typeof":     TypeofToken,
	"var":        VarToken,
	"void":       VoidToken,
	"while":      WhileToken,
	"with":       WithToken,
}

var strictReservedWords = map[string]bool{
	"implements": true,
	"interface":  true,
	"let":        true,
	"package":    true,
	"private":    true,
	"protected":  true,
	"public":     true,
	"static":     true,
	"yield":      true,
}

// IsReservedWord returns true for words that can never be identifiers. In modules `await` is reserved as well.
func IsReservedWord(name string, module bool) bool {
	if _, ok := Keywords[name]; ok {
		return true
	}
	return name == "enum" || module && name == "await"
}

// IsStrictReservedWord returns true for words that are reserved in strict mode code.
func IsStrictReservedWord(name string, module bool) bool {
	return IsReservedWord(name, module) || strictReservedWords[name]
}

// IsStrictBindReservedWord returns true for words that cannot be bound in strict mode code.
func IsStrictBindReservedWord(name string, module bool) bool {
	return IsStrictReservedWord(name, module) || name == "eval" || name == "arguments"
}

// tsKeywordTypes are the predefined type names that parse as TSKeywordType.
var tsKeywordTypes = map[string]NodeType{
	"any":       TSAnyKeywordNode,
	"unknown":   TSUnknownKeywordNode,
	"number":    TSNumberKeywordNode,
	"bigint":    TSBigIntKeywordNode,
	"boolean":   TSBooleanKeywordNode,
	"string":    TSStringKeywordNode,
	"symbol":    TSSymbolKeywordNode,
	"object":    TSObjectKeywordNode,
	"never":     TSNeverKeywordNode,
	"undefined": TSUndefinedKeywordNode,
	"intrinsic": TSIntrinsicKeywordNode,
}

////////////////////////////////////////////////////////////////

var identifierStart = []*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Other_ID_Start}
var identifierContinue = []*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue}

// IsIdentifierStart returns true if r can start an identifier.
func IsIdentifierStart(r rune) bool {
	if r < 0x80 {
		return identifierStartTable[r]
	}
	return unicode.IsOneOf(identifierStart, r)
}

// IsIdentifierContinue returns true if r can continue an identifier.
func IsIdentifierContinue(r rune) bool {
	if r < 0x80 {
		return identifierTable[r]
	}
	return r == '\u200C' || r == '\u200D' || unicode.IsOneOf(identifierContinue, r)
}

// IsWhitespace returns true for the whitespace code points, excluding line terminators.
func IsWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', '\u00A0', '\uFEFF':
		return true
	}
	return r >= 0x80 && unicode.Is(unicode.Zs, r)
}

// IsLineTerminator returns true for \n, \r, U+2028 and U+2029.
func IsLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return 99
}

// digitValue returns the value of c in radix, or -1 if c is not a digit of that radix.
func digitValue(c byte, radix int) int {
	v := hexValue(c)
	if v >= radix {
		return -1
	}
	return v
}

// forbiddenSeparatorSiblings lists the characters that may not precede or follow a numeric separator for each radix.
var forbiddenSeparatorSiblings = map[int]string{
	16: ".Xx_",
	10: ".BEObeo_",
	8:  ".BEObeo_",
	2:  ".BEObeo_",
}

var identifierStartTable = [256]bool{
	// ASCII
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	false, false, false, false, true, false, false, false, // $
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	false, true, true, true, true, true, true, true, // A, B, C, D, E, F, G
	true, true, true, true, true, true, true, true, // H, I, J, K, L, M, N, O
	true, true, true, true, true, true, true, true, // P, Q, R, S, T, U, V, W
	true, true, true, false, false, false, false, true, // X, Y, Z, _

	false, true, true, true, true, true, true, true, // a, b, c, d, e, f, g
	true, true, true, true, true, true, true, true, // h, i, j, k, l, m, n, o
	true, true, true, true, true, true, true, true, // p, q, r, s, t, u, v, w
	true, true, true, false, false, false, false, false, // x, y, z

	// non-ASCII
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,

	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
}

var identifierTable = [256]bool{
	// ASCII
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	false, false, false, false, true, false, false, false, // $
	false, false, false, false, false, false, false, false,
	true, true, true, true, true, true, true, true, // 0, 1, 2, 3, 4, 5, 6, 7
	true, true, false, false, false, false, false, false, // 8, 9

	false, true, true, true, true, true, true, true, // A, B, C, D, E, F, G
	true, true, true, true, true, true, true, true, // H, I, J, K, L, M, N, O
	true, true, true, true, true, true, true, true, // P, Q, R, S, T, U, V, W
	true, true, true, false, false, false, false, true, // X, Y, Z, _

	false, true, true, true, true, true, true, true, // a, b, c, d, e, f, g
	true, true, true, true, true, true, true, true, // h, i, j, k, l, m, n, o
	true, true, true, true, true, true, true, true, // p, q, r, s, t, u, v, w
	true, true, true, false, false, false, false, false, // x, y, z

	// non-ASCII
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,

	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
}
