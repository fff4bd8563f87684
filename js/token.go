package js

import (
	"strconv"
)

// TokenType determines the type of token, eg. a number or a semicolon.
type TokenType uint32

// TokenType values.
const (
	ErrorToken TokenType = iota // end of input, or any token after a fatal error
	NumericToken
	BigIntToken
	DecimalToken
	StringToken
	TemplateToken // a template chunk starting at ` or } and ending at ${ or `
	RegExpToken
	IdentifierToken        // names, including contextual keywords
	PrivateIdentifierToken // #name

	// punctuators
	OpenBraceToken    // {
	CloseBraceToken   // }
	OpenParenToken    // (
	CloseParenToken   // )
	OpenBracketToken  // [
	CloseBracketToken // ]
	HashBraceToken    // #{
	HashBracketToken  // #[
	DotToken          // .
	SemicolonToken    // ;
	CommaToken        // ,
	QuestionToken     // ?
	OptChainToken     // ?.
	ColonToken        // :
	ArrowToken        // =>
	EllipsisToken     // ...
	AtToken           // @
	HashToken         // #

	// assignment operators
	EqToken        // =
	AddEqToken     // +=
	SubEqToken     // -=
	MulEqToken     // *=
	DivEqToken     // /=
	ModEqToken     // %=
	ExpEqToken     // **=
	LtLtEqToken    // <<=
	GtGtEqToken    // >>=
	GtGtGtEqToken  // >>>=
	BitAndEqToken  // &=
	BitOrEqToken   // |=
	BitXorEqToken  // ^=
	AndEqToken     // &&=
	OrEqToken      // ||=
	NullishEqToken // ??=

	// unary and update operators
	IncrToken   // ++
	DecrToken   // --
	NotToken    // !
	BitNotToken // ~

	// binary operators
	NullishToken // ??
	OrToken      // ||
	AndToken     // &&
	BitOrToken   // |
	BitXorToken  // ^
	BitAndToken  // &
	EqEqToken    // ==
	NotEqToken   // !=
	EqEqEqToken  // ===
	NotEqEqToken // !==
	LtToken      // <
	GtToken      // >
	LtEqToken    // <=
	GtEqToken    // >=
	LtLtToken    // <<
	GtGtToken    // >>
	GtGtGtToken  // >>>
	AddToken     // +
	SubToken     // -
	MulToken     // *
	DivToken     // /
	ModToken     // %
	ExpToken     // **

	// keywords
	BreakToken
	CaseToken
	CatchToken
	ContinueToken
	DebuggerToken
	DefaultToken
	DoToken
	ElseToken
	FinallyToken
	ForToken
	FunctionToken
	IfToken
	ReturnToken
	SwitchToken
	ThrowToken
	TryToken
	VarToken
	ConstToken
	WhileToken
	WithToken
	NewToken
	ThisToken
	SuperToken
	ClassToken
	ExtendsToken
	ExportToken
	ImportToken
	NullToken
	TrueToken
	FalseToken
	InToken
	InstanceofToken
	TypeofToken
	VoidToken
	DeleteToken

	numTokens
)

// tokenInfo describes a token type. The table below is indexed by TokenType.
type tokenInfo struct {
	label      string
	keyword    bool
	startsExpr bool
	prec       OpPrec // binary operator precedence, OpEnd if not a binary operator
	rightAssoc bool
	prefix     bool
	postfix    bool
	assign     bool
}

var tokens = [numTokens]tokenInfo{
	ErrorToken:             {label: "EOF"},
	NumericToken:           {label: "num", startsExpr: true},
	BigIntToken:            {label: "bigint", startsExpr: true},
	DecimalToken:           {label: "decimal", startsExpr: true},
	StringToken:            {label: "string", startsExpr: true},
	TemplateToken:          {label: "template", startsExpr: true},
	RegExpToken:            {label: "regexp", startsExpr: true},
	IdentifierToken:        {label: "name", startsExpr: true},
	PrivateIdentifierToken: {label: "#name", startsExpr: true},

	OpenBraceToken:    {label: "{", startsExpr: true},
	CloseBraceToken:   {label: "}"},
	OpenParenToken:    {label: "(", startsExpr: true},
	CloseParenToken:   {label: ")"},
	OpenBracketToken:  {label: "[", startsExpr: true},
	CloseBracketToken: {label: "]"},
	HashBraceToken:    {label: "#{", startsExpr: true},
	HashBracketToken:  {label: "#[", startsExpr: true},
	DotToken:          {label: "."},
	SemicolonToken:    {label: ";"},
	CommaToken:        {label: ","},
	QuestionToken:     {label: "?"},
	OptChainToken:     {label: "?."},
	ColonToken:        {label: ":"},
	ArrowToken:        {label: "=>"},
	EllipsisToken:     {label: "..."},
	AtToken:           {label: "@"},
	HashToken:         {label: "#", startsExpr: true},

	EqToken:        {label: "=", assign: true},
	AddEqToken:     {label: "+=", assign: true},
	SubEqToken:     {label: "-=", assign: true},
	MulEqToken:     {label: "*=", assign: true},
	DivEqToken:     {label: "/=", assign: true},
	ModEqToken:     {label: "%=", assign: true},
	ExpEqToken:     {label: "**=", assign: true},
	LtLtEqToken:    {label: "<<=", assign: true},
	GtGtEqToken:    {label: ">>=", assign: true},
	GtGtGtEqToken:  {label: ">>>=", assign: true},
	BitAndEqToken:  {label: "&=", assign: true},
	BitOrEqToken:   {label: "|=", assign: true},
	BitXorEqToken:  {label: "^=", assign: true},
	AndEqToken:     {label: "&&=", assign: true},
	OrEqToken:      {label: "||=", assign: true},
	NullishEqToken: {label: "??=", assign: true},

	IncrToken:   {label: "++", startsExpr: true, prefix: true, postfix: true},
	DecrToken:   {label: "--", startsExpr: true, prefix: true, postfix: true},
	NotToken:    {label: "!", startsExpr: true, prefix: true},
	BitNotToken: {label: "~", startsExpr: true, prefix: true},

	NullishToken: {label: "??", prec: OpOr},
	OrToken:      {label: "||", prec: OpOr},
	AndToken:     {label: "&&", prec: OpAnd},
	BitOrToken:   {label: "|", prec: OpBitOr},
	BitXorToken:  {label: "^", prec: OpBitXor},
	BitAndToken:  {label: "&", prec: OpBitAnd},
	EqEqToken:    {label: "==", prec: OpEquals},
	NotEqToken:   {label: "!=", prec: OpEquals},
	EqEqEqToken:  {label: "===", prec: OpEquals},
	NotEqEqToken: {label: "!==", prec: OpEquals},
	LtToken:      {label: "<", prec: OpCompare, startsExpr: true},
	GtToken:      {label: ">", prec: OpCompare},
	LtEqToken:    {label: "<=", prec: OpCompare},
	GtEqToken:    {label: ">=", prec: OpCompare},
	LtLtToken:    {label: "<<", prec: OpShift},
	GtGtToken:    {label: ">>", prec: OpShift},
	GtGtGtToken:  {label: ">>>", prec: OpShift},
	AddToken:     {label: "+", prec: OpAdd, startsExpr: true, prefix: true},
	SubToken:     {label: "-", prec: OpAdd, startsExpr: true, prefix: true},
	MulToken:     {label: "*", prec: OpMul},
	DivToken:     {label: "/", prec: OpMul, startsExpr: true},
	ModToken:     {label: "%", prec: OpMul},
	ExpToken:     {label: "**", prec: OpExp, rightAssoc: true},

	BreakToken:      {label: "break", keyword: true},
	CaseToken:       {label: "case", keyword: true},
	CatchToken:      {label: "catch", keyword: true},
	ContinueToken:   {label: "continue", keyword: true},
	DebuggerToken:   {label: "debugger", keyword: true},
	DefaultToken:    {label: "default", keyword: true},
	DoToken:         {label: "do", keyword: true},
	ElseToken:       {label: "else", keyword: true},
	FinallyToken:    {label: "finally", keyword: true},
	ForToken:        {label: "for", keyword: true},
	FunctionToken:   {label: "function", keyword: true, startsExpr: true},
	IfToken:         {label: "if", keyword: true},
	ReturnToken:     {label: "return", keyword: true},
	SwitchToken:     {label: "switch", keyword: true},
	ThrowToken:      {label: "throw", keyword: true, startsExpr: true, prefix: true},
	TryToken:        {label: "try", keyword: true},
	VarToken:        {label: "var", keyword: true},
	ConstToken:      {label: "const", keyword: true},
	WhileToken:      {label: "while", keyword: true},
	WithToken:       {label: "with", keyword: true},
	NewToken:        {label: "new", keyword: true, startsExpr: true},
	ThisToken:       {label: "this", keyword: true, startsExpr: true},
	SuperToken:      {label: "super", keyword: true, startsExpr: true},
	ClassToken:      {label: "class", keyword: true, startsExpr: true},
	ExtendsToken:    {label: "extends", keyword: true},
	ExportToken:     {label: "export", keyword: true},
	ImportToken:     {label: "import", keyword: true, startsExpr: true},
	NullToken:       {label: "null", keyword: true, startsExpr: true},
	TrueToken:       {label: "true", keyword: true, startsExpr: true},
	FalseToken:      {label: "false", keyword: true, startsExpr: true},
	InToken:         {label: "in", keyword: true, prec: OpCompare},
	InstanceofToken: {label: "instanceof", keyword: true, prec: OpCompare},
	TypeofToken:     {label: "typeof", keyword: true, startsExpr: true, prefix: true},
	VoidToken:       {label: "void", keyword: true, startsExpr: true, prefix: true},
	DeleteToken:     {label: "delete", keyword: true, startsExpr: true, prefix: true},
}

// IsKeyword returns true for reserved keyword tokens such as `for` or `typeof`.
func IsKeyword(tt TokenType) bool {
	return tt < numTokens && tokens[tt].keyword
}

// IsOperator returns true for assignment, unary and binary operator tokens.
func IsOperator(tt TokenType) bool {
	return EqToken <= tt && tt <= ExpToken
}

// IsPunctuator returns true for punctuator tokens such as `{` or `=>`.
func IsPunctuator(tt TokenType) bool {
	return OpenBraceToken <= tt && tt <= HashToken
}

// IsAssignment returns true for `=` and the compound assignment operators.
func IsAssignment(tt TokenType) bool {
	return tt < numTokens && tokens[tt].assign
}

func (tt TokenType) startsExpr() bool {
	return tt < numTokens && tokens[tt].startsExpr
}

func (tt TokenType) binaryPrec() OpPrec {
	if tt < numTokens {
		return tokens[tt].prec
	}
	return OpEnd
}

// String returns the string representation of a TokenType.
func (tt TokenType) String() string {
	if tt < numTokens {
		return tokens[tt].label
	}
	return "Invalid(" + strconv.Itoa(int(tt)) + ")"
}

////////////////////////////////////////////////////////////////

// Position is a location in the source. Index is a byte offset, Line is 1-based and Column is a 0-based byte column.
type Position struct {
	Index  int
	Line   int
	Column int
}

// add returns the position n bytes further on the same line.
func (pos Position) add(n int) Position {
	return Position{pos.Index + n, pos.Line, pos.Column + n}
}

func (pos Position) String() string {
	return strconv.Itoa(pos.Line) + ":" + strconv.Itoa(pos.Column)
}

// Token is the scanner's current token.
type Token struct {
	Type       TokenType
	Start, End int
	Loc        Position
	EndLoc     Position

	Value         string  // identifier name, decoded string, cooked template, bigint/decimal digits, regexp pattern
	Number        float64 // value of a NumericToken
	Flags         string  // regexp flags
	Escaped       bool    // identifier or keyword spelled with unicode escapes
	InvalidEscape bool    // template chunk whose cooked value is undefined
	EscapeLoc     Position
	Tail          bool // template chunk ending in a backtick
}
