package js

import (
	"github.com/tdewolff/parse/v2/buffer"
)

// Parser is the state for the parser. A Parser is used for a single parse.
type Parser struct {
	src []byte
	o   Options
	h   hooks
	s   state

	speculation int // number of active checkpoints
	tokenCount  int

	inModule         bool
	exportedNames    map[string]bool
	undefinedExports map[string]Position
	trailingCommas   map[Node]Position // trailing commas of array and object literals
}

func newParser(src []byte, o Options) *Parser {
	p := &Parser{
		src:              src,
		o:                o,
		inModule:         o.SourceType == ModuleSource,
		exportedNames:    map[string]bool{},
		undefinedExports: map[string]Position{},
	}
	if o.TypeScript {
		p.h = &tsHooks{coreHooks{p}}
	} else {
		p.h = &coreHooks{p}
	}
	p.s.r = buffer.NewLexerBytes(src)
	p.s.line = 1
	p.s.strict = o.strict()
	p.s.isAmbientContext = o.ParseAsAmbientContext
	p.s.potentialArrowAt = -1
	return p
}

// parseTopLevel parses the program and runs the checks that need the whole program.
func (p *Parser) parseTopLevel() *Program {
	program := &Program{SourceType: p.o.SourceType}
	program.Interpreter = p.skipInterpreter()
	p.nextToken()

	flags := paramIn
	if p.inModule || p.o.AllowAwaitOutsideFunction {
		flags |= paramAwait
	}
	if p.o.AllowReturnOutsideFunction {
		flags |= paramReturn
	}
	p.scopeEnter(scopeProgram)
	p.prodParamEnter(flags)
	p.exprScopeEnter(exprScopePlain)

	program.Directives, program.Body = p.parseBlockBody(ErrorToken, true, true, nil)
	if p.inModule && !p.o.AllowUndeclaredExports && p.s.err == nil {
		for _, name := range sortedByIndex(p.undefinedExports) {
			p.raise(ModuleExportUndefined, p.undefinedExports[name], name)
		}
	}

	p.exprScopeExit()
	p.prodParamExit()
	p.scopeExit()

	program.Start = Position{0, 1, 0}
	program.End = p.curPosition()
	p.finishProgram(program)
	program.Comments = p.s.comments
	program.Errors = p.s.errors
	program.Dependencies = p.s.dependencies
	return program
}

func (p *Parser) finishProgram(program *Program) {
	p.processComment(program)
	p.finalizeRemainingComments()
}

func sortedByIndex(m map[string]Position) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	for i := 1; i < len(names); i++ {
		for j := i; 0 < j && m[names[j]].Index < m[names[j-1]].Index; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
	return names
}

////////////////////////////////////////////////////////////////

// finish sets the start and end locations of n and attaches comments. The end is the end of the previous token.
func finish[T Node](p *Parser, n T, start Position) T {
	return finishAt(p, n, start, p.s.prevEndLoc)
}

func finishAt[T Node](p *Parser, n T, start, end Position) T {
	base := n.Base()
	base.Start, base.End = start, end
	if !p.s.inLookahead {
		p.processComment(n)
	}
	return n
}

// resetStart moves the start of n, used when n turns out to begin earlier than parsed, such as for decorators.
func (p *Parser) resetStart(n Node, start Position) {
	n.Base().Start = start
}

func (p *Parser) loc() Position {
	return p.s.tok.Loc
}

func (p *Parser) match(tt TokenType) bool {
	return p.s.tok.Type == tt
}

func (p *Parser) eat(tt TokenType) bool {
	if p.s.tok.Type == tt {
		p.next()
		return true
	}
	return false
}

// expect consumes the token, or reports it as unexpected and returns false.
func (p *Parser) expect(tt TokenType) bool {
	if p.eat(tt) {
		return true
	}
	p.unexpected(tt)
	return false
}

// isContextual returns true if the current token is the unescaped identifier name, such as `of` or `async`.
func (p *Parser) isContextual(name string) bool {
	return p.s.tok.Type == IdentifierToken && p.s.tok.Value == name && !p.s.tok.Escaped
}

func (p *Parser) eatContextual(name string) bool {
	if p.isContextual(name) {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expectContextual(name string) bool {
	if p.eatContextual(name) {
		return true
	}
	p.unexpected()
	return false
}

// isIdentifier returns true if the current token is an identifier or contextual keyword.
func (p *Parser) isIdentifier() bool {
	return p.s.tok.Type == IdentifierToken
}

// isKeywordOrIdentifier returns true for tokens that can be used as property names.
func isKeywordOrIdentifier(tt TokenType) bool {
	return tt == IdentifierToken || IsKeyword(tt)
}

func (p *Parser) canInsertSemicolon() bool {
	return p.match(ErrorToken) || p.match(CloseBraceToken) || p.hasPrecedingLineBreak()
}

func (p *Parser) isLineTerminator() bool {
	return p.eat(SemicolonToken) || p.canInsertSemicolon()
}

// semicolon consumes a statement terminator, applying automatic semicolon insertion.
func (p *Parser) semicolon() {
	if !p.isLineTerminator() {
		p.raise(MissingSemicolon, p.s.prevEndLoc)
	}
}

// lookaheadIsContextual returns true if the token after the current one is the unescaped identifier name.
func (p *Parser) lookaheadIsContextual(name string) bool {
	next := p.nextTokenStart()
	return p.isUnescapedWordAt(next, name)
}

func (p *Parser) isUnescapedWordAt(pos int, name string) bool {
	if len(p.src) < pos+len(name) || string(p.src[pos:pos+len(name)]) != name {
		return false
	}
	return !p.identifierContinuesAt(pos + len(name))
}

func (p *Parser) identifierContinuesAt(pos int) bool {
	if len(p.src) <= pos {
		return false
	}
	c := p.src[pos]
	if c < 0x80 {
		return identifierTable[c] || c == '\\'
	}
	r, _ := p.runeAt(pos)
	return IsIdentifierContinue(r)
}

////////////////////////////////////////////////////////////////

// parseIdentifier parses an identifier reference or binding name. With liberal set, keywords are accepted as well,
// such as for property names.
func (p *Parser) parseIdentifier(liberal bool) *Identifier {
	start := p.loc()
	name := p.parseIdentifierName(liberal)
	return finish(p, &Identifier{Name: name}, start)
}

func (p *Parser) parseIdentifierName(liberal bool) string {
	tok := p.s.tok
	if !isKeywordOrIdentifier(tok.Type) {
		p.unexpected()
		return ""
	}
	name := tok.Value
	if !liberal {
		if _, ok := Keywords[name]; ok && tok.Escaped {
			p.raise(InvalidEscapedReservedWord, tok.Loc, name)
		} else {
			p.checkReservedWord(name, tok.Loc, IsKeyword(tok.Type), false)
		}
	}
	p.next()
	return name
}

// checkReservedWord reports words that cannot be used as identifiers in the current context.
func (p *Parser) checkReservedWord(word string, loc Position, checkKeywords, isBinding bool) {
	if 10 < len(word) {
		return
	}
	if _, ok := Keywords[word]; ok && checkKeywords {
		p.raise(UnexpectedKeyword, loc, word)
		return
	}

	reserved := false
	if !p.s.strict {
		reserved = word == "enum" || p.inModule && word == "await"
	} else if isBinding {
		reserved = IsStrictBindReservedWord(word, p.inModule)
	} else {
		reserved = IsStrictReservedWord(word, p.inModule)
	}
	if reserved {
		p.raise(UnexpectedReservedWord, loc, word)
		return
	}

	switch word {
	case "yield":
		if p.hasYield() {
			p.raise(YieldBindingIdentifier, loc)
		}
	case "await":
		if p.hasAwait() {
			p.raise(AwaitBindingIdentifier, loc)
		} else if p.inStaticBlock() {
			p.raise(AwaitBindingIdentifierInStaticBlock, loc)
		} else {
			p.recordAsyncArrowParametersError(loc)
		}
	case "arguments":
		if p.inClassAndNotInNonArrowFunction() {
			p.raise(ArgumentsInClass, loc)
		}
	}
}

////////////////////////////////////////////////////////////////

// parseBlockBody parses statements until the end token, starting with a directive prologue when allowDirectives is
// set. A "use strict" directive switches to strict mode for the rest of the block. At the top level import and
// export declarations are allowed.
func (p *Parser) parseBlockBody(end TokenType, allowDirectives, topLevel bool, after func(hasStrictModeDirective bool)) ([]*Directive, []IStmt) {
	var directives []*Directive
	var body []IStmt
	oldStrict := p.s.strict
	parsedNonDirective := false
	hasStrictModeDirective := false
	for !p.match(end) && !p.match(ErrorToken) {
		if allowDirectives && !parsedNonDirective {
			if directive := p.parseDirective(); directive != nil {
				directives = append(directives, directive)
				if !hasStrictModeDirective && directive.Value == "use strict" {
					hasStrictModeDirective = true
					p.setStrict(true)
				}
				continue
			}
			parsedNonDirective = true
			p.flushStrictErrors(false)
		}
		before := p.tokenCount
		var stmt IStmt
		if topLevel {
			stmt = p.parseModuleItem()
		} else {
			stmt = p.parseStatementListItem()
		}
		body = append(body, stmt)
		if before == p.tokenCount && !p.match(end) && !p.match(ErrorToken) {
			// recover from a token that cannot start a statement
			p.next()
		}
	}
	if allowDirectives && !parsedNonDirective {
		p.flushStrictErrors(false)
	}
	if after != nil {
		after(hasStrictModeDirective)
	}
	if !oldStrict {
		p.setStrict(false)
	}
	if end != ErrorToken {
		p.expect(end)
	}
	return directives, body
}

// parseDirective parses a string literal statement at the start of a body as a directive.
func (p *Parser) parseDirective() *Directive {
	if !p.match(StringToken) {
		return nil
	}
	tok := p.s.tok
	after, newline := p.skipTrivia(tok.End)
	if after < len(p.src) {
		c := p.src[after]
		if c != ';' && c != '}' && !newline {
			return nil
		}
		if newline && c != ';' && c != '}' && p.continuesExpression(after) {
			return nil
		}
	}
	p.next()
	raw := string(p.src[tok.Start:tok.End])
	n := &Directive{Value: raw[1 : len(raw)-1], Raw: raw}
	p.semicolon()
	return finish(p, n, tok.Loc)
}

// continuesExpression returns true if the byte at pos continues an expression on a new line, which prevents ASI.
func (p *Parser) continuesExpression(pos int) bool {
	switch p.src[pos] {
	case '(', '[', '.', ',', '?', '+', '-', '*', '/', '%', '=', '<', '>', '&', '|', '^', '`':
		return true
	case 'i':
		return p.isUnescapedWordAt(pos, "in") || p.isUnescapedWordAt(pos, "instanceof")
	}
	return false
}
