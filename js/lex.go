// Package js is a JavaScript and TypeScript parser producing an AST with positions, comments and diagnostics.
package js

import (
	"unicode/utf8"

	"github.com/tdewolff/parse/v2/buffer"
)

// lexState is the scanner part of the parse state.
type lexState struct {
	r         *buffer.Lexer // cursor, never shifted so that Pos is the offset into the source
	line      int
	lineStart int // index of the first byte of the current line

	tok     Token
	newline bool // a line terminator precedes the current token
	inType  bool // scan < and > as single characters

	prevStart, prevEnd  int
	prevLoc, prevEndLoc Position
}

func (p *Parser) curPosition() Position {
	return Position{p.s.r.Pos(), p.s.line, p.s.r.Pos() - p.s.lineStart}
}

// next advances to the next token.
func (p *Parser) next() {
	p.s.prevStart, p.s.prevEnd = p.s.tok.Start, p.s.tok.End
	p.s.prevLoc, p.s.prevEndLoc = p.s.tok.Loc, p.s.tok.EndLoc
	p.tokenCount++
	p.nextToken()
}

// nextToken reads the token following the cursor into the current token.
func (p *Parser) nextToken() {
	p.s.newline = false
	p.skipSpace()
	for {
		p.s.tok = Token{Start: p.s.r.Pos(), Loc: p.curPosition()}
		if p.s.err != nil || len(p.src) <= p.s.r.Pos() {
			p.finishToken(ErrorToken)
			return
		}
		if p.readToken() {
			return
		}
		// skip a character that cannot start a token and try again
		_, n := p.s.r.PeekRune(0)
		p.s.r.Move(n)
		p.skipSpace()
	}
}

func (p *Parser) finishToken(tt TokenType) {
	if p.s.err != nil {
		tt = ErrorToken
	}
	p.s.tok.Type = tt
	p.s.tok.End = p.s.r.Pos()
	p.s.tok.EndLoc = p.curPosition()
}

// peek returns the byte i positions past the cursor, or 0 past the end of the source.
func (p *Parser) peek(i int) byte {
	if p.s.r.Pos()+i < len(p.src) {
		return p.s.r.Peek(i)
	}
	return 0
}

// runeAt decodes the rune at source index pos, which must lie within the source.
func (p *Parser) runeAt(pos int) (rune, int) {
	return p.s.r.PeekRune(pos - p.s.r.Pos())
}

////////////////////////////////////////////////////////////////

func (p *Parser) newLine(end int) {
	p.s.line++
	p.s.lineStart = end
	p.s.newline = true
}

// skipSpace skips whitespace, line terminators and comments. Comments are recorded and grouped into a comment window.
func (p *Parser) skipSpace() {
	spaceStart := p.s.r.Pos()
	var comments []*Comment
	for p.s.r.Pos() < len(p.src) {
		c := p.s.r.Peek(0)
		switch c {
		case ' ', '\t', '\v', '\f':
			p.s.r.Move(1)
		case '\n':
			p.s.r.Move(1)
			p.newLine(p.s.r.Pos())
		case '\r':
			p.s.r.Move(1)
			if p.peek(0) == '\n' {
				p.s.r.Move(1)
			}
			p.newLine(p.s.r.Pos())
		case '/':
			if p.peek(1) == '*' {
				if comment := p.consumeBlockComment(); comment != nil {
					comments = append(comments, comment)
				} else {
					return
				}
			} else if p.peek(1) == '/' {
				comments = append(comments, p.consumeLineComment(2))
			} else {
				goto done
			}
		case '<':
			if p.htmlCommentsAllowed() && p.peek(1) == '!' && p.peek(2) == '-' && p.peek(3) == '-' {
				comments = append(comments, p.consumeLineComment(4))
			} else {
				goto done
			}
		case '-':
			if p.htmlCommentsAllowed() && p.peek(1) == '-' && p.peek(2) == '>' && (p.s.newline || p.s.tok.End == 0) {
				comments = append(comments, p.consumeLineComment(3))
			} else {
				goto done
			}
		default:
			if c < 0x80 {
				goto done
			}
			r, n := p.s.r.PeekRune(0)
			if r == '\u2028' || r == '\u2029' {
				p.s.r.Move(n)
				p.newLine(p.s.r.Pos())
			} else if IsWhitespace(r) {
				p.s.r.Move(n)
			} else {
				goto done
			}
		}
	}
done:
	if 0 < len(comments) && !p.s.inLookahead {
		p.pushCommentWindow(spaceStart, p.s.r.Pos(), comments)
	}
}

func (p *Parser) htmlCommentsAllowed() bool {
	return p.o.AnnexB && p.o.SourceType == ScriptSource && !p.o.TypeScript
}

func (p *Parser) consumeBlockComment() *Comment {
	// assume to be on /*
	start := p.curPosition()
	p.s.r.Move(2)
	for {
		if len(p.src) <= p.s.r.Pos() {
			p.raiseFatal(UnterminatedComment, start)
			return nil
		}
		c := p.s.r.Peek(0)
		if c == '*' && p.peek(1) == '/' {
			p.s.r.Move(2)
			break
		} else if c == '\n' {
			p.s.r.Move(1)
			p.newLine(p.s.r.Pos())
		} else if c == '\r' {
			p.s.r.Move(1)
			if p.peek(0) == '\n' {
				p.s.r.Move(1)
			}
			p.newLine(p.s.r.Pos())
		} else if c == 0xE2 && p.peek(1) == 0x80 && (p.peek(2) == 0xA8 || p.peek(2) == 0xA9) {
			p.s.r.Move(3)
			p.newLine(p.s.r.Pos())
		} else {
			p.s.r.Move(1)
		}
	}
	return p.recordComment(BlockComment, start, 2, 2)
}

func (p *Parser) consumeLineComment(startSkip int) *Comment {
	start := p.curPosition()
	p.s.r.Move(startSkip)
	for p.s.r.Pos() < len(p.src) {
		c := p.s.r.Peek(0)
		if c == '\n' || c == '\r' || c == 0xE2 && p.peek(1) == 0x80 && (p.peek(2) == 0xA8 || p.peek(2) == 0xA9) {
			break
		}
		p.s.r.Move(1)
	}
	return p.recordComment(LineComment, start, startSkip, 0)
}

func (p *Parser) recordComment(ct CommentType, start Position, startSkip, endSkip int) *Comment {
	comment := &Comment{
		Type:  ct,
		Value: string(p.src[start.Index+startSkip : p.s.r.Pos()-endSkip]),
		Start: start,
		End:   p.curPosition(),
	}
	if !p.s.inLookahead {
		p.s.comments = append(p.s.comments, comment)
	}
	return comment
}

// skipInterpreter skips a leading #! line and returns its content.
func (p *Parser) skipInterpreter() *InterpreterDirective {
	if p.s.r.Pos() != 0 || p.peek(0) != '#' || p.peek(1) != '!' {
		return nil
	}
	start := p.curPosition()
	p.s.r.Move(2)
	for p.s.r.Pos() < len(p.src) && !p.atLineTerminator(p.s.r.Pos()) {
		p.s.r.Move(1)
	}
	n := &InterpreterDirective{Value: string(p.src[start.Index+2 : p.s.r.Pos()])}
	n.Start, n.End = start, p.curPosition()
	return n
}

func (p *Parser) atLineTerminator(i int) bool {
	c := p.src[i]
	return c == '\n' || c == '\r' || c == 0xE2 && i+2 < len(p.src) && p.src[i+1] == 0x80 && (p.src[i+2] == 0xA8 || p.src[i+2] == 0xA9)
}

// skipTrivia returns the index of the first non-whitespace, non-comment byte from pos on, and whether a line
// terminator was skipped. It does not touch the state.
func (p *Parser) skipTrivia(pos int) (int, bool) {
	newline := false
	for pos < len(p.src) {
		c := p.src[pos]
		switch {
		case c == ' ' || c == '\t' || c == '\v' || c == '\f':
			pos++
		case c == '\n' || c == '\r':
			pos++
			newline = true
		case c == '/' && pos+1 < len(p.src) && p.src[pos+1] == '*':
			pos += 2
			for pos < len(p.src) && !(p.src[pos] == '*' && pos+1 < len(p.src) && p.src[pos+1] == '/') {
				if p.atLineTerminator(pos) {
					newline = true
				}
				pos++
			}
			pos += 2
		case c == '/' && pos+1 < len(p.src) && p.src[pos+1] == '/':
			for pos < len(p.src) && !p.atLineTerminator(pos) {
				pos++
			}
		case c >= 0x80:
			r, n := p.runeAt(pos)
			if r == '\u2028' || r == '\u2029' {
				newline = true
			} else if !IsWhitespace(r) {
				return pos, newline
			}
			pos += n
		default:
			return pos, newline
		}
	}
	if len(p.src) < pos {
		pos = len(p.src)
	}
	return pos, newline
}

// nextTokenStart returns the index at which the token after the current one starts.
func (p *Parser) nextTokenStart() int {
	pos, _ := p.skipTrivia(p.s.r.Pos())
	return pos
}

// lookaheadCharCode returns the first byte of the token after the current one, or 0 at the end.
func (p *Parser) lookaheadCharCode() byte {
	if pos := p.nextTokenStart(); pos < len(p.src) {
		return p.src[pos]
	}
	return 0
}

// hasFollowingLineBreak returns true if a line terminator separates the current token from the next one.
func (p *Parser) hasFollowingLineBreak() bool {
	_, newline := p.skipTrivia(p.s.tok.End)
	return newline
}

// hasPrecedingLineBreak returns true if a line terminator separates the previous token from the current one.
func (p *Parser) hasPrecedingLineBreak() bool {
	return p.s.newline
}

////////////////////////////////////////////////////////////////

// readToken reads the token at the cursor. It returns false if the character cannot start a token.
func (p *Parser) readToken() bool {
	c := p.s.r.Peek(0)
	switch c {
	case '.':
		if isDigit(p.peek(1)) {
			p.consumeNumericToken(true)
			return true
		} else if p.peek(1) == '.' && p.peek(2) == '.' {
			p.s.r.Move(3)
			p.finishToken(EllipsisToken)
			return true
		}
		p.s.r.Move(1)
		p.finishToken(DotToken)
	case '(':
		p.punctuator(OpenParenToken)
	case ')':
		p.punctuator(CloseParenToken)
	case ';':
		p.punctuator(SemicolonToken)
	case ',':
		p.punctuator(CommaToken)
	case '[':
		p.punctuator(OpenBracketToken)
	case ']':
		p.punctuator(CloseBracketToken)
	case '{':
		p.punctuator(OpenBraceToken)
	case '}':
		p.punctuator(CloseBraceToken)
	case ':':
		p.punctuator(ColonToken)
	case '~':
		p.punctuator(BitNotToken)
	case '@':
		p.punctuator(AtToken)
	case '#':
		p.consumeNumberSignToken()
	case '?':
		p.consumeQuestionToken()
	case '`':
		p.consumeTemplateToken()
	case '0':
		switch p.peek(1) {
		case 'x', 'X':
			p.consumeRadixNumericToken(16)
		case 'o', 'O':
			p.consumeRadixNumericToken(8)
		case 'b', 'B':
			p.consumeRadixNumericToken(2)
		default:
			p.consumeNumericToken(false)
		}
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		p.consumeNumericToken(false)
	case '"', '\'':
		p.consumeStringToken(c)
	default:
		if tt := p.consumeOperatorToken(); tt != ErrorToken {
			p.finishToken(tt)
		} else if !p.consumeIdentifierToken() {
			r, _ := p.s.r.PeekRune(0)
			p.raise(InvalidOrUnexpectedToken, p.curPosition(), string(r))
			return false
		}
	}
	return true
}

func (p *Parser) punctuator(tt TokenType) {
	p.s.r.Move(1)
	p.finishToken(tt)
}

var opEqTokens = map[byte]TokenType{
	'=': EqEqToken,
	'!': NotEqToken,
	'<': LtEqToken,
	'>': GtEqToken,
	'+': AddEqToken,
	'-': SubEqToken,
	'*': MulEqToken,
	'/': DivEqToken,
	'%': ModEqToken,
	'&': BitAndEqToken,
	'|': BitOrEqToken,
	'^': BitXorEqToken,
}

var opOpTokens = map[byte]TokenType{
	'+': IncrToken,
	'-': DecrToken,
	'*': ExpToken,
	'&': AndToken,
	'|': OrToken,
}

var opTokens = map[byte]TokenType{
	'=': EqToken,
	'!': NotToken,
	'<': LtToken,
	'>': GtToken,
	'+': AddToken,
	'-': SubToken,
	'*': MulToken,
	'/': DivToken,
	'%': ModToken,
	'&': BitAndToken,
	'|': BitOrToken,
	'^': BitXorToken,
}

// consumeOperatorToken reads an operator. A slash is always read as a division, the parser rescans it as a regular
// expression in expression position.
func (p *Parser) consumeOperatorToken() TokenType {
	c := p.s.r.Peek(0)
	if _, ok := opTokens[c]; !ok {
		return ErrorToken
	}
	p.s.r.Move(1)
	if p.s.inType && (c == '<' || c == '>') {
		return opTokens[c]
	}
	if p.peek(0) == '=' {
		if c == '=' || c == '!' {
			p.s.r.Move(1)
			if p.peek(0) == '=' {
				p.s.r.Move(1)
				if c == '!' {
					return NotEqEqToken
				}
				return EqEqEqToken
			}
			return opEqTokens[c]
		}
		p.s.r.Move(1)
		return opEqTokens[c]
	} else if p.peek(0) == c && (c == '+' || c == '-' || c == '*' || c == '&' || c == '|') {
		p.s.r.Move(1)
		if p.peek(0) == '=' {
			switch c {
			case '*':
				p.s.r.Move(1)
				return ExpEqToken
			case '&':
				p.s.r.Move(1)
				return AndEqToken
			case '|':
				p.s.r.Move(1)
				return OrEqToken
			}
		}
		return opOpTokens[c]
	} else if c == '=' && p.peek(0) == '>' {
		p.s.r.Move(1)
		return ArrowToken
	} else if c == '<' && p.peek(0) == '<' {
		p.s.r.Move(1)
		if p.peek(0) == '=' {
			p.s.r.Move(1)
			return LtLtEqToken
		}
		return LtLtToken
	} else if c == '>' && p.peek(0) == '>' {
		p.s.r.Move(1)
		if p.peek(0) == '>' {
			p.s.r.Move(1)
			if p.peek(0) == '=' {
				p.s.r.Move(1)
				return GtGtGtEqToken
			}
			return GtGtGtToken
		} else if p.peek(0) == '=' {
			p.s.r.Move(1)
			return GtGtEqToken
		}
		return GtGtToken
	}
	return opTokens[c]
}

func (p *Parser) consumeQuestionToken() {
	// assume to be on ?
	p.s.r.Move(1)
	if p.peek(0) == '.' && !isDigit(p.peek(1)) {
		p.s.r.Move(1)
		p.finishToken(OptChainToken)
	} else if p.peek(0) == '?' {
		p.s.r.Move(1)
		if p.peek(0) == '=' {
			p.s.r.Move(1)
			p.finishToken(NullishEqToken)
			return
		}
		p.finishToken(NullishToken)
	} else {
		p.finishToken(QuestionToken)
	}
}

func (p *Parser) consumeNumberSignToken() {
	// assume to be on #
	start := p.curPosition()
	p.s.r.Move(1)
	if c := p.peek(0); c == '{' || c == '[' {
		p.s.r.Move(1)
		if c == '{' {
			p.finishToken(HashBraceToken)
		} else {
			p.finishToken(HashBracketToken)
		}
		return
	}
	if p.s.r.Pos() < len(p.src) {
		r, _ := p.s.r.PeekRune(0)
		if IsIdentifierStart(r) || r == '\\' {
			name, escaped := p.readWord()
			p.s.tok.Value = name
			p.s.tok.Escaped = escaped
			p.finishToken(PrivateIdentifierToken)
			return
		}
	}
	if p.s.r.Pos() == 1 && p.peek(0) == '!' {
		p.raise(UnexpectedInterpreterDirective, start)
	}
	p.finishToken(HashToken)
}

// consumeIdentifierToken reads an identifier or keyword. Keywords spelled with escapes are returned as identifiers
// with Escaped set; the parser rejects them where a keyword would be required.
func (p *Parser) consumeIdentifierToken() bool {
	c := p.s.r.Peek(0)
	if c != '\\' {
		if !identifierStartTable[c] {
			return false
		} else if c >= 0xC0 {
			if r, _ := p.s.r.PeekRune(0); !IsIdentifierStart(r) {
				return false
			}
		}
	}
	name, escaped := p.readWord()
	if !escaped {
		if keyword, ok := Keywords[name]; ok {
			p.s.tok.Value = name
			p.finishToken(keyword)
			return true
		}
	}
	p.s.tok.Value = name
	p.s.tok.Escaped = escaped
	p.finishToken(IdentifierToken)
	return true
}

// readWord reads an identifier name, decoding unicode escapes.
func (p *Parser) readWord() (string, bool) {
	start := p.s.r.Pos()
	var buf []byte
	escaped := false
	first := true
	chunkStart := p.s.r.Pos()
	for p.s.r.Pos() < len(p.src) {
		c := p.s.r.Peek(0)
		if c < 0x80 && c != '\\' {
			if !identifierTable[c] || first && isDigit(c) {
				break
			}
			p.s.r.Move(1)
		} else if c == '\\' {
			escaped = true
			buf = append(buf, p.src[chunkStart:p.s.r.Pos()]...)
			escStart := p.curPosition()
			if p.peek(1) != 'u' {
				p.raise(MissingUnicodeEscape, escStart)
				p.s.r.Move(1)
				chunkStart = p.s.r.Pos()
				continue
			}
			p.s.r.Move(2)
			r, ok := p.readCodePoint(false)
			if ok {
				if first && !IsIdentifierStart(r) || !first && !IsIdentifierContinue(r) {
					p.raise(EscapedCharNotAnIdentifier, escStart)
				} else {
					buf = utf8.AppendRune(buf, r)
				}
			}
			chunkStart = p.s.r.Pos()
		} else {
			r, n := p.s.r.PeekRune(0)
			if first && !IsIdentifierStart(r) || !first && !IsIdentifierContinue(r) {
				break
			}
			p.s.r.Move(n)
		}
		first = false
	}
	if !escaped {
		return string(p.src[start:p.s.r.Pos()]), false
	}
	buf = append(buf, p.src[chunkStart:p.s.r.Pos()]...)
	return string(buf), true
}

func (p *Parser) identifierStartsAt(pos int) bool {
	if len(p.src) <= pos {
		return false
	}
	r, _ := p.runeAt(pos)
	return IsIdentifierStart(r) || r == '\\'
}
