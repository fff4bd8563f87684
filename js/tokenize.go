package js

// Lexer scans the tokens of a source without parsing it. Without the grammar it decides between division and a
// regular expression from the previous token, and continues a template at the } that closes a substitution.
type Lexer struct {
	p       *Parser
	prev    TokenType
	started bool

	braces []int // open braces per template substitution
}

// NewLexer returns a lexer for the source. Lexical errors are collected rather than fatal, except for the always
// fatal unterminated literals.
func NewLexer(src []byte, o Options) *Lexer {
	o.ContinueOnError = true
	p := newParser(src, o)
	return &Lexer{p: p, prev: ErrorToken}
}

// Next returns the next token, or an ErrorToken at the end of the input or after a fatal error.
func (l *Lexer) Next() Token {
	p := l.p
	if !l.started {
		l.started = true
		p.skipInterpreter()
		p.nextToken()
	} else if p.s.tok.Type != ErrorToken {
		p.next()
	}

	switch p.s.tok.Type {
	case DivToken, DivEqToken:
		if l.regExpAllowed() {
			p.readRegExp()
		}
	case TemplateToken:
		if !p.s.tok.Tail {
			l.braces = append(l.braces, 0)
		}
	case OpenBraceToken, HashBraceToken:
		if 0 < len(l.braces) {
			l.braces[len(l.braces)-1]++
		}
	case CloseBraceToken:
		if 0 < len(l.braces) {
			if l.braces[len(l.braces)-1] == 0 {
				l.braces = l.braces[:len(l.braces)-1]
				p.readTemplateContinuation()
				if !p.s.tok.Tail {
					l.braces = append(l.braces, 0)
				}
			} else {
				l.braces[len(l.braces)-1]--
			}
		}
	}
	if p.s.tok.Type == ErrorToken {
		p.s.r.Restore()
	}
	l.prev = p.s.tok.Type
	if l.prev == TemplateToken && !p.s.tok.Tail {
		l.prev = OpenBraceToken // an expression follows ${
	}
	return p.s.tok
}

func (l *Lexer) regExpAllowed() bool {
	switch l.prev {
	case IdentifierToken, PrivateIdentifierToken, NumericToken, BigIntToken, DecimalToken, StringToken, RegExpToken,
		TemplateToken, CloseParenToken, CloseBracketToken, CloseBraceToken, IncrToken, DecrToken,
		ThisToken, SuperToken, NullToken, TrueToken, FalseToken:
		return false
	}
	return true
}

// Comments returns the comments scanned so far.
func (l *Lexer) Comments() []*Comment {
	return l.p.s.comments
}

// Errors returns the recoverable diagnostics reported so far.
func (l *Lexer) Errors() []*Diagnostic {
	return l.p.s.errors
}

// Err returns the fatal error, if any.
func (l *Lexer) Err() error {
	if l.p.s.err != nil {
		return l.p.s.err
	}
	return nil
}
