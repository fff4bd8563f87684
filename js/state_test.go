package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func newTestParser(src string, o Options) *Parser {
	p := newParser([]byte(src), o)
	p.skipInterpreter()
	p.nextToken()
	p.scopeEnter(scopeProgram)
	p.prodParamEnter(paramIn)
	p.exprScopeEnter(exprScopePlain)
	return p
}

func TestCheckpointRestore(t *testing.T) {
	o := DefaultOptions()
	o.ContinueOnError = true
	p := newTestParser("a b /* c */ d", o)

	cp := p.checkpoint()
	p.next()
	p.next()
	p.raise(UnexpectedToken, p.loc())
	p.declareName("x", bindLexical, p.loc())
	test.T(t, len(p.s.errors), 1)
	test.T(t, len(p.s.comments), 1)
	count := p.tokenCount

	p.restore(cp)
	test.T(t, p.s.tok.Type, IdentifierToken)
	test.String(t, p.s.tok.Value, "a")
	test.T(t, len(p.s.errors), 0)
	test.T(t, len(p.s.comments), 0)
	test.T(t, p.tokenCount, count, "token counter survives restore")
	test.That(t, !p.currentScope().lexical["x"], "declaration must be undone")
	test.T(t, p.speculation, 0)

	p.next()
	test.String(t, p.s.tok.Value, "b", "cursor is rewound")
	test.T(t, p.s.tok.Start, 2)
}

func TestCheckpointCommit(t *testing.T) {
	p := newTestParser("a b", DefaultOptions())
	cp := p.checkpoint()
	p.next()
	p.commit(cp)
	test.String(t, p.s.tok.Value, "b")
	test.T(t, len(p.s.journal), 0)
}

func TestLookahead(t *testing.T) {
	p := newTestParser("a /* b */ c", DefaultOptions())
	tok := p.lookahead()
	test.T(t, tok.Type, IdentifierToken)
	test.String(t, tok.Value, "c")
	test.String(t, p.s.tok.Value, "a")
	test.T(t, len(p.s.comments), 0, "lookahead records no comments")

	p.next()
	test.String(t, p.s.tok.Value, "c")
	test.T(t, p.s.tok.Start, 10)
	test.T(t, len(p.s.comments), 1)
}

func TestSourceSentinel(t *testing.T) {
	// the scanner terminates the source with a NUL in its spare capacity and puts the byte back afterwards
	buf := []byte("a = 1;x")
	src := buf[:6]
	_, err := Parse(src, DefaultOptions())
	test.Error(t, err)
	test.T(t, buf[6], byte('x'))

	l := NewLexer(src, DefaultOptions())
	for l.Next().Type != ErrorToken {
	}
	test.T(t, buf[6], byte('x'))
}

func TestTryParse(t *testing.T) {
	o := DefaultOptions()
	o.ContinueOnError = true
	p := newTestParser("a b c", o)

	res := p.tryParse(func() (Node, bool) {
		p.next()
		return nil, true
	})
	test.That(t, res.aborted, "aborted")
	test.String(t, res.failTok.Value, "b")
	test.String(t, p.s.tok.Value, "a")

	res = p.tryParse(func() (Node, bool) {
		p.next()
		p.raise(UnexpectedToken, p.loc())
		return nil, false
	})
	test.That(t, res.err != nil, "error")
	test.T(t, res.err.Code, UnexpectedToken)
	test.T(t, len(p.s.errors), 0)
	test.String(t, p.s.tok.Value, "a")

	res = p.tryParse(func() (Node, bool) {
		p.next()
		return nil, false
	})
	test.That(t, res.ok(), "ok")
	test.String(t, p.s.tok.Value, "b")
}

func TestTryParseFatal(t *testing.T) {
	p := newTestParser("a b", DefaultOptions())
	res := p.tryParse(func() (Node, bool) {
		p.raise(UnexpectedToken, p.loc())
		return nil, false
	})
	test.That(t, res.err != nil, "error")
	test.That(t, p.s.err == nil, "fatal error must be restored")
	test.String(t, p.s.tok.Value, "a")
}
