package js

// state is the mutable part of a parse. Checkpoints copy it by value. The stacks are cloned since frames are popped
// and pushed during an attempt; the other list-valued fields are append-only or journaled, so a copy of the slice
// header is enough to restore them.
type state struct {
	lexState

	err         *Diagnostic // fatal error, parsing unwinds once set
	strict      bool
	inLookahead bool

	// type grammar context
	isAmbientContext           bool
	inAbstractClass            bool
	inDisallowConditionalTypes bool
	noAnonFunctionType         bool

	maybeInArrowParameters bool
	potentialArrowAt       int
	hasTopLevelAwait       bool

	labels      []label
	prodParams  []paramFlags
	scopes      []*scope
	classScopes []*classScope
	exprScopes  []*exprScope

	comments     []*Comment
	commentStack []commentWindow
	errors       []*Diagnostic
	strictErrors map[int]*Diagnostic
	dependencies []string
	depSeen      map[string]bool

	journal []func()
}

// checkpoint is a snapshot of the state used for speculative parsing.
type checkpoint struct {
	s      state
	offset int // cursor of the shared buffer
}

// checkpoint snapshots the state. Every checkpoint must be followed by either restore or commit.
func (p *Parser) checkpoint() checkpoint {
	cp := checkpoint{s: p.s, offset: p.s.r.Pos()}
	cp.s.commentStack = clone(p.s.commentStack)
	cp.s.labels = clone(p.s.labels)
	cp.s.prodParams = clone(p.s.prodParams)
	cp.s.scopes = clone(p.s.scopes)
	cp.s.classScopes = clone(p.s.classScopes)
	cp.s.exprScopes = clone(p.s.exprScopes)
	p.speculation++
	return cp
}

func clone[T any](s []T) []T {
	return append([]T(nil), s...)
}

// restore resets the state to the checkpoint, undoing journaled mutations.
func (p *Parser) restore(cp checkpoint) {
	for i := len(p.s.journal) - 1; i >= len(cp.s.journal); i-- {
		p.s.journal[i]()
	}
	p.s = cp.s
	p.s.r.Rewind(cp.offset)
	p.speculation--
}

// commit keeps the state reached since the checkpoint.
func (p *Parser) commit(cp checkpoint) {
	p.speculation--
	if p.speculation == 0 {
		p.s.journal = p.s.journal[:0]
	}
}

// record registers an undo function for a mutation of state that lies below an active checkpoint.
func (p *Parser) record(undo func()) {
	if 0 < p.speculation {
		p.s.journal = append(p.s.journal, undo)
	}
}

// lookahead returns the token after the current one without changing the state. Comments and diagnostics are not
// recorded while looking ahead.
func (p *Parser) lookahead() Token {
	old, offset := p.s.lexState, p.s.r.Pos()
	inLookahead := p.s.inLookahead
	p.s.inLookahead = true
	p.nextToken()
	tok := p.s.tok
	p.s.lexState = old
	p.s.r.Rewind(offset)
	p.s.inLookahead = inLookahead
	return tok
}

// tryResult is the outcome of a speculative parse.
type tryResult struct {
	node    Node
	err     *Diagnostic // first diagnostic raised by the attempt
	aborted bool
	failTok Token // token at which the failed attempt stopped
}

func (r tryResult) ok() bool {
	return r.err == nil && !r.aborted
}

// tryParse runs fn against the live state. If fn returns abort, or if it raised a diagnostic, the state is restored
// to where it was before; otherwise the attempt is committed. The token counter is not restored.
func (p *Parser) tryParse(fn func() (Node, bool)) tryResult {
	cp := p.checkpoint()
	node, abort := fn()
	if abort {
		res := tryResult{node: node, aborted: true, failTok: p.s.tok}
		p.restore(cp)
		return res
	}
	if p.s.err != nil && cp.s.err == nil {
		res := tryResult{node: node, err: p.s.err, failTok: p.s.tok}
		p.restore(cp)
		return res
	}
	if len(cp.s.errors) < len(p.s.errors) {
		res := tryResult{node: node, err: p.s.errors[len(cp.s.errors)], failTok: p.s.tok}
		p.restore(cp)
		return res
	}
	p.commit(cp)
	return tryResult{node: node}
}

////////////////////////////////////////////////////////////////

// addDependency records a bare identifier reference.
func (p *Parser) addDependency(name string) {
	if p.s.inLookahead || p.s.depSeen[name] {
		return
	}
	if p.s.depSeen == nil {
		p.s.depSeen = map[string]bool{}
	}
	p.s.depSeen[name] = true
	p.record(func() { delete(p.s.depSeen, name) })
	p.s.dependencies = append(p.s.dependencies, name)
}
