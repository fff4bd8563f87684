package js

type exprScopeKind int

const (
	exprScopePlain exprScopeKind = iota
	exprScopeMaybeArrowParams
	exprScopeMaybeAsyncArrowParams
	exprScopeParameterDeclaration
)

// exprScope is a frame of the expression scope stack. While it is not known whether a parenthesized list is an
// arrow head, diagnostics that only apply to parameters are kept in the frame.
type exprScope struct {
	kind   exprScopeKind
	errors map[int]*Diagnostic
	order  []int
}

func (s *exprScope) canBeArrowParameterDeclaration() bool {
	return s.kind == exprScopeMaybeArrowParams || s.kind == exprScopeMaybeAsyncArrowParams
}

func (s *exprScope) isCertainlyParameterDeclaration() bool {
	return s.kind == exprScopeParameterDeclaration
}

func (p *Parser) exprScopeEnter(kind exprScopeKind) {
	p.s.exprScopes = append(p.s.exprScopes, &exprScope{kind: kind})
}

func (p *Parser) exprScopeExit() {
	p.s.exprScopes = p.s.exprScopes[:len(p.s.exprScopes)-1]
}

func (p *Parser) currentExprScope() *exprScope {
	return p.s.exprScopes[len(p.s.exprScopes)-1]
}

func (p *Parser) recordDeclarationError(s *exprScope, code ErrorCode, loc Position) {
	if p.s.inLookahead {
		return
	}
	if s.errors == nil {
		s.errors = map[int]*Diagnostic{}
	}
	prev, ok := s.errors[loc.Index]
	s.errors[loc.Index] = newDiagnostic(code, loc)
	if !ok {
		s.order = append(s.order, loc.Index)
	}
	n := len(s.order)
	p.record(func() {
		if ok {
			s.errors[loc.Index] = prev
		} else {
			delete(s.errors, loc.Index)
			s.order = s.order[:n-1]
		}
	})
}

func (p *Parser) clearDeclarationError(s *exprScope, index int) {
	if prev, ok := s.errors[index]; ok {
		delete(s.errors, index)
		p.record(func() { s.errors[index] = prev })
	}
}

// recordParameterInitializerError reports an await or yield expression in a parameter initializer, or keeps it
// until the enclosing parenthesized list turns out to be an arrow head.
func (p *Parser) recordParameterInitializerError(code ErrorCode, loc Position) {
	i := len(p.s.exprScopes) - 1
	s := p.s.exprScopes[i]
	for !s.isCertainlyParameterDeclaration() {
		if !s.canBeArrowParameterDeclaration() {
			return
		}
		p.recordDeclarationError(s, code, loc)
		i--
		s = p.s.exprScopes[i]
	}
	p.raise(code, loc)
}

// recordArrowParameterBindingError reports a name that cannot be bound as a parameter.
func (p *Parser) recordArrowParameterBindingError(code ErrorCode, loc Position) {
	s := p.currentExprScope()
	if s.isCertainlyParameterDeclaration() {
		p.raise(code, loc)
	} else if s.canBeArrowParameterDeclaration() {
		p.recordDeclarationError(s, code, loc)
	}
}

// recordAsyncArrowParametersError records an await identifier that is invalid if the call turns out to be an async
// arrow head.
func (p *Parser) recordAsyncArrowParametersError(loc Position) {
	i := len(p.s.exprScopes) - 1
	s := p.s.exprScopes[i]
	for s.canBeArrowParameterDeclaration() {
		if s.kind == exprScopeMaybeAsyncArrowParams {
			p.recordDeclarationError(s, AwaitBindingIdentifier, loc)
		}
		i--
		s = p.s.exprScopes[i]
	}
}

// validateAsPattern raises the diagnostics kept in the current frame, now that it is known to be an arrow head, and
// removes them from the enclosing frames.
func (p *Parser) validateAsPattern() {
	cur := p.currentExprScope()
	if !cur.canBeArrowParameterDeclaration() {
		return
	}
	for _, index := range cur.order {
		d, ok := cur.errors[index]
		if !ok {
			continue
		}
		p.raise(d.Code, d.Loc, d.Details...)
		for i := len(p.s.exprScopes) - 2; 0 <= i; i-- {
			s := p.s.exprScopes[i]
			if !s.canBeArrowParameterDeclaration() {
				break
			}
			p.clearDeclarationError(s, index)
		}
	}
}
