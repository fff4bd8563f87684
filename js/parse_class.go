package js

// classMember collects the modifiers and the key of a class element before it is known which kind of element it is.
type classMember struct {
	start      Position
	decorators []*Decorator

	static        bool
	accessibility string
	abstract      bool
	override      bool
	readonly      bool
	declare       bool
	optional      bool
	definite      bool

	key      IExpr
	computed bool
}

type classState struct {
	hadConstructor bool
	hadSuperClass  bool
}

func (p *Parser) parseClassStatement(start Position, decorators []*Decorator, optionalID bool) IStmt {
	c := Class{Decorators: decorators}
	return p.parseClass(&c, start, true, optionalID).(IStmt)
}

func (p *Parser) parseClassExpression(start Position, decorators []*Decorator) IExpr {
	c := Class{Decorators: decorators}
	return p.parseClass(&c, start, false, false).(IExpr)
}

// parseClass parses a class from the class keyword. Class code is always strict.
func (p *Parser) parseClass(c *Class, start Position, isStatement, optionalID bool) Node {
	if 0 < len(c.Decorators) && c.Decorators[0].Start.Index < start.Index {
		start = c.Decorators[0].Start
	}
	p.expect(ClassToken)
	oldStrict := p.s.strict
	oldInAbstractClass := p.s.inAbstractClass
	p.s.strict = true
	p.s.inAbstractClass = c.Abstract

	p.h.parseClassID(c, isStatement, optionalID)
	p.h.parseClassSuper(c)
	c.Body = p.parseClassBody(c.SuperClass != nil, oldStrict)
	p.s.inAbstractClass = oldInAbstractClass

	if isStatement {
		n := &ClassDeclaration{Class: *c}
		return finish(p, n, start)
	}
	n := &ClassExpression{Class: *c}
	return finish(p, n, start)
}

func (h *coreHooks) parseClassID(c *Class, isStatement, optionalID bool) {
	p := h.p
	if !p.isIdentifier() {
		if isStatement && !optionalID {
			p.raise(MissingClassName, p.loc())
		}
		return
	}
	c.ID = p.parseIdentifier(false)
	if isStatement {
		binding := bindClass
		if c.Declare {
			binding = bindTSAmbient
		}
		p.declareName(c.ID.Name, binding, c.ID.Start)
	}
}

func (h *coreHooks) parseClassSuper(c *Class) {
	p := h.p
	if p.eat(ExtendsToken) {
		c.SuperClass = p.parseExprSubscripts(nil)
	}
}

// parseClassBody parses the members of a class. Decorators are collected until the member they precede. Strict mode
// is restored before the closing brace so that the following token is scanned in the outer mode.
func (p *Parser) parseClassBody(hadSuperClass, oldStrict bool) *ClassBody {
	start := p.loc()
	p.classScopeEnter()
	st := &classState{hadSuperClass: hadSuperClass}
	body := &ClassBody{}
	var decorators []*Decorator
	if p.expect(OpenBraceToken) {
		for !p.match(CloseBraceToken) && !p.match(ErrorToken) {
			if p.eat(SemicolonToken) {
				if 0 < len(decorators) {
					p.raise(TrailingDecorator, p.s.prevEndLoc)
					decorators = nil
				}
				continue
			}
			if p.match(AtToken) {
				decorators = append(decorators, p.parseDecorator())
				continue
			}
			m := &classMember{start: p.loc(), decorators: decorators}
			if 0 < len(decorators) {
				m.start = decorators[0].Start
				decorators = nil
			}
			before := p.tokenCount
			n := len(body.Body)
			p.h.parseClassMember(body, m, st)
			if n < len(body.Body) {
				if method, ok := body.Body[len(body.Body)-1].(*ClassMethod); ok && method.Kind == MethodConstructor && 0 < len(method.Decorators) {
					p.raise(DecoratorConstructor, method.Start)
				}
			}
			if before == p.tokenCount {
				p.next()
			}
		}
	}
	p.s.strict = oldStrict
	p.expect(CloseBraceToken)
	if 0 < len(decorators) {
		p.raise(TrailingDecorator, p.loc())
	}
	p.classScopeExit()
	return finish(p, body, start)
}

func (h *coreHooks) parseClassMember(body *ClassBody, m *classMember, st *classState) {
	p := h.p
	if p.isContextual("static") {
		if p.parseClassMemberFromModifier(body, m) {
			return
		}
		if p.eat(OpenBraceToken) {
			p.parseClassStaticBlock(body, m)
			return
		}
		m.static = true
	}
	p.h.parseClassMemberWithIsStatic(body, m, st)
}

// parseClassMemberFromModifier parses a method or field named like a modifier, such as `static() {}`. The modifier is
// consumed either way.
func (p *Parser) parseClassMemberFromModifier(body *ClassBody, m *classMember) bool {
	key := p.parseIdentifier(true)
	if p.h.isClassMethod() {
		m.key = key
		p.pushClassMethod(body, m, MethodNormal, false, false, false, false)
		return true
	} else if p.h.isClassProperty() {
		m.key = key
		p.pushClassProperty(body, m, false)
		return true
	}
	p.resetPreviousNodeTrailingComments(key)
	return false
}

func (p *Parser) parseClassStaticBlock(body *ClassBody, m *classMember) {
	p.scopeEnter(scopeClass | scopeStaticBlock | scopeSuper)
	oldLabels := p.s.labels
	p.s.labels = nil
	p.prodParamEnter(paramNone)
	n := &StaticBlock{}
	_, n.Body = p.parseBlockBody(CloseBraceToken, false, false, nil)
	p.prodParamExit()
	p.scopeExit()
	p.s.labels = oldLabels
	body.Body = append(body.Body, finish(p, n, m.start))
	if 0 < len(m.decorators) {
		p.raise(DecoratorStaticBlock, m.start)
	}
}

func (h *coreHooks) parseClassMemberWithIsStatic(body *ClassBody, m *classMember, st *classState) {
	p := h.p
	if p.eat(MulToken) {
		isPrivate := p.match(PrivateIdentifierToken)
		p.parseClassElementName(m)
		if !isPrivate && p.isNonstaticConstructor(m) {
			p.raise(ConstructorIsGenerator, m.key.Base().Start)
		}
		p.pushClassMethod(body, m, MethodNormal, true, false, false, false)
		return
	}

	isContextual := p.match(IdentifierToken) && !p.s.tok.Escaped
	p.parseClassElementName(m)
	contextualName := ""
	if id, ok := m.key.(*Identifier); ok && isContextual {
		contextualName = id.Name
	}
	_, isPrivate := m.key.(*PrivateName)
	questionLoc := p.loc()
	p.h.parsePostMemberNameModifiers(m)

	switch {
	case p.h.isClassMethod():
		isConstructor := !isPrivate && p.isNonstaticConstructor(m)
		allowDirectSuper := false
		kind := MethodNormal
		if isConstructor {
			kind = MethodConstructor
			if st.hadConstructor && !p.o.TypeScript {
				p.raise(DuplicateConstructor, m.key.Base().Start)
			}
			st.hadConstructor = true
			allowDirectSuper = st.hadSuperClass
		}
		p.pushClassMethod(body, m, kind, false, false, isConstructor, allowDirectSuper)
	case p.h.isClassProperty():
		p.pushClassProperty(body, m, false)
	case contextualName == "async" && !p.isLineTerminator():
		p.resetPreviousNodeTrailingComments(m.key)
		generator := p.eat(MulToken)
		if m.optional {
			p.unexpectedAt(questionLoc)
		}
		isPrivate := p.match(PrivateIdentifierToken)
		p.parseClassElementName(m)
		p.h.parsePostMemberNameModifiers(m)
		if !isPrivate && p.isNonstaticConstructor(m) {
			p.raise(ConstructorIsAsync, m.key.Base().Start)
		}
		p.pushClassMethod(body, m, MethodNormal, generator, true, false, false)
	case (contextualName == "get" || contextualName == "set") && !(p.match(MulToken) && p.isLineTerminator()):
		p.resetPreviousNodeTrailingComments(m.key)
		kind := MethodKind(contextualName)
		isPrivate := p.match(PrivateIdentifierToken)
		p.parseClassElementName(m)
		if !isPrivate && p.isNonstaticConstructor(m) {
			p.raise(ConstructorIsAccessor, m.key.Base().Start)
		}
		method := p.pushClassMethod(body, m, kind, false, false, false, false)
		p.h.checkGetterSetterParams(kind, &method.Function, method.Start)
	case contextualName == "accessor" && !p.isLineTerminator():
		p.expectFeature(FeatureDecoratorAutoAccessors, m.key.Base().Start)
		p.resetPreviousNodeTrailingComments(m.key)
		p.parseClassElementName(m)
		p.pushClassProperty(body, m, true)
	case p.isLineTerminator():
		p.pushClassProperty(body, m, false)
	default:
		p.unexpected()
	}
}

// parseClassElementName parses a member key, which unlike object keys may be a private name.
func (p *Parser) parseClassElementName(m *classMember) {
	tok := p.s.tok
	if (tok.Type == IdentifierToken || tok.Type == StringToken) && m.static && tok.Value == "prototype" {
		p.raise(StaticPrototype, tok.Loc)
	}
	if tok.Type == PrivateIdentifierToken {
		if tok.Value == "constructor" {
			p.raise(ConstructorClassPrivateField, tok.Loc)
		}
		m.key, m.computed = p.parsePrivateName(), false
		return
	}
	name := p.parsePropertyName(nil)
	m.key, m.computed = name.key, name.computed
}

func (p *Parser) isNonstaticConstructor(m *classMember) bool {
	return !m.computed && !m.static && keyName(m.key) == "constructor"
}

// keyName returns the name of an identifier or string key.
func keyName(key IExpr) string {
	switch key := key.(type) {
	case *Identifier:
		return key.Name
	case *StringLiteral:
		return key.Value
	}
	return ""
}

func (h *coreHooks) parsePostMemberNameModifiers(m *classMember) {}

func (h *coreHooks) checkGetterSetterParams(kind MethodKind, f *Function, loc Position) {
	h.p.checkGetterSetterParams(kind, f.Params, loc)
}

func (h *coreHooks) isClassMethod() bool {
	return h.p.match(OpenParenToken)
}

func (h *coreHooks) isClassProperty() bool {
	p := h.p
	return p.match(EqToken) || p.match(SemicolonToken) || p.match(CloseBraceToken)
}

func (p *Parser) pushClassMethod(body *ClassBody, m *classMember, kind MethodKind, generator, async, isConstructor, allowDirectSuper bool) *ClassMethod {
	n := &ClassMethod{
		Kind:          kind,
		Key:           m.key,
		Computed:      m.computed,
		Static:        m.static,
		Decorators:    m.decorators,
		Accessibility: m.accessibility,
		Abstract:      m.abstract,
		Override:      m.override,
		Optional:      m.optional,
	}
	n.Function = Function{Generator: generator, Async: async}
	if typeParams := p.h.tryParseTypeParameters(); typeParams != nil {
		if isConstructor {
			p.raise(TSConstructorHasTypeParameters, typeParams.Start)
		}
		n.TypeParameters = typeParams
	}
	if m.declare && (kind == MethodGet || kind == MethodSet) {
		p.raise(TSDeclareAccessor, m.start, string(kind))
	}
	p.parseMethod(&n.Function, n, functionClassMethod, isConstructor, allowDirectSuper, true)
	if isConstructor && n.ReturnType != nil {
		p.raise(TSConstructorHasReturnType, n.ReturnType.Start)
	}
	if m.abstract && n.Body != nil {
		p.raise(TSAbstractMethodHasImplementation, m.start, keyName(m.key))
	}
	n = finish(p, n, m.start)
	body.Body = append(body.Body, n)

	if private, ok := m.key.(*PrivateName); ok && n.Body != nil {
		element := classElementOther
		if kind == MethodGet {
			element = classElementGetter
		} else if kind == MethodSet {
			element = classElementSetter
		}
		if element != classElementOther && m.static {
			element |= classElementStatic
		}
		p.declarePrivateName(private.Name, element, private.Start)
	}
	return n
}

// pushClassProperty parses a field, which may be an auto-accessor, after its key.
func (p *Parser) pushClassProperty(body *ClassBody, m *classMember, accessor bool) {
	private, isPrivate := m.key.(*PrivateName)
	if !isPrivate && !m.computed && keyName(m.key) == "constructor" {
		p.raise(ConstructorClassField, m.key.Base().Start)
	}
	n := &ClassProperty{
		Key:           m.key,
		Computed:      m.computed,
		Static:        m.static,
		Accessor:      accessor,
		Decorators:    m.decorators,
		Accessibility: m.accessibility,
		Abstract:      m.abstract,
		Override:      m.override,
		Optional:      m.optional,
		Definite:      m.definite,
		Readonly:      m.readonly,
		Declare:       m.declare,
	}
	n.Start = m.start
	p.h.parseClassPropertyModifiers(n)
	n.Value = p.parseClassFieldInitializer()
	p.semicolon()
	body.Body = append(body.Body, finish(p, n, m.start))
	if isPrivate {
		p.declarePrivateName(private.Name, classElementOther, private.Start)
	}
}

func (h *coreHooks) parseClassPropertyModifiers(n *ClassProperty) {}

// parseClassFieldInitializer parses the initializer of a field, which is evaluated like a method body with this
// bound to the instance.
func (p *Parser) parseClassFieldInitializer() IExpr {
	if !p.eat(EqToken) {
		return nil
	}
	p.scopeEnter(scopeClass | scopeSuper)
	p.exprScopeEnter(exprScopePlain)
	p.prodParamEnter(paramNone)
	value := p.parseMaybeAssignAllowIn(nil, false)
	p.prodParamExit()
	p.exprScopeExit()
	p.scopeExit()
	return value
}

////////////////////////////////////////////////////////////////

// parseDecorators parses the decorators before a class, which may also precede export.
func (p *Parser) parseDecorators(allowExport bool) []*Decorator {
	var decorators []*Decorator
	for p.match(AtToken) {
		decorators = append(decorators, p.parseDecorator())
	}
	if p.match(ExportToken) {
		if !allowExport {
			p.unexpected()
		}
	} else if !p.h.canHaveLeadingDecorator() {
		p.raise(UnexpectedLeadingDecorator, p.loc())
	}
	return decorators
}

func (h *coreHooks) canHaveLeadingDecorator() bool {
	return h.p.match(ClassToken)
}

// parseDecorator parses a single decorator. Proposal decorators are restricted to a dotted name with optional
// arguments or a parenthesized expression, legacy decorators take any member or call expression.
func (p *Parser) parseDecorator() *Decorator {
	start := p.loc()
	if p.o.Decorators == NoDecorators {
		p.raise(MissingFeature, start, "decorators")
	}
	p.next()
	n := &Decorator{}
	if p.o.Decorators != ProposalDecorators {
		n.Expression = p.parseExprSubscripts(nil)
		return finish(p, n, start)
	}

	exprStart := p.loc()
	var expr IExpr
	if p.eat(OpenParenToken) {
		expr = p.parseExpression()
		p.expect(CloseParenToken)
		expr = p.wrapParenthesis(exprStart, expr)
	} else {
		expr = p.parseIdentifier(false)
		for p.eat(DotToken) {
			member := &MemberExpression{Object: expr}
			if p.match(PrivateIdentifierToken) {
				p.usePrivateName(p.s.tok.Value, p.loc())
				member.Property = p.parsePrivateName()
			} else {
				member.Property = p.parseIdentifier(true)
			}
			expr = finish(p, member, exprStart)
		}
	}
	n.Expression = p.parseMaybeDecoratorArguments(expr, exprStart)
	return finish(p, n, start)
}

func (p *Parser) parseMaybeDecoratorArguments(expr IExpr, start Position) IExpr {
	if !p.eat(OpenParenToken) {
		return expr
	}
	call := &CallExpression{Callee: expr}
	call.Arguments, _ = p.parseCallArguments(false, nil)
	return finish(p, call, start)
}
