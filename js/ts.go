package js

// hooks are the grammar productions that TypeScript extends. The core parser always calls them through p.h, so that
// an override also applies when reached from a recursive production.
type hooks interface {
	canHaveLeadingDecorator() bool
	checkGetterSetterParams(kind MethodKind, f *Function, loc Position)
	isClassMethod() bool
	isClassProperty() bool
	isPotentialImportPhase(isExport bool) bool
	parseArrow() (*TSTypeAnnotation, bool)
	parseAssignableListItem(flags bindingListFlags, decorators []*Decorator) IPattern
	parseBindingAtom() IPattern
	parseCatchClauseParamType(param IPattern) IPattern
	parseClassID(c *Class, isStatement, optionalID bool)
	parseClassMember(body *ClassBody, m *classMember, st *classState)
	parseClassMemberWithIsStatic(body *ClassBody, m *classMember, st *classState)
	parseClassPropertyModifiers(n *ClassProperty)
	parseClassSuper(c *Class)
	parseConditional(expr IExpr, start Position, refErrors *exprErrors) IExpr
	parseExport(start Position, decorators []*Decorator) IStmt
	parseExportDeclaration(n *ExportNamedDeclaration) Node
	parseExportDefaultExpression() Node
	parseExportSpecifier(start Position, local IExpr, isString, typeOnlyExport, maybeTypeOnly bool) *ExportSpecifier
	parseExprOp(left IExpr, start Position, minPrec OpPrec) IExpr
	parseExpressionStatement(start Position, expr IExpr, decorators []*Decorator) IStmt
	parseFunctionBodyAndFinish(f *Function, n Node, kind functionKind) bool
	parseFunctionParamType(param IPattern) IPattern
	parseFunctionParams(f *Function, isConstructor bool)
	parseImport(start Position) IStmt
	parseImportSpecifier(start Position, imported IExpr, importedIsString, typeOnlyImport, maybeTypeOnly bool) *ImportSpecifier
	parseMaybeAssign(refErrors *exprErrors, parenItem bool) IExpr
	parseMaybeUnary(refErrors *exprErrors, sawUnary bool) IExpr
	parseNewCallee(n *NewExpression)
	parseParenItem(n Node, start Position) Node
	parsePostMemberNameModifiers(m *classMember)
	parseStatementContent(flags stmtFlags, decorators []*Decorator) IStmt
	parseSubscript(base IExpr, start Position, noCalls bool, st *subscriptState) IExpr
	parseVarID(decl *VariableDeclarator, kind string)
	registerFunctionStatementID(f *Function)
	shouldParseArrow(params []Node) bool
	shouldParseExportDeclaration() bool
	tryParseTypeParameters() *TSTypeParameterDeclaration
}

// coreHooks implement the ECMAScript grammar.
type coreHooks struct {
	p *Parser
}

func (h *coreHooks) tryParseTypeParameters() *TSTypeParameterDeclaration {
	return nil
}

// tsHooks extend the ECMAScript grammar with TypeScript. Overrides defer to the embedded coreHooks for everything
// that is not TypeScript specific.
type tsHooks struct {
	coreHooks
}

func (h *tsHooks) tryParseTypeParameters() *TSTypeParameterDeclaration {
	return h.p.tsTryParseTypeParameters(h.p.tsParseConstModifier)
}

////////////////////////////////////////////////////////////////

// parseMaybeAssign tries a generic arrow function and a type assertion when the expression starts with <.
func (h *tsHooks) parseMaybeAssign(refErrors *exprErrors, parenItem bool) IExpr {
	p := h.p
	if !p.match(LtToken) {
		return h.coreHooks.parseMaybeAssign(refErrors, parenItem)
	}

	start := p.loc()
	genericArrow := func() (Node, bool) {
		typeParams := p.tsParseTypeParameters(p.tsParseConstModifier)
		expr := h.coreHooks.parseMaybeAssign(refErrors, parenItem)
		arrow, ok := expr.(*ArrowFunctionExpression)
		if !ok || arrow.Parenthesized {
			return nil, true
		}
		if p.o.DisallowAmbiguousJSXLike && len(typeParams.Params) == 1 && typeParams.Params[0].Constraint == nil {
			if _, ok := p.trailingCommas[typeParams]; !ok {
				p.raise(TSReservedArrowTypeParam, typeParams.Start)
			}
		}
		arrow.TypeParameters = typeParams
		p.resetStart(arrow, start)
		return arrow, false
	}

	arrow := p.tryParse(genericArrow)
	if arrow.ok() {
		return arrow.node.(IExpr)
	}
	typeCast := p.tryParse(func() (Node, bool) {
		return h.coreHooks.parseMaybeAssign(refErrors, parenItem), false
	})
	if typeCast.ok() {
		return typeCast.node.(IExpr)
	}

	// both failed, report the errors of the generic arrow if it parsed as one
	if !arrow.aborted {
		if node, _ := genericArrow(); node != nil {
			return node.(IExpr)
		}
	}
	return h.coreHooks.parseMaybeAssign(refErrors, parenItem)
}

// parseMaybeUnary parses a type assertion <T>x.
func (h *tsHooks) parseMaybeUnary(refErrors *exprErrors, sawUnary bool) IExpr {
	p := h.p
	if !p.match(LtToken) {
		return h.coreHooks.parseMaybeUnary(refErrors, sawUnary)
	}
	start := p.loc()
	if p.o.DisallowAmbiguousJSXLike {
		p.raise(TSReservedTypeAssertion, start)
	}
	n := &TSTypeAssertion{}
	p.tsInType(func() {
		p.next()
		if p.match(ConstToken) {
			constStart := p.loc()
			ref := &TSTypeReference{TypeName: p.parseIdentifier(true)}
			n.TypeAnnotation = finish(p, ref, constStart)
		} else {
			n.TypeAnnotation = p.tsParseType()
		}
	})
	p.expectTypeClose()
	n.Expression = p.h.parseMaybeUnary(nil, false)
	return finish(p, n, start)
}

// parseExprOp parses the as and satisfies operators, which bind like relational operators.
func (h *tsHooks) parseExprOp(left IExpr, start Position, minPrec OpPrec) IExpr {
	p := h.p
	if minPrec < OpCompare && !p.hasPrecedingLineBreak() && (p.isContextual("as") || p.isContextual("satisfies")) {
		satisfies := p.isContextual("satisfies")
		p.next()
		var t ITSType
		p.tsInType(func() {
			if p.match(ConstToken) {
				if satisfies {
					p.raise(UnexpectedKeyword, p.loc(), "const")
				}
				constStart := p.loc()
				ref := &TSTypeReference{TypeName: p.parseIdentifier(true)}
				t = finish(p, ref, constStart)
			} else {
				t = p.tsParseType()
			}
		})
		var n IExpr
		if satisfies {
			n = finish(p, &TSSatisfiesExpression{Expression: left, TypeAnnotation: t}, start)
		} else {
			n = finish(p, &TSAsExpression{Expression: left, TypeAnnotation: t}, start)
		}
		p.rescanGt()
		return p.h.parseExprOp(n, start, minPrec)
	}
	return h.coreHooks.parseExprOp(left, start, minPrec)
}

// parseConditional stops at the ? of an optional arrow parameter such as (x?: T) or (x?) => x.
func (h *tsHooks) parseConditional(expr IExpr, start Position, refErrors *exprErrors) IExpr {
	p := h.p
	if !p.s.maybeInArrowParameters || !p.match(QuestionToken) {
		return h.coreHooks.parseConditional(expr, start, refErrors)
	}
	switch p.lookaheadCharCode() {
	case ',', '=', ':', ')':
		if refErrors != nil {
			setOnce(&refErrors.optionalParams, p.loc())
		}
		return expr
	}
	return h.coreHooks.parseConditional(expr, start, refErrors)
}

// parseParenItem parses the optional marker and type annotation of a parenthesized item, which are only valid if the
// list turns out to be arrow parameters.
func (h *tsHooks) parseParenItem(n Node, start Position) Node {
	p := h.p
	n = h.coreHooks.parseParenItem(n, start)
	if p.eat(QuestionToken) {
		if id, ok := n.(*Identifier); ok {
			id.Optional = true
			id.End = p.s.prevEndLoc
		}
	}
	if !p.match(ColonToken) {
		return n
	}
	if rest, ok := n.(*RestElement); ok {
		rest.TypeAnnotation = p.tsParseTypeAnnotation()
		rest.End = p.s.prevEndLoc
		return rest
	}
	expr, ok := n.(IExpr)
	if !ok {
		return n
	}
	cast := &TSTypeCastExpression{Expression: expr, TypeAnnotation: p.tsParseTypeAnnotation()}
	return finish(p, cast, start)
}

func (h *tsHooks) shouldParseArrow(params []Node) bool {
	p := h.p
	if p.match(ColonToken) {
		for _, param := range params {
			if !p.isAssignable(param, true) {
				return false
			}
		}
		return true
	}
	return h.coreHooks.shouldParseArrow(params)
}

// parseArrow parses the return type of an arrow function. It fails if no => follows the type.
func (h *tsHooks) parseArrow() (*TSTypeAnnotation, bool) {
	p := h.p
	if !p.match(ColonToken) {
		return h.coreHooks.parseArrow()
	}
	res := p.tryParse(func() (Node, bool) {
		returnType := p.tsParseTypeOrTypePredicateAnnotation(ColonToken)
		if p.canInsertSemicolon() || !p.match(ArrowToken) {
			return nil, true
		}
		return returnType, false
	})
	if res.aborted {
		return nil, false
	}
	var returnType *TSTypeAnnotation
	if res.err != nil {
		// the arrow is certain, report the errors of its return type
		returnType = p.tsParseTypeOrTypePredicateAnnotation(ColonToken)
	} else {
		returnType = res.node.(*TSTypeAnnotation)
	}
	if _, ok := h.coreHooks.parseArrow(); !ok {
		return nil, false
	}
	return returnType, true
}

// parseSubscript parses non-null assertions x!, type arguments of calls f<T>(), tagged templates f<T>`x` and
// instantiation expressions f<T>.
func (h *tsHooks) parseSubscript(base IExpr, start Position, noCalls bool, st *subscriptState) IExpr {
	p := h.p
	if !p.hasPrecedingLineBreak() && p.match(NotToken) {
		p.next()
		return finish(p, &TSNonNullExpression{Expression: base}, start)
	}

	optionalCall := false
	if p.match(OptChainToken) && p.lookaheadCharCode() == '<' {
		if noCalls {
			st.stop = true
			return base
		}
		st.optionalChainMember, optionalCall = true, true
		p.next()
	}

	if p.match(LtToken) || p.match(LtLtToken) {
		var missingParen *Position
		res := p.tryParse(func() (Node, bool) {
			if !noCalls && p.atPossibleAsyncArrow(base) {
				if arrow := p.tsTryParseGenericAsyncArrowFunction(start); arrow != nil {
					return arrow, false
				}
			}
			typeArgs := p.tsParseTypeArgumentsInExpression()
			if typeArgs == nil {
				return nil, true
			}
			if optionalCall && !p.match(OpenParenToken) {
				loc := p.loc()
				missingParen = &loc
				return nil, true
			}
			if p.match(TemplateToken) {
				return p.parseTaggedTemplate(base, start, st, typeArgs), false
			}
			if !noCalls && p.eat(OpenParenToken) {
				n := &CallExpression{Callee: base, TypeParameters: typeArgs, InChain: st.optionalChainMember}
				if st.optionalChainMember {
					n.Optional = optionalCall
				}
				n.Arguments, _ = p.parseCallArguments(false, nil)
				p.checkTypeCasts(asNodes(n.Arguments))
				return p.finishCallExpression(n, start), false
			}
			tt := p.s.tok.Type
			if tt == GtToken || tt == GtGtToken || tt != OpenParenToken && tt.startsExpr() && !p.hasPrecedingLineBreak() {
				return nil, true
			}
			return finish(p, &TSInstantiationExpression{Expression: base, TypeParameters: typeArgs}, start), false
		})
		if missingParen != nil {
			p.unexpectedAt(*missingParen)
		}
		if res.ok() && res.node != nil {
			if _, ok := res.node.(*TSInstantiationExpression); ok {
				if p.match(DotToken) || p.match(OptChainToken) && p.lookaheadCharCode() != '(' {
					p.raise(TSInvalidPropertyAccessAfterInstantiationExpression, p.loc())
				}
			} else if _, ok := res.node.(*ArrowFunctionExpression); ok {
				st.stop = true
			}
			return res.node.(IExpr)
		}
	}
	return h.coreHooks.parseSubscript(base, start, noCalls, st)
}

// tsTryParseGenericAsyncArrowFunction parses async <T>(x: T) => x after the async.
func (p *Parser) tsTryParseGenericAsyncArrowFunction(start Position) *ArrowFunctionExpression {
	if !p.match(LtToken) {
		return nil
	}
	oldMaybeInArrowParameters := p.s.maybeInArrowParameters
	p.s.maybeInArrowParameters = true
	f := &Function{Async: true}
	var returnType *TSTypeAnnotation
	res := p.tryParse(func() (Node, bool) {
		f.TypeParameters = p.tsParseTypeParameters(p.tsParseConstModifier)
		p.coreParseFunctionParams(f, false)
		returnType = p.tsTryParseTypeOrTypePredicateAnnotation()
		if !p.expect(ArrowToken) {
			return nil, true
		}
		return f.TypeParameters, false
	})
	p.s.maybeInArrowParameters = oldMaybeInArrowParameters
	if !res.ok() {
		return nil
	}
	return p.parseArrowFunction(start, f, nil, nil, returnType)
}

func (h *tsHooks) parseNewCallee(n *NewExpression) {
	h.coreHooks.parseNewCallee(n)
	if inst, ok := n.Callee.(*TSInstantiationExpression); ok && !inst.Parenthesized {
		n.TypeParameters = inst.TypeParameters
		n.Callee = inst.Expression
	}
}

////////////////////////////////////////////////////////////////

func (h *tsHooks) parseFunctionParams(f *Function, isConstructor bool) {
	p := h.p
	if p.match(LtToken) {
		f.TypeParameters = p.tsParseTypeParameters(p.tsParseConstModifier)
	}
	h.coreHooks.parseFunctionParams(f, isConstructor)
}

// coreParseFunctionParams parses a parenthesized parameter list without type parameters.
func (p *Parser) coreParseFunctionParams(f *Function, isConstructor bool) {
	core := coreHooks{p}
	core.parseFunctionParams(f, isConstructor)
}

// parseFunctionBodyAndFinish parses the return type and the body, which may be omitted for overloads and ambient
// declarations. It returns true if the body is omitted.
func (h *tsHooks) parseFunctionBodyAndFinish(f *Function, n Node, kind functionKind) bool {
	p := h.p
	if p.match(ColonToken) {
		f.ReturnType = p.tsParseTypeOrTypePredicateAnnotation(ColonToken)
	}
	if (kind == functionDeclaration || kind == functionClassMethod) && !p.match(OpenBraceToken) && p.isLineTerminator() {
		return true
	}
	if kind == functionDeclaration && p.s.isAmbientContext {
		p.raise(TSDeclareFunctionHasImplementation, p.loc())
	}
	return h.coreHooks.parseFunctionBodyAndFinish(f, n, kind)
}

// registerFunctionStatementID binds overloads and ambient functions without a body as ambient names, which may be
// redeclared by the implementation.
func (h *tsHooks) registerFunctionStatementID(f *Function) {
	p := h.p
	if f.Body == nil && f.ID != nil {
		p.declareName(f.ID.Name, bindTSAmbient, f.ID.Start)
		return
	}
	h.coreHooks.registerFunctionStatementID(f)
}

////////////////////////////////////////////////////////////////

// parseBindingAtom allows this as the name of the first parameter, declaring the type of this.
func (h *tsHooks) parseBindingAtom() IPattern {
	p := h.p
	if p.match(ThisToken) {
		return p.parseIdentifier(true)
	}
	return h.coreHooks.parseBindingAtom()
}

// parseAssignableListItem parses a parameter, which in a constructor may be a parameter property with accessibility,
// override or readonly modifiers.
func (h *tsHooks) parseAssignableListItem(flags bindingListFlags, decorators []*Decorator) IPattern {
	p := h.p
	start := p.loc()
	m := p.tsParseModifiers([]string{"public", "private", "protected", "override", "readonly"}, nil, false, 0)
	if !m.empty() && flags&bindingListConstructorParams == 0 {
		p.raise(TSUnexpectedParameterModifier, start)
	}

	left := p.parseMaybeDefault(p.loc(), nil)
	if flags&bindingListFunctionParams != 0 {
		left = p.h.parseFunctionParamType(left)
	}
	elem := p.parseMaybeDefault(left.Base().Start, left)
	if m.empty() {
		p.setParamDecorators(left, decorators)
		return elem
	}

	n := &TSParameterProperty{
		Parameter:     elem,
		Accessibility: m.accessibility,
		Readonly:      m.has("readonly"),
		Override:      m.has("override"),
		Decorators:    decorators,
	}
	switch elem.(type) {
	case *Identifier, *AssignmentPattern:
	default:
		p.raise(TSUnsupportedParameterPropertyKind, start)
	}
	return finish(p, n, start)
}

// parseFunctionParamType parses the optional marker and type annotation of a parameter.
func (h *tsHooks) parseFunctionParamType(param IPattern) IPattern {
	p := h.p
	if p.eat(QuestionToken) {
		id, ok := param.(*Identifier)
		if !ok && !p.s.isAmbientContext && !p.s.inType {
			p.raise(TSPatternIsOptional, param.Base().Start)
		} else if ok {
			id.Optional = true
		}
		param.Base().End = p.s.prevEndLoc
	}
	if !p.match(ColonToken) {
		return param
	}
	if _, ok := param.(*AssignmentPattern); ok {
		p.raise(TSTypeAnnotationAfterAssign, p.loc())
		p.tsParseTypeAnnotation()
		return param
	}
	p.setPatternTypeAnnotation(param, p.tsParseTypeAnnotation())
	param.Base().End = p.s.prevEndLoc
	return param
}

// setPatternTypeAnnotation attaches a type annotation to a binding that can carry one.
func (p *Parser) setPatternTypeAnnotation(n IPattern, t *TSTypeAnnotation) {
	switch n := n.(type) {
	case *Identifier:
		n.TypeAnnotation = t
	case *ObjectPattern:
		n.TypeAnnotation = t
	case *ArrayPattern:
		n.TypeAnnotation = t
	case *RestElement:
		n.TypeAnnotation = t
	default:
		p.raise(TSUnexpectedTypeAnnotation, t.Start)
	}
}

func (h *tsHooks) parseCatchClauseParamType(param IPattern) IPattern {
	p := h.p
	if t := p.tsTryParseTypeAnnotation(); t != nil {
		p.setPatternTypeAnnotation(param, t)
		param.Base().End = p.s.prevEndLoc
	}
	return param
}

// parseVarID parses the definite assignment assertion and the type annotation of a declarator.
func (h *tsHooks) parseVarID(decl *VariableDeclarator, kind string) {
	p := h.p
	h.coreHooks.parseVarID(decl, kind)
	if _, ok := decl.ID.(*Identifier); ok && !p.hasPrecedingLineBreak() && p.eat(NotToken) {
		decl.Definite = true
	}
	if t := p.tsTryParseTypeAnnotation(); t != nil {
		p.setPatternTypeAnnotation(decl.ID, t)
		decl.ID.Base().End = p.s.prevEndLoc
	}
}
