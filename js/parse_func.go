package js

// functionKind is the syntactic form of a function, which decides whether its body may be omitted.
type functionKind int

const (
	functionDeclaration functionKind = iota
	functionExpression
	functionClassMethod
	functionObjectMethod
)

// parseFunctionStatement parses a function declaration after the function keyword. A hanging declaration is the
// body of an if statement or label, which cannot be a generator and is not bound in the enclosing scope.
func (p *Parser) parseFunctionStatement(start Position, async, hanging bool) IStmt {
	f := Function{Async: async}
	if p.match(MulToken) {
		if hanging {
			p.raise(GeneratorInSingleStatementContext, p.loc())
		}
		p.next()
		f.Generator = true
	}
	f.ID = p.parseFunctionID(true)
	n := &FunctionDeclaration{}
	bodiless := p.parseFunction(&f, n, functionDeclaration)
	n.Function = f
	if !hanging {
		p.h.registerFunctionStatementID(&n.Function)
	}
	if bodiless {
		return finish(p, &TSDeclareFunction{Function: f}, start)
	}
	return finish(p, n, start)
}

// parseFunctionExpression parses a function expression after the function keyword.
func (p *Parser) parseFunctionExpression(start Position, async bool) IExpr {
	f := Function{Async: async}
	if p.eat(MulToken) {
		f.Generator = true
	}
	n := &FunctionExpression{}
	p.parseFunction(&f, n, functionExpression)
	n.Function = f
	return finish(p, n, start)
}

// parseExportDefaultFunction parses `export default function`, of which the name is optional.
func (p *Parser) parseExportDefaultFunction(start Position, async bool) IStmt {
	f := Function{Async: async}
	if p.eat(MulToken) {
		f.Generator = true
	}
	f.ID = p.parseFunctionID(false)
	n := &FunctionDeclaration{}
	bodiless := p.parseFunction(&f, n, functionDeclaration)
	n.Function = f
	p.h.registerFunctionStatementID(&n.Function)
	if bodiless {
		return finish(p, &TSDeclareFunction{Function: f}, start)
	}
	return finish(p, n, start)
}

func (p *Parser) parseFunctionID(required bool) *Identifier {
	if required || p.isIdentifier() {
		return p.parseIdentifier(false)
	}
	return nil
}

// parseFunction parses the name of a function expression, the parameters and the body. It returns true if the
// body is omitted, as for TypeScript overloads.
func (p *Parser) parseFunction(f *Function, n Node, kind functionKind) bool {
	oldMaybeInArrowParameters := p.s.maybeInArrowParameters
	p.s.maybeInArrowParameters = false
	p.scopeEnter(scopeFunction)
	p.prodParamEnter(functionFlags(f.Async, f.Generator))
	if kind == functionExpression {
		f.ID = p.parseFunctionID(false)
	}
	p.h.parseFunctionParams(f, false)
	bodiless := p.h.parseFunctionBodyAndFinish(f, n, kind)
	p.prodParamExit()
	p.scopeExit()
	p.s.maybeInArrowParameters = oldMaybeInArrowParameters
	return bodiless
}

// parseMethod parses the parameters and body of an object or class method. The name and modifiers are parsed by the
// caller.
func (p *Parser) parseMethod(f *Function, n Node, kind functionKind, isConstructor, allowDirectSuper, inClassScope bool) bool {
	flags := scopeFunction | scopeSuper
	if inClassScope {
		flags |= scopeClass
	}
	if allowDirectSuper {
		flags |= scopeDirectSuper
	}
	p.scopeEnter(flags)
	p.prodParamEnter(functionFlags(f.Async, f.Generator))
	p.h.parseFunctionParams(f, isConstructor)
	bodiless := p.h.parseFunctionBodyAndFinish(f, n, kind)
	p.prodParamExit()
	p.scopeExit()
	return bodiless
}

func (h *coreHooks) parseFunctionParams(f *Function, isConstructor bool) {
	p := h.p
	p.expect(OpenParenToken)
	p.exprScopeEnter(exprScopeParameterDeclaration)
	flags := bindingListFunctionParams
	if isConstructor {
		flags |= bindingListConstructorParams
	}
	f.Params = p.parseBindingList(CloseParenToken, ')', flags)
	p.exprScopeExit()
}

func (h *coreHooks) parseFunctionBodyAndFinish(f *Function, n Node, kind functionKind) bool {
	p := h.p
	body, _ := p.parseFunctionBody(f, n, false, kind == functionClassMethod || kind == functionObjectMethod)
	f.Body, _ = body.(*BlockStatement)
	return false
}

// parseFunctionBody parses a block body, or an expression body for arrows when allowExpression is set. The
// parameters are checked once it is known whether the body is strict.
func (p *Parser) parseFunctionBody(f *Function, n Node, allowExpression, isMethod bool) (Node, bool) {
	p.exprScopeEnter(exprScopePlain)
	defer p.exprScopeExit()

	if allowExpression && !p.match(OpenBraceToken) {
		body := p.parseMaybeAssign(nil, false)
		p.checkParams(f, false, true, false)
		return body, true
	}

	oldStrict := p.s.strict
	oldLabels := p.s.labels
	p.s.labels = nil
	p.prodParamEnter(p.prodParam() | paramReturn)
	body := p.parseBlock(true, false, func(hasStrictModeDirective bool) {
		nonSimple := !p.isSimpleParamList(f.Params)
		if hasStrictModeDirective && nonSimple {
			loc := n.Base().Start
			if key := methodKey(n); key != nil {
				loc = key.Base().End
			}
			p.raise(IllegalLanguageModeDirective, loc)
		}
		strictModeChanged := !oldStrict && p.s.strict
		p.checkParams(f, !p.s.strict && !allowExpression && !isMethod && !nonSimple, allowExpression, strictModeChanged)
		if p.s.strict && f.ID != nil {
			p.checkIdentifier(f.ID, bindOutside, strictModeChanged)
		}
	})
	p.prodParamExit()
	p.s.labels = oldLabels
	return body, false
}

func methodKey(n Node) IExpr {
	switch n := n.(type) {
	case *ClassMethod:
		return n.Key
	case *ObjectMethod:
		return n.Key
	}
	return nil
}

func (p *Parser) isSimpleParamList(params []IPattern) bool {
	for _, param := range params {
		if id, ok := param.(*Identifier); !ok || 0 < len(id.Decorators) {
			return false
		}
	}
	return true
}

// checkParams declares the parameters in the function scope. Duplicates are allowed only for simple parameter lists
// of sloppy functions.
func (p *Parser) checkParams(f *Function, allowDuplicates, isArrow, strictModeChanged bool) {
	ctx := lvalContext{in: "function parameter list", binding: bindVar, strictModeChanged: strictModeChanged}
	if !allowDuplicates {
		ctx.clashes = map[string]bool{}
	}
	for _, param := range f.Params {
		if prop, ok := param.(*TSParameterProperty); ok {
			param = prop.Parameter
		}
		p.checkLVal(param, ctx)
	}
}

// registerFunctionStatementID declares the name of a function declaration in the enclosing scope. This happens after
// the body is parsed, so that bodiless overloads are not bound.
func (h *coreHooks) registerFunctionStatementID(f *Function) {
	p := h.p
	if f.ID == nil {
		return
	}
	binding := bindFunction
	if !p.o.AnnexB || p.s.strict || f.Generator || f.Async {
		if p.treatFunctionsAsVar() {
			binding = bindVar
		} else {
			binding = bindLexical
		}
	}
	p.declareName(f.ID.Name, binding, f.ID.Start)
}
