package js

// exprErrors collects errors of an expression that only apply if it does not turn out to be a pattern, such as the
// shorthand initializer in ({a = 1}).
type exprErrors struct {
	shorthandAssign *Position
	doubleProto     *Position
	privateKey      *Position
	optionalParams  *Position
}

func setOnce(loc **Position, pos Position) {
	if *loc == nil {
		*loc = &pos
	}
}

// checkExpressionErrors returns whether errors were collected, and raises them if andThrow is set.
func (p *Parser) checkExpressionErrors(refErrors *exprErrors, andThrow bool) bool {
	if refErrors == nil {
		return false
	}
	hasErrors := refErrors.shorthandAssign != nil || refErrors.doubleProto != nil || refErrors.privateKey != nil ||
		refErrors.optionalParams != nil
	if !andThrow {
		return hasErrors
	}
	if refErrors.shorthandAssign != nil {
		p.raise(InvalidCoverInitializedName, *refErrors.shorthandAssign)
	}
	if refErrors.doubleProto != nil {
		p.raise(DuplicateProto, *refErrors.doubleProto)
	}
	if refErrors.privateKey != nil {
		p.raise(UnexpectedPrivateField, *refErrors.privateKey)
	}
	if refErrors.optionalParams != nil {
		p.unexpectedAt(*refErrors.optionalParams)
	}
	return hasErrors
}

////////////////////////////////////////////////////////////////

func (p *Parser) parseExpression() IExpr {
	return p.parseExpressionIn(true, nil)
}

// parseExpressionIn parses a comma separated expression with the in operator allowed or not.
func (p *Parser) parseExpressionIn(allowIn bool, refErrors *exprErrors) IExpr {
	var expr IExpr
	p.withIn(allowIn, func() { expr = p.parseExpressionBase(refErrors) })
	return expr
}

func (p *Parser) parseExpressionBase(refErrors *exprErrors) IExpr {
	start := p.loc()
	expr := p.parseMaybeAssign(refErrors, false)
	if !p.match(CommaToken) {
		return expr
	}
	n := &SequenceExpression{Expressions: []IExpr{expr}}
	for p.eat(CommaToken) {
		n.Expressions = append(n.Expressions, p.parseMaybeAssign(refErrors, false))
	}
	p.checkTypeCasts(asNodes(n.Expressions))
	return finish(p, n, start)
}

// parseMaybeAssign parses an assignment expression. With parenItem set, the left-hand side is an item of a
// parenthesized list, which may carry a type annotation.
func (p *Parser) parseMaybeAssign(refErrors *exprErrors, parenItem bool) IExpr {
	return p.h.parseMaybeAssign(refErrors, parenItem)
}

func (p *Parser) parseMaybeAssignAllowIn(refErrors *exprErrors, parenItem bool) IExpr {
	var expr IExpr
	p.withIn(true, func() { expr = p.parseMaybeAssign(refErrors, parenItem) })
	return expr
}

func (p *Parser) parseMaybeAssignDisallowIn(refErrors *exprErrors, parenItem bool) IExpr {
	var expr IExpr
	p.withIn(false, func() { expr = p.parseMaybeAssign(refErrors, parenItem) })
	return expr
}

func (h *coreHooks) parseMaybeAssign(refErrors *exprErrors, parenItem bool) IExpr {
	p := h.p
	start := p.loc()
	if p.isContextual("yield") && p.hasYield() {
		left := p.parseYield(start)
		if parenItem {
			left = p.h.parseParenItem(left, start).(IExpr)
		}
		return left
	}

	ownErrors := refErrors == nil
	if ownErrors {
		refErrors = &exprErrors{}
	}
	if p.match(OpenParenToken) || p.isIdentifier() {
		p.s.potentialArrowAt = p.s.tok.Start
	}
	left := p.parseMaybeConditional(refErrors)
	if parenItem {
		left = p.h.parseParenItem(left, start).(IExpr)
	}
	if !IsAssignment(p.s.tok.Type) {
		if ownErrors {
			p.checkExpressionErrors(refErrors, true)
		}
		return left
	}

	op := p.s.tok.Type
	var target IPattern
	if op == EqToken {
		target = p.toAssignable(left, true)
		if refErrors.doubleProto != nil && start.Index <= refErrors.doubleProto.Index {
			refErrors.doubleProto = nil
		}
		if refErrors.shorthandAssign != nil && start.Index <= refErrors.shorthandAssign.Index {
			refErrors.shorthandAssign = nil
		}
		if refErrors.privateKey != nil && start.Index <= refErrors.privateKey.Index {
			p.raise(UnexpectedPrivateField, *refErrors.privateKey)
			refErrors.privateKey = nil
		}
	} else {
		target = p.checkSimpleTarget(left, "assignment expression")
	}
	p.next()
	right := p.parseMaybeAssign(nil, false)
	n := finish(p, &AssignmentExpression{Operator: op, Left: target, Right: right}, start)
	p.checkLVal(target, lvalContext{in: "assignment expression", binding: bindNone})
	return n
}

func (p *Parser) parseYield(start Position) IExpr {
	p.next()
	p.recordParameterInitializerError(YieldInParameter, start)
	n := &YieldExpression{}
	if !p.hasPrecedingLineBreak() {
		n.Delegate = p.eat(MulToken)
		switch p.s.tok.Type {
		case SemicolonToken, ErrorToken, CloseBraceToken, CloseParenToken, CloseBracketToken, ColonToken, CommaToken:
			if n.Delegate {
				n.Argument = p.parseMaybeAssign(nil, false)
			}
		default:
			n.Argument = p.parseMaybeAssign(nil, false)
		}
	}
	return finish(p, n, start)
}

func (p *Parser) parseMaybeConditional(refErrors *exprErrors) IExpr {
	start := p.loc()
	potentialArrowAt := p.s.potentialArrowAt
	expr := p.parseExprOps(refErrors)
	if p.shouldExitDescending(expr, potentialArrowAt) {
		return expr
	}
	return p.h.parseConditional(expr, start, refErrors)
}

func (h *coreHooks) parseConditional(expr IExpr, start Position, refErrors *exprErrors) IExpr {
	p := h.p
	if !p.eat(QuestionToken) {
		return expr
	}
	n := &ConditionalExpression{Test: expr}
	n.Consequent = p.parseMaybeAssignAllowIn(nil, false)
	p.expect(ColonToken)
	n.Alternate = p.parseMaybeAssign(nil, false)
	return finish(p, n, start)
}

// shouldExitDescending returns true for an arrow function that started at the potential arrow position, which cannot
// be the operand of an operator.
func (p *Parser) shouldExitDescending(expr IExpr, potentialArrowAt int) bool {
	arrow, ok := expr.(*ArrowFunctionExpression)
	return ok && arrow.Start.Index == potentialArrowAt
}

func (p *Parser) parseExprOps(refErrors *exprErrors) IExpr {
	start := p.loc()
	potentialArrowAt := p.s.potentialArrowAt
	expr := p.parseMaybeUnaryOrPrivate(refErrors)
	if p.shouldExitDescending(expr, potentialArrowAt) {
		return expr
	}
	return p.h.parseExprOp(expr, start, OpEnd)
}

// parseExprOp parses binary operators of higher precedence than minPrec with left as the left operand.
func (h *coreHooks) parseExprOp(left IExpr, start Position, minPrec OpPrec) IExpr {
	p := h.p
	if name, ok := left.(*PrivateName); ok {
		if OpCompare <= minPrec || !p.hasIn() || !p.match(InToken) {
			p.raise(PrivateInExpectedIn, name.Start, name.Name, name.Name)
		}
		p.usePrivateName(name.Name, name.Start)
	}

	op := p.s.tok.Type
	prec := op.binaryPrec()
	if prec == OpEnd || prec <= minPrec || op == InToken && !p.hasIn() {
		return left
	}
	logical := op == OrToken || op == AndToken
	coalesce := op == NullishToken
	if coalesce {
		prec = AndToken.binaryPrec()
	}
	p.next()

	rightStart := p.loc()
	rightPrec := prec
	if tokens[op].rightAssoc {
		rightPrec--
	}
	right := p.h.parseExprOp(p.parseMaybeUnaryOrPrivate(nil), rightStart, rightPrec)

	var n IExpr
	if logical || coalesce {
		n = finish(p, &LogicalExpression{Operator: op, Left: left, Right: right}, start)
	} else {
		n = finish(p, &BinaryExpression{Operator: op, Left: left, Right: right}, start)
	}
	if next := p.s.tok.Type; coalesce && (next == OrToken || next == AndToken) || logical && next == NullishToken {
		p.raise(MixingCoalesceWithLogical, p.loc())
	}
	return p.h.parseExprOp(n, start, minPrec)
}

func (p *Parser) parseMaybeUnaryOrPrivate(refErrors *exprErrors) IExpr {
	if p.match(PrivateIdentifierToken) {
		return p.parsePrivateName()
	}
	return p.h.parseMaybeUnary(refErrors, false)
}

func (p *Parser) parsePrivateName() *PrivateName {
	start := p.loc()
	name := p.s.tok.Value
	p.next()
	return finish(p, &PrivateName{Name: name}, start)
}

func (h *coreHooks) parseMaybeUnary(refErrors *exprErrors, sawUnary bool) IExpr {
	p := h.p
	start := p.loc()
	if p.isContextual("await") {
		if p.recordAwaitIfAllowed() {
			p.next()
			expr := p.parseAwait(start)
			if !sawUnary {
				p.checkExponentialAfterUnary(expr.Argument)
			}
			return expr
		} else if p.awaitStartsExpression() {
			code := AwaitNotInAsyncContext
			if p.inFunction() {
				code = AwaitNotInAsyncFunction
			}
			p.raise(code, start)
			p.next()
			return p.parseAwait(start)
		}
	}

	op := p.s.tok.Type
	if op < numTokens && tokens[op].prefix {
		if op == ThrowToken {
			p.expectFeature(FeatureThrowExpressions, start)
		}
		p.next()
		arg := p.h.parseMaybeUnary(nil, true)
		p.checkExpressionErrors(refErrors, true)
		if op == IncrToken || op == DecrToken {
			target := p.checkSimpleTarget(arg, "prefix operation")
			n := finish(p, &UpdateExpression{Operator: op, Prefix: true, Argument: arg}, start)
			p.checkLVal(target, lvalContext{in: "prefix operation", binding: bindNone})
			return n
		}
		if p.s.strict && op == DeleteToken {
			if _, ok := arg.(*Identifier); ok {
				p.raise(StrictDelete, start)
			} else if hasPrivateProperty(arg) {
				p.raise(DeletePrivateField, start)
			}
		}
		n := finish(p, &UnaryExpression{Operator: op, Argument: arg}, start)
		if !sawUnary {
			p.checkExponentialAfterUnary(arg)
		}
		return n
	}
	return p.parseUpdate(start, refErrors)
}

func (p *Parser) checkExponentialAfterUnary(arg IExpr) {
	if p.match(ExpToken) && !isNil(arg) {
		p.raise(UnexpectedTokenUnaryExponentiation, arg.Base().Start)
	}
}

func hasPrivateProperty(expr IExpr) bool {
	if member, ok := expr.(*MemberExpression); ok {
		if _, ok := member.Property.(*PrivateName); ok {
			return true
		}
		return hasPrivateProperty(member.Object)
	}
	return false
}

func (p *Parser) parseUpdate(start Position, refErrors *exprErrors) IExpr {
	expr := p.parseExprSubscripts(refErrors)
	if p.checkExpressionErrors(refErrors, false) {
		return expr
	}
	for (p.match(IncrToken) || p.match(DecrToken)) && !p.canInsertSemicolon() {
		op := p.s.tok.Type
		target := p.checkSimpleTarget(expr, "postfix operation")
		p.next()
		expr = finish(p, &UpdateExpression{Operator: op, Argument: expr}, start)
		p.checkLVal(target, lvalContext{in: "postfix operation", binding: bindNone})
	}
	return expr
}

// recordAwaitIfAllowed returns true if await is an operator here, and records top-level await.
func (p *Parser) recordAwaitIfAllowed() bool {
	allowed := p.hasAwait() || p.o.AllowAwaitOutsideFunction && !p.inFunction()
	if allowed && !p.inFunction() {
		p.s.hasTopLevelAwait = true
	}
	return allowed
}

// awaitStartsExpression returns true if an await outside of an async context is unambiguously followed by its
// operand, such as in `await x`. Operators that could also be binary, like `await (x)` or `await / x /`, keep await
// an identifier.
func (p *Parser) awaitStartsExpression() bool {
	if p.hasFollowingLineBreak() {
		return false
	}
	next := p.lookahead()
	switch next.Type {
	case AddToken, SubToken, OpenParenToken, OpenBracketToken, TemplateToken, ModToken, DivToken, DivEqToken, LtToken:
		return false
	}
	return next.Type.startsExpr()
}

func (p *Parser) parseAwait(start Position) *AwaitExpression {
	p.recordParameterInitializerError(AwaitExpressionFormalParameter, start)
	if p.eat(MulToken) {
		p.raise(ObsoleteAwaitStar, start)
	}
	n := &AwaitExpression{Argument: p.h.parseMaybeUnary(nil, true)}
	return finish(p, n, start)
}

////////////////////////////////////////////////////////////////

type subscriptState struct {
	optionalChainMember bool
	maybeAsyncArrow     bool
	stop                bool
}

func (p *Parser) parseExprSubscripts(refErrors *exprErrors) IExpr {
	start := p.loc()
	potentialArrowAt := p.s.potentialArrowAt
	expr := p.parseExprAtom(refErrors)
	if p.shouldExitDescending(expr, potentialArrowAt) {
		return expr
	}
	return p.parseSubscripts(expr, start, false)
}

func (p *Parser) parseSubscripts(base IExpr, start Position, noCalls bool) IExpr {
	st := subscriptState{maybeAsyncArrow: p.atPossibleAsyncArrow(base)}
	for !st.stop {
		base = p.h.parseSubscript(base, start, noCalls, &st)
		st.maybeAsyncArrow = false
	}
	return base
}

// atPossibleAsyncArrow returns true if base is an unescaped async directly followed by the current token, at the
// position where an arrow function may start.
func (p *Parser) atPossibleAsyncArrow(base IExpr) bool {
	id, ok := base.(*Identifier)
	return ok && id.Name == "async" && p.s.prevEnd == id.End.Index && !p.canInsertSemicolon() &&
		id.End.Index-id.Start.Index == 5 && id.Start.Index == p.s.potentialArrowAt
}

func (h *coreHooks) parseSubscript(base IExpr, start Position, noCalls bool, st *subscriptState) IExpr {
	p := h.p
	if p.match(TemplateToken) {
		return p.parseTaggedTemplate(base, start, st, nil)
	}
	optional := false
	if p.match(OptChainToken) {
		if noCalls {
			p.raise(OptionalChainingNoNew, p.loc())
			if p.lookaheadCharCode() == '(' {
				st.stop = true
				return base
			}
		}
		st.optionalChainMember, optional = true, true
		p.next()
	}
	if !noCalls && p.match(OpenParenToken) {
		return p.parseCoverCallAndAsyncArrowHead(base, start, st, optional)
	}
	computed := p.eat(OpenBracketToken)
	if computed || optional || p.eat(DotToken) {
		return p.parseMember(base, start, st, computed, optional)
	}
	st.stop = true
	return base
}

func (p *Parser) parseMember(base IExpr, start Position, st *subscriptState, computed, optional bool) IExpr {
	n := &MemberExpression{Object: base, Computed: computed, InChain: st.optionalChainMember}
	if st.optionalChainMember {
		n.Optional = optional
	}
	if computed {
		n.Property = p.parseExpression()
		p.expect(CloseBracketToken)
	} else if p.match(PrivateIdentifierToken) {
		if _, ok := base.(*Super); ok {
			p.raise(SuperPrivateField, start)
		}
		p.usePrivateName(p.s.tok.Value, p.loc())
		n.Property = p.parsePrivateName()
	} else {
		n.Property = p.parseIdentifier(true)
	}
	return finish(p, n, start)
}

func (p *Parser) parseTaggedTemplate(base IExpr, start Position, st *subscriptState, typeArgs *TSTypeParameterInstantiation) IExpr {
	n := &TaggedTemplateExpression{Tag: base, TypeParameters: typeArgs}
	n.Quasi = p.parseTemplate(true)
	if st.optionalChainMember {
		p.raise(OptionalChainingNoTemplate, start)
	}
	return finish(p, n, start)
}

// parseCoverCallAndAsyncArrowHead parses call arguments, which may turn out to be the parameters of an async arrow
// function when the callee is async.
func (p *Parser) parseCoverCallAndAsyncArrowHead(base IExpr, start Position, st *subscriptState, optional bool) IExpr {
	oldMaybeInArrowParameters := p.s.maybeInArrowParameters
	p.s.maybeInArrowParameters = true
	p.next()

	var refErrors *exprErrors
	if st.maybeAsyncArrow {
		p.exprScopeEnter(exprScopeMaybeAsyncArrowParams)
		refErrors = &exprErrors{}
	}
	n := &CallExpression{Callee: base, InChain: st.optionalChainMember}
	if st.optionalChainMember {
		n.Optional = optional
	}
	var trailingComma *Position
	if optional {
		n.Arguments, trailingComma = p.parseCallArguments(false, nil)
	} else {
		_, isImport := base.(*Import)
		n.Arguments, trailingComma = p.parseCallArguments(isImport, refErrors)
	}
	call := p.finishCallExpression(n, start)

	var result IExpr = call
	if st.maybeAsyncArrow && p.shouldParseAsyncArrow() && !optional {
		st.stop = true
		if refErrors.privateKey != nil {
			p.raise(UnexpectedPrivateField, *refErrors.privateKey)
		}
		p.validateAsPattern()
		p.exprScopeExit()
		result = p.parseAsyncArrowFromCall(start, call, trailingComma)
	} else {
		if st.maybeAsyncArrow {
			p.checkExpressionErrors(refErrors, true)
			p.exprScopeExit()
		}
		p.checkTypeCasts(asNodes(call.Arguments))
	}
	p.s.maybeInArrowParameters = oldMaybeInArrowParameters
	return result
}

// parseCallArguments parses arguments up to and including the closing parenthesis. It returns the position of a
// trailing comma.
func (p *Parser) parseCallArguments(dynamicImport bool, refErrors *exprErrors) ([]IExpr, *Position) {
	args := []IExpr{}
	var trailingComma *Position
	first := true
	for !p.eat(CloseParenToken) {
		if !first {
			commaLoc := p.loc()
			if !p.expect(CommaToken) {
				break
			} else if p.eat(CloseParenToken) {
				trailingComma = &commaLoc
				break
			}
		}
		first = false
		args = append(args, p.parseExprListItem(false, refErrors, true))
	}
	return args, trailingComma
}

func (p *Parser) finishCallExpression(n *CallExpression, start Position) *CallExpression {
	if _, ok := n.Callee.(*Import); ok {
		if len(n.Arguments) == 0 || 2 < len(n.Arguments) {
			p.raise(ImportCallArity, start)
		} else {
			for _, arg := range n.Arguments {
				if spread, ok := arg.(*SpreadElement); ok {
					p.raise(ImportCallSpreadArgument, spread.Start)
				}
			}
		}
	}
	return finish(p, n, start)
}

func (p *Parser) shouldParseAsyncArrow() bool {
	return p.match(ArrowToken) && !p.canInsertSemicolon()
}

func (p *Parser) parseAsyncArrowFromCall(start Position, call *CallExpression, trailingComma *Position) IExpr {
	p.resetPreviousNodeTrailingComments(call)
	p.expect(ArrowToken)
	params := make([]Node, len(call.Arguments))
	for i, arg := range call.Arguments {
		params[i] = arg
	}
	arrow := p.parseArrowExpression(start, params, true, trailingComma, nil)
	if 0 < len(call.Inner) {
		p.setInnerComments(arrow, call.Inner)
	}
	if callee := call.Callee.Base(); 0 < len(callee.Trailing) {
		p.setInnerComments(arrow, callee.Trailing)
	}
	return arrow
}

// parseExprListItem parses an element of an array or argument list. A nil element is a hole.
func (p *Parser) parseExprListItem(allowEmpty bool, refErrors *exprErrors, parenItem bool) IExpr {
	if p.match(CommaToken) {
		if !allowEmpty {
			p.raise(UnexpectedToken, p.loc(), ` ","`)
		}
		return nil
	} else if p.match(EllipsisToken) {
		start := p.loc()
		spread := p.parseSpread(refErrors)
		if parenItem {
			return p.h.parseParenItem(spread, start).(IExpr)
		}
		return spread
	}
	return p.parseMaybeAssignAllowIn(refErrors, parenItem)
}

func (p *Parser) parseSpread(refErrors *exprErrors) *SpreadElement {
	start := p.loc()
	p.next()
	n := &SpreadElement{Argument: p.parseMaybeAssignAllowIn(refErrors, false)}
	return finish(p, n, start)
}

// parseExprList parses a list of elements up to and including the close token.
func (p *Parser) parseExprList(close TokenType, allowEmpty bool, refErrors *exprErrors) ([]IExpr, *Position) {
	elements := []IExpr{}
	var trailingComma *Position
	first := true
	for !p.eat(close) {
		if !first {
			commaLoc := p.loc()
			if !p.expect(CommaToken) {
				break
			} else if p.eat(close) {
				trailingComma = &commaLoc
				break
			}
		}
		first = false
		elements = append(elements, p.parseExprListItem(allowEmpty, refErrors, false))
	}
	return elements, trailingComma
}

////////////////////////////////////////////////////////////////

func (p *Parser) parseExprAtom(refErrors *exprErrors) IExpr {
	start := p.loc()
	switch p.s.tok.Type {
	case SuperToken:
		return p.parseSuper()
	case ImportToken:
		p.next()
		if p.match(DotToken) {
			return p.parseImportMetaProperty(start)
		} else if !p.match(OpenParenToken) {
			p.raise(UnsupportedImport, start)
		}
		return finish(p, &Import{}, start)
	case ThisToken:
		p.next()
		return finish(p, &ThisExpression{}, start)
	case DivToken, DivEqToken:
		p.readRegExp()
		tok := p.s.tok
		p.next()
		return finish(p, &RegExpLiteral{Pattern: tok.Value, Flags: tok.Flags}, start)
	case NumericToken, BigIntToken, DecimalToken, StringToken:
		return p.parseLiteral()
	case NullToken:
		p.next()
		return finish(p, &NullLiteral{}, start)
	case TrueToken, FalseToken:
		value := p.match(TrueToken)
		p.next()
		return finish(p, &BooleanLiteral{Value: value}, start)
	case OpenParenToken:
		canBeArrow := p.s.potentialArrowAt == p.s.tok.Start
		return p.parseParenAndDistinguishExpression(canBeArrow)
	case HashBracketToken:
		p.expectFeature(FeatureRecordAndTuple, start)
		p.next()
		elements, _ := p.parseExprList(CloseBracketToken, false, nil)
		return finish(p, &TupleExpression{Elements: elements}, start)
	case OpenBracketToken:
		p.next()
		n := &ArrayExpression{}
		var trailingComma *Position
		n.Elements, trailingComma = p.parseExprList(CloseBracketToken, true, refErrors)
		p.setTrailingComma(n, trailingComma)
		return finish(p, n, start)
	case HashBraceToken:
		p.expectFeature(FeatureRecordAndTuple, start)
		return p.parseObjectLike(true, refErrors)
	case OpenBraceToken:
		return p.parseObjectLike(false, refErrors)
	case FunctionToken:
		p.next()
		return p.parseFunctionExpression(start, false)
	case AtToken:
		decorators := p.parseDecorators(false)
		return p.parseClassExpression(start, decorators)
	case ClassToken:
		return p.parseClassExpression(start, nil)
	case NewToken:
		return p.parseNewOrNewTarget()
	case TemplateToken:
		return p.parseTemplate(false)
	case PrivateIdentifierToken:
		name := p.s.tok.Value
		n := p.parsePrivateName()
		if p.match(InToken) {
			p.usePrivateName(name, start)
		} else {
			p.raise(PrivateInExpectedIn, start, name, name)
		}
		return n
	case IdentifierToken:
		canBeArrow := p.s.potentialArrowAt == p.s.tok.Start
		escaped := p.s.tok.Escaped
		id := p.parseIdentifier(false)
		if !escaped && id.Name == "async" && !p.canInsertSemicolon() {
			if p.match(FunctionToken) {
				p.resetPreviousNodeTrailingComments(id)
				p.next()
				return p.parseFunctionExpression(start, true)
			} else if p.isIdentifier() {
				if p.lookaheadCharCode() == '=' {
					return p.parseAsyncArrowUnaryFunction(start)
				}
				return id
			}
		}
		if canBeArrow && p.match(ArrowToken) && !p.canInsertSemicolon() {
			p.next()
			return p.parseArrowExpression(start, []Node{id}, false, nil, nil)
		}
		p.addDependency(id.Name)
		return id
	}
	return p.unexpected()
}

// parseLiteral parses a numeric, bigint, decimal or string literal.
func (p *Parser) parseLiteral() IExpr {
	tok := p.s.tok
	raw := string(p.src[tok.Start:tok.End])
	p.next()
	switch tok.Type {
	case NumericToken:
		return finish(p, &NumericLiteral{Value: tok.Number, Raw: raw}, tok.Loc)
	case BigIntToken:
		return finish(p, &BigIntLiteral{Value: tok.Value, Raw: raw}, tok.Loc)
	case DecimalToken:
		p.expectFeature(FeatureDecimal, tok.Loc)
		return finish(p, &DecimalLiteral{Value: tok.Value, Raw: raw}, tok.Loc)
	}
	return finish(p, &StringLiteral{Value: tok.Value, Raw: raw}, tok.Loc)
}

func (p *Parser) parseStringLiteral() *StringLiteral {
	if !p.match(StringToken) {
		p.unexpected(StringToken)
		return finish(p, &StringLiteral{}, p.loc())
	}
	return p.parseLiteral().(*StringLiteral)
}

func (p *Parser) parseSuper() IExpr {
	start := p.loc()
	p.next()
	if p.match(OpenParenToken) && !p.allowDirectSuper() && !p.o.AllowSuperOutsideMethod {
		p.raise(SuperNotAllowed, start)
	} else if !p.allowSuper() && !p.o.AllowSuperOutsideMethod {
		p.raise(UnexpectedSuper, start)
	}
	if !p.match(OpenParenToken) && !p.match(OpenBracketToken) && !p.match(DotToken) {
		p.raise(UnsupportedSuper, start)
	}
	return finish(p, &Super{}, start)
}

func (p *Parser) parseImportMetaProperty(start Position) IExpr {
	meta := finishAt(p, &Identifier{Name: "import"}, start, p.s.prevEndLoc)
	p.next()
	if p.isContextual("meta") && !p.inModule {
		p.raise(ImportMetaOutsideModule, start)
	}
	return p.parseMetaProperty(start, meta, "meta")
}

func (p *Parser) parseMetaProperty(start Position, meta *Identifier, property string) *MetaProperty {
	escaped := p.s.tok.Escaped
	n := &MetaProperty{Meta: meta, Property: p.parseIdentifier(true)}
	if n.Property.Name != property || escaped {
		p.raise(UnsupportedMetaProperty, n.Property.Start, meta.Name, meta.Name, property)
	}
	return finish(p, n, start)
}

func (p *Parser) parseNewOrNewTarget() IExpr {
	start := p.loc()
	p.next()
	if p.match(DotToken) {
		meta := finishAt(p, &Identifier{Name: "new"}, start, p.s.prevEndLoc)
		p.next()
		n := p.parseMetaProperty(start, meta, "target")
		if !p.inNonArrowFunction() && !p.inClass() && !p.o.AllowNewTargetOutsideFunction {
			p.raise(UnexpectedNewTarget, start)
		}
		return n
	}

	n := &NewExpression{}
	isImport := p.match(ImportToken)
	calleeStart := p.loc()
	n.Callee = p.parseSubscripts(p.parseExprAtom(nil), calleeStart, true)
	if _, ok := n.Callee.(*Import); ok && isImport {
		p.raise(ImportCallNotNewExpression, calleeStart)
	}
	p.h.parseNewCallee(n)
	if p.eat(OpenParenToken) {
		n.Arguments, _ = p.parseExprList(CloseParenToken, false, nil)
		p.checkTypeCasts(asNodes(n.Arguments))
	} else {
		n.Arguments = []IExpr{}
	}
	return finish(p, n, start)
}

func (h *coreHooks) parseNewCallee(n *NewExpression) {}

////////////////////////////////////////////////////////////////

// parseTemplate parses a template literal starting at the current template chunk.
func (p *Parser) parseTemplate(tagged bool) *TemplateLiteral {
	start := p.loc()
	n := &TemplateLiteral{}
	elem := p.parseTemplateElement(tagged)
	n.Quasis = append(n.Quasis, elem)
	for !elem.Tail && !p.match(ErrorToken) {
		n.Expressions = append(n.Expressions, p.parseExpression())
		if !p.match(CloseBraceToken) {
			p.unexpected(CloseBraceToken)
			break
		}
		p.readTemplateContinuation()
		elem = p.parseTemplateElement(tagged)
		n.Quasis = append(n.Quasis, elem)
	}
	return finish(p, n, start)
}

// parseTemplateElement parses a template chunk. The raw value excludes the delimiters and normalizes line endings,
// the cooked value is nil for a chunk with an invalid escape, which is only allowed in tagged templates.
func (p *Parser) parseTemplateElement(tagged bool) *TemplateElement {
	tok := p.s.tok
	if tok.Type != TemplateToken {
		p.unexpected()
		return finishAt(p, &TemplateElement{Tail: true}, tok.Loc, tok.Loc)
	}
	endOffset := 2
	if tok.Tail {
		endOffset = 1
	}
	n := &TemplateElement{
		Raw:  normalizeLineEndings(string(p.src[tok.Start+1 : tok.End-endOffset])),
		Tail: tok.Tail,
	}
	if tok.InvalidEscape {
		if !tagged {
			p.raise(InvalidEscapeSequenceTemplate, tok.EscapeLoc)
		}
	} else {
		cooked := tok.Value
		n.Cooked = &cooked
	}
	p.next()
	return finishAt(p, n, tok.Loc.add(1), tok.EndLoc.add(-endOffset))
}

func normalizeLineEndings(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\r' {
			b := make([]byte, 0, len(s))
			for j := 0; j < len(s); j++ {
				if s[j] == '\r' {
					b = append(b, '\n')
					if j+1 < len(s) && s[j+1] == '\n' {
						j++
					}
				} else {
					b = append(b, s[j])
				}
			}
			return string(b)
		}
	}
	return s
}

////////////////////////////////////////////////////////////////

// parseParenAndDistinguishExpression parses a parenthesized expression or the parameters of an arrow function.
func (p *Parser) parseParenAndDistinguishExpression(canBeArrow bool) IExpr {
	start := p.loc()
	p.next()
	p.exprScopeEnter(exprScopeMaybeArrowParams)
	oldMaybeInArrowParameters := p.s.maybeInArrowParameters
	p.s.maybeInArrowParameters = true

	innerStart := p.loc()
	var exprList []Node
	refErrors := &exprErrors{}
	first := true
	var spreadStart, optionalCommaStart, trailingComma *Position
	for !p.match(CloseParenToken) && !p.match(ErrorToken) {
		if !first {
			commaLoc := p.loc()
			if !p.expect(CommaToken) {
				break
			} else if p.match(CloseParenToken) {
				optionalCommaStart = &commaLoc
				trailingComma = &commaLoc
				break
			}
		}
		first = false
		if p.match(EllipsisToken) {
			itemStart := p.loc()
			setOnce(&spreadStart, itemStart)
			exprList = append(exprList, p.h.parseParenItem(p.parseRestBinding(), itemStart))
			if p.checkCommaAfterRest(')') {
				break
			}
		} else {
			exprList = append(exprList, p.parseMaybeAssignAllowIn(refErrors, true))
		}
	}
	innerEnd := p.s.prevEndLoc
	p.expect(CloseParenToken)
	p.s.maybeInArrowParameters = oldMaybeInArrowParameters

	if canBeArrow && p.h.shouldParseArrow(exprList) {
		if returnType, ok := p.h.parseArrow(); ok {
			if refErrors.privateKey != nil {
				p.raise(UnexpectedPrivateField, *refErrors.privateKey)
			}
			p.validateAsPattern()
			p.exprScopeExit()
			return p.parseArrowExpression(start, exprList, false, trailingComma, returnType)
		}
	}
	p.exprScopeExit()

	if len(exprList) == 0 {
		return p.unexpectedAt(p.s.prevLoc)
	}
	if optionalCommaStart != nil {
		p.unexpectedAt(*optionalCommaStart)
	}
	if spreadStart != nil {
		p.unexpectedAt(*spreadStart)
	}
	p.checkExpressionErrors(refErrors, true)
	p.checkTypeCasts(exprList)

	exprs := make([]IExpr, 0, len(exprList))
	for _, item := range exprList {
		if expr, ok := item.(IExpr); ok {
			exprs = append(exprs, expr)
		}
	}
	var val IExpr
	if len(exprs) == 1 {
		val = exprs[0]
	} else if len(exprs) == 0 {
		val = p.unexpectedAt(innerStart)
	} else {
		val = finishAt(p, &SequenceExpression{Expressions: exprs}, innerStart, innerEnd)
	}
	return p.wrapParenthesis(start, val)
}

func (p *Parser) wrapParenthesis(start Position, expr IExpr) IExpr {
	if !p.o.CreateParenthesizedExpressions {
		base := expr.Base()
		if !base.Parenthesized {
			p.record(func() { base.Parenthesized = false })
		}
		base.Parenthesized = true
		base.ParenStart = start.Index
		p.takeSurroundingComments(expr, start.Index, p.s.prevEnd)
		return expr
	}
	return finish(p, &ParenthesizedExpression{Expression: expr}, start)
}

// checkCommaAfterRest reports a comma after a rest element and returns true if there is one.
func (p *Parser) checkCommaAfterRest(close byte) bool {
	if !p.match(CommaToken) {
		return false
	}
	if p.lookaheadCharCode() == close {
		p.raise(RestTrailingComma, p.loc())
	} else {
		p.raise(ElementAfterRest, p.loc())
	}
	return true
}

func (h *coreHooks) parseParenItem(n Node, start Position) Node {
	return n
}

func (h *coreHooks) shouldParseArrow(params []Node) bool {
	return !h.p.canInsertSemicolon()
}

func (h *coreHooks) parseArrow() (*TSTypeAnnotation, bool) {
	return nil, h.p.eat(ArrowToken)
}

// checkTypeCasts reports type annotations on expressions that did not turn out to be arrow parameters.
func (p *Parser) checkTypeCasts(exprs []Node) {
	for _, expr := range exprs {
		switch expr := expr.(type) {
		case *TSTypeCastExpression:
			p.raise(TSUnexpectedTypeAnnotation, expr.TypeAnnotation.Start)
		case *AssignmentExpression:
			// (x: T = 1) where the annotation was moved onto the target
			if annotation := patternTypeAnnotation(expr.Left); annotation != nil {
				p.raise(TSUnexpectedTypeAnnotation, annotation.Start)
			}
		}
	}
}

func (p *Parser) parseAsyncArrowUnaryFunction(start Position) IExpr {
	p.prodParamEnter(functionFlags(true, p.hasYield()))
	params := []Node{p.parseIdentifier(false)}
	p.prodParamExit()
	if p.hasPrecedingLineBreak() {
		p.raise(LineTerminatorBeforeArrow, p.curPosition())
	}
	p.expect(ArrowToken)
	return p.parseArrowExpression(start, params, true, nil, nil)
}

// parseArrowExpression parses the body of an arrow function after the arrow. The parameters are converted from the
// expressions parsed so far.
func (p *Parser) parseArrowExpression(start Position, params []Node, async bool, trailingComma *Position, returnType *TSTypeAnnotation) *ArrowFunctionExpression {
	return p.parseArrowFunction(start, &Function{Async: async}, params, trailingComma, returnType)
}

// parseArrowFunction parses the body of an arrow function. The parameters of f are kept when params is nil.
func (p *Parser) parseArrowFunction(start Position, f *Function, params []Node, trailingComma *Position, returnType *TSTypeAnnotation) *ArrowFunctionExpression {
	async := f.Async
	p.scopeEnter(scopeFunction | scopeArrow)
	flags := functionFlags(async, false)
	if !p.match(OpenBraceToken) && p.hasIn() {
		flags |= paramIn
	}
	p.prodParamEnter(flags)

	oldMaybeInArrowParameters := p.s.maybeInArrowParameters
	if params != nil {
		p.s.maybeInArrowParameters = true
		f.Params = p.toAssignableList(params, trailingComma, false)
	}
	p.s.maybeInArrowParameters = false
	n := &ArrowFunctionExpression{Async: async, TypeParameters: f.TypeParameters, ReturnType: returnType}
	n.Body, n.Expression = p.parseFunctionBody(f, n, true, false)
	n.Params = f.Params

	p.prodParamExit()
	p.scopeExit()
	p.s.maybeInArrowParameters = oldMaybeInArrowParameters
	return finish(p, n, start)
}

////////////////////////////////////////////////////////////////

// parseObjectLike parses an object literal or a record, starting at the opening brace.
func (p *Parser) parseObjectLike(isRecord bool, refErrors *exprErrors) IExpr {
	start := p.loc()
	p.next()
	var properties []IObjectMember
	var trailingComma *Position
	usedProto := false
	first := true
	for !p.eat(CloseBraceToken) {
		if !first {
			commaLoc := p.loc()
			if !p.expect(CommaToken) {
				break
			} else if p.eat(CloseBraceToken) {
				trailingComma = &commaLoc
				break
			}
		}
		first = false
		prop := p.parsePropertyDefinition(refErrors)
		p.checkProto(prop, isRecord, &usedProto, refErrors)
		if isRecord {
			switch prop.(type) {
			case *ObjectProperty, *SpreadElement, *Placeholder:
			default:
				p.raise(UnexpectedToken, prop.Base().Start, "")
			}
		}
		properties = append(properties, prop)
	}
	if isRecord {
		return finish(p, &RecordExpression{Properties: properties}, start)
	}
	n := &ObjectExpression{Properties: properties}
	p.setTrailingComma(n, trailingComma)
	return finish(p, n, start)
}

// checkProto reports a second __proto__ property, which is allowed in patterns.
func (p *Parser) checkProto(prop IObjectMember, isRecord bool, used *bool, refErrors *exprErrors) {
	property, ok := prop.(*ObjectProperty)
	if !ok || property.Computed || property.Shorthand {
		return
	}
	name := ""
	switch key := property.Key.(type) {
	case *Identifier:
		name = key.Name
	case *StringLiteral:
		name = key.Value
	}
	if name != "__proto__" {
		return
	}
	if isRecord {
		p.raise(DuplicateProto, property.Key.Base().Start)
		return
	}
	if *used {
		if refErrors != nil {
			setOnce(&refErrors.doubleProto, property.Key.Base().Start)
		} else {
			p.raise(DuplicateProto, property.Key.Base().Start)
		}
	}
	*used = true
}

// propertyName is the key of an object or class member.
type propertyName struct {
	key      IExpr
	computed bool
}

func (p *Parser) parsePropertyDefinition(refErrors *exprErrors) IObjectMember {
	var decorators []*Decorator
	if p.match(AtToken) {
		if p.o.Decorators == ProposalDecorators {
			p.raise(UnsupportedPropertyDecorator, p.loc())
		}
		for p.match(AtToken) {
			decorators = append(decorators, p.parseDecorator())
		}
	}
	start := p.loc()
	if p.match(EllipsisToken) {
		if 0 < len(decorators) {
			p.unexpected()
		}
		return p.parseSpread(refErrors)
	}

	generator := p.eat(MulToken)
	escaped := p.s.tok.Escaped
	name := p.parsePropertyName(refErrors)
	async, accessor := false, false
	kind := MethodNormal
	if !generator && !escaped && p.maybeAsyncOrAccessorProp(name) {
		keyName := name.key.(*Identifier).Name
		if keyName == "async" && !p.hasPrecedingLineBreak() {
			async = true
			p.resetPreviousNodeTrailingComments(name.key)
			generator = p.eat(MulToken)
			name = p.parsePropertyName(nil)
		}
		if keyName == "get" || keyName == "set" {
			accessor = true
			p.resetPreviousNodeTrailingComments(name.key)
			kind = MethodKind(keyName)
			if p.match(MulToken) {
				generator = true
				p.raise(AccessorIsGenerator, p.curPosition(), keyName)
				p.next()
			}
			name = p.parsePropertyName(nil)
		}
	}
	return p.parseObjPropValue(start, name, decorators, kind, generator, async, accessor, refErrors)
}

func (p *Parser) maybeAsyncOrAccessorProp(name propertyName) bool {
	if _, ok := name.key.(*Identifier); !ok || name.computed {
		return false
	}
	return p.isLiteralPropertyName() || p.match(OpenBracketToken) || p.match(MulToken)
}

func (p *Parser) isLiteralPropertyName() bool {
	switch p.s.tok.Type {
	case StringToken, NumericToken, BigIntToken, DecimalToken:
		return true
	}
	return isKeywordOrIdentifier(p.s.tok.Type)
}

// parsePropertyName parses a literal, identifier, private or computed key.
func (p *Parser) parsePropertyName(refErrors *exprErrors) propertyName {
	if p.eat(OpenBracketToken) {
		key := p.parseMaybeAssignAllowIn(nil, false)
		p.expect(CloseBracketToken)
		return propertyName{key: key, computed: true}
	}
	switch tt := p.s.tok.Type; {
	case isKeywordOrIdentifier(tt):
		return propertyName{key: p.parseIdentifier(true)}
	case tt == NumericToken || tt == StringToken || tt == BigIntToken || tt == DecimalToken:
		return propertyName{key: p.parseLiteral()}
	case tt == PrivateIdentifierToken:
		if refErrors != nil {
			setOnce(&refErrors.privateKey, p.loc())
		} else {
			p.raise(UnexpectedPrivateField, p.loc())
		}
		return propertyName{key: p.parsePrivateName()}
	}
	return propertyName{key: p.unexpected()}
}

func (p *Parser) parseObjPropValue(start Position, name propertyName, decorators []*Decorator, kind MethodKind, generator, async, accessor bool, refErrors *exprErrors) IObjectMember {
	typeParams := p.h.tryParseTypeParameters()
	if accessor || async || generator || p.match(OpenParenToken) {
		n := &ObjectMethod{Kind: kind, Key: name.key, Computed: name.computed, Decorators: decorators}
		n.Function = Function{Generator: generator, Async: async, TypeParameters: typeParams}
		p.parseMethod(&n.Function, n, functionObjectMethod, false, false, false)
		if accessor {
			p.h.checkGetterSetterParams(kind, &n.Function, start)
		}
		return finish(p, n, start)
	}
	if typeParams != nil {
		p.unexpected(OpenParenToken)
	}

	n := &ObjectProperty{Key: name.key, Computed: name.computed, Decorators: decorators}
	if p.eat(ColonToken) {
		n.Value = p.parseMaybeAssignAllowIn(refErrors, false)
		return finish(p, n, start)
	}
	id, ok := name.key.(*Identifier)
	if !ok || name.computed {
		n.Value = p.unexpected()
		return finish(p, n, start)
	}
	p.checkReservedWord(id.Name, id.Start, true, false)
	n.Shorthand = true
	value := cloneIdentifier(id)
	if p.match(EqToken) {
		if refErrors != nil {
			setOnce(&refErrors.shorthandAssign, p.loc())
		} else {
			p.raise(InvalidCoverInitializedName, p.loc())
		}
		n.Value = p.parseMaybeDefault(id.Start, value)
	} else {
		p.addDependency(id.Name)
		n.Value = value
	}
	return finish(p, n, start)
}

func cloneIdentifier(id *Identifier) *Identifier {
	clone := &Identifier{Name: id.Name}
	clone.Start, clone.End = id.Start, id.End
	return clone
}

// checkGetterSetterParams checks the number of parameters of an accessor. A leading this parameter does not count.
func (p *Parser) checkGetterSetterParams(kind MethodKind, params []IPattern, loc Position) {
	expected := 0
	if kind == MethodSet {
		expected = 1
	}
	if 0 < len(params) && isThisParam(params[0]) {
		expected++
	}
	if len(params) != expected {
		if kind == MethodGet {
			p.raise(BadGetterArity, loc)
		} else {
			p.raise(BadSetterArity, loc)
		}
	}
	if kind == MethodSet && 0 < len(params) {
		if _, ok := params[len(params)-1].(*RestElement); ok {
			p.raise(BadSetterRestParameter, loc)
		}
	}
}

func isThisParam(param IPattern) bool {
	id, ok := param.(*Identifier)
	return ok && id.Name == "this"
}

// setTrailingComma remembers the position of a trailing comma in an array or object literal, which is an error if
// the literal is converted to a pattern ending in a rest element.
func (p *Parser) setTrailingComma(n Node, loc *Position) {
	if loc == nil {
		return
	}
	if p.trailingCommas == nil {
		p.trailingCommas = map[Node]Position{}
	}
	p.trailingCommas[n] = *loc
}

func patternTypeAnnotation(n IPattern) *TSTypeAnnotation {
	switch n := n.(type) {
	case *Identifier:
		return n.TypeAnnotation
	case *ObjectPattern:
		return n.TypeAnnotation
	case *ArrayPattern:
		return n.TypeAnnotation
	case *RestElement:
		return n.TypeAnnotation
	}
	return nil
}
