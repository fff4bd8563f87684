package js

// lvalContext describes where an assignment target or binding appears.
type lvalContext struct {
	in                string // description used in diagnostics, eg. "assignment expression"
	binding           bindingFlags
	clashes           map[string]bool // names bound so far in a parameter list
	strictModeChanged bool
	parenthesized     bool
}

// toAssignable converts an expression that turned out to be an assignment target or parameter into a pattern. With
// isLHS set, the expression is the left-hand side of an assignment, which may also be a member expression.
// Expressions that cannot be converted become a Placeholder, which checkLVal reports.
func (p *Parser) toAssignable(n Node, isLHS bool) IPattern {
	if isNil(n) {
		return nil
	}
	base := n.Base()
	if _, ok := n.(*ParenthesizedExpression); ok || base.Parenthesized {
		inner := unwrapParenthesized(n)
		if isLHS {
			switch inner.(type) {
			case *Identifier:
				p.recordArrowParameterBindingError(InvalidParenthesizedAssignment, base.Start)
			case *MemberExpression, *TSAsExpression, *TSSatisfiesExpression, *TSNonNullExpression, *TSTypeAssertion:
			default:
				p.raise(InvalidParenthesizedAssignment, base.Start)
			}
		} else {
			p.raise(InvalidParenthesizedAssignment, base.Start)
		}
	}

	switch n := n.(type) {
	case *Identifier, *ObjectPattern, *ArrayPattern, *AssignmentPattern, *RestElement, *MemberExpression, *TSParameterProperty:
		return n.(IPattern)
	case *Placeholder:
		return n
	case *ParenthesizedExpression:
		n.Expression = asExpr(p.toAssignable(n.Expression, isLHS))
		return n
	case *ObjectExpression:
		pattern := &ObjectPattern{NodeBase: n.NodeBase}
		last := len(n.Properties) - 1
		for i, prop := range n.Properties {
			prop = p.toAssignableObjectProperty(prop, i == last, isLHS)
			pattern.Properties = append(pattern.Properties, prop)
			if loc, ok := p.trailingCommas[n]; ok && i == last {
				if _, ok := prop.(*RestElement); ok {
					p.raise(RestTrailingComma, loc)
				}
			}
		}
		p.replaceCommentNode(n, pattern)
		return pattern
	case *ArrayExpression:
		pattern := &ArrayPattern{NodeBase: n.NodeBase}
		var trailingComma *Position
		if loc, ok := p.trailingCommas[n]; ok {
			trailingComma = &loc
		}
		pattern.Elements = p.toAssignableList(asNodes(n.Elements), trailingComma, isLHS)
		p.replaceCommentNode(n, pattern)
		return pattern
	case *AssignmentExpression:
		if n.Operator != EqToken {
			p.raise(MissingEqInAssignment, n.Left.Base().End)
		}
		pattern := &AssignmentPattern{NodeBase: n.NodeBase, Left: p.toAssignable(n.Left, isLHS), Right: n.Right}
		p.replaceCommentNode(n, pattern)
		return pattern
	case *TSAsExpression, *TSSatisfiesExpression, *TSNonNullExpression, *TSTypeAssertion:
		if isLHS {
			p.recordArrowParameterBindingError(TSUnexpectedTypeCastInParameter, base.Start)
		} else {
			p.raise(TSUnexpectedTypeCastInParameter, base.Start)
		}
		p.toAssignable(tsInnerExpression(n), isLHS)
		return n.(IPattern)
	case *TSTypeCastExpression:
		return p.typeCastToParameter(n, isLHS)
	}
	return p.invalidTarget(n)
}

// invalidTarget wraps an expression that cannot be assigned to. The diagnostic is reported by checkLVal, which knows
// the context.
func (p *Parser) invalidTarget(n Node) *Placeholder {
	placeholder := &Placeholder{}
	placeholder.Start, placeholder.End = n.Base().Start, n.Base().End
	return placeholder
}

func (p *Parser) toAssignableObjectProperty(prop IObjectMember, isLast, isLHS bool) IObjectMember {
	switch prop := prop.(type) {
	case *ObjectMethod:
		if prop.Kind == MethodGet || prop.Kind == MethodSet {
			p.raise(PatternHasAccessor, prop.Key.Base().Start)
		} else {
			p.raise(PatternHasMethod, prop.Key.Base().Start)
		}
		return prop
	case *SpreadElement:
		p.checkToRestConversion(prop.Argument, false)
		rest := &RestElement{NodeBase: prop.NodeBase, Argument: p.toAssignable(prop.Argument, isLHS)}
		if !isLast {
			p.raise(RestTrailingComma, prop.Start)
		}
		p.replaceCommentNode(prop, rest)
		return rest
	case *ObjectProperty:
		if key, ok := prop.Key.(*PrivateName); ok {
			p.usePrivateName(key.Name, key.Start)
		}
		prop.Value = p.toAssignable(prop.Value, isLHS)
		return prop
	}
	return prop
}

// toAssignableList converts the elements of an array literal or a parenthesized list. A rest element must be last
// and cannot be followed by a trailing comma.
func (p *Parser) toAssignableList(list []Node, trailingComma *Position, isLHS bool) []IPattern {
	patterns := make([]IPattern, len(list))
	for i, elem := range list {
		if isNil(elem) {
			continue
		}
		var pattern IPattern
		if spread, ok := elem.(*SpreadElement); ok {
			p.checkToRestConversion(spread.Argument, true)
			rest := &RestElement{NodeBase: spread.NodeBase, Argument: p.toAssignable(spread.Argument, isLHS)}
			p.replaceCommentNode(spread, rest)
			pattern = rest
		} else {
			pattern = p.toAssignable(elem, isLHS)
		}
		if _, ok := pattern.(*RestElement); ok {
			if i < len(list)-1 {
				p.raise(RestTrailingComma, pattern.Base().Start)
			} else if trailingComma != nil {
				p.raise(RestTrailingComma, *trailingComma)
			}
		}
		patterns[i] = pattern
	}
	return patterns
}

func (p *Parser) checkToRestConversion(n IExpr, allowPattern bool) {
	switch n := n.(type) {
	case *ParenthesizedExpression:
		p.checkToRestConversion(n.Expression, allowPattern)
		return
	case *Identifier, *MemberExpression:
		return
	case *ArrayExpression, *ObjectExpression:
		if allowPattern {
			return
		}
	}
	if !isNil(n) {
		p.raise(InvalidRestAssignmentPattern, n.Base().Start)
	}
}

// typeCastToParameter moves the annotation of (x: T) onto the converted pattern.
func (p *Parser) typeCastToParameter(cast *TSTypeCastExpression, isLHS bool) IPattern {
	pattern := p.toAssignable(cast.Expression, isLHS)
	switch pattern := pattern.(type) {
	case *Identifier:
		pattern.TypeAnnotation = cast.TypeAnnotation
	case *ObjectPattern:
		pattern.TypeAnnotation = cast.TypeAnnotation
	case *ArrayPattern:
		pattern.TypeAnnotation = cast.TypeAnnotation
	case *RestElement:
		pattern.TypeAnnotation = cast.TypeAnnotation
	default:
		p.raise(TSUnexpectedTypeAnnotation, cast.TypeAnnotation.Start)
		return pattern
	}
	pattern.Base().End = cast.TypeAnnotation.End
	return pattern
}

func unwrapParenthesized(n Node) Node {
	for {
		paren, ok := n.(*ParenthesizedExpression)
		if !ok {
			return n
		}
		n = paren.Expression
	}
}

func tsInnerExpression(n Node) IExpr {
	switch n := n.(type) {
	case *TSAsExpression:
		return n.Expression
	case *TSSatisfiesExpression:
		return n.Expression
	case *TSNonNullExpression:
		return n.Expression
	case *TSTypeAssertion:
		return n.Expression
	case *TSInstantiationExpression:
		return n.Expression
	}
	return nil
}

// asExpr returns a pattern that is also an expression, such as an identifier or member expression.
func asExpr(n IPattern) IExpr {
	if expr, ok := n.(IExpr); ok {
		return expr
	}
	placeholder := &Placeholder{}
	if !isNil(n) {
		placeholder.NodeBase = *n.Base()
	}
	return placeholder
}

// checkSimpleTarget returns the target of an update or compound assignment, which must be a plain reference.
func (p *Parser) checkSimpleTarget(n IExpr, in string) IPattern {
	switch inner := unwrapParenthesized(n).(type) {
	case *Identifier, *MemberExpression, *Placeholder:
		return n.(IPattern)
	case *TSAsExpression, *TSSatisfiesExpression, *TSNonNullExpression, *TSTypeAssertion:
		if target, ok := n.(IPattern); ok {
			return target
		}
		return inner.(IPattern)
	}
	if !isNil(n) {
		return p.invalidTarget(n)
	}
	return nil
}

////////////////////////////////////////////////////////////////

// checkLVal verifies an assignment target or binding pattern and declares the bound names. With a binding other than
// bindNone, member expressions are not allowed.
func (p *Parser) checkLVal(n Node, ctx lvalContext) {
	if isNil(n) {
		return
	}
	switch n := n.(type) {
	case *ObjectMethod:
		return
	case *MemberExpression:
		if n.InChain {
			p.raise(InvalidLhsOptionalChaining, n.Start, ctx.in)
		}
		if ctx.binding != bindNone {
			p.raise(InvalidPropertyBindingPattern, n.Start)
		}
		return
	case *Identifier:
		p.checkIdentifier(n, ctx.binding, ctx.strictModeChanged)
		if ctx.clashes != nil {
			if ctx.clashes[n.Name] {
				p.raise(ParamDupe, n.Start)
			} else {
				ctx.clashes[n.Name] = true
			}
		}
		return
	case *Placeholder:
		if n.Err == nil {
			code := InvalidLhs
			if ctx.binding != bindNone {
				code = InvalidLhsBinding
			}
			n.Err = p.raise(code, n.Start, ctx.in)
		}
		return
	case *TSParameterProperty:
		p.checkLVal(n.Parameter, ctx)
		return
	case *TSNonNullExpression:
		p.checkLVal(n.Expression, ctx.nested(ctx.in, true))
		return
	case *TSAsExpression, *TSSatisfiesExpression, *TSTypeAssertion:
		if ctx.binding == bindNone && !ctx.parenthesized && !n.Base().Parenthesized && ctx.in == "assignment expression" {
			p.raise(InvalidLhs, n.Base().Start, ctx.in)
			return
		}
		p.checkLVal(tsInnerExpression(n), ctx.nested(ctx.in, true))
		return
	case *AssignmentPattern:
		p.checkLVal(n.Left, ctx.nested(ctx.in, false))
		return
	case *RestElement:
		p.checkLVal(n.Argument, ctx.nested(ctx.in, false))
		return
	case *ObjectProperty:
		p.checkLVal(n.Value, ctx.nested(ctx.in, false))
		return
	case *ParenthesizedExpression:
		p.checkLVal(n.Expression, ctx.nested(ctx.in, true))
		return
	case *ArrayPattern:
		for _, elem := range n.Elements {
			p.checkLVal(elem, ctx.nested("array destructuring pattern", false))
		}
		return
	case *ObjectPattern:
		for _, prop := range n.Properties {
			p.checkLVal(prop, ctx.nested("object destructuring pattern", false))
		}
		return
	}
	code := InvalidLhs
	if ctx.binding != bindNone {
		code = InvalidLhsBinding
	}
	p.raise(code, n.Base().Start, ctx.in)
}

func (ctx lvalContext) nested(in string, parenthesized bool) lvalContext {
	ctx.in = in
	ctx.parenthesized = parenthesized
	return ctx
}

// checkIdentifier checks a bound or assigned name and declares it in the current scope.
func (p *Parser) checkIdentifier(id *Identifier, binding bindingFlags, strictModeChanged bool) {
	reserved := id.Name == "eval" || id.Name == "arguments"
	if strictModeChanged {
		reserved = IsStrictBindReservedWord(id.Name, p.inModule)
	}
	if p.s.strict && reserved {
		if binding == bindNone {
			p.raise(StrictEvalArguments, id.Start, id.Name)
		} else {
			p.raise(StrictEvalArgumentsBinding, id.Start, id.Name)
		}
	}
	if binding&bindFlagsNoLetInLexical != 0 && id.Name == "let" {
		p.raise(LetInLexicalBinding, id.Start)
	}
	if binding&bindFlagsNone == 0 {
		p.declareName(id.Name, binding, id.Start)
	}
}

////////////////////////////////////////////////////////////////

type bindingListFlags int

const (
	bindingListAllowEmpty bindingListFlags = 1 << iota
	bindingListFunctionParams
	bindingListConstructorParams
)

func (p *Parser) parseRestBinding() *RestElement {
	start := p.loc()
	p.next()
	n := &RestElement{Argument: p.h.parseBindingAtom()}
	return finish(p, n, start)
}

// parseBindingAtom parses a binding identifier or an array or object binding pattern.
func (h *coreHooks) parseBindingAtom() IPattern {
	p := h.p
	switch p.s.tok.Type {
	case OpenBracketToken:
		start := p.loc()
		p.next()
		n := &ArrayPattern{Elements: p.parseBindingList(CloseBracketToken, ']', bindingListAllowEmpty)}
		return finish(p, n, start)
	case OpenBraceToken:
		return p.parseBindingObject()
	}
	return p.parseIdentifier(false)
}

// parseBindingList parses binding elements up to and including the close token.
func (p *Parser) parseBindingList(close TokenType, closeChar byte, flags bindingListFlags) []IPattern {
	elems := []IPattern{}
	first := true
	for !p.eat(close) {
		if !first {
			if !p.expect(CommaToken) {
				break
			}
		}
		first = false
		if flags&bindingListAllowEmpty != 0 && p.match(CommaToken) {
			elems = append(elems, nil)
		} else if p.eat(close) {
			break
		} else if p.match(EllipsisToken) {
			var rest IPattern = p.parseRestBinding()
			if flags&bindingListFunctionParams != 0 {
				rest = p.h.parseFunctionParamType(rest)
			}
			elems = append(elems, rest)
			if !p.checkCommaAfterRest(closeChar) {
				p.expect(close)
				break
			}
		} else {
			var decorators []*Decorator
			if p.match(AtToken) && p.o.Decorators == ProposalDecorators {
				p.raise(UnsupportedParameterDecorator, p.loc())
			}
			for p.match(AtToken) {
				decorators = append(decorators, p.parseDecorator())
			}
			elems = append(elems, p.h.parseAssignableListItem(flags, decorators))
		}
		if p.s.err != nil {
			break
		}
	}
	return elems
}

func (h *coreHooks) parseAssignableListItem(flags bindingListFlags, decorators []*Decorator) IPattern {
	p := h.p
	left := p.parseMaybeDefault(p.loc(), nil)
	if flags&bindingListFunctionParams != 0 {
		left = p.h.parseFunctionParamType(left)
	}
	elem := p.parseMaybeDefault(left.Base().Start, left)
	p.setParamDecorators(left, decorators)
	return elem
}

func (p *Parser) setParamDecorators(param IPattern, decorators []*Decorator) {
	if len(decorators) == 0 {
		return
	}
	if id, ok := param.(*Identifier); ok {
		id.Decorators = decorators
	} else {
		p.raise(UnsupportedParameterDecorator, decorators[0].Start)
	}
}

func (h *coreHooks) parseFunctionParamType(param IPattern) IPattern {
	return param
}

// parseMaybeDefault parses a binding atom, unless left is given, followed by an optional default value.
func (p *Parser) parseMaybeDefault(start Position, left IPattern) IPattern {
	if isNil(left) {
		left = p.h.parseBindingAtom()
	}
	if !p.eat(EqToken) {
		return left
	}
	n := &AssignmentPattern{Left: left, Right: p.parseMaybeAssignAllowIn(nil, false)}
	return finish(p, n, start)
}

// parseBindingObject parses an object binding pattern.
func (p *Parser) parseBindingObject() *ObjectPattern {
	start := p.loc()
	p.next()
	n := &ObjectPattern{}
	first := true
	for !p.eat(CloseBraceToken) {
		if !first {
			if !p.expect(CommaToken) {
				break
			} else if p.eat(CloseBraceToken) {
				break
			}
		}
		first = false
		if p.match(EllipsisToken) {
			restStart := p.loc()
			p.next()
			rest := finish(p, &RestElement{Argument: p.parseIdentifier(false)}, restStart)
			n.Properties = append(n.Properties, rest)
			p.checkCommaAfterRest('}')
			continue
		}
		n.Properties = append(n.Properties, p.parseBindingProperty())
		if p.s.err != nil {
			break
		}
	}
	return finish(p, n, start)
}

func (p *Parser) parseBindingProperty() IObjectMember {
	start := p.loc()
	name := p.parsePropertyName(nil)
	prop := &ObjectProperty{Key: name.key, Computed: name.computed}
	if p.eat(ColonToken) {
		prop.Value = p.parseMaybeDefault(p.loc(), nil)
		return finish(p, prop, start)
	}
	id, ok := name.key.(*Identifier)
	if !ok || name.computed {
		prop.Value = p.unexpected(ColonToken)
		return finish(p, prop, start)
	}
	p.checkReservedWord(id.Name, id.Start, true, false)
	prop.Shorthand = true
	prop.Value = p.parseMaybeDefault(id.Start, cloneIdentifier(id))
	return finish(p, prop, start)
}

////////////////////////////////////////////////////////////////

// isAssignable returns true if the expression can be converted into a pattern, used to decide whether a parenthesized
// list can be arrow parameters.
func (p *Parser) isAssignable(n Node, isBinding bool) bool {
	switch n := n.(type) {
	case *Identifier, *ObjectPattern, *ArrayPattern, *AssignmentPattern, *RestElement:
		return true
	case *ObjectExpression:
		last := len(n.Properties) - 1
		for i, prop := range n.Properties {
			if _, ok := prop.(*ObjectMethod); ok {
				return false
			} else if _, ok := prop.(*SpreadElement); ok && i != last {
				return false
			} else if !p.isAssignable(prop, false) {
				return false
			}
		}
		return true
	case *ObjectProperty:
		return p.isAssignable(n.Value, false)
	case *SpreadElement:
		return p.isAssignable(n.Argument, false)
	case *ArrayExpression:
		for _, elem := range n.Elements {
			if !isNil(elem) && !p.isAssignable(elem, false) {
				return false
			}
		}
		return true
	case *AssignmentExpression:
		return n.Operator == EqToken
	case *ParenthesizedExpression:
		return p.isAssignable(n.Expression, isBinding)
	case *MemberExpression:
		return !isBinding
	case *TSAsExpression, *TSSatisfiesExpression, *TSNonNullExpression, *TSTypeAssertion, *TSTypeCastExpression:
		return true
	}
	return false
}
