package js

import (
	"slices"
)

// tsInType runs fn with the scanner reading < and > as single characters. The token current when fn returns was
// scanned in type mode.
func (p *Parser) tsInType(fn func()) {
	old := p.s.inType
	p.s.inType = true
	fn()
	p.s.inType = old
}

// tsInAmbientContext runs fn as the body of a declare.
func (p *Parser) tsInAmbientContext(fn func()) {
	old := p.s.isAmbientContext
	p.s.isAmbientContext = true
	fn()
	p.s.isAmbientContext = old
}

func (p *Parser) tsInDisallowConditionalTypes(disallow bool, fn func()) {
	old := p.s.inDisallowConditionalTypes
	p.s.inDisallowConditionalTypes = disallow
	fn()
	p.s.inDisallowConditionalTypes = old
}

// tsLookAhead runs fn and restores the state afterwards.
func (p *Parser) tsLookAhead(fn func() bool) bool {
	cp := p.checkpoint()
	ok := fn()
	p.restore(cp)
	return ok
}

// tsTry runs fn and keeps its progress only if it returns true.
func (p *Parser) tsTry(fn func() bool) bool {
	cp := p.checkpoint()
	if fn() {
		p.commit(cp)
		return true
	}
	p.restore(cp)
	return false
}

// failed returns true if a diagnostic was raised since the checkpoint.
func (p *Parser) failed(cp checkpoint) bool {
	return cp.s.err == nil && p.s.err != nil || len(cp.s.errors) < len(p.s.errors)
}

// atTypeClose returns true if the current token starts with >, which closes a type argument list.
func (p *Parser) atTypeClose() bool {
	switch p.s.tok.Type {
	case GtToken, GtGtToken, GtGtGtToken, GtEqToken, GtGtEqToken, GtGtGtEqToken:
		return true
	}
	return false
}

// expectTypeClose consumes a >, splitting a longer operator such as >= that was scanned outside of type mode.
func (p *Parser) expectTypeClose() {
	if p.eat(GtToken) {
		return
	} else if !p.atTypeClose() {
		p.unexpected(GtToken)
		return
	}
	tok := p.s.tok
	p.s.tok.Type = GtToken
	p.s.tok.End = tok.Start + 1
	p.s.tok.EndLoc = tok.Loc.add(1)
	p.s.r.Rewind(tok.Start + 1)
	p.next()
}

// tsParseDelimitedList parses comma separated elements up to, but not including, the terminator. A trailing comma is
// allowed.
func tsParseDelimitedList[T any](p *Parser, isEnd func() bool, parse func() T) []T {
	list := []T{}
	for !isEnd() && !p.match(ErrorToken) {
		list = append(list, parse())
		if p.eat(CommaToken) {
			continue
		} else if !isEnd() {
			p.unexpected(CommaToken)
		}
		break
	}
	return list
}

////////////////////////////////////////////////////////////////

// tsModifiers are the modifiers seen before a class member, parameter, type member or type parameter.
type tsModifiers struct {
	start         Position
	accessibility string
	seen          map[string]bool
}

func (m tsModifiers) has(name string) bool {
	return m.seen[name]
}

func (m tsModifiers) empty() bool {
	return m.accessibility == "" && len(m.seen) == 0
}

func isAccessModifier(modifier string) bool {
	return modifier == "public" || modifier == "private" || modifier == "protected"
}

// tsParseModifiers parses modifiers out of allowed and disallowed, reporting disallowed ones with code. Order and
// compatibility between modifiers is checked as well.
func (p *Parser) tsParseModifiers(allowed, disallowed []string, stopOnStaticBlock bool, code ErrorCode) tsModifiers {
	m := tsModifiers{start: p.loc(), seen: map[string]bool{}}
	all := append(append([]string{}, allowed...), disallowed...)
	enforceOrder := func(loc Position, modifier, before, after string) {
		if modifier == before && m.seen[after] {
			p.raise(TSInvalidModifiersOrder, loc, before, after)
		}
	}
	incompatible := func(loc Position, modifier, mod1, mod2 string) {
		if m.seen[mod1] && modifier == mod2 || m.seen[mod2] && modifier == mod1 {
			p.raise(TSIncompatibleModifiers, loc, mod1, mod2)
		}
	}
	for {
		loc := p.loc()
		modifier := p.tsParseModifier(all, stopOnStaticBlock)
		if modifier == "" {
			break
		}
		if isAccessModifier(modifier) {
			if m.accessibility != "" {
				p.raise(TSDuplicateAccessibilityModifier, loc)
			} else {
				enforceOrder(loc, modifier, modifier, "override")
				enforceOrder(loc, modifier, modifier, "static")
				enforceOrder(loc, modifier, modifier, "readonly")
				m.accessibility = modifier
			}
		} else if modifier == "in" || modifier == "out" {
			if m.seen[modifier] {
				p.raise(TSDuplicateModifier, loc, modifier)
			}
			m.seen[modifier] = true
			enforceOrder(loc, modifier, "in", "out")
		} else {
			if m.seen[modifier] {
				p.raise(TSDuplicateModifier, loc, modifier)
			} else {
				enforceOrder(loc, modifier, "static", "readonly")
				enforceOrder(loc, modifier, "static", "override")
				enforceOrder(loc, modifier, "override", "readonly")
				enforceOrder(loc, modifier, "abstract", "override")
				incompatible(loc, modifier, "declare", "override")
				incompatible(loc, modifier, "static", "abstract")
			}
			m.seen[modifier] = true
		}
		if slices.Contains(disallowed, modifier) {
			p.raise(code, loc, modifier)
		}
	}
	return m
}

// tsParseModifier consumes the current word if it is one of allowed and is followed by something a modifier can
// precede. Otherwise the word is a name, as in `static() {}` or `readonly: number`.
func (p *Parser) tsParseModifier(allowed []string, stopOnStaticBlock bool) string {
	if !(p.isIdentifier() && !p.s.tok.Escaped) && !p.match(InToken) && !p.match(ConstToken) {
		return ""
	}
	modifier := p.s.tok.Value
	if !slices.Contains(allowed, modifier) {
		return ""
	} else if stopOnStaticBlock && p.tsIsStartOfStaticBlocks() {
		return ""
	}
	if p.tsTry(p.tsNextTokenCanFollowModifier) {
		return modifier
	}
	return ""
}

func (p *Parser) tsNextTokenCanFollowModifier() bool {
	if p.isContextual("static") {
		p.next()
		return p.tsTokenCanFollowModifier()
	}
	p.next()
	return !p.hasPrecedingLineBreak() && p.tsTokenCanFollowModifier()
}

func (p *Parser) tsTokenCanFollowModifier() bool {
	switch p.s.tok.Type {
	case OpenBracketToken, OpenBraceToken, MulToken, EllipsisToken, PrivateIdentifierToken:
		return true
	}
	return p.isLiteralPropertyName()
}

func (p *Parser) tsIsStartOfStaticBlocks() bool {
	return p.isContextual("static") && p.lookaheadCharCode() == '{'
}

func (p *Parser) tsParseInOutModifiers(param *TSTypeParameter) {
	m := p.tsParseModifiers([]string{"in", "out"},
		[]string{"public", "private", "protected", "readonly", "declare", "abstract", "override"},
		false, TSInvalidModifierOnTypeParameter)
	param.In, param.Out = m.has("in"), m.has("out")
}

func (p *Parser) tsParseConstModifier(param *TSTypeParameter) {
	m := p.tsParseModifiers([]string{"const"}, []string{"in", "out"}, false, TSInvalidModifierOnTypeParameterPositions)
	param.Const = m.has("const")
}

func (p *Parser) tsParseInOutConstModifiers(param *TSTypeParameter) {
	m := p.tsParseModifiers([]string{"in", "out", "const"},
		[]string{"public", "private", "protected", "readonly", "declare", "abstract", "override"},
		false, TSInvalidModifierOnTypeParameter)
	param.In, param.Out, param.Const = m.has("in"), m.has("out"), m.has("const")
}

////////////////////////////////////////////////////////////////

// tsTryParseTypeParameters parses a type parameter list if the current token is <.
func (p *Parser) tsTryParseTypeParameters(modifiers func(*TSTypeParameter)) *TSTypeParameterDeclaration {
	if !p.match(LtToken) {
		return nil
	}
	return p.tsParseTypeParameters(modifiers)
}

func (p *Parser) tsParseTypeParameters(modifiers func(*TSTypeParameter)) *TSTypeParameterDeclaration {
	start := p.loc()
	n := &TSTypeParameterDeclaration{}
	if !p.expect(LtToken) {
		return finish(p, n, start)
	}
	n.Params = tsParseDelimitedList(p, p.atTypeClose, func() *TSTypeParameter {
		return p.tsParseTypeParameter(modifiers)
	})
	if len(n.Params) == 0 {
		p.raise(TSEmptyTypeParameters, start)
	} else if p.src[p.s.prevStart] == ',' {
		p.setTrailingComma(n, &p.s.prevLoc)
	}
	p.expectTypeClose()
	return finish(p, n, start)
}

func (p *Parser) tsParseTypeParameter(modifiers func(*TSTypeParameter)) *TSTypeParameter {
	start := p.loc()
	n := &TSTypeParameter{}
	modifiers(n)
	n.Name = p.parseIdentifierName(false)
	n.Constraint = p.tsEatThenParseType(ExtendsToken)
	n.Default = p.tsEatThenParseType(EqToken)
	return finish(p, n, start)
}

// tsEatThenParseType parses a type after tt if it is the current token.
func (p *Parser) tsEatThenParseType(tt TokenType) ITSType {
	if !p.match(tt) {
		return nil
	}
	return p.tsNextThenParseType()
}

func (p *Parser) tsNextThenParseType() ITSType {
	var t ITSType
	p.tsInType(func() {
		p.next()
		t = p.tsParseType()
	})
	return t
}

// tsParseTypeArguments parses a type argument list starting at <.
func (p *Parser) tsParseTypeArguments() *TSTypeParameterInstantiation {
	start := p.loc()
	n := &TSTypeParameterInstantiation{}
	p.tsInType(func() {
		oldNoAnon := p.s.noAnonFunctionType
		p.s.noAnonFunctionType = false
		p.expect(LtToken)
		n.Params = tsParseDelimitedList(p, p.atTypeClose, p.tsParseType)
		p.s.noAnonFunctionType = oldNoAnon
	})
	if len(n.Params) == 0 {
		p.raise(TSEmptyTypeArguments, start)
	}
	p.expectTypeClose()
	return finish(p, n, start)
}

// tsParseTypeArgumentsInExpression parses type arguments after an expression, where << is read as <.
func (p *Parser) tsParseTypeArgumentsInExpression() *TSTypeParameterInstantiation {
	p.rescanLt()
	if !p.match(LtToken) {
		return nil
	}
	return p.tsParseTypeArguments()
}

////////////////////////////////////////////////////////////////

// tsParseTypeAnnotation parses `: T`.
func (p *Parser) tsParseTypeAnnotation() *TSTypeAnnotation {
	start := p.loc()
	n := &TSTypeAnnotation{}
	p.tsInType(func() {
		p.expect(ColonToken)
		n.TypeAnnotation = p.tsParseType()
	})
	return finish(p, n, start)
}

func (p *Parser) tsTryParseTypeAnnotation() *TSTypeAnnotation {
	if !p.match(ColonToken) {
		return nil
	}
	return p.tsParseTypeAnnotation()
}

// tsParseTypeOrTypePredicateAnnotation parses a return type after tt, which may be a type predicate such as
// `x is string` or `asserts x`.
func (p *Parser) tsParseTypeOrTypePredicateAnnotation(tt TokenType) *TSTypeAnnotation {
	start := p.loc()
	t := &TSTypeAnnotation{}
	p.tsInType(func() {
		p.expect(tt)
		predStart := p.loc()
		asserts := p.tsTry(p.tsParseTypePredicateAsserts)
		if asserts && p.match(ThisToken) {
			thisType := p.tsParseThisTypeOrThisTypePredicate()
			if pred, ok := thisType.(*TSTypePredicate); ok {
				pred.Asserts = true
				pred.Start = predStart
				t.TypeAnnotation = pred
			} else {
				t.TypeAnnotation = finish(p, &TSTypePredicate{ParameterName: thisType, Asserts: true}, predStart)
			}
			return
		}

		var param *Identifier
		if p.isIdentifier() {
			p.tsTry(func() bool {
				id := p.parseIdentifier(false)
				if p.isContextual("is") && !p.hasPrecedingLineBreak() {
					p.next()
					param = id
					return true
				}
				return false
			})
		}
		if param == nil {
			if !asserts {
				t.TypeAnnotation = p.tsParseType()
				return
			}
			pred := &TSTypePredicate{ParameterName: p.parseIdentifier(false), Asserts: true}
			t.TypeAnnotation = finish(p, pred, predStart)
			return
		}
		annStart := p.loc()
		ann := &TSTypeAnnotation{TypeAnnotation: p.tsParseType()}
		pred := &TSTypePredicate{ParameterName: param, TypeAnnotation: finish(p, ann, annStart), Asserts: asserts}
		t.TypeAnnotation = finish(p, pred, predStart)
	})
	return finish(p, t, start)
}

func (p *Parser) tsTryParseTypeOrTypePredicateAnnotation() *TSTypeAnnotation {
	if !p.match(ColonToken) {
		return nil
	}
	return p.tsParseTypeOrTypePredicateAnnotation(ColonToken)
}

func (p *Parser) tsParseTypePredicateAsserts() bool {
	if !p.isContextual("asserts") {
		return false
	}
	p.next()
	return p.isIdentifier() || p.match(ThisToken)
}

func (p *Parser) tsParseThisTypeOrThisTypePredicate() ITSType {
	start := p.loc()
	p.next()
	thisType := finish(p, &TSThisType{}, start)
	if !p.isContextual("is") || p.hasPrecedingLineBreak() {
		return thisType
	}
	p.next()
	annStart := p.loc()
	ann := finish(p, &TSTypeAnnotation{TypeAnnotation: p.tsParseType()}, annStart)
	return finish(p, &TSTypePredicate{ParameterName: thisType, TypeAnnotation: ann}, start)
}

////////////////////////////////////////////////////////////////

// tsParseType parses a type, including conditional types unless they are disallowed as in the extends clause of a
// conditional type.
func (p *Parser) tsParseType() ITSType {
	start := p.loc()
	t := p.tsParseNonConditionalType()
	if p.s.inDisallowConditionalTypes || p.hasPrecedingLineBreak() || !p.eat(ExtendsToken) {
		return t
	}
	n := &TSConditionalType{CheckType: t}
	p.tsInDisallowConditionalTypes(true, func() {
		n.ExtendsType = p.tsParseNonConditionalType()
	})
	p.expect(QuestionToken)
	p.tsInDisallowConditionalTypes(false, func() {
		n.TrueType = p.tsParseType()
	})
	p.expect(ColonToken)
	p.tsInDisallowConditionalTypes(false, func() {
		n.FalseType = p.tsParseType()
	})
	return finish(p, n, start)
}

func (p *Parser) tsParseNonConditionalType() ITSType {
	if p.tsIsStartOfFunctionType() {
		return p.tsParseFunctionOrConstructorType(false, false)
	} else if p.match(NewToken) {
		return p.tsParseFunctionOrConstructorType(true, false)
	} else if p.isContextual("abstract") && p.lookahead().Type == NewToken {
		return p.tsParseFunctionOrConstructorType(true, true)
	}
	return p.tsParseUnionTypeOrHigher()
}

func (p *Parser) tsIsStartOfFunctionType() bool {
	if p.match(LtToken) {
		return true
	}
	return p.match(OpenParenToken) && p.tsLookAhead(p.tsIsUnambiguouslyStartOfFunctionType)
}

func (p *Parser) tsIsUnambiguouslyStartOfFunctionType() bool {
	p.next()
	if p.match(CloseParenToken) || p.match(EllipsisToken) {
		return true
	}
	if p.tsSkipParameterStart() {
		switch p.s.tok.Type {
		case ColonToken, CommaToken, QuestionToken, EqToken:
			return true
		case CloseParenToken:
			p.next()
			return p.match(ArrowToken)
		}
	}
	return false
}

// tsSkipParameterStart skips the name of a parameter, which may be a binding pattern.
func (p *Parser) tsSkipParameterStart() bool {
	if p.isIdentifier() || p.match(ThisToken) {
		p.next()
		return true
	}
	cp := p.checkpoint()
	defer p.commit(cp)
	if p.match(OpenBraceToken) {
		p.parseBindingObject()
		return !p.failed(cp)
	} else if p.match(OpenBracketToken) {
		p.next()
		p.parseBindingList(CloseBracketToken, ']', bindingListAllowEmpty)
		return !p.failed(cp)
	}
	return false
}

func (p *Parser) tsParseFunctionOrConstructorType(constructor, abstract bool) ITSType {
	start := p.loc()
	if abstract {
		p.next()
	}
	if constructor {
		p.next()
	}
	var sig tsSignature
	p.tsInDisallowConditionalTypes(false, func() {
		sig = p.tsFillSignature(ArrowToken)
	})
	if constructor {
		n := &TSConstructorType{TypeParameters: sig.typeParams, Params: sig.params, ReturnType: sig.returnType, Abstract: abstract}
		return finish(p, n, start)
	}
	n := &TSFunctionType{TypeParameters: sig.typeParams, Params: sig.params, ReturnType: sig.returnType}
	return finish(p, n, start)
}

type tsSignature struct {
	typeParams *TSTypeParameterDeclaration
	params     []IPattern
	returnType *TSTypeAnnotation
}

// tsFillSignature parses type parameters, parameters and the return type after returnToken of a signature. The return
// type is required after an arrow.
func (p *Parser) tsFillSignature(returnToken TokenType) tsSignature {
	sig := tsSignature{}
	sig.typeParams = p.tsTryParseTypeParameters(p.tsParseConstModifier)
	p.expect(OpenParenToken)
	sig.params = p.tsParseBindingListForSignature()
	if returnToken == ArrowToken || p.match(returnToken) {
		sig.returnType = p.tsParseTypeOrTypePredicateAnnotation(returnToken)
	}
	return sig
}

func (p *Parser) tsParseBindingListForSignature() []IPattern {
	params := p.parseBindingList(CloseParenToken, ')', bindingListFunctionParams)
	for _, param := range params {
		switch param.(type) {
		case *AssignmentPattern, *TSParameterProperty:
			p.raise(TSUnsupportedSignatureParameterKind, param.Base().Start, param.Type().String())
		}
	}
	return params
}

func (p *Parser) tsParseUnionTypeOrHigher() ITSType {
	return p.tsParseUnionOrIntersectionType(BitOrToken, p.tsParseIntersectionTypeOrHigher)
}

func (p *Parser) tsParseIntersectionTypeOrHigher() ITSType {
	return p.tsParseUnionOrIntersectionType(BitAndToken, p.tsParseTypeOperatorOrHigher)
}

// tsParseUnionOrIntersectionType parses constituents separated by op, which may also lead the list.
func (p *Parser) tsParseUnionOrIntersectionType(op TokenType, parseConstituent func() ITSType) ITSType {
	start := p.loc()
	leading := p.eat(op)
	types := []ITSType{}
	for {
		types = append(types, parseConstituent())
		if !p.eat(op) {
			break
		}
	}
	if len(types) == 1 && !leading {
		return types[0]
	}
	if op == BitOrToken {
		return finish(p, &TSUnionType{Types: types}, start)
	}
	return finish(p, &TSIntersectionType{Types: types}, start)
}

func (p *Parser) tsParseTypeOperatorOrHigher() ITSType {
	if !p.s.tok.Escaped && (p.isContextual("keyof") || p.isContextual("unique") || p.isContextual("readonly")) {
		return p.tsParseTypeOperator()
	} else if p.isContextual("infer") {
		return p.tsParseInferType()
	}
	var t ITSType
	p.tsInDisallowConditionalTypes(false, func() {
		t = p.tsParseArrayTypeOrHigher()
	})
	return t
}

func (p *Parser) tsParseTypeOperator() ITSType {
	start := p.loc()
	n := &TSTypeOperator{Operator: p.s.tok.Value}
	p.next()
	n.TypeAnnotation = p.tsParseTypeOperatorOrHigher()
	if n.Operator == "readonly" {
		switch n.TypeAnnotation.(type) {
		case *TSArrayType, *TSTupleType:
		default:
			p.raise(TSUnexpectedReadonly, start)
		}
	}
	return finish(p, n, start)
}

// tsParseInferType parses `infer T`, optionally constrained by `extends C` unless that would start a conditional
// type.
func (p *Parser) tsParseInferType() ITSType {
	start := p.loc()
	p.next()
	paramStart := p.loc()
	param := &TSTypeParameter{Name: p.parseIdentifierName(false)}
	p.tsTry(func() bool {
		if !p.eat(ExtendsToken) {
			return false
		}
		var constraint ITSType
		p.tsInDisallowConditionalTypes(true, func() {
			constraint = p.tsParseType()
		})
		if p.s.inDisallowConditionalTypes || !p.match(QuestionToken) {
			param.Constraint = constraint
			return true
		}
		return false
	})
	n := &TSInferType{TypeParameter: finish(p, param, paramStart)}
	return finish(p, n, start)
}

func (p *Parser) tsParseArrayTypeOrHigher() ITSType {
	start := p.loc()
	t := p.tsParseNonArrayType()
	for !p.hasPrecedingLineBreak() && p.eat(OpenBracketToken) {
		if p.eat(CloseBracketToken) {
			t = finish(p, &TSArrayType{ElementType: t}, start)
			continue
		}
		n := &TSIndexedAccessType{ObjectType: t, IndexType: p.tsParseType()}
		p.expect(CloseBracketToken)
		t = finish(p, n, start)
	}
	return t
}

func (p *Parser) tsParseNonArrayType() ITSType {
	start := p.loc()
	switch tt := p.s.tok.Type; tt {
	case StringToken, NumericToken, BigIntToken, TrueToken, FalseToken:
		n := &TSLiteralType{Literal: p.parseExprAtom(nil)}
		return finish(p, n, start)
	case SubToken:
		if next := p.lookahead().Type; next != NumericToken && next != BigIntToken {
			return p.unexpected()
		}
		n := &TSLiteralType{Literal: p.h.parseMaybeUnary(nil, false)}
		return finish(p, n, start)
	case ThisToken:
		return p.tsParseThisTypeOrThisTypePredicate()
	case TypeofToken:
		return p.tsParseTypeQuery()
	case ImportToken:
		return p.tsParseImportType()
	case OpenBraceToken:
		if p.tsLookAhead(p.tsIsStartOfMappedType) {
			return p.tsParseMappedType()
		}
		return p.tsParseTypeLiteral()
	case OpenBracketToken:
		return p.tsParseTupleType()
	case OpenParenToken:
		p.next()
		t := p.tsParseType()
		p.expect(CloseParenToken)
		return t
	case TemplateToken:
		return p.tsParseTemplateLiteralType()
	case IdentifierToken, VoidToken, NullToken:
		keyword, ok := tsKeywordTypes[p.s.tok.Value]
		if tt == VoidToken {
			keyword, ok = TSVoidKeywordNode, true
		} else if tt == NullToken {
			keyword, ok = TSNullKeywordNode, true
		} else if p.s.tok.Escaped || keyword == TSIntrinsicKeywordNode {
			// intrinsic is a keyword only as the body of a type alias
			ok = false
		}
		if ok && p.lookaheadCharCode() != '.' {
			p.next()
			return finish(p, &TSKeywordType{Keyword: keyword}, start)
		}
		return p.tsParseTypeReference()
	}
	return p.unexpected()
}

func (p *Parser) tsParseTypeReference() ITSType {
	start := p.loc()
	n := &TSTypeReference{TypeName: p.tsParseEntityName(true)}
	if !p.hasPrecedingLineBreak() && p.match(LtToken) {
		n.TypeParameters = p.tsParseTypeArguments()
	}
	return finish(p, n, start)
}

// tsParseEntityName parses a dotted name such as A.B.C.
func (p *Parser) tsParseEntityName(allowReservedWords bool) Node {
	start := p.loc()
	var entity Node = p.parseIdentifier(allowReservedWords)
	for p.eat(DotToken) {
		n := &TSQualifiedName{Left: entity, Right: p.parseIdentifier(allowReservedWords)}
		entity = finish(p, n, start)
	}
	return entity
}

func (p *Parser) tsParseTypeQuery() ITSType {
	start := p.loc()
	p.expect(TypeofToken)
	n := &TSTypeQuery{}
	if p.match(ImportToken) {
		n.ExprName = p.tsParseImportType()
	} else {
		n.ExprName = p.tsParseEntityName(true)
	}
	if !p.hasPrecedingLineBreak() && p.match(LtToken) {
		n.TypeParameters = p.tsParseTypeArguments()
	}
	return finish(p, n, start)
}

// tsParseImportType parses import("m").A.B<T>.
func (p *Parser) tsParseImportType() *TSImportType {
	start := p.loc()
	p.expect(ImportToken)
	p.expect(OpenParenToken)
	n := &TSImportType{}
	if !p.match(StringToken) {
		p.raise(TSUnsupportedImportTypeArgument, p.loc())
		n.Argument = &StringLiteral{}
		p.parseMaybeAssignAllowIn(nil, false)
	} else {
		n.Argument = p.parseStringLiteral()
	}
	p.expect(CloseParenToken)
	if p.eat(DotToken) {
		n.Qualifier = p.tsParseEntityName(true)
	}
	if p.match(LtToken) {
		n.TypeParameters = p.tsParseTypeArguments()
	}
	return finish(p, n, start)
}

func (p *Parser) tsIsStartOfMappedType() bool {
	p.next()
	if p.eat(AddToken) || p.eat(SubToken) {
		return p.isContextual("readonly")
	}
	if p.isContextual("readonly") {
		p.next()
	}
	if !p.match(OpenBracketToken) {
		return false
	}
	p.next()
	if !p.isIdentifier() {
		return false
	}
	p.next()
	return p.match(InToken)
}

// tsParseMappedType parses { readonly [K in T as N]?: V }, where readonly and ? may carry + or -.
func (p *Parser) tsParseMappedType() ITSType {
	start := p.loc()
	p.expect(OpenBraceToken)
	n := &TSMappedType{}
	if p.match(AddToken) || p.match(SubToken) {
		n.Readonly = p.s.tok.Type.String()
		p.next()
		p.expectContextual("readonly")
	} else if p.eatContextual("readonly") {
		n.Readonly = "true"
	}
	p.expect(OpenBracketToken)
	paramStart := p.loc()
	param := &TSTypeParameter{Name: p.parseIdentifierName(false)}
	if p.match(InToken) {
		param.Constraint = p.tsNextThenParseType()
	} else {
		p.unexpected(InToken)
	}
	n.TypeParameter = finish(p, param, paramStart)
	if p.eatContextual("as") {
		n.NameType = p.tsParseType()
	}
	p.expect(CloseBracketToken)
	if p.match(AddToken) || p.match(SubToken) {
		n.Optional = p.s.tok.Type.String()
		p.next()
		p.expect(QuestionToken)
	} else if p.eat(QuestionToken) {
		n.Optional = "true"
	}
	if p.match(ColonToken) {
		n.TypeAnnotation = p.tsNextThenParseType()
	}
	p.semicolon()
	p.expect(CloseBraceToken)
	return finish(p, n, start)
}

func (p *Parser) tsParseTypeLiteral() ITSType {
	start := p.loc()
	n := &TSTypeLiteral{Members: p.tsParseObjectTypeMembers()}
	return finish(p, n, start)
}

// tsParseObjectTypeMembers parses the members of a type literal or interface body, including the braces.
func (p *Parser) tsParseObjectTypeMembers() []ITSTypeElement {
	members := []ITSTypeElement{}
	p.expect(OpenBraceToken)
	for !p.match(CloseBraceToken) && !p.match(ErrorToken) {
		before := p.tokenCount
		if member := p.tsParseTypeMember(); member != nil {
			members = append(members, member)
		}
		if before == p.tokenCount {
			p.next()
		}
	}
	p.expect(CloseBraceToken)
	return members
}

func (p *Parser) tsParseTupleType() ITSType {
	start := p.loc()
	p.expect(OpenBracketToken)
	n := &TSTupleType{}
	n.ElementTypes = tsParseDelimitedList(p, func() bool { return p.match(CloseBracketToken) }, p.tsParseTupleElementType)
	p.expect(CloseBracketToken)

	seenOptional := false
	for _, elem := range n.ElementTypes {
		optional := false
		switch elem := elem.(type) {
		case *TSOptionalType:
			optional = true
		case *TSNamedTupleMember:
			optional = elem.Optional
		case *TSRestType:
			continue
		}
		if seenOptional && !optional {
			p.raise(TSOptionalTypeBeforeRequired, elem.Base().Start)
		}
		seenOptional = seenOptional || optional
	}
	return finish(p, n, start)
}

// tsParseTupleElementType parses a tuple element, which may be labeled as in [name?: T] and may be a rest element.
func (p *Parser) tsParseTupleElementType() ITSType {
	start := p.loc()
	rest := p.eat(EllipsisToken)
	var label *Identifier
	var t ITSType
	labeled, optional := false, false

	var after byte
	if isKeywordOrIdentifier(p.s.tok.Type) {
		after = p.lookaheadCharCode()
	}
	switch after {
	case ':':
		labeled = true
		label = p.parseIdentifier(true)
		p.expect(ColonToken)
		t = p.tsParseType()
	case '?':
		optional = true
		wordStart := p.loc()
		word := p.s.tok.Value
		typeOrLabel := p.tsParseNonArrayType()
		if p.lookaheadCharCode() == ':' {
			labeled = true
			label = finish(p, &Identifier{Name: word}, wordStart)
			p.expect(QuestionToken)
			p.expect(ColonToken)
			t = p.tsParseType()
		} else {
			t = typeOrLabel
			p.expect(QuestionToken)
		}
	default:
		t = p.tsParseType()
		optional = p.eat(QuestionToken)
		labeled = p.eat(ColonToken)
	}

	if labeled {
		memberStart := t.Base().Start
		n := &TSNamedTupleMember{Optional: optional}
		if label != nil {
			memberStart = label.Start
			n.Label, n.ElementType = label, t
			if p.eat(QuestionToken) {
				n.Optional = true
			}
		} else {
			p.raise(TSInvalidTupleMemberLabel, t.Base().Start)
			n.Label = finishAt(p, &Identifier{Name: tsLabelName(t)}, t.Base().Start, t.Base().End)
			n.ElementType = p.tsParseType()
		}
		t = finish(p, n, memberStart)
	} else if optional {
		t = finish(p, &TSOptionalType{TypeAnnotation: t}, t.Base().Start)
	}
	if rest {
		t = finish(p, &TSRestType{TypeAnnotation: t}, start)
	}
	return t
}

// tsLabelName returns the name used for an invalid tuple label, which is a type reference in the common case of a
// misplaced question mark.
func tsLabelName(t ITSType) string {
	if ref, ok := t.(*TSTypeReference); ok {
		if id, ok := ref.TypeName.(*Identifier); ok {
			return id.Name
		}
	}
	return ""
}

// tsParseTemplateLiteralType parses a template literal with types in its substitutions.
func (p *Parser) tsParseTemplateLiteralType() ITSType {
	start := p.loc()
	n := &TSTemplateLiteralType{}
	elem := p.parseTemplateElement(false)
	n.Quasis = append(n.Quasis, elem)
	for !elem.Tail && !p.match(ErrorToken) {
		n.Types = append(n.Types, p.tsParseType())
		if !p.match(CloseBraceToken) {
			p.unexpected(CloseBraceToken)
			break
		}
		p.readTemplateContinuation()
		elem = p.parseTemplateElement(false)
		n.Quasis = append(n.Quasis, elem)
	}
	return finish(p, n, start)
}

////////////////////////////////////////////////////////////////

// tsParseTypeMember parses a member of a type literal or interface: a call or construct signature, an index
// signature, or a property or method signature.
func (p *Parser) tsParseTypeMember() ITSTypeElement {
	start := p.loc()
	if p.match(OpenParenToken) || p.match(LtToken) {
		sig := p.tsFillSignature(ColonToken)
		p.tsParseTypeMemberSemicolon()
		n := &TSCallSignatureDeclaration{TypeParameters: sig.typeParams, Params: sig.params, ReturnType: sig.returnType}
		return finish(p, n, start)
	}
	if p.match(NewToken) {
		p.next()
		if p.match(OpenParenToken) || p.match(LtToken) {
			sig := p.tsFillSignature(ColonToken)
			p.tsParseTypeMemberSemicolon()
			n := &TSConstructSignatureDeclaration{TypeParameters: sig.typeParams, Params: sig.params, ReturnType: sig.returnType}
			return finish(p, n, start)
		}
		key := finish(p, &Identifier{Name: "new"}, start)
		return p.tsParsePropertyOrMethodSignature(start, propertyName{key: key}, "", false)
	}

	m := p.tsParseModifiers([]string{"readonly"},
		[]string{"declare", "abstract", "private", "protected", "public", "static", "override"},
		false, TSInvalidModifierOnTypeMember)
	if idx := p.tsTryParseIndexSignature(start); idx != nil {
		idx.Readonly = m.has("readonly")
		return idx
	}
	name := p.parsePropertyName(nil)
	kind := MethodKind("")
	if id, ok := name.key.(*Identifier); ok && !name.computed && (id.Name == "get" || id.Name == "set") && p.tsTokenCanFollowModifier() {
		kind = MethodKind(id.Name)
		name = p.parsePropertyName(nil)
	}
	return p.tsParsePropertyOrMethodSignature(start, name, kind, m.has("readonly"))
}

func (p *Parser) tsParseTypeMemberSemicolon() {
	if !p.eat(CommaToken) && !p.isLineTerminator() {
		p.expect(SemicolonToken)
	}
}

func (p *Parser) tsParsePropertyOrMethodSignature(start Position, name propertyName, kind MethodKind, readonly bool) ITSTypeElement {
	optional := p.eat(QuestionToken)
	if !p.match(OpenParenToken) && !p.match(LtToken) {
		n := &TSPropertySignature{Key: name.key, Computed: name.computed, Optional: optional, Readonly: readonly}
		n.TypeAnnotation = p.tsTryParseTypeAnnotation()
		p.tsParseTypeMemberSemicolon()
		return finish(p, n, start)
	}

	if readonly {
		p.raise(TSReadonlyForMethodSignature, start)
	}
	if kind != "" && p.match(LtToken) {
		p.raise(TSAccessorCannotHaveTypeParameters, p.loc())
	}
	sig := p.tsFillSignature(ColonToken)
	p.tsParseTypeMemberSemicolon()
	loc := p.loc()
	switch kind {
	case MethodGet:
		if 0 < len(sig.params) {
			p.raise(BadGetterArity, loc)
			if isThisParam(sig.params[0]) {
				p.raise(TSAccessorCannotDeclareThisParameter, loc)
			}
		}
	case MethodSet:
		if len(sig.params) != 1 {
			p.raise(BadSetterArity, loc)
		} else {
			param := sig.params[0]
			if isThisParam(param) {
				p.raise(TSAccessorCannotDeclareThisParameter, loc)
			}
			if id, ok := param.(*Identifier); ok && id.Optional {
				p.raise(TSSetAccessorCannotHaveOptionalParameter, loc)
			}
			if _, ok := param.(*RestElement); ok {
				p.raise(TSSetAccessorCannotHaveRestParameter, loc)
			}
		}
		if sig.returnType != nil {
			p.raise(TSSetAccessorCannotHaveReturnType, sig.returnType.Start)
		}
	default:
		kind = MethodNormal
	}
	n := &TSMethodSignature{
		Key:            name.key,
		Computed:       name.computed,
		Optional:       optional,
		Kind:           kind,
		TypeParameters: sig.typeParams,
		Params:         sig.params,
		ReturnType:     sig.returnType,
	}
	return finish(p, n, start)
}

// tsTryParseIndexSignature parses [key: K]: V if the brackets unambiguously start an index signature.
func (p *Parser) tsTryParseIndexSignature(start Position) *TSIndexSignature {
	if !p.match(OpenBracketToken) || !p.tsLookAhead(p.tsIsUnambiguouslyIndexSignature) {
		return nil
	}
	p.expect(OpenBracketToken)
	id := p.parseIdentifier(false)
	id.TypeAnnotation = p.tsParseTypeAnnotation()
	id.End = p.s.prevEndLoc
	p.expect(CloseBracketToken)
	n := &TSIndexSignature{Parameters: []*Identifier{id}}
	n.TypeAnnotation = p.tsTryParseTypeAnnotation()
	p.tsParseTypeMemberSemicolon()
	return finish(p, n, start)
}

func (p *Parser) tsIsUnambiguouslyIndexSignature() bool {
	p.next()
	if !p.isIdentifier() {
		return false
	}
	p.next()
	return p.match(ColonToken)
}

// tsParseHeritageClause parses the names after extends or implements.
func (p *Parser) tsParseHeritageClause(token string) []*TSExpressionWithTypeArguments {
	start := p.loc()
	list := tsParseDelimitedList(p, func() bool { return p.match(OpenBraceToken) }, func() *TSExpressionWithTypeArguments {
		elemStart := p.loc()
		n := &TSExpressionWithTypeArguments{Expression: p.tsParseEntityName(true)}
		if p.match(LtToken) {
			n.TypeParameters = p.tsParseTypeArguments()
		}
		return finish(p, n, elemStart)
	})
	if len(list) == 0 {
		p.raise(TSEmptyHeritageClauseType, start, token)
	}
	return list
}
