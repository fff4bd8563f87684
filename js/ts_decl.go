package js

var tsClassMemberModifiers = []string{"declare", "private", "public", "protected", "override", "abstract", "readonly", "static"}

// setDeclare marks a declaration preceded by declare.
func setDeclare(n Node) {
	switch n := n.(type) {
	case *ClassDeclaration:
		n.Declare = true
	case *TSDeclareFunction:
		n.Declare = true
	case *VariableDeclaration:
		n.Declare = true
	case *TSInterfaceDeclaration:
		n.Declare = true
	case *TSTypeAliasDeclaration:
		n.Declare = true
	case *TSEnumDeclaration:
		n.Declare = true
	case *TSModuleDeclaration:
		n.Declare = true
	}
}

// tsIsDeclarationStart returns true if the current word starts a TypeScript declaration in an export.
func (p *Parser) tsIsDeclarationStart() bool {
	if !p.isIdentifier() || p.s.tok.Escaped {
		return false
	}
	switch p.s.tok.Value {
	case "abstract", "declare", "enum", "interface", "module", "namespace", "type":
		return true
	}
	return false
}

func (p *Parser) tsIsAbstractClass() bool {
	return p.isContextual("abstract") && p.lookahead().Type == ClassToken
}

// tsDeclarationFollows returns true if the current token can follow the given declaration keyword.
func (p *Parser) tsDeclarationFollows(word string) bool {
	switch word {
	case "abstract":
		return p.match(ClassToken) || p.isIdentifier()
	case "module":
		return p.match(StringToken) || p.isIdentifier()
	case "namespace", "type":
		return p.isIdentifier()
	}
	return false
}

// tsParseDeclaration parses an abstract class, module, namespace or type alias after the word. If next is set, the
// word is the current token and is consumed only when a declaration follows on the same line.
func (p *Parser) tsParseDeclaration(start Position, word string, next bool, decorators []*Decorator) IStmt {
	if next {
		if p.hasFollowingLineBreak() || !p.tsTry(func() bool {
			p.next()
			return p.tsDeclarationFollows(word)
		}) {
			return nil
		}
	} else if p.match(SemicolonToken) || p.canInsertSemicolon() || !p.tsDeclarationFollows(word) {
		return nil
	}

	switch word {
	case "abstract":
		return p.tsParseAbstractDeclaration(start, decorators)
	case "module":
		if p.match(StringToken) {
			return p.tsParseAmbientExternalModuleDeclaration(start)
		}
		return p.tsParseModuleOrNamespaceDeclaration(start, "module", false)
	case "namespace":
		return p.tsParseModuleOrNamespaceDeclaration(start, "namespace", false)
	case "type":
		return p.tsParseTypeAliasDeclaration(start)
	}
	return nil
}

func (p *Parser) tsParseAbstractDeclaration(start Position, decorators []*Decorator) IStmt {
	if p.match(ClassToken) {
		c := Class{Decorators: decorators, Abstract: true}
		return p.parseClass(&c, start, true, false).(IStmt)
	} else if p.isContextual("interface") && !p.hasFollowingLineBreak() {
		p.raise(TSNonClassMethodPropertyHasAbstractModifer, start)
		return p.tsParseInterfaceDeclaration(start)
	}
	return p.unexpected(ClassToken)
}

// tsParseInterfaceDeclaration parses an interface at the interface keyword. It returns nil if a line break follows
// the keyword.
func (p *Parser) tsParseInterfaceDeclaration(start Position) IStmt {
	if p.hasFollowingLineBreak() {
		return nil
	}
	p.expectContextual("interface")
	n := &TSInterfaceDeclaration{}
	if p.isIdentifier() {
		n.ID = p.parseIdentifier(false)
		p.checkIdentifier(n.ID, bindTSInterface, false)
	} else {
		p.raise(TSMissingInterfaceName, p.loc())
	}
	n.TypeParameters = p.tsTryParseTypeParameters(p.tsParseInOutConstModifiers)
	if p.eat(ExtendsToken) {
		n.Extends = p.tsParseHeritageClause("extends")
	}
	bodyStart := p.loc()
	body := &TSInterfaceBody{}
	p.tsInType(func() {
		body.Body = p.tsParseObjectTypeMembers()
	})
	n.Body = finish(p, body, bodyStart)
	return finish(p, n, start)
}

// tsParseTypeAliasDeclaration parses `type A<T> = B` after the type keyword.
func (p *Parser) tsParseTypeAliasDeclaration(start Position) IStmt {
	n := &TSTypeAliasDeclaration{ID: p.parseIdentifier(false)}
	p.checkIdentifier(n.ID, bindTSType, false)
	p.tsInType(func() {
		n.TypeParameters = p.tsTryParseTypeParameters(p.tsParseInOutModifiers)
		p.expect(EqToken)
		if p.isContextual("intrinsic") && p.lookahead().Type != DotToken {
			intrinsicStart := p.loc()
			p.next()
			n.TypeAnnotation = finish(p, &TSKeywordType{Keyword: TSIntrinsicKeywordNode}, intrinsicStart)
			return
		}
		n.TypeAnnotation = p.tsParseType()
	})
	p.semicolon()
	return finish(p, n, start)
}

// tsParseEnumDeclaration parses an enum at the enum keyword.
func (p *Parser) tsParseEnumDeclaration(start Position, isConst, declare bool) IStmt {
	n := &TSEnumDeclaration{Const: isConst, Declare: declare}
	p.expectContextual("enum")
	n.ID = p.parseIdentifier(false)
	binding := bindTSEnum
	if isConst {
		binding = bindTSConstEnum
	}
	p.checkIdentifier(n.ID, binding, false)
	p.expect(OpenBraceToken)
	n.Members = tsParseDelimitedList(p, func() bool { return p.match(CloseBraceToken) }, p.tsParseEnumMember)
	p.expect(CloseBraceToken)
	return finish(p, n, start)
}

func (p *Parser) tsParseEnumMember() *TSEnumMember {
	start := p.loc()
	n := &TSEnumMember{}
	if p.match(StringToken) {
		n.ID = p.parseStringLiteral()
	} else {
		n.ID = p.parseIdentifier(true)
	}
	if p.eat(EqToken) {
		n.Initializer = p.parseMaybeAssignAllowIn(nil, false)
	}
	return finish(p, n, start)
}

// tsParseModuleBlock parses the body of a namespace or module, which may contain exports.
func (p *Parser) tsParseModuleBlock() *TSModuleBlock {
	start := p.loc()
	n := &TSModuleBlock{Body: []IStmt{}}
	p.scopeEnter(scopeTSModule)
	p.prodParamEnter(paramNone)
	if p.expect(OpenBraceToken) {
		_, n.Body = p.parseBlockBody(CloseBraceToken, false, true, nil)
	}
	p.prodParamExit()
	p.scopeExit()
	return finish(p, n, start)
}

// tsParseModuleOrNamespaceDeclaration parses `namespace A.B {}` after the keyword. Nested names become nested
// declarations, of which only the outermost is bound.
func (p *Parser) tsParseModuleOrNamespaceDeclaration(start Position, kind string, nested bool) IStmt {
	n := &TSModuleDeclaration{Kind: kind}
	id := p.parseIdentifier(false)
	n.ID = id
	if !nested {
		p.checkIdentifier(id, bindTSNamespace, false)
	}
	if p.eat(DotToken) {
		n.Body = p.tsParseModuleOrNamespaceDeclaration(p.loc(), kind, true)
	} else {
		n.Body = p.tsParseModuleBlock()
	}
	return finish(p, n, start)
}

// tsParseAmbientExternalModuleDeclaration parses `module "m" {}` or `global {}`, of which the body may be omitted.
func (p *Parser) tsParseAmbientExternalModuleDeclaration(start Position) IStmt {
	n := &TSModuleDeclaration{}
	if p.isContextual("global") {
		n.Kind = "global"
		n.ID = p.parseIdentifier(false)
	} else if p.match(StringToken) {
		n.Kind = "module"
		n.ID = p.parseStringLiteral()
	} else {
		return p.unexpected(StringToken)
	}
	if p.match(OpenBraceToken) {
		n.Body = p.tsParseModuleBlock()
	} else {
		p.semicolon()
	}
	return finish(p, n, start)
}

// tsParseImportEqualsDeclaration parses `import A = require("m")` or `import A = B.C` at the name, or after it if id
// is given.
func (p *Parser) tsParseImportEqualsDeclaration(start Position, id *Identifier, importKind string, isExport bool) IStmt {
	n := &TSImportEqualsDeclaration{ID: id, ImportKind: importKind, IsExport: isExport}
	if n.ID == nil {
		n.ID = p.parseIdentifier(false)
	}
	p.checkIdentifier(n.ID, bindTSValueImport, false)
	p.expect(EqToken)
	if p.isContextual("require") && p.lookaheadCharCode() == '(' {
		refStart := p.loc()
		p.next()
		p.expect(OpenParenToken)
		ref := &TSExternalModuleReference{}
		if p.match(StringToken) {
			ref.Expression = p.parseStringLiteral()
		} else {
			p.unexpected(StringToken)
			ref.Expression = &StringLiteral{}
		}
		p.expect(CloseParenToken)
		n.ModuleReference = finish(p, ref, refStart)
	} else {
		n.ModuleReference = p.tsParseEntityName(false)
		if importKind == "type" {
			p.raise(TSImportAliasHasImportType, n.ModuleReference.Base().Start)
		}
	}
	p.semicolon()
	return finish(p, n, start)
}

// tsTryParseDeclare parses the declaration after declare in an ambient context. It returns nil if no declaration
// follows.
func (p *Parser) tsTryParseDeclare(start Position) IStmt {
	if p.match(SemicolonToken) || p.canInsertSemicolon() {
		return nil
	}
	if p.s.isAmbientContext && p.currentScope().flags&scopeTSModule != 0 {
		p.raise(TSDeclareInAmbientContext, start)
	}
	var n IStmt
	p.tsInAmbientContext(func() {
		switch tt := p.s.tok.Type; tt {
		case FunctionToken:
			p.next()
			n = p.parseFunctionStatement(start, false, false)
		case ClassToken:
			c := Class{Declare: true}
			n = p.parseClass(&c, start, true, false).(IStmt)
		case ConstToken, VarToken:
			if tt == ConstToken && p.lookaheadIsContextual("enum") {
				p.next()
				n = p.tsParseEnumDeclaration(start, true, true)
				return
			}
			kind := p.s.tok.Value
			p.next()
			n = p.parseVarStatement(start, kind, true)
		case IdentifierToken:
			switch p.s.tok.Value {
			case "let":
				p.next()
				n = p.parseVarStatement(start, "let", true)
			case "enum":
				n = p.tsParseEnumDeclaration(start, false, true)
			case "global":
				n = p.tsParseAmbientExternalModuleDeclaration(start)
			case "interface":
				n = p.tsParseInterfaceDeclaration(start)
			default:
				n = p.tsParseDeclaration(start, p.s.tok.Value, true, nil)
			}
		}
	})
	if n != nil {
		setDeclare(n)
	}
	return n
}

////////////////////////////////////////////////////////////////

// parseStatementContent parses enums and interfaces, which start with a word that may also start an expression.
func (h *tsHooks) parseStatementContent(flags stmtFlags, decorators []*Decorator) IStmt {
	p := h.p
	start := p.loc()
	if p.match(ConstToken) && p.lookaheadIsContextual("enum") {
		p.next()
		return p.tsParseEnumDeclaration(start, true, false)
	} else if p.isContextual("enum") {
		return p.tsParseEnumDeclaration(start, false, false)
	} else if p.isContextual("interface") {
		if n := p.tsParseInterfaceDeclaration(start); n != nil {
			return n
		}
	}
	return h.coreHooks.parseStatementContent(flags, decorators)
}

// parseExpressionStatement turns a statement starting with a word such as declare, namespace or type into the
// declaration it introduces.
func (h *tsHooks) parseExpressionStatement(start Position, expr IExpr, decorators []*Decorator) IStmt {
	p := h.p
	if id, ok := expr.(*Identifier); ok && !id.Parenthesized {
		var n IStmt
		switch id.Name {
		case "declare":
			n = p.tsTryParseDeclare(start)
		case "global":
			if p.match(OpenBraceToken) {
				mod := &TSModuleDeclaration{ID: id, Kind: "global"}
				mod.Body = p.tsParseModuleBlock()
				n = finish(p, mod, start)
			}
		default:
			n = p.tsParseDeclaration(start, id.Name, false, decorators)
		}
		if n != nil {
			return n
		}
	}
	return h.coreHooks.parseExpressionStatement(start, expr, decorators)
}

////////////////////////////////////////////////////////////////

// parseImport parses import-equals declarations and type-only imports.
func (h *tsHooks) parseImport(start Position) IStmt {
	p := h.p
	if p.match(StringToken) {
		return h.coreHooks.parseImport(start)
	}
	var n IStmt
	if p.isIdentifier() && p.lookaheadCharCode() == '=' {
		return p.tsParseImportEqualsDeclaration(start, nil, "value", false)
	} else if p.isContextual("type") {
		decl := &ImportDeclaration{ImportKind: "value"}
		defaultID := p.parseMaybeImportPhase(&decl.ImportKind, false)
		if p.lookaheadCharCode() == '=' && (defaultID == nil && p.isIdentifier()) {
			return p.tsParseImportEqualsDeclaration(start, nil, decl.ImportKind, false)
		}
		n = p.parseImportSpecifiersAndAfter(decl, start, defaultID)
	} else {
		n = h.coreHooks.parseImport(start)
	}
	if decl, ok := n.(*ImportDeclaration); ok && decl.ImportKind == "type" && 1 < len(decl.Specifiers) {
		if _, ok := decl.Specifiers[0].(*ImportDefaultSpecifier); ok {
			p.raise(TSTypeImportCannotSpecifyDefaultAndNamed, start)
		}
	}
	return n
}

// isPotentialImportPhase returns true for type in `import type x` and `export type {`, but not for `import type =`.
func (h *tsHooks) isPotentialImportPhase(isExport bool) bool {
	p := h.p
	if h.coreHooks.isPotentialImportPhase(isExport) {
		return true
	} else if !p.isContextual("type") {
		return false
	}
	c := p.lookaheadCharCode()
	if isExport {
		return c == '{' || c == '*'
	}
	return c != '='
}

func (h *tsHooks) parseImportSpecifier(start Position, imported IExpr, importedIsString, typeOnlyImport, maybeTypeOnly bool) *ImportSpecifier {
	p := h.p
	if importedIsString || !maybeTypeOnly {
		return h.coreHooks.parseImportSpecifier(start, imported, importedIsString, typeOnlyImport, maybeTypeOnly)
	}
	left, right, typeSpecifier := p.tsParseTypeOnlySpecifier(imported, true, typeOnlyImport)
	n := &ImportSpecifier{Imported: left, ImportKind: "value"}
	if typeSpecifier {
		n.ImportKind = "type"
	}
	local, ok := right.(*Identifier)
	if !ok {
		local = &Identifier{Name: keyName(right)}
		local.Start, local.End = right.Base().Start, right.Base().End
	}
	n.Local = local
	p.checkLVal(n.Local, lvalContext{in: "import specifier", binding: p.importBinding(typeSpecifier || typeOnlyImport)})
	return finish(p, n, start)
}

func (h *tsHooks) parseExportSpecifier(start Position, local IExpr, isString, typeOnlyExport, maybeTypeOnly bool) *ExportSpecifier {
	p := h.p
	if isString || !maybeTypeOnly {
		return h.coreHooks.parseExportSpecifier(start, local, isString, typeOnlyExport, maybeTypeOnly)
	}
	left, right, typeSpecifier := p.tsParseTypeOnlySpecifier(local, false, typeOnlyExport)
	n := &ExportSpecifier{Local: left, Exported: right, ExportKind: "value"}
	if typeSpecifier {
		n.ExportKind = "type"
	}
	return finish(p, n, start)
}

// tsParseTypeOnlySpecifier parses an import or export specifier that started with the word type, which is either a
// type modifier as in `{ type A as B }` or the name itself as in `{ type as B }`. It returns the names left and right
// of as.
func (p *Parser) tsParseTypeOnlySpecifier(leftOfAs IExpr, isImport, inTypeOnly bool) (IExpr, IExpr, bool) {
	parseRight := func() IExpr {
		if isImport {
			return p.parseIdentifier(false)
		}
		return p.parseModuleExportName()
	}
	loc := leftOfAs.Base().Start
	var rightOfAs IExpr
	typeSpecifier := false
	canParseAs := true
	if p.isContextual("as") {
		firstAs := p.parseIdentifier(true)
		if p.isContextual("as") {
			secondAs := p.parseIdentifier(true)
			if isKeywordOrIdentifier(p.s.tok.Type) {
				// { type as as x }
				typeSpecifier = true
				leftOfAs = firstAs
				rightOfAs = parseRight()
			} else {
				// { type as as }
				rightOfAs = secondAs
			}
			canParseAs = false
		} else if isKeywordOrIdentifier(p.s.tok.Type) {
			// { type as x }
			canParseAs = false
			rightOfAs = parseRight()
		} else {
			// { type as }
			typeSpecifier = true
			leftOfAs = firstAs
		}
	} else if isKeywordOrIdentifier(p.s.tok.Type) || !isImport && p.match(StringToken) {
		// { type x }
		typeSpecifier = true
		if isImport {
			id := p.parseIdentifier(true)
			if !p.isContextual("as") {
				p.checkReservedWord(id.Name, id.Start, true, true)
			}
			leftOfAs = id
		} else {
			leftOfAs = p.parseModuleExportName()
		}
	}
	if typeSpecifier && inTypeOnly {
		if isImport {
			p.raise(TSTypeModifierIsUsedInTypeImports, loc)
		} else {
			p.raise(TSTypeModifierIsUsedInTypeExports, loc)
		}
	}
	if canParseAs && p.eatContextual("as") {
		rightOfAs = parseRight()
	}
	if rightOfAs == nil {
		rightOfAs = cloneModuleExportName(leftOfAs)
	}
	return leftOfAs, rightOfAs, typeSpecifier
}

// parseExport parses `export import A = B`, `export = x` and `export as namespace A`.
func (h *tsHooks) parseExport(start Position, decorators []*Decorator) IStmt {
	p := h.p
	if p.eat(ImportToken) {
		kind := "value"
		var id *Identifier
		if p.isContextual("type") && p.h.isPotentialImportPhase(false) {
			id = p.parseMaybeImportPhase(&kind, false)
		}
		return p.tsParseImportEqualsDeclaration(start, id, kind, true)
	} else if p.eat(EqToken) {
		n := &TSExportAssignment{Expression: p.parseExpression()}
		p.semicolon()
		return finish(p, n, start)
	} else if p.eatContextual("as") {
		p.expectContextual("namespace")
		n := &TSNamespaceExportDeclaration{ID: p.parseIdentifier(false)}
		p.semicolon()
		return finish(p, n, start)
	}
	return h.coreHooks.parseExport(start, decorators)
}

func (h *tsHooks) shouldParseExportDeclaration() bool {
	return h.p.tsIsDeclarationStart() || h.coreHooks.shouldParseExportDeclaration()
}

// parseExportDeclaration parses the TypeScript declarations after export. Declarations that only declare types are
// exported as types.
func (h *tsHooks) parseExportDeclaration(n *ExportNamedDeclaration) Node {
	p := h.p
	if !p.s.isAmbientContext && p.isContextual("declare") {
		var decl Node
		p.tsInAmbientContext(func() {
			decl = h.parseExportDeclaration(n)
		})
		return decl
	}

	start := p.loc()
	isDeclare := p.eatContextual("declare")
	if isDeclare && (p.isContextual("declare") || !p.h.shouldParseExportDeclaration()) {
		p.raiseFatal(TSExpectedAmbientAfterExportDeclare, p.loc())
		return p.unexpected()
	}
	var decl Node
	if p.isIdentifier() {
		if stmt := p.tsParseDeclaration(p.loc(), p.s.tok.Value, true, nil); stmt != nil {
			decl = stmt
		}
	}
	if decl == nil {
		decl = h.coreHooks.parseExportDeclaration(n)
	}
	switch decl.(type) {
	case *TSInterfaceDeclaration, *TSTypeAliasDeclaration:
		n.ExportKind = "type"
	}
	if isDeclare {
		n.ExportKind = "type"
		p.resetStart(decl, start)
		setDeclare(decl)
	}
	return decl
}

// parseExportDefaultExpression parses `export default abstract class` and `export default interface`.
func (h *tsHooks) parseExportDefaultExpression() Node {
	p := h.p
	start := p.loc()
	if p.tsIsAbstractClass() {
		p.next()
		c := Class{Abstract: true}
		return p.parseClass(&c, start, true, true)
	} else if p.isContextual("interface") {
		if n := p.tsParseInterfaceDeclaration(start); n != nil {
			return n
		}
	}
	return h.coreHooks.parseExportDefaultExpression()
}

////////////////////////////////////////////////////////////////

func (h *tsHooks) canHaveLeadingDecorator() bool {
	return h.p.tsIsAbstractClass() || h.coreHooks.canHaveLeadingDecorator()
}

// parseClassID parses the class name and type parameters. The name is optional before implements.
func (h *tsHooks) parseClassID(c *Class, isStatement, optionalID bool) {
	p := h.p
	if (!isStatement || optionalID) && p.isContextual("implements") {
		return
	}
	h.coreHooks.parseClassID(c, isStatement, optionalID)
	c.TypeParameters = p.tsTryParseTypeParameters(p.tsParseInOutConstModifiers)
}

func (h *tsHooks) parseClassSuper(c *Class) {
	p := h.p
	h.coreHooks.parseClassSuper(c)
	if c.SuperClass != nil && (p.match(LtToken) || p.match(LtLtToken)) {
		c.SuperTypeParameters = p.tsParseTypeArgumentsInExpression()
	}
	if p.eatContextual("implements") {
		c.Implements = p.tsParseHeritageClause("implements")
	}
}

// parseClassMember parses the modifiers of a member. Members declared with declare are parsed as ambient.
func (h *tsHooks) parseClassMember(body *ClassBody, m *classMember, st *classState) {
	p := h.p
	mods := p.tsParseModifiers(tsClassMemberModifiers, []string{"in", "out"}, true, TSInvalidModifierOnTypeParameterPositions)
	m.accessibility = mods.accessibility
	m.declare = mods.has("declare")
	m.override = mods.has("override")
	m.abstract = mods.has("abstract")
	m.readonly = mods.has("readonly")
	m.static = mods.has("static")

	parseMember := func() {
		if p.tsIsStartOfStaticBlocks() {
			p.next()
			p.next()
			if !mods.empty() {
				p.raise(TSStaticBlockCannotHaveModifier, p.s.prevLoc)
			}
			p.parseClassStaticBlock(body, m)
		} else if m.static {
			p.h.parseClassMemberWithIsStatic(body, m, st)
		} else {
			h.coreHooks.parseClassMember(body, m, st)
		}
	}
	if m.declare {
		p.tsInAmbientContext(parseMember)
	} else {
		parseMember()
	}
}

// parseClassMemberWithIsStatic parses index signatures, and checks abstract and override against the class.
func (h *tsHooks) parseClassMemberWithIsStatic(body *ClassBody, m *classMember, st *classState) {
	p := h.p
	if idx := p.tsTryParseIndexSignature(m.start); idx != nil {
		idx.Static = m.static
		idx.Readonly = m.readonly
		body.Body = append(body.Body, idx)
		if m.abstract {
			p.raise(TSIndexSignatureHasAbstract, m.start)
		}
		if m.accessibility != "" {
			p.raise(TSIndexSignatureHasAccessibility, m.start, m.accessibility)
		}
		if m.declare {
			p.raise(TSIndexSignatureHasDeclare, m.start)
		}
		if m.override {
			p.raise(TSIndexSignatureHasOverride, m.start)
		}
		return
	}
	if !p.s.inAbstractClass && m.abstract {
		p.raise(TSNonAbstractClassHasAbstractMethod, m.start)
	}
	if m.override && !st.hadSuperClass {
		p.raise(TSOverrideNotInSubClass, m.start)
	}
	h.coreHooks.parseClassMemberWithIsStatic(body, m, st)
}

func (h *tsHooks) parsePostMemberNameModifiers(m *classMember) {
	p := h.p
	if p.eat(QuestionToken) {
		m.optional = true
	}
	if p.match(OpenParenToken) {
		if m.readonly {
			p.raise(TSClassMethodHasReadonly, m.start)
		}
		if m.declare {
			p.raise(TSClassMethodHasDeclare, m.start)
		}
	}
}

// checkGetterSetterParams rejects type parameters on accessors, and a return type or an optional value parameter on
// setters, of both classes and object literals.
func (h *tsHooks) checkGetterSetterParams(kind MethodKind, f *Function, loc Position) {
	p := h.p
	h.coreHooks.checkGetterSetterParams(kind, f, loc)
	if f.TypeParameters != nil {
		p.raise(TSAccessorCannotHaveTypeParameters, f.TypeParameters.Start)
	}
	if kind != MethodSet {
		return
	}
	if f.ReturnType != nil {
		p.raise(TSSetAccessorCannotHaveReturnType, f.ReturnType.Start)
	}
	params := f.Params
	if 0 < len(params) && isThisParam(params[0]) {
		params = params[1:]
	}
	if len(params) == 1 {
		if id, ok := params[0].(*Identifier); ok && id.Optional {
			p.raise(TSSetAccessorCannotHaveOptionalParameter, id.Start)
		}
	}
}

func (h *tsHooks) isClassMethod() bool {
	return h.p.match(LtToken) || h.coreHooks.isClassMethod()
}

func (h *tsHooks) isClassProperty() bool {
	p := h.p
	return p.match(NotToken) || p.match(ColonToken) || h.coreHooks.isClassProperty()
}

// parseClassPropertyModifiers parses the definite assertion and the type annotation of a field before its
// initializer.
func (h *tsHooks) parseClassPropertyModifiers(n *ClassProperty) {
	p := h.p
	if _, ok := n.Key.(*PrivateName); ok {
		if n.Abstract {
			p.raise(TSPrivateElementHasAbstract, n.Start)
		}
		if n.Accessibility != "" {
			p.raise(TSPrivateElementHasAccessibility, n.Start, n.Accessibility)
		}
	}
	if !n.Optional {
		if p.eat(NotToken) {
			n.Definite = true
		} else if p.eat(QuestionToken) {
			n.Optional = true
		}
	}
	n.TypeAnnotation = p.tsTryParseTypeAnnotation()
	if n.Accessor && n.Optional {
		p.raise(TSAccessorCannotBeOptional, n.Start)
	}
	if !p.match(EqToken) {
		return
	}
	if p.s.isAmbientContext && !(n.Readonly && n.TypeAnnotation == nil) {
		p.raise(TSDeclareClassFieldHasInitializer, p.loc())
	}
	if n.Abstract {
		name := keyName(n.Key)
		if _, ok := n.Key.(*Identifier); !ok || n.Computed {
			name = "[" + string(p.src[n.Key.Base().Start.Index:n.Key.Base().End.Index]) + "]"
		}
		p.raise(TSAbstractPropertyHasInitializer, p.loc(), name)
	}
}
