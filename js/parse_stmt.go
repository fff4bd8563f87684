package js

// stmtFlags restrict which declarations may appear where a statement is parsed.
type stmtFlags uint8

const (
	stmtAllowImportExport stmtFlags = 1 << iota
	stmtAllowDeclaration
	stmtAllowFunctionDeclaration
	stmtAllowLabeledFunction

	stmtOnly stmtFlags = 0
)

func (p *Parser) parseModuleItem() IStmt {
	return p.parseStatementLike(stmtAllowImportExport | stmtAllowDeclaration | stmtAllowFunctionDeclaration | stmtAllowLabeledFunction)
}

func (p *Parser) parseStatementListItem() IStmt {
	flags := stmtAllowDeclaration | stmtAllowFunctionDeclaration
	if p.o.AnnexB && !p.s.strict {
		flags |= stmtAllowLabeledFunction
	}
	return p.parseStatementLike(flags)
}

// parseStatementOrSloppyAnnexBFunctionDeclaration parses the body of an if statement or label, which may be a
// function declaration in sloppy mode with Annex B.
func (p *Parser) parseStatementOrSloppyAnnexBFunctionDeclaration(allowLabeledFunction bool) IStmt {
	flags := stmtOnly
	if p.o.AnnexB && !p.s.strict {
		flags |= stmtAllowFunctionDeclaration
		if allowLabeledFunction {
			flags |= stmtAllowLabeledFunction
		}
	}
	return p.parseStatementLike(flags)
}

func (p *Parser) parseStatement() IStmt {
	return p.parseStatementLike(stmtOnly)
}

func (p *Parser) parseStatementLike(flags stmtFlags) IStmt {
	var decorators []*Decorator
	if p.match(AtToken) {
		decorators = p.parseDecorators(true)
	}
	return p.h.parseStatementContent(flags, decorators)
}

func (h *coreHooks) parseStatementContent(flags stmtFlags, decorators []*Decorator) IStmt {
	p := h.p
	start := p.loc()
	allowDeclaration := flags&stmtAllowDeclaration != 0
	allowFunctionDeclaration := flags&stmtAllowFunctionDeclaration != 0
	hanging := !allowDeclaration && allowFunctionDeclaration

	switch tt := p.s.tok.Type; tt {
	case BreakToken, ContinueToken:
		return p.parseBreakContinueStatement(tt == BreakToken)
	case DebuggerToken:
		p.next()
		p.semicolon()
		return finish(p, &DebuggerStatement{}, start)
	case DoToken:
		return p.parseDoWhileStatement()
	case ForToken:
		return p.parseForStatement()
	case FunctionToken:
		if p.lookaheadCharCode() == '.' {
			break
		}
		if !allowFunctionDeclaration {
			if p.s.strict {
				p.raise(StrictFunction, start)
			} else if p.o.AnnexB {
				p.raise(SloppyFunctionAnnexB, start)
			} else {
				p.raise(SloppyFunction, start)
			}
		}
		p.next()
		return p.parseFunctionStatement(start, false, hanging)
	case ClassToken:
		if !allowDeclaration {
			p.unexpected()
		}
		return p.parseClassStatement(start, decorators, false)
	case IfToken:
		return p.parseIfStatement()
	case ReturnToken:
		return p.parseReturnStatement()
	case SwitchToken:
		return p.parseSwitchStatement()
	case ThrowToken:
		return p.parseThrowStatement()
	case TryToken:
		return p.parseTryStatement()
	case ConstToken, VarToken:
		if tt == ConstToken && !allowDeclaration {
			p.raise(UnexpectedLexicalDeclaration, start)
		}
		kind := "var"
		if tt == ConstToken {
			kind = "const"
		}
		p.next()
		return p.parseVarStatement(start, kind, false)
	case WhileToken:
		return p.parseWhileStatement()
	case WithToken:
		return p.parseWithStatement()
	case OpenBraceToken:
		return p.parseBlock(false, true, nil)
	case SemicolonToken:
		p.next()
		return finish(p, &EmptyStatement{}, start)
	case ImportToken, ExportToken:
		if tt == ImportToken {
			if c := p.lookaheadCharCode(); c == '(' || c == '.' {
				break
			}
		}
		if !p.o.AllowImportExportEverywhere && flags&stmtAllowImportExport == 0 {
			p.raise(UnexpectedImportExport, start)
		}
		p.next()
		var n IStmt
		if tt == ImportToken {
			n = p.h.parseImport(start)
		} else {
			n = p.h.parseExport(start, decorators)
		}
		p.assertModuleNodeAllowed(n)
		return n
	case IdentifierToken:
		if p.s.tok.Escaped {
			break
		}
		switch p.s.tok.Value {
		case "await":
			if !p.startsAwaitUsing() {
				break
			}
			if !p.recordAwaitIfAllowed() {
				p.raise(AwaitUsingNotInAsyncContext, start)
			} else if !allowDeclaration {
				p.raise(UnexpectedLexicalDeclaration, start)
			}
			p.next()
			p.next()
			return p.parseVarStatement(start, "await using", false)
		case "using":
			next, ok := p.nextTokenInLineStart(p.s.tok.End)
			if !ok || !p.startsBindingIdentifierAt(next) {
				break
			}
			p.expectFeature(FeatureExplicitResourceManagement, start)
			if !p.inModule && p.currentScope().flags&scopeProgram != 0 {
				p.raise(UnexpectedUsingDeclaration, start)
			} else if !allowDeclaration {
				p.raise(UnexpectedLexicalDeclaration, start)
			}
			p.next()
			return p.parseVarStatement(start, "using", false)
		case "let":
			next := p.nextTokenStart()
			if next < len(p.src) && p.src[next] != '[' {
				if !allowDeclaration && p.hasFollowingLineBreak() {
					break
				}
				if !p.startsBindingIdentifierAt(next) && p.src[next] != '{' {
					break
				}
			} else if len(p.src) <= next {
				break
			}
			if !allowDeclaration {
				p.raise(UnexpectedLexicalDeclaration, start)
			}
			p.next()
			return p.parseVarStatement(start, "let", false)
		case "async":
			if !p.isAsyncFunction() {
				break
			}
			if !allowDeclaration {
				p.raise(AsyncFunctionInSingleStatementContext, start)
			}
			p.next()
			p.next()
			return p.parseFunctionStatement(start, true, hanging)
		}
	}

	startsWithIdentifier := p.match(IdentifierToken)
	expr := p.parseExpression()
	if id, ok := expr.(*Identifier); ok && startsWithIdentifier && id.Start.Index == start.Index && p.eat(ColonToken) {
		return p.parseLabeledStatement(start, id, flags)
	}
	return p.h.parseExpressionStatement(start, expr, decorators)
}

func (h *coreHooks) parseExpressionStatement(start Position, expr IExpr, decorators []*Decorator) IStmt {
	p := h.p
	if 0 < len(decorators) {
		p.raise(UnexpectedLeadingDecorator, decorators[0].Start)
	}
	n := &ExpressionStatement{Expression: expr}
	p.semicolon()
	return finish(p, n, start)
}

// assertModuleNodeAllowed reports import and export declarations in scripts. Type-only declarations are erased and
// therefore allowed.
func (p *Parser) assertModuleNodeAllowed(n IStmt) {
	if p.o.AllowImportExportEverywhere || p.inModule {
		return
	}
	switch n := n.(type) {
	case *ImportDeclaration:
		if n.ImportKind == "type" || n.ImportKind == "typeof" {
			return
		}
	case *ExportNamedDeclaration:
		if n.ExportKind == "type" {
			return
		}
	case *TSImportEqualsDeclaration, *TSNamespaceExportDeclaration, *TSExportAssignment:
		if p.o.TypeScript {
			return
		}
	}
	p.raise(ImportOutsideModule, n.Base().Start)
}

// nextTokenInLineStart returns the start of the token after pos if there is no line break in between.
func (p *Parser) nextTokenInLineStart(pos int) (int, bool) {
	next, newline := p.skipTrivia(pos)
	return next, !newline
}

// startsBindingIdentifierAt returns true if a binding identifier starts at pos. The relational keywords in and
// instanceof do not.
func (p *Parser) startsBindingIdentifierAt(pos int) bool {
	if !p.identifierStartsAt(pos) {
		return false
	}
	return !p.isUnescapedWordAt(pos, "in") && !p.isUnescapedWordAt(pos, "instanceof")
}

// startsAwaitUsing returns true for `await using x` on a single line.
func (p *Parser) startsAwaitUsing() bool {
	next, ok := p.nextTokenInLineStart(p.s.tok.End)
	if !ok || !p.isUnescapedWordAt(next, "using") {
		return false
	}
	next, ok = p.nextTokenInLineStart(next + len("using"))
	if !ok || !p.startsBindingIdentifierAt(next) {
		return false
	}
	p.expectFeature(FeatureExplicitResourceManagement, p.loc())
	return true
}

// startsUsingForOf returns true if `using` starts a declaration in a for head, which `using of` does not.
func (p *Parser) startsUsingForOf() bool {
	next := p.lookahead()
	if next.Type == IdentifierToken && next.Value == "of" && !next.Escaped {
		return false
	}
	if next.Type == IdentifierToken && !p.hasFollowingLineBreak() {
		p.expectFeature(FeatureExplicitResourceManagement, p.loc())
		return true
	}
	return false
}

// isAsyncFunction returns true for `async function` without a line break in between.
func (p *Parser) isAsyncFunction() bool {
	if !p.isContextual("async") {
		return false
	}
	next, ok := p.nextTokenInLineStart(p.s.tok.End)
	return ok && p.isUnescapedWordAt(next, "function")
}

// hasFollowingBindingAtom returns true if the next token starts a binding identifier or pattern.
func (p *Parser) hasFollowingBindingAtom() bool {
	next := p.nextTokenStart()
	if next < len(p.src) && (p.src[next] == '[' || p.src[next] == '{') {
		return true
	}
	return p.startsBindingIdentifierAt(next)
}

////////////////////////////////////////////////////////////////

func (p *Parser) parseBreakContinueStatement(isBreak bool) IStmt {
	start := p.loc()
	p.next()
	var label *Identifier
	if !p.isLineTerminator() {
		label = p.parseIdentifier(false)
		p.semicolon()
	}

	i := 0
	for ; i < len(p.s.labels); i++ {
		lab := p.s.labels[i]
		if label == nil || lab.name == label.Name {
			if lab.kind != labelNone && (isBreak || lab.kind == labelLoop) {
				break
			}
			if label != nil && isBreak {
				break
			}
		}
	}
	if i == len(p.s.labels) {
		kind := "continue"
		if isBreak {
			kind = "break"
		}
		p.raise(IllegalBreakContinue, start, kind)
	}
	if isBreak {
		return finish(p, &BreakStatement{Label: label}, start)
	}
	return finish(p, &ContinueStatement{Label: label}, start)
}

func (p *Parser) parseHeaderExpression() IExpr {
	p.expect(OpenParenToken)
	expr := p.parseExpression()
	p.expect(CloseParenToken)
	return expr
}

func (p *Parser) parseDoWhileStatement() IStmt {
	start := p.loc()
	p.next()
	p.s.labels = append(p.s.labels, label{kind: labelLoop})
	n := &DoWhileStatement{Body: p.parseStatement()}
	p.s.labels = p.s.labels[:len(p.s.labels)-1]
	p.expect(WhileToken)
	n.Test = p.parseHeaderExpression()
	p.eat(SemicolonToken)
	return finish(p, n, start)
}

// parseForStatement parses for, for-in, for-of and for-await-of statements. The head is parsed as a declaration or
// an expression before the kind of loop is known.
func (p *Parser) parseForStatement() IStmt {
	start := p.loc()
	p.next()
	p.s.labels = append(p.s.labels, label{kind: labelLoop})
	defer func() { p.s.labels = p.s.labels[:len(p.s.labels)-1] }()

	var awaitAt *Position
	if p.isContextual("await") && p.recordAwaitIfAllowed() {
		loc := p.loc()
		awaitAt = &loc
		p.next()
	}
	p.scopeEnter(scopeOther)
	defer p.scopeExit()
	p.expect(OpenParenToken)

	if p.match(SemicolonToken) {
		if awaitAt != nil {
			p.unexpectedAt(*awaitAt)
		}
		return p.parseFor(start, nil)
	}

	startsWithLet := p.isContextual("let")
	startsWithAwaitUsing := p.isContextual("await") && p.startsAwaitUsing()
	startsWithUsing := startsWithAwaitUsing || p.isContextual("using") && p.startsUsingForOf()
	if p.match(VarToken) || p.match(ConstToken) || startsWithLet && p.hasFollowingBindingAtom() || startsWithUsing {
		initStart := p.loc()
		var kind string
		if startsWithAwaitUsing {
			kind = "await using"
			if !p.recordAwaitIfAllowed() {
				p.raise(AwaitUsingNotInAsyncContext, p.loc())
			}
			p.next()
		} else {
			kind = p.s.tok.Value
			if p.match(VarToken) {
				kind = "var"
			} else if p.match(ConstToken) {
				kind = "const"
			}
		}
		p.next()
		init := p.parseVar(&VariableDeclaration{Kind: kind}, true, false)
		init = finish(p, init, initStart)
		isForIn := p.match(InToken)
		if isForIn && startsWithUsing {
			p.raise(ForInUsing, initStart)
		}
		if (isForIn || p.isContextual("of")) && len(init.Declarations) == 1 {
			return p.parseForIn(start, init, awaitAt)
		}
		if awaitAt != nil {
			p.unexpectedAt(*awaitAt)
		}
		return p.parseFor(start, init)
	}

	startsWithAsync := p.isContextual("async")
	refErrors := &exprErrors{}
	init := p.parseExpressionIn(false, refErrors)
	isForOf := p.isContextual("of")
	if isForOf {
		if startsWithLet {
			p.raise(ForOfLet, init.Base().Start)
		}
		if _, ok := init.(*Identifier); ok && awaitAt == nil && startsWithAsync {
			p.raise(ForOfAsync, init.Base().Start)
		}
	}
	if isForOf || p.match(InToken) {
		if refErrors.privateKey != nil {
			p.raise(UnexpectedPrivateField, *refErrors.privateKey)
		}
		left := p.toAssignable(init, true)
		in := "for-in statement"
		if isForOf {
			in = "for-of statement"
		}
		p.checkLVal(left, lvalContext{in: in})
		return p.parseForIn(start, left, awaitAt)
	}
	p.checkExpressionErrors(refErrors, true)
	if awaitAt != nil {
		p.unexpectedAt(*awaitAt)
	}
	return p.parseFor(start, init)
}

func (p *Parser) parseFor(start Position, init Node) IStmt {
	n := &ForStatement{Init: init}
	p.expect(SemicolonToken)
	if !p.match(SemicolonToken) {
		n.Test = p.parseExpression()
	}
	p.expect(SemicolonToken)
	if !p.match(CloseParenToken) {
		n.Update = p.parseExpression()
	}
	p.expect(CloseParenToken)
	n.Body = p.parseStatement()
	return finish(p, n, start)
}

func (p *Parser) parseForIn(start Position, left Node, awaitAt *Position) IStmt {
	isForIn := p.match(InToken)
	p.next()
	if isForIn && awaitAt != nil {
		p.unexpectedAt(*awaitAt)
	}

	if decl, ok := left.(*VariableDeclaration); ok && decl.Declarations[0].Init != nil {
		_, isIdentifier := decl.Declarations[0].ID.(*Identifier)
		if !isForIn || !p.o.AnnexB || p.s.strict || decl.Kind != "var" || !isIdentifier {
			kind := "for-of"
			if isForIn {
				kind = "for-in"
			}
			p.raise(ForInOfLoopInitializer, decl.Start, kind)
		}
	}
	if pattern, ok := left.(*AssignmentPattern); ok {
		p.raise(InvalidLhs, pattern.Start, "for-loop")
	}

	if isForIn {
		n := &ForInStatement{Left: left, Right: p.parseExpression()}
		p.expect(CloseParenToken)
		n.Body = p.parseStatement()
		return finish(p, n, start)
	}
	n := &ForOfStatement{Left: left, Await: awaitAt != nil, Right: p.parseMaybeAssignAllowIn(nil, false)}
	p.expect(CloseParenToken)
	n.Body = p.parseStatement()
	return finish(p, n, start)
}

func (p *Parser) parseIfStatement() IStmt {
	start := p.loc()
	p.next()
	n := &IfStatement{Test: p.parseHeaderExpression()}
	n.Consequent = p.parseStatementOrSloppyAnnexBFunctionDeclaration(false)
	if p.eat(ElseToken) {
		n.Alternate = p.parseStatementOrSloppyAnnexBFunctionDeclaration(false)
	}
	return finish(p, n, start)
}

func (p *Parser) parseReturnStatement() IStmt {
	start := p.loc()
	if !p.hasReturn() {
		p.raise(IllegalReturn, start)
	}
	p.next()
	n := &ReturnStatement{}
	if !p.isLineTerminator() {
		n.Argument = p.parseExpression()
		p.semicolon()
	}
	return finish(p, n, start)
}

func (p *Parser) parseSwitchStatement() IStmt {
	start := p.loc()
	p.next()
	n := &SwitchStatement{Discriminant: p.parseHeaderExpression()}
	p.expect(OpenBraceToken)
	p.s.labels = append(p.s.labels, label{kind: labelSwitch})
	p.scopeEnter(scopeOther)

	var cur *SwitchCase
	var curStart Position
	sawDefault := false
	for !p.match(CloseBraceToken) && !p.match(ErrorToken) {
		if p.match(CaseToken) || p.match(DefaultToken) {
			if cur != nil {
				n.Cases = append(n.Cases, finish(p, cur, curStart))
			}
			isCase := p.match(CaseToken)
			cur, curStart = &SwitchCase{}, p.loc()
			p.next()
			if isCase {
				cur.Test = p.parseExpression()
			} else {
				if sawDefault {
					p.raise(MultipleDefaultsInSwitch, p.s.prevLoc)
				}
				sawDefault = true
			}
			p.expect(ColonToken)
		} else if cur != nil {
			before := p.tokenCount
			cur.Consequent = append(cur.Consequent, p.parseStatementListItem())
			if before == p.tokenCount {
				p.next()
			}
		} else {
			p.unexpected(CaseToken)
			p.next()
		}
	}
	p.scopeExit()
	if cur != nil {
		n.Cases = append(n.Cases, finish(p, cur, curStart))
	}
	p.expect(CloseBraceToken)
	p.s.labels = p.s.labels[:len(p.s.labels)-1]
	return finish(p, n, start)
}

func (p *Parser) parseThrowStatement() IStmt {
	start := p.loc()
	p.next()
	if p.hasPrecedingLineBreak() {
		p.raise(NewlineAfterThrow, p.s.prevEndLoc)
	}
	n := &ThrowStatement{Argument: p.parseExpression()}
	p.semicolon()
	return finish(p, n, start)
}

func (p *Parser) parseTryStatement() IStmt {
	start := p.loc()
	p.next()
	n := &TryStatement{Block: p.parseBlock(false, true, nil)}
	if p.match(CatchToken) {
		clauseStart := p.loc()
		clause := &CatchClause{}
		p.next()
		if p.eat(OpenParenToken) {
			clause.Param = p.parseCatchClauseParam()
			p.expect(CloseParenToken)
		} else {
			p.scopeEnter(scopeOther)
		}
		clause.Body = p.parseBlock(false, false, nil)
		p.scopeExit()
		n.Handler = finish(p, clause, clauseStart)
	}
	if p.eat(FinallyToken) {
		n.Finalizer = p.parseBlock(false, true, nil)
	}
	if n.Handler == nil && n.Finalizer == nil {
		p.raise(NoCatchOrFinally, start)
	}
	return finish(p, n, start)
}

// parseCatchClauseParam parses the catch binding and enters the catch scope. A simple catch parameter may be
// redeclared by var with Annex B.
func (p *Parser) parseCatchClauseParam() IPattern {
	param := p.h.parseBindingAtom()
	param = p.h.parseCatchClauseParamType(param)
	flags := scopeOther
	if _, ok := param.(*Identifier); ok && p.o.AnnexB {
		flags = scopeSimpleCatch
	}
	p.scopeEnter(flags)
	p.checkLVal(param, lvalContext{in: "catch clause", binding: bindCatchParam})
	return param
}

func (h *coreHooks) parseCatchClauseParamType(param IPattern) IPattern {
	return param
}

// parseVarStatement parses a variable declaration after the kind keyword. In an ambient context initializers are
// only allowed for const declarations without a type annotation.
func (p *Parser) parseVarStatement(start Position, kind string, allowMissingInitializer bool) IStmt {
	ambient := p.s.isAmbientContext
	n := p.parseVar(&VariableDeclaration{Kind: kind}, false, allowMissingInitializer || ambient)
	p.semicolon()
	n = finish(p, n, start)
	if ambient {
		for _, decl := range n.Declarations {
			if decl.Init == nil {
				continue
			}
			if kind != "const" || patternTypeAnnotation(decl.ID) != nil {
				p.raise(TSInitializerNotAllowedInAmbientContext, decl.Init.Base().Start)
			}
		}
	}
	return n
}

func (p *Parser) parseVar(n *VariableDeclaration, isFor, allowMissingInitializer bool) *VariableDeclaration {
	kind := n.Kind
	for {
		start := p.loc()
		decl := &VariableDeclarator{}
		p.h.parseVarID(decl, kind)
		if p.eat(EqToken) {
			if isFor {
				decl.Init = p.parseMaybeAssignDisallowIn(nil, false)
			} else {
				decl.Init = p.parseMaybeAssignAllowIn(nil, false)
			}
		} else if !allowMissingInitializer {
			_, isIdentifier := decl.ID.(*Identifier)
			inOrOf := isFor && (p.match(InToken) || p.isContextual("of"))
			if !isIdentifier && !inOrOf {
				p.raise(DeclarationMissingInitializer, p.s.prevEndLoc, "destructuring")
			} else if (kind == "const" || kind == "using" || kind == "await using") && !(p.match(InToken) || p.isContextual("of")) {
				p.raise(DeclarationMissingInitializer, p.s.prevEndLoc, kind)
			}
		}
		n.Declarations = append(n.Declarations, finish(p, decl, start))
		if !p.eat(CommaToken) {
			break
		}
	}
	return n
}

func (h *coreHooks) parseVarID(decl *VariableDeclarator, kind string) {
	p := h.p
	id := p.h.parseBindingAtom()
	if kind == "using" || kind == "await using" {
		switch id.(type) {
		case *ArrayPattern, *ObjectPattern:
			p.raise(UsingDeclarationHasBindingPattern, id.Base().Start)
		}
	}
	binding := bindLexical
	if kind == "var" {
		binding = bindVar
	}
	p.checkLVal(id, lvalContext{in: "variable declaration", binding: binding})
	decl.ID = id
}

func (p *Parser) parseWhileStatement() IStmt {
	start := p.loc()
	p.next()
	n := &WhileStatement{Test: p.parseHeaderExpression()}
	p.s.labels = append(p.s.labels, label{kind: labelLoop})
	n.Body = p.parseStatement()
	p.s.labels = p.s.labels[:len(p.s.labels)-1]
	return finish(p, n, start)
}

func (p *Parser) parseWithStatement() IStmt {
	start := p.loc()
	if p.s.strict {
		p.raise(StrictWith, start)
	}
	p.next()
	n := &WithStatement{Object: p.parseHeaderExpression()}
	n.Body = p.parseStatement()
	return finish(p, n, start)
}

// parseLabeledStatement parses the body of a label. Labels directly preceding a loop or switch take its kind, so
// that continue can target them.
func (p *Parser) parseLabeledStatement(start Position, id *Identifier, flags stmtFlags) IStmt {
	for _, lab := range p.s.labels {
		if lab.name == id.Name {
			p.raise(LabelRedeclaration, id.Start, id.Name)
		}
	}
	kind := labelNone
	switch p.s.tok.Type {
	case DoToken, ForToken, WhileToken:
		kind = labelLoop
	case SwitchToken:
		kind = labelSwitch
	}
	for i := len(p.s.labels) - 1; 0 <= i; i-- {
		if p.s.labels[i].statementStart != start.Index {
			break
		}
		p.s.labels[i].statementStart = p.s.tok.Start
		p.s.labels[i].kind = kind
	}
	p.s.labels = append(p.s.labels, label{name: id.Name, kind: kind, statementStart: p.s.tok.Start})

	n := &LabeledStatement{Label: id}
	if flags&stmtAllowLabeledFunction != 0 {
		n.Body = p.parseStatementOrSloppyAnnexBFunctionDeclaration(true)
	} else {
		n.Body = p.parseStatement()
	}
	p.s.labels = p.s.labels[:len(p.s.labels)-1]
	return finish(p, n, start)
}

// parseBlock parses a block statement. Function bodies allow directives and share the scope of the parameters;
// after is called once the statements are parsed, before strict mode is reset.
func (p *Parser) parseBlock(allowDirectives, newScope bool, after func(hasStrictModeDirective bool)) *BlockStatement {
	start := p.loc()
	if allowDirectives {
		p.flushStrictErrors(false)
	}
	n := &BlockStatement{}
	if !p.expect(OpenBraceToken) {
		return finish(p, n, start)
	}
	if newScope {
		p.scopeEnter(scopeOther)
	}
	n.Directives, n.Body = p.parseBlockBody(CloseBraceToken, allowDirectives, false, after)
	if newScope {
		p.scopeExit()
	}
	return finish(p, n, start)
}
