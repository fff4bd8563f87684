package js

// parseImport parses an import declaration after the import keyword.
func (h *coreHooks) parseImport(start Position) IStmt {
	p := h.p
	n := &ImportDeclaration{ImportKind: "value"}
	if p.match(StringToken) {
		return p.parseImportSourceAndAttributes(n, start)
	}
	defaultID := p.parseMaybeImportPhase(&n.ImportKind, false)
	return p.parseImportSpecifiersAndAfter(n, start, defaultID)
}

// parseMaybeImportPhase parses a modifier such as `type` in `import type x from "m"`. The word is a default binding
// instead when it is followed by from or a comma. The kind is set for import or export.
func (p *Parser) parseMaybeImportPhase(kind *string, isExport bool) *Identifier {
	if !p.h.isPotentialImportPhase(isExport) {
		return nil
	}
	phase := p.parseIdentifier(true)
	isPhase := false
	if isKeywordOrIdentifier(p.s.tok.Type) {
		isPhase = !p.isContextual("from") || p.lookaheadCharCode() == 'f'
	} else {
		isPhase = !p.match(CommaToken)
	}
	if !isPhase {
		return phase
	}
	p.resetPreviousNodeTrailingComments(phase)
	if isExport {
		*kind = "type"
	} else {
		*kind = phase.Name
	}
	return nil
}

func (h *coreHooks) isPotentialImportPhase(isExport bool) bool {
	return false
}

func (p *Parser) parseImportSpecifiersAndAfter(n *ImportDeclaration, start Position, defaultID *Identifier) IStmt {
	hasDefault := p.maybeParseDefaultImportSpecifier(n, defaultID)
	parseNext := !hasDefault || p.eat(CommaToken)
	hasStar := parseNext && p.maybeParseStarImportSpecifier(n)
	if parseNext && !hasStar {
		p.parseNamedImportSpecifiers(n)
	}
	p.expectContextual("from")
	return p.parseImportSourceAndAttributes(n, start)
}

func (p *Parser) parseImportSourceAndAttributes(n *ImportDeclaration, start Position) IStmt {
	n.Source = p.parseImportSource()
	n.Attributes, n.AttributesKeyword = p.maybeParseImportAttributes()
	p.semicolon()
	return finish(p, n, start)
}

func (p *Parser) parseImportSource() *StringLiteral {
	if !p.match(StringToken) {
		p.unexpected(StringToken)
		return &StringLiteral{}
	}
	return p.parseStringLiteral()
}

// importBinding returns the binding kind of an imported name. TypeScript tracks type and value imports apart so that
// a type import does not clash with a value of the same name.
func (p *Parser) importBinding(typeOnly bool) bindingFlags {
	if !p.o.TypeScript {
		return bindLexical
	} else if typeOnly {
		return bindTSTypeImport
	}
	return bindTSValueImport
}

func (p *Parser) maybeParseDefaultImportSpecifier(n *ImportDeclaration, defaultID *Identifier) bool {
	start := p.loc()
	if defaultID != nil {
		start = defaultID.Start
	} else if isKeywordOrIdentifier(p.s.tok.Type) {
		defaultID = p.parseIdentifier(false)
	} else {
		return false
	}
	p.checkLVal(defaultID, lvalContext{in: "import default specifier", binding: p.importBinding(n.ImportKind == "type")})
	n.Specifiers = append(n.Specifiers, finish(p, &ImportDefaultSpecifier{Local: defaultID}, start))
	return true
}

func (p *Parser) maybeParseStarImportSpecifier(n *ImportDeclaration) bool {
	if !p.match(MulToken) {
		return false
	}
	start := p.loc()
	p.next()
	p.expectContextual("as")
	local := p.parseIdentifier(false)
	p.checkLVal(local, lvalContext{in: "import namespace specifier", binding: p.importBinding(n.ImportKind == "type")})
	n.Specifiers = append(n.Specifiers, finish(p, &ImportNamespaceSpecifier{Local: local}, start))
	return true
}

func (p *Parser) parseNamedImportSpecifiers(n *ImportDeclaration) {
	if !p.expect(OpenBraceToken) {
		return
	}
	first := true
	for !p.eat(CloseBraceToken) {
		if !first {
			if p.match(ColonToken) {
				p.raise(DestructureNamedImport, p.loc())
				p.next()
				continue
			}
			if !p.expect(CommaToken) {
				break
			} else if p.eat(CloseBraceToken) {
				break
			}
		}
		first = false

		start := p.loc()
		importedIsString := p.match(StringToken)
		maybeTypeOnly := p.isContextual("type")
		imported := p.parseModuleExportName()
		typeOnlyImport := n.ImportKind == "type" || n.ImportKind == "typeof"
		n.Specifiers = append(n.Specifiers, p.h.parseImportSpecifier(start, imported, importedIsString, typeOnlyImport, maybeTypeOnly))
	}
}

func (h *coreHooks) parseImportSpecifier(start Position, imported IExpr, importedIsString, typeOnlyImport, maybeTypeOnly bool) *ImportSpecifier {
	p := h.p
	n := &ImportSpecifier{Imported: imported, ImportKind: "value"}
	return p.finishImportSpecifier(n, start, importedIsString, p.importBinding(typeOnlyImport))
}

func (p *Parser) finishImportSpecifier(n *ImportSpecifier, start Position, importedIsString bool, binding bindingFlags) *ImportSpecifier {
	if p.eatContextual("as") {
		n.Local = p.parseIdentifier(false)
	} else if importedIsString {
		p.raise(ImportBindingIsString, n.Imported.Base().Start, keyName(n.Imported))
		n.Local = &Identifier{Name: keyName(n.Imported)}
		n.Local.Start, n.Local.End = n.Imported.Base().Start, n.Imported.Base().End
	} else if n.Local == nil {
		imported := n.Imported.(*Identifier)
		p.checkReservedWord(imported.Name, start, true, true)
		n.Local = cloneIdentifier(imported)
	}
	p.checkLVal(n.Local, lvalContext{in: "import specifier", binding: binding})
	return finish(p, n, start)
}

func (p *Parser) parseModuleExportName() IExpr {
	if p.match(StringToken) {
		return p.parseStringLiteral()
	}
	return p.parseIdentifier(true)
}

// maybeParseImportAttributes parses `with { type: "json" }`, or the deprecated `assert` form.
func (p *Parser) maybeParseImportAttributes() ([]*ImportAttribute, string) {
	keyword := ""
	if p.match(WithToken) {
		if p.hasPrecedingLineBreak() && p.lookaheadCharCode() == '(' {
			return nil, ""
		}
		p.expectFeature(FeatureImportAttributes, p.loc())
		keyword = "with"
	} else if p.isContextual("assert") && !p.hasPrecedingLineBreak() {
		if p.o.Features[FeatureImportAttributes] {
			p.raise(ImportAttributesUseAssert, p.loc())
		} else {
			p.expectFeature(FeatureImportAssertions, p.loc())
		}
		keyword = "assert"
	} else {
		return nil, ""
	}
	p.next()
	return p.parseImportAttributes(), keyword
}

func (p *Parser) parseImportAttributes() []*ImportAttribute {
	attributes := []*ImportAttribute{}
	if !p.expect(OpenBraceToken) {
		return attributes
	}
	seen := map[string]bool{}
	for !p.match(CloseBraceToken) && !p.match(ErrorToken) {
		start := p.loc()
		n := &ImportAttribute{}
		if p.match(StringToken) {
			n.Key = p.parseStringLiteral()
		} else {
			n.Key = p.parseIdentifier(true)
		}
		if name := keyName(n.Key); seen[name] {
			p.raise(ModuleAttributesWithDuplicateKeys, start, name)
		} else {
			seen[name] = true
		}
		p.expect(ColonToken)
		if p.match(StringToken) {
			n.Value = p.parseStringLiteral()
		} else {
			p.unexpected(StringToken)
		}
		attributes = append(attributes, finish(p, n, start))
		if !p.eat(CommaToken) {
			break
		}
	}
	p.expect(CloseBraceToken)
	return attributes
}

////////////////////////////////////////////////////////////////

// parseExport parses an export declaration after the export keyword. Decorators before export are moved to the
// exported class.
func (h *coreHooks) parseExport(start Position, decorators []*Decorator) IStmt {
	p := h.p
	if 0 < len(decorators) {
		start = decorators[0].Start
	}
	exportKind := "value"
	p.parseMaybeImportPhase(&exportKind, true)

	if p.eat(MulToken) {
		var ns *ExportNamespaceSpecifier
		if p.isContextual("as") {
			nsStart := p.s.prevLoc
			p.next()
			ns = finish(p, &ExportNamespaceSpecifier{Exported: p.parseModuleExportName()}, nsStart)
		}
		if 0 < len(decorators) {
			p.raise(UnsupportedDecoratorExport, start)
		}
		if ns == nil {
			n := &ExportAllDeclaration{ExportKind: exportKind}
			p.expectContextual("from")
			n.Source = p.parseImportSource()
			n.Attributes, _ = p.maybeParseImportAttributes()
			p.semicolon()
			return finish(p, n, start)
		}
		n := &ExportNamedDeclaration{ExportKind: exportKind, Specifiers: []IModuleSpecifier{ns}}
		if p.match(CommaToken) {
			p.unexpected()
		}
		p.parseExportFrom(n, true)
		p.checkExport(n, false, true)
		return finish(p, n, start)
	}

	if p.match(OpenBraceToken) {
		if 0 < len(decorators) {
			p.raise(UnsupportedDecoratorExport, start)
		}
		n := &ExportNamedDeclaration{ExportKind: exportKind}
		n.Specifiers = p.parseExportSpecifiers(exportKind == "type")
		p.parseExportFrom(n, false)
		p.checkExport(n, false, n.Source != nil)
		return finish(p, n, start)
	}

	if p.h.shouldParseExportDeclaration() {
		n := &ExportNamedDeclaration{ExportKind: exportKind}
		n.Declaration = p.h.parseExportDeclaration(n)
		p.takeExportDecorators(decorators, n.Declaration, start)
		p.checkExport(n, false, false)
		return finish(p, n, start)
	}

	if p.eat(DefaultToken) {
		n := &ExportDefaultDeclaration{}
		n.Declaration = p.h.parseExportDefaultExpression()
		p.takeExportDecorators(decorators, n.Declaration, start)
		p.checkDuplicateExports(start, "default")
		return finish(p, n, start)
	}

	n := &ExportNamedDeclaration{ExportKind: exportKind}
	p.unexpected(OpenBraceToken)
	return finish(p, n, start)
}

// takeExportDecorators moves decorators written before export to the exported class.
func (p *Parser) takeExportDecorators(decorators []*Decorator, decl Node, start Position) {
	if len(decorators) == 0 {
		return
	}
	var c *Class
	switch decl := decl.(type) {
	case *ClassDeclaration:
		c = &decl.Class
	case *ClassExpression:
		c = &decl.Class
	}
	if c == nil {
		p.raise(UnsupportedDecoratorExport, start)
		return
	}
	if 0 < len(c.Decorators) {
		p.raise(DecoratorsBeforeAfterExport, c.Decorators[0].Start)
	}
	c.Decorators = append(append([]*Decorator{}, decorators...), c.Decorators...)
	decl.Base().Start = decorators[0].Start
}

func (p *Parser) parseExportFrom(n *ExportNamedDeclaration, required bool) {
	if p.eatContextual("from") {
		n.Source = p.parseImportSource()
		n.Attributes, _ = p.maybeParseImportAttributes()
	} else if required {
		p.unexpected()
	}
	p.semicolon()
}

func (p *Parser) parseExportSpecifiers(typeOnlyExport bool) []IModuleSpecifier {
	specifiers := []IModuleSpecifier{}
	if !p.expect(OpenBraceToken) {
		return specifiers
	}
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

		start := p.loc()
		maybeTypeOnly := p.isContextual("type")
		isString := p.match(StringToken)
		local := p.parseModuleExportName()
		specifiers = append(specifiers, p.h.parseExportSpecifier(start, local, isString, typeOnlyExport, maybeTypeOnly))
	}
	return specifiers
}

func (h *coreHooks) parseExportSpecifier(start Position, local IExpr, isString, typeOnlyExport, maybeTypeOnly bool) *ExportSpecifier {
	p := h.p
	n := &ExportSpecifier{Local: local, ExportKind: "value"}
	if p.eatContextual("as") {
		n.Exported = p.parseModuleExportName()
	} else {
		n.Exported = cloneModuleExportName(local)
	}
	return finish(p, n, start)
}

func cloneModuleExportName(name IExpr) IExpr {
	switch name := name.(type) {
	case *Identifier:
		return cloneIdentifier(name)
	case *StringLiteral:
		clone := &StringLiteral{Value: name.Value, Raw: name.Raw}
		clone.Start, clone.End = name.Start, name.End
		return clone
	}
	return name
}

func (h *coreHooks) shouldParseExportDeclaration() bool {
	p := h.p
	if p.match(AtToken) {
		if p.o.Decorators == ProposalDecorators {
			return true
		}
	}
	switch p.s.tok.Type {
	case VarToken, ConstToken, FunctionToken, ClassToken:
		return true
	}
	return p.isLet() || p.isAsyncFunction()
}

func (p *Parser) isLet() bool {
	return p.isContextual("let") && p.hasFollowingBindingAtom()
}

func (h *coreHooks) parseExportDeclaration(n *ExportNamedDeclaration) Node {
	p := h.p
	if p.match(ClassToken) {
		return p.parseClassStatement(p.loc(), nil, false)
	}
	return p.parseStatementListItem()
}

// parseExportDefaultExpression parses the declaration or expression after `export default`. Function and class
// declarations may omit their name.
func (h *coreHooks) parseExportDefaultExpression() Node {
	p := h.p
	start := p.loc()
	if p.eat(FunctionToken) {
		return p.parseExportDefaultFunction(start, false)
	} else if p.isAsyncFunction() {
		p.next()
		p.next()
		return p.parseExportDefaultFunction(start, true)
	} else if p.match(ClassToken) {
		return p.parseClassStatement(start, nil, true)
	} else if p.match(AtToken) {
		decorators := p.parseDecorators(false)
		return p.parseClassStatement(start, decorators, true)
	} else if p.match(ConstToken) || p.match(VarToken) || p.isLet() {
		p.raise(UnsupportedDefaultExport, start)
	}
	expr := p.parseMaybeAssignAllowIn(nil, false)
	p.semicolon()
	return expr
}

// checkExport records the exported names of a named export and reports duplicates. Local names of specifiers are
// checked against the top level scope unless re-exported from another module.
func (p *Parser) checkExport(n *ExportNamedDeclaration, isDefault, isFrom bool) {
	if p.currentScope().flags&scopeTSModule != 0 {
		// exports of a namespace are members of the namespace
		return
	}
	if isDefault {
		p.checkDuplicateExports(n.Start, "default")
		return
	}
	if 0 < len(n.Specifiers) {
		for _, spec := range n.Specifiers {
			switch spec := spec.(type) {
			case *ExportNamespaceSpecifier:
				p.checkDuplicateExports(spec.Start, keyName(spec.Exported))
			case *ExportSpecifier:
				exportName := keyName(spec.Exported)
				p.checkDuplicateExports(spec.Start, exportName)
				if isFrom {
					continue
				}
				if local, ok := spec.Local.(*Identifier); ok {
					p.checkReservedWord(local.Name, local.Start, true, false)
					p.checkLocalExport(local)
				} else {
					p.raise(ExportBindingIsString, spec.Start, keyName(spec.Local), exportName)
				}
			}
		}
		return
	}
	switch decl := n.Declaration.(type) {
	case *FunctionDeclaration:
		if decl.ID != nil {
			p.checkDuplicateExports(decl.ID.Start, decl.ID.Name)
		}
	case *ClassDeclaration:
		if decl.ID != nil {
			p.checkDuplicateExports(decl.ID.Start, decl.ID.Name)
		}
	case *VariableDeclaration:
		for _, d := range decl.Declarations {
			p.checkExportedBindings(d.ID)
		}
	}
}

func (p *Parser) checkExportedBindings(n Node) {
	switch n := n.(type) {
	case *Identifier:
		p.checkDuplicateExports(n.Start, n.Name)
	case *ObjectPattern:
		for _, prop := range n.Properties {
			p.checkExportedBindings(prop)
		}
	case *ArrayPattern:
		for _, elem := range n.Elements {
			if elem != nil {
				p.checkExportedBindings(elem)
			}
		}
	case *ObjectProperty:
		p.checkExportedBindings(n.Value)
	case *RestElement:
		p.checkExportedBindings(n.Argument)
	case *AssignmentPattern:
		p.checkExportedBindings(n.Left)
	}
}

func (p *Parser) checkDuplicateExports(loc Position, name string) {
	if p.exportedNames[name] {
		if name == "default" {
			p.raise(DuplicateDefaultExport, loc)
		} else {
			p.raise(DuplicateExport, loc, name)
		}
		return
	}
	p.exportedNames[name] = true
	p.record(func() { delete(p.exportedNames, name) })
}
