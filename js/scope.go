package js

type scopeFlags uint16

const (
	scopeProgram scopeFlags = 1 << iota
	scopeFunction
	scopeArrow
	scopeSimpleCatch
	scopeSuper
	scopeDirectSuper
	scopeClass
	scopeStaticBlock
	scopeTSModule

	scopeOther scopeFlags = 0
	scopeVar              = scopeProgram | scopeFunction | scopeStaticBlock | scopeTSModule
)

// bindingFlags describe a declared name: its kind, the scope it binds in and additional properties.
type bindingFlags uint16

const (
	bindKindValue bindingFlags = 1 << iota
	bindKindType
	bindScopeVar
	bindScopeLexical
	bindScopeFunction
	bindFlagsNone
	bindFlagsClass
	bindFlagsTSEnum
	bindFlagsTSConstEnum
	bindFlagsTSExportOnly
	bindFlagsTSImport
	bindFlagsNoLetInLexical

	bindClass          = bindKindValue | bindKindType | bindScopeLexical | bindFlagsClass | bindFlagsNoLetInLexical
	bindLexical        = bindKindValue | bindScopeLexical | bindFlagsNoLetInLexical
	bindCatchParam     = bindKindValue | bindScopeLexical
	bindVar            = bindKindValue | bindScopeVar
	bindFunction       = bindKindValue | bindScopeFunction
	bindTSInterface    = bindKindType | bindFlagsClass
	bindTSType         = bindKindType
	bindTSEnum         = bindKindValue | bindKindType | bindScopeLexical | bindFlagsTSEnum
	bindTSConstEnum    = bindTSEnum | bindFlagsTSConstEnum
	bindTSAmbient      = bindFlagsTSExportOnly
	bindTSNamespace    = bindFlagsTSExportOnly
	bindTSTypeImport   = bindKindType | bindFlagsTSImport
	bindTSValueImport  = bindKindValue | bindFlagsTSImport
	bindNone           = bindFlagsNone
	bindOutside        = bindKindValue | bindFlagsNone
	bindLexicalOrConst = bindLexical
)

// scope is a frame of the binding scope stack.
type scope struct {
	flags     scopeFlags
	vars      map[string]bool
	lexical   map[string]bool
	functions map[string]bool
	firstLex  string // first lexical name, the catch parameter of a simple catch scope

	// type level names
	types          map[string]bool
	enums          map[string]bool
	constEnums     map[string]bool
	classes        map[string]bool
	exportOnly     map[string]bool
	importedTypes  map[string]bool
	importedValues map[string]bool
}

func newScope(flags scopeFlags) *scope {
	return &scope{
		flags:     flags,
		vars:      map[string]bool{},
		lexical:   map[string]bool{},
		functions: map[string]bool{},
	}
}

func (p *Parser) scopeEnter(flags scopeFlags) {
	p.s.scopes = append(p.s.scopes, newScope(flags))
}

func (p *Parser) scopeExit() scopeFlags {
	s := p.s.scopes[len(p.s.scopes)-1]
	p.s.scopes = p.s.scopes[:len(p.s.scopes)-1]
	return s.flags
}

func (p *Parser) currentScope() *scope {
	return p.s.scopes[len(p.s.scopes)-1]
}

// add inserts the name into the set, which is created on demand, and journals the insertion.
func (p *Parser) add(set *map[string]bool, name string) {
	if *set == nil {
		*set = map[string]bool{}
	}
	if (*set)[name] {
		return
	}
	(*set)[name] = true
	m := *set
	p.record(func() { delete(m, name) })
}

// declareName declares a binding in the current scope and reports redeclarations.
func (p *Parser) declareName(name string, binding bindingFlags, loc Position) {
	s := p.currentScope()
	if binding&bindFlagsTSImport != 0 {
		if p.hasImport(name, true) {
			p.raise(VarRedeclaration, loc, name)
		}
		if binding&bindKindType != 0 {
			p.add(&s.importedTypes, name)
		} else {
			p.add(&s.importedValues, name)
		}
		p.maybeExportDefined(s, name)
		return
	}
	if binding&bindFlagsTSExportOnly != 0 {
		p.maybeExportDefined(s, name)
		p.add(&s.exportOnly, name)
		return
	}

	if binding&bindScopeLexical != 0 || binding&bindScopeFunction != 0 {
		p.checkRedeclarationInScope(s, name, binding, loc)
		if binding&bindScopeFunction != 0 {
			p.add(&s.functions, name)
		} else {
			if len(s.lexical) == 0 && s.firstLex == "" {
				s.firstLex = name
				p.record(func() { s.firstLex = "" })
			}
			p.add(&s.lexical, name)
		}
		if binding&bindScopeLexical != 0 {
			p.maybeExportDefined(s, name)
		}
	} else if binding&bindScopeVar != 0 {
		for i := len(p.s.scopes) - 1; 0 <= i; i-- {
			s = p.s.scopes[i]
			p.checkRedeclarationInScope(s, name, binding, loc)
			p.add(&s.vars, name)
			p.maybeExportDefined(s, name)
			if s.flags&scopeVar != 0 {
				break
			}
		}
	}
	if p.inModule && s.flags&scopeProgram != 0 {
		p.deleteUndefinedExport(name)
	}

	if binding&bindKindType != 0 {
		if binding&bindKindValue == 0 {
			// value bindings were checked above
			p.checkRedeclarationInScope(s, name, binding, loc)
			p.maybeExportDefined(s, name)
		}
		p.add(&s.types, name)
	}
	if binding&bindFlagsTSEnum != 0 {
		p.add(&s.enums, name)
	}
	if binding&bindFlagsTSConstEnum != 0 {
		p.add(&s.constEnums, name)
	}
	if binding&bindFlagsClass != 0 {
		p.add(&s.classes, name)
	}
}

func (p *Parser) maybeExportDefined(s *scope, name string) {
	if p.inModule && s.flags&scopeProgram != 0 {
		p.deleteUndefinedExport(name)
	}
}

func (p *Parser) deleteUndefinedExport(name string) {
	if loc, ok := p.undefinedExports[name]; ok {
		delete(p.undefinedExports, name)
		p.record(func() { p.undefinedExports[name] = loc })
	}
}

func (p *Parser) checkRedeclarationInScope(s *scope, name string, binding bindingFlags, loc Position) {
	if p.isRedeclaredInScope(s, name, binding) {
		p.raise(VarRedeclaration, loc, name)
	}
}

func (p *Parser) isRedeclaredInScope(s *scope, name string, binding bindingFlags) bool {
	if s.enums[name] {
		if binding&bindFlagsTSEnum != 0 {
			// enums merge when both or neither are const
			return (binding&bindFlagsTSConstEnum != 0) != s.constEnums[name]
		}
		return true
	}
	if binding&bindFlagsClass != 0 && s.classes[name] {
		if s.lexical[name] {
			// an interface merges with a class, a class does not merge with a class
			return binding&bindKindValue != 0
		}
		return false
	}
	if binding&bindKindType != 0 && s.types[name] {
		return true
	}

	if binding&bindKindValue == 0 {
		return false
	}
	if binding&bindScopeLexical != 0 {
		return s.lexical[name] || s.functions[name] || s.vars[name]
	}
	if binding&bindScopeFunction != 0 {
		return s.lexical[name] || !p.treatFunctionsAsVarInScope(s) && s.vars[name]
	}
	return s.lexical[name] && !(s.flags&scopeSimpleCatch != 0 && s.firstLex == name) ||
		!p.treatFunctionsAsVarInScope(s) && s.functions[name]
}

// checkLocalExport records an exported local name that is not (yet) declared at the top level.
func (p *Parser) checkLocalExport(id *Identifier) {
	name := id.Name
	if p.hasImport(name, false) {
		return
	}
	for i := len(p.s.scopes) - 1; 0 <= i; i-- {
		s := p.s.scopes[i]
		if s.types[name] || s.exportOnly[name] {
			return
		}
	}
	top := p.s.scopes[0]
	if !top.lexical[name] && !top.vars[name] && !top.functions[name] {
		if _, ok := p.undefinedExports[name]; !ok {
			p.undefinedExports[name] = id.Start
			p.record(func() { delete(p.undefinedExports, name) })
		}
	}
}

func (p *Parser) hasImport(name string, allowShadow bool) bool {
	for i := len(p.s.scopes) - 1; 0 <= i; i-- {
		s := p.s.scopes[i]
		if s.importedTypes[name] || s.importedValues[name] {
			return true
		}
		if allowShadow {
			break
		}
	}
	if !allowShadow || len(p.s.scopes) == 1 {
		return false
	}
	top := p.s.scopes[0]
	return top.importedTypes[name] || top.importedValues[name]
}

func (p *Parser) currentVarScopeFlags() scopeFlags {
	for i := len(p.s.scopes) - 1; 0 <= i; i-- {
		if flags := p.s.scopes[i].flags; flags&scopeVar != 0 {
			return flags
		}
	}
	return scopeOther
}

// currentThisScopeFlags returns the flags of the scope that determines this, skipping arrows.
func (p *Parser) currentThisScopeFlags() scopeFlags {
	for i := len(p.s.scopes) - 1; 0 <= i; i-- {
		if flags := p.s.scopes[i].flags; flags&(scopeVar|scopeClass) != 0 && flags&scopeArrow == 0 {
			return flags
		}
	}
	return scopeOther
}

func (p *Parser) inFunction() bool {
	return p.currentVarScopeFlags()&scopeFunction != 0
}

func (p *Parser) allowSuper() bool {
	return p.currentThisScopeFlags()&scopeSuper != 0
}

func (p *Parser) allowDirectSuper() bool {
	return p.currentThisScopeFlags()&scopeDirectSuper != 0
}

func (p *Parser) inClass() bool {
	return p.currentThisScopeFlags()&scopeClass != 0
}

func (p *Parser) inClassAndNotInNonArrowFunction() bool {
	flags := p.currentThisScopeFlags()
	return flags&scopeClass != 0 && flags&scopeFunction == 0
}

func (p *Parser) inStaticBlock() bool {
	for i := len(p.s.scopes) - 1; 0 <= i; i-- {
		flags := p.s.scopes[i].flags
		if flags&scopeStaticBlock != 0 {
			return true
		} else if flags&(scopeVar|scopeClass) != 0 {
			return false
		}
	}
	return false
}

func (p *Parser) inNonArrowFunction() bool {
	return p.currentThisScopeFlags()&scopeFunction != 0
}

func (p *Parser) treatFunctionsAsVar() bool {
	return p.treatFunctionsAsVarInScope(p.currentScope())
}

func (p *Parser) treatFunctionsAsVarInScope(s *scope) bool {
	return s.flags&(scopeFunction|scopeStaticBlock) != 0 || !p.inModule && s.flags&scopeProgram != 0
}

////////////////////////////////////////////////////////////////

type labelKind int

const (
	labelNone labelKind = iota
	labelLoop
	labelSwitch
)

type label struct {
	name           string
	kind           labelKind
	statementStart int
}
