package js

// classElementFlags describe a private class element for redeclaration checks.
type classElementFlags uint8

const (
	classElementStatic classElementFlags = 1 << iota
	classElementGetter
	classElementSetter

	classElementOther    classElementFlags = 0
	classElementAccessor                   = classElementGetter | classElementSetter
)

// classScope tracks the private names of a class body.
type classScope struct {
	privateNames          map[string]bool
	loneAccessors         map[string]classElementFlags
	undefinedPrivateNames map[string]Position
	order                 []string // undefined names in order of first use
}

func (p *Parser) classScopeEnter() {
	p.s.classScopes = append(p.s.classScopes, &classScope{
		privateNames:          map[string]bool{},
		loneAccessors:         map[string]classElementFlags{},
		undefinedPrivateNames: map[string]Position{},
	})
}

// classScopeExit pops the class scope. Private names used but not declared move to the enclosing class, or are
// reported when there is none.
func (p *Parser) classScopeExit() {
	old := p.s.classScopes[len(p.s.classScopes)-1]
	p.s.classScopes = p.s.classScopes[:len(p.s.classScopes)-1]
	var current *classScope
	if 0 < len(p.s.classScopes) {
		current = p.s.classScopes[len(p.s.classScopes)-1]
	}
	for _, name := range old.order {
		loc, ok := old.undefinedPrivateNames[name]
		if !ok {
			continue
		}
		if current != nil {
			p.addUndefinedPrivateName(current, name, loc)
		} else {
			p.raise(InvalidPrivateFieldResolution, loc, name)
		}
	}
}

func (p *Parser) addUndefinedPrivateName(cs *classScope, name string, loc Position) {
	if _, ok := cs.undefinedPrivateNames[name]; ok {
		return
	}
	cs.undefinedPrivateNames[name] = loc
	cs.order = append(cs.order, name)
	n := len(cs.order) - 1
	p.record(func() {
		delete(cs.undefinedPrivateNames, name)
		cs.order = cs.order[:n]
	})
}

// declarePrivateName declares a private name in the current class. A getter and a setter of the same name and
// static-ness may share it.
func (p *Parser) declarePrivateName(name string, element classElementFlags, loc Position) {
	cs := p.s.classScopes[len(p.s.classScopes)-1]
	redefined := cs.privateNames[name]
	if element&classElementAccessor != 0 {
		if accessor, ok := cs.loneAccessors[name]; redefined && ok {
			oldStatic, newStatic := accessor&classElementStatic, element&classElementStatic
			oldKind, newKind := accessor&classElementAccessor, element&classElementAccessor
			redefined = oldKind == newKind || oldStatic != newStatic
			if !redefined {
				delete(cs.loneAccessors, name)
				p.record(func() { cs.loneAccessors[name] = accessor })
			}
		} else if !redefined {
			cs.loneAccessors[name] = element
			p.record(func() { delete(cs.loneAccessors, name) })
		}
	}
	if redefined {
		p.raise(PrivateNameRedeclaration, loc, name)
	}
	if !cs.privateNames[name] {
		cs.privateNames[name] = true
		p.record(func() { delete(cs.privateNames, name) })
	}
	if prev, ok := cs.undefinedPrivateNames[name]; ok {
		delete(cs.undefinedPrivateNames, name)
		p.record(func() { cs.undefinedPrivateNames[name] = prev })
	}
}

// usePrivateName records a reference to a private name. Names declared later in the same class are resolved at
// class exit.
func (p *Parser) usePrivateName(name string, loc Position) {
	var cs *classScope
	for _, cs = range p.s.classScopes {
		if cs.privateNames[name] {
			return
		}
	}
	if cs != nil {
		p.addUndefinedPrivateName(cs, name, loc)
	} else {
		p.raise(InvalidPrivateFieldResolution, loc, name)
	}
}
