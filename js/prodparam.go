package js

// paramFlags are the grammar parameters of the production being parsed.
type paramFlags uint8

const (
	paramYield  paramFlags = 1 << iota // yield is an operator
	paramAwait                         // await is an operator
	paramReturn                        // return is allowed
	paramIn                            // the in operator is allowed

	paramNone paramFlags = 0
)

func functionFlags(async, generator bool) paramFlags {
	flags := paramNone
	if async {
		flags |= paramAwait
	}
	if generator {
		flags |= paramYield
	}
	return flags
}

func (p *Parser) prodParamEnter(flags paramFlags) {
	p.s.prodParams = append(p.s.prodParams, flags)
}

func (p *Parser) prodParamExit() {
	p.s.prodParams = p.s.prodParams[:len(p.s.prodParams)-1]
}

func (p *Parser) prodParam() paramFlags {
	return p.s.prodParams[len(p.s.prodParams)-1]
}

func (p *Parser) hasYield() bool {
	return p.prodParam()&paramYield != 0
}

func (p *Parser) hasAwait() bool {
	return p.prodParam()&paramAwait != 0
}

func (p *Parser) hasReturn() bool {
	return p.prodParam()&paramReturn != 0
}

func (p *Parser) hasIn() bool {
	return p.prodParam()&paramIn != 0
}

// withIn runs fn with the in operator allowed or disallowed.
func (p *Parser) withIn(allowIn bool, fn func()) {
	flags := p.prodParam()
	if allowIn == (flags&paramIn != 0) {
		fn()
		return
	}
	if allowIn {
		flags |= paramIn
	} else {
		flags &^= paramIn
	}
	p.prodParamEnter(flags)
	fn()
	p.prodParamExit()
}
