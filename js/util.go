package js

import "unicode/utf8"

// Content returns the source text claimed by a node.
func Content(src []byte, n Node) []byte {
	base := n.Base()
	if base.Start.Index < 0 || len(src) < base.End.Index || base.End.Index < base.Start.Index {
		return nil
	}
	return src[base.Start.Index:base.End.Index]
}

// IsIdentifierName returns true if a valid identifier name is given, which includes reserved words.
func IsIdentifierName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == utf8.RuneError {
			return false
		} else if i == 0 && !IsIdentifierStart(r) || i != 0 && !IsIdentifierContinue(r) {
			return false
		}
	}
	return true
}
