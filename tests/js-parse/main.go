//go:build gofuzz
// +build gofuzz

package fuzz

import (
	"fmt"
	"unicode/utf8"

	"github.com/tdewolff/tsparse/js"
)

// Fuzz is a fuzz test.
func Fuzz(data []byte) int {
	if !utf8.Valid(data) {
		return 0
	}

	valid := 0
	for _, ts := range []bool{false, true} {
		if parse(data, ts) {
			valid = 1
		}
	}
	return valid
}

// parse compares a fail-fast parse with a recovering one and returns whether data is a valid program.
func parse(data []byte, ts bool) bool {
	o := js.DefaultOptions()
	o.TypeScript = ts
	ast, err := js.Parse(data, o)

	o.ContinueOnError = true
	ast2, err2 := js.Parse(data, o)
	if err == nil {
		// a valid program must parse identically when recovering
		if err2 != nil || len(ast2.Errors) != 0 {
			panic(fmt.Sprint("recoverable parse reported errors: ", err2))
		} else if src, src2 := ast.String(), ast2.String(); src != src2 {
			fmt.Println("AST1:", src)
			fmt.Println("AST2:", src2)
			panic("ASTs not equal")
		}
		return true
	} else if ast2 != nil && len(ast2.Errors) == 0 {
		panic(fmt.Sprint("recoverable parse lost the error: ", err))
	}
	return false
}
