//go:build gofuzz
// +build gofuzz

package fuzz

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestFuzz(t *testing.T) {
	var tests = []struct {
		js    string
		valid int
	}{
		{"let a = 1", 1},
		{"a < b > c", 1},
		{"let x: number = 1", 1},
		{"let x = ;", 0},
		{"\xff", 0},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			test.T(t, Fuzz([]byte(tt.js)), tt.valid)
			if tt.valid == 1 {
				// valid JavaScript is parsed in TypeScript mode as well
				test.That(t, parse([]byte(tt.js), true), "TypeScript pass")
			}
		})
	}
}
