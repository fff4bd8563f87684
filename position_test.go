package parse

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestPosition(t *testing.T) {
	var newlineTests = []struct {
		offset int
		buf    string
		line   int
		col    int
	}{
		{0, "x", 1, 1},
		{1, "xx", 1, 2},
		{2, "x\nx", 2, 1},
		{2, "\n\nx", 3, 1},
		{3, "\nxxx", 2, 3},
		{2, "\r\nx", 2, 1},
		{1, "\rx", 2, 1},
		{4, "a\u2028b", 2, 1},
		{4, "a\u2029b", 2, 1},
		{2, "\u00e9", 1, 3},

		// edge cases
		{0, "", 1, 1},
		{0, "\n", 1, 1},
		{1, "\r\n", 1, 2},
		{5, "x", 1, 2}, // continue till the end
		{1, "\x00a", 1, 2},
	}
	for _, tt := range newlineTests {
		t.Run(fmt.Sprint(tt.buf, " ", tt.offset), func(t *testing.T) {
			r := bytes.NewBufferString(tt.buf)
			line, col, _ := Position(r, tt.offset)
			test.T(t, line, tt.line, "line")
			test.T(t, col, tt.col, "column")
		})
	}
}

func TestPositionContext(t *testing.T) {
	var newlineTests = []struct {
		offset  int
		buf     string
		context string
	}{
		{3, "buffer", "    1: buffer\n          ^"},
		{3, "a\nbcd\ne", "    2: bcd\n        ^"},
		{2, "a\r\nb", "    1: a \n         ^"},
		{5, "x;\u2028y;", "    2: y;\n       ^"},
	}
	for _, tt := range newlineTests {
		t.Run(fmt.Sprint(tt.buf, " ", tt.offset), func(t *testing.T) {
			_, _, context := Position(bytes.NewBufferString(tt.buf), tt.offset)
			test.String(t, context, tt.context)
		})
	}
}
