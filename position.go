package parse

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2/buffer"
)

// Position returns the line and column number for a certain byte offset in a source. It is useful for recovering the position in a file that caused an error.
// Line terminators are \n, \r, \r\n, U+2028 and U+2029, the same set the JavaScript scanner recognizes. Column is 1-based and counts bytes.
func Position(r io.Reader, offset int) (line, col int, context string) {
	l := buffer.NewLexer(r)

	line = 1
	for l.Pos() < offset {
		c := l.Peek(0)
		if c == 0 && l.Err() != nil {
			break
		}

		if c == '\r' && l.Peek(1) == '\n' {
			if offset == l.Pos()+1 {
				// inside \r\n, stay on the current line
				l.Move(1)
				break
			}
			l.Move(2)
		} else if n := lineTerminatorLen(l); n != 0 {
			l.Move(n)
		} else {
			l.Move(1)
			continue
		}
		line++
		offset -= l.Pos()
		l.Skip()
	}
	col = l.Pos() + 1
	context = positionContext(l, line, col)
	return
}

// lineTerminatorLen returns the byte length of the line terminator at the cursor, or zero.
func lineTerminatorLen(l *buffer.Lexer) int {
	switch c := l.Peek(0); c {
	case '\n', '\r':
		return 1
	case 0xE2:
		if l.Peek(1) == 0x80 && (l.Peek(2) == 0xA8 || l.Peek(2) == 0xA9) {
			return 3
		}
	}
	return 0
}

func positionContext(l *buffer.Lexer, line, col int) (context string) {
	for {
		c := l.Peek(0)
		if c == 0 && l.Err() != nil || c == '\n' || c == '\r' || lineTerminatorLen(l) != 0 {
			break
		}
		l.Move(1)
	}

	b := append([]byte{}, l.Lexeme()...)
	if len(b) > 0 && b[len(b)-1] == '\r' {
		b[len(b)-1] = ' ' // if error occurs at \n in \r\n, replace \r by a space so it won't wrap
	}

	context += fmt.Sprintf("%5d: %s\n", line, string(b))
	context += fmt.Sprintf("%s^", strings.Repeat(" ", col+6))
	return
}
