package js

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

// readInt reads digits of the given radix with numeric separators. It returns the value and false if no digit was
// read. Separators are rejected when allowSeparator is false.
func (p *Parser) readInt(radix int, allowSeparator bool) (float64, bool) {
	start := p.s.r.Pos()
	forbidden := forbiddenSeparatorSiblings[radix]
	total := 0.0
	for p.s.r.Pos() < len(p.src) {
		c := p.s.r.Peek(0)
		if c == '_' {
			prev, next := byte(0), p.peek(1)
			if start < p.s.r.Pos() {
				prev = p.s.r.Peek(-1)
			}
			if !allowSeparator {
				p.raise(NumericSeparatorInEscapeSequence, p.curPosition())
			} else if next == 0 || digitValue(next, radix) < 0 || strings.IndexByte(forbidden, prev) != -1 || strings.IndexByte(forbidden, next) != -1 || p.s.r.Pos() == start {
				p.raise(UnexpectedNumericSeparator, p.curPosition())
			}
			p.s.r.Move(1)
			continue
		}

		v := digitValue(c, radix)
		if v < 0 {
			if radix < 10 && isDigit(c) {
				// report digits beyond the radix and continue as if a zero was written
				p.raise(InvalidDigit, p.curPosition(), radix)
				v = 0
			} else {
				break
			}
		}
		total = total*float64(radix) + float64(v)
		p.s.r.Move(1)
	}
	if p.s.r.Pos() == start {
		return 0, false
	}
	return total, true
}

func (p *Parser) consumeRadixNumericToken(radix int) {
	// assume to be on 0x, 0o or 0b
	startLoc := p.curPosition()
	p.s.r.Move(2)
	val, ok := p.readInt(radix, true)
	if !ok {
		p.raise(InvalidDigit, startLoc.add(2), radix)
	}
	isBigInt := false
	if c := p.peek(0); c == 'n' {
		p.s.r.Move(1)
		isBigInt = true
	} else if c == 'm' {
		p.raise(InvalidDecimal, startLoc)
		p.s.r.Move(1)
	}
	if p.identifierStartsAt(p.s.r.Pos()) {
		p.raise(NumberIdentifier, p.curPosition())
	}
	if isBigInt {
		p.s.tok.Value = stripSeparators(p.src[startLoc.Index:p.s.r.Pos()])
		p.finishToken(BigIntToken)
		return
	}
	p.s.tok.Number = val
	p.finishToken(NumericToken)
}

func (p *Parser) consumeNumericToken(startsWithDot bool) {
	// assume to be on a digit or on . followed by a digit
	start := p.s.r.Pos()
	startLoc := p.curPosition()
	isFloat, isBigInt, isDecimal, hasExponent, isOctal := false, false, false, false, false
	if !startsWithDot {
		if _, ok := p.readInt(10, true); !ok {
			p.raise(InvalidNumber, p.curPosition())
		}
	}
	hasLeadingZero := 2 <= p.s.r.Pos()-start && p.src[start] == '0'
	if hasLeadingZero {
		integer := p.src[start:p.s.r.Pos()]
		p.deferStrict(StrictOctalLiteral, startLoc)
		if !p.s.strict {
			// separators are not allowed in legacy octal and non-octal decimal integers
			if i := strings.IndexByte(string(integer), '_'); 0 < i {
				p.raise(ZeroDigitNumericSeparator, startLoc.add(i))
			}
		}
		isOctal = strings.IndexAny(string(integer), "89") == -1
	}

	c := p.peek(0)
	if c == '.' && !isOctal {
		p.s.r.Move(1)
		p.readInt(10, true)
		isFloat = true
		c = p.peek(0)
	}
	if (c == 'e' || c == 'E') && !isOctal {
		p.s.r.Move(1)
		if c = p.peek(0); c == '+' || c == '-' {
			p.s.r.Move(1)
		}
		if _, ok := p.readInt(10, true); !ok {
			p.raise(InvalidOrMissingExponent, startLoc)
		}
		isFloat = true
		hasExponent = true
		c = p.peek(0)
	}
	if c == 'n' {
		// floats, legacy octals and non-octal decimals cannot be bigints
		if isFloat || hasLeadingZero {
			p.raise(InvalidBigIntLiteral, startLoc)
		}
		p.s.r.Move(1)
		isBigInt = true
	} else if c == 'm' {
		p.expectFeature(FeatureDecimal, p.curPosition())
		if hasExponent || hasLeadingZero {
			p.raise(InvalidDecimal, startLoc)
		}
		p.s.r.Move(1)
		isDecimal = true
	}
	if p.identifierStartsAt(p.s.r.Pos()) {
		p.raise(NumberIdentifier, p.curPosition())
	}

	str := stripSeparators(p.src[start:p.s.r.Pos()])
	if isBigInt {
		p.s.tok.Value = str
		p.finishToken(BigIntToken)
		return
	} else if isDecimal {
		p.s.tok.Value = str
		p.finishToken(DecimalToken)
		return
	}
	if isOctal {
		val := 0.0
		for i := 0; i < len(str); i++ {
			val = val*8 + float64(str[i]-'0')
		}
		p.s.tok.Number = val
	} else if f, err := strconv.ParseFloat(str, 64); err == nil {
		p.s.tok.Number = f
	} else {
		// out of range values saturate, like the language does
		p.s.tok.Number = math.Inf(1)
	}
	p.finishToken(NumericToken)
}

// stripSeparators removes numeric separators and the bigint or decimal suffix.
func stripSeparators(b []byte) string {
	sb := strings.Builder{}
	for _, c := range b {
		if c != '_' && c != 'n' && c != 'm' {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

////////////////////////////////////////////////////////////////

func (p *Parser) consumeStringToken(quote byte) {
	// assume to be on ' or "
	start := p.curPosition()
	p.s.r.Move(1)
	sb := strings.Builder{}
	chunkStart := p.s.r.Pos()
	for {
		if len(p.src) <= p.s.r.Pos() {
			p.raiseFatal(UnterminatedString, start)
			p.finishToken(StringToken)
			return
		}
		c := p.s.r.Peek(0)
		if c == quote {
			break
		} else if c == '\\' {
			sb.Write(p.src[chunkStart:p.s.r.Pos()])
			if s, ok := p.readEscapedChar(false); ok {
				sb.WriteString(s)
			}
			chunkStart = p.s.r.Pos()
		} else if c == '\n' || c == '\r' {
			p.raiseFatal(UnterminatedString, start)
			p.finishToken(StringToken)
			return
		} else if c == 0xE2 && p.peek(1) == 0x80 && (p.peek(2) == 0xA8 || p.peek(2) == 0xA9) {
			p.s.r.Move(3)
			p.newLine(p.s.r.Pos())
		} else {
			p.s.r.Move(1)
		}
	}
	sb.Write(p.src[chunkStart:p.s.r.Pos()])
	p.s.r.Move(1)
	p.s.tok.Value = sb.String()
	p.finishToken(StringToken)
}

// consumeTemplateToken reads a template chunk starting at ` or at the } closing a substitution. The cooked value
// is normalized to \n line endings and is undefined when an invalid escape is present.
func (p *Parser) consumeTemplateToken() {
	start := p.curPosition()
	p.s.r.Move(1)
	sb := strings.Builder{}
	chunkStart := p.s.r.Pos()
	invalid := false
	for {
		if len(p.src) <= p.s.r.Pos() {
			p.raiseFatal(UnterminatedTemplate, start)
			p.s.tok.Tail = true
			p.finishToken(TemplateToken)
			return
		}
		c := p.s.r.Peek(0)
		if c == '`' {
			sb.Write(p.src[chunkStart:p.s.r.Pos()])
			p.s.r.Move(1)
			p.s.tok.Tail = true
			break
		} else if c == '$' && p.peek(1) == '{' {
			sb.Write(p.src[chunkStart:p.s.r.Pos()])
			p.s.r.Move(2)
			break
		} else if c == '\\' {
			sb.Write(p.src[chunkStart:p.s.r.Pos()])
			escLoc := p.curPosition()
			if s, ok := p.readEscapedChar(true); ok {
				sb.WriteString(s)
			} else if !invalid {
				invalid = true
				p.s.tok.EscapeLoc = escLoc
			}
			chunkStart = p.s.r.Pos()
		} else if c == '\r' {
			sb.Write(p.src[chunkStart:p.s.r.Pos()])
			sb.WriteByte('\n')
			p.s.r.Move(1)
			if p.peek(0) == '\n' {
				p.s.r.Move(1)
			}
			p.newLine(p.s.r.Pos())
			chunkStart = p.s.r.Pos()
		} else if c == '\n' {
			p.s.r.Move(1)
			p.newLine(p.s.r.Pos())
		} else if c == 0xE2 && p.peek(1) == 0x80 && (p.peek(2) == 0xA8 || p.peek(2) == 0xA9) {
			p.s.r.Move(3)
			p.newLine(p.s.r.Pos())
		} else {
			p.s.r.Move(1)
		}
	}
	p.s.tok.InvalidEscape = invalid
	if !invalid {
		p.s.tok.Value = sb.String()
	}
	p.finishToken(TemplateToken)
}

// readEscapedChar decodes the escape sequence at the cursor. In templates invalid escapes are not reported but
// return false; in strings they are reported.
func (p *Parser) readEscapedChar(inTemplate bool) (string, bool) {
	// assume to be on \
	escLoc := p.curPosition()
	p.s.r.Move(1)
	if len(p.src) <= p.s.r.Pos() {
		return "", false
	}
	c := p.s.r.Peek(0)
	p.s.r.Move(1)
	switch c {
	case 'n':
		return "\n", true
	case 'r':
		return "\r", true
	case 't':
		return "\t", true
	case 'b':
		return "\b", true
	case 'v':
		return "\v", true
	case 'f':
		return "\f", true
	case 'x':
		r, ok := p.readHexChar(2, inTemplate)
		if !ok {
			return "", false
		}
		return string(rune(r)), true
	case 'u':
		r, ok := p.readCodePoint(inTemplate)
		if !ok {
			return "", false
		}
		return string(r), true
	case '\r':
		if p.peek(0) == '\n' {
			p.s.r.Move(1)
		}
		p.newLine(p.s.r.Pos())
		return "", true
	case '\n':
		p.newLine(p.s.r.Pos())
		return "", true
	case '8', '9':
		if inTemplate {
			return "", false
		}
		p.deferStrict(StrictNumericEscape, escLoc)
		return string(c), true
	}
	if '0' <= c && c <= '7' {
		codePos := p.s.r.Pos() - 1
		end := codePos + 1
		for end < len(p.src) && end < codePos+3 && '0' <= p.src[end] && p.src[end] <= '7' {
			end++
		}
		octal, _ := strconv.ParseInt(string(p.src[codePos:end]), 8, 32)
		if 255 < octal {
			end--
			octal, _ = strconv.ParseInt(string(p.src[codePos:end]), 8, 32)
		}
		p.s.r.Rewind(end)
		next := p.peek(0)
		if end-codePos != 1 || c != '0' || next == '8' || next == '9' {
			if inTemplate {
				return "", false
			}
			p.deferStrict(StrictNumericEscape, escLoc)
		}
		return string(rune(octal)), true
	}
	if c < 0x80 {
		return string(c), true
	}
	p.s.r.Move(-1)
	r, n := p.s.r.PeekRune(0)
	p.s.r.Move(n)
	if r == '\u2028' || r == '\u2029' {
		// line continuation
		p.newLine(p.s.r.Pos())
		return "", true
	}
	return string(r), true
}

// readHexChar reads exactly n hex digits.
func (p *Parser) readHexChar(n int, inTemplate bool) (int, bool) {
	loc := p.curPosition()
	v := 0
	for i := 0; i < n; i++ {
		c := p.peek(0)
		if !isHexDigit(c) {
			if !inTemplate {
				p.raise(InvalidEscapeSequence, loc)
			}
			return 0, false
		}
		v = v<<4 | hexValue(c)
		p.s.r.Move(1)
	}
	return v, true
}

// readCodePoint reads the part of a \u escape after the u: either four hex digits or a braced code point. A
// surrogate pair written as two escapes is combined.
func (p *Parser) readCodePoint(inTemplate bool) (rune, bool) {
	if p.peek(0) == '{' {
		loc := p.curPosition()
		p.s.r.Move(1)
		v := 0
		digits := 0
		for isHexDigit(p.peek(0)) {
			if v <= 0x10FFFF {
				v = v<<4 | hexValue(p.peek(0))
			}
			p.s.r.Move(1)
			digits++
		}
		if digits == 0 || p.peek(0) != '}' {
			if !inTemplate {
				p.raise(InvalidEscapeSequence, loc)
			}
			return 0, false
		}
		p.s.r.Move(1)
		if 0x10FFFF < v {
			if !inTemplate {
				p.raise(InvalidCodePoint, loc)
			}
			return 0, false
		}
		return rune(v), true
	}

	v, ok := p.readHexChar(4, inTemplate)
	if !ok {
		return 0, false
	}
	r := rune(v)
	if utf16.IsSurrogate(r) && 0xD800 <= r && r < 0xDC00 && p.peek(0) == '\\' && p.peek(1) == 'u' && isHexDigit(p.peek(2)) {
		mark := p.s.r.Pos()
		p.s.r.Move(2)
		if lo, ok := p.readHexChar(4, true); ok && 0xDC00 <= lo && lo < 0xE000 {
			return utf16.DecodeRune(r, rune(lo)), true
		}
		p.s.r.Rewind(mark)
	}
	return r, true
}

////////////////////////////////////////////////////////////////

var regExpFlags = "dgimsuyv"

// readRegExp rescans the current / or /= token as a regular expression literal.
func (p *Parser) readRegExp() {
	start := p.s.tok.Start
	startLoc := p.s.tok.Loc
	p.s.r.Rewind(start + 1)
	escaped, inClass := false, false
	for {
		if len(p.src) <= p.s.r.Pos() || p.atLineTerminator(p.s.r.Pos()) {
			p.raiseFatal(UnterminatedRegExp, startLoc.add(1))
			p.finishToken(RegExpToken)
			return
		}
		c := p.s.r.Peek(0)
		if escaped {
			escaped = false
		} else {
			if c == '[' {
				inClass = true
			} else if c == ']' && inClass {
				inClass = false
			} else if c == '/' && !inClass {
				break
			}
			escaped = c == '\\'
		}
		p.s.r.Move(1)
	}
	pattern := string(p.src[start+1 : p.s.r.Pos()])
	p.s.r.Move(1)

	flags := []byte{}
	for p.s.r.Pos() < len(p.src) {
		c := p.s.r.Peek(0)
		if strings.IndexByte(regExpFlags, c) != -1 {
			if c == 'v' && bytesContain(flags, 'u') || c == 'u' && bytesContain(flags, 'v') {
				p.raise(IncompatibleRegExpUVFlags, p.curPosition())
			}
			if bytesContain(flags, c) {
				p.raise(DuplicateRegExpFlags, p.curPosition())
			}
		} else if r, _ := p.s.r.PeekRune(0); IsIdentifierContinue(r) || c == '\\' {
			p.raise(MalformedRegExpFlags, p.curPosition())
		} else {
			break
		}
		if c < 0x80 {
			flags = append(flags, c)
			p.s.r.Move(1)
		} else {
			_, n := p.s.r.PeekRune(0)
			p.s.r.Move(n)
		}
	}
	p.s.tok.Value = pattern
	p.s.tok.Flags = string(flags)
	p.finishToken(RegExpToken)
}

func bytesContain(b []byte, c byte) bool {
	for _, d := range b {
		if d == c {
			return true
		}
	}
	return false
}

// readTemplateContinuation rescans the current } token as the start of the next template chunk.
func (p *Parser) readTemplateContinuation() {
	if p.s.tok.Type != CloseBraceToken {
		p.unexpected(CloseBraceToken)
		return
	}
	p.s.r.Rewind(p.s.tok.Start)
	p.s.tok = Token{Start: p.s.r.Pos(), Loc: p.curPosition()}
	p.consumeTemplateToken()
}

// rescanGt rescans a > token that was read in type context as a possibly longer operator.
func (p *Parser) rescanGt() {
	if p.s.tok.Type == GtToken && !p.s.inType {
		p.s.r.Rewind(p.s.tok.Start)
		p.s.tok = Token{Start: p.s.r.Pos(), Loc: p.curPosition()}
		p.finishToken(p.consumeOperatorToken())
	}
}

// rescanLt rescans a << token as < when a type argument list is expected.
func (p *Parser) rescanLt() {
	if p.s.tok.Type == LtLtToken || p.s.tok.Type == LtLtEqToken || p.s.tok.Type == LtEqToken {
		p.s.r.Rewind(p.s.tok.Start + 1)
		p.finishToken(LtToken)
	}
}
