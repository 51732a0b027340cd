package lexer

import (
	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/stream"
	"github.com/zeth/jscodestyle/internal/token"
)

// scanNumber scans a numeric literal: hex (0x...), or a decimal
// mantissa with optional fraction and exponent. A malformed literal is
// still emitted as a Number token so the stream stays lossless; the
// defect is reported, not fatal.
func (lx *Lexer) scanNumber(s *stream.Stream) token.Kind {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' && (lx.cursor.PeekAt(1) == 'x' || lx.cursor.PeekAt(1) == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		digits := 0
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
			digits++
		}
		if digits == 0 {
			lx.report(diag.LexBadNumber, lx.cursor.SpanFrom(start), "hex literal has no digits")
		}
		return lx.emit(s, token.Number, start)
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		expMark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			// `1e` followed by something else: the exponent marker is
			// not part of the number.
			lx.cursor.Reset(expMark)
			lx.report(diag.LexBadNumber, lx.cursor.SpanFrom(start), "exponent has no digits")
		} else {
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}
	return lx.emit(s, token.Number, start)
}
