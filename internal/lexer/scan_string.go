package lexer

import (
	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/stream"
	"github.com/zeth/jscodestyle/internal/token"
)

// scanString scans a single- or double-quoted string literal. A string
// may span lines only when each newline is escaped with a backslash.
func (lx *Lexer) scanString(s *stream.Stream, quote byte) token.Kind {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case quote:
			lx.cursor.Bump()
			return lx.emit(s, token.String, start)

		case '\\':
			if !lx.scanEscape(start) {
				return token.Invalid
			}

		case '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.errFatal(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Invalid

		default:
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errFatal(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Invalid
}

// scanTemplate scans a backtick template literal. Templates are
// multi-line by definition; only an unterminated one is an error.
func (lx *Lexer) scanTemplate(s *stream.Stream) token.Kind {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening backtick

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case '`':
			lx.cursor.Bump()
			return lx.emit(s, token.TemplateString, start)

		case '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				sp := lx.cursor.SpanFrom(start)
				lx.errFatal(diag.LexUnterminatedString, sp, "unterminated template literal")
				return token.Invalid
			}
			lx.cursor.Bump()

		default:
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errFatal(diag.LexUnterminatedString, sp, "unterminated template literal")
	return token.Invalid
}

// scanEscape consumes one backslash escape inside a quoted literal and
// validates the forms that have a fixed shape (\xNN, \uNNNN, \u{...}).
// Returns false after raising a fatal diagnostic.
func (lx *Lexer) scanEscape(litStart Mark) bool {
	escStart := lx.cursor.Mark()
	lx.cursor.Bump() // backslash

	if lx.cursor.EOF() {
		lx.errFatal(diag.LexUnterminatedString, lx.cursor.SpanFrom(litStart), "unterminated string literal")
		return false
	}

	b := lx.cursor.Bump()
	switch b {
	case 'x':
		for i := 0; i < 2; i++ {
			if !isHex(lx.cursor.Peek()) {
				lx.errFatal(diag.LexInvalidEscape, lx.cursor.SpanFrom(escStart), `\x escape needs two hex digits`)
				return false
			}
			lx.cursor.Bump()
		}
	case 'u':
		if lx.cursor.Eat('{') {
			digits := 0
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
				digits++
			}
			if digits == 0 || !lx.cursor.Eat('}') {
				lx.errFatal(diag.LexInvalidEscape, lx.cursor.SpanFrom(escStart), `malformed \u{...} escape`)
				return false
			}
			return true
		}
		for i := 0; i < 4; i++ {
			if !isHex(lx.cursor.Peek()) {
				lx.errFatal(diag.LexInvalidEscape, lx.cursor.SpanFrom(escStart), `\u escape needs four hex digits`)
				return false
			}
			lx.cursor.Bump()
		}
	default:
		// Any other escaped byte is accepted verbatim, including an
		// escaped newline for multi-line strings.
	}
	return true
}
