package lexer

import (
	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/stream"
	"github.com/zeth/jscodestyle/internal/token"
)

// scanRegex scans a regex literal. Inside a character class a bare '/'
// is literal; a backslash escapes the next byte anywhere. The caller
// has already decided the leading slash cannot be division.
func (lx *Lexer) scanRegex(s *stream.Stream) token.Kind {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '/'

	inClass := false
	for {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			lx.errFatal(diag.LexUnterminatedRegex, sp, "unterminated regex literal")
			return token.Invalid
		}
		b := lx.cursor.Peek()
		switch {
		case b == '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.errFatal(diag.LexUnterminatedRegex, sp, "newline in regex literal")
			return token.Invalid

		case b == '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
				sp := lx.cursor.SpanFrom(start)
				lx.errFatal(diag.LexUnterminatedRegex, sp, "unterminated regex literal")
				return token.Invalid
			}
			lx.cursor.Bump()

		case b == '[':
			inClass = true
			lx.cursor.Bump()

		case b == ']':
			inClass = false
			lx.cursor.Bump()

		case b == '/' && !inClass:
			lx.cursor.Bump()
			for isRegexFlag(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return lx.emit(s, token.Regex, start)

		default:
			lx.cursor.Bump()
		}
	}
}
