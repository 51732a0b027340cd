package lexer

import (
	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/stream"
	"github.com/zeth/jscodestyle/internal/token"
)

// scanLineComment scans `//` up to but not including the newline, so
// the newline stays its own token.
func (lx *Lexer) scanLineComment(s *stream.Stream) token.Kind {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	return lx.emit(s, token.LineComment, start)
}

// scanBlockComment scans `/* ... */`. Block comments do not nest. A
// `/**` opener is a doc comment, except the degenerate `/**/`.
func (lx *Lexer) scanBlockComment(s *stream.Stream) token.Kind {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'

	kind := token.BlockComment
	if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) != '/' {
		kind = token.DocComment
	}

	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.emit(s, kind, start)
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errFatal(diag.LexUnterminatedComment, sp, "unterminated block comment")
	return token.Invalid
}
