package lexer

import (
	"github.com/zeth/jscodestyle/internal/stream"
	"github.com/zeth/jscodestyle/internal/token"
)

// scanIdentOrKeyword scans an identifier and reclassifies reserved
// words. Non-ASCII bytes are allowed to continue an identifier; the
// tokenizer never needs to decode them.
func (lx *Lexer) scanIdentOrKeyword(s *stream.Stream) token.Kind {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for {
		b := lx.cursor.Peek()
		if !isIdentContinueByte(b) && b < utf8RuneSelf {
			break
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	kind := token.LookupKeyword(text)
	s.Append(kind, sp, text)
	return kind
}
