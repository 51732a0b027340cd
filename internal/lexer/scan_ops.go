package lexer

import (
	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/stream"
	"github.com/zeth/jscodestyle/internal/token"
)

// punctKinds maps the single bytes that get a dedicated token kind.
var punctKinds = map[byte]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
	';': token.Semicolon,
	',': token.Comma,
	':': token.Colon,
	'?': token.Question,
	'.': token.Dot,
}

// multiOps lists multi-byte operators, longest first so that a prefix
// never shadows a longer match.
var multiOps = []string{
	">>>=",
	"===", "!==", ">>>", "**=", "<<=", ">>=", "...",
	"==", "!=", "<=", ">=", "&&", "||", "??",
	"++", "--", "**",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"=>", "<<", ">>",
}

// singleOps are the operator bytes valid on their own.
const singleOps = "+-*/%<>=!&|^~"

// scanOperatorOrPunct scans one operator or punctuation token using
// longest match. An unrecognized byte becomes an Invalid token so the
// stream stays lossless; the defect is reported, not fatal.
func (lx *Lexer) scanOperatorOrPunct(s *stream.Stream) token.Kind {
	start := lx.cursor.Mark()
	b := lx.cursor.Peek()

	// Multi-byte operators first: `...` and `??` share a first byte
	// with the dedicated punctuation kinds.
	rest := lx.file.Content[lx.cursor.Off:]
	for _, op := range multiOps {
		if hasPrefix(rest, op) {
			for range op {
				lx.cursor.Bump()
			}
			return lx.emit(s, token.Operator, start)
		}
	}

	if kind, ok := punctKinds[b]; ok {
		lx.cursor.Bump()
		return lx.emit(s, kind, start)
	}

	for i := 0; i < len(singleOps); i++ {
		if b == singleOps[i] {
			lx.cursor.Bump()
			return lx.emit(s, token.Operator, start)
		}
	}

	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnknownChar, sp, "unexpected character")
	s.Append(token.Invalid, sp, string(lx.file.Content[sp.Start:sp.End]))
	return token.Invalid
}

func hasPrefix(b []byte, s string) bool {
	if len(b) < len(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if b[i] != s[i] {
			return false
		}
	}
	return true
}
