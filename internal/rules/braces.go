package rules

import (
	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/stream"
	"github.com/zeth/jscodestyle/internal/token"
)

// bracePlacement enforces same-line opening braces: the `{` of a
// block, function body, or class body belongs on the line of its
// header, not on a line of its own.
type bracePlacement struct{}

func (bracePlacement) Code() diag.Code { return diag.StyleBracePlacement }

func (bracePlacement) Wants(k token.Kind) bool { return k == token.LBrace }

func (bracePlacement) Check(rc *Context, tok *stream.Token) {
	prev := tok.PrevCode()
	if prev == nil || !braceHeaderEnd(prev.Kind) {
		return // object literals and other expression braces
	}

	// A newline between the header and the brace is the violation.
	broken := false
	for t := tok.Prev(); t != nil && t != prev; t = t.Prev() {
		if t.Kind == token.Newline {
			broken = true
		}
		if t.Kind.IsComment() {
			return // don't drag a brace across a comment
		}
	}
	if !broken {
		return
	}
	rc.Warn(diag.StyleBracePlacement, tok.Span,
		"opening brace should be on the previous line").
		WithFix("move brace up", replaceBetween(rc, prev, tok, " ")).
		Emit()
}

// braceHeaderEnd reports whether a token kind can end a construct
// header whose body brace must stay on the same line.
func braceHeaderEnd(k token.Kind) bool {
	switch k {
	case token.RParen, token.KwElse, token.KwDo, token.KwTry,
		token.KwFinally, token.Ident:
		return true
	default:
		return false
	}
}
