package rules

import (
	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/stream"
	"github.com/zeth/jscodestyle/internal/token"
)

// redundantSemicolon flags empty statements: `;;`, `{;`, or a file
// leading `;`.
type redundantSemicolon struct{}

func (redundantSemicolon) Code() diag.Code { return diag.StyleRedundantSemicolon }

func (redundantSemicolon) Wants(k token.Kind) bool { return k == token.Semicolon }

func (redundantSemicolon) Check(rc *Context, tok *stream.Token) {
	if tok.Ctx.Depth != tok.Ctx.BraceDepth {
		return // for(;;) headers
	}
	prev := tok.PrevCode()
	if prev != nil && prev.Kind != token.Semicolon && prev.Kind != token.LBrace {
		return
	}
	rc.Warn(diag.StyleRedundantSemicolon, tok.Span, "redundant semicolon").
		WithFix("remove semicolon", removeToken(tok)).
		Emit()
}

// valueEnding lists kinds that can legally end a statement and
// therefore need a following semicolon. Closing parens and braces are
// excluded: `if (a)` and `function() {}` endings would be false
// positives.
func valueEnding(k token.Kind) bool {
	switch k {
	case token.Ident, token.Number, token.String, token.TemplateString,
		token.Regex, token.RBracket:
		return true
	default:
		return false
	}
}

// missingSemicolon flags statements that rely on automatic semicolon
// insertion: a value-ending token at end of line with a fresh statement
// starting on the next.
type missingSemicolon struct{}

func (missingSemicolon) Code() diag.Code { return diag.StyleMissingSemicolon }

func (missingSemicolon) Wants(k token.Kind) bool { return k == token.Newline }

func (missingSemicolon) Check(rc *Context, tok *stream.Token) {
	p := tok.PrevCode()
	if p == nil || !valueEnding(p.Kind) {
		return
	}
	if p.Ctx.Depth != p.Ctx.BraceDepth {
		return // inside parens or brackets: expression continues
	}
	// p must sit on this newline's own line.
	for q := tok.Prev(); q != nil && q != p; q = q.Prev() {
		if q.Kind == token.Newline {
			return
		}
	}
	n := tok.NextCode()
	if n == nil || n.Ctx.Role != stream.RoleStatementStart {
		return
	}
	rc.Warn(diag.StyleMissingSemicolon, p.Span, "missing semicolon").
		WithFix("insert semicolon", insertAfter(p, ";")).
		Emit()
}
