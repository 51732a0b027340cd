package rules

import (
	"strings"

	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/stream"
	"github.com/zeth/jscodestyle/internal/token"
)

// spacedOps are the operator spellings required to have space on both
// sides. Unary-capable spellings (+ - ! ~ ++ --) are left out: without
// a parser the engine cannot tell `a - b` from `-b` reliably, and a
// false negative beats a false positive.
var spacedOps = map[string]bool{
	"=": true, "==": true, "===": true, "!=": true, "!==": true,
	"<": true, ">": true, "<=": true, ">=": true,
	"&&": true, "||": true, "??": true, "=>": true,
	"+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&=": true, "|=": true, "^=": true, "<<=": true, ">>=": true, ">>>=": true,
}

// missingSpace flags operators hugging their operands, commas glued to
// the next token, and control keywords glued to their condition.
type missingSpace struct{}

func (missingSpace) Code() diag.Code { return diag.StyleMissingSpace }

func (missingSpace) Wants(k token.Kind) bool {
	return k == token.Operator || k == token.Comma || token.IsControlKeyword(k)
}

func (missingSpace) Check(rc *Context, tok *stream.Token) {
	switch {
	case tok.Kind == token.Comma:
		next := tok.Next()
		if next == nil || next.Kind.IsWhitespace() || next.Kind == token.EOF {
			return
		}
		if next.Kind.IsCloseBracket() {
			return
		}
		rc.Warn(diag.StyleMissingSpace, tok.Span, "missing space after ','").
			WithFix("insert space", insertAfter(tok, " ")).
			Emit()

	case tok.Kind == token.Operator:
		if !spacedOps[tok.Text] {
			return
		}
		if prev := tok.Prev(); prev != nil && !prev.Kind.IsWhitespace() && prev.Kind != token.LParen {
			rc.Warn(diag.StyleMissingSpace, tok.Span, "missing space before '"+tok.Text+"'").
				WithFix("insert space", insertBefore(tok, " ")).
				Emit()
		}
		if next := tok.Next(); next != nil && !next.Kind.IsWhitespace() && next.Kind != token.EOF {
			rc.Warn(diag.StyleMissingSpace, tok.Span, "missing space after '"+tok.Text+"'").
				WithFix("insert space", insertAfter(tok, " ")).
				Emit()
		}

	default: // control keyword
		next := tok.Next()
		if next == nil || next.Kind.IsWhitespace() {
			return
		}
		// `return;` and `break;` style endings are fine.
		if next.Kind == token.Semicolon || next.Kind == token.EOF ||
			next.Kind == token.Colon || next.Kind.IsCloseBracket() {
			return
		}
		rc.Warn(diag.StyleMissingSpace, tok.Span,
			"missing space after '"+tok.Text+"'").
			WithFix("insert space", insertAfter(tok, " ")).
			Emit()
	}
}

// extraSpace flags space padding inside parens, space before commas and
// semicolons, and runs of interior spaces.
type extraSpace struct{}

func (extraSpace) Code() diag.Code { return diag.StyleExtraSpace }

func (extraSpace) Wants(k token.Kind) bool { return k == token.Whitespace }

func (extraSpace) Check(rc *Context, tok *stream.Token) {
	prev, next := tok.Prev(), tok.Next()
	if prev == nil || prev.Kind == token.Newline {
		return // leading indentation, owned by the indentation rule
	}
	if next == nil || next.Kind == token.Newline || next.Kind == token.EOF {
		return // trailing whitespace, owned by its own rule
	}

	switch {
	case prev.Kind == token.LParen:
		rc.Warn(diag.StyleExtraSpace, tok.Span, "extra space after '('").
			WithFix("remove space", removeToken(tok)).
			Emit()
	case next.Kind == token.RParen:
		rc.Warn(diag.StyleExtraSpace, tok.Span, "extra space before ')'").
			WithFix("remove space", removeToken(tok)).
			Emit()
	case next.Kind == token.Comma:
		rc.Warn(diag.StyleExtraSpace, tok.Span, "extra space before ','").
			WithFix("remove space", removeToken(tok)).
			Emit()
	case next.Kind == token.Semicolon:
		rc.Warn(diag.StyleExtraSpace, tok.Span, "extra space before ';'").
			WithFix("remove space", removeToken(tok)).
			Emit()
	case len(tok.Text) > 1 && !strings.ContainsRune(tok.Text, '\t') &&
		!prev.Kind.IsComment() && !next.Kind.IsComment():
		rc.Warn(diag.StyleExtraSpace, tok.Span, "multiple spaces").
			WithFix("collapse to one space", replaceToken(tok, " ")).
			Emit()
	}
}

// trailingWhitespace flags whitespace at end of line.
type trailingWhitespace struct{}

func (trailingWhitespace) Code() diag.Code { return diag.StyleTrailingWhitespace }

func (trailingWhitespace) Wants(k token.Kind) bool { return k == token.Whitespace }

func (trailingWhitespace) Check(rc *Context, tok *stream.Token) {
	next := tok.Next()
	if next != nil && next.Kind != token.Newline && next.Kind != token.EOF {
		return
	}
	rc.Warn(diag.StyleTrailingWhitespace, tok.Span, "trailing whitespace").
		WithFix("remove trailing whitespace", removeToken(tok)).
		Emit()
}

// tabInSource flags tab characters anywhere in whitespace.
type tabInSource struct{}

func (tabInSource) Code() diag.Code { return diag.StyleTabInSource }

func (tabInSource) Wants(k token.Kind) bool { return k == token.Whitespace }

func (tabInSource) Check(rc *Context, tok *stream.Token) {
	if !strings.ContainsRune(tok.Text, '\t') {
		return
	}
	rc.Warn(diag.StyleTabInSource, tok.Span, "tab character in source; use spaces").
		Emit()
}
