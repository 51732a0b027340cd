package rules

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/stream"
	"github.com/zeth/jscodestyle/internal/token"
)

// identifierCasing checks declared names: camelCase for variables and
// functions (ALL_CAPS allowed for const), TitleCase for classes.
// Renames are semantic, so the rule reports without a fix.
type identifierCasing struct {
	titler cases.Caser
}

func newIdentifierCasing() *identifierCasing {
	return &identifierCasing{titler: cases.Title(language.English, cases.NoLower)}
}

func (*identifierCasing) Code() diag.Code { return diag.StyleIdentifierCasing }

func (*identifierCasing) Wants(k token.Kind) bool { return token.IsDeclarationKeyword(k) }

func (r *identifierCasing) Check(rc *Context, tok *stream.Token) {
	name := tok.NextCode()
	if name == nil || name.Kind != token.Ident {
		return // anonymous function or destructuring pattern
	}

	text := name.Text
	if tok.Kind == token.KwClass {
		if text[0] >= 'a' && text[0] <= 'z' {
			rc.Warn(diag.StyleIdentifierCasing, name.Span,
				"class name should be TitleCase: "+r.camel(text, true)).
				Emit()
		}
		return
	}
	if !strings.Contains(text, "_") {
		return
	}
	if tok.Kind == token.KwConst && text == strings.ToUpper(text) {
		return // SCREAMING_CASE constants
	}
	rc.Warn(diag.StyleIdentifierCasing, name.Span,
		"identifier should be camelCase: "+r.camel(text, false)).
		Emit()
}

// camel converts a snake_case name to camelCase, or TitleCase when
// upper is set.
func (r *identifierCasing) camel(text string, upper bool) string {
	parts := strings.Split(strings.ToLower(text), "_")
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 && !upper {
			b.WriteString(p)
			continue
		}
		b.WriteString(r.titler.String(p))
	}
	return b.String()
}

// unusedLocalVariable flags a declared local whose name never appears
// again inside its enclosing brace scope. Shadowing and dynamic access
// are invisible at token level, so the check stays inside one scope and
// skips anything it cannot classify.
type unusedLocalVariable struct{}

func (unusedLocalVariable) Code() diag.Code { return diag.StyleUnusedLocalVariable }

func (unusedLocalVariable) Wants(k token.Kind) bool {
	return k == token.KwVar || k == token.KwLet || k == token.KwConst
}

func (unusedLocalVariable) Check(rc *Context, tok *stream.Token) {
	if tok.Ctx.Role != stream.RoleStatementStart || tok.Ctx.BraceDepth == 0 {
		return // top-level declarations may be used anywhere
	}
	name := tok.NextCode()
	if name == nil || name.Kind != token.Ident {
		return // destructuring: skip rather than guess
	}
	// Multiple declarators share one statement; check only the simple
	// single-name form.
	after := name.NextCode()
	if after != nil && after.Kind == token.Comma {
		return
	}

	depth := tok.Ctx.BraceDepth
	for t := after; t != nil; t = t.NextCode() {
		if t.Ctx.BraceDepth < depth {
			break // left the declaring scope
		}
		if t.Kind == token.Ident && t.Text == name.Text {
			return
		}
	}
	rc.Warn(diag.StyleUnusedLocalVariable, name.Span,
		"local variable "+name.Text+" is never used").
		Emit()
}
