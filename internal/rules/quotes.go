package rules

import (
	"strings"

	"github.com/zeth/jscodestyle/internal/config"
	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/stream"
	"github.com/zeth/jscodestyle/internal/token"
)

// quoteStyle enforces the configured string quote character. Template
// literals are exempt. The fix rewrites the delimiters only when the
// body contains no quote characters or escapes, so the literal's value
// cannot change.
type quoteStyle struct{}

func (quoteStyle) Code() diag.Code { return diag.StyleQuote }

func (quoteStyle) Wants(k token.Kind) bool { return k == token.String }

func (quoteStyle) Check(rc *Context, tok *stream.Token) {
	var want byte
	switch rc.Config.QuoteStyle {
	case config.QuoteSingle:
		want = '\''
	case config.QuoteDouble:
		want = '"'
	default:
		return
	}
	if len(tok.Text) < 2 || tok.Text[0] == want {
		return
	}

	b := rc.Warn(diag.StyleQuote, tok.Span,
		"string uses "+quoteName(tok.Text[0])+" quotes; "+quoteName(want)+" quotes are configured")
	body := tok.Text[1 : len(tok.Text)-1]
	if !strings.ContainsAny(body, `'"\`) {
		b.WithFix("requote", replaceToken(tok, string(want)+body+string(want)))
	}
	b.Emit()
}

func quoteName(q byte) string {
	if q == '\'' {
		return "single"
	}
	return "double"
}
