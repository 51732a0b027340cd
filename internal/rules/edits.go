package rules

import (
	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/source"
	"github.com/zeth/jscodestyle/internal/stream"
)

// Edit helpers produce TextEdits in original-file byte coordinates.
// Replacements and deletions carry the current token text as an
// OldText guard so a stale edit can never corrupt unrelated code.

func insertBefore(t *stream.Token, text string) diag.TextEdit {
	return diag.TextEdit{
		Span:    source.Span{File: t.Span.File, Start: t.Span.Start, End: t.Span.Start},
		NewText: text,
	}
}

func insertAfter(t *stream.Token, text string) diag.TextEdit {
	return diag.TextEdit{
		Span:    source.Span{File: t.Span.File, Start: t.Span.End, End: t.Span.End},
		NewText: text,
	}
}

func removeToken(t *stream.Token) diag.TextEdit {
	return diag.TextEdit{Span: t.Span, OldText: t.Text}
}

func replaceToken(t *stream.Token, text string) diag.TextEdit {
	return diag.TextEdit{Span: t.Span, NewText: text, OldText: t.Text}
}

// replaceBetween rewrites the gap between two tokens, guarded by the
// original gap text.
func replaceBetween(rc *Context, a, b *stream.Token, text string) diag.TextEdit {
	return diag.TextEdit{
		Span:    source.Span{File: a.Span.File, Start: a.Span.End, End: b.Span.Start},
		NewText: text,
		OldText: string(rc.File.Content[a.Span.End:b.Span.Start]),
	}
}
