package rules

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/source"
	"github.com/zeth/jscodestyle/internal/stream"
	"github.com/zeth/jscodestyle/internal/token"
)

// lineTooLong measures every line's display width. Width is what a
// terminal renders, so wide runes count as two columns.
type lineTooLong struct {
	lineStart uint32
}

func (*lineTooLong) Code() diag.Code { return diag.StyleLineTooLong }

func (*lineTooLong) Wants(k token.Kind) bool {
	return k == token.Newline || k == token.EOF
}

func (r *lineTooLong) Check(rc *Context, tok *stream.Token) {
	limit := rc.Config.MaxLineLength
	end := tok.Span.Start
	start := r.lineStart
	r.lineStart = tok.Span.End

	if limit <= 0 || end <= start {
		return
	}
	line := string(rc.File.Content[start:end])
	width := runewidth.StringWidth(line)
	if width <= limit {
		return
	}
	sp := source.Span{File: tok.Span.File, Start: start, End: end}
	rc.Warn(diag.StyleLineTooLong, sp,
		fmt.Sprintf("line is %d columns; the limit is %d", width, limit)).
		Emit()
}

// indentation checks leading whitespace against brace depth. Only
// lines that begin a statement, close a brace, or hold a comment are
// judged; continuation lines are left alone rather than guessed at.
type indentation struct{}

func (indentation) Code() diag.Code { return diag.StyleWrongIndentation }

func (indentation) Wants(k token.Kind) bool { return k != token.Newline }

func (indentation) Check(rc *Context, tok *stream.Token) {
	if !tok.StartsLine() {
		return
	}

	var lead *stream.Token
	first := tok
	if tok.Kind == token.Whitespace {
		lead = tok
		first = tok.Next()
		if first == nil {
			return
		}
	}
	if first.Kind == token.Newline || first.Kind == token.EOF || first.Kind == token.Whitespace {
		return // blank line
	}
	if lead != nil && strings.ContainsRune(lead.Text, '\t') {
		return // the tab rule owns this line
	}
	if first.Ctx.Role != stream.RoleStatementStart &&
		first.Kind != token.RBrace && !first.Kind.IsComment() {
		return
	}

	expected := first.Ctx.BraceDepth * rc.Config.IndentWidth
	got := 0
	if lead != nil {
		got = len(lead.Text)
	}
	if got == expected {
		return
	}

	msg := fmt.Sprintf("expected %d spaces of indentation, found %d", expected, got)
	b := rc.Warn(diag.StyleWrongIndentation, first.Span, msg)
	switch {
	case lead == nil:
		b.WithFix("reindent", insertBefore(first, strings.Repeat(" ", expected)))
	case expected == 0:
		b.WithFix("reindent", removeToken(lead))
	default:
		b.WithFix("reindent", replaceToken(lead, strings.Repeat(" ", expected)))
	}
	b.Emit()
}

// multipleStatements flags a second statement on the same line.
type multipleStatements struct{}

func (multipleStatements) Code() diag.Code { return diag.StyleMultipleStatements }

func (multipleStatements) Wants(k token.Kind) bool { return k == token.Semicolon }

func (multipleStatements) Check(rc *Context, tok *stream.Token) {
	if tok.Ctx.Depth != tok.Ctx.BraceDepth {
		return // inside parens: for(;;) headers
	}
	for t := tok.Next(); t != nil; t = t.Next() {
		switch {
		case t.Kind == token.Newline || t.Kind == token.EOF || t.Kind.IsComment():
			return
		case t.Kind == token.Whitespace:
			continue
		case t.Kind == token.RBrace || t.Kind == token.Semicolon:
			// `};` endings and empty statements are other rules' turf.
			return
		default:
			rc.Warn(diag.StyleMultipleStatements, t.Span,
				"more than one statement on this line").
				Emit()
			return
		}
	}
}

// blankLinesAtTop flags empty lines before the first content in the
// file. The check runs once; state makes later newlines free.
type blankLinesAtTop struct {
	done bool
}

func (*blankLinesAtTop) Code() diag.Code { return diag.StyleBlankLinesAtTop }

func (*blankLinesAtTop) Wants(k token.Kind) bool { return k == token.Newline }

func (r *blankLinesAtTop) Check(rc *Context, tok *stream.Token) {
	if r.done {
		return
	}
	r.done = true

	for p := tok.Prev(); p != nil; p = p.Prev() {
		if p.Kind != token.Whitespace {
			return // something precedes the newline: not a leading blank
		}
	}

	// Cover the whole leading blank run, up to its last newline so the
	// first real line keeps its own indentation.
	last := tok
	for n := tok.Next(); n != nil && n.Kind.IsWhitespace(); n = n.Next() {
		if n.Kind == token.Newline {
			last = n
		}
	}
	sp := source.Span{File: tok.Span.File, Start: 0, End: last.Span.End}
	rc.Warn(diag.StyleBlankLinesAtTop, sp, "blank lines at the top of the file").
		WithFix("remove leading blank lines", diag.TextEdit{
			Span:    sp,
			OldText: string(rc.File.Content[:last.Span.End]),
		}).
		Emit()
}
