package lexer

import (
	"fmt"

	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/source"
	"github.com/zeth/jscodestyle/internal/stream"
	"github.com/zeth/jscodestyle/internal/token"
)

// LexError is a fatal lexical failure. The file it occurred in is
// skipped; other files continue.
type LexError struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Code.ID(), e.Span, e.Msg)
}

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil.
	Reporter diag.Reporter
}

// Lexer converts one file's bytes into a lossless token stream.
// Scanning is purely sequential; the only lookback is the kind of the
// previous code token, used to split regex literals from division.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	// last is the kind of the most recent non-whitespace, non-comment
	// token. Invalid at file start, which counts as a regex context.
	last token.Kind

	fatal *LexError
}

// New creates a lexer for the provided file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		last:   token.Invalid,
	}
}

// Lex scans the whole file into a stream. On a fatal lexical error the
// stream is discarded and the error returned; the concatenation
// invariant (stream text == source text) holds for every stream that
// is returned.
func Lex(file *source.File, opts Options) (*stream.Stream, error) {
	lx := New(file, opts)
	s := stream.New(file.ID)

	for !lx.cursor.EOF() {
		tok := lx.next(s)
		if lx.fatal != nil {
			return nil, lx.fatal
		}
		if !tok.IsWhitespace() && !tok.IsComment() {
			lx.last = tok
		}
	}

	s.Append(token.EOF, source.Span{File: file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}, "")
	return s, nil
}

// next scans one token, appends it to s, and returns its kind.
func (lx *Lexer) next(s *stream.Stream) token.Kind {
	ch := lx.cursor.Peek()

	switch {
	case ch == '\n':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		return lx.emit(s, token.Newline, start)

	case ch == ' ' || ch == '\t' || ch == '\r':
		start := lx.cursor.Mark()
		for {
			b := lx.cursor.Peek()
			if b != ' ' && b != '\t' && b != '\r' {
				break
			}
			lx.cursor.Bump()
		}
		return lx.emit(s, token.Whitespace, start)

	case ch == '/':
		return lx.scanSlash(s)

	case ch == '\'' || ch == '"':
		return lx.scanString(s, ch)

	case ch == '`':
		return lx.scanTemplate(s)

	case isDec(ch) || (ch == '.' && isDec(lx.cursor.PeekAt(1))):
		return lx.scanNumber(s)

	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword(s)

	default:
		return lx.scanOperatorOrPunct(s)
	}
}

// emit appends the token covering everything since start.
func (lx *Lexer) emit(s *stream.Stream, kind token.Kind, start Mark) token.Kind {
	sp := lx.cursor.SpanFrom(start)
	s.Append(kind, sp, string(lx.file.Content[sp.Start:sp.End]))
	return kind
}

// scanSlash dispatches between comments, regex literals, and division.
func (lx *Lexer) scanSlash(s *stream.Stream) token.Kind {
	switch lx.cursor.PeekAt(1) {
	case '/':
		return lx.scanLineComment(s)
	case '*':
		return lx.scanBlockComment(s)
	}
	if lx.last.UnaryContext() {
		return lx.scanRegex(s)
	}
	return lx.scanOperatorOrPunct(s)
}

func (lx *Lexer) errFatal(code diag.Code, sp source.Span, msg string) {
	lx.report(code, sp, msg)
	lx.fatal = &LexError{Code: code, Span: sp, Msg: msg}
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
}
