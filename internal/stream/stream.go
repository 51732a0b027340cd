package stream

import (
	"strings"

	"github.com/zeth/jscodestyle/internal/source"
	"github.com/zeth/jscodestyle/internal/token"
)

// Token is one node of a Stream: a lexical token plus its mutable
// context annotation and doubly-linked neighbors. Tokens are owned by
// the stream that produced them and are never shared across streams.
type Token struct {
	Kind token.Kind
	Span source.Span
	Text string
	Ctx  Annotation

	prev, next *Token
}

// Prev returns the preceding token, or nil at the head.
func (t *Token) Prev() *Token { return t.prev }

// Next returns the following token, or nil past the tail.
func (t *Token) Next() *Token { return t.next }

// PrevNonWhitespace returns the closest preceding token that is not
// whitespace or a newline, or nil.
func (t *Token) PrevNonWhitespace() *Token {
	for p := t.prev; p != nil; p = p.prev {
		if !p.Kind.IsWhitespace() {
			return p
		}
	}
	return nil
}

// NextNonWhitespace returns the closest following token that is not
// whitespace or a newline, or nil.
func (t *Token) NextNonWhitespace() *Token {
	for n := t.next; n != nil; n = n.next {
		if !n.Kind.IsWhitespace() {
			return n
		}
	}
	return nil
}

// PrevCode returns the closest preceding token that is neither
// whitespace nor a comment, or nil.
func (t *Token) PrevCode() *Token {
	for p := t.prev; p != nil; p = p.prev {
		if !p.Kind.IsWhitespace() && !p.Kind.IsComment() {
			return p
		}
	}
	return nil
}

// NextCode returns the closest following token that is neither
// whitespace nor a comment, or nil.
func (t *Token) NextCode() *Token {
	for n := t.next; n != nil; n = n.next {
		if !n.Kind.IsWhitespace() && !n.Kind.IsComment() {
			return n
		}
	}
	return nil
}

// StartsLine reports whether the token is the first on its line,
// ignoring nothing: a preceding Whitespace token still counts as line
// content unless it directly follows a newline or the file start.
func (t *Token) StartsLine() bool {
	p := t.prev
	if p == nil {
		return true
	}
	return p.Kind == token.Newline
}

// Stream is an ordered, lossless sequence of tokens for one file.
// Concatenating every token's Text in order reproduces the source
// exactly; whitespace and comments are tokens, not discarded trivia.
type Stream struct {
	file  source.FileID
	head  *Token
	tail  *Token
	count int
}

// New creates an empty stream for the given file.
func New(file source.FileID) *Stream {
	return &Stream{file: file}
}

// File returns the ID of the file this stream was lexed from.
func (s *Stream) File() source.FileID { return s.file }

// First returns the first token, or nil for an empty stream.
func (s *Stream) First() *Token { return s.head }

// Last returns the last token (EOF after lexing), or nil.
func (s *Stream) Last() *Token { return s.tail }

// Len returns the number of tokens in the stream.
func (s *Stream) Len() int { return s.count }

// Append adds a token at the tail and returns it.
func (s *Stream) Append(kind token.Kind, span source.Span, text string) *Token {
	t := &Token{Kind: kind, Span: span, Text: text}
	if s.tail == nil {
		s.head = t
		s.tail = t
	} else {
		t.prev = s.tail
		s.tail.next = t
		s.tail = t
	}
	s.count++
	return t
}

// InsertBefore links a synthesized token in front of at. The new token
// carries an empty span at at's start; only its text participates in
// serialization.
func (s *Stream) InsertBefore(at *Token, kind token.Kind, text string) *Token {
	t := &Token{
		Kind: kind,
		Span: source.Span{File: s.file, Start: at.Span.Start, End: at.Span.Start},
		Text: text,
	}
	t.prev = at.prev
	t.next = at
	if at.prev != nil {
		at.prev.next = t
	} else {
		s.head = t
	}
	at.prev = t
	s.count++
	return t
}

// InsertAfter links a synthesized token right after at.
func (s *Stream) InsertAfter(at *Token, kind token.Kind, text string) *Token {
	t := &Token{
		Kind: kind,
		Span: source.Span{File: s.file, Start: at.Span.End, End: at.Span.End},
		Text: text,
	}
	t.prev = at
	t.next = at.next
	if at.next != nil {
		at.next.prev = t
	} else {
		s.tail = t
	}
	at.next = t
	s.count++
	return t
}

// Remove unlinks the token from the stream.
func (s *Stream) Remove(t *Token) {
	if t.prev != nil {
		t.prev.next = t.next
	} else {
		s.head = t.next
	}
	if t.next != nil {
		t.next.prev = t.prev
	} else {
		s.tail = t.prev
	}
	t.prev = nil
	t.next = nil
	s.count--
}

// Serialize concatenates every token's text in order. For an unedited
// stream this reproduces the lexed source byte-for-byte.
func (s *Stream) Serialize() string {
	var b strings.Builder
	for t := s.head; t != nil; t = t.next {
		b.WriteString(t.Text)
	}
	return b.String()
}

// FindAt returns the token whose span starts at the given original
// byte offset, or nil. Synthesized tokens (empty spans) are skipped.
func (s *Stream) FindAt(start uint32) *Token {
	for t := s.head; t != nil; t = t.next {
		if t.Span.Start == start && !t.Span.Empty() {
			return t
		}
		if t.Span.Start > start {
			break
		}
	}
	return nil
}

// Tokens returns all tokens in order as a slice. Intended for output
// formatting and tests; rules should navigate the links instead.
func (s *Stream) Tokens() []*Token {
	out := make([]*Token, 0, s.count)
	for t := s.head; t != nil; t = t.next {
		out = append(out, t)
	}
	return out
}
