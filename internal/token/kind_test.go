package token_test

import (
	"testing"

	"github.com/zeth/jscodestyle/internal/token"
)

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		kind       token.Kind
		keyword    bool
		comment    bool
		whitespace bool
		literal    bool
		punct      bool
	}{
		{token.KwFunction, true, false, false, false, false},
		{token.KwWith, true, false, false, false, false},
		{token.LineComment, false, true, false, false, false},
		{token.DocComment, false, true, false, false, false},
		{token.Whitespace, false, false, true, false, false},
		{token.Newline, false, false, true, false, false},
		{token.Number, false, false, false, true, false},
		{token.Regex, false, false, false, true, false},
		{token.Semicolon, false, false, false, false, true},
		{token.Operator, false, false, false, false, true},
		{token.Ident, false, false, false, false, false},
		{token.EOF, false, false, false, false, false},
	}
	for _, tt := range tests {
		if got := tt.kind.IsKeyword(); got != tt.keyword {
			t.Errorf("%v.IsKeyword() = %v", tt.kind, got)
		}
		if got := tt.kind.IsComment(); got != tt.comment {
			t.Errorf("%v.IsComment() = %v", tt.kind, got)
		}
		if got := tt.kind.IsWhitespace(); got != tt.whitespace {
			t.Errorf("%v.IsWhitespace() = %v", tt.kind, got)
		}
		if got := tt.kind.IsLiteral(); got != tt.literal {
			t.Errorf("%v.IsLiteral() = %v", tt.kind, got)
		}
		if got := tt.kind.IsPunctOrOp(); got != tt.punct {
			t.Errorf("%v.IsPunctOrOp() = %v", tt.kind, got)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	if k := token.LookupKeyword("function"); k != token.KwFunction {
		t.Errorf("expected KwFunction, got %v", k)
	}
	if k := token.LookupKeyword("instanceof"); k != token.KwInstanceof {
		t.Errorf("expected KwInstanceof, got %v", k)
	}
	// Not reserved for style purposes.
	for _, name := range []string{"true", "null", "undefined", "functions", "If"} {
		if k := token.LookupKeyword(name); k != token.Ident {
			t.Errorf("LookupKeyword(%q): expected Ident, got %v", name, k)
		}
	}
}

func TestClosingFor(t *testing.T) {
	pairs := map[token.Kind]token.Kind{
		token.LParen:   token.RParen,
		token.LBrace:   token.RBrace,
		token.LBracket: token.RBracket,
	}
	for open, want := range pairs {
		if got := token.ClosingFor(open); got != want {
			t.Errorf("ClosingFor(%v): expected %v, got %v", open, want, got)
		}
	}
	if got := token.ClosingFor(token.Comma); got != token.Invalid {
		t.Errorf("expected Invalid for non-bracket, got %v", got)
	}
}

func TestUnaryContext(t *testing.T) {
	regexAfter := []token.Kind{
		token.Operator, token.Comma, token.LParen, token.LBracket,
		token.KwReturn, token.KwTypeof, token.Semicolon, token.Colon,
	}
	divisionAfter := []token.Kind{
		token.Ident, token.Number, token.String, token.RParen,
		token.RBracket, token.RBrace, token.KwThis, token.Regex,
	}
	for _, k := range regexAfter {
		if !k.UnaryContext() {
			t.Errorf("expected regex context after %v", k)
		}
	}
	for _, k := range divisionAfter {
		if k.UnaryContext() {
			t.Errorf("expected division context after %v", k)
		}
	}
}
