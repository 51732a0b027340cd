package tracker_test

import (
	"testing"

	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/lexer"
	"github.com/zeth/jscodestyle/internal/source"
	"github.com/zeth/jscodestyle/internal/stream"
	"github.com/zeth/jscodestyle/internal/token"
	"github.com/zeth/jscodestyle/internal/tracker"
)

func annotate(t *testing.T, src string) *stream.Stream {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.js", []byte(src)))
	s, err := lexer.Lex(f, lexer.Options{})
	if err != nil {
		t.Fatalf("lex %q: %v", src, err)
	}
	tracker.Annotate(s, tracker.Options{})
	return s
}

func findText(s *stream.Stream, text string) *stream.Token {
	for tok := s.First(); tok != nil; tok = tok.Next() {
		if tok.Text == text {
			return tok
		}
	}
	return nil
}

func TestDepths(t *testing.T) {
	s := annotate(t, "function f(a) {\n  if (a) {\n    g(a);\n  }\n}\n")

	fn := findText(s, "function")
	if fn.Ctx.Depth != 0 || fn.Ctx.BraceDepth != 0 {
		t.Errorf("function: depth %d/%d, want 0/0", fn.Ctx.Depth, fn.Ctx.BraceDepth)
	}
	g := findText(s, "g")
	if g.Ctx.Depth != 2 || g.Ctx.BraceDepth != 2 {
		t.Errorf("g: depth %d/%d, want 2/2", g.Ctx.Depth, g.Ctx.BraceDepth)
	}
}

func TestStatementRoles(t *testing.T) {
	s := annotate(t, "var x = 1;\nfoo();\n")

	if got := findText(s, "var").Ctx.Role; got != stream.RoleStatementStart {
		t.Errorf("var role %v", got)
	}
	if got := findText(s, "x").Ctx.Role; got != stream.RoleExpression {
		t.Errorf("x role %v", got)
	}
	if got := findText(s, "foo").Ctx.Role; got != stream.RoleStatementStart {
		t.Errorf("foo role %v", got)
	}
}

func TestParamListAndFunctionBody(t *testing.T) {
	s := annotate(t, "function f(a, b) {\n  return a;\n}\n")

	a := findText(s, "a")
	if a.Ctx.Role != stream.RoleParamList {
		t.Errorf("param a role %v", a.Ctx.Role)
	}
	ret := findText(s, "return")
	if ret.Ctx.Role != stream.RoleStatementStart {
		t.Errorf("return role %v", ret.Ctx.Role)
	}
}

func TestObjectLiteral(t *testing.T) {
	s := annotate(t, "var o = {a: 1, b: 2};\n")

	// The key after the opening brace sits inside the literal.
	brace := findText(s, "{")
	if inner := brace.NextCode(); inner.Ctx.Role != stream.RoleObjectLiteral {
		t.Errorf("object key role %v", inner.Ctx.Role)
	}
}

func TestDocAssociation(t *testing.T) {
	s := annotate(t, "/** Adds. */\nfunction add(a, b) {}\n")

	fn := findText(s, "function")
	if fn.Ctx.Doc == nil {
		t.Fatal("function should carry its doc comment")
	}
	if fn.Ctx.Doc.Kind != token.DocComment {
		t.Errorf("doc kind %v", fn.Ctx.Doc.Kind)
	}
}

func TestOrphanDoc(t *testing.T) {
	s := annotate(t, "/** Orphan. */\nfoo();\n")

	foo := findText(s, "foo")
	if foo.Ctx.Doc != nil {
		t.Error("call expression must not claim the doc comment")
	}
}

func TestDocSurvivesBlankLinesAndComments(t *testing.T) {
	s := annotate(t, "/** Doc. */\n\n// note\nvar x = 1;\n")

	v := findText(s, "var")
	if v.Ctx.Doc == nil {
		t.Error("blank lines and line comments must not break the association")
	}
}

func TestIdempotent(t *testing.T) {
	src := "function f(a) {\n  var o = {k: a};\n  return o;\n}\n"
	s := annotate(t, src)

	type snap struct {
		depth int
		brace int
		role  stream.Role
	}
	var before []snap
	for tok := s.First(); tok != nil; tok = tok.Next() {
		before = append(before, snap{tok.Ctx.Depth, tok.Ctx.BraceDepth, tok.Ctx.Role})
	}

	tracker.Annotate(s, tracker.Options{})
	i := 0
	for tok := s.First(); tok != nil; tok = tok.Next() {
		got := snap{tok.Ctx.Depth, tok.Ctx.BraceDepth, tok.Ctx.Role}
		if got != before[i] {
			t.Fatalf("token %d (%q): %+v changed to %+v", i, tok.Text, before[i], got)
		}
		i++
	}
}

func TestInternsIdentifiers(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.js", []byte("var abc = abc;\n")))
	s, err := lexer.Lex(f, lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}
	in := source.NewInterner()
	tracker.Annotate(s, tracker.Options{Interner: in})

	first := findText(s, "abc")
	second := first.NextCode().NextCode()
	if second.Text != "abc" {
		t.Fatalf("unexpected token %q", second.Text)
	}
	if first.Ctx.Name != second.Ctx.Name {
		t.Error("same identifier text must intern to the same id")
	}
}

func TestUnbalancedBracketsReported(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.js", []byte("function f() { return; \n")))
	s, err := lexer.Lex(f, lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}
	bag := diag.NewBag(16)
	tracker.Annotate(s, tracker.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if !bag.HasWarnings() {
		t.Error("unclosed brace should produce a warning")
	}

	f2 := fs.Get(fs.AddVirtual("test2.js", []byte("foo());\n")))
	s2, err := lexer.Lex(f2, lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}
	bag2 := diag.NewBag(16)
	tracker.Annotate(s2, tracker.Options{Reporter: &diag.BagReporter{Bag: bag2}})
	if !bag2.HasWarnings() {
		t.Error("stray closer should produce a warning")
	}
}

func TestArrowFunctionBody(t *testing.T) {
	s := annotate(t, "var f = (a) => {\n  return a;\n};\n")

	ret := findText(s, "return")
	if ret.Ctx.Role != stream.RoleStatementStart {
		t.Errorf("return role %v", ret.Ctx.Role)
	}
}
