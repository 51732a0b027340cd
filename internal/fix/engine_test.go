package fix_test

import (
	"errors"
	"testing"

	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/fix"
	"github.com/zeth/jscodestyle/internal/source"
)

func file(t *testing.T, content string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("test.js", []byte(content)))
}

func edit(start, end uint32, newText, oldText string) diag.TextEdit {
	return diag.TextEdit{
		Span:    source.Span{File: 0, Start: start, End: end},
		NewText: newText,
		OldText: oldText,
	}
}

func fixed(code diag.Code, start, end uint32, edits ...diag.TextEdit) diag.Diagnostic {
	return diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     code,
		Message:  code.Title(),
		Primary:  source.Span{File: 0, Start: start, End: end},
		Fixes: []diag.Fix{{
			Title:         "fix",
			Applicability: diag.FixAlwaysSafe,
			Edits:         edits,
		}},
	}
}

func TestInsertions(t *testing.T) {
	f := file(t, "a=1;")
	diags := []diag.Diagnostic{
		fixed(diag.StyleMissingSpace, 1, 2, edit(1, 1, " ", "")),
		fixed(diag.StyleMissingSpace, 1, 2, edit(2, 2, " ", "")),
	}
	res, err := fix.Apply(f, diags, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(res.Output); got != "a = 1;" {
		t.Errorf("output %q", got)
	}
	if len(res.Applied) != 2 {
		t.Errorf("applied %d fixes", len(res.Applied))
	}
}

func TestDeleteWithGuard(t *testing.T) {
	f := file(t, "a;  \n")
	diags := []diag.Diagnostic{
		fixed(diag.StyleTrailingWhitespace, 2, 4, edit(2, 4, "", "  ")),
	}
	res, err := fix.Apply(f, diags, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(res.Output); got != "a;\n" {
		t.Errorf("output %q", got)
	}
}

func TestGuardMismatchSkips(t *testing.T) {
	f := file(t, "abc")
	diags := []diag.Diagnostic{
		fixed(diag.StyleExtraSpace, 0, 2, edit(0, 2, "x", "zz")),
	}
	res, err := fix.Apply(f, diags, nil)
	if !errors.Is(err, fix.ErrNoFixes) {
		t.Fatalf("expected ErrNoFixes, got %v", err)
	}
	if got := string(res.Output); got != "abc" {
		t.Errorf("guarded edit must not touch the file: %q", got)
	}
	if len(res.Skipped) != 1 {
		t.Errorf("skipped %v", res.Skipped)
	}
}

func TestConflictFirstWins(t *testing.T) {
	f := file(t, "a  b")
	diags := []diag.Diagnostic{
		fixed(diag.StyleExtraSpace, 1, 3, edit(1, 3, " ", "  ")),
		fixed(diag.StyleWrongIndentation, 1, 3, edit(1, 3, "    ", "  ")),
	}
	bag := diag.NewBag(16)
	res, err := fix.Apply(f, diags, &diag.BagReporter{Bag: bag})
	if err != nil {
		t.Fatal(err)
	}
	if got := string(res.Output); got != "a b" {
		t.Errorf("first registered fix must win, got %q", got)
	}
	if len(res.Applied) != 1 || len(res.Skipped) != 1 {
		t.Fatalf("applied %d skipped %d", len(res.Applied), len(res.Skipped))
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.FixConflict {
			found = true
		}
	}
	if !found {
		t.Error("conflict must be recorded as a FixConflict note")
	}
}

func TestSamePointInsertionsConflict(t *testing.T) {
	f := file(t, "ab")
	diags := []diag.Diagnostic{
		fixed(diag.StyleMissingSpace, 1, 1, edit(1, 1, " ", "")),
		fixed(diag.StyleMissingSemicolon, 1, 1, edit(1, 1, ";", "")),
	}
	res, err := fix.Apply(f, diags, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(res.Output); got != "a b" {
		t.Errorf("exactly one insertion must win, got %q", got)
	}
	if len(res.Applied) != 1 || len(res.Skipped) != 1 {
		t.Errorf("applied %d skipped %d", len(res.Applied), len(res.Skipped))
	}
}

func TestOffsetsShiftAcrossEdits(t *testing.T) {
	f := file(t, "x=1;y=2;")
	diags := []diag.Diagnostic{
		fixed(diag.StyleMissingSpace, 1, 2, edit(1, 1, " ", ""), edit(2, 2, " ", "")),
		fixed(diag.StyleMissingSpace, 5, 6, edit(5, 5, " ", ""), edit(6, 6, " ", "")),
	}
	res, err := fix.Apply(f, diags, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(res.Output); got != "x = 1;y = 2;" {
		t.Errorf("output %q", got)
	}
}

func TestManualReviewNotApplied(t *testing.T) {
	f := file(t, "abc")
	d := fixed(diag.StyleQuote, 0, 3, edit(0, 3, "xyz", "abc"))
	d.Fixes[0].Applicability = diag.FixManualReview
	res, err := fix.Apply(f, []diag.Diagnostic{d}, nil)
	if !errors.Is(err, fix.ErrNoFixes) {
		t.Fatalf("expected ErrNoFixes, got %v", err)
	}
	if got := string(res.Output); got != "abc" {
		t.Errorf("manual fix applied: %q", got)
	}
}

func TestUntouchedRegionsIdentical(t *testing.T) {
	src := "var a=1;\nvar b = 2;\nvar c=3;\n"
	f := file(t, src)
	diags := []diag.Diagnostic{
		fixed(diag.StyleMissingSpace, 5, 6, edit(5, 5, " ", ""), edit(6, 6, " ", "")),
	}
	res, err := fix.Apply(f, diags, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := "var a = 1;\nvar b = 2;\nvar c=3;\n"
	if got := string(res.Output); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
