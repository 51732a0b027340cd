package diag

import (
	"testing"

	"github.com/zeth/jscodestyle/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewWarning(StyleMissingSpace, span(0, 0, 1), "one")) {
		t.Fatal("first add must succeed")
	}
	if !b.Add(NewWarning(StyleExtraSpace, span(0, 1, 2), "two")) {
		t.Fatal("second add must succeed")
	}
	if b.Add(NewWarning(StyleMissingSpace, span(0, 2, 3), "three")) {
		t.Fatal("third add must be rejected by the limit")
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", b.Len())
	}
}

func TestBagTruncatedFlag(t *testing.T) {
	b := NewBag(1)
	b.Add(NewWarning(StyleMissingSpace, span(0, 0, 1), "kept"))
	if b.Truncated() {
		t.Fatal("bag below its limit must not be truncated")
	}
	b.Add(NewWarning(StyleExtraSpace, span(0, 1, 2), "dropped"))
	if !b.Truncated() {
		t.Fatal("dropping at the limit must set the truncation marker")
	}
}

func TestBagMergeCarriesTruncation(t *testing.T) {
	full := NewBag(1)
	full.Add(NewWarning(StyleMissingSpace, span(0, 0, 1), "kept"))
	full.Add(NewWarning(StyleExtraSpace, span(0, 1, 2), "dropped"))

	sum := NewBag(10)
	sum.Merge(full)
	if !sum.Truncated() {
		t.Fatal("merge must carry the truncation marker")
	}
}

func TestBagSortIsDeterministic(t *testing.T) {
	b := NewBag(10)
	b.Add(NewWarning(StyleExtraSpace, span(0, 5, 6), "later"))
	b.Add(NewError(LexUnterminatedString, span(0, 5, 6), "error wins"))
	b.Add(NewWarning(StyleMissingSpace, span(0, 1, 2), "earlier"))
	b.Add(NewWarning(StyleTrailingWhitespace, span(1, 0, 1), "other file"))

	b.Sort()
	items := b.Items()

	wantOrder := []Code{StyleMissingSpace, LexUnterminatedString, StyleExtraSpace, StyleTrailingWhitespace}
	for i, want := range wantOrder {
		if items[i].Code != want {
			t.Errorf("position %d: expected %v, got %v", i, want, items[i].Code)
		}
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(10)
	d := NewWarning(StyleMissingSpace, span(0, 3, 4), `missing space after ","`)
	b.Add(d)
	b.Add(d)
	b.Add(NewWarning(StyleMissingSpace, span(0, 7, 8), `missing space after ","`))

	b.Dedup()
	if b.Len() != 2 {
		t.Fatalf("expected 2 after dedup, got %d", b.Len())
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewWarning(StyleMissingSpace, span(0, 0, 1), "a"))
	other := NewBag(1)
	other.Add(NewWarning(StyleExtraSpace, span(0, 1, 2), "b"))

	a.Merge(other)
	if a.Len() != 2 {
		t.Fatalf("expected merged bag of 2, got %d", a.Len())
	}
}

func TestSeverityQueries(t *testing.T) {
	b := NewBag(10)
	b.Add(NewWarning(StyleMissingSpace, span(0, 0, 1), "w"))
	if b.HasErrors() {
		t.Error("no errors expected")
	}
	if !b.HasWarnings() {
		t.Error("expected a warning")
	}
	b.Add(NewError(LexUnterminatedString, span(0, 0, 1), "e"))
	if !b.HasErrors() {
		t.Error("expected an error")
	}
	if b.CountStyle() != 1 {
		t.Errorf("expected 1 style violation, got %d", b.CountStyle())
	}
}

func TestCodeIDs(t *testing.T) {
	if id := StyleMissingSpace.ID(); id != "missing_space" {
		t.Errorf("unexpected id %q", id)
	}
	if code, ok := CodeForID("missing_space"); !ok || code != StyleMissingSpace {
		t.Errorf("CodeForID round trip failed: %v %v", code, ok)
	}
	if _, ok := CodeForID("no_such_rule"); ok {
		t.Error("unknown id must not resolve")
	}
	if !LexUnterminatedString.IsLexError() {
		t.Error("lex code must be classified fatal")
	}
	if !DocMissingParam.IsStyle() || StyleMissingSpace.IsLexError() {
		t.Error("misclassified codes")
	}
}
