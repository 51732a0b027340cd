package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 1, Start: 2, End: 7}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 10 {
		t.Errorf("expected 2-10, got %d-%d", got.Start, got.End)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if a.Cover(other) != a {
		t.Error("cover across files must be a no-op")
	}
}

func TestSpanOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{"disjoint", Span{0, 0, 2}, Span{0, 3, 5}, false},
		{"touching", Span{0, 0, 2}, Span{0, 2, 4}, false},
		{"overlap", Span{0, 0, 3}, Span{0, 2, 4}, true},
		{"nested", Span{0, 0, 10}, Span{0, 3, 4}, true},
		{"both empty", Span{0, 2, 2}, Span{0, 2, 2}, false},
		{"empty inside", Span{0, 2, 2}, Span{0, 0, 5}, true},
		{"empty outside", Span{0, 7, 7}, Span{0, 0, 5}, false},
		{"different files", Span{0, 0, 5}, Span{1, 0, 5}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Overlaps(tt.b); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
		if got := tt.b.Overlaps(tt.a); got != tt.want {
			t.Errorf("%s (swapped): expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestInternerRoundTrip(t *testing.T) {
	in := NewInterner()

	a := in.Intern("count")
	b := in.Intern("total")
	if a == b {
		t.Fatal("distinct strings must get distinct IDs")
	}
	if again := in.Intern("count"); again != a {
		t.Errorf("expected stable ID %d, got %d", a, again)
	}
	if s := in.MustLookup(b); s != "total" {
		t.Errorf("expected %q, got %q", "total", s)
	}
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Error("lookup of unknown ID must fail")
	}
	if in.Len() != 3 { // "", "count", "total"
		t.Errorf("expected 3 interned strings, got %d", in.Len())
	}
}
