package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtualComputesLineIndex(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.js", []byte("var x = 1;\nvar y = 2;\n"))

	f := fs.Get(id)
	if len(f.LineIdx) != 2 {
		t.Fatalf("expected 2 newlines in index, got %d", len(f.LineIdx))
	}
	if f.LineIdx[0] != 10 || f.LineIdx[1] != 21 {
		t.Fatalf("unexpected line index %v", f.LineIdx)
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
}

func TestResolvePositions(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.js", []byte("ab\ncd\nef"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{2, LineCol{Line: 1, Col: 3}}, // the newline itself
		{3, LineCol{Line: 2, Col: 1}},
		{4, LineCol{Line: 2, Col: 2}},
		{6, LineCol{Line: 3, Col: 1}},
		{7, LineCol{Line: 3, Col: 2}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("Resolve(%d): expected %+v, got %+v", tt.off, tt.want, start)
		}
	}
}

func TestResolveUTF8(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.js", []byte("α\n")) // alpha is two bytes

	span := Span{File: id, Start: 0, End: 1}
	start, end := fs.Resolve(span)

	if (start != LineCol{Line: 1, Col: 1}) {
		t.Errorf("expected start 1:1, got %+v", start)
	}
	if (end != LineCol{Line: 1, Col: 2}) {
		t.Errorf("expected end 1:2, got %+v", end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.js", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d): expected %q, got %q", tt.line, tt.want, got)
		}
	}
}

func TestLineCount(t *testing.T) {
	fs := NewFileSet()
	withNL := fs.Get(fs.AddVirtual("a.js", []byte("a\nb\n")))
	withoutNL := fs.Get(fs.AddVirtual("b.js", []byte("a\nb")))
	empty := fs.Get(fs.AddVirtual("c.js", nil))

	if n := withNL.LineCount(); n != 2 {
		t.Errorf("expected 2 lines, got %d", n)
	}
	if n := withoutNL.LineCount(); n != 2 {
		t.Errorf("expected 2 lines without trailing newline, got %d", n)
	}
	if n := empty.LineCount(); n != 0 {
		t.Errorf("expected 0 lines for empty file, got %d", n)
	}
}

func TestFileVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("a.js", []byte("version 1"), 0)
	id2 := fs.Add("a.js", []byte("version 2"), 0)
	if id1 == id2 {
		t.Fatal("expected distinct IDs for re-added path")
	}

	latest, ok := fs.GetLatest("a.js")
	if !ok || latest != id2 {
		t.Fatalf("expected latest ID %d, got %d (ok=%v)", id2, latest, ok)
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.js")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("var a;\r\nvar b;\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "var a;\nvar b;\n" {
		t.Fatalf("unexpected content %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("expected BOM and CRLF flags, got %v", f.Flags)
	}
}

func TestNormalizeRestoreRoundTrip(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("var a;\r\nvar b;\r\n")...)

	content, flags := Normalize(raw)
	if string(content) != "var a;\nvar b;\n" {
		t.Fatalf("normalized to %q", content)
	}
	if got := Restore(content, flags); string(got) != string(raw) {
		t.Errorf("restore mismatch: %q", got)
	}
}

func TestAddVirtualNormalizes(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("v.js", []byte("var a;\r\n")))
	if string(f.Content) != "var a;\n" {
		t.Fatalf("unexpected content %q", f.Content)
	}
	if f.Flags&FileVirtual == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("expected virtual and CRLF flags, got %v", f.Flags)
	}
}
