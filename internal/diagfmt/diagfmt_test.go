package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/diagfmt"
	"github.com/zeth/jscodestyle/internal/driver"
	"github.com/zeth/jscodestyle/internal/source"
)

func lintBag(t *testing.T, src string) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	res := driver.LintSource(fs, "test.js", []byte(src), driver.Options{})
	if res.Fatal != nil {
		t.Fatalf("fatal: %v", res.Fatal)
	}
	res.Bag.Sort()
	return res.Bag, fs
}

func TestPrettyHeaderAndUnderline(t *testing.T) {
	bag, fs := lintBag(t, "a=1;\n")
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})
	out := buf.String()

	if !strings.Contains(out, "test.js:1:2: warning missing_space:") {
		t.Errorf("header missing from output:\n%s", out)
	}
	if !strings.Contains(out, "  a=1;\n") {
		t.Errorf("source line missing from output:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("underline missing from output:\n%s", out)
	}
}

func TestPrettyShowsFixTitles(t *testing.T) {
	bag, fs := lintBag(t, "a=1;\n")
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{ShowFixes: true})
	if !strings.Contains(buf.String(), "  fix: ") {
		t.Errorf("fix titles missing:\n%s", buf.String())
	}
}

func TestPrettyNotesTruncation(t *testing.T) {
	fs := source.NewFileSet()
	res := driver.LintSource(fs, "test.js", []byte("a=1;b=2;\n"), driver.Options{MaxDiagnostics: 1})
	if !res.Bag.Truncated() {
		t.Fatal("expected a truncated bag")
	}

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, res.Bag, fs, diagfmt.PrettyOpts{})
	if !strings.Contains(buf.String(), "further findings omitted") {
		t.Errorf("truncation notice missing:\n%s", buf.String())
	}

	buf.Reset()
	if err := diagfmt.JSON(&buf, res.Bag, fs, diagfmt.JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if !out.Truncated {
		t.Error("JSON report must carry the truncated marker")
	}
}

func TestJSONOutput(t *testing.T) {
	bag, fs := lintBag(t, "a=1;\n")
	var buf bytes.Buffer
	err := diagfmt.JSON(&buf, bag, fs, diagfmt.JSONOpts{
		IncludePositions: true,
		IncludeFixes:     true,
	})
	if err != nil {
		t.Fatal(err)
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Count == 0 || len(out.Diagnostics) != out.Count {
		t.Fatalf("count mismatch: %+v", out)
	}
	first := out.Diagnostics[0]
	if first.Code != "missing_space" || first.Severity != "warning" {
		t.Errorf("unexpected first diagnostic: %+v", first)
	}
	if first.Location.StartLine != 1 || first.Location.StartCol == 0 {
		t.Errorf("positions not populated: %+v", first.Location)
	}
	if len(first.Fixes) == 0 {
		t.Errorf("fixes not included: %+v", first)
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	bag, fs := lintBag(t, "a=1;\nb=2;\n")
	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, bag, fs, diagfmt.JSONOpts{Max: 1}); err != nil {
		t.Fatal(err)
	}
	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 {
		t.Errorf("want 1 diagnostic after truncation, got %d", out.Count)
	}
}

func TestSarifOutput(t *testing.T) {
	bag, fs := lintBag(t, "a=1;\n")
	var buf bytes.Buffer
	err := diagfmt.Sarif(&buf, bag, fs, diagfmt.SarifRunMeta{
		ToolName:    "jscs",
		ToolVersion: "0.1.0",
	})
	if err != nil {
		t.Fatal(err)
	}

	var log map[string]any
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if log["version"] != "2.1.0" {
		t.Errorf("version %v", log["version"])
	}
	runs, ok := log["runs"].([]any)
	if !ok || len(runs) != 1 {
		t.Fatalf("want one run, got %v", log["runs"])
	}
	out := buf.String()
	if !strings.Contains(out, "\"ruleId\": \"missing_space\"") {
		t.Errorf("results missing rule ids:\n%s", out)
	}
	if !strings.Contains(out, "\"name\": \"jscs\"") {
		t.Errorf("tool name missing:\n%s", out)
	}
}

func TestTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	res := driver.TokenizeSource(fs, "test.js", []byte("var x = 1;\n"), driver.Options{})
	if res.Fatal != nil {
		t.Fatal(res.Fatal)
	}
	var buf bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&buf, res.Stream, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"KwVar", "Ident", "Number", "Semicolon", "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump lacks %s:\n%s", want, out)
		}
	}
}

func TestTokensJSON(t *testing.T) {
	fs := source.NewFileSet()
	res := driver.TokenizeSource(fs, "test.js", []byte("f();\n"), driver.Options{})
	if res.Fatal != nil {
		t.Fatal(res.Fatal)
	}
	var buf bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&buf, res.Stream); err != nil {
		t.Fatal(err)
	}
	var out []diagfmt.TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(out) == 0 || out[len(out)-1].Kind != "EOF" {
		t.Errorf("token array malformed: %+v", out)
	}
}
