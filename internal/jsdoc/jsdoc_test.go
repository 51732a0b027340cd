package jsdoc_test

import (
	"testing"

	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/jsdoc"
	"github.com/zeth/jscodestyle/internal/lexer"
	"github.com/zeth/jscodestyle/internal/source"
	"github.com/zeth/jscodestyle/internal/tracker"
)

func check(t *testing.T, src string) []diag.Diagnostic {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.js", []byte(src)))
	s, err := lexer.Lex(f, lexer.Options{})
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	tracker.Annotate(s, tracker.Options{})
	bag := diag.NewBag(64)
	jsdoc.Check(s, &diag.BagReporter{Bag: bag})
	return bag.Items()
}

func codesOf(items []diag.Diagnostic) map[diag.Code]int {
	out := map[diag.Code]int{}
	for _, d := range items {
		out[d.Code]++
	}
	return out
}

func TestParseComment(t *testing.T) {
	c := jsdoc.Parse(`/**
 * Adds two numbers.
 * @param {number} a First addend.
 * @param {number} b Second addend.
 * @return {number} The sum.
 */`)
	if !c.HasDescription {
		t.Error("description not detected")
	}
	if !c.HasReturn {
		t.Error("return tag not detected")
	}
	if len(c.Params) != 2 || c.Params[0] != "a" || c.Params[1] != "b" {
		t.Errorf("params %v", c.Params)
	}
}

func TestParseOptionalParam(t *testing.T) {
	c := jsdoc.Parse("/** Desc.\n * @param {number=} [count=1] How many.\n */")
	if len(c.Params) != 1 || c.Params[0] != "count" {
		t.Errorf("params %v", c.Params)
	}
}

func TestUndocumentedParam(t *testing.T) {
	items := check(t, `/**
 * Adds.
 * @param {number} a A.
 */
function add(a, b) {
}
`)
	counts := codesOf(items)
	if counts[diag.DocMissingParam] != 1 {
		t.Errorf("want exactly one missing_param_doc, got %d", counts[diag.DocMissingParam])
	}
	if counts[diag.DocExtraParam] != 0 {
		t.Errorf("unexpected stale docs: %v", items)
	}
}

func TestStaleParamDoc(t *testing.T) {
	items := check(t, `/**
 * Adds.
 * @param {number} a A.
 * @param {number} b B.
 * @param {number} c Gone.
 */
function add(a, b) {
}
`)
	counts := codesOf(items)
	if counts[diag.DocExtraParam] != 1 {
		t.Errorf("want exactly one extra_param_doc, got %d", counts[diag.DocExtraParam])
	}
	if counts[diag.DocMissingParam] != 0 {
		t.Errorf("unexpected missing docs: %v", items)
	}
}

func TestParamOrder(t *testing.T) {
	items := check(t, `/**
 * Swapped.
 * @param {number} b B.
 * @param {number} a A.
 */
function f(a, b) {
}
`)
	if codesOf(items)[diag.DocParamOutOfOrder] != 1 {
		t.Errorf("want one param_doc_order violation: %v", items)
	}
}

func TestMissingReturn(t *testing.T) {
	items := check(t, `/**
 * Doubles.
 * @param {number} a A.
 */
function double(a) {
  return a * 2;
}
`)
	if codesOf(items)[diag.DocMissingReturn] != 1 {
		t.Errorf("want one missing_return_doc: %v", items)
	}
}

func TestBareReturnNeedsNoDoc(t *testing.T) {
	items := check(t, `/**
 * Logs.
 * @param {number} a A.
 */
function log(a) {
  if (!a) {
    return;
  }
  console.log(a);
}
`)
	if codesOf(items)[diag.DocMissingReturn] != 0 {
		t.Errorf("bare return must not require @return: %v", items)
	}
}

func TestNestedFunctionReturnIgnored(t *testing.T) {
	items := check(t, `/**
 * Wires a handler.
 * @param {Object} el Element.
 */
function wire(el) {
  el.onclick = function() {
    return 1;
  };
}
`)
	if codesOf(items)[diag.DocMissingReturn] != 0 {
		t.Errorf("nested return must not count: %v", items)
	}
}

func TestMissingDescription(t *testing.T) {
	items := check(t, `/**
 * @param {number} a A.
 */
function f(a) {
}
`)
	if codesOf(items)[diag.DocMissingDescription] != 1 {
		t.Errorf("want one missing_description: %v", items)
	}
}

func TestVarFunctionInitializer(t *testing.T) {
	items := check(t, `/**
 * Handles.
 * @param {string} evt Event.
 */
var handle = function(evt, extra) {
};
`)
	if codesOf(items)[diag.DocMissingParam] != 1 {
		t.Errorf("want one missing_param_doc for extra: %v", items)
	}
}

func TestDefaultValuesSkipped(t *testing.T) {
	items := check(t, `/**
 * Greets.
 * @param {string} name Name.
 */
function greet(name = 'world') {
}
`)
	counts := codesOf(items)
	if counts[diag.DocMissingParam] != 0 || counts[diag.DocExtraParam] != 0 {
		t.Errorf("default value must not confuse matching: %v", items)
	}
}
