package driver

import (
	"strings"
	"testing"

	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/source"
)

func TestGuardedRecoversPanic(t *testing.T) {
	bag := diag.NewBag(8)
	rep := &diag.BagReporter{Bag: bag}

	ok := guarded(rep, source.Span{}, "documentation checker", func() {
		panic("boom")
	})
	if ok {
		t.Fatal("a panicking checker must report not-ok")
	}
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.RuleInternalError {
		t.Fatalf("expected one internal_error diagnostic, got %v", items)
	}
	if items[0].Severity != diag.SevError {
		t.Errorf("internal errors must be SevError, got %v", items[0].Severity)
	}
	if !strings.Contains(items[0].Message, "documentation checker") {
		t.Errorf("message must name the crashed checker: %q", items[0].Message)
	}
}

func TestGuardedPassThrough(t *testing.T) {
	bag := diag.NewBag(8)
	ran := false
	ok := guarded(&diag.BagReporter{Bag: bag}, source.Span{}, "documentation checker", func() {
		ran = true
	})
	if !ok || !ran {
		t.Fatalf("ok=%v ran=%v", ok, ran)
	}
	if bag.Len() != 0 {
		t.Errorf("clean run must not report: %v", bag.Items())
	}
}
