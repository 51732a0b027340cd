package rules

import (
	"fmt"

	"github.com/zeth/jscodestyle/internal/config"
	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/source"
	"github.com/zeth/jscodestyle/internal/stream"
	"github.com/zeth/jscodestyle/internal/token"
)

// Rule is one independent style checker. A rule declares the token
// kinds it observes and is invoked once per matching token during the
// engine's single pass. Rules may navigate the stream freely but must
// not mutate it; findings go through the Context's reporter.
//
// Rules holding per-file running state get a fresh instance per file
// from the catalog, so no state leaks across files.
type Rule interface {
	Code() diag.Code
	Wants(k token.Kind) bool
	Check(rc *Context, tok *stream.Token)
}

// Context is the per-file environment threaded through every check.
type Context struct {
	File     *source.File
	Stream   *stream.Stream
	Config   *config.Config
	Reporter diag.Reporter
}

// Warn starts a style-violation report at the given span. The caller
// attaches fixes and calls Emit.
func (rc *Context) Warn(code diag.Code, sp source.Span, msg string) *diag.ReportBuilder {
	return diag.ReportWarning(rc.Reporter, code, sp, msg)
}

// Result describes how a rule pass ended.
type Result struct {
	// Disabled lists rules shut off mid-file after an internal error.
	// Non-empty means the report for this file is partial.
	Disabled []diag.Code
}

// Partial reports whether some rule did not finish the file.
func (r Result) Partial() bool { return len(r.Disabled) > 0 }

// Run drives every enabled catalog rule over the annotated stream in
// one pass. A panicking rule is reported once, disabled for the rest of
// the file, and recorded in the result; other rules continue.
func Run(rc *Context, catalog []Rule) Result {
	active := make([]Rule, 0, len(catalog))
	for _, rule := range catalog {
		if rc.Config.RuleEnabled(rule.Code()) {
			active = append(active, rule)
		}
	}

	var res Result
	for tok := rc.Stream.First(); tok != nil; tok = tok.Next() {
		for i := 0; i < len(active); i++ {
			rule := active[i]
			if !rule.Wants(tok.Kind) {
				continue
			}
			if !check(rc, rule, tok) {
				res.Disabled = append(res.Disabled, rule.Code())
				active = append(active[:i], active[i+1:]...)
				i--
			}
		}
	}
	return res
}

// check invokes one rule guarded against panics.
func check(rc *Context, rule Rule, tok *stream.Token) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			if rc.Reporter != nil {
				rc.Reporter.Report(diag.RuleInternalError, diag.SevError, tok.Span,
					fmt.Sprintf("rule %s failed on this file: %v", rule.Code().ID(), r),
					nil, nil)
			}
		}
	}()
	rule.Check(rc, tok)
	return true
}
