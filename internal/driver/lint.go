package driver

import (
	"fmt"

	"github.com/zeth/jscodestyle/internal/config"
	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/jsdoc"
	"github.com/zeth/jscodestyle/internal/lexer"
	"github.com/zeth/jscodestyle/internal/rules"
	"github.com/zeth/jscodestyle/internal/source"
	"github.com/zeth/jscodestyle/internal/stream"
	"github.com/zeth/jscodestyle/internal/tracker"
)

// Options configures a lint pipeline run.
type Options struct {
	Config *config.Config
	// MaxDiagnostics bounds the bag; 0 means the default of 256.
	MaxDiagnostics int
	// Cache, when set, short-circuits files whose content and
	// configuration already produced a clean report.
	Cache *DiskCache
	// Progress, when set, receives per-file events from multi-file
	// runs.
	Progress ProgressSink
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 256
	}
	return o.MaxDiagnostics
}

func (o Options) config() *config.Config {
	if o.Config == nil {
		return config.Default()
	}
	return o.Config
}

// LintResult is the complete outcome of linting one file.
type LintResult struct {
	FileSet *source.FileSet
	File    *source.File
	Path    string
	Stream  *stream.Stream
	Bag     *diag.Bag

	// Disabled lists rules shut off mid-file by an internal error;
	// non-empty means the report is partial, not clean.
	Disabled []diag.Code
	// Fatal holds the lexical error that aborted this file, if any.
	Fatal error
	// FromCache marks results restored from the disk cache.
	FromCache bool
}

// Partial reports whether some rules did not finish the file.
func (r *LintResult) Partial() bool { return len(r.Disabled) > 0 }

// Clean reports whether the file produced a complete, violation-free
// report.
func (r *LintResult) Clean() bool {
	return r.Fatal == nil && !r.Partial() && r.Bag.CountStyle() == 0 && !r.Bag.HasErrors()
}

// LintFile loads one file from disk and runs the full pipeline on it.
func LintFile(fs *source.FileSet, path string, opts Options) (*LintResult, error) {
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return lint(fs, fs.Get(id), path, opts), nil
}

// LintSource runs the pipeline on in-memory content.
func LintSource(fs *source.FileSet, name string, content []byte, opts Options) *LintResult {
	id := fs.AddVirtual(name, content)
	return lint(fs, fs.Get(id), name, opts)
}

// lint is the single-file pipeline: lex, annotate, rules, doc checks.
// Every stage completes before the next starts; nothing here touches
// state outside the result, so files can run concurrently.
func lint(fs *source.FileSet, file *source.File, path string, opts Options) *LintResult {
	cfg := opts.config()
	res := &LintResult{
		FileSet: fs,
		File:    file,
		Path:    path,
		Bag:     diag.NewBag(opts.maxDiagnostics()),
	}

	var key [32]byte
	if opts.Cache != nil {
		key = cacheKey(file.Content, cfg.Digest())
		var payload cachePayload
		if ok, err := opts.Cache.Get(key, &payload); err == nil && ok && payload.Clean {
			res.FromCache = true
			return res
		}
	}

	rep := diag.NewDedupReporter(&diag.BagReporter{Bag: res.Bag})

	s, err := lexer.Lex(file, lexer.Options{Reporter: rep})
	if err != nil {
		res.Fatal = err
		return res
	}
	res.Stream = s

	tracker.Annotate(s, tracker.Options{Interner: source.NewInterner(), Reporter: rep})

	rc := &rules.Context{File: file, Stream: s, Config: cfg, Reporter: rep}
	runRes := rules.Run(rc, rules.Catalog())
	res.Disabled = runRes.Disabled

	// The doc checker runs outside the rule engine, so it gets the
	// same crash containment: a panic disables its codes for this
	// file instead of taking down the whole run.
	if !runDocCheck(s, ruleFilter{cfg: cfg, next: rep}, source.Span{File: file.ID}) {
		res.Disabled = append(res.Disabled, docCodes...)
	}

	if opts.Cache != nil && res.Clean() {
		_ = opts.Cache.Put(key, &cachePayload{
			Schema:       cacheSchemaVersion,
			Path:         path,
			ContentHash:  file.Hash,
			ConfigDigest: cfg.Digest(),
			Clean:        true,
		})
	}
	return res
}

// docCodes are the diagnostics the doc checker can produce, disabled
// as a group when it crashes.
var docCodes = []diag.Code{
	diag.DocMissingParam,
	diag.DocExtraParam,
	diag.DocParamOutOfOrder,
	diag.DocMissingReturn,
	diag.DocMissingDescription,
}

// runDocCheck runs the documentation checker with the same crash
// containment the rule engine gives individual rules. Returns false
// when the checker panicked.
func runDocCheck(s *stream.Stream, rep diag.Reporter, span source.Span) bool {
	return guarded(rep, span, "documentation checker", func() {
		jsdoc.Check(s, rep)
	})
}

// guarded invokes fn, recovering a panic into an internal-error
// diagnostic anchored at span. Returns false when fn panicked.
func guarded(rep diag.Reporter, span source.Span, what string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			rep.Report(diag.RuleInternalError, diag.SevError, span,
				fmt.Sprintf("%s failed on this file: %v", what, r), nil, nil)
		}
	}()
	fn()
	return true
}

// ruleFilter drops style diagnostics for rules the configuration
// disabled. Checkers outside the rule engine report through it.
type ruleFilter struct {
	cfg  *config.Config
	next diag.Reporter
}

func (f ruleFilter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	if code.IsStyle() && !f.cfg.RuleEnabled(code) {
		return
	}
	f.next.Report(code, sev, primary, msg, notes, fixes)
}
