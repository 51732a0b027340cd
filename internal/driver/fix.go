package driver

import (
	"errors"
	"fmt"
	"os"

	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/fix"
	"github.com/zeth/jscodestyle/internal/lexer"
	"github.com/zeth/jscodestyle/internal/source"
)

// FixResult is the outcome of one file's fix pass.
type FixResult struct {
	Lint    *LintResult
	Output  []byte
	Applied []fix.Applied
	Skipped []fix.Skipped
	// Changed reports whether Output differs from the input.
	Changed bool
}

// FixSource lints the content and applies the always-safe fixes the
// diagnostics carry. Content is normalized first (BOM, CRLF) so the fix
// pass sees the same bytes linting does; Output is in normalized form.
// The rewritten content is re-tokenized before it is returned; if fixing
// somehow produced lexically broken output, the original content comes
// back untouched with an error.
func FixSource(fs *source.FileSet, name string, content []byte, opts Options) (*FixResult, error) {
	// Fixing always needs the live diagnostics, never a cached
	// clean verdict.
	opts.Cache = nil

	lr := LintSource(fs, name, content, opts)
	return applyFixes(lr)
}

// applyFixes runs the fix engine over a lint result's diagnostics and
// verifies the rewrite still tokenizes.
func applyFixes(lr *LintResult) (*FixResult, error) {
	res := &FixResult{Lint: lr, Output: append([]byte(nil), lr.File.Content...)}
	if lr.Fatal != nil {
		return res, nil
	}

	fr, err := fix.Apply(lr.File, lr.Bag.Items(), &diag.BagReporter{Bag: lr.Bag})
	if errors.Is(err, fix.ErrNoFixes) {
		return res, nil
	}
	if err != nil {
		return res, err
	}

	verify := source.NewFileSet()
	vf := verify.Get(verify.AddVirtual(lr.Path, fr.Output))
	if _, lexErr := lexer.Lex(vf, lexer.Options{}); lexErr != nil {
		return res, fmt.Errorf("fix: rewritten %s does not tokenize: %w", lr.Path, lexErr)
	}

	res.Output = fr.Output
	res.Applied = fr.Applied
	res.Skipped = fr.Skipped
	res.Changed = fr.Changed()
	return res, nil
}

// FixFile loads a file, fixes it, and writes the result back in place
// when anything changed. The file is loaded through the same
// normalization linting uses, so a clean verdict from LintFile means a
// no-op here; CRLF endings and a BOM are restored on write. DryRun
// leaves the file alone and only reports what would happen.
func FixFile(path string, opts Options, dryRun bool) (*FixResult, error) {
	opts.Cache = nil

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(id)

	res, err := applyFixes(lint(fs, file, path, opts))
	if err != nil {
		return res, err
	}
	if !res.Changed || dryRun {
		return res, nil
	}

	out := source.Restore(res.Output, file.Flags)
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("fix: write %s: %w", path, err)
	}
	return res, nil
}
