package diag

import (
	"github.com/zeth/jscodestyle/internal/source"
)

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// TextEdit is a concrete replacement of a byte range with new text.
// OldText, when non-empty, is a guard: the fix engine refuses to apply
// the edit if the file no longer contains it at Span.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// FixApplicability is the confidence level of an automated fix.
type FixApplicability uint8

const (
	// FixAlwaysSafe marks fixes applied without review in --fix runs.
	FixAlwaysSafe FixApplicability = iota
	// FixManualReview marks fixes that need a human decision.
	FixManualReview
)

func (a FixApplicability) String() string {
	switch a {
	case FixAlwaysSafe:
		return "always-safe"
	case FixManualReview:
		return "manual-review"
	}
	return "unknown"
}

// Fix describes one automated correction for a diagnostic.
type Fix struct {
	ID            string
	Title         string
	Applicability FixApplicability
	Edits         []TextEdit
}

// Diagnostic is one reported finding: a style violation, a lexical
// error, or an engine note.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

// Fixable reports whether the diagnostic carries at least one fix.
func (d Diagnostic) Fixable() bool {
	return len(d.Fixes) > 0
}

// RuleID returns the stable identifier of the diagnostic's code.
func (d Diagnostic) RuleID() string {
	return d.Code.ID()
}
