package fix

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/source"
)

// ErrNoFixes is returned when the diagnostics carry nothing to apply.
var ErrNoFixes = errors.New("no applicable fixes found")

// Applied records one successfully applied fix.
type Applied struct {
	ID        string
	Title     string
	Code      diag.Code
	Message   string
	EditCount int
}

// Skipped captures a fix that was not applied, with the reason.
type Skipped struct {
	ID     string
	Title  string
	Code   diag.Code
	Reason string
}

// Result aggregates one file's fix pass. Output is the rewritten
// content; regions no edit touched are byte-identical to the input.
type Result struct {
	Output  []byte
	Applied []Applied
	Skipped []Skipped
}

// Changed reports whether any fix modified the content.
func (r *Result) Changed() bool { return len(r.Applied) > 0 }

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	order int
}

// Apply applies the always-safe fixes carried by the diagnostics to the
// file's content. Candidates are ordered by position, then by their
// registration order; when two candidates' edits overlap, the earlier
// one wins and the later is skipped with a FixConflict note through the
// reporter. Manual-review fixes are skipped, never applied silently.
func Apply(file *source.File, diagnostics []diag.Diagnostic, rep diag.Reporter) (*Result, error) {
	if file == nil {
		return nil, fmt.Errorf("fix: file is nil")
	}

	res := &Result{Output: append([]byte(nil), file.Content...)}
	candidates := gather(diagnostics, res)
	if len(candidates) == 0 {
		return res, ErrNoFixes
	}
	sortCandidates(candidates)

	working := res.Output
	var appliedEdits []diag.TextEdit

	for _, cand := range candidates {
		if conflicts(appliedEdits, cand.fix.Edits) {
			res.Skipped = append(res.Skipped, Skipped{
				ID:     cand.fix.ID,
				Title:  cand.fix.Title,
				Code:   cand.diag.Code,
				Reason: "overlaps an earlier fix",
			})
			if rep != nil {
				rep.Report(diag.FixConflict, diag.SevInfo, cand.diag.Primary,
					fmt.Sprintf("fix for %s skipped: overlaps an earlier fix", cand.diag.Code.ID()),
					nil, nil)
			}
			continue
		}

		next, applied, reason := applyOne(working, appliedEdits, cand.fix.Edits)
		if reason != "" {
			res.Skipped = append(res.Skipped, Skipped{
				ID:     cand.fix.ID,
				Title:  cand.fix.Title,
				Code:   cand.diag.Code,
				Reason: reason,
			})
			if rep != nil {
				rep.Report(diag.FixSkipped, diag.SevInfo, cand.diag.Primary,
					fmt.Sprintf("fix for %s skipped: %s", cand.diag.Code.ID(), reason),
					nil, nil)
			}
			continue
		}
		working = next
		appliedEdits = applied
		res.Applied = append(res.Applied, Applied{
			ID:        cand.fix.ID,
			Title:     cand.fix.Title,
			Code:      cand.diag.Code,
			Message:   cand.diag.Message,
			EditCount: len(cand.fix.Edits),
		})
	}

	res.Output = working
	if len(res.Applied) == 0 {
		return res, ErrNoFixes
	}
	return res, nil
}

// gather pulls always-safe fixes out of the diagnostics in report
// order. Fixes without an ID get a synthesized, deterministic one.
func gather(diagnostics []diag.Diagnostic, res *Result) []candidate {
	var cands []candidate
	order := 0
	for _, d := range diagnostics {
		for idx, f := range d.Fixes {
			if len(f.Edits) == 0 {
				res.Skipped = append(res.Skipped, Skipped{
					ID: f.ID, Title: f.Title, Code: d.Code,
					Reason: "fix has no edits",
				})
				continue
			}
			if f.Applicability != diag.FixAlwaysSafe {
				res.Skipped = append(res.Skipped, Skipped{
					ID: f.ID, Title: f.Title, Code: d.Code,
					Reason: "needs manual review",
				})
				continue
			}
			if f.ID == "" {
				f.ID = fmt.Sprintf("%s-%d-%d-%d", d.Code.ID(), d.Primary.File, d.Primary.Start, idx)
			}
			cands = append(cands, candidate{diag: d, fix: f, order: order})
			order++
		}
	}
	return cands
}

// sortCandidates orders candidates deterministically: span start, span
// end, report order, code, fix id.
func sortCandidates(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		di, dj := cands[i].diag, cands[j].diag
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if cands[i].order != cands[j].order {
			return cands[i].order < cands[j].order
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return cands[i].fix.ID < cands[j].fix.ID
	})
}

// applyOne splices one fix's edits into the working buffer. Offsets
// are shifted by the cumulative delta of everything already applied;
// OldText guards reject edits whose target no longer matches.
func applyOne(working []byte, appliedEdits, edits []diag.TextEdit) ([]byte, []diag.TextEdit, string) {
	// Apply back to front so earlier edits in this fix keep their
	// offsets valid.
	ordered := append([]diag.TextEdit(nil), edits...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Span.Start == ordered[j].Span.Start {
			return ordered[i].Span.End > ordered[j].Span.End
		}
		return ordered[i].Span.Start > ordered[j].Span.Start
	})

	out := append([]byte(nil), working...)
	applied := append([]diag.TextEdit(nil), appliedEdits...)

	for _, edit := range ordered {
		start := int(edit.Span.Start) + cumulativeDelta(applied, int(edit.Span.Start))
		end := int(edit.Span.End) + cumulativeDelta(applied, int(edit.Span.End))
		if start < 0 || end < start || end > len(out) {
			return working, appliedEdits, "edit span out of range"
		}
		if edit.OldText != "" && string(out[start:end]) != edit.OldText {
			return working, appliedEdits, "existing text does not match expected content"
		}
		suffix := append([]byte(nil), out[end:]...)
		out = append(append(out[:start], []byte(edit.NewText)...), suffix...)
		applied = insertEditSorted(applied, edit)
	}
	return out, applied, ""
}

// conflicts reports whether any candidate edit overlaps an already
// applied one. Spans are half-open; two insertions at the same point
// do not conflict, but an insertion inside a replaced range does.
func conflicts(existing, edits []diag.TextEdit) bool {
	for _, prev := range existing {
		for _, cand := range edits {
			if spansConflict(prev, cand) {
				return true
			}
		}
	}
	return false
}

func spansConflict(a, b diag.TextEdit) bool {
	aStart, aEnd := a.Span.Start, a.Span.End
	bStart, bEnd := b.Span.Start, b.Span.End

	if aStart == aEnd && bStart == bEnd {
		return aStart == bStart
	}
	if aStart == aEnd {
		return bStart <= aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart <= bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}

// cumulativeDelta sums the length changes of applied edits that sit
// entirely before pos, mapping an original offset into the working
// buffer.
func cumulativeDelta(edits []diag.TextEdit, pos int) int {
	delta := 0
	for _, e := range edits {
		eStart := int(e.Span.Start)
		if eStart > pos {
			break
		}
		eEnd := int(e.Span.End)
		if eEnd <= pos {
			delta += len(e.NewText) - (eEnd - eStart)
		}
	}
	return delta
}

func insertEditSorted(edits []diag.TextEdit, edit diag.TextEdit) []diag.TextEdit {
	idx := sort.Search(len(edits), func(i int) bool {
		if edits[i].Span.Start == edit.Span.Start {
			return edits[i].Span.End >= edit.Span.End
		}
		return edits[i].Span.Start > edit.Span.Start
	})
	edits = append(edits, diag.TextEdit{})
	copy(edits[idx+1:], edits[idx:])
	edits[idx] = edit
	return edits
}
