package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	posColor  = color.New(color.Bold)
	noteColor = color.New(color.FgBlue)
)

// Pretty formats diagnostics for terminals. The bag is expected to be
// sorted. Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <rule_id>: <message>
//
// followed by the source line with a ^~~~ underline for the span, then
// notes and fix titles when the options ask for them.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
	if bag.Truncated() {
		line := fmt.Sprintf("... diagnostic limit of %d reached; further findings omitted", bag.Cap())
		if opts.Color {
			line = noteColor.Sprint(line)
		}
		fmt.Fprintln(w, line)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	pos := fmt.Sprintf("%s:%d:%d", displayPath(f, fs, opts.PathMode), start.Line, start.Col)
	sev := d.Severity.String()
	if opts.Color {
		pos = posColor.Sprint(pos)
		sev = severityColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n", pos, sev, d.Code.ID(), d.Message)

	writeUnderline(w, f, d.Primary, start, end, opts.Color)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			label := "note"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			fmt.Fprintf(w, "  %s: %s\n", label, n.Msg)
		}
	}
	if opts.ShowFixes {
		for _, fx := range d.Fixes {
			fmt.Fprintf(w, "  fix: %s\n", fx.Title)
		}
	}
}

// writeUnderline prints the first line the span covers, then a caret
// line aligned under the span. Multi-line spans underline to the end of
// the first line only.
func writeUnderline(w io.Writer, f *source.File, span source.Span, start, end source.LineCol, useColor bool) {
	line := f.GetLine(start.Line)
	if line == "" && span.Start >= span.End {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	prefixEnd := int(start.Col) - 1
	if prefixEnd > len(line) {
		prefixEnd = len(line)
	}
	pad := runewidth.StringWidth(strings.ReplaceAll(line[:prefixEnd], "\t", " "))

	spanEnd := int(end.Col) - 1
	if end.Line != start.Line || spanEnd > len(line) {
		spanEnd = len(line)
	}
	width := 1
	if spanEnd > prefixEnd {
		width = runewidth.StringWidth(line[prefixEnd:spanEnd])
		if width < 1 {
			width = 1
		}
	}

	marker := "^" + strings.Repeat("~", width-1)
	if useColor {
		marker = warnColor.Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}

func displayPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
