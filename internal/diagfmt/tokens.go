package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zeth/jscodestyle/internal/source"
	"github.com/zeth/jscodestyle/internal/stream"
)

// TokenOutput is one token of the annotated stream for JSON output.
type TokenOutput struct {
	Kind       string      `json:"kind"`
	Text       string      `json:"text,omitempty"`
	Span       source.Span `json:"span"`
	Depth      int         `json:"depth"`
	BraceDepth int         `json:"brace_depth"`
	Role       string      `json:"role"`
	HasDoc     bool        `json:"has_doc,omitempty"`
}

// FormatTokensPretty dumps the annotated stream in a columnar
// human-readable form.
func FormatTokensPretty(w io.Writer, s *stream.Stream, fs *source.FileSet) error {
	i := 0
	for t := s.First(); t != nil; t = t.Next() {
		i++
		start, end := fs.Resolve(t.Span)

		fmt.Fprintf(w, "%4d: %-14s", i, t.Kind.String())
		if t.Text != "" && t.Text != "\n" {
			fmt.Fprintf(w, " %q", truncate(t.Text, 32))
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d depth=%d/%d %s",
			start.Line, start.Col, end.Line, end.Col,
			t.Ctx.Depth, t.Ctx.BraceDepth, t.Ctx.Role)
		if t.Ctx.Doc != nil {
			fmt.Fprint(w, " doc")
		}
		fmt.Fprintln(w)
	}
	return nil
}

// FormatTokensJSON dumps the annotated stream as a JSON array.
func FormatTokensJSON(w io.Writer, s *stream.Stream) error {
	var output []TokenOutput
	for t := s.First(); t != nil; t = t.Next() {
		output = append(output, TokenOutput{
			Kind:       t.Kind.String(),
			Text:       t.Text,
			Span:       t.Span,
			Depth:      t.Ctx.Depth,
			BraceDepth: t.Ctx.BraceDepth,
			Role:       t.Ctx.Role.String(),
			HasDoc:     t.Ctx.Doc != nil,
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
