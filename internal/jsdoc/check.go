package jsdoc

import (
	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/stream"
	"github.com/zeth/jscodestyle/internal/token"
)

// Check runs the documentation checks over every documented construct
// in the stream. The tracker must have annotated the stream first; a
// construct is documented when its leading declaration keyword carries
// a doc-comment back-reference.
func Check(s *stream.Stream, r diag.Reporter) {
	for tok := s.First(); tok != nil; tok = tok.Next() {
		if tok.Ctx.Doc == nil {
			continue
		}
		switch tok.Kind {
		case token.KwFunction:
			checkFunction(tok, tok.Ctx.Doc, r)
		case token.KwVar, token.KwLet, token.KwConst:
			if fn := initFunction(tok); fn != nil {
				checkFunction(fn, tok.Ctx.Doc, r)
			} else {
				checkDescription(tok.Ctx.Doc, r)
			}
		case token.KwClass:
			checkDescription(tok.Ctx.Doc, r)
		}
	}
}

// initFunction finds a `function` keyword in the initializer of a
// documented variable declaration, stopping at the end of the
// statement. Arrow-function initializers are left unchecked.
func initFunction(decl *stream.Token) *stream.Token {
	depth := decl.Ctx.Depth
	for t := decl.NextCode(); t != nil; t = t.NextCode() {
		switch {
		case t.Kind == token.KwFunction:
			return t
		case t.Kind == token.Semicolon && t.Ctx.Depth == depth:
			return nil
		case t.Kind == token.EOF:
			return nil
		}
	}
	return nil
}

func checkFunction(fn *stream.Token, docTok *stream.Token, r diag.Reporter) {
	doc := Parse(docTok.Text)
	checkDescriptionParsed(doc, docTok, r)

	params, body := signature(fn)

	for _, p := range params {
		if !doc.Documents(p.Text) {
			r.Report(diag.DocMissingParam, diag.SevWarning, p.Span,
				"undocumented parameter: "+p.Text, nil, nil)
		}
	}

	actual := make(map[string]int, len(params))
	for i, p := range params {
		actual[p.Text] = i
	}
	for _, name := range doc.Params {
		if _, ok := actual[name]; !ok {
			r.Report(diag.DocExtraParam, diag.SevWarning, docTok.Span,
				"stale documentation: "+name, nil, nil)
		}
	}

	// Order check over the params both sides agree on: the documented
	// sequence must be a subsequence of the signature order.
	last := -1
	for _, name := range doc.Params {
		idx, ok := actual[name]
		if !ok {
			continue
		}
		if idx < last {
			r.Report(diag.DocParamOutOfOrder, diag.SevWarning, docTok.Span,
				"parameter documented out of order: "+name, nil, nil)
			break
		}
		last = idx
	}

	if body != nil && !doc.HasReturn && returnsValue(body) {
		r.Report(diag.DocMissingReturn, diag.SevWarning, docTok.Span,
			"missing @return documentation", nil, nil)
	}
}

func checkDescription(docTok *stream.Token, r diag.Reporter) {
	checkDescriptionParsed(Parse(docTok.Text), docTok, r)
}

func checkDescriptionParsed(doc Comment, docTok *stream.Token, r diag.Reporter) {
	if !doc.HasDescription {
		r.Report(diag.DocMissingDescription, diag.SevWarning, docTok.Span,
			"documentation comment has no description", nil, nil)
	}
}

// signature collects the parameter name tokens of a function and the
// opening brace of its body. Default values and nested destructuring
// are skipped; only plain named parameters are matched against docs.
func signature(fn *stream.Token) (params []*stream.Token, body *stream.Token) {
	t := fn.NextCode()
	if t != nil && t.Kind == token.Ident {
		t = t.NextCode() // function name
	}
	if t == nil || t.Kind != token.LParen {
		return nil, nil
	}

	depth := 1
	expect := true // next identifier at depth 1 is a parameter name
	for t = t.NextCode(); t != nil; t = t.NextCode() {
		switch {
		case t.Kind.IsOpenBracket():
			depth++
			expect = false
		case t.Kind.IsCloseBracket():
			depth--
			if depth == 0 {
				next := t.NextCode()
				if next != nil && next.Kind == token.LBrace {
					return params, next
				}
				return params, nil
			}
		case t.Kind == token.Comma && depth == 1:
			expect = true
		case t.Kind == token.Ident && depth == 1 && expect:
			params = append(params, t)
			expect = false
		case t.Kind == token.EOF:
			return params, nil
		}
	}
	return params, nil
}

// returnsValue scans the brace-delimited body for a `return` with an
// expression, shallow: returns inside nested function bodies do not
// count. No control-flow analysis is attempted.
func returnsValue(body *stream.Token) bool {
	depth := 0
	var nested []int
	pendingFn := false

	for t := body; t != nil; t = t.NextCode() {
		switch {
		case t.Kind == token.LBrace:
			depth++
			if pendingFn {
				nested = append(nested, depth)
				pendingFn = false
			}
		case t.Kind == token.RBrace:
			if len(nested) > 0 && nested[len(nested)-1] == depth {
				nested = nested[:len(nested)-1]
			}
			depth--
			if depth == 0 {
				return false
			}
		case t.Kind == token.KwFunction:
			pendingFn = true
		case t.Kind == token.Operator && t.Text == "=>":
			pendingFn = true
		case t.Kind == token.KwReturn && len(nested) == 0:
			next := t.NextCode()
			if next != nil && next.Kind != token.Semicolon && next.Kind != token.RBrace {
				return true
			}
		}
	}
	return false
}
