package tracker

import (
	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/source"
	"github.com/zeth/jscodestyle/internal/stream"
	"github.com/zeth/jscodestyle/internal/token"
)

// Options configures one annotation pass.
type Options struct {
	// Interner receives identifier names. May be nil.
	Interner *source.Interner
	// Reporter receives unbalanced-bracket warnings. May be nil.
	Reporter diag.Reporter
}

// scope is one open bracket on the tracker's stack. The virtual
// top-level scope sits at the bottom and is never popped.
type scope struct {
	open  *stream.Token
	inner stream.Role
	// statements is set for scopes whose direct children are
	// statements: the top level, blocks, and function bodies.
	statements bool
	// paramList marks a paren scope opened by a function header.
	paramList bool
}

// fnState tracks how far into a function header the walk has come.
type fnState uint8

const (
	fnNone   fnState = iota
	fnHeader         // saw `function`, optionally its name
	fnBody           // saw the param list close or `=>`
)

// tracker holds the single-pass walk state. It is created per call and
// discarded, so re-running Annotate on the same stream is idempotent.
type tracker struct {
	opts  Options
	stack []scope

	stmtStart  bool
	pendingDoc *stream.Token
	fn         fnState
}

// Annotate walks the stream once, left to right, filling every token's
// Ctx with nesting depth, brace depth, statement role, identifier name,
// and doc-comment association. Annotations are a pure function of the
// token sequence.
func Annotate(s *stream.Stream, opts Options) {
	tr := &tracker{
		opts:      opts,
		stack:     []scope{{inner: stream.RoleExpression, statements: true}},
		stmtStart: true,
	}
	for tok := s.First(); tok != nil; tok = tok.Next() {
		tr.visit(tok)
	}
	if len(tr.stack) > 1 {
		open := tr.stack[len(tr.stack)-1].open
		tr.report(open.Span, "unclosed "+open.Text)
	}
}

func (tr *tracker) visit(tok *stream.Token) {
	tok.Ctx = stream.Annotation{}

	if tok.Kind.IsWhitespace() || tok.Kind.IsComment() || tok.Kind == token.EOF {
		tr.setDepths(tok, len(tr.stack)-1)
		tok.Ctx.Role = tr.top().inner
		if tok.Kind == token.DocComment {
			tr.pendingDoc = tok
		}
		return
	}

	// First code token after a doc comment: the comment governs it only
	// when it begins a declaration; otherwise the comment is orphaned.
	if tr.pendingDoc != nil {
		if token.IsDeclarationKeyword(tok.Kind) {
			tok.Ctx.Doc = tr.pendingDoc
		}
		tr.pendingDoc = nil
	}

	if tok.Kind == token.Ident && tr.opts.Interner != nil {
		tok.Ctx.Name = tr.opts.Interner.Intern(tok.Text)
	}

	switch tok.Kind {
	case token.LBrace:
		tr.setDepths(tok, len(tr.stack)-1)
		tok.Ctx.Role = tr.roleHere()
		tr.push(tr.braceScope(tok))

	case token.LParen:
		tr.setDepths(tok, len(tr.stack)-1)
		tok.Ctx.Role = tr.roleHere()
		sc := scope{open: tok, inner: stream.RoleExpression}
		if tr.fn == fnHeader {
			sc.inner = stream.RoleParamList
			sc.paramList = true
		}
		tr.fn = fnNone
		tr.push(sc)

	case token.LBracket:
		tr.setDepths(tok, len(tr.stack)-1)
		tok.Ctx.Role = tr.roleHere()
		tr.push(scope{open: tok, inner: stream.RoleExpression})

	case token.RBrace, token.RParen, token.RBracket:
		tr.close(tok)

	case token.Semicolon:
		tr.setDepths(tok, len(tr.stack)-1)
		tok.Ctx.Role = tr.top().inner
		if tr.top().statements {
			tr.stmtStart = true
		}
		tr.fn = fnNone

	default:
		tr.setDepths(tok, len(tr.stack)-1)
		tok.Ctx.Role = tr.roleHere()
		tr.stepFn(tok)
		tr.stmtStart = false
	}
}

// braceScope classifies an opening brace: a function body when one was
// promised by a header or arrow, an object literal in expression
// position, otherwise a plain block.
func (tr *tracker) braceScope(tok *stream.Token) scope {
	if tr.fn == fnBody {
		tr.fn = fnNone
		return scope{open: tok, inner: stream.RoleFunctionBody, statements: true}
	}
	if prev := tok.PrevCode(); prev != nil && objectLiteralContext(prev.Kind) {
		return scope{open: tok, inner: stream.RoleObjectLiteral}
	}
	return scope{open: tok, inner: stream.RoleExpression, statements: true}
}

// objectLiteralContext reports whether a brace after this token kind
// opens an object literal rather than a block.
func objectLiteralContext(k token.Kind) bool {
	switch k {
	case token.Operator, token.LParen, token.LBracket, token.Comma,
		token.Colon, token.Question, token.KwReturn:
		return true
	default:
		return false
	}
}

func (tr *tracker) push(sc scope) {
	tr.stack = append(tr.stack, sc)
	tr.stmtStart = sc.statements
}

// close pops the matching scope. A stray closer is reported and
// annotated at the current depth; the walk continues.
func (tr *tracker) close(tok *stream.Token) {
	if len(tr.stack) == 1 {
		tr.setDepths(tok, 0)
		tok.Ctx.Role = stream.RoleUnknown
		tr.report(tok.Span, "unmatched "+tok.Text)
		return
	}
	popped := tr.stack[len(tr.stack)-1]
	if token.ClosingFor(popped.open.Kind) != tok.Kind {
		tr.report(tok.Span, "mismatched "+tok.Text)
	}
	tr.stack = tr.stack[:len(tr.stack)-1]
	tr.setDepths(tok, len(tr.stack)-1)
	tok.Ctx.Role = tr.top().inner

	if popped.paramList {
		tr.fn = fnBody
	}
	if tok.Kind == token.RBrace && tr.top().statements {
		tr.stmtStart = true
	} else {
		tr.stmtStart = false
	}
}

// stepFn advances the function-header state machine.
func (tr *tracker) stepFn(tok *stream.Token) {
	switch {
	case tok.Kind == token.KwFunction:
		tr.fn = fnHeader
	case tok.Kind == token.Operator && tok.Text == "=>":
		tr.fn = fnBody
	case tr.fn == fnHeader && tok.Kind == token.Ident:
		// Function name between `function` and its param list.
	case tr.fn == fnBody && tok.Kind != token.LBrace:
		// `=> expr` bodies never materialize a body scope.
		tr.fn = fnNone
	case tr.fn == fnHeader:
		tr.fn = fnNone
	}
}

// roleHere is the role of a code token at the current position:
// statement start when the flag is up in a statement scope, the scope's
// inner role otherwise.
func (tr *tracker) roleHere() stream.Role {
	if tr.stmtStart && tr.top().statements {
		return stream.RoleStatementStart
	}
	return tr.top().inner
}

func (tr *tracker) top() *scope {
	return &tr.stack[len(tr.stack)-1]
}

// setDepths records bracket and brace depth. depth excludes the virtual
// top-level scope and, for bracket tokens, their own scope.
func (tr *tracker) setDepths(tok *stream.Token, depth int) {
	braces := 0
	for i := 1; i <= depth; i++ {
		if tr.stack[i].open != nil && tr.stack[i].open.Kind == token.LBrace {
			braces++
		}
	}
	tok.Ctx.Depth = depth
	tok.Ctx.BraceDepth = braces
}

func (tr *tracker) report(sp source.Span, msg string) {
	if tr.opts.Reporter != nil {
		tr.opts.Reporter.Report(diag.LexUnbalancedBracket, diag.SevWarning, sp, msg, nil, nil)
	}
}
