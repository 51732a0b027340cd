package stream

import "github.com/zeth/jscodestyle/internal/source"

// Role is the approximate statement role of a token, derived by the
// context tracker without building a syntax tree.
type Role uint8

const (
	// RoleUnknown marks tokens the tracker could not classify.
	// Rules skip these rather than guessing.
	RoleUnknown Role = iota
	// RoleStatementStart marks the first code token of a statement.
	RoleStatementStart
	// RoleExpression marks tokens inside an expression or statement.
	RoleExpression
	// RoleParamList marks tokens inside a function parameter list.
	RoleParamList
	// RoleObjectLiteral marks tokens inside an object literal body.
	RoleObjectLiteral
	// RoleFunctionBody marks tokens directly inside a function body.
	RoleFunctionBody
)

func (r Role) String() string {
	switch r {
	case RoleStatementStart:
		return "statement-start"
	case RoleExpression:
		return "expression"
	case RoleParamList:
		return "param-list"
	case RoleObjectLiteral:
		return "object-literal"
	case RoleFunctionBody:
		return "function-body"
	}
	return "unknown"
}

// Annotation is the per-token context record filled in by the tracker.
// It is derived data: recomputed from the stream after every
// structural edit, never a second source of truth.
type Annotation struct {
	// Depth is the count of open braces, parens, and brackets at the
	// token, not counting a bracket token's own scope.
	Depth int
	// BraceDepth counts only open braces; indentation keys off it.
	BraceDepth int
	// Role is the approximate statement role.
	Role Role
	// Doc points at the documentation comment governing the construct
	// this token begins, if any. Non-owning back-reference.
	Doc *Token
	// Name is the interned identifier text for Ident tokens.
	Name source.StringID
}
