package token

// IsKeyword reports whether the kind is a JavaScript keyword.
func (k Kind) IsKeyword() bool {
	return k >= KwBreak && k <= KwWith
}

// IsComment reports whether the kind is any comment flavor.
func (k Kind) IsComment() bool {
	switch k {
	case LineComment, BlockComment, DocComment:
		return true
	default:
		return false
	}
}

// IsWhitespace reports whether the kind is whitespace or a newline.
func (k Kind) IsWhitespace() bool {
	return k == Whitespace || k == Newline
}

// IsLiteral reports whether the kind is a numeric, string, template, or
// regex literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case Number, String, TemplateString, Regex:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the kind is an operator or punctuation.
func (k Kind) IsPunctOrOp() bool {
	return k >= LParen && k <= Operator
}

// IsOpenBracket reports whether the kind opens a nesting scope.
func (k Kind) IsOpenBracket() bool {
	switch k {
	case LParen, LBrace, LBracket:
		return true
	default:
		return false
	}
}

// IsCloseBracket reports whether the kind closes a nesting scope.
func (k Kind) IsCloseBracket() bool {
	switch k {
	case RParen, RBrace, RBracket:
		return true
	default:
		return false
	}
}

// ClosingFor returns the closing kind matching an opening bracket.
func ClosingFor(k Kind) Kind {
	switch k {
	case LParen:
		return RParen
	case LBrace:
		return RBrace
	case LBracket:
		return RBracket
	default:
		return Invalid
	}
}

// UnaryContext reports whether a '/' directly after this kind starts a
// regular-expression literal rather than a division. Identifiers,
// literals, and closing brackets produce values, so a slash after them
// divides; everything else introduces an operand position.
func (k Kind) UnaryContext() bool {
	switch k {
	case Ident, Number, String, TemplateString, Regex, KwThis,
		RParen, RBracket, RBrace:
		return false
	default:
		return true
	}
}
