package token

var keywords = map[string]Kind{
	"break":      KwBreak,
	"case":       KwCase,
	"catch":      KwCatch,
	"class":      KwClass,
	"const":      KwConst,
	"continue":   KwContinue,
	"default":    KwDefault,
	"delete":     KwDelete,
	"do":         KwDo,
	"else":       KwElse,
	"finally":    KwFinally,
	"for":        KwFor,
	"function":   KwFunction,
	"if":         KwIf,
	"in":         KwIn,
	"instanceof": KwInstanceof,
	"let":        KwLet,
	"new":        KwNew,
	"return":     KwReturn,
	"switch":     KwSwitch,
	"this":       KwThis,
	"throw":      KwThrow,
	"try":        KwTry,
	"typeof":     KwTypeof,
	"var":        KwVar,
	"void":       KwVoid,
	"while":      KwWhile,
	"with":       KwWith,
}

// LookupKeyword returns the keyword kind for name, or Ident when the
// name is not a reserved word we track. true/false/null/undefined are
// deliberately left as identifiers; style rules treat them as values.
func LookupKeyword(name string) Kind {
	if kind, ok := keywords[name]; ok {
		return kind
	}
	return Ident
}

// KeywordText returns the source spelling for a keyword kind, or "".
func KeywordText(k Kind) string {
	for text, kind := range keywords {
		if kind == k {
			return text
		}
	}
	return ""
}

// IsDeclarationKeyword reports whether the kind starts a variable or
// function declaration.
func IsDeclarationKeyword(k Kind) bool {
	switch k {
	case KwVar, KwLet, KwConst, KwFunction, KwClass:
		return true
	default:
		return false
	}
}

// IsControlKeyword reports whether the kind is a control-flow keyword
// that style rules expect to be followed by a space.
func IsControlKeyword(k Kind) bool {
	switch k {
	case KwIf, KwElse, KwFor, KwWhile, KwDo, KwSwitch, KwCatch,
		KwTry, KwFinally, KwReturn, KwThrow, KwWith, KwCase:
		return true
	default:
		return false
	}
}
