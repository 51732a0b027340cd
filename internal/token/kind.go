package token

// Kind represents the category of a JavaScript source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Whitespace is a run of spaces and tabs within one line.
	Whitespace
	// Newline is a single line feed.
	Newline

	// LineComment is a // comment including its delimiter.
	LineComment
	// BlockComment is a /* */ comment including its delimiters.
	BlockComment
	// DocComment is a /** */ documentation comment including delimiters.
	DocComment

	// Ident represents an identifier token.
	Ident
	// Number represents a numeric literal (decimal, hex, or exponent form).
	Number
	// String represents a single- or double-quoted string literal.
	String
	// TemplateString represents a backtick-quoted template literal.
	TemplateString
	// Regex represents a regular-expression literal including flags.
	Regex

	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwCatch represents the 'catch' keyword.
	KwCatch // catch
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwDelete represents the 'delete' keyword.
	KwDelete // delete
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwInstanceof represents the 'instanceof' keyword.
	KwInstanceof // instanceof
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwThrow represents the 'throw' keyword.
	KwThrow // throw
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwTypeof represents the 'typeof' keyword.
	KwTypeof // typeof
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwVoid represents the 'void' keyword.
	KwVoid // void
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwWith represents the 'with' keyword.
	KwWith // with

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Semicolon represents ';'.
	Semicolon // ;
	// Comma represents ','.
	Comma // ,
	// Colon represents ':'.
	Colon // :
	// Question represents '?'.
	Question // ?
	// Dot represents '.'.
	Dot // .
	// Operator represents any other operator; Text carries the spelling.
	Operator
)

var kindNames = map[Kind]string{
	Invalid:        "Invalid",
	EOF:            "EOF",
	Whitespace:     "Whitespace",
	Newline:        "Newline",
	LineComment:    "LineComment",
	BlockComment:   "BlockComment",
	DocComment:     "DocComment",
	Ident:          "Ident",
	Number:         "Number",
	String:         "String",
	TemplateString: "TemplateString",
	Regex:          "Regex",
	KwBreak:        "KwBreak",
	KwCase:         "KwCase",
	KwCatch:        "KwCatch",
	KwClass:        "KwClass",
	KwConst:        "KwConst",
	KwContinue:     "KwContinue",
	KwDefault:      "KwDefault",
	KwDelete:       "KwDelete",
	KwDo:           "KwDo",
	KwElse:         "KwElse",
	KwFinally:      "KwFinally",
	KwFor:          "KwFor",
	KwFunction:     "KwFunction",
	KwIf:           "KwIf",
	KwIn:           "KwIn",
	KwInstanceof:   "KwInstanceof",
	KwLet:          "KwLet",
	KwNew:          "KwNew",
	KwReturn:       "KwReturn",
	KwSwitch:       "KwSwitch",
	KwThis:         "KwThis",
	KwThrow:        "KwThrow",
	KwTry:          "KwTry",
	KwTypeof:       "KwTypeof",
	KwVar:          "KwVar",
	KwVoid:         "KwVoid",
	KwWhile:        "KwWhile",
	KwWith:         "KwWith",
	LParen:         "LParen",
	RParen:         "RParen",
	LBrace:         "LBrace",
	RBrace:         "RBrace",
	LBracket:       "LBracket",
	RBracket:       "RBracket",
	Semicolon:      "Semicolon",
	Comma:          "Comma",
	Colon:          "Colon",
	Question:       "Question",
	Dot:            "Dot",
	Operator:       "Operator",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(?)"
}
