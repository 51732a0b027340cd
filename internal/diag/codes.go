package diag

import "fmt"

// Code is a compact numeric identifier for a diagnostic kind. Every
// code has a stable string ID used in configuration and reports.
type Code uint16

const (
	// UnknownCode is the zero value for unclassified diagnostics.
	UnknownCode Code = 0

	// Lexical errors. Fatal for the file being checked.
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexUnterminatedRegex   Code = 1004
	LexInvalidEscape       Code = 1005
	LexBadNumber           Code = 1006
	LexUnbalancedBracket   Code = 1007

	// Style violations. The intended product of a lint run.
	StyleMissingSpace        Code = 2001
	StyleExtraSpace          Code = 2002
	StyleTrailingWhitespace  Code = 2003
	StyleLineTooLong         Code = 2004
	StyleWrongIndentation    Code = 2005
	StyleTabInSource         Code = 2006
	StyleRedundantSemicolon  Code = 2007
	StyleMissingSemicolon    Code = 2008
	StyleMultipleStatements  Code = 2009
	StyleQuote               Code = 2010
	StyleBracePlacement      Code = 2011
	StyleBlankLinesAtTop     Code = 2012
	StyleUnusedLocalVariable Code = 2013
	StyleIdentifierCasing    Code = 2014

	// Documentation-comment violations.
	DocMissingParam       Code = 3001
	DocExtraParam         Code = 3002
	DocParamOutOfOrder    Code = 3003
	DocMissingReturn      Code = 3004
	DocMissingDescription Code = 3005

	// I/O and engine diagnostics.
	IOLoadFileError   Code = 4001
	RuleInternalError Code = 5001
	FixConflict       Code = 5002
	FixSkipped        Code = 5003
)

// codeIDs maps codes to the stable rule identifiers consumed by
// configuration (enabled_rules / disabled_rules) and reports.
var codeIDs = map[Code]string{
	LexUnknownChar:         "lex_unknown_char",
	LexUnterminatedString:  "lex_unterminated_string",
	LexUnterminatedComment: "lex_unterminated_comment",
	LexUnterminatedRegex:   "lex_unterminated_regex",
	LexInvalidEscape:       "lex_invalid_escape",
	LexBadNumber:           "lex_bad_number",
	LexUnbalancedBracket:   "lex_unbalanced_bracket",

	StyleMissingSpace:        "missing_space",
	StyleExtraSpace:          "extra_space",
	StyleTrailingWhitespace:  "trailing_whitespace",
	StyleLineTooLong:         "line_too_long",
	StyleWrongIndentation:    "indentation",
	StyleTabInSource:         "tab_character",
	StyleRedundantSemicolon:  "redundant_semicolon",
	StyleMissingSemicolon:    "missing_semicolon",
	StyleMultipleStatements:  "one_statement_per_line",
	StyleQuote:               "quote_style",
	StyleBracePlacement:      "brace_placement",
	StyleBlankLinesAtTop:     "blank_lines_at_top_level",
	StyleUnusedLocalVariable: "unused_local_variable",
	StyleIdentifierCasing:    "identifier_casing",

	DocMissingParam:       "missing_param_doc",
	DocExtraParam:         "extra_param_doc",
	DocParamOutOfOrder:    "param_doc_order",
	DocMissingReturn:      "missing_return_doc",
	DocMissingDescription: "missing_description",

	IOLoadFileError:   "io_load_error",
	RuleInternalError: "rule_internal_error",
	FixConflict:       "fix_conflict",
	FixSkipped:        "fix_skipped",
}

var codeTitles = map[Code]string{
	UnknownCode:            "unknown diagnostic",
	LexUnknownChar:         "unrecognized character",
	LexUnterminatedString:  "unterminated string literal",
	LexUnterminatedComment: "unterminated block comment",
	LexUnterminatedRegex:   "unterminated regular expression",
	LexInvalidEscape:       "invalid escape sequence",
	LexBadNumber:           "malformed numeric literal",
	LexUnbalancedBracket:   "unbalanced bracket",

	StyleMissingSpace:        "missing space",
	StyleExtraSpace:          "extra space",
	StyleTrailingWhitespace:  "trailing whitespace",
	StyleLineTooLong:         "line too long",
	StyleWrongIndentation:    "wrong indentation",
	StyleTabInSource:         "tab character in source",
	StyleRedundantSemicolon:  "redundant semicolon",
	StyleMissingSemicolon:    "missing semicolon",
	StyleMultipleStatements:  "multiple statements on one line",
	StyleQuote:               "inconsistent quote style",
	StyleBracePlacement:      "brace placement",
	StyleBlankLinesAtTop:     "blank lines at top level",
	StyleUnusedLocalVariable: "unused local variable",
	StyleIdentifierCasing:    "identifier casing",

	DocMissingParam:       "undocumented parameter",
	DocExtraParam:         "stale parameter documentation",
	DocParamOutOfOrder:    "parameter documentation out of order",
	DocMissingReturn:      "missing return documentation",
	DocMissingDescription: "missing description",

	IOLoadFileError:   "failed to load file",
	RuleInternalError: "rule failed on this file",
	FixConflict:       "conflicting fixes",
	FixSkipped:        "fix skipped",
}

// ID returns the stable string identifier for the code. Unmapped codes
// fall back to a numeric form so output stays deterministic.
func (c Code) ID() string {
	if id, ok := codeIDs[c]; ok {
		return id
	}
	return fmt.Sprintf("diag_%04d", uint16(c))
}

// Title returns a short human description of the code.
func (c Code) Title() string {
	if title, ok := codeTitles[c]; ok {
		return title
	}
	return codeTitles[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// IsLexError reports whether the code is fatal for its file.
func (c Code) IsLexError() bool {
	return c >= 1001 && c < 2000
}

// IsStyle reports whether the code is a style or documentation
// violation (as opposed to an error or an engine note).
func (c Code) IsStyle() bool {
	return c >= 2001 && c < 4000
}

// CodeForID resolves a rule identifier back to its code. Unknown ids
// return (UnknownCode, false); configuration treats those as no-ops.
func CodeForID(id string) (Code, bool) {
	for code, known := range codeIDs {
		if known == id {
			return code, true
		}
	}
	return UnknownCode, false
}
