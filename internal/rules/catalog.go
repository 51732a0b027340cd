package rules

// Catalog returns fresh instances of every registered rule, in fix
// priority order: when two fixes collide, the earlier rule's edit wins
// and the later one is skipped. Fresh instances per file keep rules
// with running state (line tracking, one-shot checks) isolated.
func Catalog() []Rule {
	return []Rule{
		trailingWhitespace{},
		tabInSource{},
		indentation{},
		extraSpace{},
		missingSpace{},
		redundantSemicolon{},
		missingSemicolon{},
		multipleStatements{},
		quoteStyle{},
		bracePlacement{},
		&blankLinesAtTop{},
		&lineTooLong{},
		unusedLocalVariable{},
		newIdentifierCasing(),
	}
}
