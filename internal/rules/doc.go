// Package rules holds the style rule catalog and the engine that
// drives it over an annotated token stream. Each rule is an
// independent checker observing a declared set of token kinds; the
// engine makes one pass, invokes matching rules per token, and shields
// the pass from any single rule's failure.
package rules
