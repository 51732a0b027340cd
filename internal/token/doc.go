// Package token defines the lexical vocabulary of JavaScript source as
// seen by the style checker: token kinds, keyword lookup, and the
// predicates rules use to classify neighbors.
//
// Whitespace, newlines, and comments are first-class kinds, not trivia;
// the stream built from these tokens concatenates back to the original
// source byte-for-byte, which is what makes lossless auto-fixing
// possible.
package token
