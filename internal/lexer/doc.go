// Package lexer converts JavaScript source bytes into a lossless token
// stream. Every byte of the input, including whitespace, newlines, and
// comments, lands in exactly one token, so serializing the stream
// reproduces the file verbatim.
//
// The lexer does not parse. The one grammar-adjacent decision it makes
// is splitting regex literals from division, which it resolves from the
// kind of the previous code token.
package lexer
