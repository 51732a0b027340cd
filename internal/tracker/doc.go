// Package tracker annotates a token stream with approximate structural
// context: bracket nesting depth, statement roles, and doc-comment
// association. It walks the stream exactly once and never builds a
// syntax tree; constructs it cannot classify keep RoleUnknown, and
// rules skip those rather than guess.
package tracker
