// Package jsdoc parses documentation comments and verifies them
// against the function signatures they document: every parameter
// documented, no stale parameters, ordering preserved, and a return
// annotation when the body visibly returns a value.
package jsdoc
