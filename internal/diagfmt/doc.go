// Package diagfmt renders diagnostics and token streams for output:
// a colored pretty format for terminals, machine-readable JSON, SARIF
// 2.1.0 for code-review tooling, and token dumps for debugging the
// checker itself.
package diagfmt
