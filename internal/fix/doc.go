// Package fix applies the automated corrections carried by
// diagnostics to a file's content. Edits are expressed in original
// byte offsets; the engine orders them deterministically, rejects
// overlapping fixes (first one wins, the loser is recorded), shifts
// offsets by the edits already applied, and verifies OldText guards so
// a stale fix can never corrupt code it did not target.
package fix
