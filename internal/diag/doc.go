// Package diag defines the diagnostic model shared by every phase of
// the style checker: severities, stable rule codes, diagnostics with
// optional notes and fix suggestions, and the Reporter/Bag utilities
// that decouple producers from storage and formatting.
//
// Violations are not errors. A file that lexes cleanly always produces
// a complete list of style diagnostics; SevError is reserved for
// lexical failures and I/O problems that abort checking of one file.
//
// Fixes are data-only: a Fix carries concrete TextEdits (byte spans
// plus replacement text, with an optional OldText guard) and an
// applicability level. The fix engine in internal/fix materializes and
// applies them; nothing in this package performs I/O.
package diag
