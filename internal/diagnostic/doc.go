// Package diagnostic provides structured errors, warnings and infos for
// mapping configuration problems.
//
// Key capabilities:
//   - Structural validation findings (unknown content type, empty target, ...)
//   - Ambiguous mapping reports listing every conflicting rule
//   - Scope (global or endpoint path) and subject on every entry
package diagnostic
