// Package check lints a mapping file.
//
// Besides the structural validation of package mapping it asks every
// resolution question a processor may ask, for the global scope and for each
// configured endpoint, and reports each ambiguous answer as an error
// diagnostic listing the conflicting rules. Scopes are checked concurrently
// over the shared, read-only rule list.
package check
