// Package finder resolves the configured mapping rules that apply to one
// schema occurrence.
//
// # Scopes
//
// A query looks at the global scope (the top-level rules) or at an endpoint
// scope (the rules nested under the endpoint rule of the occurrence path).
// Scoping is an explicit step: select the matching endpoint rule, then
// flatten its children. More than one endpoint rule for a path makes every
// endpoint query ambiguous.
//
// # Precedence
//
// Inside an endpoint scope parameter and response rules win over type rules.
// Callers that combine scopes (see package wrapper) ask the endpoint scope
// first and fall back to the global one.
//
// # Results
//
// Every query returns a Result that is either empty, holds exactly one rule,
// or is ambiguous. Ambiguity is a configuration defect: Result.Mapping turns
// it into an *AmbiguousMappingError carrying all conflicting rules.
//
// A Finder never mutates its rules and is safe for concurrent use.
package finder
