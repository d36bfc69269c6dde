// Package match provides the matcher predicates of the resolution questions
// and edit-distance suggestions for near misses.
//
// Every predicate is built for one schema occurrence and answers one question
// for a single rule. Predicates only accept the rule variants they are about;
// every other variant, including ones added later, does not match.
//
// Predicates:
//   - Endpoint: endpoint rule with the occurrence path
//   - IO: parameter rule by name, response rule by content type
//   - Type: type rule by name+format, primitive type+format, or "array"
//   - Result, AddParameter: any rule of their variant
//   - Single, Multi: the "single" and "multi" type rules
package match
