// Package wrapper replaces data types by the wrapper types configured with
// the single, multi and result rules.
//
// Each wrapper asks the endpoint scope first and falls back to the global
// scope. A missing rule or a "plain" target leaves the data type unchanged.
// Ambiguous rules are returned as *finder.AmbiguousMappingError.
package wrapper
