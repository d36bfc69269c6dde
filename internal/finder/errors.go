package finder

import (
	"errors"
	"fmt"

	"typemap-resolver/internal/diagnostic"
	"typemap-resolver/internal/mapping"
)

// ErrAmbiguousMapping matches every *AmbiguousMappingError with errors.Is.
var ErrAmbiguousMapping = errors.New("ambiguous mapping")

// AmbiguousMappingError reports more than one rule for a single resolution
// question in one scope.
type AmbiguousMappingError struct {
	// Scope is diagnostic.GlobalScope or the endpoint path.
	Scope string
	// Mappings are all conflicting rules.
	Mappings []mapping.Mapping
}

func (e *AmbiguousMappingError) Error() string {
	return fmt.Sprintf("%s: [%s] %d conflicting rules: %s",
		ErrAmbiguousMapping, e.Scope, len(e.Mappings), mapping.Describe(e.Mappings))
}

// Is reports whether target is ErrAmbiguousMapping.
func (e *AmbiguousMappingError) Is(target error) bool {
	return target == ErrAmbiguousMapping
}

// Diagnostic converts the error into an error diagnostic. question names the
// query that found the conflict, e.g. "multi".
func (e *AmbiguousMappingError) Diagnostic(question string) diagnostic.Diagnostic {
	related := make([]string, 0, len(e.Mappings))
	for _, m := range e.Mappings {
		related = append(related, m.String())
	}

	return diagnostic.Diagnostic{
		Severity: diagnostic.DiagnosticError,
		Code:     "ambiguous_mapping",
		Message:  fmt.Sprintf("%d conflicting rules", len(e.Mappings)),
		Scope:    e.Scope,
		Subject:  question,
		Related:  related,
	}
}
