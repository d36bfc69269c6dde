package finder

import (
	"fmt"
	"slices"

	"typemap-resolver/internal/common"
	"typemap-resolver/internal/mapping"
)

// Result is the outcome of a query: no rule, one rule, or an ambiguous set.
type Result struct {
	scope   string
	matches []mapping.Mapping
}

func newResult(scope string, matches []mapping.Mapping) Result {
	return Result{scope: scope, matches: matches}
}

// Scope returns diagnostic.GlobalScope or the endpoint path of the query.
func (r Result) Scope() string { return r.scope }

// Outcome classifies the result.
func (r Result) Outcome() Outcome {
	switch {
	case common.IsEmpty(r.matches):
		return OutcomeNone
	case common.IsSingle(r.matches):
		return OutcomeOne
	default:
		return OutcomeAmbiguous
	}
}

// IsEmpty reports whether no rule applies.
func (r Result) IsEmpty() bool { return r.Outcome() == OutcomeNone }

// Matches returns a copy of all matching rules.
func (r Result) Matches() []mapping.Mapping { return slices.Clone(r.matches) }

// Err returns an *AmbiguousMappingError for an ambiguous result, nil otherwise.
func (r Result) Err() error {
	if r.Outcome() != OutcomeAmbiguous {
		return nil
	}

	return &AmbiguousMappingError{Scope: r.scope, Mappings: r.Matches()}
}

// Mapping returns the single matching rule, nil if there is none, or an
// *AmbiguousMappingError.
func (r Result) Mapping() (mapping.Mapping, error) {
	if err := r.Err(); err != nil {
		return nil, err
	}

	m, _ := common.First(r.matches)

	return m, nil
}

// TargetType returns the target type of the single matching rule, nil if
// there is none, or an *AmbiguousMappingError.
func (r Result) TargetType() (*mapping.TargetType, error) {
	m, err := r.Mapping()
	if err != nil || m == nil {
		return nil, err
	}

	tm, ok := m.(mapping.TargetTypeMapping)
	if !ok {
		return nil, fmt.Errorf("[%s] %s has no target type", r.scope, m)
	}

	target := tm.TargetType()

	return &target, nil
}
