package finder

//go:generate go tool stringer -type=Outcome -trimprefix=Outcome -output=outcome_string.go

// Outcome classifies a Result.
type Outcome int

const (
	// OutcomeNone means no rule applies.
	OutcomeNone Outcome = iota
	// OutcomeOne means exactly one rule applies.
	OutcomeOne
	// OutcomeAmbiguous means more than one rule applies.
	OutcomeAmbiguous
)
