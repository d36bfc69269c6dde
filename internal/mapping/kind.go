package mapping

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind identifies the variant of a Mapping.
type Kind int

const (
	_ Kind = iota // zero value is not a valid kind

	KindEndpoint
	KindParameter
	KindResponse
	KindType
	KindAddParameter
	KindResult
)
