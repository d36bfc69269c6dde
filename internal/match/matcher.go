package match

import (
	"typemap-resolver/internal/mapping"
	"typemap-resolver/internal/schemainfo"
)

var (
	_ mapping.Predicate = Endpoint{}
	_ mapping.Predicate = IO{}
	_ mapping.Predicate = Type{}
	_ mapping.Predicate = Result{}
	_ mapping.Predicate = Single{}
	_ mapping.Predicate = Multi{}
	_ mapping.Predicate = AddParameter{}
)

// Endpoint matches the endpoint rule of the occurrence path.
type Endpoint struct{ schema schemainfo.SchemaInfo }

// NewEndpoint creates an Endpoint predicate.
func NewEndpoint(schema schemainfo.SchemaInfo) Endpoint { return Endpoint{schema: schema} }

func (p Endpoint) Match(m mapping.Mapping) bool {
	switch m := m.(type) {
	case *mapping.EndpointMapping:
		return m.Path == p.schema.Path()
	default:
		return false
	}
}

// IO matches parameter rules by parameter name and response rules by content
// type.
type IO struct{ schema schemainfo.SchemaInfo }

// NewIO creates an IO predicate.
func NewIO(schema schemainfo.SchemaInfo) IO { return IO{schema: schema} }

func (p IO) Match(m mapping.Mapping) bool {
	switch m := m.(type) {
	case *mapping.ParameterMapping:
		return m.ParameterName == p.schema.Name()
	case *mapping.ResponseMapping:
		return m.ContentType == p.schema.ContentType()
	default:
		return false
	}
}

// Type matches type rules by source type. The single and multi pseudo types
// never match.
type Type struct{ schema schemainfo.SchemaInfo }

// NewType creates a Type predicate.
func NewType(schema schemainfo.SchemaInfo) Type { return Type{schema: schema} }

func (p Type) Match(m mapping.Mapping) bool {
	tm, ok := m.(*mapping.TypeMapping)
	if !ok || isWrapper(tm) {
		return false
	}

	// The format must match as well: a plain "string" rule must not match
	// "string:binary".
	if tm.SourceTypeName == p.schema.Name() && p.matchesFormat(tm) {
		return true
	}

	switch {
	case p.schema.IsPrimitive():
		return tm.SourceTypeName == p.schema.Type() && p.matchesFormat(tm)
	case p.schema.IsArray():
		return tm.SourceTypeName == mapping.SourceTypeArray
	default:
		return false
	}
}

func (p Type) matchesFormat(tm *mapping.TypeMapping) bool {
	return sameFormat(tm.SourceTypeFormat, p.schema.Format())
}

// Result matches any result rule. It selects whether a result rule exists in
// a scope, not which one.
type Result struct{ schema schemainfo.SchemaInfo }

// NewResult creates a Result predicate.
func NewResult(schema schemainfo.SchemaInfo) Result { return Result{schema: schema} }

func (p Result) Match(m mapping.Mapping) bool {
	switch m.(type) {
	case *mapping.ResultMapping:
		return true
	default:
		return false
	}
}

// Single matches the "single" type rule.
type Single struct{ schema schemainfo.SchemaInfo }

// NewSingle creates a Single predicate.
func NewSingle(schema schemainfo.SchemaInfo) Single { return Single{schema: schema} }

func (p Single) Match(m mapping.Mapping) bool {
	switch m := m.(type) {
	case *mapping.TypeMapping:
		return m.SourceTypeName == mapping.SourceTypeSingle
	default:
		return false
	}
}

// Multi matches the "multi" type rule.
type Multi struct{ schema schemainfo.SchemaInfo }

// NewMulti creates a Multi predicate.
func NewMulti(schema schemainfo.SchemaInfo) Multi { return Multi{schema: schema} }

func (p Multi) Match(m mapping.Mapping) bool {
	switch m := m.(type) {
	case *mapping.TypeMapping:
		return m.SourceTypeName == mapping.SourceTypeMulti
	default:
		return false
	}
}

// AddParameter matches any additional parameter rule.
type AddParameter struct{ schema schemainfo.SchemaInfo }

// NewAddParameter creates an AddParameter predicate.
func NewAddParameter(schema schemainfo.SchemaInfo) AddParameter {
	return AddParameter{schema: schema}
}

func (p AddParameter) Match(m mapping.Mapping) bool {
	switch m.(type) {
	case *mapping.AddParameterMapping:
		return true
	default:
		return false
	}
}

func isWrapper(tm *mapping.TypeMapping) bool {
	return tm.SourceTypeName == mapping.SourceTypeSingle || tm.SourceTypeName == mapping.SourceTypeMulti
}

// sameFormat compares two optional formats; two missing formats are equal.
func sameFormat(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}
