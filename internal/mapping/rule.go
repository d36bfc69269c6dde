package mapping

import (
	"fmt"
	"strings"
)

// Predicate decides whether a single rule applies to one resolution question.
// Implementations live in package match.
type Predicate interface {
	Match(m Mapping) bool
}

// Mapping is a configured type-mapping rule. The set of variants is closed:
// EndpointMapping, ParameterMapping, ResponseMapping, TypeMapping,
// AddParameterMapping and ResultMapping.
type Mapping interface {
	// Kind returns the rule variant.
	Kind() Kind
	// Matches reports whether p applies to this rule.
	Matches(p Predicate) bool
	// ChildMappings returns the rules nested inside this one, in
	// configuration order. Leaf rules return nil.
	ChildMappings() []Mapping
	// String describes the rule for diagnostics.
	String() string

	sealed()
}

// TargetTypeMapping is a rule that designates a target type. Parameter and
// response rules designate the target of their nested type rule.
type TargetTypeMapping interface {
	Mapping
	TargetType() TargetType
}

var (
	_ Mapping           = (*EndpointMapping)(nil)
	_ TargetTypeMapping = (*ParameterMapping)(nil)
	_ TargetTypeMapping = (*ResponseMapping)(nil)
	_ TargetTypeMapping = (*TypeMapping)(nil)
	_ TargetTypeMapping = (*AddParameterMapping)(nil)
	_ TargetTypeMapping = (*ResultMapping)(nil)
)

// Source type names with a fixed meaning.
const (
	SourceTypeArray  = "array"
	SourceTypeSingle = "single"
	SourceTypeMulti  = "multi"
)

// EndpointMapping groups the rules valid for a single endpoint path.
type EndpointMapping struct {
	// Path of the endpoint, exactly as written in the api.
	Path string
	// Exclude drops the endpoint from processing.
	Exclude bool
	// Mappings are the endpoint specific rules.
	Mappings []Mapping
}

func (m *EndpointMapping) Kind() Kind { return KindEndpoint }
func (m *EndpointMapping) Matches(p Predicate) bool { return p.Match(m) }
func (m *EndpointMapping) ChildMappings() []Mapping { return m.Mappings }
func (m *EndpointMapping) String() string { return "endpoint " + m.Path }
func (*EndpointMapping) sealed() {}

// ParameterMapping configures the type of one named parameter.
type ParameterMapping struct {
	// ParameterName must match the api parameter name 1:1.
	ParameterName string
	// Mapping is valid only for the parameter named ParameterName.
	Mapping *TypeMapping
}

func (m *ParameterMapping) Kind() Kind { return KindParameter }
func (m *ParameterMapping) Matches(p Predicate) bool { return p.Match(m) }
func (m *ParameterMapping) ChildMappings() []Mapping { return []Mapping{m.Mapping} }
func (m *ParameterMapping) TargetType() TargetType { return m.Mapping.Target }

func (m *ParameterMapping) String() string {
	return fmt.Sprintf("parameter %s => %s", m.ParameterName, m.Mapping.Target.QualifiedName())
}

func (*ParameterMapping) sealed() {}

// ResponseMapping configures the type of a response with a given content type.
type ResponseMapping struct {
	// ContentType must match the api content type 1:1.
	ContentType string
	// Mapping is valid only for responses with ContentType.
	Mapping *TypeMapping
}

func (m *ResponseMapping) Kind() Kind { return KindResponse }
func (m *ResponseMapping) Matches(p Predicate) bool { return p.Match(m) }
func (m *ResponseMapping) ChildMappings() []Mapping { return []Mapping{m.Mapping} }
func (m *ResponseMapping) TargetType() TargetType { return m.Mapping.Target }

func (m *ResponseMapping) String() string {
	return fmt.Sprintf("response %s => %s", m.ContentType, m.Mapping.Target.QualifiedName())
}

func (*ResponseMapping) sealed() {}

// TypeMapping maps a source schema type (name and optional format) to a
// target type. The pseudo types "single" and "multi" configure the wrappers
// of single values and collections.
type TypeMapping struct {
	// SourceTypeName is a schema name, a primitive type or "array".
	SourceTypeName string
	// SourceTypeFormat is the optional schema format, e.g. "binary".
	SourceTypeFormat *string
	// Target is the type to generate.
	Target TargetType
}

func (m *TypeMapping) Kind() Kind { return KindType }
func (m *TypeMapping) Matches(p Predicate) bool { return p.Match(m) }
func (m *TypeMapping) ChildMappings() []Mapping { return nil }
func (m *TypeMapping) TargetType() TargetType { return m.Target }

func (m *TypeMapping) String() string {
	return fmt.Sprintf("type %s => %s", m.Source(), m.Target.QualifiedName())
}

// Source returns "name" or "name:format".
func (m *TypeMapping) Source() string {
	if m.SourceTypeFormat == nil {
		return m.SourceTypeName
	}

	return m.SourceTypeName + ":" + *m.SourceTypeFormat
}

func (*TypeMapping) sealed() {}

// AddParameterMapping adds a parameter that is not part of the api to an
// endpoint, e.g. the raw request.
type AddParameterMapping struct {
	// ParameterName of the additional parameter.
	ParameterName string
	// Mapping provides the type of the additional parameter.
	Mapping *TypeMapping
}

func (m *AddParameterMapping) Kind() Kind { return KindAddParameter }
func (m *AddParameterMapping) Matches(p Predicate) bool { return p.Match(m) }
func (m *AddParameterMapping) ChildMappings() []Mapping { return nil }
func (m *AddParameterMapping) TargetType() TargetType { return m.Mapping.Target }

func (m *AddParameterMapping) String() string {
	return fmt.Sprintf("add %s => %s", m.ParameterName, m.Mapping.Target.QualifiedName())
}

func (*AddParameterMapping) sealed() {}

// ResultMapping configures the envelope around response bodies.
// A target named "plain" disables the envelope.
type ResultMapping struct {
	Target TargetType
}

func (m *ResultMapping) Kind() Kind { return KindResult }
func (m *ResultMapping) Matches(p Predicate) bool { return p.Match(m) }
func (m *ResultMapping) ChildMappings() []Mapping { return nil }
func (m *ResultMapping) TargetType() TargetType { return m.Target }
func (m *ResultMapping) String() string { return "result => " + m.Target.QualifiedName() }
func (*ResultMapping) sealed() {}

// Describe joins the String() of every rule, for error messages.
func Describe(ms []Mapping) string {
	parts := make([]string, 0, len(ms))
	for _, m := range ms {
		parts = append(parts, m.String())
	}

	return strings.Join(parts, ", ")
}
