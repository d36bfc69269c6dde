package finder

import (
	"slices"

	"typemap-resolver/internal/common"
	"typemap-resolver/internal/diagnostic"
	"typemap-resolver/internal/mapping"
	"typemap-resolver/internal/match"
	"typemap-resolver/internal/schemainfo"
)

// Finder answers resolution questions over an ordered list of rules.
type Finder struct {
	mappings []mapping.Mapping
}

// New creates a Finder over mappings. The slice is copied.
func New(mappings []mapping.Mapping) *Finder {
	return &Finder{mappings: slices.Clone(mappings)}
}

// Mappings returns a copy of the top-level rules.
func (f *Finder) Mappings() []mapping.Mapping { return slices.Clone(f.mappings) }

// EndpointPaths returns the distinct configured endpoint paths in
// configuration order.
func (f *Finder) EndpointPaths() []string {
	var paths []string

	for _, m := range f.mappings {
		if em, ok := m.(*mapping.EndpointMapping); ok && !slices.Contains(paths, em.Path) {
			paths = append(paths, em.Path)
		}
	}

	return paths
}

// Scope is the set of rules visible to an endpoint query.
type Scope struct {
	// Path of the endpoint.
	Path string
	// Endpoints are the endpoint rules configured for Path.
	Endpoints []mapping.Mapping
	// Mappings are the children of all Endpoints.
	Mappings []mapping.Mapping
}

// IsAmbiguous reports whether Path is configured more than once.
func (s Scope) IsAmbiguous() bool { return common.IsMultiple(s.Endpoints) }

// ambiguity returns the result reporting the duplicate endpoint rules.
func (s Scope) ambiguity() Result { return newResult(s.Path, s.Endpoints) }

// EndpointScope selects the endpoint rules of schema.Path() and flattens
// their children.
func (f *Finder) EndpointScope(schema schemainfo.SchemaInfo) Scope {
	p := match.NewEndpoint(schema)

	return Scope{
		Path:      schema.Path(),
		Endpoints: Select(p, f.mappings),
		Mappings:  Filter(p, f.mappings),
	}
}

// Select returns the rules matching p, in order. Queries answer with the
// selected rules, so a parameter or response rule is reported as itself.
func Select(p mapping.Predicate, ms []mapping.Mapping) []mapping.Mapping {
	var out []mapping.Mapping

	for _, m := range ms {
		if m.Matches(p) {
			out = append(out, m)
		}
	}

	return out
}

// Filter returns the rules matching p, each replaced by its children. A leaf
// rule stands for itself.
func Filter(p mapping.Predicate, ms []mapping.Mapping) []mapping.Mapping {
	return common.FlatMap(Select(p, ms), children)
}

func children(m mapping.Mapping) []mapping.Mapping {
	switch m.(type) {
	case *mapping.EndpointMapping, *mapping.ParameterMapping, *mapping.ResponseMapping:
		return m.ChildMappings()
	default:
		return []mapping.Mapping{m}
	}
}

// FindEndpointMappings returns the endpoint scoped type of schema: a matching
// parameter or response rule, or else a matching type rule.
func (f *Finder) FindEndpointMappings(schema schemainfo.SchemaInfo) Result {
	scope := f.EndpointScope(schema)
	if scope.IsAmbiguous() {
		return scope.ambiguity()
	}

	if io := Select(match.NewIO(schema), scope.Mappings); !common.IsEmpty(io) {
		return newResult(scope.Path, io)
	}

	return newResult(scope.Path, Select(match.NewType(schema), scope.Mappings))
}

// FindIoMappings returns the global parameter or response rule of schema.
func (f *Finder) FindIoMappings(schema schemainfo.SchemaInfo) Result {
	return f.global(match.NewIO(schema))
}

// FindTypeMappings returns the global type rule of schema.
func (f *Finder) FindTypeMappings(schema schemainfo.SchemaInfo) Result {
	return f.global(match.NewType(schema))
}

// FindAdditionalEndpointParameter returns the additional parameter rule of
// the endpoint at path.
func (f *Finder) FindAdditionalEndpointParameter(path string) Result {
	schema := schemainfo.Endpoint(path)

	return f.endpoint(schema, match.NewAddParameter(schema))
}

// FindEndpointResultMapping returns the result rule of the endpoint.
func (f *Finder) FindEndpointResultMapping(schema schemainfo.SchemaInfo) Result {
	return f.endpoint(schema, match.NewResult(schema))
}

// FindResultMapping returns the global result rule.
func (f *Finder) FindResultMapping(schema schemainfo.SchemaInfo) Result {
	return f.global(match.NewResult(schema))
}

// FindEndpointSingleMapping returns the single wrapper rule of the endpoint.
func (f *Finder) FindEndpointSingleMapping(schema schemainfo.SchemaInfo) Result {
	return f.endpoint(schema, match.NewSingle(schema))
}

// FindSingleMapping returns the global single wrapper rule.
func (f *Finder) FindSingleMapping(schema schemainfo.SchemaInfo) Result {
	return f.global(match.NewSingle(schema))
}

// FindEndpointMultiMapping returns the multi wrapper rule of the endpoint.
func (f *Finder) FindEndpointMultiMapping(schema schemainfo.SchemaInfo) Result {
	return f.endpoint(schema, match.NewMulti(schema))
}

// FindMultiMapping returns the global multi wrapper rule.
func (f *Finder) FindMultiMapping(schema schemainfo.SchemaInfo) Result {
	return f.global(match.NewMulti(schema))
}

// IsExcludedEndpoint reports whether the endpoint at path is excluded. An
// unconfigured path is not excluded.
func (f *Finder) IsExcludedEndpoint(path string) (bool, error) {
	endpoints := Select(match.NewEndpoint(schemainfo.Endpoint(path)), f.mappings)

	m, err := newResult(path, endpoints).Mapping()
	if err != nil || m == nil {
		return false, err
	}

	em, ok := m.(*mapping.EndpointMapping)

	return ok && em.Exclude, nil
}

func (f *Finder) global(p mapping.Predicate) Result {
	return newResult(diagnostic.GlobalScope, Select(p, f.mappings))
}

func (f *Finder) endpoint(schema schemainfo.SchemaInfo, p mapping.Predicate) Result {
	scope := f.EndpointScope(schema)
	if scope.IsAmbiguous() {
		return scope.ambiguity()
	}

	return newResult(scope.Path, Select(p, scope.Mappings))
}
