package finder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typemap-resolver/internal/diagnostic"
	"typemap-resolver/internal/mapping"
	"typemap-resolver/internal/schemainfo"
)

const finderYAML = `
map:
  result: net/http.Response
  single: github.com/acme/rx.Mono
  multi: github.com/acme/rx.Flux
  types:
    - type: array => github.com/acme/coll.Seq
    - type: Pet => github.com/acme/model.Pet
  parameters:
    - name: limit => int32
  responses:
    - content: application/xml => github.com/acme/model.Xml
  paths:
    /items:
      result: plain
      multi: plain
      types:
        - type: array => github.com/acme/coll.List<>
      parameters:
        - name: filter => github.com/acme/model.Filter
        - add: request => net/http.Request
      responses:
        - content: application/json => github.com/acme/model.Items<>
    /pets:
      exclude: true
    /orders:
      single: github.com/acme/rx.Single
      types:
        - type: Order => github.com/acme/model.Order
        - type: Order => github.com/acme/model.OrderV2
      parameters:
        - add: request => net/http.Request
        - add: response => net/http.ResponseWriter
`

func newFinder(t *testing.T) *Finder {
	t.Helper()

	mf, err := mapping.Parse([]byte(finderYAML))
	require.NoError(t, err)

	ms, err := mf.Mappings()
	require.NoError(t, err)

	return New(ms)
}

func targetName(t *testing.T, r Result) string {
	t.Helper()

	tt, err := r.TargetType()
	require.NoError(t, err)
	require.NotNil(t, tt)

	return tt.QualifiedName()
}

func TestFindEndpointMappingsPrefersIO(t *testing.T) {
	f := newFinder(t)
	info := schemainfo.Schema("/items", "Items", "application/json", "array", nil)

	r := f.FindEndpointMappings(info)
	assert.Equal(t, OutcomeOne, r.Outcome())
	assert.Equal(t, "/items", r.Scope())
	assert.Equal(t, "github.com/acme/model.Items", targetName(t, r))
}

func TestFindEndpointMappingsParameter(t *testing.T) {
	f := newFinder(t)
	info := schemainfo.Schema("/items", "filter", "", "object", nil)

	assert.Equal(t, "github.com/acme/model.Filter", targetName(t, f.FindEndpointMappings(info)))
}

func TestFindEndpointMappingsFallsBackToType(t *testing.T) {
	f := newFinder(t)
	info := schemainfo.Schema("/items", "Items", "text/plain", "array", nil)

	assert.Equal(t, "github.com/acme/coll.List", targetName(t, f.FindEndpointMappings(info)))
}

func TestFindEndpointMappingsUnknownEndpoint(t *testing.T) {
	f := newFinder(t)
	info := schemainfo.Schema("/unknown", "Items", "application/json", "array", nil)

	r := f.FindEndpointMappings(info)
	assert.Equal(t, OutcomeNone, r.Outcome())
	assert.True(t, r.IsEmpty())
	assert.NoError(t, r.Err())

	m, err := r.Mapping()
	assert.NoError(t, err)
	assert.Nil(t, m)

	tt, err := r.TargetType()
	assert.NoError(t, err)
	assert.Nil(t, tt)
}

func TestFindEndpointMappingsAmbiguousType(t *testing.T) {
	f := newFinder(t)
	info := schemainfo.Schema("/orders", "Order", "application/json", "object", nil)

	r := f.FindEndpointMappings(info)
	assert.Equal(t, OutcomeAmbiguous, r.Outcome())
	require.Len(t, r.Matches(), 2)

	_, err := r.Mapping()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmbiguousMapping)

	var ambiguous *AmbiguousMappingError
	require.True(t, errors.As(err, &ambiguous))
	assert.Equal(t, "/orders", ambiguous.Scope)
	assert.Contains(t, err.Error(), "type Order => github.com/acme/model.Order")
	assert.Contains(t, err.Error(), "type Order => github.com/acme/model.OrderV2")

	_, err = r.TargetType()
	assert.ErrorIs(t, err, ErrAmbiguousMapping)
}

func TestIoAmbiguityNamesTheConflictingRules(t *testing.T) {
	limit := func(target string) *mapping.ParameterMapping {
		return &mapping.ParameterMapping{
			ParameterName: "limit",
			Mapping:       &mapping.TypeMapping{SourceTypeName: "limit", Target: mapping.TargetType{Name: target}},
		}
	}
	json := func(name string) *mapping.ResponseMapping {
		return &mapping.ResponseMapping{
			ContentType: "application/json",
			Mapping: &mapping.TypeMapping{
				SourceTypeName: "application/json",
				Target:         mapping.TargetType{Name: name, Pkg: "github.com/acme/model"},
			},
		}
	}

	f := New([]mapping.Mapping{
		limit("int32"),
		limit("int64"),
		&mapping.EndpointMapping{Path: "/items", Mappings: []mapping.Mapping{json("Items"), json("ItemList")}},
	})

	_, err := f.FindIoMappings(schemainfo.Schema("/items", "limit", "", "integer", nil)).Mapping()
	require.ErrorIs(t, err, ErrAmbiguousMapping)
	assert.EqualError(t, err,
		"ambiguous mapping: [global] 2 conflicting rules: parameter limit => int32, parameter limit => int64")

	r := f.FindEndpointMappings(schemainfo.Schema("/items", "Items", "application/json", "array", nil))
	require.Equal(t, OutcomeAmbiguous, r.Outcome())
	assert.EqualError(t, r.Err(),
		"ambiguous mapping: [/items] 2 conflicting rules: "+
			"response application/json => github.com/acme/model.Items, "+
			"response application/json => github.com/acme/model.ItemList")
}

func TestIoResultIsTheIoRule(t *testing.T) {
	f := newFinder(t)

	m, err := f.FindEndpointMappings(schemainfo.Schema("/items", "Items", "application/json", "array", nil)).Mapping()
	require.NoError(t, err)
	require.IsType(t, &mapping.ResponseMapping{}, m)
	assert.Equal(t, "response application/json => github.com/acme/model.Items", m.String())

	m, err = f.FindIoMappings(schemainfo.Schema("/items", "limit", "", "integer", nil)).Mapping()
	require.NoError(t, err)
	require.IsType(t, &mapping.ParameterMapping{}, m)
	assert.Equal(t, "parameter limit => int32", m.String())
}

func TestGlobalQueriesIgnoreEndpointRules(t *testing.T) {
	f := newFinder(t)

	array := schemainfo.Schema("/items", "Items", "application/json", "array", nil)
	assert.Equal(t, "github.com/acme/coll.Seq", targetName(t, f.FindTypeMappings(array)))

	pet := schemainfo.Schema("/pets", "Pet", "application/json", "object", nil)
	assert.Equal(t, "github.com/acme/model.Pet", targetName(t, f.FindTypeMappings(pet)))

	order := schemainfo.Schema("/orders", "Order", "application/json", "object", nil)
	assert.True(t, f.FindTypeMappings(order).IsEmpty())

	limit := schemainfo.Schema("/items", "limit", "", "integer", nil)
	assert.Equal(t, "int32", targetName(t, f.FindIoMappings(limit)))

	filter := schemainfo.Schema("/items", "filter", "", "object", nil)
	assert.True(t, f.FindIoMappings(filter).IsEmpty())

	xml := schemainfo.Schema("/items", "Items", "application/xml", "object", nil)
	assert.Equal(t, "github.com/acme/model.Xml", targetName(t, f.FindIoMappings(xml)))
}

func TestWrapperQueries(t *testing.T) {
	f := newFinder(t)

	items := schemainfo.Endpoint("/items")
	orders := schemainfo.Endpoint("/orders")
	pets := schemainfo.Endpoint("/pets")

	assert.Equal(t, mapping.PlainTypeName, targetName(t, f.FindEndpointResultMapping(items)))
	assert.True(t, f.FindEndpointResultMapping(orders).IsEmpty())
	assert.Equal(t, "net/http.Response", targetName(t, f.FindResultMapping(items)))

	assert.True(t, f.FindEndpointSingleMapping(items).IsEmpty())
	assert.Equal(t, "github.com/acme/rx.Single", targetName(t, f.FindEndpointSingleMapping(orders)))
	assert.Equal(t, "github.com/acme/rx.Mono", targetName(t, f.FindSingleMapping(orders)))

	assert.Equal(t, mapping.PlainTypeName, targetName(t, f.FindEndpointMultiMapping(items)))
	assert.True(t, f.FindEndpointMultiMapping(orders).IsEmpty())
	assert.True(t, f.FindEndpointMultiMapping(pets).IsEmpty())
	assert.Equal(t, "github.com/acme/rx.Flux", targetName(t, f.FindMultiMapping(pets)))
}

func TestFindAdditionalEndpointParameter(t *testing.T) {
	f := newFinder(t)

	r := f.FindAdditionalEndpointParameter("/items")
	m, err := r.Mapping()
	require.NoError(t, err)
	require.IsType(t, &mapping.AddParameterMapping{}, m)
	assert.Equal(t, "request", m.(*mapping.AddParameterMapping).ParameterName)
	assert.Equal(t, "net/http.Request", targetName(t, r))

	assert.Equal(t, OutcomeAmbiguous, f.FindAdditionalEndpointParameter("/orders").Outcome())
	assert.True(t, f.FindAdditionalEndpointParameter("/pets").IsEmpty())
	assert.True(t, f.FindAdditionalEndpointParameter("/unknown").IsEmpty())
}

func TestIsExcludedEndpoint(t *testing.T) {
	f := newFinder(t)

	for path, want := range map[string]bool{
		"/pets":    true,
		"/items":   false,
		"/unknown": false,
	} {
		excluded, err := f.IsExcludedEndpoint(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, excluded, path)
	}
}

func TestDuplicateEndpointIsAmbiguous(t *testing.T) {
	first := &mapping.EndpointMapping{Path: "/pets", Exclude: true}
	second := &mapping.EndpointMapping{Path: "/pets", Mappings: []mapping.Mapping{
		&mapping.ResultMapping{Target: mapping.TargetType{Name: mapping.PlainTypeName}},
	}}
	f := New([]mapping.Mapping{first, second})

	_, err := f.IsExcludedEndpoint("/pets")
	assert.ErrorIs(t, err, ErrAmbiguousMapping)

	info := schemainfo.Schema("/pets", "Pet", "application/json", "object", nil)

	for name, r := range map[string]Result{
		"endpoint": f.FindEndpointMappings(info),
		"result":   f.FindEndpointResultMapping(info),
		"single":   f.FindEndpointSingleMapping(info),
		"multi":    f.FindEndpointMultiMapping(info),
		"add":      f.FindAdditionalEndpointParameter("/pets"),
	} {
		assert.Equal(t, OutcomeAmbiguous, r.Outcome(), name)
		assert.Equal(t, []mapping.Mapping{first, second}, r.Matches(), name)
	}

	assert.Equal(t, []string{"/pets"}, f.EndpointPaths())
}

func TestFilterFlattensContainers(t *testing.T) {
	leaf := &mapping.TypeMapping{SourceTypeName: "Pet", Target: mapping.TargetType{Name: "Pet"}}
	param := &mapping.ParameterMapping{ParameterName: "pet", Mapping: leaf}
	result := &mapping.ResultMapping{Target: mapping.TargetType{Name: "Response"}}
	ms := []mapping.Mapping{leaf, param, result}

	all := matchAll{}
	assert.Equal(t, ms, Select(all, ms))
	assert.Equal(t, []mapping.Mapping{leaf, leaf, result}, Filter(all, ms))
	assert.Empty(t, Filter(matchNone{}, ms))
}

func TestEndpointScope(t *testing.T) {
	f := newFinder(t)

	s := f.EndpointScope(schemainfo.Endpoint("/items"))
	assert.Equal(t, "/items", s.Path)
	assert.False(t, s.IsAmbiguous())
	require.Len(t, s.Endpoints, 1)
	assert.Len(t, s.Mappings, 6)

	s = f.EndpointScope(schemainfo.Endpoint("/unknown"))
	assert.Empty(t, s.Endpoints)
	assert.Empty(t, s.Mappings)
}

func TestFinderCopiesInput(t *testing.T) {
	ms := []mapping.Mapping{&mapping.EndpointMapping{Path: "/a"}}
	f := New(ms)
	ms[0] = &mapping.EndpointMapping{Path: "/b"}

	assert.Equal(t, []string{"/a"}, f.EndpointPaths())

	got := f.Mappings()
	got[0] = nil
	assert.NotNil(t, f.Mappings()[0])
}

func TestAmbiguousMappingErrorDiagnostic(t *testing.T) {
	err := &AmbiguousMappingError{
		Scope: diagnostic.GlobalScope,
		Mappings: []mapping.Mapping{
			&mapping.ResultMapping{Target: mapping.TargetType{Name: "A"}},
			&mapping.ResultMapping{Target: mapping.TargetType{Name: "B"}},
		},
	}

	assert.Equal(t, "ambiguous mapping: [global] 2 conflicting rules: result => A, result => B", err.Error())

	d := err.Diagnostic("result")
	assert.Equal(t, diagnostic.DiagnosticError, d.Severity)
	assert.Equal(t, "ambiguous_mapping", d.Code)
	assert.Equal(t, diagnostic.GlobalScope, d.Scope)
	assert.Equal(t, "result", d.Subject)
	assert.Equal(t, []string{"result => A", "result => B"}, d.Related)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "None", OutcomeNone.String())
	assert.Equal(t, "One", OutcomeOne.String())
	assert.Equal(t, "Ambiguous", OutcomeAmbiguous.String())
	assert.Equal(t, "Outcome(7)", Outcome(7).String())
}

type matchAll struct{}

func (matchAll) Match(mapping.Mapping) bool { return true }

type matchNone struct{}

func (matchNone) Match(mapping.Mapping) bool { return false }
