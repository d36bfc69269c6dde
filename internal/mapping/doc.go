// Package mapping provides the type-mapping rule model, the YAML mapping file
// schema, loading, and structural validation.
//
// A mapping file is turned into an ordered list of immutable rules. The list is
// built once and shared read-only by every resolution query of a run.
//
// # Schema Overview
//
//	version: "1"
//	map:
//	  # envelope for every response body (plain disables it)
//	  result: net/http.Response
//	  # wrapper for single values and for collections
//	  single: github.com/acme/rx.Mono
//	  multi: github.com/acme/rx.Flux
//	  types:
//	    - type: array => github.com/acme/coll.List
//	    - type: string:binary => io.Reader
//	    - type: Pet => github.com/acme/model.Pet
//	      generics: [string]
//	  parameters:
//	    - name: limit => int32
//	  responses:
//	    - content: application/json => github.com/acme/model.Items
//	  paths:
//	    /items:
//	      exclude: false
//	      parameters:
//	        - add: request => net/http.Request
//	      types:
//	        - type: array => github.com/acme/coll.Slice
//
// # Rules
//
// Every rule line has the form "source => target". For types the source is
// "name" or "name:format". Targets are qualified Go type names
// ("pkg/path.Name"), optionally with a generic slot ("Name<A, B>"), or the
// literal "plain" which opts out of wrapping.
//
// # Rule variants
//
//   - EndpointMapping: rules nested under one path, plus the exclude flag
//   - ParameterMapping: a type rule valid for one parameter name
//   - ResponseMapping: a type rule valid for one response content type
//   - TypeMapping: source type name and format to target type; also the
//     "single" and "multi" wrapper rules
//   - AddParameterMapping: an extra parameter to add to an endpoint
//   - ResultMapping: the result envelope
package mapping
