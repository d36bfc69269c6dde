package wrapper

import (
	"fmt"

	"typemap-resolver/internal/datatype"
	"typemap-resolver/internal/finder"
	"typemap-resolver/internal/mapping"
	"typemap-resolver/internal/schemainfo"
)

type query func(schemainfo.SchemaInfo) finder.Result

// lookup returns the target of the endpoint rule, or else of the global rule.
// It returns nil if neither is configured.
func lookup(endpoint, global query, schema schemainfo.SchemaInfo) (*mapping.TargetType, error) {
	target, err := endpoint(schema).TargetType()
	if err != nil || target != nil {
		return target, err
	}

	return global(schema).TargetType()
}

// Multi replaces array data types by the configured multi type, e.g. a
// reactive stream of the array items.
type Multi struct {
	finder *finder.Finder
}

// NewMulti creates a Multi wrapper.
func NewMulti(f *finder.Finder) *Multi {
	return &Multi{finder: f}
}

// Wrap returns a MappedCollection of the array item if schema is an array
// and a multi rule applies. Otherwise dt is returned unchanged.
func (w *Multi) Wrap(dt datatype.DataType, schema schemainfo.SchemaInfo) (datatype.DataType, error) {
	if !schema.IsArray() {
		return dt, nil
	}

	target, err := lookup(w.finder.FindEndpointMultiMapping, w.finder.FindMultiMapping, schema)
	if err != nil {
		return nil, err
	}

	if target == nil || target.IsPlain() {
		return dt, nil
	}

	array, ok := dt.(*datatype.Array)
	if !ok {
		return nil, fmt.Errorf("multi %s: %s is not an array data type", target, dt.TypeName())
	}

	return &datatype.MappedCollection{ID: datatype.ID(*target), Item: array.Item}, nil
}

// Single wraps non array data types in the configured single type.
type Single struct {
	finder *finder.Finder
}

// NewSingle creates a Single wrapper.
func NewSingle(f *finder.Finder) *Single {
	return &Single{finder: f}
}

// Wrap returns dt wrapped in the single type. Arrays and empty responses are
// returned unchanged.
func (w *Single) Wrap(dt datatype.DataType, schema schemainfo.SchemaInfo) (datatype.DataType, error) {
	if dt.Kind() == datatype.KindNone || schema.IsArray() {
		return dt, nil
	}

	target, err := lookup(w.finder.FindEndpointSingleMapping, w.finder.FindSingleMapping, schema)
	if err != nil {
		return nil, err
	}

	if target == nil || target.IsPlain() {
		return dt, nil
	}

	return &datatype.Single{ID: datatype.ID(*target), Wrapped: dt}, nil
}

// Result wraps response data types in the configured result envelope.
type Result struct {
	finder *finder.Finder
}

// NewResult creates a Result wrapper.
func NewResult(f *finder.Finder) *Result {
	return &Result{finder: f}
}

// Wrap returns dt wrapped in the result envelope.
func (w *Result) Wrap(dt datatype.DataType, schema schemainfo.SchemaInfo) (datatype.DataType, error) {
	target, err := lookup(w.finder.FindEndpointResultMapping, w.finder.FindResultMapping, schema)
	if err != nil {
		return nil, err
	}

	if target == nil || target.IsPlain() {
		return dt, nil
	}

	if none, ok := dt.(datatype.None); ok {
		dt = none.WrappedInResult()
	}

	return &datatype.Result{ID: datatype.ID(*target), Wrapped: dt}, nil
}
