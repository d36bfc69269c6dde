// Package schemainfo provides the read-only fact set a resolution query is
// evaluated against: one schema occurrence of an api description.
package schemainfo

import (
	"fmt"
	"strings"
)

// SchemaInfo describes one schema occurrence. An accessor of a fact that the
// occurrence does not define panics with *UndefinedFieldError.
type SchemaInfo interface {
	// Path of the endpoint the occurrence belongs to.
	Path() string
	// Name of the parameter or schema.
	Name() string
	// ContentType of the request or response body.
	ContentType() string
	// Type is the primitive kind, e.g. "string" or "array".
	Type() string
	// Format is the optional schema format, e.g. "binary".
	Format() *string
	// IsPrimitive reports whether the schema is a primitive type.
	IsPrimitive() bool
	// IsArray reports whether the schema is an array.
	IsArray() bool
}

// Field names a SchemaInfo fact.
type Field uint8

const (
	FieldPath Field = 1 << iota
	FieldName
	FieldContentType
	FieldType
	FieldFormat
	FieldPrimitive
	FieldArray
)

var fieldNames = []struct {
	f    Field
	name string
}{
	{FieldPath, "path"},
	{FieldName, "name"},
	{FieldContentType, "contentType"},
	{FieldType, "type"},
	{FieldFormat, "format"},
	{FieldPrimitive, "isPrimitive"},
	{FieldArray, "isArray"},
}

// String returns the names of the fields in f joined by "|".
func (f Field) String() string {
	var parts []string

	for _, fn := range fieldNames {
		if f&fn.f != 0 {
			parts = append(parts, fn.name)
		}
	}

	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "|")
}

// UndefinedFieldError is the panic value of an accessor whose fact the
// occurrence does not define. It marks a bug in the caller.
type UndefinedFieldError struct {
	Field Field
	// Defined lists the facts the occurrence does define.
	Defined Field
}

func (e *UndefinedFieldError) Error() string {
	return fmt.Sprintf("schema info: %s is not defined for this occurrence (defined: %s)", e.Field, e.Defined)
}

// Info is an immutable SchemaInfo. Build it with New.
type Info struct {
	defined     Field
	path        string
	name        string
	contentType string
	typ         string
	format      *string
	primitive   bool
	array       bool
}

var _ SchemaInfo = (*Info)(nil)

// Option sets one fact of an Info.
type Option func(*Info)

// WithPath sets the endpoint path.
func WithPath(path string) Option {
	return func(i *Info) {
		i.path = path
		i.defined |= FieldPath
	}
}

// WithName sets the parameter or schema name.
func WithName(name string) Option {
	return func(i *Info) {
		i.name = name
		i.defined |= FieldName
	}
}

// WithContentType sets the body content type.
func WithContentType(contentType string) Option {
	return func(i *Info) {
		i.contentType = contentType
		i.defined |= FieldContentType
	}
}

// WithType sets the schema type, e.g. "string", "array" or "object".
func WithType(typ string) Option {
	return func(i *Info) {
		i.typ = typ
		i.defined |= FieldType
	}
}

// WithFormat sets the schema format; nil means "no format".
func WithFormat(format *string) Option {
	return func(i *Info) {
		if format != nil {
			f := *format
			format = &f
		}

		i.format = format
		i.defined |= FieldFormat
	}
}

// WithPrimitive sets whether the schema is a primitive type.
func WithPrimitive(primitive bool) Option {
	return func(i *Info) {
		i.primitive = primitive
		i.defined |= FieldPrimitive
	}
}

// WithArray sets whether the schema is an array.
func WithArray(array bool) Option {
	return func(i *Info) {
		i.array = array
		i.defined |= FieldArray
	}
}

// New builds an Info from the given facts.
func New(opts ...Option) *Info {
	i := &Info{}
	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Endpoint builds an Info that only defines the endpoint path. It is used by
// queries about the endpoint itself, e.g. the exclusion check.
func Endpoint(path string) *Info {
	return New(WithPath(path))
}

// Schema builds an Info for a schema occurrence at an endpoint. isPrimitive
// and isArray are derived from typ; format may be nil.
func Schema(path, name, contentType, typ string, format *string) *Info {
	return New(
		WithPath(path),
		WithName(name),
		WithContentType(contentType),
		WithType(typ),
		WithFormat(format),
		WithPrimitive(IsPrimitiveType(typ)),
		WithArray(typ == "array"),
	)
}

// IsPrimitiveType reports whether typ is a primitive schema type.
func IsPrimitiveType(typ string) bool {
	switch typ {
	case "string", "integer", "number", "boolean":
		return true
	default:
		return false
	}
}

// Defined returns the facts this occurrence defines.
func (i *Info) Defined() Field { return i.defined }

// Has reports whether all facts in f are defined.
func (i *Info) Has(f Field) bool { return i.defined&f == f }

func (i *Info) require(f Field) {
	if i.defined&f == 0 {
		panic(&UndefinedFieldError{Field: f, Defined: i.defined})
	}
}

func (i *Info) Path() string {
	i.require(FieldPath)
	return i.path
}

func (i *Info) Name() string {
	i.require(FieldName)
	return i.name
}

func (i *Info) ContentType() string {
	i.require(FieldContentType)
	return i.contentType
}

func (i *Info) Type() string {
	i.require(FieldType)
	return i.typ
}

func (i *Info) Format() *string {
	i.require(FieldFormat)
	return i.format
}

func (i *Info) IsPrimitive() bool {
	i.require(FieldPrimitive)
	return i.primitive
}

func (i *Info) IsArray() bool {
	i.require(FieldArray)
	return i.array
}

// With returns a copy of i with additional facts.
func (i *Info) With(opts ...Option) *Info {
	c := *i
	for _, opt := range opts {
		opt(&c)
	}

	return &c
}
