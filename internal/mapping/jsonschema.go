package mapping

import (
	"github.com/invopop/jsonschema"
)

// newReflector reflects yaml field names and inlines all definitions.
func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		FieldNameTag:   "yaml",
		DoNotReference: true,
		ExpandedStruct: true,
	}
}

// JSONSchema returns the JSON Schema of a mapping file, for editor support.
func JSONSchema() *jsonschema.Schema {
	s := newReflector().Reflect(&MappingFile{})
	s.Title = "type mapping file"

	return s
}

// JSONSchema describes Paths as a map from endpoint path to PathEntry.
func (Paths) JSONSchema() *jsonschema.Schema {
	entry := newReflector().Reflect(&PathEntry{})
	entry.Version = ""

	return &jsonschema.Schema{
		Type:                 "object",
		Description:          "endpoint specific rules keyed by endpoint path",
		AdditionalProperties: entry,
	}
}
