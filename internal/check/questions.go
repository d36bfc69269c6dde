package check

import (
	"slices"

	"typemap-resolver/internal/mapping"
	"typemap-resolver/internal/schemainfo"
)

// question is a schema occurrence that exercises one configured rule.
type question struct {
	// subject names the question in diagnostics.
	subject string
	// kind is the rule variant the question is asked of.
	kind   mapping.Kind
	schema schemainfo.SchemaInfo
}

// questions derives one question per distinct rule source in ms: every
// parameter name, response content type and type rule source. Another rule
// answering the same question is a conflict.
func questions(path string, ms []mapping.Mapping) []question {
	var (
		out  []question
		seen []string
	)

	add := func(key string, q question) {
		if slices.Contains(seen, key) {
			return
		}

		seen = append(seen, key)
		out = append(out, q)
	}

	for _, m := range ms {
		switch m := m.(type) {
		case *mapping.ParameterMapping:
			add("parameter "+m.ParameterName, question{
				subject: "parameter " + m.ParameterName,
				kind:    mapping.KindParameter,
				schema: schemainfo.New(
					schemainfo.WithPath(path),
					schemainfo.WithName(m.ParameterName)),
			})

		case *mapping.ResponseMapping:
			add("response "+m.ContentType, question{
				subject: "response " + m.ContentType,
				kind:    mapping.KindResponse,
				schema: schemainfo.New(
					schemainfo.WithPath(path),
					schemainfo.WithContentType(m.ContentType)),
			})

		case *mapping.TypeMapping:
			if m.SourceTypeName == mapping.SourceTypeSingle || m.SourceTypeName == mapping.SourceTypeMulti {
				continue
			}

			add("type "+m.Source(), question{
				subject: "type " + m.Source(),
				kind:    mapping.KindType,
				schema:  schemainfo.Schema(path, m.SourceTypeName, "", m.SourceTypeName, m.SourceTypeFormat),
			})
		}
	}

	return out
}
