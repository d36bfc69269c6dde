package mapping

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ruleArrow separates source and target in a rule line.
const ruleArrow = "=>"

// LoadFile loads and parses a YAML mapping file from the given path.
func LoadFile(path string) (*MappingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a MappingFile.
func Parse(data []byte) (*MappingFile, error) {
	var mf MappingFile

	err := yaml.Unmarshal(data, &mf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	applyDefaults(&mf)

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *MappingFile) {
	if mf.Version == "" {
		mf.Version = CurrentVersion
	}
}

// Marshal serializes a MappingFile to YAML.
func Marshal(mf *MappingFile) ([]byte, error) {
	return yaml.Marshal(mf)
}

// WriteFile writes a MappingFile to the given path.
func WriteFile(mf *MappingFile, path string) error {
	data, err := Marshal(mf)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}

// Mappings builds the ordered rule list of the file: the global rules first,
// then one EndpointMapping per path in document order.
func (mf *MappingFile) Mappings() ([]Mapping, error) {
	out, err := mf.Map.Rules.mappings()
	if err != nil {
		return nil, err
	}

	for _, item := range mf.Map.Paths {
		nested, err := item.Rules.mappings()
		if err != nil {
			return nil, fmt.Errorf("endpoint %s: %w", item.Path, err)
		}

		out = append(out, &EndpointMapping{
			Path:     item.Path,
			Exclude:  item.Exclude,
			Mappings: nested,
		})
	}

	return out, nil
}

// LoadMappings loads a mapping file and builds its rule list.
func LoadMappings(path string) ([]Mapping, error) {
	mf, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	ms, err := mf.Mappings()
	if err != nil {
		return nil, fmt.Errorf("mapping file %s: %w", path, err)
	}

	return ms, nil
}

// mappings builds the rules of one scope: result, single, multi, types,
// parameters, responses.
func (r *Rules) mappings() ([]Mapping, error) {
	var out []Mapping

	if r.Result != "" {
		target, err := ParseTargetType(r.Result, nil)
		if err != nil {
			return nil, fmt.Errorf("result: %w", err)
		}

		out = append(out, &ResultMapping{Target: target})
	}

	for _, w := range []struct{ source, target string }{
		{SourceTypeSingle, r.Single},
		{SourceTypeMulti, r.Multi},
	} {
		if w.target == "" {
			continue
		}

		target, err := ParseTargetType(w.target, nil)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", w.source, err)
		}

		out = append(out, &TypeMapping{SourceTypeName: w.source, Target: target})
	}

	for _, e := range r.Types {
		tm, err := ParseTypeRule(e.Type, e.Generics)
		if err != nil {
			return nil, err
		}

		out = append(out, tm)
	}

	for _, e := range r.Parameters {
		m, err := e.mapping()
		if err != nil {
			return nil, err
		}

		out = append(out, m)
	}

	for _, e := range r.Responses {
		contentType, target, err := splitRule(e.Content)
		if err != nil {
			return nil, fmt.Errorf("response: %w", err)
		}

		tt, err := ParseTargetType(target, e.Generics)
		if err != nil {
			return nil, fmt.Errorf("response %s: %w", contentType, err)
		}

		out = append(out, &ResponseMapping{
			ContentType: contentType,
			Mapping:     &TypeMapping{SourceTypeName: contentType, Target: tt},
		})
	}

	return out, nil
}

func (e *ParameterEntry) mapping() (Mapping, error) {
	switch {
	case e.Name != "" && e.Add != "":
		return nil, fmt.Errorf("parameter %q: name and add are exclusive", e.Name)

	case e.Name != "":
		name, tm, err := parseNamedRule(e.Name, e.Generics)
		if err != nil {
			return nil, fmt.Errorf("parameter: %w", err)
		}

		return &ParameterMapping{ParameterName: name, Mapping: tm}, nil

	case e.Add != "":
		name, tm, err := parseNamedRule(e.Add, e.Generics)
		if err != nil {
			return nil, fmt.Errorf("add parameter: %w", err)
		}

		return &AddParameterMapping{ParameterName: name, Mapping: tm}, nil

	default:
		return nil, errors.New("parameter: one of name or add is required")
	}
}

// ParseTypeRule parses "source[:format] => target" into a TypeMapping.
func ParseTypeRule(rule string, generics []string) (*TypeMapping, error) {
	source, target, err := splitRule(rule)
	if err != nil {
		return nil, fmt.Errorf("type: %w", err)
	}

	tm := &TypeMapping{SourceTypeName: source}

	if name, format, ok := strings.Cut(source, ":"); ok {
		name, format = strings.TrimSpace(name), strings.TrimSpace(format)
		if name == "" || format == "" {
			return nil, fmt.Errorf("type %q: invalid source type", rule)
		}

		tm.SourceTypeName = name
		tm.SourceTypeFormat = &format
	}

	tm.Target, err = ParseTargetType(target, generics)
	if err != nil {
		return nil, fmt.Errorf("type %s: %w", source, err)
	}

	return tm, nil
}

// parseNamedRule parses "name => target" where name is a parameter name.
func parseNamedRule(rule string, generics []string) (string, *TypeMapping, error) {
	name, target, err := splitRule(rule)
	if err != nil {
		return "", nil, err
	}

	tt, err := ParseTargetType(target, generics)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", name, err)
	}

	return name, &TypeMapping{SourceTypeName: name, Target: tt}, nil
}

// splitRule splits "source => target" and trims both sides.
func splitRule(rule string) (source, target string, err error) {
	source, target, ok := strings.Cut(rule, ruleArrow)
	if !ok {
		return "", "", fmt.Errorf("invalid rule %q: expected 'source %s target'", rule, ruleArrow)
	}

	source, target = strings.TrimSpace(source), strings.TrimSpace(target)
	if source == "" {
		return "", "", fmt.Errorf("invalid rule %q: empty source", rule)
	}

	if target == "" {
		return "", "", fmt.Errorf("invalid rule %q: empty target", rule)
	}

	return source, target, nil
}
