package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for Paths.
// Keys keep their document order; duplicate keys are kept as separate items.
func (p *Paths) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected map of endpoint paths, got %v", node.Line, kindName(node.Kind))
	}

	items := make(Paths, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		var path string

		err := node.Content[i].Decode(&path)
		if err != nil {
			return fmt.Errorf("line %d: invalid endpoint path: %w", node.Content[i].Line, err)
		}

		var entry PathEntry

		err = node.Content[i+1].Decode(&entry)
		if err != nil {
			return fmt.Errorf("endpoint %s: %w", path, err)
		}

		items = append(items, PathItem{Path: path, PathEntry: entry})
	}

	*p = items

	return nil
}

// MarshalYAML implements custom YAML marshaling for Paths.
func (p Paths) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, item := range p {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: item.Path}

		val := &yaml.Node{}
		if err := val.Encode(item.PathEntry); err != nil {
			return nil, fmt.Errorf("endpoint %s: %w", item.Path, err)
		}

		node.Content = append(node.Content, key, val)
	}

	return node, nil
}

// Get returns the first endpoint entry for path.
func (p Paths) Get(path string) (PathEntry, bool) {
	for _, item := range p {
		if item.Path == path {
			return item.PathEntry, true
		}
	}

	return PathEntry{}, false
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "map"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("kind %d", k)
	}
}
