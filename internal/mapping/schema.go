package mapping

// CurrentVersion is the mapping file version written by Marshal and the only
// one accepted by Validate.
const CurrentVersion = "1"

// MappingFile represents the root of a YAML mapping definition file.
type MappingFile struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty" jsonschema:"enum=1"`

	// Map holds the global rules and the endpoint rules.
	Map Map `yaml:"map"`
}

// Map holds the global rules and the per endpoint rules.
type Map struct {
	Rules `yaml:",inline"`

	// Paths holds endpoint specific rules, in document order.
	Paths Paths `yaml:"paths,omitempty"`
}

// Rules is the rule set shared by the global scope and every endpoint.
type Rules struct {
	// Result is the envelope of response bodies, e.g. "net/http.Response" or "plain".
	Result string `yaml:"result,omitempty"`

	// Single wraps non collection values, e.g. "github.com/acme/rx.Mono" or "plain".
	Single string `yaml:"single,omitempty"`

	// Multi replaces collection types, e.g. "github.com/acme/rx.Flux" or "plain".
	Multi string `yaml:"multi,omitempty"`

	// Types maps schema types to target types.
	Types []TypeEntry `yaml:"types,omitempty"`

	// Parameters maps named parameters or adds extra ones.
	Parameters []ParameterEntry `yaml:"parameters,omitempty"`

	// Responses maps response bodies by content type.
	Responses []ResponseEntry `yaml:"responses,omitempty"`
}

// TypeEntry is a "types" list item.
type TypeEntry struct {
	// Type is "source[:format] => target".
	Type string `yaml:"type"`

	// Generics fills the generic slot of the target.
	Generics []string `yaml:"generics,omitempty"`
}

// ParameterEntry is a "parameters" list item. Exactly one of Name and Add is set.
type ParameterEntry struct {
	// Name is "parameter => target" and maps an api parameter.
	Name string `yaml:"name,omitempty"`

	// Add is "parameter => target" and adds a parameter to the endpoint.
	Add string `yaml:"add,omitempty"`

	// Generics fills the generic slot of the target.
	Generics []string `yaml:"generics,omitempty"`
}

// ResponseEntry is a "responses" list item.
type ResponseEntry struct {
	// Content is "content/type => target".
	Content string `yaml:"content"`

	// Generics fills the generic slot of the target.
	Generics []string `yaml:"generics,omitempty"`
}

// PathEntry holds the rules of a single endpoint.
type PathEntry struct {
	// Exclude drops the endpoint from processing.
	Exclude bool `yaml:"exclude,omitempty"`

	Rules `yaml:",inline"`
}

// PathItem is one endpoint of Paths.
type PathItem struct {
	Path string
	PathEntry
}

// Paths is the ordered "paths" mapping. A YAML map keeps no order and no
// duplicate keys, so it is decoded from the node tree instead.
type Paths []PathItem

// IsEmpty returns true if the rule set has no rules at all.
func (r *Rules) IsEmpty() bool {
	return r.Result == "" && r.Single == "" && r.Multi == "" &&
		len(r.Types) == 0 && len(r.Parameters) == 0 && len(r.Responses) == 0
}
