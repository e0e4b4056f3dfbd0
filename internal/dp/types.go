package dp

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Nature classifies a prescription.
type Nature string

const (
	NatureModule   Nature = "module"
	NatureStandard Nature = "standard"
)

// SubDPKind tags the role of a sub-prescription.
type SubDPKind string

const (
	KindSpecification SubDPKind = "specification"
	KindDependency    SubDPKind = "dependency"
)

// Requirement qualifies a dependency-kind sub-prescription.
type Requirement string

const (
	RequirementOptional Requirement = "optional"
	RequirementRequired Requirement = "required"
)

// Prescription is one parsed design prescription (DP).
// The identifier is derived from the defining file's base name and is
// unique across the loaded set; it is never read from the document body.
type Prescription struct {
	ID          string    `yaml:"-"`
	Name        string    `yaml:"name"`
	Nature      Nature    `yaml:"nature"`
	Phase       string    `yaml:"phase,omitempty"`
	Priority    int       `yaml:"priority,omitempty"`
	Description string    `yaml:"description,omitempty"`
	DependsOn   []string  `yaml:"dependencies,omitempty"`
	SubDPs      SubDPList `yaml:"subdps,omitempty"`
	Ordered     bool      `yaml:"ordered,omitempty"`
}

// SubDP is a sub-prescription nested inside a Prescription. Sub-prescriptions
// are never scheduled on their own; they exist for validation and
// documentation. Dependency references are either a sibling name or a
// cross-reference of the form "<prescription-id>:<sub-name>".
type SubDP struct {
	Name        string      `yaml:"-"`
	Kind        SubDPKind   `yaml:"kind"`
	Requirement Requirement `yaml:"requirement,omitempty"`
	Steps       []string    `yaml:"steps,omitempty"`
	DependsOn   []string    `yaml:"depends_on,omitempty"`
	Intents     []string    `yaml:"intents,omitempty"`
}

// SubDPList holds sub-prescriptions in document order. A plain
// map[string]SubDP would lose the order the author wrote them in, which the
// `ordered` flag on the parent makes significant.
type SubDPList []SubDP

// UnmarshalYAML decodes a YAML mapping while preserving key order.
func (l *SubDPList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("subdps must be a mapping, got %s", kindName(value.Kind))
	}

	out := make(SubDPList, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valNode := value.Content[i+1]

		var sub SubDP
		if err := valNode.Decode(&sub); err != nil {
			return fmt.Errorf("subdp %q: %w", keyNode.Value, err)
		}
		sub.Name = keyNode.Value
		out = append(out, sub)
	}

	*l = out
	return nil
}

// MarshalYAML re-encodes the list as a mapping in the preserved order.
func (l SubDPList) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, sub := range l {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: sub.Name}
		valNode := &yaml.Node{}
		if err := valNode.Encode(sub); err != nil {
			return nil, fmt.Errorf("subdp %q: %w", sub.Name, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// ByName returns the sub-prescription with the given name.
func (l SubDPList) ByName(name string) (SubDP, bool) {
	for _, sub := range l {
		if sub.Name == name {
			return sub, true
		}
	}
	return SubDP{}, false
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
