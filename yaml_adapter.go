package roman

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes n as a YAML string scalar holding its numeral.
func (n Numeral) MarshalYAML() (interface{}, error) {
	return Format(uint16(n))
}

// UnmarshalYAML accepts only a scalar node holding a canonical numeral.
// Integer scalars are rejected even when they are in range.
func (n *Numeral) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return newErr(ErrRepresentation, fmt.Sprintf("line %d: expected scalar", node.Line))
	}
	if node.ShortTag() != "!!str" {
		return newErr(ErrRepresentation, fmt.Sprintf("line %d: expected string, got %s", node.Line, node.ShortTag()))
	}
	v, err := ParseNumeral(node.Value)
	if err != nil {
		return err
	}
	*n = v
	return nil
}
