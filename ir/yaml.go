package ir

import (
	"github.com/goccy/go-yaml"
)

// FromYAML parses a YAML document into a tree. Patch documents are often
// authored as YAML fixtures; this converts them for use with the tree
// merge and prune operations.
func FromYAML(d []byte) (*Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return FromValue(v)
}

// ToYAML renders the tree as a YAML document.
func (y *Node) ToYAML() ([]byte, error) {
	return yaml.Marshal(y.Value())
}
