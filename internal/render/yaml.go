package render

import (
	"io"
	"math"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/matter/pkg/frontmatter"
)

func encodeYAML(w io.Writer, v frontmatter.Value) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(v)); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return errors.Wrap(enc.Close(), "encoding yaml")
}

// yamlNode builds a node tree so that mapping order survives encoding.
func yamlNode(v frontmatter.Value) *yaml.Node {
	switch v := v.(type) {
	case frontmatter.Mapping:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for k, val := range v.All() {
			n.Content = append(n.Content, yamlNode(k), yamlNode(val))
		}
		return n
	case frontmatter.Sequence:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.All() {
			n.Content = append(n.Content, yamlNode(item))
		}
		return n
	case frontmatter.String:
		return scalarNode("!!str", string(v))
	case frontmatter.Bool:
		return scalarNode("!!bool", frontmatter.KeyText(v))
	case frontmatter.Number:
		return yamlNumber(v)
	default:
		return scalarNode("!!null", "null")
	}
}

func yamlNumber(n frontmatter.Number) *yaml.Node {
	switch native := n.Native().(type) {
	case int64, uint64:
		return scalarNode("!!int", n.String())
	case float64:
		switch {
		case math.IsNaN(native):
			return scalarNode("!!float", ".nan")
		case math.IsInf(native, 1):
			return scalarNode("!!float", ".inf")
		case math.IsInf(native, -1):
			return scalarNode("!!float", "-.inf")
		}
		return scalarNode("!!float", n.String())
	default:
		return scalarNode("!!str", n.String())
	}
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
