package frontmatter

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// maxYAMLNodes bounds how many nodes a document may expand to once aliases
// are followed.
const maxYAMLNodes = 1 << 20

const (
	yamlMergeTag = "!!merge"
	yamlIntTag   = "!!int"
)

// yamlIntPattern matches plain integer literals, including those too wide
// for yaml.v3, which resolves them as floats or strings.
var yamlIntPattern = regexp.MustCompile(`^[-+]?(?:0[xX][0-9a-fA-F_]+|0[oO][0-7_]+|0[bB][01_]+|[0-9][0-9_]*)$`)

type yamlDecoder struct{}

// YAMLDecoder returns the YAML decoder. It keeps mapping order, follows
// aliases, expands "<<" merge keys and rejects duplicate keys. Integers keep
// every digit whatever their width. Timestamps are kept as strings.
func YAMLDecoder() Decoder {
	return yamlDecoder{}
}

func (yamlDecoder) Name() string {
	return FormatYAML
}

func (yamlDecoder) Decode(src string) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		return nil, errors.Wrap(err, "unmarshaling yaml")
	}
	if len(doc.Content) == 0 {
		return Null{}, nil
	}
	c := &yamlConverter{active: make(map[*yaml.Node]bool)}
	return c.convert(&doc)
}

// yamlConverter walks a yaml.v3 node tree into Values.
type yamlConverter struct {
	nodes  int
	active map[*yaml.Node]bool
}

func (c *yamlConverter) convert(n *yaml.Node) (Value, error) {
	c.nodes++
	if c.nodes > maxYAMLNodes {
		return nil, errors.Newf("yaml document expands to more than %d nodes", maxYAMLNodes)
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null{}, nil
		}
		return c.convert(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, errors.Newf("line %d: unknown anchor %q", n.Line, n.Value)
		}
		if c.active[n.Alias] {
			return nil, errors.Newf("line %d: anchor %q value contains itself", n.Line, n.Value)
		}
		c.active[n.Alias] = true
		defer delete(c.active, n.Alias)
		return c.convert(n.Alias)
	case yaml.ScalarNode:
		if num, ok := yamlInteger(n); ok {
			return num, nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, errors.Wrapf(err, "line %d", n.Line)
		}
		return ValueOf(v)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := c.convert(item)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return NewSequence(items...), nil
	case yaml.MappingNode:
		return c.mapping(n)
	default:
		return nil, errors.Newf("line %d: unsupported yaml node kind %d", n.Line, n.Kind)
	}
}

type yamlEntry struct {
	Entry
	merged bool
}

func (c *yamlConverter) mapping(n *yaml.Node) (Value, error) {
	entries := make([]yamlEntry, 0, len(n.Content)/2)
	explicit := make(map[string]int, len(n.Content)/2)

	for i := 0; i+1 < len(n.Content); i += 2 {
		kn, vn := n.Content[i], n.Content[i+1]

		if kn.Kind == yaml.ScalarNode && kn.ShortTag() == yamlMergeTag {
			merged, err := c.merge(vn)
			if err != nil {
				return nil, err
			}
			for _, e := range merged {
				entries = append(entries, yamlEntry{Entry: e, merged: true})
			}
			continue
		}

		k, err := c.convert(kn)
		if err != nil {
			return nil, err
		}
		v, err := c.convert(vn)
		if err != nil {
			return nil, err
		}
		id := keyID(k)
		if line, dup := explicit[id]; dup {
			return nil, errors.Newf("line %d: mapping key %q already defined at line %d", kn.Line, KeyText(k), line)
		}
		explicit[id] = kn.Line
		entries = append(entries, yamlEntry{Entry: Entry{Key: k, Value: v}})
	}

	// Explicit keys override merged ones, and earlier merges override later
	// ones.
	m := NewMapping()
	taken := make(map[string]bool, len(entries))
	for _, e := range entries {
		id := keyID(e.Key)
		if e.merged {
			if _, ok := explicit[id]; ok || taken[id] {
				continue
			}
		}
		taken[id] = true
		m.set(e.Key, e.Value)
	}
	return m, nil
}

func (c *yamlConverter) merge(n *yaml.Node) ([]Entry, error) {
	v, err := c.convert(n)
	if err != nil {
		return nil, err
	}
	switch v := v.(type) {
	case Mapping:
		return v.Entries(), nil
	case Sequence:
		var out []Entry
		for _, item := range v.items {
			m, ok := item.(Mapping)
			if !ok {
				return nil, errors.Newf("line %d: map merge requires a sequence of mappings", n.Line)
			}
			out = append(out, m.entries...)
		}
		return out, nil
	default:
		return nil, errors.Newf("line %d: map merge requires a mapping or a sequence of mappings", n.Line)
	}
}

// yamlInteger reads an integer scalar at full width. Quoted scalars and
// scalars with an explicit tag other than !!int are left to yaml.v3.
func yamlInteger(n *yaml.Node) (Number, bool) {
	explicit := n.Style&yaml.TaggedStyle != 0
	quoted := n.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle|yaml.LiteralStyle|yaml.FoldedStyle) != 0
	switch {
	case explicit && n.ShortTag() != yamlIntTag:
		return "", false
	case !explicit && (quoted || !yamlIntPattern.MatchString(n.Value)):
		return "", false
	}
	i, ok := new(big.Int).SetString(strings.ReplaceAll(n.Value, "_", ""), 0)
	if !ok {
		return "", false
	}
	return Number(i.String()), true
}
