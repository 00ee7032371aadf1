package render

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/matter/pkg/frontmatter"
)

// encodeTOML writes a mapping as a TOML document. TOML has no null, so
// null entries are left out of tables; a null inside an array is an error.
// Keys come out sorted.
func encodeTOML(w io.Writer, v frontmatter.Value) error {
	m, ok := v.(frontmatter.Mapping)
	if !ok {
		return errors.Wrapf(ErrNotATable, "got a %s", v.Kind())
	}
	native, err := tomlNative(m)
	if err != nil {
		return err
	}
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return errors.Wrap(enc.Encode(native), "encoding toml")
}

func tomlNative(v frontmatter.Value) (any, error) {
	switch v := v.(type) {
	case frontmatter.Mapping:
		// String keys are set last so they win over non-string keys with
		// the same text, as in Mapping.Native.
		out := make(map[string]any, v.Len())
		for _, stringKeys := range []bool{false, true} {
			for k, val := range v.All() {
				if _, ok := k.(frontmatter.String); ok != stringKeys || val.Kind() == frontmatter.KindNull {
					continue
				}
				n, err := tomlNative(val)
				if err != nil {
					return nil, errors.Wrapf(err, "key %s", frontmatter.KeyText(k))
				}
				out[frontmatter.KeyText(k)] = n
			}
		}
		return out, nil
	case frontmatter.Sequence:
		out := make([]any, 0, v.Len())
		for i, item := range v.All() {
			if item.Kind() == frontmatter.KindNull {
				return nil, errors.Wrapf(ErrNotRepresentable, "null at index %d in toml", i)
			}
			n, err := tomlNative(item)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	default:
		return v.Native(), nil
	}
}
