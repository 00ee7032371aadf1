package frontmatter

import (
	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

type tomlDecoder struct{}

// TOMLDecoder returns the TOML decoder. TOML tables are unordered once
// decoded, so keys come out sorted. Dates and times become strings in their
// TOML form.
func TOMLDecoder() Decoder {
	return tomlDecoder{}
}

func (tomlDecoder) Name() string {
	return FormatTOML
}

func (tomlDecoder) Decode(src string) (Value, error) {
	var data map[string]any
	if err := toml.Unmarshal([]byte(src), &data); err != nil {
		return nil, errors.Wrap(err, "unmarshaling toml")
	}
	v, err := ValueOf(data)
	if err != nil {
		return nil, errors.Wrap(err, "converting toml")
	}
	return v, nil
}
