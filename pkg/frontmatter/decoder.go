package frontmatter

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Format names accepted by LookupDecoder.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// Decoder turns the text between the delimiters into a Value. A Decoder
// reports syntax errors; deciding whether the Value is usable as front
// matter is up to the Parser.
type Decoder interface {
	// Name identifies the format in errors and logs.
	Name() string
	// Decode decodes src.
	Decode(src string) (Value, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc struct {
	Format string
	Func   func(src string) (Value, error)
}

// Name returns f.Format.
func (f DecoderFunc) Name() string {
	return f.Format
}

// Decode calls f.Func.
func (f DecoderFunc) Decode(src string) (Value, error) {
	return f.Func(src)
}

// Formats returns the names of the built-in decoders.
func Formats() []string {
	return []string{FormatYAML, FormatJSON, FormatTOML}
}

// LookupDecoder returns the built-in decoder for a format name. Names are
// case-insensitive and "yml" is accepted for YAML.
func LookupDecoder(name string) (Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatYAML, "yml":
		return YAMLDecoder(), nil
	case FormatJSON:
		return JSONDecoder(), nil
	case FormatTOML:
		return TOMLDecoder(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q (valid: %s)", name, strings.Join(Formats(), ", "))
	}
}
