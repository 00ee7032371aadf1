package render

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/matter/pkg/frontmatter"
)

// Format is an output encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

var (
	// ErrUnknownFormat indicates an output format name is not recognized.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrNotATable indicates a non-mapping value was rendered as TOML.
	ErrNotATable = errors.New("toml output requires a mapping")

	// ErrNotRepresentable indicates a value has no encoding in the format,
	// such as NaN in JSON.
	ErrNotRepresentable = errors.New("value can not be represented")
)

// Formats returns the output formats in display order.
func Formats() []Format {
	return []Format{FormatYAML, FormatJSON, FormatTOML}
}

// ParseFormat returns the Format named s. Names are case-insensitive and
// "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		names := make([]string, 0, 3)
		for _, f := range Formats() {
			names = append(names, string(f))
		}
		return "", errors.Wrapf(ErrUnknownFormat, "%q (valid: %s)", s, strings.Join(names, ", "))
	}
}

// Data writes the whole of d in format f.
func Data(w io.Writer, d frontmatter.Data, f Format) error {
	return Encode(w, d.Mapping(), f)
}

// Value writes v. Scalars are written as plain text followed by a newline;
// sequences and mappings are encoded in format f.
func Value(w io.Writer, v frontmatter.Value, f Format) error {
	if text, ok := Scalar(v); ok {
		_, err := io.WriteString(w, text+"\n")
		return errors.Wrap(err, "writing value")
	}
	return Encode(w, v, f)
}

// Scalar returns the plain text of a scalar value and whether v is one.
// Null is "null".
func Scalar(v frontmatter.Value) (string, bool) {
	switch v := v.(type) {
	case frontmatter.String:
		return string(v), true
	case frontmatter.Number:
		return v.String(), true
	case frontmatter.Bool, frontmatter.Null:
		return frontmatter.KeyText(v), true
	default:
		return "", false
	}
}

// Encode writes v in format f.
func Encode(w io.Writer, v frontmatter.Value, f Format) error {
	switch f {
	case FormatYAML:
		return encodeYAML(w, v)
	case FormatJSON:
		return encodeJSON(w, v)
	case FormatTOML:
		return encodeTOML(w, v)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", string(f))
	}
}
