package render

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/matter/pkg/frontmatter"
)

func encodeJSON(w io.Writer, v frontmatter.Value) error {
	var compact bytes.Buffer
	if err := appendJSON(&compact, v); err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return errors.Wrap(err, "encoding json")
	}
	out.WriteByte('\n')
	_, err := out.WriteTo(w)
	return errors.Wrap(err, "writing json")
}

// appendJSON writes v compactly. Objects keep mapping order, which
// encoding/json does not do for maps.
func appendJSON(buf *bytes.Buffer, v frontmatter.Value) error {
	switch v := v.(type) {
	case frontmatter.Mapping:
		buf.WriteByte('{')
		i := 0
		for k, val := range v.All() {
			if i > 0 {
				buf.WriteByte(',')
			}
			i++
			if err := appendJSONString(buf, frontmatter.KeyText(k)); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := appendJSON(buf, val); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case frontmatter.Sequence:
		buf.WriteByte('[')
		for i, item := range v.All() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case frontmatter.String:
		return appendJSONString(buf, string(v))
	case frontmatter.Number:
		if !json.Valid([]byte(v.String())) {
			return errors.Wrapf(ErrNotRepresentable, "number %s in json", v.String())
		}
		buf.WriteString(v.String())
	case frontmatter.Bool:
		buf.WriteString(frontmatter.KeyText(v))
	default:
		buf.WriteString("null")
	}
	return nil
}

func appendJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(err, "encoding json string")
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
