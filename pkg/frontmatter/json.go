package frontmatter

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

type jsonDecoder struct{}

// JSONDecoder returns the JSON decoder. Object member order is kept and
// numbers keep their literal text.
func JSONDecoder() Decoder {
	return jsonDecoder{}
}

func (jsonDecoder) Name() string {
	return FormatJSON
}

func (jsonDecoder) Decode(src string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(src))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshaling json")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.Newf("unmarshaling json: unexpected data after top-level value at offset %d", dec.InputOffset())
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		default:
			return nil, errors.Newf("unexpected %q at offset %d", t, dec.InputOffset())
		}
	case string:
		return String(t), nil
	case json.Number:
		return Number(t.String()), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	default:
		return nil, errors.Newf("unexpected token %v", t)
	}
}

func decodeJSONObject(dec *json.Decoder) (Value, error) {
	m := NewMapping()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.Newf("object key %v is not a string", tok)
		}
		v, err := decodeJSONValue(dec)
		if err != nil {
			return nil, errors.Wrapf(err, "key %q", key)
		}
		m.set(String(key), v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeJSONArray(dec *json.Decoder) (Value, error) {
	var items []Value
	for dec.More() {
		v, err := decodeJSONValue(dec)
		if err != nil {
			return nil, errors.Wrapf(err, "index %d", len(items))
		}
		items = append(items, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return NewSequence(items...), nil
}
