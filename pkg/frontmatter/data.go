package frontmatter

import (
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// PathSeparator separates the segments of a dot path.
const PathSeparator = "."

// Data is the decoded content of a front matter block: a read-only mapping
// whose top-level keys are all strings.
//
// Values are looked up with Has and Get using either a plain key or a dot
// path such as "head.meta.author". A path is always split on dots and
// resolved one nested mapping at a time; a key that literally contains dots
// is never matched by a dotted path.
type Data struct {
	m Mapping
}

// EmptyData returns Data without entries.
func EmptyData() Data {
	return Data{m: NewMapping()}
}

// FromMapping returns Data backed by m. It fails with ErrInvalidKeys when any
// top-level key of m is not a String.
func FromMapping(m Mapping) (Data, error) {
	for _, e := range m.entries {
		if _, ok := e.Key.(String); !ok {
			return Data{}, errors.Wrapf(ErrInvalidKeys, "key %s is a %s", KeyText(e.Key), e.Key.Kind())
		}
	}
	return Data{m: m}, nil
}

// FromMap returns Data converted from a native Go map. It fails with
// ErrInvalidKeys when any key is not a string, which is always the case for
// maps with non-string key types. Entries are ordered by key.
func FromMap[K comparable](m map[K]any) (Data, error) {
	for k := range m {
		if _, ok := any(k).(string); !ok {
			return Data{}, errors.Wrapf(ErrInvalidKeys, "key %v is a %T", k, k)
		}
	}
	v, err := ValueOf(m)
	if err != nil {
		return Data{}, err
	}
	mapping, ok := v.(Mapping)
	if !ok {
		return EmptyData(), nil
	}
	return FromMapping(mapping)
}

// Has reports whether path resolves to a value. It never fails.
func (d Data) Has(path string) bool {
	_, ok := d.lookup(path)
	return ok
}

// Get returns the value path resolves to. The value is returned as-is,
// whatever its kind. If the path does not resolve, the error is a
// *KeyNotFoundError matching ErrKeyNotFound.
func (d Data) Get(path string) (Value, error) {
	v, ok := d.lookup(path)
	if !ok {
		return nil, &KeyNotFoundError{Path: path}
	}
	return v, nil
}

// lookup walks path one segment at a time. Every segment before the last
// must land on a Mapping.
func (d Data) lookup(path string) (Value, bool) {
	var current Value = d.m
	for segment := range strings.SplitSeq(path, PathSeparator) {
		m, ok := current.(Mapping)
		if !ok {
			return nil, false
		}
		current, ok = m.Get(segment)
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Mapping returns the underlying mapping unmodified.
func (d Data) Mapping() Mapping {
	return d.m
}

// Len returns the number of top-level entries.
func (d Data) Len() int {
	return d.m.Len()
}

// IsEmpty reports whether there are no entries.
func (d Data) IsEmpty() bool {
	return d.m.Len() == 0
}

// Keys returns the top-level keys in insertion order.
func (d Data) Keys() []string {
	keys := make([]string, 0, d.m.Len())
	for _, e := range d.m.entries {
		keys = append(keys, string(e.Key.(String)))
	}
	return keys
}

// Paths returns every dot path that Get resolves, depth first in insertion
// order. Keys containing the separator are skipped since no path can reach
// them, and so is everything below a non-string key.
func (d Data) Paths() []string {
	var paths []string
	var walk func(prefix string, m Mapping)
	walk = func(prefix string, m Mapping) {
		for _, e := range m.entries {
			key, ok := e.Key.(String)
			if !ok || strings.Contains(string(key), PathSeparator) {
				continue
			}
			path := string(key)
			if prefix != "" {
				path = prefix + PathSeparator + path
			}
			paths = append(paths, path)
			if nested, ok := e.Value.(Mapping); ok {
				walk(path, nested)
			}
		}
	}
	walk("", d.m)
	return paths
}

// ToMap returns the data as plain Go values. See Value.Native.
func (d Data) ToMap() map[string]any {
	return d.m.Native().(map[string]any)
}

// Decode stores the data in the value pointed to by out, following yaml
// struct tags.
func (d Data) Decode(out any) error {
	raw, err := yaml.Marshal(d.ToMap())
	if err != nil {
		return errors.Wrap(err, "marshaling front matter data")
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return errors.Wrap(err, "decoding front matter data")
	}
	return nil
}

// Equal reports whether d and other hold the same entries, in any order.
func (d Data) Equal(other Data) bool {
	return Equal(d.m, other.m)
}

