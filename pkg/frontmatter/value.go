package frontmatter

import (
	"encoding/json"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// Kind identifies the shape of a decoded Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is a decoded front matter value. The set of implementations is
// closed: Null, Bool, Number, String, Sequence and Mapping. Use a type
// switch to inspect one.
type Value interface {
	// Kind reports which variant the value is.
	Kind() Kind
	// Native converts the value into plain Go types: nil, bool, int64,
	// uint64, float64, string, []any and map[string]any.
	Native() any

	isValue()
}

// Null is the absent value (YAML ~, JSON null).
type Null struct{}

func (Null) Kind() Kind  { return KindNull }
func (Null) Native() any { return nil }
func (Null) isValue()    {}

// Bool is a boolean value.
type Bool bool

func (Bool) Kind() Kind    { return KindBool }
func (b Bool) Native() any { return bool(b) }
func (Bool) isValue()      {}

// String is a text value.
type String string

func (String) Kind() Kind    { return KindString }
func (s String) Native() any { return string(s) }
func (String) isValue()      {}

// Number is a numeric value stored as its canonical decimal text, so
// integers of any width and floats keep their precision.
type Number string

// NumberFromInt returns the Number for i.
func NumberFromInt(i int64) Number {
	return Number(strconv.FormatInt(i, 10))
}

// NumberFromUint returns the Number for u.
func NumberFromUint(u uint64) Number {
	return Number(strconv.FormatUint(u, 10))
}

// NumberFromFloat returns the Number for f. The text always reads back as a
// float, so 3.0 stays distinguishable from 3.
func NumberFromFloat(f float64) Number {
	return Number(formatFloat(f, 64))
}

func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}

func (Number) Kind() Kind { return KindNumber }
func (Number) isValue()   {}

// Native returns an int64 when the number is an integer that fits, a uint64
// for larger unsigned integers, and a float64 otherwise.
func (n Number) Native() any {
	if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(string(n), 10, 64); err == nil {
		return u
	}
	if f, err := strconv.ParseFloat(string(n), 64); err == nil {
		return f
	}
	return string(n)
}

// String returns the number's text.
func (n Number) String() string {
	return string(n)
}

// Int64 returns the number as an int64. It fails for non-integers and
// integers out of range.
func (n Number) Int64() (int64, error) {
	i, err := strconv.ParseInt(string(n), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "number %s is not an int64", string(n))
	}
	return i, nil
}

// Float64 returns the number as a float64.
func (n Number) Float64() (float64, error) {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "number %s is not a float64", string(n))
	}
	return f, nil
}

// Sequence is an ordered, read-only list of values.
type Sequence struct {
	items []Value
}

// NewSequence returns a Sequence holding a copy of items. Nil items become
// Null.
func NewSequence(items ...Value) Sequence {
	s := Sequence{items: make([]Value, len(items))}
	for i, v := range items {
		if v == nil {
			v = Null{}
		}
		s.items[i] = v
	}
	return s
}

func (Sequence) Kind() Kind { return KindSequence }
func (Sequence) isValue()   {}

func (s Sequence) Native() any {
	out := make([]any, len(s.items))
	for i, v := range s.items {
		out[i] = v.Native()
	}
	return out
}

// Len returns the number of items.
func (s Sequence) Len() int {
	return len(s.items)
}

// At returns the item at index i. It panics if i is out of range.
func (s Sequence) At(i int) Value {
	return s.items[i]
}

// Items returns a copy of the items.
func (s Sequence) Items() []Value {
	return slices.Clone(s.items)
}

// All iterates over the items with their indexes.
func (s Sequence) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Entry is a single key/value pair of a Mapping.
type Entry struct {
	Key   Value
	Value Value
}

// Mapping is a read-only, insertion-ordered collection of key/value pairs.
// Keys are usually String, but decoders may produce other scalar keys; such
// keys are kept so callers can reject them. Lookups by string only match
// String keys.
type Mapping struct {
	entries []Entry
	index   map[string]int
}

// NewMapping returns a Mapping holding entries in order. A later entry with
// the same key replaces the value of the earlier one and keeps its position.
func NewMapping(entries ...Entry) Mapping {
	m := Mapping{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		m.set(e.Key, e.Value)
	}
	return m
}

func (m *Mapping) set(k, v Value) {
	if k == nil {
		k = Null{}
	}
	if v == nil {
		v = Null{}
	}
	id := keyID(k)
	if i, ok := m.index[id]; ok {
		m.entries[i].Value = v
		return
	}
	m.index[id] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: k, Value: v})
}

func (Mapping) Kind() Kind { return KindMapping }
func (Mapping) isValue()   {}

// Native returns a map[string]any. Non-string keys are rendered as text
// with KeyText. When that text equals a String key of the same mapping,
// such as Number("1") next to String("1"), the String key's entry is kept
// and the other is left out; among non-string keys the later entry wins.
func (m Mapping) Native() any {
	out := make(map[string]any, len(m.entries))
	for _, e := range m.entries {
		if _, ok := e.Key.(String); !ok {
			out[KeyText(e.Key)] = e.Value.Native()
		}
	}
	for _, e := range m.entries {
		if k, ok := e.Key.(String); ok {
			out[string(k)] = e.Value.Native()
		}
	}
	return out
}

// Len returns the number of entries.
func (m Mapping) Len() int {
	return len(m.entries)
}

// Get returns the value stored under the string key.
func (m Mapping) Get(key string) (Value, bool) {
	i, ok := m.index[keyID(String(key))]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Entries returns a copy of the entries in insertion order.
func (m Mapping) Entries() []Entry {
	return slices.Clone(m.entries)
}

// Keys returns the keys in insertion order.
func (m Mapping) Keys() []Value {
	keys := make([]Value, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// All iterates over the entries in insertion order.
func (m Mapping) All() iter.Seq2[Value, Value] {
	return func(yield func(Value, Value) bool) {
		for _, e := range m.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// HasStringKeys reports whether every key is a String.
func (m Mapping) HasStringKeys() bool {
	for _, e := range m.entries {
		if _, ok := e.Key.(String); !ok {
			return false
		}
	}
	return true
}

// KeyText renders a mapping key as text. Strings are returned as-is.
func KeyText(k Value) string {
	switch k := k.(type) {
	case String:
		return string(k)
	case Number:
		return string(k)
	case Bool:
		return strconv.FormatBool(bool(k))
	case Null, nil:
		return "null"
	default:
		return fmt.Sprint(k.Native())
	}
}

// keyID identifies a key inside a Mapping index. The kind prefix keeps
// String("1") and Number("1") apart.
func keyID(k Value) string {
	switch k := k.(type) {
	case String:
		return "s\x00" + string(k)
	case Number:
		return "n\x00" + string(k)
	case Bool:
		return "b\x00" + strconv.FormatBool(bool(k))
	case Null:
		return "z\x00"
	default:
		return "c\x00" + fmt.Sprint(k.Native())
	}
}

// Equal reports whether a and b hold the same value. Mappings compare
// without regard to key order.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bb, ok := b.(Bool)
		return ok && a == bb
	case String:
		bs, ok := b.(String)
		return ok && a == bs
	case Number:
		bn, ok := b.(Number)
		if !ok {
			return false
		}
		if a == bn {
			return true
		}
		af, aerr := a.Float64()
		bf, berr := bn.Float64()
		return aerr == nil && berr == nil && af == bf
	case Sequence:
		bs, ok := b.(Sequence)
		if !ok || a.Len() != bs.Len() {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], bs.items[i]) {
				return false
			}
		}
		return true
	case Mapping:
		bm, ok := b.(Mapping)
		if !ok || a.Len() != bm.Len() {
			return false
		}
		for _, e := range a.entries {
			i, ok := bm.index[keyID(e.Key)]
			if !ok || !Equal(e.Value, bm.entries[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ValueOf converts a native Go value, such as the output of a generic
// decoder, into a Value. Maps are converted with their keys in sorted order
// because Go maps carry no order of their own.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return NumberFromInt(int64(x)), nil
	case int8:
		return NumberFromInt(int64(x)), nil
	case int16:
		return NumberFromInt(int64(x)), nil
	case int32:
		return NumberFromInt(int64(x)), nil
	case int64:
		return NumberFromInt(x), nil
	case uint:
		return NumberFromUint(uint64(x)), nil
	case uint8:
		return NumberFromUint(uint64(x)), nil
	case uint16:
		return NumberFromUint(uint64(x)), nil
	case uint32:
		return NumberFromUint(uint64(x)), nil
	case uint64:
		return NumberFromUint(x), nil
	case float32:
		return Number(formatFloat(float64(x), 32)), nil
	case float64:
		return NumberFromFloat(x), nil
	case json.Number:
		return Number(x.String()), nil
	case time.Time:
		return String(x.Format(time.RFC3339Nano)), nil
	case []any:
		items := make([]Value, len(x))
		for i, item := range x {
			iv, err := ValueOf(item)
			if err != nil {
				return nil, errors.Wrapf(err, "index %d", i)
			}
			items[i] = iv
		}
		return Sequence{items: items}, nil
	case fmt.Stringer:
		return String(x.String()), nil
	}
	return valueOfReflect(reflect.ValueOf(v))
}

func valueOfReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NumberFromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return NumberFromUint(rv.Uint()), nil
	case reflect.Float32:
		return Number(formatFloat(rv.Float(), 32)), nil
	case reflect.Float64:
		return NumberFromFloat(rv.Float()), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null{}, nil
		}
		return ValueOf(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null{}, nil
		}
		items := make([]Value, rv.Len())
		for i := range rv.Len() {
			iv, err := ValueOf(rv.Index(i).Interface())
			if err != nil {
				return nil, errors.Wrapf(err, "index %d", i)
			}
			items[i] = iv
		}
		return Sequence{items: items}, nil
	case reflect.Map:
		entries := make([]Entry, 0, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			k, err := ValueOf(it.Key().Interface())
			if err != nil {
				return nil, errors.Wrap(err, "map key")
			}
			val, err := ValueOf(it.Value().Interface())
			if err != nil {
				return nil, errors.Wrapf(err, "key %s", KeyText(k))
			}
			entries = append(entries, Entry{Key: k, Value: val})
		}
		slices.SortFunc(entries, func(a, b Entry) int {
			return strings.Compare(keyID(a.Key), keyID(b.Key))
		})
		return NewMapping(entries...), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedValue, "%T", rv.Interface())
	}
}
