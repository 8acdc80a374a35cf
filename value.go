package driftdiff

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/goccy/go-yaml"
)

// Kind defines all of the atoms in our universe, or the types of data we
// will encounter while comparing two documents
type Kind uint8

const (
	// KindInvalid is the zero Value, outside the document universe.
	// it should never appear in a decoded tree
	KindInvalid Kind = iota
	// KindNull is the null / absent value
	KindNull
	// KindBool is true or false. bool is its own kind on purpose: a
	// document that changes true to 1 has changed shape, even in
	// ecosystems where booleans compare equal to numbers
	KindBool
	// KindNumber is any numeric value. integers and floats from the
	// source document are unified into float64 so that numeric tolerance
	// applies across the int/float divide
	KindNumber
	// KindString is a text value
	KindString
	// KindArray is an ordered list of values
	KindArray
	// KindObject is a set of key/value fields with unique keys
	KindObject
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
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is an immutable tagged union over the document kinds. the zero
// Value has KindInvalid; every constructor and decoder produces a valid one
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  []Field
}

// Field is one key/value pair of an object
type Field struct {
	Key   string
	Value Value
}

// Null returns the null value
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric value
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String returns a text value
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns an array value holding elems in order
func Array(elems ...Value) Value {
	return Value{kind: KindArray, arr: elems}
}

// Object returns an object value. fields are stored sorted by key so that
// iteration order, and with it record order, is reproducible regardless of
// the order the decoder handed us keys in
func Object(fields ...Field) Value {
	sorted := make([]Field, len(fields))
	copy(sorted, fields)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
	return Value{kind: KindObject, obj: sorted}
}

// Kind reports which member of the union this value is
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload. meaningful only for KindBool
func (v Value) Bool() bool { return v.b }

// Float returns the numeric payload. meaningful only for KindNumber
func (v Value) Float() float64 { return v.n }

// Text returns the string payload. meaningful only for KindString
func (v Value) Text() string { return v.s }

// Len returns the element count for arrays, the field count for objects,
// and zero for everything else
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Elems returns the elements of an array value
func (v Value) Elems() []Value { return v.arr }

// Fields returns the fields of an object value, sorted by key
func (v Value) Fields() []Field { return v.obj }

// Field returns the value stored under key, if present
func (v Value) Field(key string) (Value, bool) {
	i := sort.Search(len(v.obj), func(i int) bool { return v.obj[i].Key >= key })
	if i < len(v.obj) && v.obj[i].Key == key {
		return v.obj[i].Value, true
	}
	return Value{}, false
}

// Equal reports strict deep equality of two values. numbers are compared
// exactly here; tolerance belongs to Compare, not to the data model
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.n == o.n
	case KindString:
		return v.s == o.s
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(o.obj) {
			return false
		}
		for i := range v.obj {
			if v.obj[i].Key != o.obj[i].Key || !v.obj[i].Value.Equal(o.obj[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders a display form of the value: literals for scalars, compact
// JSON for arrays and objects
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return formatNumber(v.n)
	case KindString:
		return v.s
	case KindArray, KindObject:
		data, err := json.Marshal(v.Interface())
		if err != nil {
			return fmt.Sprintf("<%s>", v.kind)
		}
		return string(data)
	default:
		return "<invalid>"
	}
}

// Interface converts the value back to the generic Go form produced by
// encoding/json: nil, bool, float64, string, []interface{},
// map[string]interface{}
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindArray:
		out := make([]interface{}, len(v.arr))
		for i, el := range v.arr {
			out[i] = el.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]interface{}, len(v.obj))
		for _, f := range v.obj {
			out[f.Key] = f.Value.Interface()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON encodes the value as the document fragment it represents
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// FromGo converts a generic decoded document, the kind of tree produced by
// unmarshaling JSON or YAML into interface{}, to a Value. all integer types
// widen to float64. unsupported types return an error rather than a panic
func FromGo(v interface{}) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int:
		return Number(float64(x)), nil
	case int8:
		return Number(float64(x)), nil
	case int16:
		return Number(float64(x)), nil
	case int32:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint:
		return Number(float64(x)), nil
	case uint8:
		return Number(float64(x)), nil
	case uint16:
		return Number(float64(x)), nil
	case uint32:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("numeric value %q: %w", x.String(), err)
		}
		return Number(f), nil
	case string:
		return String(x), nil
	case []interface{}:
		elems := make([]Value, len(x))
		for i, el := range x {
			ev, err := FromGo(el)
			if err != nil {
				return Value{}, err
			}
			elems[i] = ev
		}
		return Array(elems...), nil
	case map[string]interface{}:
		fields := make([]Field, 0, len(x))
		for key, el := range x {
			ev, err := FromGo(el)
			if err != nil {
				return Value{}, err
			}
			fields = append(fields, Field{Key: key, Value: ev})
		}
		return Object(fields...), nil
	case map[interface{}]interface{}:
		// some YAML decoders produce interface-keyed maps
		fields := make([]Field, 0, len(x))
		for key, el := range x {
			ks, ok := key.(string)
			if !ok {
				return Value{}, fmt.Errorf("unsupported object key type: %T", key)
			}
			ev, err := FromGo(el)
			if err != nil {
				return Value{}, err
			}
			fields = append(fields, Field{Key: ks, Value: ev})
		}
		return Object(fields...), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type: %T", v)
	}
}

// ParseJSON decodes a JSON document into a Value
func ParseJSON(data []byte) (Value, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return Value{}, err
	}
	return FromGo(v)
}

// ParseYAML decodes a YAML document into a Value
func ParseYAML(data []byte) (Value, error) {
	var v interface{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Value{}, err
	}
	return FromGo(v)
}

// formatNumber renders a float with the shortest representation that
// round-trips, so messages read "3" and "2.5" rather than "3.000000"
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
