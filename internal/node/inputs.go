package node

import (
	"maps"

	"github.com/vk/gridnodes/internal/coerce"
	"github.com/vk/gridnodes/internal/value"
)

// Inputs holds the named arguments of one invocation. Any key may be absent.
type Inputs map[string]value.Value

// Get returns the raw input and whether it was supplied.
func (in Inputs) Get(key string) (value.Value, bool) {
	v, ok := in[key]
	if !ok {
		return nil, false
	}
	return value.Normalize(v), true
}

// Value returns the input or Null when absent.
func (in Inputs) Value(key string) value.Value {
	v, ok := in.Get(key)
	if !ok {
		return value.Null{}
	}
	return v
}

// Alias returns the inputs with key taken from the first supplied alias when
// key itself is absent. The receiver is never modified.
func (in Inputs) Alias(key string, aliases ...string) Inputs {
	if _, ok := in[key]; ok {
		return in
	}
	for _, a := range aliases {
		v, ok := in[a]
		if !ok {
			continue
		}
		out := make(Inputs, len(in)+1)
		maps.Copy(out, in)
		out[key] = v
		return out
	}
	return in
}

// Number returns the input coerced to a number, or def when absent.
func (in Inputs) Number(key string, def float64) float64 {
	v, ok := in.Get(key)
	if !ok {
		return def
	}
	return coerce.ToNumber(v)
}

// Int returns the input coerced to an int, or def when absent.
func (in Inputs) Int(key string, def int) int {
	v, ok := in.Get(key)
	if !ok {
		return def
	}
	return coerce.ToInt(v)
}

// String returns the input coerced to text, or def when absent.
func (in Inputs) String(key, def string) string {
	v, ok := in.Get(key)
	if !ok {
		return def
	}
	return coerce.ToString(v)
}

// Bool returns the input under strict truthiness, or def when absent.
func (in Inputs) Bool(key string, def bool) bool {
	v, ok := in.Get(key)
	if !ok {
		return def
	}
	return coerce.ToBool(v)
}

// Truthy returns the input under loose truthiness; absent is false.
func (in Inputs) Truthy(key string) bool {
	return coerce.ToBoolLoose(in.Value(key))
}

// List returns the input coerced to a list; absent is empty.
func (in Inputs) List(key string) value.List {
	return coerce.ToList(in.Value(key))
}

// Numbers returns the input coerced to a list of numbers.
func (in Inputs) Numbers(key string) []float64 {
	items := in.List(key)
	out := make([]float64, len(items))
	for i, item := range items {
		out[i] = coerce.ToNumber(item)
	}
	return out
}

// Object returns the input coerced to an object; absent is empty.
func (in Inputs) Object(key string) value.Object {
	return coerce.ToObject(in.Value(key))
}

// Text returns the input only when it holds a String.
func (in Inputs) Text(key string) (string, bool) {
	s, ok := in[key].(value.String)
	return string(s), ok
}
