package value

import (
	"bytes"
	"fmt"
	"math"

	"github.com/segmentio/encoding/json"
)

// ToNative converts v into the plain Go shapes produced by a JSON decoder:
// nil, bool, float64, string, []any and map[string]any. NaN and infinite
// numbers have no JSON form and become nil.
func ToNative(v Value) any {
	switch tv := Normalize(v).(type) {
	case Bool:
		return bool(tv)
	case Number:
		f := float64(tv)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f
	case String:
		return string(tv)
	case List:
		out := make([]any, len(tv))
		for i, item := range tv {
			out[i] = ToNative(item)
		}
		return out
	case Object:
		out := make(map[string]any, len(tv))
		for k, item := range tv {
			out[k] = ToNative(item)
		}
		return out
	default:
		return nil
	}
}

// FromNative converts decoded Go data into a Value. It accepts the shapes
// produced by a JSON decoder plus the common integer and string container
// types used by tests and the CLI.
func FromNative(x any) (Value, error) {
	switch tx := x.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return Normalize(tx), nil
	case bool:
		return Bool(tx), nil
	case float64:
		return Number(tx), nil
	case float32:
		return Number(tx), nil
	case int:
		return Number(tx), nil
	case int32:
		return Number(tx), nil
	case int64:
		return Number(tx), nil
	case json.Number:
		f, err := tx.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", tx.String(), err)
		}
		return Number(f), nil
	case string:
		return String(tx), nil
	case []string:
		return Strings(tx...), nil
	case []any:
		out := make(List, len(tx))
		for i, item := range tx {
			v, err := FromNative(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = v
		}
		return out, nil
	case map[string]any:
		out := make(Object, len(tx))
		for k, item := range tx {
			v, err := FromNative(item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			out[k] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported go type %T", x)
	}
}

// Marshal renders v as compact JSON text. Object keys are emitted in sorted
// order, so equal values always produce identical text.
// Characters such as <, > and & are written as is.
func Marshal(v Value) ([]byte, error) {
	return json.Append(nil, ToNative(v), json.SortMapKeys)
}

// MarshalIndent is like Marshal but indents nested values with two spaces.
func MarshalIndent(v Value) ([]byte, error) {
	b, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Parse decodes JSON text into a Value.
func Parse(data []byte) (Value, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return FromNative(raw)
}

// ParseObject decodes JSON text that must hold an object. Empty input yields
// an empty Object.
func ParseObject(data []byte) (Object, error) {
	if len(data) == 0 {
		return Object{}, nil
	}
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(Object)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %s", v.Kind())
	}
	return obj, nil
}
