package value

import (
	"math"

	"github.com/zclconf/go-cty/cty"
)

// FromCty converts a cty value, as produced by HCL expression evaluation, into
// a Value. Null, unknown and marked-null values become Null. Sets are
// flattened into Lists in cty's canonical element order.
func FromCty(v cty.Value) Value {
	if v == cty.NilVal {
		return Null{}
	}
	v, _ = v.UnmarkDeep()
	if v.IsNull() || !v.IsKnown() {
		return Null{}
	}
	ty := v.Type()

	switch {
	case ty == cty.String:
		return String(v.AsString())
	case ty == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return Number(f)
	case ty == cty.Bool:
		return Bool(v.True())
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := make(List, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, elem := it.Element()
			out = append(out, FromCty(elem))
		}
		return out
	case ty.IsMapType() || ty.IsObjectType():
		out := make(Object)
		it := v.ElementIterator()
		for it.Next() {
			key, elem := it.Element()
			out[key.AsString()] = FromCty(elem)
		}
		return out
	default:
		return Null{}
	}
}

// ToCty converts v into a cty value. Lists become tuples and Objects become
// objects so heterogeneous content survives without type unification.
func ToCty(v Value) cty.Value {
	switch tv := Normalize(v).(type) {
	case Bool:
		return cty.BoolVal(bool(tv))
	case Number:
		f := float64(tv)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return cty.NullVal(cty.DynamicPseudoType)
		}
		return cty.NumberFloatVal(f)
	case String:
		return cty.StringVal(string(tv))
	case List:
		if len(tv) == 0 {
			return cty.EmptyTupleVal
		}
		elems := make([]cty.Value, len(tv))
		for i, item := range tv {
			elems[i] = ToCty(item)
		}
		return cty.TupleVal(elems)
	case Object:
		if len(tv) == 0 {
			return cty.EmptyObjectVal
		}
		attrs := make(map[string]cty.Value, len(tv))
		for k, item := range tv {
			attrs[k] = ToCty(item)
		}
		return cty.ObjectVal(attrs)
	default:
		return cty.NullVal(cty.DynamicPseudoType)
	}
}
