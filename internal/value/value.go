package value

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindObject
)

// String returns the name used for the kind in node outputs (see convert.type_of).
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}

// Value is the closed dynamic value type.
type Value interface {
	Kind() Kind
	sealed()
}

// Null is the absent value.
type Null struct{}

// Bool is a boolean value.
type Bool bool

// Number is a double precision floating point value.
type Number float64

// String is a text value.
type String string

// List is an ordered sequence of values.
type List []Value

// Object maps unique string keys to values. Key order carries no meaning.
type Object map[string]Value

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (List) Kind() Kind   { return KindList }
func (Object) Kind() Kind { return KindObject }

func (Null) sealed()   {}
func (Bool) sealed()   {}
func (Number) sealed() {}
func (String) sealed() {}
func (List) sealed()   {}
func (Object) sealed() {}

// Normalize maps a nil interface to Null and returns any other value unchanged.
func Normalize(v Value) Value {
	if v == nil {
		return Null{}
	}
	return v
}

// KindOf reports the kind of v, treating nil as Null.
func KindOf(v Value) Kind {
	return Normalize(v).Kind()
}

// IsNull reports whether v is Null or nil.
func IsNull(v Value) bool {
	return KindOf(v) == KindNull
}

// Strings builds a List of String values.
func Strings(items ...string) List {
	out := make(List, len(items))
	for i, s := range items {
		out[i] = String(s)
	}
	return out
}

// Numbers builds a List of Number values.
func Numbers(items ...float64) List {
	out := make(List, len(items))
	for i, f := range items {
		out[i] = Number(f)
	}
	return out
}

// Keys returns the keys of o in no particular order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	return keys
}

// Clone returns a shallow copy of l. Elements are shared, which is safe
// because values are never mutated in place.
func (l List) Clone() List {
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Clone returns a shallow copy of o.
func (o Object) Clone() Object {
	out := make(Object, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}
