package node

import "github.com/vk/gridnodes/internal/value"

const (
	// ResultKey is the conventional primary output key.
	ResultKey = "result"
	// ErrorKey carries the message of a domain failure.
	ErrorKey = "error"
)

// Outputs holds the named results of one invocation. It is never empty.
type Outputs map[string]value.Value

// Result builds the success output {"result": v}.
func Result(v value.Value) Outputs {
	return Outputs{ResultKey: value.Normalize(v)}
}

// Fail builds the failure output: the primary key holds sentinel and "error"
// holds msg.
func Fail(sentinel value.Value, msg string) Outputs {
	return Outputs{
		ResultKey: value.Normalize(sentinel),
		ErrorKey:  value.String(msg),
	}
}

// With returns o with key set to v. It mutates and returns o so calls can be
// chained on a freshly built map.
func (o Outputs) With(key string, v value.Value) Outputs {
	o[key] = value.Normalize(v)
	return o
}

// WithError sets the "error" key.
func (o Outputs) WithError(msg string) Outputs {
	return o.With(ErrorKey, value.String(msg))
}

// Error returns the failure message, if any.
func (o Outputs) Error() (string, bool) {
	v, ok := o[ErrorKey]
	if !ok {
		return "", false
	}
	s, _ := v.(value.String)
	return string(s), true
}

// Result returns the primary output or Null.
func (o Outputs) Result() value.Value {
	return value.Normalize(o[ResultKey])
}

// Object returns o as a value.Object.
func (o Outputs) Object() value.Object {
	out := make(value.Object, len(o))
	for k, v := range o {
		out[k] = value.Normalize(v)
	}
	return out
}
