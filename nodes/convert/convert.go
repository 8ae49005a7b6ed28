package convert

import (
	"github.com/vk/gridnodes/internal/coerce"
	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/value"
	"github.com/vk/gridnodes/internal/varstore"
)

const valueKey = "value"

// ToBool applies strict truthiness to "value".
func ToBool(in node.Inputs, _ varstore.Reader) node.Outputs {
	return node.Result(value.Bool(coerce.ToBool(in.Value(valueKey))))
}

// ToNumber converts "value" to a number.
func ToNumber(in node.Inputs, _ varstore.Reader) node.Outputs {
	return node.Result(value.Number(coerce.ToNumber(in.Value(valueKey))))
}

// ToString converts "value" to text.
func ToString(in node.Inputs, _ varstore.Reader) node.Outputs {
	return node.Result(value.String(coerce.ToString(in.Value(valueKey))))
}

// ToList converts "value" to a list.
func ToList(in node.Inputs, _ varstore.Reader) node.Outputs {
	return node.Result(coerce.ToList(in.Value(valueKey)))
}

// ToObject converts "value" to an object; malformed pairs are skipped.
func ToObject(in node.Inputs, _ varstore.Reader) node.Outputs {
	return node.Result(coerce.ToObject(in.Value(valueKey)))
}

// ToJSON serializes "value", indented when the "pretty" flag is set.
func ToJSON(in node.Inputs, _ varstore.Reader) node.Outputs {
	v := in.Value(valueKey)
	marshal := value.Marshal
	if in.Bool("pretty", false) {
		marshal = value.MarshalIndent
	}
	text, err := marshal(v)
	if err != nil {
		return node.Fail(value.String(""), "serialization failed: "+err.Error())
	}
	return node.Result(value.String(text))
}

// ParseJSON decodes the "input" text. Invalid text yields Null and an error.
func ParseJSON(in node.Inputs, _ varstore.Reader) node.Outputs {
	v, err := value.Parse([]byte(in.String("input", "")))
	if err != nil {
		return node.Fail(value.Null{}, "invalid json: "+err.Error())
	}
	return node.Result(v)
}

// TypeOf names the variant of "value".
func TypeOf(in node.Inputs, _ varstore.Reader) node.Outputs {
	return node.Result(value.String(value.KindOf(in.Value(valueKey)).String()))
}
