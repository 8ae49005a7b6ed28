package logic

import (
	"github.com/vk/gridnodes/internal/coerce"
	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/value"
	"github.com/vk/gridnodes/internal/varstore"
)

func boolean(b bool) node.Outputs {
	return node.Result(value.Bool(b))
}

// countTruthy returns how many of "values" are truthy and how many there are.
func countTruthy(in node.Inputs) (truthy, total int) {
	values := in.List("values")
	for _, v := range values {
		if coerce.ToBoolLoose(v) {
			truthy++
		}
	}
	return truthy, len(values)
}

// And is true when every element of "values" is truthy; an empty list is true.
func And(in node.Inputs, _ varstore.Reader) node.Outputs {
	truthy, total := countTruthy(in)
	return boolean(truthy == total)
}

// Or is true when any element of "values" is truthy.
func Or(in node.Inputs, _ varstore.Reader) node.Outputs {
	truthy, _ := countTruthy(in)
	return boolean(truthy > 0)
}

// Xor is true when an odd number of "values" are truthy.
func Xor(in node.Inputs, _ varstore.Reader) node.Outputs {
	truthy, _ := countTruthy(in)
	return boolean(truthy%2 == 1)
}

// Not negates "value".
func Not(in node.Inputs, _ varstore.Reader) node.Outputs {
	return boolean(!in.Truthy("value"))
}

// Equals compares "a" and "b" structurally; absent inputs are Null.
func Equals(in node.Inputs, _ varstore.Reader) node.Outputs {
	return boolean(value.Equal(in.Value("a"), in.Value("b")))
}

// NotEquals is the negation of Equals.
func NotEquals(in node.Inputs, _ varstore.Reader) node.Outputs {
	return boolean(!value.Equal(in.Value("a"), in.Value("b")))
}

func compare(in node.Inputs, fn func(a, b float64) bool) node.Outputs {
	return boolean(fn(in.Number("a", 0), in.Number("b", 0)))
}

// GreaterThan reports a > b.
func GreaterThan(in node.Inputs, _ varstore.Reader) node.Outputs {
	return compare(in, func(a, b float64) bool { return a > b })
}

// GreaterOrEqual reports a >= b.
func GreaterOrEqual(in node.Inputs, _ varstore.Reader) node.Outputs {
	return compare(in, func(a, b float64) bool { return a >= b })
}

// LessThan reports a < b.
func LessThan(in node.Inputs, _ varstore.Reader) node.Outputs {
	return compare(in, func(a, b float64) bool { return a < b })
}

// LessOrEqual reports a <= b.
func LessOrEqual(in node.Inputs, _ varstore.Reader) node.Outputs {
	return compare(in, func(a, b float64) bool { return a <= b })
}

// If returns "then" when "condition" is truthy and "else" otherwise.
func If(in node.Inputs, _ varstore.Reader) node.Outputs {
	if in.Truthy("condition") {
		return node.Result(in.Value("then"))
	}
	return node.Result(in.Value("else"))
}
