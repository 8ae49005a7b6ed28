// Package arith provides the "math.*" node family. Operand lists are read
// from the "numbers" input, or "values" when it is absent, and coerced element
// by element.
package arith

import (
	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/registry"
)

const category = "math"

// Module implements the registry.Module interface for this package.
type Module struct{}

func def(op, description string) node.Definition {
	return node.Definition{Type: category + "." + op, Category: category, Description: description}
}

// Register registers every math node with the registry.
func (m *Module) Register(r *registry.Registry) {
	add := func(d node.Definition, fn node.ExecuteFunc) {
		r.RegisterFunc(d, node.WithAliases(fn, numbersKey, "values"))
	}
	add(def("add", "Sum a list of numbers"), Add)
	add(def("subtract", "Subtract the remaining numbers from the first"), Subtract)
	add(def("multiply", "Multiply a list of numbers"), Multiply)
	add(def("divide", "Divide the first number by the remaining numbers"), Divide)
	add(def("modulo", "Floating point remainder of a divided by b"), Modulo)
	add(def("power", "Raise base to exponent"), Power)
	add(def("sqrt", "Square root of a number"), Sqrt)
	add(def("abs", "Absolute value of a number"), Abs)
	add(def("floor", "Round a number down"), Floor)
	add(def("ceil", "Round a number up"), Ceil)
	add(def("round", "Round a number to a number of decimals"), Round)
	add(def("min", "Smallest of a list of numbers"), Min)
	add(def("max", "Largest of a list of numbers"), Max)
}
