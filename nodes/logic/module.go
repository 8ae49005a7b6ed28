// Package logic provides the "logic.*" node family. Every truth test in this
// family uses loose truthiness: any non-empty string counts as true.
package logic

import (
	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/registry"
)

const category = "logic"

// Module implements the registry.Module interface for this package.
type Module struct{}

func def(op, description string) node.Definition {
	return node.Definition{Type: category + "." + op, Category: category, Description: description}
}

// Register registers every logic node with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFunc(def("and", "True when every value is truthy"), And)
	r.RegisterFunc(def("or", "True when any value is truthy"), Or)
	r.RegisterFunc(def("xor", "True when an odd number of values are truthy"), Xor)
	r.RegisterFunc(def("not", "Negate the truthiness of a value"), Not)
	r.RegisterFunc(def("equals", "Structural equality of a and b"), Equals)
	r.RegisterFunc(def("not_equals", "Structural inequality of a and b"), NotEquals)
	r.RegisterFunc(def("gt", "a greater than b, numerically"), GreaterThan)
	r.RegisterFunc(def("gte", "a greater than or equal to b, numerically"), GreaterOrEqual)
	r.RegisterFunc(def("lt", "a less than b, numerically"), LessThan)
	r.RegisterFunc(def("lte", "a less than or equal to b, numerically"), LessOrEqual)
	r.RegisterFunc(def("if", "Select then or else depending on a condition"), If)
}
