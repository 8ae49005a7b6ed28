// Package list provides the "list.*" node family. The subject list is read
// from the "list" key, or "array" when it is absent, and coerced with coerce.ToList, so a string input is
// treated as its list of characters.
package list

import (
	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/registry"
)

const category = "list"

// Module implements the registry.Module interface for this package.
type Module struct{}

func def(op, description string) node.Definition {
	return node.Definition{Type: category + "." + op, Category: category, Description: description}
}

// Register registers every list node with the registry.
func (m *Module) Register(r *registry.Registry) {
	add := func(d node.Definition, fn node.ExecuteFunc) {
		r.RegisterFunc(d, node.WithAliases(fn, listKey, "array"))
	}
	add(def("length", "Number of elements in a list"), Length)
	add(def("get", "Element at an index, negative indices count from the end"), Get)
	add(def("first", "First element of a list"), First)
	add(def("last", "Last element of a list"), Last)
	add(def("index_of", "Index of the first element equal to a value"), IndexOf)
	add(def("slice", "Elements in an index range"), Slice)
	add(def("reverse", "Reverse the order of a list"), Reverse)
	add(def("sort", "Stable sort of a list"), Sort)
	add(def("unique", "Drop repeated elements, keeping the first"), Unique)
	add(def("concat", "Concatenate several lists"), Concat)
	add(def("append", "Add a value at the end of a list"), Append)
	add(def("contains", "Check whether a list holds a value"), Contains)
	add(def("join", "Join list elements into a text"), Join)
}
