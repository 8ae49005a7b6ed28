// Package dict provides the "dict.*" node family. The subject object is read
// from the "object" key, or "dict" when it is absent, and coerced with
// coerce.ToObject. Nodes that change an object return a new one.
package dict

import (
	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/registry"
)

const category = "dict"

// Module implements the registry.Module interface for this package.
type Module struct{}

func def(op, description string) node.Definition {
	return node.Definition{Type: category + "." + op, Category: category, Description: description}
}

// Register registers every dict node with the registry.
func (m *Module) Register(r *registry.Registry) {
	add := func(d node.Definition, fn node.ExecuteFunc) {
		r.RegisterFunc(d, node.WithAliases(fn, objectKey, "dict"))
	}
	add(def("get", "Value stored under a key, or a default"), Get)
	add(def("has", "Check whether an object holds a key"), Has)
	add(def("keys", "Sorted keys of an object"), Keys)
	add(def("values", "Values of an object in key order"), Values)
	add(def("set", "Copy of an object with one key set"), Set)
	add(def("delete", "Copy of an object without a key"), Delete)
	add(def("merge", "Merge a list of objects, later keys win"), Merge)
}
