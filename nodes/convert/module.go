// Package convert exposes the coercion library as "convert.*" nodes, plus
// JSON text encoding and decoding.
package convert

import (
	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/registry"
)

const category = "convert"

// Module implements the registry.Module interface for this package.
type Module struct{}

func def(op, description string) node.Definition {
	return node.Definition{Type: category + "." + op, Category: category, Description: description}
}

// Register registers every conversion node with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFunc(def("to_bool", "Convert a value to a boolean"), ToBool)
	r.RegisterFunc(def("to_number", "Convert a value to a number"), ToNumber)
	r.RegisterFunc(def("to_string", "Convert a value to text"), ToString)
	r.RegisterFunc(def("to_list", "Convert a value to a list"), ToList)
	r.RegisterFunc(def("to_object", "Convert a value to an object"), ToObject)
	r.RegisterFunc(def("to_json", "Serialize a value as JSON text"), ToJSON)
	r.RegisterFunc(def("parse_json", "Parse JSON text into a value"), ParseJSON)
	r.RegisterFunc(def("type_of", "Name of the variant a value holds"), TypeOf)
}
