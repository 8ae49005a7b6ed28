// Package vars provides the "var.*" node family, the only nodes that look at
// the workflow variable store.
//
// Read nodes (get, exists, keys) inspect the snapshot they are given and treat
// a missing snapshot as an empty store. Write nodes (set, delete, clear) never
// touch the store: they report the mutation they want both in their outputs
// and as a varstore.Intent for the caller to apply.
package vars

import (
	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/registry"
)

const category = "var"

// Module implements the registry.Module interface for this package.
type Module struct{}

func def(op, description string) node.Definition {
	return node.Definition{Type: category + "." + op, Category: category, Description: description}
}

// Register registers every variable node with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFunc(def("get", "Get variable from workflow store"), Get)
	r.RegisterFunc(def("exists", "Check whether a variable exists in the workflow store"), Exists)
	r.RegisterFunc(def("keys", "List the variable names in the workflow store"), Keys)
	r.RegisterMutator(def("set", "Set variable in workflow store"), Set, PlanSet)
	r.RegisterMutator(def("delete", "Delete variable from workflow store"), Delete, PlanDelete)
	r.RegisterMutator(def("clear", "Remove every variable from the workflow store"), Clear, PlanClear)
}
