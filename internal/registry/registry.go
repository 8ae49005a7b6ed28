package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/gridnodes/internal/node"
)

// ErrUnknownNode is returned by Lookup for a type that was never registered.
var ErrUnknownNode = errors.New("unknown node type")

// Factory builds a node instance.
type Factory func() node.Node

// Module is the interface that every node family implements to be registered.
type Module interface {
	Register(r *Registry)
}

type entry struct {
	def     node.Definition
	factory Factory
}

// Registry holds the node factories of a single application instance.
type Registry struct {
	entries map[string]entry
}

// New creates and initializes a new Registry, registering every given module.
func New(modules ...Module) *Registry {
	r := &Registry{entries: make(map[string]entry)}
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// Register adds a factory under def.Type.
func (r *Registry) Register(def node.Definition, factory Factory) {
	if def.Type == "" {
		panic("node type must not be empty")
	}
	if _, exists := r.entries[def.Type]; exists {
		panic(fmt.Sprintf("node with type '%s' already registered", def.Type))
	}
	slog.Debug("Registering node.", "type", def.Type, "category", def.Category)
	r.entries[def.Type] = entry{def: def, factory: factory}
}

// RegisterFunc registers a plain node body.
func (r *Registry) RegisterFunc(def node.Definition, fn node.ExecuteFunc) {
	n := node.Func{Def: def, Fn: fn}
	r.Register(def, func() node.Node { return n })
}

// RegisterMutator registers a write-intent node body with its planner.
func (r *Registry) RegisterMutator(def node.Definition, fn node.ExecuteFunc, plan node.IntentFunc) {
	n := node.MutatorFunc{Func: node.Func{Def: def, Fn: fn}, Plan: plan}
	r.Register(def, func() node.Node { return n })
}

// Lookup builds the node registered under nodeType.
func (r *Registry) Lookup(nodeType string) (node.Node, error) {
	e, ok := r.entries[nodeType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, nodeType)
	}
	return e.factory(), nil
}

// Has reports whether nodeType is registered.
func (r *Registry) Has(nodeType string) bool {
	_, ok := r.entries[nodeType]
	return ok
}

// Len returns the number of registered nodes.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Types returns every registered type in sorted order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.entries))
	for t := range r.entries {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Definitions returns every registered definition sorted by type.
func (r *Registry) Definitions() []node.Definition {
	defs := make([]node.Definition, 0, len(r.entries))
	for _, t := range r.Types() {
		defs = append(defs, r.entries[t].def)
	}
	return defs
}

// Categories groups the registered types by category.
func (r *Registry) Categories() map[string][]string {
	out := make(map[string][]string)
	for _, def := range r.Definitions() {
		out[def.Category] = append(out[def.Category], def.Type)
	}
	return out
}
