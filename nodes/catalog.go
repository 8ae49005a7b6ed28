// Package nodes lists every node family compiled into the binary.
package nodes

import (
	"github.com/vk/gridnodes/internal/registry"
	"github.com/vk/gridnodes/nodes/arith"
	"github.com/vk/gridnodes/nodes/convert"
	"github.com/vk/gridnodes/nodes/dict"
	"github.com/vk/gridnodes/nodes/list"
	"github.com/vk/gridnodes/nodes/logic"
	"github.com/vk/gridnodes/nodes/text"
	"github.com/vk/gridnodes/nodes/vars"
)

// Modules returns the node families in registration order.
func Modules() []registry.Module {
	return []registry.Module{
		&arith.Module{},
		&text.Module{},
		&list.Module{},
		&convert.Module{},
		&dict.Module{},
		&logic.Module{},
		&vars.Module{},
	}
}

// NewRegistry builds a registry holding the whole catalog.
func NewRegistry() *registry.Registry {
	return registry.New(Modules()...)
}
