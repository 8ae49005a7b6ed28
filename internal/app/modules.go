package app

import (
	"github.com/vk/gridnodes/internal/registry"
	"github.com/vk/gridnodes/nodes"
)

// coreModules is the definitive list of node families compiled into the
// gridnodes binary.
var coreModules = nodes.Modules()

func modulesOrDefault(modules []registry.Module) []registry.Module {
	if len(modules) == 0 {
		return coreModules
	}
	return modules
}
