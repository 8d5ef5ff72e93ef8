package app

import (
	"github.com/specialistvlad/advent2023/internal/days"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// coreModules is the definitive list of all solver modules that are
// compiled into the advent2023 binary.
var coreModules = days.All()

// newRegistry builds the registry from modules, falling back to the core
// modules when none are given.
func newRegistry(modules []registry.Module) *registry.Registry {
	if len(modules) == 0 {
		modules = coreModules
	}
	return registry.NewWithModules(modules...)
}
