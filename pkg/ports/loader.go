package ports

import "github.com/aretw0/jornada/pkg/graph"

// ModuleLoader produces question modules from an external source.
// Modules are returned in the order they should be registered.
type ModuleLoader interface {
	Modules() ([]graph.Module, error)
}
