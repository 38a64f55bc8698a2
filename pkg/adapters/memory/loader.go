package memory

import (
	"fmt"

	"github.com/aretw0/jornada/pkg/graph"
)

// Loader implements ports.ModuleLoader over modules held in memory.
type Loader struct {
	modules []graph.Module
}

// NewLoader creates a Loader serving the given modules in order.
func NewLoader(modules ...graph.Module) (*Loader, error) {
	for i, m := range modules {
		if m.Name == "" {
			return nil, fmt.Errorf("module %d has no name", i)
		}
	}
	return &Loader{modules: append([]graph.Module(nil), modules...)}, nil
}

// Modules returns a copy of the modules.
func (l *Loader) Modules() ([]graph.Module, error) {
	return append([]graph.Module(nil), l.modules...), nil
}
