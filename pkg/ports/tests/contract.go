package tests

import (
	"testing"

	"github.com/aretw0/jornada/pkg/graph"
	"github.com/aretw0/jornada/pkg/ports"
)

// ModuleLoaderContractTest is a reusable test suite that verifies if an adapter
// complies with ports.ModuleLoader. wantIDs lists every node id the loader is
// expected to produce.
func ModuleLoaderContractTest(t *testing.T, loader ports.ModuleLoader, wantIDs []string) {
	t.Helper()

	modules, err := loader.Modules()
	if err != nil {
		t.Fatalf("unexpected error loading modules: %v", err)
	}

	t.Run("Modules_Named", func(t *testing.T) {
		for i, m := range modules {
			if m.Name == "" {
				t.Errorf("module %d has no name", i)
			}
		}
	})

	t.Run("Modules_ContainNodes", func(t *testing.T) {
		lookup := make(map[string]bool)
		for _, m := range modules {
			for _, n := range m.Nodes {
				lookup[n.ID] = true
			}
		}
		if len(lookup) != len(wantIDs) {
			t.Errorf("expected %d nodes, got %d", len(wantIDs), len(lookup))
		}
		for _, id := range wantIDs {
			if !lookup[id] {
				t.Errorf("node %s missing from modules", id)
			}
		}
	})

	t.Run("Modules_Register", func(t *testing.T) {
		g, err := graph.FromModules(modules)
		if err != nil {
			t.Fatalf("modules do not register: %v", err)
		}
		if err := g.Validate(); err != nil {
			t.Errorf("registered graph is invalid: %v", err)
		}
	})
}
