package memory_test

import (
	"testing"

	"github.com/aretw0/jornada/pkg/adapters/memory"
	"github.com/aretw0/jornada/pkg/graph"
	"github.com/aretw0/jornada/pkg/onboarding"
	"github.com/aretw0/jornada/pkg/ports"
	"github.com/aretw0/jornada/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunSessionStoreContract(t, store)
}

func TestMemoryLoader_Contract(t *testing.T) {
	modules := onboarding.Classic()
	loader, err := memory.NewLoader(modules...)
	require.NoError(t, err)

	g, err := graph.FromModules(modules)
	require.NoError(t, err)
	tests.ModuleLoaderContractTest(t, loader, g.IDs())
}

func TestMemoryLoader_RejectsUnnamed(t *testing.T) {
	_, err := memory.NewLoader(graph.Module{})
	assert.Error(t, err)
}
