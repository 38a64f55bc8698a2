package yaml_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/jornada"
	"github.com/aretw0/jornada/pkg/adapters/yaml"
	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const entryModule = `
module: entry
nodes:
  - id: welcome
    kind: welcome
    title: Bem-vindo
    next:
      - to: energy
  - id: energy
    kind: single-choice
    key: energy
    prompt: Como está sua energia?
    options:
      - {id: high-energy, text: Alta}
      - {id: low-energy, text: Baixa}
    next:
      - to: rest
        label: cansado
        when: {key: energy, equals: low-energy}
      - to: routine
`

const habitsModule = `
module: habits
nodes:
  - id: rest
    kind: mindset-scale
    key: restMindset
    statement: Descansar também é produtivo.
    next:
      - to: profileGeneration
  - id: routine
    kind: time-range
    pickers:
      - {key: wakeTime, label: Acordo, default: "07:00"}
    next:
      - to: budget
  - id: budget
    kind: numeric-sliders
    sliders:
      - {key: monthlyIncome, label: Renda, min: 0, max: 50000, step: 500, default: 5000, unit: R$}
    next:
      - to: commit
        when: {key: monthlyIncome, gte: 10000}
      - to: profileGeneration
  - id: commit
    kind: action-commitment
    commitment:
      action_key: action
      timeframe_key: timeframe
      timeframes: [hoje, semana]
    default_timeframe: semana
    next:
      - to: profileGeneration
  - id: profileGeneration
    kind: profile-terminal
`

func writeModules(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01-entry.yaml"), []byte(entryModule), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "02-habits.yml"), []byte(habitsModule), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# not a module"), 0o644))
	return dir
}

func TestLoader_Contract(t *testing.T) {
	dir := writeModules(t)
	tests.ModuleLoaderContractTest(t, yaml.New(dir),
		[]string{"welcome", "energy", "rest", "routine", "budget", "commit", "profileGeneration"})
}

func TestLoader_FileOrder(t *testing.T) {
	dir := writeModules(t)
	modules, err := yaml.New(dir).Modules()
	require.NoError(t, err)
	require.Len(t, modules, 2)
	assert.Equal(t, "entry", modules[0].Name)
	assert.Equal(t, "habits", modules[1].Name)
}

func TestLoader_Branching(t *testing.T) {
	ctx := context.Background()
	engine, err := jornada.New(jornada.WithLoader(yaml.New(writeModules(t))))
	require.NoError(t, err)

	s := engine.NewSession("yaml")
	require.NoError(t, s.Start(ctx))

	res, err := s.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "energy", res.To)

	require.NoError(t, s.RecordAnswer(ctx, "energy", "low-energy"))
	res, err = s.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rest", res.To)

	node, err := s.CurrentNode()
	require.NoError(t, err)
	assert.Equal(t, domain.KindMindsetScale, node.Kind)

	// Changing the answer after going back reroutes the projection.
	require.True(t, s.GoBack(ctx))
	require.NoError(t, s.RecordAnswer(ctx, "energy", "high-energy"))
	res, err = s.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "routine", res.To)
	assert.Equal(t, []string{"welcome", "energy", "routine", "budget", "profileGeneration"}, s.State().Sequence)

	require.NoError(t, s.RecordAnswer(ctx, "wakeTime", "06:30"))
	_, err = s.Advance(ctx)
	require.NoError(t, err)
	require.NoError(t, s.RecordAnswer(ctx, "monthlyIncome", 12000))
	res, err = s.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "commit", res.To)
}

func TestParse_DefaultLabels(t *testing.T) {
	m, err := yaml.Parse([]byte(entryModule))
	require.NoError(t, err)

	var energy domain.QuestionNode
	for _, n := range m.Nodes {
		if n.ID == "energy" {
			energy = n
		}
	}
	require.Len(t, energy.Routes, 2)
	assert.Equal(t, "cansado", energy.Routes[0].Label)
	assert.Equal(t, "rest", energy.Routes[0].To)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"invalid yaml", "module: [unterminated"},
		{"missing module name", "nodes:\n  - {id: a, kind: welcome}"},
		{"no nodes", "module: empty"},
		{"unknown kind", "module: m\nnodes:\n  - {id: a, kind: carousel}"},
		{"unknown field", "module: m\nnodes:\n  - {id: a, kind: welcome, colour: red}"},
		{"choice without key", "module: m\nnodes:\n  - {id: a, kind: single-choice, options: [{id: x, text: X}]}"},
		{"option without text", "module: m\nnodes:\n  - {id: a, kind: single-choice, key: k, options: [{id: x}]}"},
		{"slider bounds", "module: m\nnodes:\n  - {id: a, kind: numeric-sliders, sliders: [{key: k, min: 10, max: 1}]}"},
		{"two operators", "module: m\nnodes:\n  - {id: a, kind: welcome, next: [{to: b, when: {key: k, equals: x, gte: 1}}]}"},
		{"no operator", "module: m\nnodes:\n  - {id: a, kind: welcome, next: [{to: b, when: {key: k}}]}"},
		{"commitment missing", "module: m\nnodes:\n  - {id: a, kind: action-commitment}"},
		{"profile with next", "module: m\nnodes:\n  - {id: a, kind: profile-terminal, next: [{to: b}]}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := yaml.Parse([]byte(tc.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestLoader_MissingPath(t *testing.T) {
	_, err := yaml.New(filepath.Join(t.TempDir(), "missing")).Modules()
	assert.Error(t, err)
}

func TestLoader_ReportsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("module: m\nnodes:\n  - {id: a, kind: nope}"), 0o644))

	_, err := yaml.New(path).Modules()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestLoader_ExampleModules(t *testing.T) {
	dir := filepath.Join("..", "..", "..", "examples", "yaml-modules", "modules")
	_, err := jornada.New(jornada.WithLoader(yaml.New(dir)))
	require.NoError(t, err)
}
