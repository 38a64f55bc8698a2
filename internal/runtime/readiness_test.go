package runtime_test

import (
	"testing"

	"github.com/aretw0/jornada/internal/runtime"
	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readinessNodes(t *testing.T) map[string]domain.QuestionNode {
	t.Helper()
	b := dsl.New("readiness")
	b.Add("welcome").Welcome().Go("end")
	b.Add("single").SingleChoice("energy", dsl.Opt("high-energy", "Alta")).Go("end")
	b.Add("multi").MultiChoice("goals", 1, dsl.Opt("a", "A"), dsl.Opt("b", "B")).Go("end")
	b.Add("optional").MultiChoice("extras", 0, dsl.Opt("a", "A")).Go("end")
	b.Add("time").TimeRange(domain.TimePicker{Key: "wakeupTime", Default: "07:00"}).Go("end")
	b.Add("sliders").Sliders(domain.Slider{Key: "hours", Min: 1, Max: 40, Default: 10}).Go("end")
	b.Add("mindset").Mindset("focus", "Quando não estou motivado...", 5).Go("end")
	b.Add("commit").Commit(domain.Commitment{ActionKey: "action", TimeframeKey: "timeframe"}, "30 dias").Go("end")
	b.Add("end").Profile()

	module, err := b.Build()
	require.NoError(t, err)
	nodes := make(map[string]domain.QuestionNode, len(module.Nodes))
	for _, n := range module.Nodes {
		nodes[n.ID] = n
	}
	return nodes
}

func TestReady(t *testing.T) {
	nodes := readinessNodes(t)

	tests := []struct {
		node    string
		answers map[string]any
		wantKey string
		ready   bool
	}{
		{"welcome", nil, "", true},
		{"single", map[string]any{"energy": ""}, "energy", false},
		{"single", map[string]any{"energy": "high-energy"}, "", true},
		{"multi", map[string]any{"goals": []string{}}, "goals", false},
		{"multi", map[string]any{"goals": []any{"a"}}, "", true},
		{"optional", map[string]any{"extras": []string{}}, "", true},
		{"time", map[string]any{"wakeupTime": "7h"}, "wakeupTime", false},
		{"time", map[string]any{"wakeupTime": "06:30"}, "", true},
		{"sliders", map[string]any{}, "hours", false},
		{"sliders", map[string]any{"hours": 41.0}, "hours", false},
		{"sliders", map[string]any{"hours": 12.0}, "", true},
		{"mindset", map[string]any{"focus": 0.0}, "focus", false},
		{"mindset", map[string]any{"focus": 10.0}, "", true},
		{"commit", map[string]any{"action": "  ", "timeframe": "30 dias"}, "action", false},
		{"commit", map[string]any{"action": "Ler 10 minutos", "timeframe": ""}, "timeframe", false},
		{"commit", map[string]any{"action": "Ler 10 minutos", "timeframe": "30 dias"}, "", true},
		{"end", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.node, func(t *testing.T) {
			err := runtime.Ready(nodes[tt.node], domain.NewAnswers(tt.answers))
			if tt.ready {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, domain.ErrNotReady)
			var notReady *domain.NotReadyError
			require.ErrorAs(t, err, &notReady)
			assert.Equal(t, tt.node, notReady.NodeID)
			assert.Equal(t, tt.wantKey, notReady.Key)
		})
	}
}
