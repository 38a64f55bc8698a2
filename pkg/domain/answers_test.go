package domain

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswers_Accessors(t *testing.T) {
	a := NewAnswers(map[string]any{
		"riskTolerance":    "moderate",
		"financialGoals":   []string{"wealth-building", "debt-reduction"},
		"learningAreas":    []any{"finance", "tech"},
		"monthlyIncome":    5000.0,
		"timeAvailability": 12,
	})

	assert.True(t, a.Valid())
	assert.Equal(t, "moderate", a.String("riskTolerance"))
	assert.Equal(t, "", a.String("monthlyIncome"))
	assert.True(t, a.Equals("riskTolerance", "moderate"))
	assert.True(t, a.Includes("financialGoals", "debt-reduction"))
	assert.False(t, a.Includes("financialGoals", "passive-income"))
	assert.True(t, a.IncludesAny("learningAreas", "health", "tech"))
	assert.Equal(t, []string{"finance", "tech"}, a.Strings("learningAreas"))

	income, ok := a.Number("monthlyIncome")
	require.True(t, ok)
	assert.Equal(t, 5000.0, income)

	hours, ok := a.Number("timeAvailability")
	require.True(t, ok)
	assert.Equal(t, 12.0, hours)

	_, ok = a.Number("riskTolerance")
	assert.False(t, ok)
	assert.False(t, a.Has("missing"))
}

func TestAnswers_IsolatedFromSource(t *testing.T) {
	goals := []string{"travel"}
	src := map[string]any{"lifeGoals": goals}
	a := NewAnswers(src)

	goals[0] = "house"
	src["lifeGoals"] = []string{"family"}
	assert.Equal(t, []string{"travel"}, a.Strings("lifeGoals"))

	out := a.Strings("lifeGoals")
	out[0] = "mutated"
	assert.Equal(t, []string{"travel"}, a.Strings("lifeGoals"))
}

func TestAnswers_ZeroValueIsInvalid(t *testing.T) {
	var a Answers
	assert.False(t, a.Valid())
	assert.Nil(t, a.Strings("anything"))
}

func TestAnswers_JSONRoundTrip(t *testing.T) {
	a := NewAnswers(map[string]any{"energy": "low-energy", "monthlySavings": 500.0})
	data, err := json.Marshal(a)
	require.NoError(t, err)

	var back Answers
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, a.Map(), back.Map())
}

func TestFlowState_CloneAndPosition(t *testing.T) {
	s := &FlowState{
		CurrentNodeID: "energy",
		History:       []string{"welcome", "concentration", "energy"},
		Sequence:      []string{"welcome", "concentration", "energy", "profileGeneration"},
	}
	c := s.Clone()
	c.History[0] = "changed"

	assert.Equal(t, "welcome", s.History[0])
	assert.Equal(t, 2, s.Position())
	assert.Equal(t, []string{"profileGeneration"}, s.Remaining())
}

func TestUserProfile_Clone(t *testing.T) {
	var nilProfile *UserProfile
	assert.Nil(t, nilProfile.Clone())

	p := &UserProfile{
		PersonalityType: "Construtor Sistemático",
		SuggestedHabits: []Habit{{Name: "Leitura", Category: "aprendizado", Cadence: "diário"}},
		Strengths:       []string{"foco"},
		Recommendations: Recommendations{Financial: []string{"poupar"}},
	}
	c := p.Clone()
	assert.Equal(t, p, c)

	c.SuggestedHabits[0].Name = "changed"
	c.Strengths[0] = "changed"
	c.Recommendations.Financial[0] = "changed"
	assert.Equal(t, "Leitura", p.SuggestedHabits[0].Name)
	assert.Equal(t, "foco", p.Strengths[0])
	assert.Equal(t, "poupar", p.Recommendations.Financial[0])

	rec := (&SessionRecord{Profile: p}).Clone()
	rec.Profile.Strengths[0] = "changed"
	assert.Equal(t, "foco", p.Strengths[0])
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := LifecycleHooks{OnNodeEnter: func(context.Context, *NodeEvent) { calls = append(calls, "a") }}
	b := LifecycleHooks{
		OnNodeEnter: func(context.Context, *NodeEvent) { calls = append(calls, "b") },
		OnAnswer:    func(context.Context, *AnswerEvent) { calls = append(calls, "answer") },
	}

	merged := a.Merge(b)
	merged.OnNodeEnter(context.Background(), &NodeEvent{})
	merged.OnAnswer(context.Background(), &AnswerEvent{})
	assert.Nil(t, merged.OnProfile)
	assert.Equal(t, []string{"a", "b", "answer"}, calls)
}
