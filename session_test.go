package jornada_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/jornada"
	"github.com/aretw0/jornada/pkg/answers"
	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/dsl"
	"github.com/aretw0/jornada/pkg/onboarding"
	"github.com/aretw0/jornada/pkg/ports"
	"github.com/aretw0/jornada/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, opts ...jornada.Option) *jornada.Session {
	t.Helper()
	engine, err := jornada.New(opts...)
	require.NoError(t, err)
	s := engine.NewSession("")
	require.NoError(t, s.Start(context.Background()))
	return s
}

// answerAndAdvance records the answers for the current node and advances.
func answerAndAdvance(t *testing.T, s *jornada.Session, values map[string]any) jornada.AdvanceResult {
	t.Helper()
	ctx := context.Background()
	for k, v := range values {
		require.NoError(t, s.RecordAnswer(ctx, k, v))
	}
	res, err := s.Advance(ctx)
	require.NoError(t, err)
	return res
}

func TestSession_FullFlow(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, 0, s.Progress())

	steps := []map[string]any{
		nil, // welcome
		{"personalInterests": []any{"health", "business"}},
		{"concentration": "low-focus"},
		{"lifestyle": "not-satisfied"},
		{"energy": "low-energy"},
		{"wakeupTime": "06:00", "sleepTime": "00:30"},
		{"financialGoals": []string{"business-opportunity"}},
		{"businessInterests": []string{"ecommerce"}},
		{"entrepreneurProfile": "opportunist"},
		{"timeAvailability": 8},
		{"investmentCapacity": "very-high"},
		{"lifeGoals": []string{"own-business"}},
		{"learningAreas": []string{"marketing"}},
	}

	last := 0
	for _, step := range steps {
		res := answerAndAdvance(t, s, step)
		require.Equal(t, jornada.OutcomeAdvanced, res.Outcome, "blocked at %s: %v", res.From, res.Reason)
		assert.GreaterOrEqual(t, s.Progress(), last)
		last = s.Progress()
	}

	node, err := s.CurrentNode()
	require.NoError(t, err)
	assert.Equal(t, domain.KindProfileTerminal, node.Kind)
	assert.Equal(t, 100, s.Progress())

	p, err := s.CompleteFlow(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Oportunista", p.EntrepreneurType)
	assert.Equal(t, []string{"Dropshipping de Produtos Especializados", "Consultoria Online"}, opportunityNames(p))
	assert.Contains(t, p.Weaknesses, "Insatisfação com o estilo de vida atual")
	assert.Same(t, p, s.Profile())
}

func TestSession_MultiChoiceBlocked(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()
	answerAndAdvance(t, s, nil)

	res, err := s.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, jornada.OutcomeBlocked, res.Outcome)
	assert.ErrorIs(t, res.Reason, domain.ErrNotReady)

	node, err := s.CurrentNode()
	require.NoError(t, err)
	assert.Equal(t, onboarding.NodePersonalInterests, node.ID)
}

func TestSession_RecordAnswerValidation(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()

	err := s.RecordAnswer(ctx, "favoriteColor", "blue")
	var unknown *answers.UnknownKeyError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "favoriteColor", unknown.Key)

	err = s.RecordAnswer(ctx, "energy", "caffeinated")
	var invalid *schema.ValidationError
	assert.True(t, errors.As(err, &invalid))

	err = s.RecordAnswer(ctx, "monthlyIncome", 70000)
	assert.True(t, errors.As(err, &invalid))

	before := s.Answers()
	assert.Equal(t, "", before.String("energy"))
	income, ok := before.Number("monthlyIncome")
	require.True(t, ok)
	assert.Equal(t, 5000.0, income)
}

func TestSession_AnswersReprojectPath(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()

	require.NotContains(t, s.State().Sequence, onboarding.NodeRiskTolerance)
	require.NoError(t, s.RecordAnswer(ctx, "financialGoals", []string{"passive-income"}))
	assert.Contains(t, s.State().Sequence, onboarding.NodeRiskTolerance)
}

func TestSession_GoBackKeepsAnswers(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()

	answerAndAdvance(t, s, nil)
	answerAndAdvance(t, s, map[string]any{"personalInterests": []string{"career"}})
	require.True(t, s.GoBack(ctx))
	require.True(t, s.GoBack(ctx))
	assert.False(t, s.GoBack(ctx))

	assert.Equal(t, []string{"career"}, s.Answers().Strings("personalInterests"))
	assert.Equal(t, 0, s.Progress())
}

func TestSession_CompleteFlowRequiresTerminal(t *testing.T) {
	engine, err := jornada.New()
	require.NoError(t, err)
	s := engine.NewSession("s1")

	_, err = s.CompleteFlow(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotStarted)

	require.NoError(t, s.Start(context.Background()))
	_, err = s.CompleteFlow(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotTerminal)

	require.NoError(t, s.Jump(context.Background(), onboarding.NodeProfile))
	_, err = s.CompleteFlow(context.Background())
	assert.NoError(t, err)
}

func TestSession_ClassifierFailure(t *testing.T) {
	failing := ports.ClassifierFunc(func(context.Context, domain.Answers) (*domain.UserProfile, error) {
		return nil, errors.New("timeout talking to model")
	})
	s := newSession(t, jornada.WithClassifier(failing))
	require.NoError(t, s.Jump(context.Background(), onboarding.NodeProfile))

	p, err := s.CompleteFlow(context.Background())
	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrProfileDerivation)
	assert.Nil(t, s.Profile())
}

func TestSession_RecordAndResume(t *testing.T) {
	engine, err := jornada.New()
	require.NoError(t, err)
	ctx := context.Background()

	s := engine.NewSession("resume-me")
	require.NoError(t, s.Start(ctx))
	answerAndAdvance(t, s, nil)
	answerAndAdvance(t, s, map[string]any{"personalInterests": []string{"health"}})

	record := s.Record()
	assert.Equal(t, "resume-me", record.State.SessionID)
	assert.Equal(t, onboarding.NodeConcentration, record.State.CurrentNodeID)

	// Simulate a JSON round trip of the answers.
	record.Answers["personalInterests"] = []any{"health"}

	resumed, err := engine.Resume(record)
	require.NoError(t, err)
	assert.Equal(t, "resume-me", resumed.ID())
	assert.Equal(t, s.State(), resumed.State())
	assert.Equal(t, []string{"health"}, resumed.Answers().Strings("personalInterests"))

	_, err = engine.Resume(&domain.SessionRecord{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSession_Hooks(t *testing.T) {
	var answered []string
	var profiles int
	hooks := domain.LifecycleHooks{
		OnAnswer:  func(_ context.Context, e *domain.AnswerEvent) { answered = append(answered, e.NodeID+"."+e.Key) },
		OnProfile: func(_ context.Context, e *domain.ProfileEvent) { profiles++ },
	}
	s := newSession(t, jornada.WithLifecycleHooks(hooks))
	ctx := context.Background()

	answerAndAdvance(t, s, nil)
	require.NoError(t, s.RecordAnswer(ctx, "personalInterests", []string{"health"}))
	require.NoError(t, s.Jump(ctx, onboarding.NodeProfile))
	_, err := s.CompleteFlow(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"personalInterests.personalInterests"}, answered)
	assert.Equal(t, 1, profiles)
}

func TestNew_Options(t *testing.T) {
	t.Run("extended catalog", func(t *testing.T) {
		engine, err := jornada.New(jornada.WithModules(onboarding.Extended()...), jornada.WithName("extended"))
		require.NoError(t, err)
		s := engine.NewSession("x")
		require.NoError(t, s.Start(context.Background()))
		assert.Equal(t, "mindsetConsistency", s.State().Sequence[1])
	})

	t.Run("strict duplicates", func(t *testing.T) {
		_, err := jornada.New(jornada.WithStrict(true), jornada.WithModules(onboarding.Extended()...))
		assert.ErrorIs(t, err, domain.ErrDuplicateConfiguration)
	})

	t.Run("invalid graph", func(t *testing.T) {
		_, err := jornada.New(jornada.WithModules(onboarding.Personal()))
		assert.ErrorIs(t, err, domain.ErrUnknownNode)
	})

	t.Run("custom entry", func(t *testing.T) {
		engine, err := jornada.New(jornada.WithEntryNode(onboarding.NodeFinancialGoals))
		require.NoError(t, err)
		s := engine.NewSession("x")
		require.NoError(t, s.Start(context.Background()))
		node, err := s.CurrentNode()
		require.NoError(t, err)
		assert.Equal(t, onboarding.NodeFinancialGoals, node.ID)
	})
}

func opportunityNames(p *domain.UserProfile) []string {
	names := make([]string, 0, len(p.SuggestedBusinessOpportunities))
	for _, o := range p.SuggestedBusinessOpportunities {
		names = append(names, o.Name)
	}
	return names
}

func TestSession_ExtendedCommitments(t *testing.T) {
	s := newSession(t, jornada.WithModules(onboarding.Extended()...))
	ctx := context.Background()

	require.NoError(t, s.Jump(ctx, onboarding.NodeFinancialGoals))
	answerAndAdvance(t, s, map[string]any{"financialGoals": []string{"passive-income"}})

	node, err := s.CurrentNode()
	require.NoError(t, err)
	require.Equal(t, onboarding.NodeFinancialCommitment, node.ID)

	res, err := s.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, jornada.OutcomeBlocked, res.Outcome)
	assert.ErrorIs(t, res.Reason, domain.ErrNotReady)

	res = answerAndAdvance(t, s, map[string]any{"financialHabitCommitment": "Investir 10% da renda"})
	require.Equal(t, jornada.OutcomeAdvanced, res.Outcome)
	assert.Equal(t, onboarding.NodeRiskTolerance, res.To)
	assert.Equal(t, "12 meses", s.Answers().String("financialHabitTimeframe"))
}

func TestSession_RecordAnswerKeepsStoreOnProjectionError(t *testing.T) {
	b := dsl.New("broken")
	b.Add("welcome").Welcome().Go("path")
	b.Add("path").
		SingleChoice("path", dsl.Opt("a", "A"), dsl.Opt("b", "B")).
		Resolve(func(a domain.Answers) []string {
			if a.Equals("path", "b") {
				return []string{"nowhere"}
			}
			return []string{"profileGeneration"}
		}, "profileGeneration")
	b.Add("profileGeneration").Profile()

	s := newSession(t, jornada.WithModules(b.MustBuild()))
	ctx := context.Background()
	before := s.State()

	err := s.RecordAnswer(ctx, "path", "b")
	assert.ErrorIs(t, err, domain.ErrUnknownNode)
	assert.Equal(t, "", s.Answers().String("path"))
	assert.Equal(t, before.Sequence, s.State().Sequence)

	require.NoError(t, s.RecordAnswer(ctx, "path", "a"))
	assert.Equal(t, "a", s.Answers().String("path"))
}

func TestSession_RecordIsDetachedFromProfile(t *testing.T) {
	engine, err := jornada.New()
	require.NoError(t, err)
	s := engine.NewSession("detached")
	ctx := context.Background()
	require.NoError(t, s.Start(ctx))
	require.NoError(t, s.Jump(ctx, onboarding.NodeProfile))
	p, err := s.CompleteFlow(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, p.SuggestedHabits)

	rec := s.Record()
	rec.Profile.SuggestedHabits[0].Name = "changed"
	rec.Profile.Strengths = append(rec.Profile.Strengths, "extra")
	assert.NotEqual(t, "changed", s.Profile().SuggestedHabits[0].Name)
	assert.NotContains(t, s.Profile().Strengths, "extra")

	resumed, err := engine.Resume(s.Record())
	require.NoError(t, err)
	resumed.Profile().SuggestedHabits[0].Name = "resumed"
	assert.NotEqual(t, "resumed", s.Profile().SuggestedHabits[0].Name)
}
