package profile_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/ports"
	"github.com/aretw0/jornada/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestEngine_Derive(t *testing.T) {
	var events []*domain.ProfileEvent
	engine := profile.NewEngine(profile.WithLifecycleHooks(domain.LifecycleHooks{
		OnProfile: func(_ context.Context, e *domain.ProfileEvent) { events = append(events, e) },
	}))

	p, err := engine.Derive(context.Background(), domain.NewAnswers(map[string]any{"riskTolerance": "moderate"}))
	require.NoError(t, err)
	assert.Equal(t, "Moderado", p.FinancialProfile)

	require.Len(t, events, 1)
	assert.Equal(t, domain.EventProfile, events[0].Type)
	assert.NoError(t, events[0].Err)
}

func TestEngine_InvalidInput(t *testing.T) {
	_, err := profile.NewEngine().Derive(context.Background(), domain.Answers{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEngine_NonFiniteAmounts(t *testing.T) {
	p, err := profile.NewEngine().Derive(context.Background(), domain.NewAnswers(map[string]any{
		"monthlyIncome":  5000.0,
		"monthlySavings": math.NaN(),
	}))
	require.NoError(t, err)
	assert.NotContains(t, p.Weaknesses, "Taxa de poupança mensal abaixo do ideal")
}

func TestEngine_Failures(t *testing.T) {
	boom := errors.New("service unavailable")

	tests := []struct {
		name       string
		classifier ports.Classifier
		wantCause  error
	}{
		{
			"classifier error",
			ports.ClassifierFunc(func(context.Context, domain.Answers) (*domain.UserProfile, error) { return nil, boom }),
			boom,
		},
		{
			"classifier panic",
			ports.ClassifierFunc(func(context.Context, domain.Answers) (*domain.UserProfile, error) { panic("nil map") }),
			nil,
		},
		{
			"nil profile",
			ports.ClassifierFunc(func(context.Context, domain.Answers) (*domain.UserProfile, error) { return nil, nil }),
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := profile.NewEngine(profile.WithClassifier(tt.classifier))
			p, err := engine.Derive(context.Background(), domain.NewAnswers(nil))
			assert.Nil(t, p)
			require.ErrorIs(t, err, domain.ErrProfileDerivation)

			var derr *domain.ProfileDerivationError
			require.ErrorAs(t, err, &derr)
			if tt.wantCause != nil {
				assert.ErrorIs(t, err, tt.wantCause)
			}
		})
	}
}

func TestEngine_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := profile.NewEngine().Derive(ctx, domain.NewAnswers(nil))
	assert.ErrorIs(t, err, domain.ErrProfileDerivation)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithLatency(t *testing.T) {
	slow := profile.WithLatency(profile.NewRules(), time.Hour)
	engine := profile.NewEngine(profile.WithClassifier(slow))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := engine.Derive(ctx, domain.NewAnswers(nil))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Minute)

	fast := profile.NewEngine(profile.WithClassifier(profile.WithLatency(profile.NewRules(), time.Millisecond)))
	p, err := fast.Derive(context.Background(), domain.NewAnswers(nil))
	require.NoError(t, err)
	assert.Equal(t, "Equilibrado", p.FinancialProfile)
}

func TestGuard_RejectsConcurrentDerivation(t *testing.T) {
	release := make(chan struct{})
	blocking := ports.ClassifierFunc(func(ctx context.Context, a domain.Answers) (*domain.UserProfile, error) {
		<-release
		return profile.NewRules().Classify(ctx, a)
	})
	guard := profile.NewEngine(profile.WithClassifier(blocking)).Guard("s1")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := guard.Derive(context.Background(), domain.NewAnswers(nil))
		assert.NoError(t, err)
	}()

	require.Eventually(t, guard.InProgress, time.Second, time.Millisecond)

	_, err := guard.Derive(context.Background(), domain.NewAnswers(nil))
	assert.ErrorIs(t, err, domain.ErrDerivationInProgress)

	close(release)
	wg.Wait()
	assert.False(t, guard.InProgress())

	_, err = guard.Derive(context.Background(), domain.NewAnswers(nil))
	assert.NoError(t, err)
}

func TestMarkdown(t *testing.T) {
	p, err := profile.NewEngine().Derive(context.Background(), domain.NewAnswers(map[string]any{
		"riskTolerance":     "conservative",
		"businessInterests": []string{"tech"},
	}))
	require.NoError(t, err)

	md := profile.Markdown(p)
	assert.True(t, strings.HasPrefix(md, "# Seu perfil\n"))
	assert.Contains(t, md, "| Renda Fixa | 60% | Baixo |")
	assert.Contains(t, md, "| Software as a Service (SaaS) | Médio | Alto |")
	assert.Contains(t, md, "## Pontos fortes")
	assert.Empty(t, profile.Markdown(nil))
}
