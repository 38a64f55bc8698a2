package observability_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/jornada"
	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/observability"
	"github.com/aretw0/jornada/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	engine, err := jornada.New(jornada.WithLifecycleHooks(m.Hooks()))
	require.NoError(t, err)

	ctx := context.Background()
	s := engine.NewSession("metrics")
	require.NoError(t, s.Start(ctx))
	_, err = s.Advance(ctx)
	require.NoError(t, err)
	require.NoError(t, s.RecordAnswer(ctx, "personalInterests", []string{"health"}))
	require.NoError(t, s.RecordAnswer(ctx, "personalInterests", []string{"career"}))
	require.NoError(t, s.Jump(ctx, "profileGeneration"))
	_, err = s.CompleteFlow(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.NodeVisits.WithLabelValues("welcome", string(domain.KindWelcome))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NodeVisits.WithLabelValues("personalInterests", string(domain.KindMultiChoice))))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Answers.WithLabelValues("personalInterests")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Completions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Derivations.WithLabelValues("success")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ProgressOnLeave))

	count, err := testutil.GatherAndCount(reg, "jornada_profile_derivation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_DerivationFailure(t *testing.T) {
	m, err := observability.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	failing := ports.ClassifierFunc(func(context.Context, domain.Answers) (*domain.UserProfile, error) {
		return nil, errors.New("offline")
	})
	engine, err := jornada.New(jornada.WithLifecycleHooks(m.Hooks()), jornada.WithClassifier(failing))
	require.NoError(t, err)

	ctx := context.Background()
	s := engine.NewSession("")
	require.NoError(t, s.Start(ctx))
	require.NoError(t, s.Jump(ctx, "profileGeneration"))
	_, err = s.CompleteFlow(ctx)
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Derivations.WithLabelValues("error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Derivations.WithLabelValues("success")))
}

func TestMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	_, err = observability.NewMetrics(reg)
	assert.Error(t, err)
}
