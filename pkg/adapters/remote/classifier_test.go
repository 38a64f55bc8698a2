package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aretw0/jornada/pkg/adapters/remote"
	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/ports"
	"github.com/aretw0/jornada/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.Classifier = (*remote.Classifier)(nil)

// rulesService answers with the in-process rule tables.
func rulesService(t *testing.T) *httptest.Server {
	t.Helper()
	rules := profile.NewRules()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))

		var req remote.ClassifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		p, err := rules.Classify(r.Context(), domain.NewAnswers(req.Answers))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(remote.ClassifyResponse{Profile: p})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClassifier_MatchesLocalRules(t *testing.T) {
	srv := rulesService(t)
	c := remote.New(srv.URL, remote.WithHeader("X-Api-Key", "secret"))

	answers := domain.NewAnswers(map[string]any{
		"concentration":  "high-focus",
		"energy":         "high-energy",
		"riskTolerance":  "aggressive",
		"monthlyIncome":  10000.0,
		"monthlySavings": 3000.0,
		"financialGoals": []string{"wealth-building"},
	})

	got, err := c.Classify(context.Background(), answers)
	require.NoError(t, err)

	want, err := profile.NewRules().Classify(context.Background(), answers)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClassifier_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "overloaded", http.StatusServiceUnavailable)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("{"))
			},
		},
		{
			name: "missing profile",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			},
		},
		{
			name: "incomplete profile",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"profile":{"personality_type":"Equilibrado"}}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := remote.New(srv.URL).Classify(context.Background(), domain.NewAnswers(nil))
			assert.Error(t, err)
		})
	}
}

func TestClassifier_RespectsContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := remote.New(srv.URL).Classify(ctx, domain.NewAnswers(nil))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
