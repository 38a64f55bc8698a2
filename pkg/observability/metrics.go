package observability

import (
	"context"
	"fmt"

	"github.com/aretw0/jornada/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "jornada"

// Metrics holds the onboarding collectors.
type Metrics struct {
	NodeVisits      *prometheus.CounterVec
	Answers         *prometheus.CounterVec
	Completions     prometheus.Counter
	Derivations     *prometheus.CounterVec
	DerivationTime  prometheus.Histogram
	ProgressOnLeave prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		NodeVisits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "node_visits_total",
			Help:      "Times a question node was entered.",
		}, []string{"node", "kind"}),
		Answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answers_total",
			Help:      "Accepted answer writes per key.",
		}, []string{"key"}),
		Completions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flow_completions_total",
			Help:      "Times a session reached the profile node.",
		}),
		Derivations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "profile",
			Name:      "derivations_total",
			Help:      "Profile derivations by status (success, error).",
		}, []string{"status"}),
		DerivationTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "profile",
			Name:      "derivation_duration_seconds",
			Help:      "Profile derivation latency in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		}),
		ProgressOnLeave: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "progress_on_leave_percent",
			Help:      "Progress of a session each time it leaves a node.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}),
	}

	collectors := []prometheus.Collector{
		m.NodeVisits, m.Answers, m.Completions, m.Derivations, m.DerivationTime, m.ProgressOnLeave,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that update the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(_ context.Context, ev *domain.NodeEvent) {
			m.NodeVisits.WithLabelValues(ev.NodeID, string(ev.Kind)).Inc()
			if ev.Kind == domain.KindProfileTerminal {
				m.Completions.Inc()
			}
		},
		OnNodeLeave: func(_ context.Context, ev *domain.NodeEvent) {
			m.ProgressOnLeave.Observe(float64(ev.Progress))
		},
		OnAnswer: func(_ context.Context, ev *domain.AnswerEvent) {
			m.Answers.WithLabelValues(ev.Key).Inc()
		},
		OnProfile: func(_ context.Context, ev *domain.ProfileEvent) {
			status := "success"
			if ev.Err != nil {
				status = "error"
			}
			m.Derivations.WithLabelValues(status).Inc()
			m.DerivationTime.Observe(ev.Duration.Seconds())
		},
	}
}
