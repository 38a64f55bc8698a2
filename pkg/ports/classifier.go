package ports

import (
	"context"

	"github.com/aretw0/jornada/pkg/domain"
)

// Classifier derives a profile from a final answer snapshot.
// Implementations must be deterministic for equal snapshots and must not
// retain the snapshot after returning.
type Classifier interface {
	Classify(ctx context.Context, answers domain.Answers) (*domain.UserProfile, error)
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, answers domain.Answers) (*domain.UserProfile, error)

// Classify calls f(ctx, answers).
func (f ClassifierFunc) Classify(ctx context.Context, answers domain.Answers) (*domain.UserProfile, error) {
	return f(ctx, answers)
}
