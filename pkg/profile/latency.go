package profile

import (
	"context"
	"time"

	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/ports"
)

// WithLatency delays every classification by d. The wait ends early, with
// the context error, when ctx is cancelled. Useful to exercise loading states
// in hosts and tests.
func WithLatency(c ports.Classifier, d time.Duration) ports.Classifier {
	return ports.ClassifierFunc(func(ctx context.Context, answers domain.Answers) (*domain.UserProfile, error) {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
		return c.Classify(ctx, answers)
	})
}
