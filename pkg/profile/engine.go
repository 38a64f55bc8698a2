package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/aretw0/jornada/internal/logging"
	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/ports"
)

// Engine runs a classifier over final answer snapshots. It holds no session
// data and can be shared by any number of sessions.
type Engine struct {
	classifier ports.Classifier
	logger     *slog.Logger
	hooks      domain.LifecycleHooks
	now        func() time.Time
}

// Option configures the Engine.
type Option func(*Engine)

// WithClassifier replaces the in-process rule tables.
func WithClassifier(c ports.Classifier) Option {
	return func(e *Engine) {
		if c != nil {
			e.classifier = c
		}
	}
}

// WithLogger sets the logger used for derivation failures.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers the OnProfile hook.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates a derivation engine. Without WithClassifier it uses Rules.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		classifier: NewRules(),
		logger:     logging.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Derive classifies answers. It fails with domain.ErrInvalidInput for a zero
// snapshot; every classifier failure, including a panic or a cancelled
// context, is returned as *domain.ProfileDerivationError. No partial profile
// is ever returned.
func (e *Engine) Derive(ctx context.Context, answers domain.Answers) (*domain.UserProfile, error) {
	return e.derive(ctx, "", answers)
}

func (e *Engine) derive(ctx context.Context, sessionID string, answers domain.Answers) (profile *domain.UserProfile, err error) {
	if !answers.Valid() {
		return nil, fmt.Errorf("%w: answer snapshot is empty", domain.ErrInvalidInput)
	}

	start := e.now()
	defer func() {
		if err != nil {
			e.logger.Error("profile derivation failed", "session_id", sessionID, "error", err)
		}
		e.emitProfile(ctx, sessionID, e.now().Sub(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, &domain.ProfileDerivationError{Cause: err}
	}

	defer func() {
		if r := recover(); r != nil {
			profile = nil
			err = &domain.ProfileDerivationError{Cause: fmt.Errorf("classifier panic: %v", r)}
		}
	}()

	p, err := e.classifier.Classify(ctx, answers)
	if err != nil {
		var derr *domain.ProfileDerivationError
		if errors.As(err, &derr) {
			return nil, err
		}
		return nil, &domain.ProfileDerivationError{Cause: err}
	}
	if p == nil {
		return nil, &domain.ProfileDerivationError{Cause: errors.New("classifier returned no profile")}
	}
	return p, nil
}

func (e *Engine) emitProfile(ctx context.Context, sessionID string, d time.Duration, err error) {
	if e.hooks.OnProfile == nil {
		return
	}
	e.hooks.OnProfile(ctx, &domain.ProfileEvent{
		EventBase: domain.EventBase{
			Timestamp: e.now(),
			Type:      domain.EventProfile,
			SessionID: sessionID,
		},
		Duration: d,
		Err:      err,
	})
}

// Guard serializes derivations for one session: a Derive issued while
// another is running fails fast with domain.ErrDerivationInProgress.
type Guard struct {
	engine    *Engine
	sessionID string
	busy      atomic.Bool
}

// Guard returns a reentrancy guard bound to sessionID.
func (e *Engine) Guard(sessionID string) *Guard {
	return &Guard{engine: e, sessionID: sessionID}
}

// Derive runs the engine unless a derivation is already in flight.
func (g *Guard) Derive(ctx context.Context, answers domain.Answers) (*domain.UserProfile, error) {
	if !g.busy.CompareAndSwap(false, true) {
		return nil, domain.ErrDerivationInProgress
	}
	defer g.busy.Store(false)
	return g.engine.derive(ctx, g.sessionID, answers)
}

// InProgress reports whether a derivation is running.
func (g *Guard) InProgress() bool {
	return g.busy.Load()
}
