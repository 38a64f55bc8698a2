package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/jornada"
	"github.com/aretw0/jornada/pkg/adapters/yaml"
	"github.com/aretw0/jornada/pkg/domain"
)

// createEngine initializes a jornada engine with standard CLI conventions.
func createEngine(opts Options, logger *slog.Logger, hooks domain.LifecycleHooks) (*jornada.Engine, error) {
	engineOpts := []jornada.Option{
		jornada.WithLogger(logger),
		jornada.WithLifecycleHooks(hooks),
	}
	if len(opts.Modules) > 0 {
		engineOpts = append(engineOpts, jornada.WithLoader(yaml.New(opts.Modules...)))
	}
	if opts.Lenient {
		engineOpts = append(engineOpts, jornada.WithLenientDeadEnds())
	}

	engine, err := jornada.New(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}

// createDebugHooks logs every lifecycle event.
func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(_ context.Context, e *domain.NodeEvent) {
			logger.Debug("node enter", "session_id", e.SessionID, "node_id", e.NodeID, "progress", e.Progress)
		},
		OnNodeLeave: func(_ context.Context, e *domain.NodeEvent) {
			logger.Debug("node leave", "session_id", e.SessionID, "node_id", e.NodeID)
		},
		OnAnswer: func(_ context.Context, e *domain.AnswerEvent) {
			logger.Debug("answer recorded", "session_id", e.SessionID, "node_id", e.NodeID, "key", e.Key)
		},
		OnProfile: func(_ context.Context, e *domain.ProfileEvent) {
			logger.Debug("profile derived", "session_id", e.SessionID, "duration", e.Duration, "err", e.Err)
		},
	}
}
