package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/jornada/internal/presentation/graph"
	"github.com/aretw0/jornada/pkg/domain"
)

// Graph writes the Mermaid diagram of the question graph. With
// opts.SessionID set, the session's path is highlighted.
func Graph(ctx context.Context, opts Options, w io.Writer) error {
	engine, err := createEngine(opts, createLogger(opts.Debug), domain.LifecycleHooks{})
	if err != nil {
		return err
	}

	var overlay *graph.GraphOverlay
	if opts.SessionID != "" {
		store, closeStore, err := createStore(ctx, opts)
		if err != nil {
			return err
		}
		defer closeStore()

		rec, err := store.Load(ctx, opts.SessionID)
		if err != nil {
			return fmt.Errorf("failed to load session %s: %w", opts.SessionID, err)
		}
		overlay = graph.OverlayFromState(&rec.State)
	}

	_, err = fmt.Fprint(w, graph.GenerateMermaid(engine.Inspect(), overlay))
	return err
}
