package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/aretw0/jornada"
	"github.com/aretw0/jornada/internal/presentation/tui"
	"github.com/aretw0/jornada/pkg/answers"
	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/profile"
	"github.com/aretw0/jornada/pkg/schema"
	"github.com/aretw0/jornada/pkg/session"
	"github.com/google/uuid"
	"golang.org/x/term"
)

const defaultWidth = 80

// Execute runs the interactive onboarding on the process terminal.
func Execute(opts Options) error {
	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	render := tui.Plain
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		width := defaultWidth
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = min(w, 120)
		}
		render = tui.NewRenderer(width)
		tui.PrintBanner(os.Stdout, jornada.Version)
	}

	err := RunSession(sigCtx, opts, os.Stdin, os.Stdout, render)
	return handleExecutionError(err)
}

// RunSession walks one session to its profile, reading answers from in.
// Every step is saved, so a session named with opts.SessionID can be
// resumed from a persistent store after :quit.
func RunSession(ctx context.Context, opts Options, in io.Reader, out io.Writer, render tui.Renderer) error {
	logger := createLogger(opts.Debug)

	var hooks domain.LifecycleHooks
	if opts.Debug {
		hooks = createDebugHooks(logger)
	}
	engine, err := createEngine(opts, logger, hooks)
	if err != nil {
		return err
	}

	store, closeStore, err := createStore(ctx, opts)
	if err != nil {
		return err
	}
	defer closeStore()

	manager := session.NewManager(engine, store, session.WithLogger(logger))
	id := opts.SessionID
	if id == "" {
		id = uuid.NewString()
	}

	rec, err := manager.LoadOrStart(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to init session: %w", err)
	}

	p := tui.NewPrompter(in, out)
	if len(rec.State.History) > 1 {
		p.Info("Resuming session %s at %q", id, rec.State.CurrentNodeID)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s, err := engine.Resume(rec)
		if err != nil {
			return err
		}
		node, err := s.CurrentNode()
		if err != nil {
			return err
		}
		p.Show(node, s.Progress())

		if node.IsTerminal() {
			return completeFlow(ctx, manager, id, p, out, render)
		}

		values, err := p.Ask(node, s.Answers())
		switch {
		case errors.Is(err, tui.ErrQuit):
			if opts.Store == "" || opts.Store == StoreMemory {
				p.Info("Leaving at %d%%. Use --store file or redis to resume later", s.Progress())
			} else {
				p.Info("Progress saved (%d%%). Resume with --session %s", s.Progress(), id)
			}
			return nil
		case errors.Is(err, tui.ErrBack):
			rec, err = manager.Update(ctx, id, func(ctx context.Context, s *jornada.Session) error {
				if !s.GoBack(ctx) {
					p.Info("Already at the first question")
				}
				return nil
			})
			if err != nil {
				return err
			}
			continue
		case err != nil:
			p.Error(err)
			continue
		}

		var result jornada.AdvanceResult
		next, err := manager.Update(ctx, id, func(ctx context.Context, s *jornada.Session) error {
			for _, key := range slices.Sorted(maps.Keys(values)) {
				if err := s.RecordAnswer(ctx, key, values[key]); err != nil {
					return err
				}
			}
			res, err := s.Advance(ctx)
			result = res
			return err
		})
		if err != nil {
			if isInputError(err) {
				p.Error(err)
				continue
			}
			return err
		}
		rec = next
		if result.Outcome == jornada.OutcomeBlocked && result.Reason != nil {
			p.Error(result.Reason)
		}
	}
}

func completeFlow(ctx context.Context, manager *session.Manager, id string, p *tui.Prompter, out io.Writer, render tui.Renderer) error {
	p.Info("Building your profile...")

	var derived *domain.UserProfile
	_, err := manager.Update(ctx, id, func(ctx context.Context, s *jornada.Session) error {
		var err error
		derived, err = s.CompleteFlow(ctx)
		return err
	})
	if err != nil {
		return err
	}

	md, err := render(profile.Markdown(derived))
	if err != nil {
		md = profile.Markdown(derived)
	}
	fmt.Fprintln(out, md)
	return nil
}

// isInputError reports whether err was caused by what the user typed, so
// the question can simply be asked again.
func isInputError(err error) bool {
	var invalid *schema.ValidationError
	var unknown *answers.UnknownKeyError
	return errors.As(err, &invalid) || errors.As(err, &unknown) || errors.Is(err, domain.ErrInvalidInput)
}
