// Package runtime implements the flow controller: pure transitions over an
// explicit domain.FlowState. The engine holds no session data; every
// operation takes a state and returns a new one.
package runtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/jornada/internal/logging"
	"github.com/aretw0/jornada/pkg/domain"
)

// NodeSource is the read side of the question graph used by the engine.
type NodeSource interface {
	Get(nodeID string) (domain.QuestionNode, error)
	Entry() string
}

// Engine is the stateless flow controller.
type Engine struct {
	nodes   NodeSource
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	lenient bool
	now     func() time.Time
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a structured logger for projection diagnostics.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLenientDeadEnds makes a non-terminal node without successors end the
// projection with a warning instead of failing with *domain.DeadEndError.
func WithLenientDeadEnds() EngineOption {
	return func(e *Engine) {
		e.lenient = true
	}
}

// NewEngine creates a flow controller over the given nodes.
func NewEngine(nodes NodeSource, opts ...EngineOption) *Engine {
	e := &Engine{
		nodes:  nodes,
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start creates the initial state at the entry node and projects the
// sequence under the given answers.
func (e *Engine) Start(ctx context.Context, sessionID string, answers domain.Answers) (*domain.FlowState, error) {
	entry := e.nodes.Entry()
	if _, err := e.nodes.Get(entry); err != nil {
		return nil, err
	}

	seq, err := e.project(entry, answers, nil)
	if err != nil {
		return nil, err
	}

	state := &domain.FlowState{
		SessionID:     sessionID,
		CurrentNodeID: entry,
		History:       []string{entry},
		Sequence:      seq,
		Status:        domain.StatusActive,
	}
	state.Progress = e.Progress(state)
	e.refreshStatus(state)

	e.emitNodeEnter(ctx, state)
	return state, nil
}

// Reproject recomputes the sequence from the current node forward, keeping
// the history as its prefix. Progress is left unchanged.
func (e *Engine) Reproject(state *domain.FlowState, answers domain.Answers) (*domain.FlowState, error) {
	if state == nil || len(state.History) == 0 {
		return nil, domain.ErrNotStarted
	}
	visited := state.History[:len(state.History)-1]
	tail, err := e.project(state.CurrentNodeID, answers, visited)
	if err != nil {
		return nil, err
	}

	next := e.cloneState(state)
	next.Sequence = append(append([]string(nil), state.History...), tail[1:]...)
	return next, nil
}

// Progress computes the completion percentage of state. Entry and profile
// nodes are excluded from the denominator.
func (e *Engine) Progress(state *domain.FlowState) int {
	if state.CurrentNodeID == e.nodes.Entry() {
		return 0
	}
	if node, err := e.nodes.Get(state.CurrentNodeID); err == nil && node.IsTerminal() {
		return 100
	}
	idx := state.Position()
	if idx < 0 || len(state.Sequence) <= 2 {
		return 0
	}
	pct := percent(idx-1, len(state.Sequence)-2)
	// 100 is reserved for the profile node.
	return min(pct, 99)
}

func (e *Engine) refreshStatus(state *domain.FlowState) {
	state.Status = domain.StatusActive
	if node, err := e.nodes.Get(state.CurrentNodeID); err == nil && node.IsTerminal() {
		state.Status = domain.StatusTerminal
	}
}

// cloneState creates a deep copy of the state for safe mutation.
func (e *Engine) cloneState(src *domain.FlowState) *domain.FlowState {
	return src.Clone()
}

func (e *Engine) emitNodeEnter(ctx context.Context, state *domain.FlowState) {
	if e.hooks.OnNodeEnter == nil {
		return
	}
	e.hooks.OnNodeEnter(ctx, e.nodeEvent(domain.EventNodeEnter, state))
}

func (e *Engine) emitNodeLeave(ctx context.Context, state *domain.FlowState) {
	if e.hooks.OnNodeLeave == nil {
		return
	}
	e.hooks.OnNodeLeave(ctx, e.nodeEvent(domain.EventNodeLeave, state))
}

func (e *Engine) nodeEvent(t domain.EventType, state *domain.FlowState) *domain.NodeEvent {
	ev := &domain.NodeEvent{
		EventBase: domain.EventBase{
			Timestamp: e.now(),
			Type:      t,
			SessionID: state.SessionID,
		},
		NodeID:   state.CurrentNodeID,
		Progress: state.Progress,
	}
	if node, err := e.nodes.Get(state.CurrentNodeID); err == nil {
		ev.Kind = node.Kind
	}
	return ev
}
