package runtime

import (
	"context"
	"slices"

	"github.com/aretw0/jornada/pkg/domain"
)

// Outcome classifies the result of Advance.
type Outcome string

const (
	OutcomeAdvanced Outcome = "advanced" // Moved to the next node
	OutcomeBlocked  Outcome = "blocked"  // Current node not ready; state unchanged
	OutcomeTerminal Outcome = "terminal" // Already at the profile node; state unchanged
)

// AdvanceResult describes what Advance did.
type AdvanceResult struct {
	Outcome Outcome `json:"outcome"`
	From    string  `json:"from"`
	To      string  `json:"to,omitempty"`
	// Reason is set when Outcome is OutcomeBlocked.
	Reason error `json:"-"`
}

// Advance leaves the current node when its readiness check passes. Blocked
// and terminal outcomes return the input state untouched and a nil error;
// errors are reserved for graph misconfiguration.
//
// The sequence is re-derived before moving so that a path changed by
// answers given after a GoBack is never replayed from a stale projection.
// Progress never decreases across advances.
func (e *Engine) Advance(ctx context.Context, state *domain.FlowState, answers domain.Answers) (*domain.FlowState, AdvanceResult, error) {
	if state == nil || len(state.History) == 0 {
		return nil, AdvanceResult{}, domain.ErrNotStarted
	}
	res := AdvanceResult{From: state.CurrentNodeID}

	node, err := e.nodes.Get(state.CurrentNodeID)
	if err != nil {
		return nil, res, err
	}
	if node.IsTerminal() {
		res.Outcome = OutcomeTerminal
		return state, res, nil
	}
	if err := Ready(node, answers); err != nil {
		res.Outcome = OutcomeBlocked
		res.Reason = err
		return state, res, nil
	}

	projected, err := e.Reproject(state, answers)
	if err != nil {
		return nil, res, err
	}
	idx := projected.Position()
	if idx < 0 || idx+1 >= len(projected.Sequence) {
		// Only reachable with lenient dead ends.
		res.Outcome = OutcomeBlocked
		res.Reason = &domain.DeadEndError{NodeID: node.ID, Kind: node.Kind}
		return state, res, nil
	}

	e.emitNodeLeave(ctx, state)

	next := projected
	next.CurrentNodeID = projected.Sequence[idx+1]
	next.History = append(next.History, next.CurrentNodeID)
	next.Progress = max(state.Progress, e.Progress(next))
	e.refreshStatus(next)

	res.Outcome = OutcomeAdvanced
	res.To = next.CurrentNodeID

	e.emitNodeEnter(ctx, next)
	return next, res, nil
}

// GoBack returns to the previous node in history. It reports false, and
// returns the state untouched, when already at the entry node. Answers are
// never discarded.
func (e *Engine) GoBack(ctx context.Context, state *domain.FlowState) (*domain.FlowState, bool) {
	if state == nil || len(state.History) <= 1 {
		return state, false
	}

	e.emitNodeLeave(ctx, state)

	next := e.cloneState(state)
	next.History = next.History[:len(next.History)-1]
	next.CurrentNodeID = next.History[len(next.History)-1]
	next.Progress = e.Progress(next)
	e.refreshStatus(next)

	e.emitNodeEnter(ctx, next)
	return next, true
}

// Jump moves directly to nodeID. When the node is part of the projected
// sequence the history becomes the sequence prefix ending at it; otherwise
// the node is appended to the history. The sequence is then re-derived from
// the new position.
func (e *Engine) Jump(ctx context.Context, state *domain.FlowState, nodeID string, answers domain.Answers) (*domain.FlowState, error) {
	if state == nil || len(state.History) == 0 {
		return nil, domain.ErrNotStarted
	}
	if _, err := e.nodes.Get(nodeID); err != nil {
		return nil, err
	}

	next := e.cloneState(state)
	if idx := slices.Index(state.Sequence, nodeID); idx >= 0 {
		next.History = slices.Clone(state.Sequence[:idx+1])
	} else {
		next.History = append(next.History, nodeID)
	}
	next.CurrentNodeID = nodeID

	projected, err := e.Reproject(next, answers)
	if err != nil {
		return nil, err
	}
	projected.Progress = e.Progress(projected)
	e.refreshStatus(projected)

	e.emitNodeLeave(ctx, state)
	e.emitNodeEnter(ctx, projected)
	return projected, nil
}
