package domain

import "slices"

// FlowStatus defines whether the flow still expects answers.
type FlowStatus string

const (
	StatusActive   FlowStatus = "active"   // Collecting answers
	StatusTerminal FlowStatus = "terminal" // Profile-terminal node reached
)

// FlowState is the controller's view of one onboarding session.
// Transitions never mutate a FlowState in place; they return a new one.
type FlowState struct {
	// SessionID correlates the state with its persisted record.
	SessionID string `json:"session_id"`

	// CurrentNodeID is the node being shown.
	CurrentNodeID string `json:"current_node_id"`

	// History lists the visited nodes, entry first, current node last.
	History []string `json:"history"`

	// Sequence is the projected full path from the entry node through the
	// current node to the furthest reachable node under the present answers.
	// History is always a prefix of it.
	Sequence []string `json:"sequence"`

	// Progress is a percentage in [0, 100].
	Progress int `json:"progress"`

	Status FlowStatus `json:"status"`
}

// Clone returns a deep copy of the state.
func (s *FlowState) Clone() *FlowState {
	if s == nil {
		return nil
	}
	next := *s
	next.History = slices.Clone(s.History)
	next.Sequence = slices.Clone(s.Sequence)
	return &next
}

// Position returns the index of the current node in the sequence, or -1.
func (s *FlowState) Position() int {
	return slices.Index(s.Sequence, s.CurrentNodeID)
}

// Remaining returns the projected nodes after the current one.
func (s *FlowState) Remaining() []string {
	idx := s.Position()
	if idx < 0 {
		return nil
	}
	return slices.Clone(s.Sequence[idx+1:])
}
