package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventNodeEnter EventType = "node_enter"
	EventNodeLeave EventType = "node_leave"
	EventAnswer    EventType = "answer"
	EventProfile   EventType = "profile"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
}

// NodeEvent represents entry or exit from a node.
type NodeEvent struct {
	EventBase
	NodeID   string   `json:"node_id"`
	Kind     NodeKind `json:"kind"`
	Progress int      `json:"progress"`
}

// AnswerEvent represents an accepted answer write.
type AnswerEvent struct {
	EventBase
	NodeID string `json:"node_id"`
	Key    string `json:"key"`
	Value  any    `json:"value"`
}

// ProfileEvent represents a finished derivation attempt.
type ProfileEvent struct {
	EventBase
	Duration time.Duration `json:"duration"`
	Err      error         `json:"-"`
}

// LifecycleHooks defines callbacks for flow observability.
// Any hook may be nil.
type LifecycleHooks struct {
	OnNodeEnter func(context.Context, *NodeEvent)
	OnNodeLeave func(context.Context, *NodeEvent)
	OnAnswer    func(context.Context, *AnswerEvent)
	OnProfile   func(context.Context, *ProfileEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnNodeEnter: chain(h.OnNodeEnter, other.OnNodeEnter),
		OnNodeLeave: chain(h.OnNodeLeave, other.OnNodeLeave),
		OnAnswer:    chain(h.OnAnswer, other.OnAnswer),
		OnProfile:   chain(h.OnProfile, other.OnProfile),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
