package jornada

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/jornada/pkg/answers"
	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/profile"
	"github.com/google/uuid"
)

// Session is one user's pass through the onboarding. It owns a flow state
// and an answer store. A Session is meant for a single caller; hosts serving
// many users serialize access per session (see pkg/session).
type Session struct {
	engine  *Engine
	id      string
	answers *answers.Store
	state   *domain.FlowState
	profile *domain.UserProfile
	guard   *profile.Guard
}

// NewSession creates a session seeded with every declared default. An empty
// id is replaced by a random UUID.
func (e *Engine) NewSession(id string) *Session {
	if id == "" {
		id = uuid.NewString()
	}
	return &Session{
		engine:  e,
		id:      id,
		answers: answers.New(e.graph.Schema(), e.graph.Defaults()),
		guard:   e.profiles.Guard(id),
	}
}

// Resume rebuilds a session from a persisted record. Answers are validated
// against the current graph and the path is re-derived from the current node.
func (e *Engine) Resume(record *domain.SessionRecord) (*Session, error) {
	if record == nil || len(record.State.History) == 0 {
		return nil, fmt.Errorf("%w: record has no flow state", domain.ErrInvalidInput)
	}
	s := e.NewSession(record.State.SessionID)
	if err := s.answers.Restore(record.Answers); err != nil {
		return nil, fmt.Errorf("restore answers of %s: %w", s.id, err)
	}

	state, err := e.flow.Reproject(record.State.Clone(), s.answers.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("restore state of %s: %w", s.id, err)
	}
	s.state = state
	if record.Profile != nil {
		s.profile = record.Profile.Clone()
	}
	return s, nil
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Start places the session at the entry node.
func (s *Session) Start(ctx context.Context) error {
	state, err := s.engine.flow.Start(ctx, s.id, s.answers.Snapshot())
	if err != nil {
		return err
	}
	s.state = state
	s.profile = nil
	return nil
}

// RecordAnswer validates and stores value under key, then re-derives the
// projected path from the current node. Unknown keys fail with
// *answers.UnknownKeyError and ill-typed values with *schema.ValidationError.
// When the new path cannot be derived the previous value is put back and the
// state is left unchanged.
func (s *Session) RecordAnswer(ctx context.Context, key string, value any) error {
	prev, had := s.answers.Lookup(key)
	if err := s.answers.Set(key, value); err != nil {
		return err
	}
	if s.state == nil {
		return nil
	}

	state, err := s.engine.flow.Reproject(s.state, s.answers.Snapshot())
	if err != nil {
		s.answers.Revert(key, prev, had)
		return err
	}
	s.state = state
	s.emitAnswer(ctx, key)
	return nil
}

// Advance moves to the next node when the current one is answered.
func (s *Session) Advance(ctx context.Context) (AdvanceResult, error) {
	if s.state == nil {
		return AdvanceResult{}, domain.ErrNotStarted
	}
	state, res, err := s.engine.flow.Advance(ctx, s.state, s.answers.Snapshot())
	if err != nil {
		return res, err
	}
	s.state = state
	return res, nil
}

// GoBack returns to the previous node. It reports false at the entry node.
// Answers given on later nodes are kept.
func (s *Session) GoBack(ctx context.Context) bool {
	if s.state == nil {
		return false
	}
	state, moved := s.engine.flow.GoBack(ctx, s.state)
	s.state = state
	return moved
}

// Jump moves directly to nodeID.
func (s *Session) Jump(ctx context.Context, nodeID string) error {
	if s.state == nil {
		return domain.ErrNotStarted
	}
	state, err := s.engine.flow.Jump(ctx, s.state, nodeID, s.answers.Snapshot())
	if err != nil {
		return err
	}
	s.state = state
	return nil
}

// Progress returns the completion percentage, 0 before Start.
func (s *Session) Progress() int {
	if s.state == nil {
		return 0
	}
	return s.state.Progress
}

// CurrentNode returns the node being shown.
func (s *Session) CurrentNode() (domain.QuestionNode, error) {
	if s.state == nil {
		return domain.QuestionNode{}, domain.ErrNotStarted
	}
	return s.engine.graph.Get(s.state.CurrentNodeID)
}

// Answers returns a snapshot of the answers.
func (s *Session) Answers() domain.Answers {
	return s.answers.Snapshot()
}

// State returns a copy of the flow state, or nil before Start.
func (s *Session) State() *domain.FlowState {
	return s.state.Clone()
}

// Profile returns the last derived profile, or nil.
func (s *Session) Profile() *domain.UserProfile {
	return s.profile
}

// DerivationInProgress reports whether CompleteFlow is running.
func (s *Session) DerivationInProgress() bool {
	return s.guard.InProgress()
}

// CompleteFlow derives the profile from the final answers. The session must
// be at a profile node. A second call while one is running fails with
// domain.ErrDerivationInProgress.
func (s *Session) CompleteFlow(ctx context.Context) (*domain.UserProfile, error) {
	if s.state == nil {
		return nil, domain.ErrNotStarted
	}
	if s.state.Status != domain.StatusTerminal {
		return nil, fmt.Errorf("%w: current node is %q", domain.ErrNotTerminal, s.state.CurrentNodeID)
	}

	p, err := s.guard.Derive(ctx, s.answers.Snapshot())
	if err != nil {
		return nil, err
	}
	s.profile = p
	return p, nil
}

// Record returns the persisted form of the session.
func (s *Session) Record() *domain.SessionRecord {
	rec := &domain.SessionRecord{
		Answers:   s.answers.Snapshot().Map(),
		UpdatedAt: s.engine.now().UTC(),
	}
	if s.state != nil {
		rec.State = *s.state.Clone()
	}
	if s.profile != nil {
		rec.Profile = s.profile.Clone()
	}
	return rec
}

func (s *Session) emitAnswer(ctx context.Context, key string) {
	if s.engine.hooks.OnAnswer == nil {
		return
	}
	value, _ := s.answers.Snapshot().Raw(key)
	s.engine.hooks.OnAnswer(ctx, &domain.AnswerEvent{
		EventBase: domain.EventBase{
			Timestamp: s.engine.now(),
			Type:      domain.EventAnswer,
			SessionID: s.id,
		},
		NodeID: s.state.CurrentNodeID,
		Key:    key,
		Value:  value,
	})
}

func (e *Engine) now() time.Time {
	return time.Now()
}
