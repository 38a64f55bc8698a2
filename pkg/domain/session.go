package domain

import "time"

// SessionRecord is the persisted form of a session.
type SessionRecord struct {
	State     FlowState      `json:"state"`
	Answers   map[string]any `json:"answers"`
	Profile   *UserProfile   `json:"profile,omitempty"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Clone returns a deep copy of the record.
func (r *SessionRecord) Clone() *SessionRecord {
	if r == nil {
		return nil
	}
	next := *r
	next.State = *r.State.Clone()
	next.Answers = NewAnswers(r.Answers).Map()
	next.Profile = r.Profile.Clone()
	return &next
}
