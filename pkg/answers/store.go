// Package answers implements the closed, schema-checked answer store of a session.
package answers

import (
	"fmt"
	"sync"

	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/schema"
)

// UnknownKeyError is returned when writing a key no node declares.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("answer key %q is not declared by any node", e.Key)
}

// Store maps answer keys to values. Every declared key is seeded with its
// default, writes are validated against the key's type and keys are never
// removed. Safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	schema schema.Schema
	values map[string]any
}

// New creates a store for the given schema, seeded with defaults.
// Defaults for undeclared keys are ignored.
func New(s schema.Schema, defaults map[string]any) *Store {
	st := &Store{
		schema: s,
		values: make(map[string]any, len(s)),
	}
	for key, def := range defaults {
		if _, ok := s[key]; !ok {
			continue
		}
		if v, err := schema.Apply(s[key], def); err == nil {
			st.values[key] = v
		}
	}
	return st
}

// Get returns the value for key, or def when the key holds nothing.
func (s *Store) Get(key string, def any) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return def
	}
	return v
}

// Lookup returns the raw value held for key and whether one is held.
func (s *Store) Lookup(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Revert puts back a value previously read with Lookup, without validation.
// When ok is false the key is cleared.
func (s *Store) Revert(key string, value any, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !ok {
		delete(s.values, key)
		return
	}
	s.values[key] = value
}

// Set validates value against the key's type and stores its canonical form.
func (s *Store) Set(key string, value any) error {
	canonical, declared, err := s.schema.Check(key, value)
	if !declared {
		return &UnknownKeyError{Key: key}
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = canonical
	return nil
}

// Restore overwrites the store with persisted values. Every entry is
// validated first; on error nothing is changed.
func (s *Store) Restore(values map[string]any) error {
	next := make(map[string]any, len(values))
	for key, value := range values {
		canonical, declared, err := s.schema.Check(key, value)
		if !declared {
			return &UnknownKeyError{Key: key}
		}
		if err != nil {
			return err
		}
		next[key] = canonical
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range next {
		s.values[k] = v
	}
	return nil
}

// Snapshot returns an immutable copy of the current answers.
func (s *Store) Snapshot() domain.Answers {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.NewAnswers(s.values)
}

// Schema returns the declared key types.
func (s *Store) Schema() schema.Schema {
	return s.schema
}
