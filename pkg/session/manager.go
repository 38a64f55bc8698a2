package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/jornada"
	"github.com/aretw0/jornada/internal/logging"
	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/ports"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates session access, ensuring safe concurrent operations.
// It uses Reference Counting to garbage collect unused locks.
type Manager struct {
	engine *jornada.Engine
	store  ports.SessionStore

	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	logger *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates a new Session Manager over the engine and store.
func NewManager(engine *jornada.Engine, store ports.SessionStore, opts ...Option) *Manager {
	m := &Manager{
		engine: engine,
		store:  store,
		locks:  make(map[string]*lockEntry),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(sessionID) after unlocking.
func (m *Manager) acquire(sessionID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		entry = &lockEntry{}
		m.locks[sessionID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, sessionID)
	}
}

// Start creates a new session at the entry node and persists it. An empty
// id is replaced by a random one.
func (m *Manager) Start(ctx context.Context, sessionID string) (*domain.SessionRecord, error) {
	s := m.engine.NewSession(sessionID)
	var rec *domain.SessionRecord
	err := m.WithLock(ctx, s.ID(), func(ctx context.Context) error {
		if err := s.Start(ctx); err != nil {
			return err
		}
		rec = s.Record()
		return m.store.Save(ctx, s.ID(), rec)
	})
	if err != nil {
		return nil, err
	}
	m.logger.Debug("session started", "session_id", s.ID())
	return rec, nil
}

// Load retrieves an existing session record from the store.
func (m *Manager) Load(ctx context.Context, sessionID string) (*domain.SessionRecord, error) {
	var rec *domain.SessionRecord
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		var err error
		rec, err = m.store.Load(ctx, sessionID)
		return err
	})
	return rec, err
}

// LoadOrStart loads a session, creating it at the entry node when missing.
func (m *Manager) LoadOrStart(ctx context.Context, sessionID string) (*domain.SessionRecord, error) {
	var rec *domain.SessionRecord
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		var err error
		rec, err = m.store.Load(ctx, sessionID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrSessionNotFound) {
			return fmt.Errorf("failed to check session existence: %w", err)
		}

		s := m.engine.NewSession(sessionID)
		if err := s.Start(ctx); err != nil {
			return err
		}
		rec = s.Record()
		if err := m.store.Save(ctx, sessionID, rec); err != nil {
			return fmt.Errorf("failed to initialize session: %w", err)
		}
		return nil
	})
	return rec, err
}

// Update resumes the session, runs fn on it and saves the result. When fn
// fails nothing is saved.
func (m *Manager) Update(ctx context.Context, sessionID string, fn func(context.Context, *jornada.Session) error) (*domain.SessionRecord, error) {
	var rec *domain.SessionRecord
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		stored, err := m.store.Load(ctx, sessionID)
		if err != nil {
			return err
		}
		s, err := m.engine.Resume(stored)
		if err != nil {
			return err
		}
		if err := fn(ctx, s); err != nil {
			return err
		}
		rec = s.Record()
		return m.store.Save(ctx, sessionID, rec)
	})
	return rec, err
}

// Save persists the session record.
func (m *Manager) Save(ctx context.Context, sessionID string, record *domain.SessionRecord) error {
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		return m.store.Save(ctx, sessionID, record)
	})
}

// Delete removes the session from the store.
func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		return m.store.Delete(ctx, sessionID)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying session store.
func (m *Manager) Store() ports.SessionStore {
	return m.store
}

// Engine returns the engine sessions are resumed with.
func (m *Manager) Engine() *jornada.Engine {
	return m.engine
}

// WithLock executes a function while holding the lock for the session.
func (m *Manager) WithLock(ctx context.Context, sessionID string, fn func(context.Context) error) error {
	entry := m.acquire(sessionID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(sessionID)
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}
