package ports_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/ports"
)

// MockStore is an in-memory implementation of SessionStore for testing purposes.
type MockStore struct {
	mu   sync.Mutex
	data map[string]*domain.SessionRecord
}

func NewMockStore() *MockStore {
	return &MockStore{
		data: make(map[string]*domain.SessionRecord),
	}
}

func (m *MockStore) Save(_ context.Context, sessionID string, record *domain.SessionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[sessionID] = record.Clone()
	return nil
}

func (m *MockStore) Load(_ context.Context, sessionID string) (*domain.SessionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.data[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return record.Clone(), nil
}

func (m *MockStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, sessionID)
	return nil
}

func (m *MockStore) List(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.data))
	for id := range m.data {
		ids = append(ids, id)
	}
	return ids, nil
}

func TestSessionStore_Contract(t *testing.T) {
	ports.RunSessionStoreContract(t, NewMockStore())
}
