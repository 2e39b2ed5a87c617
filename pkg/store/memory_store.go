package store

import (
	"sync"

	"medimatch/pkg/domain"
)

// MemoryStore keeps accounts and history in-process. It backs tests and
// any context where the SQLite file is unavailable.
type MemoryStore struct {
	mu      sync.RWMutex
	users   map[string]domain.User
	history []domain.SearchEntry
	nextID  int64
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[string]domain.User),
		nextID: 1,
	}
}

// SaveUser registers a user.
func (m *MemoryStore) SaveUser(u domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.PatientID] = u
	return nil
}

// HasUser checks if a patient ID is already registered.
func (m *MemoryStore) HasUser(patientID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.users[patientID]
	return ok, nil
}

// GetUser looks up an account by patient ID.
func (m *MemoryStore) GetUser(patientID string) (domain.User, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[patientID]
	return u, ok, nil
}

// AppendSearch records a history entry with a monotonic ID.
func (m *MemoryStore) AppendSearch(entry domain.SearchEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry.ID = m.nextID
	m.nextID++
	m.history = append(m.history, entry)
	return nil
}

// ListSearches returns a user's history in insertion order.
func (m *MemoryStore) ListSearches(patientID string) ([]domain.SearchEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := []domain.SearchEntry{}
	for _, entry := range m.history {
		if entry.PatientID == patientID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error { return nil }
