package session

import (
	"context"
	"sync"
	"time"

	"github.com/fittrackhq/fittrack/pkg/cryptox"
)

// MemoryStore keeps sessions in a mutex-guarded map. Suitable for
// single-instance deployments; sessions do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session

	ttl time.Duration
	now func() time.Time
}

// NewMemoryStore returns an empty in-memory store with the standard TTL.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		ttl:      TTL,
		now:      time.Now,
	}
}

func (m *MemoryStore) Create(_ context.Context, id Identity) (Session, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return Session{}, err
	}

	now := m.now()
	s := Session{
		Token:     token,
		Identity:  id,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[token] = s
	m.mu.Unlock()

	return s, nil
}

func (m *MemoryStore) Resolve(_ context.Context, token string) (Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return Session{}, false
	}
	if s.Expired(m.now()) {
		// Lazily drop the dead entry so it doesn't wait for housekeeping.
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return Session{}, false
	}
	return s, true
}

func (m *MemoryStore) Destroy(_ context.Context, token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) PurgeExpired(_ context.Context) int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	purged := 0
	for token, s := range m.sessions {
		if s.Expired(now) {
			delete(m.sessions, token)
			purged++
		}
	}
	return purged
}

// Len reports the number of live entries. Exposed for tests and readiness
// reporting.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
