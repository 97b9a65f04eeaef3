package session

import (
	"context"
	"sync"

	"meetbot/models"
)

// Store holds conversation sessions between turns. Get returns nil for an
// unknown conversation; the caller constructs a fresh session.
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Put(ctx context.Context, sess *models.Session) error
	Delete(ctx context.Context, id string) error
}

// MemoryStore is the default in-process store. Sessions do not survive a
// restart, which is acceptable for this system.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*models.Session)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id], nil
}

func (s *MemoryStore) Put(ctx context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
